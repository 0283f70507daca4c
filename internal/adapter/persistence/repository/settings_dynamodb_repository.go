package repository

import (
	"context"

	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultSettingsTableName = "settings"

type tariffItem struct {
	Label string `dynamodbav:"label"`
	Value string `dynamodbav:"value"`
}

type settingsItem struct {
	ID                    string       `dynamodbav:"id"`
	ContractID            string       `dynamodbav:"contract_id"`
	ContractValue         string       `dynamodbav:"contract_value"`
	ContractValidity      string       `dynamodbav:"contract_validity"`
	MainManager           string       `dynamodbav:"main_manager"`
	SubstituteManager     string       `dynamodbav:"substitute_manager"`
	ReferenceProcess      string       `dynamodbav:"reference_process"`
	NotificationPeriods   []int        `dynamodbav:"notification_periods"`
	EmailRecipients       []string     `dynamodbav:"email_recipients"`
	NotificationFrequency string       `dynamodbav:"notification_frequency"`
	Tariffs               []tariffItem `dynamodbav:"tariffs"`
}

// SettingsDynamoRepository stores the single settings document.
//
// Table requirements:
//   - PK: id (string), always "general"
type SettingsDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb DynamoDBAPI, tableName string) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultSettingsTableName),
	}
}

func (r *SettingsDynamoRepository) Get(ctx context.Context) (entities.Settings, bool, error) {
	raw, err := getItem(ctx, r.ddb, r.tableName, "id", entities.SettingsID)
	if err != nil {
		return entities.Settings{}, false, err
	}
	if len(raw) == 0 {
		return entities.Settings{}, false, nil
	}
	var it settingsItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Settings{}, false, err
	}
	return fromSettingsItem(it), true, nil
}

// Put overwrites the whole document.
func (r *SettingsDynamoRepository) Put(ctx context.Context, s entities.Settings) (entities.Settings, error) {
	av, err := attributevalue.MarshalMap(toSettingsItem(s))
	if err != nil {
		return entities.Settings{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Settings{}, err
	}
	return s, nil
}

func toSettingsItem(s entities.Settings) settingsItem {
	tariffs := make([]tariffItem, 0, len(s.Tariffs))
	for _, t := range s.Tariffs {
		tariffs = append(tariffs, tariffItem(t))
	}
	return settingsItem{
		ID:                    entities.SettingsID,
		ContractID:            s.ContractID,
		ContractValue:         s.ContractValue,
		ContractValidity:      s.ContractValidity,
		MainManager:           s.MainManager,
		SubstituteManager:     s.SubstituteManager,
		ReferenceProcess:      s.ReferenceProcess,
		NotificationPeriods:   s.NotificationPeriods,
		EmailRecipients:       s.EmailRecipients,
		NotificationFrequency: string(s.NotificationFrequency),
		Tariffs:               tariffs,
	}
}

func fromSettingsItem(it settingsItem) entities.Settings {
	tariffs := make([]entities.Tariff, 0, len(it.Tariffs))
	for _, t := range it.Tariffs {
		tariffs = append(tariffs, entities.Tariff(t))
	}
	return entities.Settings{
		ContractID:            it.ContractID,
		ContractValue:         it.ContractValue,
		ContractValidity:      it.ContractValidity,
		MainManager:           it.MainManager,
		SubstituteManager:     it.SubstituteManager,
		ReferenceProcess:      it.ReferenceProcess,
		NotificationPeriods:   it.NotificationPeriods,
		EmailRecipients:       it.EmailRecipients,
		NotificationFrequency: entities.NotificationFrequency(it.NotificationFrequency),
		Tariffs:               tariffs,
	}
}
