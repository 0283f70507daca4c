package repository

import (
	"context"

	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAlertsTableName = "system_alerts"

type systemAlertItem struct {
	ID        string `dynamodbav:"id"`
	Title     string `dynamodbav:"title"`
	Content   string `dynamodbav:"content"`
	Severity  string `dynamodbav:"severity"`
	ExpiresAt string `dynamodbav:"expires_at"`
	CreatedAt string `dynamodbav:"created_at"`
}

// AlertDynamoRepository persists dashboard alerts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type AlertDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IAlertRepository = (*AlertDynamoRepository)(nil)

func NewAlertDynamoRepository(ddb DynamoDBAPI, tableName string) *AlertDynamoRepository {
	return &AlertDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultAlertsTableName),
	}
}

func (r *AlertDynamoRepository) Create(ctx context.Context, a entities.SystemAlert) (entities.SystemAlert, error) {
	av, err := attributevalue.MarshalMap(toSystemAlertItem(a))
	if err != nil {
		return entities.SystemAlert{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, "id", av); err != nil {
		return entities.SystemAlert{}, err
	}
	return a, nil
}

func (r *AlertDynamoRepository) GetByID(ctx context.Context, id string) (entities.SystemAlert, error) {
	raw, err := getItem(ctx, r.ddb, r.tableName, "id", id)
	if err != nil {
		return entities.SystemAlert{}, err
	}
	if len(raw) == 0 {
		return entities.SystemAlert{}, nil
	}
	return unmarshalSystemAlert(raw)
}

func (r *AlertDynamoRepository) List(ctx context.Context) ([]entities.SystemAlert, error) {
	raws, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.SystemAlert, 0, len(raws))
	for _, raw := range raws {
		a, err := unmarshalSystemAlert(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *AlertDynamoRepository) Update(ctx context.Context, a entities.SystemAlert) (entities.SystemAlert, error) {
	av, err := attributevalue.MarshalMap(toSystemAlertItem(a))
	if err != nil {
		return entities.SystemAlert{}, err
	}
	found, err := putExisting(ctx, r.ddb, r.tableName, "id", av)
	if err != nil || !found {
		return entities.SystemAlert{}, err
	}
	return a, nil
}

func (r *AlertDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteExisting(ctx, r.ddb, r.tableName, "id", id)
}

func unmarshalSystemAlert(raw map[string]types.AttributeValue) (entities.SystemAlert, error) {
	var it systemAlertItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.SystemAlert{}, err
	}
	return entities.SystemAlert{
		ID:        it.ID,
		Title:     it.Title,
		Content:   it.Content,
		Severity:  entities.AlertSeverity(it.Severity),
		ExpiresAt: parseTime(it.ExpiresAt),
		CreatedAt: parseTime(it.CreatedAt),
	}, nil
}

func toSystemAlertItem(a entities.SystemAlert) systemAlertItem {
	return systemAlertItem{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		Severity:  string(a.Severity),
		ExpiresAt: formatTime(a.ExpiresAt),
		CreatedAt: formatTime(a.CreatedAt),
	}
}
