package repository

import (
	"context"

	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/domain/money"
	"controle_pragas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultUnitsTableName = "units"
	unitsNameIndex        = "name-index"
)

type fiscalInfoItem struct {
	Name  string `dynamodbav:"name"`
	Email string `dynamodbav:"email"`
	Ramal string `dynamodbav:"ramal"`
}

type unitItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
	// Older documents hold a number here, newer ones a decimal-comma string.
	SquareMeters any            `dynamodbav:"square_meters"`
	Address      string         `dynamodbav:"address"`
	Titular      fiscalInfoItem `dynamodbav:"titular"`
	Substituto   fiscalInfoItem `dynamodbav:"substituto"`
	CreatedAt    string         `dynamodbav:"created_at"`
	UpdatedAt    string         `dynamodbav:"updated_at"`
}

// UnitDynamoRepository persists facility units in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: name-index (PK: name)
type UnitDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IUnitRepository = (*UnitDynamoRepository)(nil)

func NewUnitDynamoRepository(ddb DynamoDBAPI, tableName string) *UnitDynamoRepository {
	return &UnitDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultUnitsTableName),
	}
}

func (r *UnitDynamoRepository) Create(ctx context.Context, u entities.Unit) (entities.Unit, error) {
	av, err := attributevalue.MarshalMap(toUnitItem(u))
	if err != nil {
		return entities.Unit{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, "id", av); err != nil {
		return entities.Unit{}, err
	}
	return u, nil
}

func (r *UnitDynamoRepository) GetByID(ctx context.Context, id string) (entities.Unit, error) {
	raw, err := getItem(ctx, r.ddb, r.tableName, "id", id)
	if err != nil {
		return entities.Unit{}, err
	}
	if len(raw) == 0 {
		return entities.Unit{}, nil
	}
	return unmarshalUnit(raw)
}

// GetByName returns the first unit with that exact name.
func (r *UnitDynamoRepository) GetByName(ctx context.Context, name string) (entities.Unit, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(unitsNameIndex),
		KeyConditionExpression: aws.String("#name = :name"),
		ExpressionAttributeNames: map[string]string{
			"#name": "name",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name": &types.AttributeValueMemberS{Value: name},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Unit{}, err
	}
	if len(out.Items) == 0 {
		return entities.Unit{}, nil
	}
	return unmarshalUnit(out.Items[0])
}

func (r *UnitDynamoRepository) List(ctx context.Context) ([]entities.Unit, error) {
	raws, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Unit, 0, len(raws))
	for _, raw := range raws {
		u, err := unmarshalUnit(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *UnitDynamoRepository) Update(ctx context.Context, u entities.Unit) (entities.Unit, error) {
	av, err := attributevalue.MarshalMap(toUnitItem(u))
	if err != nil {
		return entities.Unit{}, err
	}
	found, err := putExisting(ctx, r.ddb, r.tableName, "id", av)
	if err != nil || !found {
		return entities.Unit{}, err
	}
	return u, nil
}

func (r *UnitDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteExisting(ctx, r.ddb, r.tableName, "id", id)
}

func unmarshalUnit(raw map[string]types.AttributeValue) (entities.Unit, error) {
	var it unitItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Unit{}, err
	}
	return fromUnitItem(it), nil
}

func toUnitItem(u entities.Unit) unitItem {
	return unitItem{
		ID:           u.ID,
		Name:         u.Name,
		SquareMeters: u.SquareMeters,
		Address:      u.Address,
		Titular:      fiscalInfoItem(u.Titular),
		Substituto:   fiscalInfoItem(u.Substituto),
		CreatedAt:    formatTime(u.CreatedAt),
		UpdatedAt:    formatTime(u.UpdatedAt),
	}
}

func fromUnitItem(it unitItem) entities.Unit {
	sqm, ok := it.SquareMeters.(string)
	if !ok && it.SquareMeters != nil {
		sqm = money.FormatDecimal(money.ParseDecimalAny(it.SquareMeters))
	}
	return entities.Unit{
		ID:           it.ID,
		Name:         it.Name,
		SquareMeters: sqm,
		Address:      it.Address,
		Titular:      entities.FiscalInfo(it.Titular),
		Substituto:   entities.FiscalInfo(it.Substituto),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
