package repository

import (
	"context"

	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultUsersTableName = "users"

type userProfileItem struct {
	UID   string `dynamodbav:"uid"`
	Name  string `dynamodbav:"name"`
	Unit  string `dynamodbav:"unit"`
	Role  string `dynamodbav:"role"`
	Email string `dynamodbav:"email"`
}

// ProfileDynamoRepository persists evaluator profiles keyed by user id.
//
// Table requirements:
//   - PK: uid (string)
type ProfileDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb DynamoDBAPI, tableName string) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultUsersTableName),
	}
}

func (r *ProfileDynamoRepository) GetByUID(ctx context.Context, uid string) (entities.UserProfile, error) {
	raw, err := getItem(ctx, r.ddb, r.tableName, "uid", uid)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if len(raw) == 0 {
		return entities.UserProfile{}, nil
	}
	var it userProfileItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.UserProfile{}, err
	}
	return entities.UserProfile{
		UID:   it.UID,
		Name:  it.Name,
		Unit:  it.Unit,
		Role:  entities.Role(it.Role),
		Email: it.Email,
	}, nil
}

// Put creates or replaces the profile.
func (r *ProfileDynamoRepository) Put(ctx context.Context, p entities.UserProfile) (entities.UserProfile, error) {
	av, err := attributevalue.MarshalMap(userProfileItem{
		UID:   p.UID,
		Name:  p.Name,
		Unit:  p.Unit,
		Role:  string(p.Role),
		Email: p.Email,
	})
	if err != nil {
		return entities.UserProfile{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.UserProfile{}, err
	}
	return p, nil
}
