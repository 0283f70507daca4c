package repository

import (
	"context"

	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const defaultHiringDocsTableName = "hiring_docs"

type hiringDocItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	URL       string `dynamodbav:"url"`
	Type      string `dynamodbav:"type"`
	Size      int64  `dynamodbav:"size,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// HiringDocDynamoRepository persists the contract document archive entries.
//
// Table requirements:
//   - PK: id (string)
type HiringDocDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IHiringDocRepository = (*HiringDocDynamoRepository)(nil)

func NewHiringDocDynamoRepository(ddb DynamoDBAPI, tableName string) *HiringDocDynamoRepository {
	return &HiringDocDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultHiringDocsTableName),
	}
}

func (r *HiringDocDynamoRepository) Create(ctx context.Context, d entities.HiringDoc) (entities.HiringDoc, error) {
	av, err := attributevalue.MarshalMap(hiringDocItem{
		ID:        d.ID,
		Name:      d.Name,
		URL:       d.URL,
		Type:      string(d.Type),
		Size:      d.Size,
		CreatedAt: formatTime(d.CreatedAt),
	})
	if err != nil {
		return entities.HiringDoc{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, "id", av); err != nil {
		return entities.HiringDoc{}, err
	}
	return d, nil
}

func (r *HiringDocDynamoRepository) List(ctx context.Context) ([]entities.HiringDoc, error) {
	raws, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.HiringDoc, 0, len(raws))
	for _, raw := range raws {
		var it hiringDocItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		out = append(out, entities.HiringDoc{
			ID:        it.ID,
			Name:      it.Name,
			URL:       it.URL,
			Type:      entities.HiringDocType(it.Type),
			Size:      it.Size,
			CreatedAt: parseTime(it.CreatedAt),
		})
	}
	return out, nil
}

func (r *HiringDocDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteExisting(ctx, r.ddb, r.tableName, "id", id)
}
