package interfaces

import (
	"context"

	"controle_pragas/internal/domain/entities"
)

// IEvaluationRepository abstracts DynamoDB persistence for Evaluation.
//
// Not-found lookups return a zero Evaluation (empty ID) and a nil error; the use
// case decides what that means.
type IEvaluationRepository interface {
	Create(ctx context.Context, e entities.Evaluation) (entities.Evaluation, error)
	GetByID(ctx context.Context, id string) (entities.Evaluation, error)
	List(ctx context.Context) ([]entities.Evaluation, error)
	Update(ctx context.Context, e entities.Evaluation) (entities.Evaluation, error)
	UpdateStatus(ctx context.Context, id string, status entities.EvaluationStatus) (entities.Evaluation, error)
	Delete(ctx context.Context, id string) (bool, error)
}
