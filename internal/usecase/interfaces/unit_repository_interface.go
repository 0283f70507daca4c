package interfaces

import (
	"context"

	"controle_pragas/internal/domain/entities"
)

// IUnitRepository abstracts DynamoDB persistence for facility units.
//
// GetByName backs the tariff resolver: an evaluator's profile only carries the
// unit name.
type IUnitRepository interface {
	Create(ctx context.Context, u entities.Unit) (entities.Unit, error)
	GetByID(ctx context.Context, id string) (entities.Unit, error)
	GetByName(ctx context.Context, name string) (entities.Unit, error)
	List(ctx context.Context) ([]entities.Unit, error)
	Update(ctx context.Context, u entities.Unit) (entities.Unit, error)
	Delete(ctx context.Context, id string) (bool, error)
}
