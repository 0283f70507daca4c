package interfaces

import (
	"context"

	"controle_pragas/internal/domain/entities"
)

type IHiringDocRepository interface {
	Create(ctx context.Context, d entities.HiringDoc) (entities.HiringDoc, error)
	List(ctx context.Context) ([]entities.HiringDoc, error)
	Delete(ctx context.Context, id string) (bool, error)
}
