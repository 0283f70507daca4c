package interfaces

import (
	"context"

	"controle_pragas/internal/domain/entities"
)

type IAlertRepository interface {
	Create(ctx context.Context, a entities.SystemAlert) (entities.SystemAlert, error)
	GetByID(ctx context.Context, id string) (entities.SystemAlert, error)
	List(ctx context.Context) ([]entities.SystemAlert, error)
	Update(ctx context.Context, a entities.SystemAlert) (entities.SystemAlert, error)
	Delete(ctx context.Context, id string) (bool, error)
}
