package interfaces

import (
	"context"

	"controle_pragas/internal/domain/entities"
)

type IProfileRepository interface {
	GetByUID(ctx context.Context, uid string) (entities.UserProfile, error)
	Put(ctx context.Context, p entities.UserProfile) (entities.UserProfile, error)
}
