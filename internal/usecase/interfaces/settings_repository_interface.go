package interfaces

import (
	"context"

	"controle_pragas/internal/domain/entities"
)

// ISettingsRepository stores the single "general" settings document. Get reports
// found=false when it was never saved.
type ISettingsRepository interface {
	Get(ctx context.Context) (entities.Settings, bool, error)
	Put(ctx context.Context, s entities.Settings) (entities.Settings, error)
}
