package interfaces

import (
	"context"

	"controle_pragas/internal/domain/evaluation"
)

// ISessionStore keeps in-flight authoring sessions. Get returns nil, nil when the
// session does not exist or has expired.
type ISessionStore interface {
	Save(ctx context.Context, s *evaluation.Session) error
	Get(ctx context.Context, id string) (*evaluation.Session, error)
	Delete(ctx context.Context, id string) error
}
