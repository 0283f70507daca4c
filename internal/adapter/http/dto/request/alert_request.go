package request

import (
	"time"

	"controle_pragas/internal/domain/entities"
)

type AlertRequest struct {
	Title     string    `json:"title" binding:"required"`
	Content   string    `json:"content"`
	Severity  string    `json:"severity"`
	ExpiresAt time.Time `json:"expires_at" binding:"required"`
}

func (r AlertRequest) ToEntity() entities.SystemAlert {
	return entities.SystemAlert{
		Title:     r.Title,
		Content:   r.Content,
		Severity:  entities.AlertSeverity(r.Severity),
		ExpiresAt: r.ExpiresAt,
	}
}
