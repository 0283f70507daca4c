package evaluation

import (
	"time"

	"controle_pragas/internal/domain/entities"
)

// Session is one evaluator's authoring session. It has a single owner, so it is
// never mutated concurrently.
type Session struct {
	ID           string               `json:"id"`
	OwnerUID     string               `json:"owner_uid"`
	EvaluationID string               `json:"evaluation_id,omitempty"`
	Profile      entities.UserProfile `json:"profile"`
	Draft        Draft                `json:"draft"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

func NewSession(id string, profile entities.UserProfile, baseline entities.FinancialDetails, now time.Time) *Session {
	return &Session{
		ID:        id,
		OwnerUID:  profile.UID,
		Profile:   profile,
		Draft:     NewDraft(baseline, now),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewEditSession opens a stored evaluation in a session.
func NewEditSession(id string, profile entities.UserProfile, e entities.Evaluation, now time.Time) *Session {
	s := &Session{
		ID:           id,
		OwnerUID:     profile.UID,
		EvaluationID: e.ID,
		Profile:      profile,
		Draft:        NewDraft(entities.FinancialDetails{}, now),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	Hydrate(e, &s.Draft)
	return s
}

func (s *Session) IsEdit() bool {
	return s.EvaluationID != ""
}
