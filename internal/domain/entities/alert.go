package entities

import "time"

type AlertSeverity string

const (
	AlertSeverityLow    AlertSeverity = "low"
	AlertSeverityMedium AlertSeverity = "medium"
	AlertSeverityHigh   AlertSeverity = "high"
)

func (s AlertSeverity) Valid() bool {
	switch s {
	case AlertSeverityLow, AlertSeverityMedium, AlertSeverityHigh:
		return true
	}
	return false
}

// SystemAlert is an administrator notice shown on the dashboard until it expires.
//
// Storage model (DynamoDB):
//   - PK: id
type SystemAlert struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Severity  AlertSeverity `json:"severity"`
	ExpiresAt time.Time     `json:"expires_at"`
	CreatedAt time.Time     `json:"created_at"`
}

func (a SystemAlert) ActiveAt(now time.Time) bool {
	return a.ExpiresAt.After(now)
}
