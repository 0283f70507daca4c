package entities

import "controle_pragas/internal/domain/money"

// SettingsID is the key of the single settings document.
const SettingsID = "general"

type NotificationFrequency string

const (
	NotificationOnce   NotificationFrequency = "once"
	NotificationWeekly NotificationFrequency = "weekly"
)

func (f NotificationFrequency) Valid() bool {
	return f == NotificationOnce || f == NotificationWeekly
}

// Tariff is one administrator-configured price row. Value is the decimal-comma
// transport form ("45,50").
type Tariff struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func (t Tariff) UnitPriceCents() int64 {
	return money.ParseBRL(t.Value)
}

// Settings holds the contract terms and tariff table.
//
// Storage model (DynamoDB):
//   - PK: id (always SettingsID)
type Settings struct {
	ContractID            string                `json:"contract_id"`
	ContractValue         string                `json:"contract_value"`
	ContractValidity      string                `json:"contract_validity"`
	MainManager           string                `json:"main_manager"`
	SubstituteManager     string                `json:"substitute_manager"`
	ReferenceProcess      string                `json:"reference_process"`
	NotificationPeriods   []int                 `json:"notification_periods"`
	EmailRecipients       []string              `json:"email_recipients"`
	NotificationFrequency NotificationFrequency `json:"notification_frequency"`
	Tariffs               []Tariff              `json:"tariffs"`
}

// DefaultSettings is served while an administrator has never saved settings.
func DefaultSettings() Settings {
	return Settings{
		NotificationPeriods:   []int{30, 60, 90},
		EmailRecipients:       []string{},
		NotificationFrequency: NotificationOnce,
		Tariffs: []Tariff{
			{Label: "Controle Geral de Insetos", Value: "45,50"},
			{Label: "Mitigação de Roedores", Value: "120,00"},
			{Label: "Serviço de Desinfecção", Value: "85,75"},
		},
	}
}
