package request

import "controle_pragas/internal/domain/entities"

type TariffRequest struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type SettingsRequest struct {
	ContractID            string          `json:"contract_id"`
	ContractValue         string          `json:"contract_value"`
	ContractValidity      string          `json:"contract_validity"`
	MainManager           string          `json:"main_manager"`
	SubstituteManager     string          `json:"substitute_manager"`
	ReferenceProcess      string          `json:"reference_process"`
	NotificationPeriods   []int           `json:"notification_periods"`
	EmailRecipients       []string        `json:"email_recipients"`
	NotificationFrequency string          `json:"notification_frequency"`
	Tariffs               []TariffRequest `json:"tariffs"`
}

func (r SettingsRequest) ToEntity() entities.Settings {
	tariffs := make([]entities.Tariff, 0, len(r.Tariffs))
	for _, t := range r.Tariffs {
		tariffs = append(tariffs, entities.Tariff{Label: t.Label, Value: t.Value})
	}
	return entities.Settings{
		ContractID:            r.ContractID,
		ContractValue:         r.ContractValue,
		ContractValidity:      r.ContractValidity,
		MainManager:           r.MainManager,
		SubstituteManager:     r.SubstituteManager,
		ReferenceProcess:      r.ReferenceProcess,
		NotificationPeriods:   r.NotificationPeriods,
		EmailRecipients:       r.EmailRecipients,
		NotificationFrequency: entities.NotificationFrequency(r.NotificationFrequency),
		Tariffs:               tariffs,
	}
}
