package response

import (
	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/domain/money"
	"controle_pragas/internal/usecase"
)

type UnitStatusResponse struct {
	entities.Unit
	CompletedThisMonth bool `json:"completed_this_month"`
}

type DashboardResponse struct {
	Settings             entities.Settings      `json:"settings"`
	ActiveAlerts         []entities.SystemAlert `json:"active_alerts"`
	Units                []UnitStatusResponse   `json:"units"`
	EvaluationsThisMonth int                    `json:"evaluations_this_month"`
	CompliancePercent    string                 `json:"compliance_percent"`
}

func FromDashboard(d usecase.Dashboard) DashboardResponse {
	units := make([]UnitStatusResponse, 0, len(d.Units))
	for _, u := range d.Units {
		units = append(units, UnitStatusResponse{Unit: u.Unit, CompletedThisMonth: u.CompletedThisMonth})
	}
	alerts := d.ActiveAlerts
	if alerts == nil {
		alerts = []entities.SystemAlert{}
	}
	return DashboardResponse{
		Settings:             d.Settings,
		ActiveAlerts:         alerts,
		Units:                units,
		EvaluationsThisMonth: d.EvaluationsThisMonth,
		CompliancePercent:    money.FormatDecimal(d.CompliancePercent),
	}
}
