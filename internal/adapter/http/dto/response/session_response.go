package response

import (
	"time"

	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/domain/evaluation"
)

// SessionResponse is the full authoring state after every change, derived
// discounts and summary included.
type SessionResponse struct {
	ID                 string                    `json:"id"`
	EvaluationID       string                    `json:"evaluation_id,omitempty"`
	Profile            entities.UserProfile      `json:"profile"`
	ReferenceMonth     int                       `json:"reference_month"`
	ReferenceMonthName string                    `json:"reference_month_name"`
	ReferenceYear      int                       `json:"reference_year"`
	Services           entities.ServiceSelection `json:"services"`
	Financials         FinancialDetailsResponse  `json:"financials"`
	General            entities.GeneralChecklist `json:"general"`
	Insect             ServiceChecklistResponse  `json:"insect"`
	Rodent             ServiceChecklistResponse  `json:"rodent"`
	Termite            entities.TermiteChecklist `json:"termite"`
	Discounts          DiscountsResponse         `json:"discounts"`
	Summary            SummaryResponse           `json:"summary"`
	CreatedAt          time.Time                 `json:"created_at"`
	UpdatedAt          time.Time                 `json:"updated_at"`
}

func FromSession(s *evaluation.Session) SessionResponse {
	d := &s.Draft
	monthName, _ := evaluation.MonthName(d.ReferenceMonth)
	return SessionResponse{
		ID:                 s.ID,
		EvaluationID:       s.EvaluationID,
		Profile:            s.Profile,
		ReferenceMonth:     d.ReferenceMonth,
		ReferenceMonthName: monthName,
		ReferenceYear:      d.ReferenceYear,
		Services:           d.Services,
		Financials:         FromFinancialDetails(d.Financials),
		General:            d.General,
		Insect:             FromServiceChecklist(d.Insect),
		Rodent:             FromServiceChecklist(d.Rodent),
		Termite:            d.Termite,
		Discounts:          FromDiscounts(d.Discounts()),
		Summary:            FromSummary(d.Summary()),
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}
