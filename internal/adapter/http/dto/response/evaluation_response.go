package response

import (
	"time"

	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/usecase"
)

type EvaluationResponse struct {
	ID                 string                     `json:"id"`
	DisplayID          string                     `json:"display_id"`
	CreatedBy          string                     `json:"created_by"`
	EvaluatorName      string                     `json:"evaluator_name"`
	EvaluatorUnit      string                     `json:"evaluator_unit"`
	EvaluatorRole      string                     `json:"evaluator_role"`
	ReferenceMonth     string                     `json:"reference_month"`
	ReferenceYear      int                        `json:"reference_year"`
	Services           entities.ServiceSelection  `json:"services"`
	Financials         FinancialDetailsResponse   `json:"financials"`
	Totals             TotalsResponse             `json:"totals"`
	General            entities.GeneralChecklist  `json:"general"`
	Insect             *ServiceChecklistResponse  `json:"insect,omitempty"`
	Rodent             *ServiceChecklistResponse  `json:"rodent,omitempty"`
	Termite            *entities.TermiteChecklist `json:"termite,omitempty"`
	Unit               string                     `json:"unit"`
	Location           string                     `json:"location"`
	PrimaryServiceType string                     `json:"primary_service_type"`
	ComplianceScore    int                        `json:"compliance_score"`
	Status             string                     `json:"status"`
	RecordedAt         time.Time                  `json:"recorded_at"`
	CreatedAt          time.Time                  `json:"created_at"`
	UpdatedAt          time.Time                  `json:"updated_at"`
}

func FromEvaluation(e entities.Evaluation) EvaluationResponse {
	res := EvaluationResponse{
		ID:                 e.ID,
		DisplayID:          e.DisplayID(),
		CreatedBy:          e.CreatedBy,
		EvaluatorName:      e.EvaluatorName,
		EvaluatorUnit:      e.EvaluatorUnit,
		EvaluatorRole:      string(e.EvaluatorRole),
		ReferenceMonth:     e.ReferenceMonth,
		ReferenceYear:      e.ReferenceYear,
		Services:           e.Services,
		Financials:         FromFinancialDetails(e.Financials.Details),
		Totals:             FromTotals(e.Financials.Totals),
		General:            e.General,
		Termite:            e.Termite,
		Unit:               e.Unit,
		Location:           e.Location,
		PrimaryServiceType: string(e.PrimaryServiceType),
		ComplianceScore:    e.ComplianceScore,
		Status:             string(e.Status),
		RecordedAt:         e.RecordedAt,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
	if e.Insect != nil {
		c := FromServiceChecklist(*e.Insect)
		res.Insect = &c
	}
	if e.Rodent != nil {
		c := FromServiceChecklist(*e.Rodent)
		res.Rodent = &c
	}
	return res
}

func FromEvaluations(evals []entities.Evaluation) []EvaluationResponse {
	out := make([]EvaluationResponse, 0, len(evals))
	for _, e := range evals {
		out = append(out, FromEvaluation(e))
	}
	return out
}

type PreviewResponse struct {
	Financials FinancialDetailsResponse `json:"financials"`
	Discounts  DiscountsResponse        `json:"discounts"`
	Summary    SummaryResponse          `json:"summary"`
}

func FromPreview(r usecase.PreviewResult) PreviewResponse {
	return PreviewResponse{
		Financials: FromFinancialDetails(r.Financials),
		Discounts:  FromDiscounts(r.Discounts),
		Summary:    FromSummary(r.Summary),
	}
}
