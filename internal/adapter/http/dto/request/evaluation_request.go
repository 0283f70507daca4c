package request

import (
	"errors"
	"strings"

	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/domain/evaluation"
	"controle_pragas/internal/domain/money"
	"controle_pragas/internal/usecase"
)

var ErrInvalidUnitPrice = errors.New("invalid unit price")

type ServiceFinancialsRequest struct {
	Area      string `json:"area"`
	UnitPrice string `json:"unit_price"`
}

func (r ServiceFinancialsRequest) ToEntity() (entities.ServiceFinancials, error) {
	area, price := strings.TrimSpace(r.Area), strings.TrimSpace(r.UnitPrice)
	if area != "" && (!money.IsDecimal(area) || money.ParseDecimal(area).IsNegative()) {
		return entities.ServiceFinancials{}, ErrInvalidArea
	}
	if price != "" && (!money.IsMoney(price) || money.ParseDecimal(price).IsNegative()) {
		return entities.ServiceFinancials{}, ErrInvalidUnitPrice
	}
	return entities.ServiceFinancials{
		AreaSquareMeters: money.ParseDecimal(area),
		UnitPriceCents:   money.ParseBRL(price),
	}, nil
}

type FinancialDetailsRequest struct {
	Insect  ServiceFinancialsRequest `json:"insect"`
	Rodent  ServiceFinancialsRequest `json:"rodent"`
	Termite ServiceFinancialsRequest `json:"termite"`
}

// PreviewRequest is a full answer state evaluated without opening a session.
// Omitted checklists count as fully compliant.
type PreviewRequest struct {
	Services   entities.ServiceSelection  `json:"services"`
	Financials FinancialDetailsRequest    `json:"financials"`
	General    *entities.GeneralChecklist `json:"general"`
	Insect     *ServiceChecklistRequest   `json:"insect"`
	Rodent     *ServiceChecklistRequest   `json:"rodent"`
	Termite    *entities.TermiteChecklist `json:"termite"`
}

func (r PreviewRequest) ToInput() (usecase.PreviewInput, error) {
	var in usecase.PreviewInput
	in.Services = r.Services

	for _, c := range entities.Categories() {
		var src ServiceFinancialsRequest
		switch c {
		case entities.CategoryInsect:
			src = r.Financials.Insect
		case entities.CategoryRodent:
			src = r.Financials.Rodent
		case entities.CategoryTermite:
			src = r.Financials.Termite
		}
		row, err := src.ToEntity()
		if err != nil {
			return usecase.PreviewInput{}, err
		}
		*in.Financials.For(c) = row
	}

	in.Checklists.General = evaluation.DefaultGeneralChecklist()
	if r.General != nil {
		in.Checklists.General = *r.General
	}
	if r.Insect != nil {
		c, err := r.Insect.ToEntity()
		if err != nil {
			return usecase.PreviewInput{}, err
		}
		in.Checklists.Insect = &c
	}
	if r.Rodent != nil {
		c, err := r.Rodent.ToEntity()
		if err != nil {
			return usecase.PreviewInput{}, err
		}
		in.Checklists.Rodent = &c
	}
	in.Checklists.Termite = r.Termite
	return in, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
