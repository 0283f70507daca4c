package request

import (
	"errors"
	"strings"

	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/domain/evaluation"
	"controle_pragas/internal/domain/money"
)

var (
	ErrInvalidArea     = errors.New("invalid area")
	ErrInvalidDiscount = errors.New("invalid discount")
)

// ServiceChecklistRequest carries the executed area as a decimal-comma string.
type ServiceChecklistRequest struct {
	ExecutedArea           string `json:"executed_area"`
	FollowedSchedule       bool   `json:"followed_schedule"`
	DelayDays              int    `json:"delay_days"`
	TrapsOrBaitsMaintained bool   `json:"traps_or_baits_maintained"`
	HadExtraCall           bool   `json:"had_extra_call"`
	ExtraCallOnTime        bool   `json:"extra_call_on_time"`
	ExtraCallEffective     bool   `json:"extra_call_effective"`
}

func (r ServiceChecklistRequest) ToEntity() (entities.ServiceChecklist, error) {
	area := strings.TrimSpace(r.ExecutedArea)
	if area != "" && (!money.IsDecimal(area) || money.ParseDecimal(area).IsNegative()) {
		return entities.ServiceChecklist{}, ErrInvalidArea
	}
	return entities.ServiceChecklist{
		ExecutedAreaSquareMeters: money.ParseDecimal(area),
		FollowedSchedule:         r.FollowedSchedule,
		DelayDays:                r.DelayDays,
		TrapsOrBaitsMaintained:   r.TrapsOrBaitsMaintained,
		HadExtraCall:             r.HadExtraCall,
		ExtraCallOnTime:          r.ExtraCallOnTime,
		ExtraCallEffective:       r.ExtraCallEffective,
	}, nil
}

// MutationRequest is one answer change. Omitted sections stay as they are.
type MutationRequest struct {
	ReferenceMonth *int                       `json:"reference_month"`
	Services       *entities.ServiceSelection `json:"services"`
	General        *entities.GeneralChecklist `json:"general"`
	Insect         *ServiceChecklistRequest   `json:"insect"`
	Rodent         *ServiceChecklistRequest   `json:"rodent"`
	Termite        *entities.TermiteChecklist `json:"termite"`
}

func (r MutationRequest) ToMutation() (evaluation.Mutation, error) {
	m := evaluation.Mutation{
		ReferenceMonth: r.ReferenceMonth,
		Services:       r.Services,
		General:        r.General,
		Termite:        r.Termite,
	}
	if r.Insect != nil {
		c, err := r.Insect.ToEntity()
		if err != nil {
			return evaluation.Mutation{}, err
		}
		m.Insect = &c
	}
	if r.Rodent != nil {
		c, err := r.Rodent.ToEntity()
		if err != nil {
			return evaluation.Mutation{}, err
		}
		m.Rodent = &c
	}
	return m, nil
}

type OverrideDiscountRequest struct {
	Discount string `json:"discount" binding:"required"`
}

// ResolveCents parses the decimal-comma amount ("1.250,00") into cents.
func (r OverrideDiscountRequest) ResolveCents() (int64, error) {
	v := strings.TrimSpace(r.Discount)
	if !money.IsMoney(v) {
		return 0, ErrInvalidDiscount
	}
	return money.ParseBRL(v), nil
}

type SubmitRequest struct {
	Status string `json:"status" binding:"required"`
}
