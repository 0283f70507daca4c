package response

import (
	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/domain/evaluation"
	"controle_pragas/internal/domain/money"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ServiceFinancialsResponse renders one category row. Amounts are decimal-comma
// strings in reais ("22.750,00"); area is a decimal-comma string in m².
type ServiceFinancialsResponse struct {
	Area      string `json:"area"`
	UnitPrice string `json:"unit_price"`
	Value     string `json:"value"`
	Discount  string `json:"discount"`
	Final     string `json:"final"`
}

func FromServiceFinancials(f entities.ServiceFinancials) ServiceFinancialsResponse {
	value := f.ValueCents()
	return ServiceFinancialsResponse{
		Area:      money.FormatDecimal(f.AreaSquareMeters),
		UnitPrice: money.FormatBRL(f.UnitPriceCents),
		Value:     money.FormatBRL(value),
		Discount:  money.FormatBRL(f.DiscountCents),
		Final:     money.FormatBRL(value - f.DiscountCents),
	}
}

type FinancialDetailsResponse struct {
	Insect  ServiceFinancialsResponse `json:"insect"`
	Rodent  ServiceFinancialsResponse `json:"rodent"`
	Termite ServiceFinancialsResponse `json:"termite"`
}

func FromFinancialDetails(d entities.FinancialDetails) FinancialDetailsResponse {
	return FinancialDetailsResponse{
		Insect:  FromServiceFinancials(d.Insect),
		Rodent:  FromServiceFinancials(d.Rodent),
		Termite: FromServiceFinancials(d.Termite),
	}
}

// CategoryDiscountResponse itemizes a discount; percents are rendered as
// percentage points ("2,4" for 2.4%).
type CategoryDiscountResponse struct {
	Category        string `json:"category"`
	GeneralPercent  string `json:"general_percent"`
	SpecificPercent string `json:"specific_percent"`
	AppliedPercent  string `json:"applied_percent"`
	Discount        string `json:"discount"`
}

func FromCategoryDiscount(d evaluation.CategoryDiscount) CategoryDiscountResponse {
	return CategoryDiscountResponse{
		Category:        string(d.Category),
		GeneralPercent:  percent(d.GeneralPercent),
		SpecificPercent: percent(d.SpecificPercent),
		AppliedPercent:  percent(d.CappedPercent),
		Discount:        money.FormatBRL(d.DiscountCents),
	}
}

type DiscountsResponse struct {
	Insect  CategoryDiscountResponse `json:"insect"`
	Rodent  CategoryDiscountResponse `json:"rodent"`
	Termite CategoryDiscountResponse `json:"termite"`
}

func FromDiscounts(r evaluation.DiscountResult) DiscountsResponse {
	return DiscountsResponse{
		Insect:  FromCategoryDiscount(r.Insect),
		Rodent:  FromCategoryDiscount(r.Rodent),
		Termite: FromCategoryDiscount(r.Termite),
	}
}

type CategorySummaryResponse struct {
	Category string `json:"category"`
	Value    string `json:"value"`
	Discount string `json:"discount"`
	Final    string `json:"final"`
}

// SummaryResponse is the roll-up over the selected categories. NegativeFinals
// lists categories whose manual discount exceeds their value.
type SummaryResponse struct {
	PerCategory    []CategorySummaryResponse `json:"per_category"`
	TotalValue     string                    `json:"total_value"`
	TotalDiscount  string                    `json:"total_discount"`
	TotalFinal     string                    `json:"total_final"`
	NegativeFinals []string                  `json:"negative_finals"`
}

func FromSummary(s evaluation.FinancialSummary) SummaryResponse {
	res := SummaryResponse{
		PerCategory:    make([]CategorySummaryResponse, 0, len(s.PerCategory)),
		TotalValue:     money.FormatBRL(s.TotalValueCents),
		TotalDiscount:  money.FormatBRL(s.TotalDiscountCents),
		TotalFinal:     money.FormatBRL(s.TotalFinalCents),
		NegativeFinals: []string{},
	}
	for _, c := range s.PerCategory {
		res.PerCategory = append(res.PerCategory, CategorySummaryResponse{
			Category: string(c.Category),
			Value:    money.FormatBRL(c.ValueCents),
			Discount: money.FormatBRL(c.DiscountCents),
			Final:    money.FormatBRL(c.FinalCents),
		})
	}
	for _, c := range s.NegativeFinals() {
		res.NegativeFinals = append(res.NegativeFinals, string(c))
	}
	return res
}

type TotalsResponse struct {
	TotalValue    string `json:"total_value"`
	TotalDiscount string `json:"total_discount"`
	TotalFinal    string `json:"total_final"`
}

func FromTotals(t entities.FinancialTotals) TotalsResponse {
	return TotalsResponse{
		TotalValue:    money.FormatBRL(t.TotalValueCents),
		TotalDiscount: money.FormatBRL(t.TotalDiscountCents),
		TotalFinal:    money.FormatBRL(t.TotalFinalCents),
	}
}

type ServiceChecklistResponse struct {
	ExecutedArea           string `json:"executed_area"`
	FollowedSchedule       bool   `json:"followed_schedule"`
	DelayDays              int    `json:"delay_days"`
	TrapsOrBaitsMaintained bool   `json:"traps_or_baits_maintained"`
	HadExtraCall           bool   `json:"had_extra_call"`
	ExtraCallOnTime        bool   `json:"extra_call_on_time"`
	ExtraCallEffective     bool   `json:"extra_call_effective"`
}

func FromServiceChecklist(c entities.ServiceChecklist) ServiceChecklistResponse {
	return ServiceChecklistResponse{
		ExecutedArea:           money.FormatDecimal(c.ExecutedAreaSquareMeters),
		FollowedSchedule:       c.FollowedSchedule,
		DelayDays:              c.DelayDays,
		TrapsOrBaitsMaintained: c.TrapsOrBaitsMaintained,
		HadExtraCall:           c.HadExtraCall,
		ExtraCallOnTime:        c.ExtraCallOnTime,
		ExtraCallEffective:     c.ExtraCallEffective,
	}
}

func percent(p decimal.Decimal) string {
	return money.FormatDecimal(p.Mul(hundred))
}
