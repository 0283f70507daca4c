package evaluation

import (
	"testing"

	"controle_pragas/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseline(area string, insect, rodent, termite int64) entities.FinancialDetails {
	a := decimal.RequireFromString(area)
	return entities.FinancialDetails{
		Insect:  entities.ServiceFinancials{AreaSquareMeters: a, UnitPriceCents: insect},
		Rodent:  entities.ServiceFinancials{AreaSquareMeters: a, UnitPriceCents: rodent},
		Termite: entities.ServiceFinancials{AreaSquareMeters: a, UnitPriceCents: termite},
	}
}

func worstGeneral() entities.GeneralChecklist {
	return entities.GeneralChecklist{EmployeeIdentified: false, EPIUsed: false, DamageRecovered: true, ProofDelivered: false}
}

func TestComputeDiscounts_CompliantIsZero(t *testing.T) {
	res := ComputeDiscounts(Checklists{General: DefaultGeneralChecklist()}, baseline("500", 4550, 12000, 8575))
	for _, c := range entities.Categories() {
		assert.Equal(t, int64(0), res.For(c).DiscountCents, c)
	}
}

func TestComputeDiscounts_ExampleScenario(t *testing.T) {
	insect := DefaultServiceChecklist()
	insect.FollowedSchedule = false
	insect.DelayDays = 5

	details := baseline("500", 4550, 0, 0)
	res := ComputeDiscounts(Checklists{General: DefaultGeneralChecklist(), Insect: &insect}, details)

	assert.True(t, decimal.RequireFromString("0.01").Equal(res.Insect.SpecificPercent))
	assert.True(t, decimal.RequireFromString("0.01").Equal(res.Insect.CappedPercent))
	assert.Equal(t, int64(22750), res.Insect.DiscountCents)

	ApplyDiscounts(&details, res)
	summary := Aggregate(entities.ServiceSelection{Insect: true}, details)
	assert.Equal(t, int64(2275000), summary.TotalValueCents)
	assert.Equal(t, int64(22750), summary.TotalDiscountCents)
	assert.Equal(t, int64(2252250), summary.TotalFinalCents)
}

func TestComputeDiscounts_GeneralOnly(t *testing.T) {
	details := baseline("500", 4550, 12000, 8575)
	res := ComputeDiscounts(Checklists{General: worstGeneral()}, details)

	assert.True(t, decimal.RequireFromString("0.08").Equal(GeneralPercent(worstGeneral())))
	assert.Equal(t, int64(182000), res.Insect.DiscountCents)  // 8% of 2275000
	assert.Equal(t, int64(480000), res.Rodent.DiscountCents)  // 8% of 6000000
	assert.Equal(t, int64(343000), res.Termite.DiscountCents) // 8% of 4287500
}

func TestComputeDiscounts_DelayLinearity(t *testing.T) {
	cl := DefaultServiceChecklist()
	cl.FollowedSchedule = false
	cl.DelayDays = 10
	assert.True(t, decimal.RequireFromString("0.02").Equal(ServicePercent(cl)))

	cl.FollowedSchedule = true
	assert.True(t, ServicePercent(cl).IsZero(), "delay only counts when the schedule was not followed")
}

func TestServicePercent_ExtraCall(t *testing.T) {
	cl := DefaultServiceChecklist()
	cl.ExtraCallOnTime = false
	cl.ExtraCallEffective = false
	assert.True(t, ServicePercent(cl).IsZero(), "extra call answers are ignored without an extra call")

	cl.HadExtraCall = true
	assert.True(t, decimal.RequireFromString("0.04").Equal(ServicePercent(cl)))

	cl.TrapsOrBaitsMaintained = false
	assert.True(t, decimal.RequireFromString("0.06").Equal(ServicePercent(cl)))
}

func TestComputeDiscounts_TermiteForfeit(t *testing.T) {
	details := baseline("321.5", 0, 0, 8575)
	value := details.Termite.ValueCents()

	for _, general := range []entities.GeneralChecklist{DefaultGeneralChecklist(), worstGeneral()} {
		termite := entities.TermiteChecklist{ChemicalBarrierApplied: false}
		res := ComputeDiscounts(Checklists{General: general, Termite: &termite}, details)
		assert.Equal(t, value, res.Termite.DiscountCents)
		assert.True(t, decimal.NewFromInt(1).Equal(res.Termite.CappedPercent))
	}
}

func TestComputeDiscounts_Saturation(t *testing.T) {
	rodent := DefaultServiceChecklist()
	rodent.FollowedSchedule = false
	rodent.DelayDays = 475 // 95%

	details := baseline("500", 0, 12000, 0)
	res := ComputeDiscounts(Checklists{General: worstGeneral(), Rodent: &rodent}, details)

	assert.True(t, decimal.RequireFromString("0.95").Equal(res.Rodent.SpecificPercent))
	assert.True(t, decimal.NewFromInt(1).Equal(res.Rodent.CappedPercent))
	assert.Equal(t, details.Rodent.ValueCents(), res.Rodent.DiscountCents)
}

func TestComputeDiscounts_Bounds(t *testing.T) {
	details := baseline("1234.57", 4551, 12003, 8575)
	bools := []bool{false, true}

	for _, ei := range bools {
		for _, epi := range bools {
			for _, dr := range bools {
				for _, pd := range bools {
					for _, fs := range bools {
						for _, tm := range bools {
							for _, ec := range bools {
								for _, delay := range []int{0, 1, 37, 600} {
									general := entities.GeneralChecklist{EmployeeIdentified: ei, EPIUsed: epi, DamageRecovered: dr, ProofDelivered: pd}
									svc := entities.ServiceChecklist{FollowedSchedule: fs, DelayDays: delay, TrapsOrBaitsMaintained: tm, HadExtraCall: ec}
									termite := entities.TermiteChecklist{ChemicalBarrierApplied: tm}
									res := ComputeDiscounts(Checklists{General: general, Insect: &svc, Rodent: &svc, Termite: &termite}, details)

									for _, c := range entities.Categories() {
										d := res.For(c)
										require.False(t, d.CappedPercent.IsNegative())
										require.True(t, d.CappedPercent.LessThanOrEqual(decimal.NewFromInt(1)))
										require.GreaterOrEqual(t, d.DiscountCents, int64(0))
										require.LessOrEqual(t, d.DiscountCents, details.For(c).ValueCents())
									}
								}
							}
						}
					}
				}
			}
		}
	}
}

func TestComputeDiscounts_RoundsHalfUp(t *testing.T) {
	// 25 m² × 1 cent × 2% = 0.5 cent, rounded up to 1
	details := baseline("25", 1, 1, 1)
	res := ComputeDiscounts(Checklists{General: entities.GeneralChecklist{EmployeeIdentified: false, EPIUsed: true, ProofDelivered: true}}, details)
	assert.Equal(t, int64(1), res.Insect.DiscountCents)
}

func TestComputeDiscounts_ZeroBaseline(t *testing.T) {
	res := ComputeDiscounts(Checklists{General: worstGeneral()}, entities.FinancialDetails{})
	for _, c := range entities.Categories() {
		assert.Equal(t, int64(0), res.For(c).DiscountCents)
	}
}

func TestApplyDiscounts(t *testing.T) {
	details := baseline("500", 4550, 12000, 8575)
	res := ComputeDiscounts(Checklists{General: worstGeneral()}, details)

	assert.True(t, ApplyDiscounts(&details, res))
	snapshot := details
	assert.False(t, ApplyDiscounts(&details, res), "second apply must be a no-op")
	assert.Equal(t, snapshot, details)

	again := ComputeDiscounts(Checklists{General: worstGeneral()}, details)
	assert.Equal(t, res, again, "recomputation is idempotent")
}
