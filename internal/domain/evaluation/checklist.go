package evaluation

import (
	"controle_pragas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// DefaultGeneralChecklist is the fully compliant answer set. Note that a recovered
// damage counts against the provider, so the compliant answer is false.
func DefaultGeneralChecklist() entities.GeneralChecklist {
	return entities.GeneralChecklist{
		EmployeeIdentified: true,
		EPIUsed:            true,
		DamageRecovered:    false,
		ProofDelivered:     true,
	}
}

func DefaultServiceChecklist() entities.ServiceChecklist {
	return entities.ServiceChecklist{
		ExecutedAreaSquareMeters: decimal.Zero,
		FollowedSchedule:         true,
		DelayDays:                0,
		TrapsOrBaitsMaintained:   true,
		HadExtraCall:             false,
		ExtraCallOnTime:          true,
		ExtraCallEffective:       true,
	}
}

func DefaultTermiteChecklist() entities.TermiteChecklist {
	return entities.TermiteChecklist{ChemicalBarrierApplied: true}
}

// Checklists is the full answer state fed to the calculator. A nil specific
// checklist stands for the compliant default.
type Checklists struct {
	General entities.GeneralChecklist
	Insect  *entities.ServiceChecklist
	Rodent  *entities.ServiceChecklist
	Termite *entities.TermiteChecklist
}

func (c Checklists) service(cat entities.ServiceCategory) entities.ServiceChecklist {
	var cl *entities.ServiceChecklist
	switch cat {
	case entities.CategoryInsect:
		cl = c.Insect
	case entities.CategoryRodent:
		cl = c.Rodent
	}
	if cl == nil {
		return DefaultServiceChecklist()
	}
	return *cl
}

func (c Checklists) termite() entities.TermiteChecklist {
	if c.Termite == nil {
		return DefaultTermiteChecklist()
	}
	return *c.Termite
}
