package evaluation

import (
	"time"

	"controle_pragas/internal/domain/entities"
)

// BaselineComplianceScore is stored on every record until a scoring model exists.
const BaselineComplianceScore = 100

// PrimaryServiceType picks the listing label: termite, then rodent, then insect.
func PrimaryServiceType(sel entities.ServiceSelection) entities.ServiceType {
	switch {
	case sel.Termite:
		return entities.ServiceTypeCupins
	case sel.Rodent:
		return entities.ServiceTypeDesratizacao
	default:
		return entities.ServiceTypeDesinsetizacao
	}
}

// BuildRecord assembles the persistable evaluation from the evaluator profile and
// the draft. The status is the caller's choice. Specific checklists of unselected
// categories are not stored. ID, CreatedBy and the create/update timestamps of an
// existing record are the caller's concern.
func BuildRecord(profile entities.UserProfile, d Draft, status entities.EvaluationStatus, now time.Time) entities.Evaluation {
	month, _ := MonthName(d.ReferenceMonth)
	summary := d.Summary()

	rec := entities.Evaluation{
		CreatedBy:      profile.UID,
		EvaluatorName:  profile.Name,
		EvaluatorUnit:  profile.Unit,
		EvaluatorRole:  profile.Role,
		ReferenceMonth: month,
		ReferenceYear:  d.ReferenceYear,
		Services:       d.Services,
		Financials: entities.EvaluationFinancials{
			Details: d.Financials,
			Totals:  summary.Totals(),
		},
		General:            d.General,
		Unit:               profile.Unit,
		Location:           profile.Unit,
		PrimaryServiceType: PrimaryServiceType(d.Services),
		ComplianceScore:    BaselineComplianceScore,
		Status:             status,
		RecordedAt:         now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if d.Services.Insect {
		insect := d.Insect
		rec.Insect = &insect
	}
	if d.Services.Rodent {
		rodent := d.Rodent
		rec.Rodent = &rodent
	}
	if d.Services.Termite {
		termite := d.Termite
		rec.Termite = &termite
	}
	return rec
}

// Hydrate loads a stored evaluation into d for editing or viewing. Stored discounts
// are kept as they are, manual overrides included. An unknown month name leaves
// the draft's month untouched; missing checklists fall back to the defaults.
func Hydrate(e entities.Evaluation, d *Draft) {
	if idx, ok := MonthIndex(e.ReferenceMonth); ok {
		d.ReferenceMonth = idx
	}
	if e.ReferenceYear > 0 {
		d.ReferenceYear = e.ReferenceYear
	}
	d.Services = e.Services
	d.Financials = e.Financials.Details
	d.General = e.General

	d.Insect = DefaultServiceChecklist()
	if e.Insect != nil {
		d.Insect = *e.Insect
	}
	d.Rodent = DefaultServiceChecklist()
	if e.Rodent != nil {
		d.Rodent = *e.Rodent
	}
	d.Termite = DefaultTermiteChecklist()
	if e.Termite != nil {
		d.Termite = *e.Termite
	}
}
