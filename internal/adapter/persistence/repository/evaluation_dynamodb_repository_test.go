package repository

import (
	"context"
	"testing"
	"time"

	"controle_pragas/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func sampleEvaluation() entities.Evaluation {
	now := time.Date(2026, time.April, 3, 14, 5, 6, 789, time.UTC)
	area := decimal.RequireFromString("1200.5")
	return entities.Evaluation{
		ID:             "0a1b2c3d-0000-4000-8000-000000000000",
		CreatedBy:      "uid-1",
		EvaluatorName:  "Ana",
		EvaluatorUnit:  "Sede",
		EvaluatorRole:  entities.RoleTitular,
		ReferenceMonth: "Março",
		ReferenceYear:  2026,
		Services:       entities.ServiceSelection{Insect: true, Termite: true},
		Financials: entities.EvaluationFinancials{
			Details: entities.FinancialDetails{
				Insect:  entities.ServiceFinancials{AreaSquareMeters: area, UnitPriceCents: 4550, DiscountCents: 109246},
				Rodent:  entities.ServiceFinancials{AreaSquareMeters: area, UnitPriceCents: 12000},
				Termite: entities.ServiceFinancials{AreaSquareMeters: area, UnitPriceCents: 8575},
			},
			Totals: entities.FinancialTotals{TotalValueCents: 15756563, TotalDiscountCents: 109246, TotalFinalCents: 15647317},
		},
		General: entities.GeneralChecklist{EmployeeIdentified: true, EPIUsed: false, DamageRecovered: false, ProofDelivered: true},
		Insect: &entities.ServiceChecklist{
			ExecutedAreaSquareMeters: area,
			FollowedSchedule:         false,
			DelayDays:                3,
			TrapsOrBaitsMaintained:   true,
			HadExtraCall:             true,
			ExtraCallOnTime:          false,
			ExtraCallEffective:       true,
		},
		Termite:            &entities.TermiteChecklist{ChemicalBarrierApplied: true},
		Unit:               "Sede",
		Location:           "Sede",
		PrimaryServiceType: entities.ServiceTypeCupins,
		ComplianceScore:    100,
		Status:             entities.EvaluationStatusEmAndamento,
		RecordedAt:         now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func TestEvaluationItemMapping(t *testing.T) {
	e := sampleEvaluation()
	it := toEvaluationItem(e)

	if it.Financials.Insect.Area != "1.200,5" {
		t.Fatalf("area = %q", it.Financials.Insect.Area)
	}
	if it.Financials.Insect.UnitPrice != "45,50" || it.Financials.Insect.Discount != "1.092,46" {
		t.Fatalf("unexpected money: %+v", it.Financials.Insect)
	}
	if it.Financials.TotalFinal != "156.473,17" {
		t.Fatalf("total final = %q", it.Financials.TotalFinal)
	}
	if it.Rodent != nil {
		t.Fatalf("unselected checklist must not be stored")
	}

	back := fromEvaluationItem(it)
	if back.Financials.Details.Insect.DiscountCents != 109246 || !back.Financials.Details.Insect.AreaSquareMeters.Equal(e.Financials.Details.Insect.AreaSquareMeters) {
		t.Fatalf("financials lost: %+v", back.Financials.Details.Insect)
	}
	if back.Financials.Totals != e.Financials.Totals {
		t.Fatalf("totals lost: %+v", back.Financials.Totals)
	}
	if back.Insect == nil || back.Insect.DelayDays != 3 || back.Insect.ExtraCallOnTime {
		t.Fatalf("checklist lost: %+v", back.Insect)
	}
	if !back.RecordedAt.Equal(e.RecordedAt) {
		t.Fatalf("recorded_at = %v", back.RecordedAt)
	}
}

func TestEvaluationDynamoRepository(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamoDB("id")
	repo := NewEvaluationDynamoRepository(ddb, "")

	if repo.tableName != defaultEvaluationsTableName {
		t.Fatalf("table = %q", repo.tableName)
	}

	e := sampleEvaluation()
	t.Run("create and get", func(t *testing.T) {
		if _, err := repo.Create(ctx, e); err != nil {
			t.Fatalf("create: %v", err)
		}
		got, err := repo.GetByID(ctx, e.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != e.ID || got.Status != e.Status || got.Termite == nil || !got.Termite.ChemicalBarrierApplied {
			t.Fatalf("unexpected evaluation: %+v", got)
		}
	})

	t.Run("duplicate create fails", func(t *testing.T) {
		_, err := repo.Create(ctx, e)
		if !isConditionalCheckFailed(err) {
			t.Fatalf("expected conditional check failure, got %v", err)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "missing")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero evaluation, got %+v %v", got, err)
		}
	})

	t.Run("update missing returns zero", func(t *testing.T) {
		other := e
		other.ID = "other"
		got, err := repo.Update(ctx, other)
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero evaluation, got %+v %v", got, err)
		}
	})

	t.Run("update status", func(t *testing.T) {
		got, err := repo.UpdateStatus(ctx, e.ID, entities.EvaluationStatusRevisaoPend)
		if err != nil {
			t.Fatalf("update status: %v", err)
		}
		if got.Status != entities.EvaluationStatusRevisaoPend || got.EvaluatorName != "Ana" {
			t.Fatalf("unexpected evaluation: %+v", got)
		}
		if _, ok := ddb.items[e.ID]["updated_at"].(*types.AttributeValueMemberS); !ok {
			t.Fatalf("updated_at not written")
		}
	})

	t.Run("update status missing", func(t *testing.T) {
		got, err := repo.UpdateStatus(ctx, "missing", entities.EvaluationStatusConcluido)
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero evaluation, got %+v %v", got, err)
		}
	})

	t.Run("list and delete", func(t *testing.T) {
		list, err := repo.List(ctx)
		if err != nil || len(list) != 1 {
			t.Fatalf("list = %d %v", len(list), err)
		}
		ok, err := repo.Delete(ctx, e.ID)
		if err != nil || !ok {
			t.Fatalf("delete = %v %v", ok, err)
		}
		ok, err = repo.Delete(ctx, e.ID)
		if err != nil || ok {
			t.Fatalf("second delete = %v %v", ok, err)
		}
	})
}
