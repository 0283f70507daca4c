package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/domain/evaluation"
	mock_interfaces "controle_pragas/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newEvaluationUseCase(t *testing.T) (*EvaluationUseCase, *mock_interfaces.MockIEvaluationRepository, *mock_interfaces.MockIEvaluationExporter) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIEvaluationRepository(ctrl)
	exporter := mock_interfaces.NewMockIEvaluationExporter(ctrl)
	uc := NewEvaluationUseCase(repo, exporter, zap.NewNop())
	uc.now = func() time.Time { return sessionNow }
	return uc, repo, exporter
}

func TestEvaluationUseCase_Preview(t *testing.T) {
	uc, _, _ := newEvaluationUseCase(t)
	insect := evaluation.DefaultServiceChecklist()
	insect.FollowedSchedule = false
	insect.DelayDays = 5

	res := uc.Preview(PreviewInput{
		Services: entities.ServiceSelection{Insect: true},
		Financials: entities.FinancialDetails{
			Insect: entities.ServiceFinancials{AreaSquareMeters: decimal.NewFromInt(500), UnitPriceCents: 4550},
		},
		Checklists: evaluation.Checklists{General: evaluation.DefaultGeneralChecklist(), Insect: &insect},
	})

	if res.Discounts.Insect.DiscountCents != 22750 || res.Financials.Insect.DiscountCents != 22750 {
		t.Fatalf("unexpected discount: %+v", res.Discounts.Insect)
	}
	if res.Summary.TotalValueCents != 2275000 || res.Summary.TotalFinalCents != 2252250 {
		t.Fatalf("unexpected summary: %+v", res.Summary)
	}
}

func TestEvaluationUseCase_Create(t *testing.T) {
	t.Run("rejects review status", func(t *testing.T) {
		uc, _, _ := newEvaluationUseCase(t)
		_, err := uc.Create(context.Background(), entities.Evaluation{Status: entities.EvaluationStatusRevisaoPend})
		if !errors.Is(err, ErrInvalidEvaluationStatus) {
			t.Fatalf("expected ErrInvalidEvaluationStatus, got %v", err)
		}
	})

	t.Run("assigns id and timestamps", func(t *testing.T) {
		uc, repo, _ := newEvaluationUseCase(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.Evaluation) (entities.Evaluation, error) {
			if e.ID == "" || !e.CreatedAt.Equal(sessionNow) || !e.UpdatedAt.Equal(sessionNow) {
				t.Fatalf("unexpected evaluation: %+v", e)
			}
			return e, nil
		})
		if _, err := uc.Create(context.Background(), entities.Evaluation{Status: entities.EvaluationStatusEmAndamento}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEvaluationUseCase_Update(t *testing.T) {
	existing := entities.Evaluation{ID: "ev-1", CreatedBy: "uid-1", Status: entities.EvaluationStatusEmAndamento}

	t.Run("not found", func(t *testing.T) {
		uc, repo, _ := newEvaluationUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "ev-1").Return(entities.Evaluation{}, nil)
		_, err := uc.Update(context.Background(), "uid-1", entities.Evaluation{ID: "ev-1", Status: entities.EvaluationStatusConcluido})
		if !errors.Is(err, ErrEvaluationNotFound) {
			t.Fatalf("expected ErrEvaluationNotFound, got %v", err)
		}
	})

	t.Run("other evaluator", func(t *testing.T) {
		uc, repo, _ := newEvaluationUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "ev-1").Return(existing, nil)
		_, err := uc.Update(context.Background(), "uid-2", entities.Evaluation{ID: "ev-1", Status: entities.EvaluationStatusConcluido})
		if !errors.Is(err, ErrEvaluationForbidden) {
			t.Fatalf("expected ErrEvaluationForbidden, got %v", err)
		}
	})

	t.Run("completed is locked", func(t *testing.T) {
		uc, repo, _ := newEvaluationUseCase(t)
		done := existing
		done.Status = entities.EvaluationStatusConcluido
		repo.EXPECT().GetByID(gomock.Any(), "ev-1").Return(done, nil)
		_, err := uc.Update(context.Background(), "uid-1", entities.Evaluation{ID: "ev-1", Status: entities.EvaluationStatusConcluido})
		if !errors.Is(err, ErrEvaluationNotEditable) {
			t.Fatalf("expected ErrEvaluationNotEditable, got %v", err)
		}
	})

	t.Run("vanished between read and write", func(t *testing.T) {
		uc, repo, _ := newEvaluationUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "ev-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Evaluation{}, nil)
		_, err := uc.Update(context.Background(), "uid-1", entities.Evaluation{ID: "ev-1", Status: entities.EvaluationStatusConcluido})
		if !errors.Is(err, ErrEvaluationNotFound) {
			t.Fatalf("expected ErrEvaluationNotFound, got %v", err)
		}
	})

	t.Run("keeps the evaluated unit", func(t *testing.T) {
		uc, repo, _ := newEvaluationUseCase(t)
		stored := existing
		stored.Unit, stored.Location = "Sede", "Sede"
		stored.CreatedAt = sessionNow.Add(-24 * time.Hour)
		repo.EXPECT().GetByID(gomock.Any(), "ev-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.Evaluation) (entities.Evaluation, error) {
			return e, nil
		})

		got, err := uc.Update(context.Background(), "uid-1", entities.Evaluation{
			ID:            "ev-1",
			EvaluatorUnit: "Anexo II",
			Unit:          "Anexo II",
			Location:      "Anexo II",
			Status:        entities.EvaluationStatusConcluido,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Unit != "Sede" || got.Location != "Sede" {
			t.Fatalf("expected unit to stay Sede, got %q / %q", got.Unit, got.Location)
		}
		if got.EvaluatorUnit != "Anexo II" || !got.CreatedAt.Equal(stored.CreatedAt) || !got.UpdatedAt.Equal(sessionNow) {
			t.Fatalf("unexpected record: %+v", got)
		}
	})
}

func TestEvaluationUseCase_Reopen(t *testing.T) {
	t.Run("only completed", func(t *testing.T) {
		uc, repo, _ := newEvaluationUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "ev-1").Return(entities.Evaluation{ID: "ev-1", CreatedBy: "uid-1", Status: entities.EvaluationStatusEmAndamento}, nil)
		_, err := uc.Reopen(context.Background(), "uid-1", "ev-1")
		if !errors.Is(err, ErrEvaluationNotCompleted) {
			t.Fatalf("expected ErrEvaluationNotCompleted, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, repo, _ := newEvaluationUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "ev-1").Return(entities.Evaluation{ID: "ev-1", CreatedBy: "uid-1", Status: entities.EvaluationStatusConcluido}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "ev-1", entities.EvaluationStatusEmAndamento).Return(entities.Evaluation{ID: "ev-1", Status: entities.EvaluationStatusEmAndamento}, nil)
		got, err := uc.Reopen(context.Background(), "uid-1", "ev-1")
		if err != nil || got.Status != entities.EvaluationStatusEmAndamento {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})
}

func TestEvaluationUseCase_UpdateStatus(t *testing.T) {
	t.Run("in progress is not a review status", func(t *testing.T) {
		uc, _, _ := newEvaluationUseCase(t)
		_, err := uc.UpdateStatus(context.Background(), "ev-1", entities.EvaluationStatusEmAndamento)
		if !errors.Is(err, ErrInvalidEvaluationStatus) {
			t.Fatalf("expected ErrInvalidEvaluationStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo, _ := newEvaluationUseCase(t)
		repo.EXPECT().UpdateStatus(gomock.Any(), "ev-1", entities.EvaluationStatusAcaoNecessaria).Return(entities.Evaluation{}, nil)
		_, err := uc.UpdateStatus(context.Background(), "ev-1", entities.EvaluationStatusAcaoNecessaria)
		if !errors.Is(err, ErrEvaluationNotFound) {
			t.Fatalf("expected ErrEvaluationNotFound, got %v", err)
		}
	})
}

func TestEvaluationUseCase_List(t *testing.T) {
	uc, repo, _ := newEvaluationUseCase(t)
	old := entities.Evaluation{ID: "aaaaaa11", Unit: "Sede", Location: "Sede", CreatedAt: sessionNow.Add(-time.Hour)}
	recent := entities.Evaluation{ID: "bbbbbb22", Unit: "Anexo II", Location: "Anexo II", CreatedAt: sessionNow}
	repo.EXPECT().List(gomock.Any()).Return([]entities.Evaluation{old, recent}, nil).Times(3)

	all, err := uc.List(context.Background(), "")
	if err != nil || len(all) != 2 || all[0].ID != "bbbbbb22" {
		t.Fatalf("expected newest first, got %+v %v", all, err)
	}

	byUnit, _ := uc.List(context.Background(), "anexo")
	if len(byUnit) != 1 || byUnit[0].ID != "bbbbbb22" {
		t.Fatalf("unexpected unit filter result: %+v", byUnit)
	}

	byDisplayID, _ := uc.List(context.Background(), "#ev-aaa")
	if len(byDisplayID) != 1 || byDisplayID[0].ID != "aaaaaa11" {
		t.Fatalf("unexpected display id filter result: %+v", byDisplayID)
	}
}

func TestEvaluationUseCase_Delete(t *testing.T) {
	t.Run("completed cannot be deleted", func(t *testing.T) {
		uc, repo, _ := newEvaluationUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "ev-1").Return(entities.Evaluation{ID: "ev-1", Status: entities.EvaluationStatusConcluido}, nil)
		if err := uc.Delete(context.Background(), "ev-1"); !errors.Is(err, ErrEvaluationNotDeletable) {
			t.Fatalf("expected ErrEvaluationNotDeletable, got %v", err)
		}
	})

	t.Run("in progress", func(t *testing.T) {
		uc, repo, _ := newEvaluationUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "ev-1").Return(entities.Evaluation{ID: "ev-1", Status: entities.EvaluationStatusEmAndamento}, nil)
		repo.EXPECT().Delete(gomock.Any(), "ev-1").Return(true, nil)
		if err := uc.Delete(context.Background(), "ev-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEvaluationUseCase_Export(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc, repo, exporter := newEvaluationUseCase(t)
		repo.EXPECT().List(gomock.Any()).Return([]entities.Evaluation{{ID: "ev-1", Unit: "Sede"}}, nil)
		exporter.EXPECT().Export(gomock.Len(1)).Return([]byte("xlsx"), nil)

		data, err := uc.Export(context.Background(), "sede")
		if err != nil || string(data) != "xlsx" {
			t.Fatalf("unexpected result: %q %v", data, err)
		}
	})

	t.Run("exporter error", func(t *testing.T) {
		uc, repo, exporter := newEvaluationUseCase(t)
		repo.EXPECT().List(gomock.Any()).Return(nil, nil)
		exporter.EXPECT().Export(gomock.Any()).Return(nil, errors.New("excel"))

		if _, err := uc.Export(context.Background(), ""); err == nil || err.Error() != "excel" {
			t.Fatalf("expected excel error, got %v", err)
		}
	})
}
