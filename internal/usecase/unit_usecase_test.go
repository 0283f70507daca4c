package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"controle_pragas/internal/domain/entities"
	mock_interfaces "controle_pragas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newUnitUseCase(t *testing.T) (*UnitUseCase, *mock_interfaces.MockIUnitRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIUnitRepository(ctrl)
	uc := NewUnitUseCase(repo, zap.NewNop())
	uc.now = func() time.Time { return sessionNow }
	return uc, repo
}

func TestUnitUseCase_Create(t *testing.T) {
	tests := []struct {
		name    string
		in      entities.Unit
		wantErr error
	}{
		{name: "missing name", in: entities.Unit{SquareMeters: "10"}, wantErr: ErrUnitNameRequired},
		{name: "malformed area", in: entities.Unit{Name: "Sede", SquareMeters: "dez"}, wantErr: ErrInvalidUnitArea},
		{name: "negative area", in: entities.Unit{Name: "Sede", SquareMeters: "-1"}, wantErr: ErrInvalidUnitArea},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newUnitUseCase(t)
			if _, err := uc.Create(context.Background(), tt.in); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		uc, repo := newUnitUseCase(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entities.Unit) (entities.Unit, error) {
			return u, nil
		})

		got, err := uc.Create(context.Background(), entities.Unit{Name: " Sede ", SquareMeters: "1.250,5"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" || got.Name != "Sede" || !got.CreatedAt.Equal(sessionNow) {
			t.Fatalf("unexpected unit: %+v", got)
		}
	})
}

func TestUnitUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, repo := newUnitUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.Unit{}, nil)
		if _, err := uc.Update(context.Background(), "u-1", entities.Unit{Name: "Sede", SquareMeters: "10"}); !errors.Is(err, ErrUnitNotFound) {
			t.Fatalf("expected ErrUnitNotFound, got %v", err)
		}
	})

	t.Run("keeps identity", func(t *testing.T) {
		uc, repo := newUnitUseCase(t)
		created := sessionNow.Add(-24 * time.Hour)
		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.Unit{ID: "u-1", Name: "Sede", CreatedAt: created}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entities.Unit) (entities.Unit, error) {
			return u, nil
		})

		got, err := uc.Update(context.Background(), "u-1", entities.Unit{ID: "other", Name: "Sede Nova", SquareMeters: "10"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "u-1" || !got.CreatedAt.Equal(created) || !got.UpdatedAt.Equal(sessionNow) {
			t.Fatalf("unexpected unit: %+v", got)
		}
	})
}

func TestUnitUseCase_List(t *testing.T) {
	uc, repo := newUnitUseCase(t)
	repo.EXPECT().List(gomock.Any()).Return([]entities.Unit{{Name: "sede"}, {Name: "Anexo"}}, nil)

	got, err := uc.List(context.Background())
	if err != nil || got[0].Name != "Anexo" {
		t.Fatalf("expected sorted by name, got %+v %v", got, err)
	}
}

func TestUnitUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newUnitUseCase(t)
		if err := uc.Delete(context.Background(), " "); !errors.Is(err, ErrInvalidUnitID) {
			t.Fatalf("expected ErrInvalidUnitID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo := newUnitUseCase(t)
		repo.EXPECT().Delete(gomock.Any(), "u-1").Return(false, nil)
		if err := uc.Delete(context.Background(), "u-1"); !errors.Is(err, ErrUnitNotFound) {
			t.Fatalf("expected ErrUnitNotFound, got %v", err)
		}
	})
}
