package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"controle_pragas/internal/adapter/http/handlers/mocks"
	"controle_pragas/internal/adapter/http/middleware"
	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestSettingsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	newRouter := func(h *SettingsHandler) *gin.Engine {
		r := gin.New()
		g := r.Group("/v1", middleware.RequireUser())
		g.GET("/settings", h.Get)
		g.PUT("/settings", h.Save)
		return r
	}

	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISettingsUseCase(ctrl)
		uc.EXPECT().Get(gomock.Any()).Return(entities.DefaultSettings(), nil)

		w := doRequest(newRouter(NewSettingsHandler(uc)), http.MethodGet, "/v1/settings", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid tariff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISettingsUseCase(ctrl)
		uc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Settings{}, fmt.Errorf("%w: tariff 1 has no label", usecase.ErrInvalidTariff))

		w := doRequest(newRouter(NewSettingsHandler(uc)), http.MethodPut, "/v1/settings", `{"tariffs":[{"label":"","value":"1"}]}`)
		if w.Code != http.StatusBadRequest || decodeError(t, w).Field != "tariffs" {
			t.Fatalf("expected tariffs field error, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISettingsUseCase(ctrl)
		uc.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, s entities.Settings) (entities.Settings, error) {
			if s.NotificationFrequency != entities.NotificationWeekly || s.Tariffs[0].Value != "45,50" {
				t.Fatalf("unexpected settings: %+v", s)
			}
			return s, nil
		})

		w := doRequest(newRouter(NewSettingsHandler(uc)), http.MethodPut, "/v1/settings",
			`{"notification_frequency":"weekly","tariffs":[{"label":"Insetos","value":"45,50"}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestUnitHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	newRouter := func(h *UnitHandler) *gin.Engine {
		r := gin.New()
		g := r.Group("/v1", middleware.RequireUser())
		g.GET("/units", h.List)
		g.POST("/units", h.Create)
		g.GET("/units/:id", h.GetByID)
		g.PUT("/units/:id", h.Update)
		g.DELETE("/units/:id", h.Delete)
		return r
	}

	t.Run("create requires name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIUnitUseCase(ctrl)

		w := doRequest(newRouter(NewUnitHandler(uc)), http.MethodPost, "/v1/units", `{"square_meters":"10"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIUnitUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Unit{ID: "u-1", Name: "Sede", SquareMeters: "1.250,5"}, nil)

		w := doRequest(newRouter(NewUnitHandler(uc)), http.MethodPost, "/v1/units", `{"name":"Sede","square_meters":"1.250,5"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("invalid area", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIUnitUseCase(ctrl)
		uc.EXPECT().Update(gomock.Any(), "u-1", gomock.Any()).Return(entities.Unit{}, usecase.ErrInvalidUnitArea)

		w := doRequest(newRouter(NewUnitHandler(uc)), http.MethodPut, "/v1/units/u-1", `{"name":"Sede","square_meters":"abc"}`)
		if w.Code != http.StatusBadRequest || decodeError(t, w).Field != "square_meters" {
			t.Fatalf("expected square_meters field error, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIUnitUseCase(ctrl)
		uc.EXPECT().Delete(gomock.Any(), "u-1").Return(usecase.ErrUnitNotFound)

		w := doRequest(newRouter(NewUnitHandler(uc)), http.MethodDelete, "/v1/units/u-1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestProfileHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	newRouter := func(h *ProfileHandler) *gin.Engine {
		r := gin.New()
		g := r.Group("/v1", middleware.RequireUser())
		g.GET("/profile", h.Get)
		g.PUT("/profile", h.Save)
		return r
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProfileUseCase(ctrl)
		uc.EXPECT().Get(gomock.Any(), "uid-1").Return(entities.UserProfile{}, usecase.ErrProfileNotFound)

		w := doRequest(newRouter(NewProfileHandler(uc)), http.MethodGet, "/v1/profile", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProfileUseCase(ctrl)
		uc.EXPECT().Save(gomock.Any(), "uid-1", gomock.Any()).Return(entities.UserProfile{}, usecase.ErrInvalidProfileRole)

		w := doRequest(newRouter(NewProfileHandler(uc)), http.MethodPut, "/v1/profile", `{"name":"Ana","unit":"Sede","role":"Chefe"}`)
		if w.Code != http.StatusBadRequest || decodeError(t, w).Field != "role" {
			t.Fatalf("expected role field error, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProfileUseCase(ctrl)
		want := entities.UserProfile{Name: "Ana", Unit: "Sede", Role: entities.RoleTitular}
		uc.EXPECT().Save(gomock.Any(), "uid-1", want).Return(entities.UserProfile{UID: "uid-1", Name: "Ana", Unit: "Sede", Role: entities.RoleTitular}, nil)

		w := doRequest(newRouter(NewProfileHandler(uc)), http.MethodPut, "/v1/profile", `{"name":"Ana","unit":"Sede","role":"Titular"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAlertHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	newRouter := func(h *AlertHandler) *gin.Engine {
		r := gin.New()
		g := r.Group("/v1", middleware.RequireUser())
		g.GET("/alerts", h.List)
		g.POST("/alerts", h.Create)
		g.GET("/alerts/active", h.ListActive)
		g.PUT("/alerts/:id", h.Update)
		g.DELETE("/alerts/:id", h.Delete)
		return r
	}

	t.Run("list pages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAlertUseCase(ctrl)
		uc.EXPECT().List(gomock.Any(), "agua", 2).Return(usecase.AlertPage{Page: 2, PageSize: 10, Total: 11, TotalPages: 2}, nil)

		w := doRequest(newRouter(NewAlertHandler(uc)), http.MethodGet, "/v1/alerts?search=agua&page=2", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Items      []any `json:"items"`
			TotalPages int   `json:"total_pages"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Items == nil || body.TotalPages != 2 {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})

	t.Run("non numeric page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAlertUseCase(ctrl)

		w := doRequest(newRouter(NewAlertHandler(uc)), http.MethodGet, "/v1/alerts?page=two", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAlertUseCase(ctrl)
		expires := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().Create(gomock.Any(), entities.SystemAlert{Title: "Dedetização", Severity: entities.AlertSeverityHigh, ExpiresAt: expires}).
			Return(entities.SystemAlert{ID: "a-1", Title: "Dedetização", Severity: entities.AlertSeverityHigh, ExpiresAt: expires}, nil)

		w := doRequest(newRouter(NewAlertHandler(uc)), http.MethodPost, "/v1/alerts",
			`{"title":"Dedetização","severity":"high","expires_at":"2026-04-01T00:00:00Z"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAlertUseCase(ctrl)
		uc.EXPECT().ListActive(gomock.Any()).Return([]entities.SystemAlert{{ID: "a-1"}}, nil)

		w := doRequest(newRouter(NewAlertHandler(uc)), http.MethodGet, "/v1/alerts/active", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("update not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAlertUseCase(ctrl)
		uc.EXPECT().Update(gomock.Any(), "a-1", gomock.Any()).Return(entities.SystemAlert{}, usecase.ErrAlertNotFound)

		w := doRequest(newRouter(NewAlertHandler(uc)), http.MethodPut, "/v1/alerts/a-1", `{"title":"Aviso","expires_at":"2026-04-01T00:00:00Z"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestHiringDocHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	newRouter := func(h *HiringDocHandler) *gin.Engine {
		r := gin.New()
		g := r.Group("/v1", middleware.RequireUser())
		g.GET("/hiring-docs", h.List)
		g.POST("/hiring-docs", h.Register)
		g.DELETE("/hiring-docs/:id", h.Delete)
		return r
	}

	t.Run("invalid type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIHiringDocUseCase(ctrl)
		uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(entities.HiringDoc{}, usecase.ErrInvalidHiringDocType)

		w := doRequest(newRouter(NewHiringDocHandler(uc)), http.MethodPost, "/v1/hiring-docs", `{"name":"NF","url":"https://files/nf.pdf","type":"xls"}`)
		if w.Code != http.StatusBadRequest || decodeError(t, w).Field != "type" {
			t.Fatalf("expected type field error, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIHiringDocUseCase(ctrl)
		uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("dynamodb"))

		w := doRequest(newRouter(NewHiringDocHandler(uc)), http.MethodGet, "/v1/hiring-docs", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIHiringDocUseCase(ctrl)
		uc.EXPECT().Delete(gomock.Any(), "d-1").Return(nil)

		w := doRequest(newRouter(NewHiringDocHandler(uc)), http.MethodDelete, "/v1/hiring-docs/d-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestDashboardHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDashboardUseCase(ctrl)
	uc.EXPECT().Get(gomock.Any()).Return(usecase.Dashboard{
		Settings:             entities.DefaultSettings(),
		Units:                []usecase.UnitStatus{{Unit: entities.Unit{Name: "Sede"}, CompletedThisMonth: true}},
		EvaluationsThisMonth: 1,
		CompliancePercent:    decimal.RequireFromString("33.3"),
	}, nil)

	r := gin.New()
	r.GET("/v1/dashboard", middleware.RequireUser(), NewDashboardHandler(uc).Get)
	w := doRequest(r, http.MethodGet, "/v1/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		CompliancePercent string `json:"compliance_percent"`
		Units             []struct {
			Name               string `json:"name"`
			CompletedThisMonth bool   `json:"completed_this_month"`
		} `json:"units"`
		ActiveAlerts []any `json:"active_alerts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if body.CompliancePercent != "33,3" || len(body.Units) != 1 || !body.Units[0].CompletedThisMonth || body.ActiveAlerts == nil {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}
}
