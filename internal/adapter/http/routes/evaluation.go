package routes

import (
	"controle_pragas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions    = "/sessions"
	PathEvaluations = "/evaluations"
)

func addSessionRoutes(rg *gin.RouterGroup, h *handlers.SessionHandler) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", h.Start)
		sessions.GET("/:id", h.Get)
		sessions.PATCH("/:id", h.Mutate)
		sessions.DELETE("/:id", h.Discard)
		sessions.PATCH("/:id/discounts/:category", h.OverrideDiscount)
		sessions.POST("/:id/refresh", h.RefreshBaseline)
		sessions.POST("/:id/submit", h.Submit)
	}
	rg.POST(PathEvaluations+"/:id/sessions", h.StartEdit)
}

func addEvaluationRoutes(rg *gin.RouterGroup, h *handlers.EvaluationHandler) {
	evaluations := rg.Group(PathEvaluations)
	{
		evaluations.POST("/preview", h.Preview)
		evaluations.GET("", h.List)
		evaluations.GET("/export", h.Export)
		evaluations.GET("/:id", h.GetByID)
		evaluations.PATCH("/:id/reopen", h.Reopen)
		evaluations.PATCH("/:id/status", h.UpdateStatus)
		evaluations.DELETE("/:id", h.Delete)
	}
}
