package routes

import (
	"controle_pragas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSettings   = "/settings"
	PathUnits      = "/units"
	PathProfile    = "/profile"
	PathAlerts     = "/alerts"
	PathHiringDocs = "/hiring-docs"
	PathDashboard  = "/dashboard"
)

func addSettingsRoutes(rg *gin.RouterGroup, h *handlers.SettingsHandler) {
	rg.GET(PathSettings, h.Get)
	rg.PUT(PathSettings, h.Save)
}

func addUnitRoutes(rg *gin.RouterGroup, h *handlers.UnitHandler) {
	units := rg.Group(PathUnits)
	{
		units.GET("", h.List)
		units.POST("", h.Create)
		units.GET("/:id", h.GetByID)
		units.PUT("/:id", h.Update)
		units.DELETE("/:id", h.Delete)
	}
}

func addProfileRoutes(rg *gin.RouterGroup, h *handlers.ProfileHandler) {
	rg.GET(PathProfile, h.Get)
	rg.PUT(PathProfile, h.Save)
}

func addAlertRoutes(rg *gin.RouterGroup, h *handlers.AlertHandler) {
	alerts := rg.Group(PathAlerts)
	{
		alerts.GET("", h.List)
		alerts.POST("", h.Create)
		alerts.GET("/active", h.ListActive)
		alerts.PUT("/:id", h.Update)
		alerts.DELETE("/:id", h.Delete)
	}
}

func addHiringDocRoutes(rg *gin.RouterGroup, h *handlers.HiringDocHandler) {
	docs := rg.Group(PathHiringDocs)
	{
		docs.GET("", h.List)
		docs.POST("", h.Register)
		docs.DELETE("/:id", h.Delete)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	rg.GET(PathDashboard, h.Get)
}
