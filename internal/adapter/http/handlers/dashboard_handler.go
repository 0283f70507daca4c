package handlers

import (
	"net/http"

	response "controle_pragas/internal/adapter/http/dto/response"
	"controle_pragas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	d, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(d))
}
