package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "controle_pragas/internal/adapter/http/dto/request"
	response "controle_pragas/internal/adapter/http/dto/response"
	"controle_pragas/internal/usecase"
	"controle_pragas/pkg"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	usecase usecase.IAlertUseCase
}

func NewAlertHandler(uc usecase.IAlertUseCase) *AlertHandler {
	return &AlertHandler{usecase: uc}
}

func (h *AlertHandler) Create(c *gin.Context) {
	var payload request.AlertRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	a, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapAlertError(err))
		return
	}
	c.JSON(http.StatusCreated, a)
}

// List pages the alert list; page defaults to 1.
func (h *AlertHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		writeError(c, pkg.NewFieldError("page", "Page must be a number", http.StatusBadRequest))
		return
	}
	res, err := h.usecase.List(c.Request.Context(), c.Query("search"), page)
	if err != nil {
		writeError(c, mapAlertError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAlertPage(res))
}

func (h *AlertHandler) ListActive(c *gin.Context) {
	alerts, err := h.usecase.ListActive(c.Request.Context())
	if err != nil {
		writeError(c, mapAlertError(err))
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func (h *AlertHandler) Update(c *gin.Context) {
	var payload request.AlertRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	a, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		writeError(c, mapAlertError(err))
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AlertHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapAlertError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapAlertError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAlertID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrAlertTitleRequired):
		return pkg.NewFieldError("title", "Title is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAlertSeverity):
		return pkg.NewFieldError("severity", "Severity must be low, medium or high", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAlertExpiresRequired):
		return pkg.NewFieldError("expires_at", "Expiration is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAlertListPage):
		return pkg.NewFieldError("page", "Page must be at least 1", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAlertNotFound):
		return pkg.NewDomainErrorSimple("ALERT_NOT_FOUND", "Alert not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
