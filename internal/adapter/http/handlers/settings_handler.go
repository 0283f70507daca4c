package handlers

import (
	"errors"
	"net/http"

	request "controle_pragas/internal/adapter/http/dto/request"
	"controle_pragas/internal/usecase"
	"controle_pragas/pkg"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		writeError(c, mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SettingsHandler) Save(c *gin.Context) {
	var payload request.SettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	s, err := h.usecase.Save(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, s)
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTariff):
		return pkg.NewFieldError("tariffs", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidNotificationPeriod):
		return pkg.NewFieldError("notification_periods", "Notification periods must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidNotificationFrequency):
		return pkg.NewFieldError("notification_frequency", "Frequency must be once or weekly", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
