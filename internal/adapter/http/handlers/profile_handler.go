package handlers

import (
	"errors"
	"net/http"

	request "controle_pragas/internal/adapter/http/dto/request"
	"controle_pragas/internal/adapter/http/middleware"
	"controle_pragas/internal/usecase"
	"controle_pragas/pkg"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the caller's own evaluator profile.
type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.usecase.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, mapProfileError(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) Save(c *gin.Context) {
	var payload request.ProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	p, err := h.usecase.Save(c.Request.Context(), middleware.UserID(c), payload.ToEntity())
	if err != nil {
		writeError(c, mapProfileError(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

func mapProfileError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrProfileNameRequired):
		return pkg.NewFieldError("name", "Name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProfileUnitRequired):
		return pkg.NewFieldError("unit", "Unit is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProfileRole):
		return pkg.NewFieldError("role", "Role must be Titular or Substituto", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Profile not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
