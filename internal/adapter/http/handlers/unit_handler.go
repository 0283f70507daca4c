package handlers

import (
	"errors"
	"net/http"

	request "controle_pragas/internal/adapter/http/dto/request"
	"controle_pragas/internal/usecase"
	"controle_pragas/pkg"

	"github.com/gin-gonic/gin"
)

type UnitHandler struct {
	usecase usecase.IUnitUseCase
}

func NewUnitHandler(uc usecase.IUnitUseCase) *UnitHandler {
	return &UnitHandler{usecase: uc}
}

func (h *UnitHandler) Create(c *gin.Context) {
	var payload request.UnitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	u, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapUnitError(err))
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *UnitHandler) List(c *gin.Context) {
	units, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapUnitError(err))
		return
	}
	c.JSON(http.StatusOK, units)
}

func (h *UnitHandler) GetByID(c *gin.Context) {
	u, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapUnitError(err))
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UnitHandler) Update(c *gin.Context) {
	var payload request.UnitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	u, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		writeError(c, mapUnitError(err))
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UnitHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapUnitError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapUnitError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUnitID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrUnitNameRequired):
		return pkg.NewFieldError("name", "Unit name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidUnitArea):
		return pkg.NewFieldError("square_meters", "Square meters must be a non-negative number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnitNotFound):
		return pkg.NewDomainErrorSimple("UNIT_NOT_FOUND", "Unit not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
