package handlers

import (
	"errors"
	"net/http"

	request "controle_pragas/internal/adapter/http/dto/request"
	"controle_pragas/internal/usecase"
	"controle_pragas/pkg"

	"github.com/gin-gonic/gin"
)

type HiringDocHandler struct {
	usecase usecase.IHiringDocUseCase
}

func NewHiringDocHandler(uc usecase.IHiringDocUseCase) *HiringDocHandler {
	return &HiringDocHandler{usecase: uc}
}

func (h *HiringDocHandler) Register(c *gin.Context) {
	var payload request.HiringDocRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	d, err := h.usecase.Register(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapHiringDocError(err))
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *HiringDocHandler) List(c *gin.Context) {
	docs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapHiringDocError(err))
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *HiringDocHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapHiringDocError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapHiringDocError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidHiringDocID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrHiringDocNameRequired):
		return pkg.NewFieldError("name", "Name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrHiringDocURLRequired):
		return pkg.NewFieldError("url", "URL is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidHiringDocType):
		return pkg.NewFieldError("type", "Type must be nf or doc", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrHiringDocNotFound):
		return pkg.NewDomainErrorSimple("HIRING_DOC_NOT_FOUND", "Hiring document not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
