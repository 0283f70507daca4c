package handlers

import (
	"errors"
	"net/http"

	request "controle_pragas/internal/adapter/http/dto/request"
	response "controle_pragas/internal/adapter/http/dto/response"
	"controle_pragas/internal/adapter/http/middleware"
	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/usecase"
	"controle_pragas/pkg"

	"github.com/gin-gonic/gin"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportFilename  = "avaliacoes.xlsx"
)

type EvaluationHandler struct {
	usecase usecase.IEvaluationUseCase
}

func NewEvaluationHandler(uc usecase.IEvaluationUseCase) *EvaluationHandler {
	return &EvaluationHandler{usecase: uc}
}

// Preview computes discounts and totals for a full answer state without storing
// anything.
func (h *EvaluationHandler) Preview(c *gin.Context) {
	var payload request.PreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, mapPreviewInputError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPreview(h.usecase.Preview(in)))
}

func (h *EvaluationHandler) List(c *gin.Context) {
	evals, err := h.usecase.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		writeError(c, mapEvaluationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEvaluations(evals))
}

func (h *EvaluationHandler) Export(c *gin.Context) {
	data, err := h.usecase.Export(c.Request.Context(), c.Query("search"))
	if err != nil {
		writeError(c, mapEvaluationError(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *EvaluationHandler) GetByID(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEvaluationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEvaluation(e))
}

func (h *EvaluationHandler) Reopen(c *gin.Context) {
	e, err := h.usecase.Reopen(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		writeError(c, mapEvaluationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEvaluation(e))
}

func (h *EvaluationHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	e, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.EvaluationStatus(payload.Status))
	if err != nil {
		writeError(c, mapEvaluationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEvaluation(e))
}

func (h *EvaluationHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapEvaluationError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapPreviewInputError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidArea):
		return pkg.NewFieldError("area", "Invalid area", http.StatusBadRequest)
	case errors.Is(err, request.ErrInvalidUnitPrice):
		return pkg.NewFieldError("unit_price", "Invalid unit price", http.StatusBadRequest)
	default:
		return errInvalidPayload
	}
}

func mapEvaluationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEvaluationID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidEvaluationStatus):
		return pkg.NewFieldError("status", "Invalid evaluation status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEvaluationNotFound):
		return pkg.NewDomainErrorSimple("EVALUATION_NOT_FOUND", "Evaluation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEvaluationForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Only the owner can change this evaluation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrEvaluationNotCompleted):
		return pkg.NewDomainErrorSimple("EVALUATION_NOT_COMPLETED", "Only completed evaluations can be reopened", http.StatusConflict)
	case errors.Is(err, usecase.ErrEvaluationNotDeletable):
		return pkg.NewDomainErrorSimple("EVALUATION_NOT_DELETABLE", "Only in-progress evaluations can be deleted", http.StatusConflict)
	default:
		return internalError(err)
	}
}
