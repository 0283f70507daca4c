package handlers

import (
	"errors"
	"net/http"

	request "controle_pragas/internal/adapter/http/dto/request"
	response "controle_pragas/internal/adapter/http/dto/response"
	"controle_pragas/internal/adapter/http/middleware"
	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/domain/evaluation"
	"controle_pragas/internal/usecase"
	"controle_pragas/pkg"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the authoring session. Every answer change is a PATCH
// answered with the recomputed session.
type SessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewSessionHandler(uc usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

func (h *SessionHandler) Start(c *gin.Context) {
	sess, err := h.usecase.Start(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(sess))
}

// StartEdit opens a stored in-progress evaluation for editing.
func (h *SessionHandler) StartEdit(c *gin.Context) {
	sess, err := h.usecase.StartEdit(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		writeError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(sess))
}

func (h *SessionHandler) Get(c *gin.Context) {
	sess, err := h.usecase.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		writeError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(sess))
}

func (h *SessionHandler) Mutate(c *gin.Context) {
	var payload request.MutationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	mutation, err := payload.ToMutation()
	if err != nil {
		writeError(c, pkg.NewFieldError("executed_area", "Invalid executed area", http.StatusBadRequest))
		return
	}

	sess, err := h.usecase.Mutate(c.Request.Context(), middleware.UserID(c), c.Param("id"), mutation)
	if err != nil {
		writeError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(sess))
}

func (h *SessionHandler) OverrideDiscount(c *gin.Context) {
	var payload request.OverrideDiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	cents, err := payload.ResolveCents()
	if err != nil {
		writeError(c, pkg.NewFieldError("discount", "Invalid discount amount", http.StatusBadRequest))
		return
	}

	category := entities.ServiceCategory(c.Param("category"))
	sess, err := h.usecase.OverrideDiscount(c.Request.Context(), middleware.UserID(c), c.Param("id"), category, cents)
	if err != nil {
		writeError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(sess))
}

// RefreshBaseline reloads area and unit prices from the current unit and tariffs.
func (h *SessionHandler) RefreshBaseline(c *gin.Context) {
	sess, err := h.usecase.RefreshBaseline(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		writeError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(sess))
}

func (h *SessionHandler) Submit(c *gin.Context) {
	var payload request.SubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	e, err := h.usecase.Submit(c.Request.Context(), middleware.UserID(c), c.Param("id"), entities.EvaluationStatus(payload.Status))
	if err != nil {
		writeError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEvaluation(e))
}

func (h *SessionHandler) Discard(c *gin.Context) {
	if err := h.usecase.Discard(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		writeError(c, mapSessionError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidEvaluationID):
		return errInvalidRequest
	case errors.Is(err, evaluation.ErrInvalidMonth):
		return pkg.NewFieldError("reference_month", "Reference month must be between 0 and 11", http.StatusBadRequest)
	case errors.Is(err, evaluation.ErrInvalidDelayDays):
		return pkg.NewFieldError("delay_days", "Delay days must not be negative", http.StatusBadRequest)
	case errors.Is(err, evaluation.ErrUnknownCategory):
		return pkg.NewFieldError("category", "Unknown service category", http.StatusBadRequest)
	case errors.Is(err, evaluation.ErrNegativeDiscount):
		return pkg.NewFieldError("discount", "Discount must not be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSubmitStatus):
		return pkg.NewFieldError("status", "Status must be in progress or completed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Complete your profile before starting an evaluation", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEvaluationNotFound):
		return pkg.NewDomainErrorSimple("EVALUATION_NOT_FOUND", "Evaluation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionForbidden), errors.Is(err, usecase.ErrEvaluationForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Only the owner can change this evaluation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrEvaluationNotEditable):
		return pkg.NewDomainErrorSimple("EVALUATION_NOT_EDITABLE", "Only in-progress evaluations can be edited", http.StatusConflict)
	default:
		return internalError(err)
	}
}
