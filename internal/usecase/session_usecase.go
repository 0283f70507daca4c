package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/domain/evaluation"
	"controle_pragas/internal/metrics"
	"controle_pragas/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrInvalidSessionID    = errors.New("invalid session id")
	ErrSessionForbidden    = errors.New("session belongs to another user")
	ErrInvalidSubmitStatus = errors.New("submit status must be in progress or completed")
)

// ISessionUseCase drives an evaluator's authoring session: every answer change is
// one Mutate call that validates, applies and recomputes discounts.
type ISessionUseCase interface {
	Start(ctx context.Context, uid string) (*evaluation.Session, error)
	StartEdit(ctx context.Context, uid, evaluationID string) (*evaluation.Session, error)
	Get(ctx context.Context, uid, sessionID string) (*evaluation.Session, error)
	Mutate(ctx context.Context, uid, sessionID string, mutation evaluation.Mutation) (*evaluation.Session, error)
	OverrideDiscount(ctx context.Context, uid, sessionID string, category entities.ServiceCategory, cents int64) (*evaluation.Session, error)
	RefreshBaseline(ctx context.Context, uid, sessionID string) (*evaluation.Session, error)
	Submit(ctx context.Context, uid, sessionID string, status entities.EvaluationStatus) (entities.Evaluation, error)
	Discard(ctx context.Context, uid, sessionID string) error
}

type SessionUseCase struct {
	store       interfaces.ISessionStore
	profiles    interfaces.IProfileRepository
	baseline    *BaselineResolver
	evaluations IEvaluationUseCase
	logger      *zap.Logger
	now         func() time.Time
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(
	store interfaces.ISessionStore,
	profiles interfaces.IProfileRepository,
	baseline *BaselineResolver,
	evaluations IEvaluationUseCase,
	logger *zap.Logger,
) *SessionUseCase {
	return &SessionUseCase{
		store:       store,
		profiles:    profiles,
		baseline:    baseline,
		evaluations: evaluations,
		logger:      logger,
		now:         utcNow,
	}
}

// Start opens a blank evaluation for the evaluator's unit. The baseline is a
// snapshot; RefreshBaseline picks up later tariff or area changes.
func (u *SessionUseCase) Start(ctx context.Context, uid string) (*evaluation.Session, error) {
	profile, err := getProfile(ctx, u.profiles, uid)
	if err != nil {
		return nil, err
	}
	baseline := u.baseline.Resolve(ctx, profile.Unit)

	sess := evaluation.NewSession(uuid.NewString(), profile, baseline, u.now())
	if err := u.save(ctx, sess); err != nil {
		return nil, err
	}
	metrics.SessionsStarted.WithLabelValues("new").Inc()
	return sess, nil
}

// StartEdit opens a stored in-progress evaluation of the caller. Stored discounts
// are kept as they are, manual overrides included.
func (u *SessionUseCase) StartEdit(ctx context.Context, uid, evaluationID string) (*evaluation.Session, error) {
	e, err := u.evaluations.GetByID(ctx, evaluationID)
	if err != nil {
		return nil, err
	}
	if e.CreatedBy != uid {
		return nil, ErrEvaluationForbidden
	}
	if e.Status != entities.EvaluationStatusEmAndamento {
		return nil, ErrEvaluationNotEditable
	}
	profile, err := getProfile(ctx, u.profiles, uid)
	if err != nil {
		return nil, err
	}

	sess := evaluation.NewEditSession(uuid.NewString(), profile, e, u.now())
	if err := u.save(ctx, sess); err != nil {
		return nil, err
	}
	metrics.SessionsStarted.WithLabelValues("edit").Inc()
	return sess, nil
}

func (u *SessionUseCase) Get(ctx context.Context, uid, sessionID string) (*evaluation.Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	sess, err := u.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	if sess.OwnerUID != uid {
		return nil, ErrSessionForbidden
	}
	return sess, nil
}

// Mutate applies one answer change. An invalid mutation leaves the stored session
// untouched.
func (u *SessionUseCase) Mutate(ctx context.Context, uid, sessionID string, mutation evaluation.Mutation) (*evaluation.Session, error) {
	sess, err := u.Get(ctx, uid, sessionID)
	if err != nil {
		return nil, err
	}
	changed, err := sess.Draft.Apply(mutation)
	if err != nil {
		return nil, err
	}
	metrics.ObserveRecompute(changed)
	if err := u.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (u *SessionUseCase) OverrideDiscount(ctx context.Context, uid, sessionID string, category entities.ServiceCategory, cents int64) (*evaluation.Session, error) {
	sess, err := u.Get(ctx, uid, sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.Draft.OverrideDiscount(category, cents); err != nil {
		return nil, err
	}
	if err := u.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// RefreshBaseline re-reads area and unit prices for the session's unit.
func (u *SessionUseCase) RefreshBaseline(ctx context.Context, uid, sessionID string) (*evaluation.Session, error) {
	sess, err := u.Get(ctx, uid, sessionID)
	if err != nil {
		return nil, err
	}
	changed := sess.Draft.RefreshBaseline(u.baseline.Resolve(ctx, sess.Profile.Unit))
	metrics.ObserveRecompute(changed)
	if err := u.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Submit builds the record and persists it. The session is removed only after the
// evaluation is stored, so a failed submit can be retried.
func (u *SessionUseCase) Submit(ctx context.Context, uid, sessionID string, status entities.EvaluationStatus) (entities.Evaluation, error) {
	if !isSubmitStatus(status) {
		return entities.Evaluation{}, ErrInvalidSubmitStatus
	}
	sess, err := u.Get(ctx, uid, sessionID)
	if err != nil {
		return entities.Evaluation{}, err
	}

	rec := evaluation.BuildRecord(sess.Profile, sess.Draft, status, u.now())
	var saved entities.Evaluation
	if sess.IsEdit() {
		rec.ID = sess.EvaluationID
		saved, err = u.evaluations.Update(ctx, uid, rec)
	} else {
		saved, err = u.evaluations.Create(ctx, rec)
	}
	if err != nil {
		metrics.EvaluationsSubmitted.WithLabelValues(string(status), "error").Inc()
		u.logger.Error("evaluation submit failed, session kept",
			zap.String("session_id", sess.ID),
			zap.Bool("edit", sess.IsEdit()),
			zap.Error(err))
		return entities.Evaluation{}, err
	}

	metrics.EvaluationsSubmitted.WithLabelValues(string(status), "ok").Inc()
	metrics.EvaluationDiscountCents.Observe(float64(saved.Financials.Totals.TotalDiscountCents))
	if err := u.store.Delete(ctx, sess.ID); err != nil {
		u.logger.Warn("failed to remove submitted session", zap.String("session_id", sess.ID), zap.Error(err))
	}
	return saved, nil
}

func (u *SessionUseCase) Discard(ctx context.Context, uid, sessionID string) error {
	sess, err := u.Get(ctx, uid, sessionID)
	if err != nil {
		return err
	}
	if err := u.store.Delete(ctx, sess.ID); err != nil {
		u.logger.Error("failed to discard session", zap.String("session_id", sess.ID), zap.Error(err))
		return err
	}
	return nil
}

func (u *SessionUseCase) save(ctx context.Context, sess *evaluation.Session) error {
	sess.UpdatedAt = u.now()
	if err := u.store.Save(ctx, sess); err != nil {
		u.logger.Error("failed to save session", zap.String("session_id", sess.ID), zap.Error(err))
		return err
	}
	return nil
}
