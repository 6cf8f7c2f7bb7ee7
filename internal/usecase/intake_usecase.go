package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/fadilmartias/casting-intake/internal/metrics"
	"github.com/fadilmartias/casting-intake/internal/model"
	"github.com/fadilmartias/casting-intake/internal/repository"
	"go.uber.org/zap"
)

type AssistantInterface interface {
	AnalyzeMotivation(ctx context.Context, letter string) model.AiFeedback
	GenerateHostMessage(ctx context.Context, firstName string) string
}

// IntakeUsecase drives a session through LOGIN, DASHBOARD and SUCCESS.
type IntakeUsecase struct {
	sessions  *repository.SessionRepository
	assistant AssistantInterface
	log       *zap.Logger
}

func NewIntakeUsecase(sessions *repository.SessionRepository, assistant AssistantInterface, log *zap.Logger) *IntakeUsecase {
	return &IntakeUsecase{sessions: sessions, assistant: assistant, log: log}
}

// Session returns the session for id, or a freshly seeded one when id is
// empty or unknown. created reports which.
func (uc *IntakeUsecase) Session(id string) (s *model.Session, created bool) {
	if id != "" {
		found, err := uc.sessions.FindSessionByID(id)
		if err == nil {
			return found, false
		}
		if !errors.Is(err, repository.ErrSessionNotFound) {
			uc.log.Warn("session lookup failed", zap.Error(err))
		}
	}
	s = uc.sessions.CreateSession()
	metrics.ActiveSessions.Set(float64(uc.sessions.Count()))
	uc.log.Debug("session created", zap.String("session_id", s.ID.String()))
	return s, true
}

// Reset discards s and returns a new session in its initial state, the
// equivalent of reloading the page.
func (uc *IntakeUsecase) Reset(s *model.Session) *model.Session {
	uc.sessions.DeleteSession(s.ID)
	next, _ := uc.Session("")
	uc.log.Info("session reset",
		zap.String("previous_session_id", s.ID.String()),
		zap.String("session_id", next.ID.String()),
	)
	return next
}

// Login greets the candidate and opens the dashboard. A failed host-message
// call still opens the dashboard with the fallback greeting.
func (uc *IntakeUsecase) Login(ctx context.Context, s *model.Session) (model.SessionView, error) {
	firstName, err := s.BeginLogin()
	if err != nil {
		return s.View(), err
	}

	msg := uc.assistant.GenerateHostMessage(ctx, firstName)
	if s.CompleteLogin(msg) {
		uc.transitioned(s, model.StateLogin, model.StateDashboard)
	}
	return s.View(), nil
}

func (uc *IntakeUsecase) UpdateDossier(s *model.Session, fields map[string]string) (model.SessionView, error) {
	if err := s.UpdateFields(fields); err != nil {
		return s.View(), err
	}
	return s.View(), nil
}

// AnalyzeMotivation scores the current letter. Letters under
// model.MinMotivationLength characters leave everything as it was.
func (uc *IntakeUsecase) AnalyzeMotivation(ctx context.Context, s *model.Session) (model.SessionView, error) {
	text, ok, err := s.BeginAnalysis()
	if err != nil {
		return s.View(), err
	}
	if !ok {
		return s.View(), nil
	}

	feedback := uc.assistant.AnalyzeMotivation(ctx, text)
	s.CompleteAnalysis(text, feedback)
	return s.View(), nil
}

func (uc *IntakeUsecase) Submit(s *model.Session, sub model.Submission) (model.SessionView, error) {
	if err := s.Submit(sub); err != nil {
		return s.View(), err
	}
	uc.transitioned(s, model.StateDashboard, model.StateSuccess)
	return s.View(), nil
}

// RunSweeper drops idle sessions until ctx is done.
func (uc *IntakeUsecase) RunSweeper(ctx context.Context, ttl time.Duration) {
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	uc.sessions.Sweep(ctx, ttl, interval, func(removed int) {
		metrics.ActiveSessions.Set(float64(uc.sessions.Count()))
		if removed > 0 {
			uc.log.Info("expired sessions removed", zap.Int("count", removed))
		}
	})
}

func (uc *IntakeUsecase) transitioned(s *model.Session, from, to model.ViewState) {
	metrics.StateTransitions.WithLabelValues(string(from), string(to)).Inc()
	uc.log.Info("intake state changed",
		zap.String("session_id", s.ID.String()),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
	)
}
