package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fadilmartias/casting-intake/internal/metrics"
	"github.com/fadilmartias/casting-intake/internal/model"
	"github.com/fadilmartias/casting-intake/internal/service"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var errMalformedFeedback = errors.New("malformed feedback payload")

// AssistantUsecase wraps the two generative calls of the intake flow. Both
// always return something displayable: failures are logged and replaced by
// fixed fallbacks, never retried.
type AssistantUsecase struct {
	ai    service.GenerativeServiceInterface
	model string
	log   *zap.Logger
}

func NewAssistantUsecase(ai service.GenerativeServiceInterface, model string, log *zap.Logger) *AssistantUsecase {
	return &AssistantUsecase{ai: ai, model: model, log: log}
}

// FallbackFeedback is stored whenever analysis fails.
func FallbackFeedback() model.AiFeedback {
	return model.AiFeedback{Score: FallbackScore, Advice: FallbackAdvice}
}

func (a *AssistantUsecase) AnalyzeMotivation(ctx context.Context, letter string) model.AiFeedback {
	start := time.Now()
	defer func() {
		metrics.AICallDuration.WithLabelValues(metrics.OperationAnalyzeMotivation).Observe(time.Since(start).Seconds())
	}()

	text, err := a.ai.GenerateContent(ctx, service.GenerateRequest{
		Model:  a.model,
		Prompt: motivationPrompt(letter),
		JSON:   true,
		Schema: motivationSchema,
	})
	if err == nil {
		var feedback model.AiFeedback
		feedback, err = parseFeedback(text)
		if err == nil {
			metrics.AICalls.WithLabelValues(metrics.OperationAnalyzeMotivation, metrics.OutcomeOK).Inc()
			return feedback
		}
	}

	a.log.Error("Error analyzing motivation", zap.Error(err))
	metrics.AICalls.WithLabelValues(metrics.OperationAnalyzeMotivation, metrics.OutcomeFallback).Inc()
	return FallbackFeedback()
}

func parseFeedback(text string) (model.AiFeedback, error) {
	if !gjson.Valid(text) {
		return model.AiFeedback{}, errMalformedFeedback
	}
	score := gjson.Get(text, "score")
	advice := gjson.Get(text, "advice")
	if score.Type != gjson.Number || advice.Type != gjson.String {
		return model.AiFeedback{}, errMalformedFeedback
	}
	return model.AiFeedback{Score: score.Float(), Advice: advice.String()}, nil
}

func (a *AssistantUsecase) GenerateHostMessage(ctx context.Context, firstName string) string {
	start := time.Now()
	defer func() {
		metrics.AICallDuration.WithLabelValues(metrics.OperationHostMessage).Observe(time.Since(start).Seconds())
	}()

	text, err := a.ai.GenerateContent(ctx, service.GenerateRequest{
		Model:  a.model,
		Prompt: hostMessagePrompt(firstName),
	})
	text = strings.TrimSpace(text)
	if err != nil || text == "" {
		if err == nil {
			err = errors.New("empty host message")
		}
		a.log.Warn("Host message generation failed", zap.Error(err), zap.String("first_name", firstName))
		metrics.AICalls.WithLabelValues(metrics.OperationHostMessage, metrics.OutcomeFallback).Inc()
		return hostMessageFallback(firstName)
	}

	metrics.AICalls.WithLabelValues(metrics.OperationHostMessage, metrics.OutcomeOK).Inc()
	return text
}
