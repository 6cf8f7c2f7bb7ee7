package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/casting-intake/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const openRouterSystemPrompt = "Tu assistes l'équipe de casting d'une émission d'aventure. Réponds en français."

type OpenRouterService struct {
	APIKey  string
	Model   string
	BaseURL string
	client  *resty.Client
}

func NewOpenRouterService() (*OpenRouterService, error) {
	cfg := config.LoadOpenRouterConfig()
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY not set")
	}
	return NewOpenRouterServiceWithClient(cfg.APIKey, cfg.Model, cfg.BaseURL, resty.New()), nil
}

func NewOpenRouterServiceWithClient(apiKey, model, baseURL string, client *resty.Client) *OpenRouterService {
	return &OpenRouterService{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (s *OpenRouterService) GenerateContent(ctx context.Context, req GenerateRequest) (string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}
	model := req.Model
	if model == "" || strings.HasPrefix(model, "gemini-") {
		model = s.Model
	}

	body := map[string]any{
		"model": model,
		"messages": []map[string]string{
			{"role": "system", "content": openRouterSystemPrompt},
			{"role": "user", "content": req.Prompt},
		},
	}
	if req.JSON {
		body["response_format"] = map[string]string{"type": "json_object"}
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(s.BaseURL + "/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openrouter request failed: %w", err)
	}
	if resp.IsError() {
		msg := gjson.Get(resp.String(), "error.message").String()
		return "", fmt.Errorf("openrouter status %d: %s", resp.StatusCode(), msg)
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	return text, nil
}
