package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/casting-intake/internal/config"
	"google.golang.org/genai"
)

// GenerateRequest is one prompt for a hosted text model. When JSON is set the
// reply must be a JSON object, shaped by Schema where the provider supports
// it.
type GenerateRequest struct {
	Model  string
	Prompt string
	JSON   bool
	Schema *genai.Schema
}

// GenerativeServiceInterface is a single request/response call to a hosted
// text model. Implementations never retry.
type GenerativeServiceInterface interface {
	GenerateContent(ctx context.Context, req GenerateRequest) (string, error)
}

type GeminiService struct {
	Client *genai.Client
	Model  string
}

func NewGeminiService(ctx context.Context) (*GeminiService, error) {
	geminiConfig := config.LoadGeminiConfig()
	return NewGeminiServiceWithOptions(ctx, geminiConfig.APIKey, geminiConfig.Model, genai.HTTPOptions{})
}

// NewGeminiServiceWithOptions builds the client from explicit values; tests
// use it to point the client at a local endpoint.
func NewGeminiServiceWithOptions(ctx context.Context, apiKey, model string, httpOptions genai.HTTPOptions) (*GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: httpOptions,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiService{
		Client: client,
		Model:  model,
	}, nil
}

func (s *GeminiService) GenerateContent(ctx context.Context, req GenerateRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = s.Model
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	var genConfig *genai.GenerateContentConfig
	if req.JSON {
		genConfig = &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   req.Schema,
		}
	}

	result, err := s.Client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt), genConfig)
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}
	if err := validateGenerateResponse(result); err != nil {
		return "", fmt.Errorf("invalid response: %w", err)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("invalid response: empty text")
	}
	return text, nil
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}

	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}

	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}

	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}

	return nil
}
