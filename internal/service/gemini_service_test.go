package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newGeminiTestService(t *testing.T, status int, reply string, gotBody *string) *GeminiService {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if gotBody != nil {
			*gotBody = string(body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)

	svc, err := NewGeminiServiceWithOptions(context.Background(), "test-key", "gemini-2.5-flash", genai.HTTPOptions{BaseURL: srv.URL})
	require.NoError(t, err)
	return svc
}

func TestNewGeminiServiceWithOptions_RequiresKey(t *testing.T) {
	_, err := NewGeminiServiceWithOptions(context.Background(), "", "", genai.HTTPOptions{})
	assert.Error(t, err)
}

func TestGeminiService_GenerateContent_Text(t *testing.T) {
	svc := newGeminiTestService(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"Bienvenue, aventurier."}]}}]}`, nil)

	text, err := svc.GenerateContent(context.Background(), GenerateRequest{Prompt: "Bonjour"})

	require.NoError(t, err)
	assert.Equal(t, "Bienvenue, aventurier.", text)
}

func TestGeminiService_GenerateContent_JSONConfig(t *testing.T) {
	var body string
	svc := newGeminiTestService(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"score\":72,\"advice\":\"Bien\"}"}]}}]}`, &body)

	text, err := svc.GenerateContent(context.Background(), GenerateRequest{
		Prompt: "Analyse",
		JSON:   true,
		Schema: &genai.Schema{Type: genai.TypeObject},
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"score":72,"advice":"Bien"}`, text)
	assert.Contains(t, body, "application/json")
}

func TestGeminiService_GenerateContent_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		reply  string
	}{
		{"server error", http.StatusInternalServerError, `{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`},
		{"no candidates", http.StatusOK, `{"candidates":[]}`},
		{"no parts", http.StatusOK, `{"candidates":[{"content":{"role":"model","parts":[]}}]}`},
		{"empty text", http.StatusOK, `{"candidates":[{"content":{"role":"model","parts":[{"text":"  "}]}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newGeminiTestService(t, tt.status, tt.reply, nil)

			_, err := svc.GenerateContent(context.Background(), GenerateRequest{Prompt: "Bonjour"})

			assert.Error(t, err)
		})
	}
}

func TestGeminiService_GenerateContent_EmptyPrompt(t *testing.T) {
	svc := newGeminiTestService(t, http.StatusOK, `{}`, nil)

	_, err := svc.GenerateContent(context.Background(), GenerateRequest{Prompt: "   "})

	assert.Error(t, err)
}
