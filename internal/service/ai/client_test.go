package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/velmora/health-assistant/backend/internal/service/ai"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*ai.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := ai.NewClient(ai.Config{APIKey: "test-key", BaseURL: srv.URL, Model: "test-model"})
	return client, srv
}

func TestGenerateParsesCandidateText(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "test-model:generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if _, ok := payload["contents"]; !ok {
			t.Error("request missing contents")
		}
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "hello there"}}}},
			},
		})
	})

	got, err := client.Generate(context.Background(), "hi", ai.GenerationOptions{Temperature: 0.7, MaxOutputTokens: 512})
	if err != nil {
		t.Fatalf("Generate err: %v", err)
	}
	if got != "hello there" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestGenerateNonSuccessStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	if _, err := client.Generate(context.Background(), "hi", ai.GenerationOptions{}); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}

func TestGenerateMalformedPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	})

	if _, err := client.Generate(context.Background(), "hi", ai.GenerationOptions{}); err == nil {
		t.Fatal("expected error for missing candidate text")
	}
}

func TestGenerateDisabledClient(t *testing.T) {
	client := ai.NewClient(ai.Config{})
	if _, err := client.Generate(context.Background(), "hi", ai.GenerationOptions{}); err == nil {
		t.Fatal("expected error when backend is not configured")
	}
}

func TestGenerateVisionSendsInlineData(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Contents []struct {
				Parts []struct {
					Text       string `json:"text"`
					InlineData *struct {
						MimeType string `json:"mime_type"`
						Data     string `json:"data"`
					} `json:"inline_data"`
				} `json:"parts"`
			} `json:"contents"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		parts := payload.Contents[0].Parts
		if len(parts) != 2 || parts[1].InlineData == nil {
			t.Errorf("expected text + inline_data parts, got %+v", parts)
		} else if parts[1].InlineData.MimeType != "image/png" {
			t.Errorf("unexpected mime type: %s", parts[1].InlineData.MimeType)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "extracted"}}}},
			},
		})
	})

	got, err := client.GenerateVision(context.Background(), "extract", "image/png", "aGVsbG8=", ai.GenerationOptions{})
	if err != nil {
		t.Fatalf("GenerateVision err: %v", err)
	}
	if got != "extracted" {
		t.Fatalf("unexpected text: %q", got)
	}
}
