package document

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/velmora/health-assistant/backend/internal/service/ai"
)

// MaxUploadSize bounds prescription images to 10 MB.
const MaxUploadSize = 10 * 1024 * 1024

var (
	ErrNotImage = errors.New("please upload an image file (JPG, PNG, etc.)")
	ErrTooLarge = errors.New("please upload an image smaller than 10MB")
)

// Backend is the vision/suggestion seam of the ingestor.
type Backend interface {
	Generate(ctx context.Context, prompt string, opts ai.GenerationOptions) (string, error)
	GenerateVision(ctx context.Context, prompt, mimeType, base64Data string, opts ai.GenerationOptions) (string, error)
}

// Analysis is the result of one prescription ingestion.
type Analysis struct {
	ExtractedText string `json:"extractedText"`
	Suggestions   string `json:"suggestions"`
}

// Ingestor feeds prescription images through the OCR backend and turns the
// raw extraction into chat-ready suggestion text.
type Ingestor struct {
	backend Backend
}

// NewIngestor wires an ingestor over the generation backend.
func NewIngestor(backend Backend) *Ingestor {
	return &Ingestor{backend: backend}
}

// Validate rejects uploads before any network call: the source must declare
// an image MIME type and stay within MaxUploadSize.
func Validate(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotImage
	}
	if size > MaxUploadSize {
		return ErrTooLarge
	}
	return nil
}

// Ingest extracts the prescription text from the image and asks the backend
// for recovery suggestions over it. The image is inlined base64-encoded,
// without a data-URI prefix.
func (i *Ingestor) Ingest(ctx context.Context, image []byte, contentType string) (Analysis, error) {
	if i.backend == nil {
		return Analysis{}, fmt.Errorf("document backend unavailable")
	}
	if err := Validate(contentType, int64(len(image))); err != nil {
		return Analysis{}, err
	}

	encoded := base64.StdEncoding.EncodeToString(image)
	raw, err := i.backend.GenerateVision(ctx, extractionPrompt, contentType, encoded, ai.GenerationOptions{
		Temperature:     0.2,
		TopK:            32,
		TopP:            1,
		MaxOutputTokens: 2048,
	})
	if err != nil {
		return Analysis{}, fmt.Errorf("extract prescription text: %w", err)
	}

	extracted := formatExtraction(raw)

	suggestions, err := i.backend.Generate(ctx, suggestionsPrompt(extracted), ai.GenerationOptions{
		Temperature:     0.3,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 1500,
	})
	if err != nil {
		return Analysis{}, fmt.Errorf("generate suggestions: %w", err)
	}

	return Analysis{ExtractedText: extracted, Suggestions: strings.TrimSpace(suggestions)}, nil
}
