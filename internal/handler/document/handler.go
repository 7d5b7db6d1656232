package document

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/velmora/health-assistant/backend/internal/model/chat"
	chatservice "github.com/velmora/health-assistant/backend/internal/service/chat"
	documentservice "github.com/velmora/health-assistant/backend/internal/service/document"
	"github.com/velmora/health-assistant/backend/pkg/utils"
)

// Handler serves prescription uploads.
type Handler struct {
	ingestor *documentservice.Ingestor
	chatSvc  *chatservice.Service
}

// New creates the document handler. A nil ingestor means the generation
// backend is not configured and uploads are refused.
func New(ingestor *documentservice.Ingestor, chatSvc *chatservice.Service) *Handler {
	return &Handler{ingestor: ingestor, chatSvc: chatSvc}
}

// RegisterRoutes registers the document routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/documents", h.handleUpload)
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	if h.ingestor == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "document analysis unavailable")
		return
	}

	if err := r.ParseMultipartForm(documentservice.MaxUploadSize); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if err := documentservice.Validate(contentType, header.Size); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	image, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "failed to read image")
		return
	}

	analysis, err := h.ingestor.Ingest(r.Context(), image, contentType)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, documentservice.ErrNotImage) || errors.Is(err, documentservice.ErrTooLarge) {
			status = http.StatusBadRequest
		}
		log.Printf("[document] ingest failed: %v", err)
		utils.RespondError(w, status, err.Error())
		return
	}

	if sessionID := r.FormValue("sessionId"); sessionID != "" {
		if _, err := h.chatSvc.Get(sessionID); err != nil {
			utils.RespondError(w, http.StatusNotFound, "session not found")
			return
		}
		h.chatSvc.AppendMessages(sessionID, analysisMessages(analysis)...)
	}

	utils.RespondJSON(w, http.StatusOK, analysis)
}

// analysisMessages renders an ingested document as a chat exchange: the
// extracted text as the user's turn and the suggestions as the reply.
func analysisMessages(analysis documentservice.Analysis) []chat.Message {
	now := time.Now()
	extracted := chat.Message{
		ID:                 uuid.NewString(),
		Content:            fmt.Sprintf("📄 **Document Upload - Extracted Text:**\n\n%s", analysis.ExtractedText),
		IsUser:             true,
		Timestamp:          now,
		IsDocumentAnalysis: true,
	}
	suggestions := chat.Message{
		ID:                 uuid.NewString(),
		Content:            fmt.Sprintf("🩺 **Based on your prescription, here are my recommendations:**\n\n%s\n\n⚠️ **Important**: This is AI-generated advice for educational purposes only. Please consult with your healthcare provider before making any changes to your treatment plan.", analysis.Suggestions),
		IsUser:             false,
		Timestamp:          now,
		IsDocumentAnalysis: true,
	}
	return []chat.Message{extracted, suggestions}
}
