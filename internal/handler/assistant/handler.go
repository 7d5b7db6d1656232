package assistant

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/velmora/health-assistant/backend/internal/analysis/entity"
	"github.com/velmora/health-assistant/backend/internal/analysis/intent"
	"github.com/velmora/health-assistant/backend/internal/model/chat"
	chatservice "github.com/velmora/health-assistant/backend/internal/service/chat"
	"github.com/velmora/health-assistant/backend/internal/service/resolver"
	"github.com/velmora/health-assistant/backend/pkg/utils"
)

// Handler serves the question answering endpoints.
type Handler struct {
	chatSvc  *chatservice.Service
	resolver *resolver.Service

	// busy serialises /chat: one question resolves at a time.
	busy atomic.Bool
}

// New creates the assistant handler.
func New(chatSvc *chatservice.Service, resolverSvc *resolver.Service) *Handler {
	return &Handler{chatSvc: chatSvc, resolver: resolverSvc}
}

// RegisterRoutes registers the assistant routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Post("/answers", h.handleAnswer)
}

type chatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

type chatResponse struct {
	SessionID string          `json:"sessionId"`
	Reply     chat.Message    `json:"reply"`
	Language  string          `json:"language"`
	Source    resolver.Source `json:"source"`
	Intent    intent.Intent   `json:"intent"`
	Entity    entity.Entity   `json:"entity"`
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	if !h.busy.CompareAndSwap(false, true) {
		utils.RespondError(w, http.StatusConflict, "another question is still being answered")
		return
	}
	defer h.busy.Store(false)

	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	question := strings.TrimSpace(payload.Message)
	if question == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	sessionID := payload.SessionID
	if sessionID == "" {
		session := h.chatSvc.CreateSession()
		h.chatSvc.AppendMessages(session.ID, chat.NewWelcomeMessage())
		sessionID = session.ID
	} else if _, err := h.chatSvc.Get(sessionID); err != nil {
		if errors.Is(err, chatservice.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusNotFound, "session not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	it := intent.Classify(question)
	ent := entity.Classify(question)

	h.chatSvc.AppendMessages(sessionID, chat.Message{
		ID:        uuid.NewString(),
		Content:   question,
		IsUser:    true,
		Timestamp: time.Now(),
		Intent:    it,
		Entity:    ent,
	})

	res := h.resolver.Resolve(r.Context(), question, it)

	reply := chat.Message{
		ID:        uuid.NewString(),
		Content:   res.Text,
		IsUser:    false,
		Timestamp: time.Now(),
		Intent:    it,
		Entity:    ent,
	}
	h.chatSvc.AppendMessages(sessionID, reply)

	utils.RespondJSON(w, http.StatusOK, chatResponse{
		SessionID: sessionID,
		Reply:     reply,
		Language:  string(res.Language),
		Source:    res.Source,
		Intent:    it,
		Entity:    ent,
	})
}

type answerRequest struct {
	Question string `json:"question"`
}

func (h *Handler) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var payload answerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	question := strings.TrimSpace(payload.Question)
	if question == "" {
		utils.RespondError(w, http.StatusBadRequest, "question is required")
		return
	}

	it := intent.Classify(question)
	res := h.resolver.AnswerDirect(r.Context(), question, it)

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"answer":   res.Text,
		"language": res.Language,
		"intent":   it,
		"entity":   res.Entity,
		"source":   res.Source,
	})
}
