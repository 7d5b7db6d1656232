package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/velmora/health-assistant/backend/internal/model/chat"
	chatservice "github.com/velmora/health-assistant/backend/internal/service/chat"
	"github.com/velmora/health-assistant/backend/pkg/utils"
)

// Handler serves session management routes.
type Handler struct {
	chatSvc *chatservice.Service
}

// New creates the session handler.
func New(chatSvc *chatservice.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// RegisterRoutes registers the session routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/sessions", h.handleList)
	r.Post("/sessions", h.handleCreate)
	r.Get("/sessions/current", h.handleCurrent)
	r.Get("/sessions/{sessionID}", h.handleGet)
	r.Delete("/sessions/{sessionID}", h.handleDelete)
	r.Post("/sessions/{sessionID}/select", h.handleSelect)
	r.Put("/sessions/{sessionID}/messages", h.handleSetMessages)
	r.Get("/sessions/{sessionID}/export", h.handleExport)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.chatSvc.Sessions())
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	session := h.chatSvc.CreateSession()
	h.chatSvc.AppendMessages(session.ID, chat.NewWelcomeMessage())

	created, err := h.chatSvc.Get(session.ID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleCurrent(w http.ResponseWriter, r *http.Request) {
	session, ok := h.chatSvc.GetCurrent()
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "no current session")
		return
	}
	utils.RespondJSON(w, http.StatusOK, session)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	session, err := h.chatSvc.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, session)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	h.chatSvc.DeleteSession(chi.URLParam(r, "sessionID"))

	// deletion always leaves a current session behind
	current, ok := h.chatSvc.GetCurrent()
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "no session after deletion")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{"current": current})
}

func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if err := h.chatSvc.Select(sessionID); err != nil {
		h.respondServiceError(w, err)
		return
	}

	session, err := h.chatSvc.Get(sessionID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, session)
}

func (h *Handler) handleSetMessages(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var payload struct {
		Messages []chat.Message `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.chatSvc.Get(sessionID); err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.chatSvc.SetMessages(sessionID, payload.Messages)

	session, err := h.chatSvc.Get(sessionID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, session)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	filename, document, err := h.chatSvc.Export(chi.URLParam(r, "sessionID"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(document))
}

func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, chatservice.ErrSessionNotFound) {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}
	utils.RespondError(w, http.StatusInternalServerError, err.Error())
}
