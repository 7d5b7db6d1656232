package live

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/velmora/health-assistant/backend/internal/analysis/entity"
	"github.com/velmora/health-assistant/backend/internal/analysis/intent"
	"github.com/velmora/health-assistant/backend/internal/model/chat"
	chatservice "github.com/velmora/health-assistant/backend/internal/service/chat"
	"github.com/velmora/health-assistant/backend/internal/service/resolver"
)

const readTimeout = 60 * time.Second

// Handler upgrades chat sessions to a live websocket exchange.
type Handler struct {
	chatSvc  *chatservice.Service
	resolver *resolver.Service
	upgrader websocket.Upgrader
}

// New creates the live chat handler.
func New(chatSvc *chatservice.Service, resolverSvc *resolver.Service) *Handler {
	return &Handler{
		chatSvc:  chatSvc,
		resolver: resolverSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes registers the websocket route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/live/{sessionID}", h.handleLive)
}

type inboundMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type outgoingMessage struct {
	Type      string        `json:"type"`
	SessionID string        `json:"sessionId,omitempty"`
	Reply     *chat.Message `json:"reply,omitempty"`
	Source    string        `json:"source,omitempty"`
	Language  string        `json:"language,omitempty"`
	Error     string        `json:"error,omitempty"`
	Timestamp int64         `json:"timestamp"`
}

func (h *Handler) handleLive(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		http.Error(w, "sessionID is required", http.StatusBadRequest)
		return
	}

	if _, err := h.chatSvc.Get(sessionID); err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[live] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("[live] new connection for session: %s", sessionID)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	go h.pingLoop(ctx, conn)

	h.send(conn, outgoingMessage{Type: "connected", SessionID: sessionID})

	for {
		select {
		case <-ctx.Done():
			return
		default:
			var msg inboundMessage
			if err := conn.ReadJSON(&msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("[live] read error: %v", err)
				}
				return
			}

			conn.SetReadDeadline(time.Now().Add(readTimeout))
			h.handleMessage(ctx, conn, sessionID, &msg)
		}
	}
}

func (h *Handler) handleMessage(ctx context.Context, conn *websocket.Conn, sessionID string, msg *inboundMessage) {
	switch msg.Type {
	case "message":
		h.handleQuestion(ctx, conn, sessionID, msg.Text)
	default:
		h.sendError(conn, "unsupported message type: "+msg.Type)
	}
}

func (h *Handler) handleQuestion(ctx context.Context, conn *websocket.Conn, sessionID, text string) {
	question := strings.TrimSpace(text)
	if question == "" {
		h.sendError(conn, "text is required")
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

	res := h.resolver.Resolve(ctx, question, it)

	reply := chat.Message{
		ID:        uuid.NewString(),
		Content:   res.Text,
		IsUser:    false,
		Timestamp: time.Now(),
		Intent:    it,
		Entity:    ent,
	}
	h.chatSvc.AppendMessages(sessionID, reply)

	h.send(conn, outgoingMessage{
		Type:      "reply",
		SessionID: sessionID,
		Reply:     &reply,
		Source:    string(res.Source),
		Language:  string(res.Language),
	})
}

func (h *Handler) send(conn *websocket.Conn, msg outgoingMessage) {
	msg.Timestamp = time.Now().UnixMilli()
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("[live] write failed: %v", err)
	}
}

func (h *Handler) sendError(conn *websocket.Conn, message string) {
	h.send(conn, outgoingMessage{Type: "error", Error: message})
}

func (h *Handler) pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
