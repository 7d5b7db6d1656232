package live

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/velmora/health-assistant/backend/internal/knowledge"
	"github.com/velmora/health-assistant/backend/internal/model/chat"
	chatservice "github.com/velmora/health-assistant/backend/internal/service/chat"
	"github.com/velmora/health-assistant/backend/internal/service/resolver"
)

type memoryStore struct {
	sessions []chat.Session
}

func (m *memoryStore) Load() ([]chat.Session, error) { return m.sessions, nil }

func (m *memoryStore) Save(sessions []chat.Session) error {
	m.sessions = sessions
	return nil
}

func setupServer(t *testing.T) (*httptest.Server, *chatservice.Service) {
	t.Helper()

	chatSvc := chatservice.NewService(&memoryStore{})
	resolverSvc := resolver.NewService(knowledge.NewBase(knowledge.Seed()), nil)
	handler := New(chatSvc, resolverSvc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server, chatSvc
}

func dial(t *testing.T, server *httptest.Server, sessionID string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/live/" + sessionID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestLiveRejectsUnknownSession(t *testing.T) {
	server, _ := setupServer(t)

	resp, err := http.Get(server.URL + "/live/missing")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestLiveAnswersQuestions(t *testing.T) {
	server, chatSvc := setupServer(t)
	session := chatSvc.CreateSession()

	conn := dial(t, server, session.ID)
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var connected outgoingMessage
	if err := conn.ReadJSON(&connected); err != nil {
		t.Fatalf("read connected: %v", err)
	}
	if connected.Type != "connected" || connected.SessionID != session.ID {
		t.Fatalf("unexpected greeting: %+v", connected)
	}

	if err := conn.WriteJSON(inboundMessage{Type: "message", Text: "Is paracetamol safe during pregnancy?"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var reply outgoingMessage
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("read reply: %v", err)
	}
	if reply.Type != "reply" || reply.Reply == nil {
		t.Fatalf("unexpected reply: %+v", reply)
	}
	if reply.Source != string(resolver.SourceKnowledgeBase) {
		t.Fatalf("expected knowledge-base source, got %q", reply.Source)
	}

	got, err := chatSvc.Get(session.ID)
	if err != nil {
		t.Fatalf("Get session: %v", err)
	}
	if len(got.Messages) != 2 {
		t.Fatalf("expected question and reply persisted, got %d", len(got.Messages))
	}
}

func TestLiveRejectsUnsupportedTypes(t *testing.T) {
	server, chatSvc := setupServer(t)
	session := chatSvc.CreateSession()

	conn := dial(t, server, session.ID)
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var connected outgoingMessage
	if err := conn.ReadJSON(&connected); err != nil {
		t.Fatalf("read connected: %v", err)
	}

	if err := conn.WriteJSON(inboundMessage{Type: "audio", Text: "ignored"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var errMsg outgoingMessage
	if err := conn.ReadJSON(&errMsg); err != nil {
		t.Fatalf("read error: %v", err)
	}
	if errMsg.Type != "error" || !strings.Contains(errMsg.Error, "unsupported") {
		t.Fatalf("unexpected message: %+v", errMsg)
	}
}
