package chat_test

import (
	"strings"
	"testing"
	"time"

	model "github.com/velmora/health-assistant/backend/internal/model/chat"
	chatservice "github.com/velmora/health-assistant/backend/internal/service/chat"
)

// memoryStore is a storage.Store stub recording every flush.
type memoryStore struct {
	sessions []model.Session
	saves    int
	loadErr  error
}

func (m *memoryStore) Load() ([]model.Session, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.sessions, nil
}

func (m *memoryStore) Save(sessions []model.Session) error {
	m.sessions = append([]model.Session(nil), sessions...)
	m.saves++
	return nil
}

func userMessage(id, content string) model.Message {
	return model.Message{ID: id, Content: content, IsUser: true, Timestamp: time.Now().UTC()}
}

func TestCreateSessionBecomesCurrent(t *testing.T) {
	store := &memoryStore{}
	svc := chatservice.NewService(store)

	first := svc.CreateSession()
	second := svc.CreateSession()

	current, ok := svc.GetCurrent()
	if !ok {
		t.Fatal("expected a current session")
	}
	if current.ID != second.ID {
		t.Fatalf("current should be the newest session: got %s want %s", current.ID, second.ID)
	}
	if current.Title != "New Chat" {
		t.Fatalf("unexpected title: %q", current.Title)
	}

	sessions := svc.Sessions()
	if len(sessions) != 2 || sessions[0].ID != second.ID || sessions[1].ID != first.ID {
		t.Fatal("sessions must be ordered newest first")
	}
	if store.saves != 2 {
		t.Fatalf("expected a flush per mutation, got %d", store.saves)
	}
}

func TestSetMessagesDerivesTitle(t *testing.T) {
	svc := chatservice.NewService(&memoryStore{})
	session := svc.CreateSession()

	svc.SetMessages(session.ID, []model.Message{
		{ID: model.WelcomeMessageID, Content: "Hello!"},
		userMessage("m-1", "What should I eat when my hemoglobin is low?"),
	})

	got, err := svc.Get(session.ID)
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if got.Title != "What should I eat" {
		t.Fatalf("unexpected title: %q", got.Title)
	}
}

func TestSetMessagesTitleTruncation(t *testing.T) {
	svc := chatservice.NewService(&memoryStore{})
	session := svc.CreateSession()

	svc.SetMessages(session.ID, []model.Message{
		{ID: model.WelcomeMessageID, Content: "Hello!"},
		userMessage("m-1", "Electroencephalographically speaking everything considered fine"),
	})

	got, _ := svc.Get(session.ID)
	if len([]rune(strings.TrimSuffix(got.Title, "..."))) != 30 {
		t.Fatalf("expected 30-rune truncation, got %q", got.Title)
	}
	if !strings.HasSuffix(got.Title, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got.Title)
	}
}

func TestSetMessagesSingleMessageResetsTitle(t *testing.T) {
	svc := chatservice.NewService(&memoryStore{})
	session := svc.CreateSession()

	svc.SetMessages(session.ID, []model.Message{
		{ID: model.WelcomeMessageID, Content: "Hello!"},
		userMessage("m-1", "short question"),
	})
	svc.SetMessages(session.ID, []model.Message{{ID: model.WelcomeMessageID, Content: "Hello!"}})

	got, _ := svc.Get(session.ID)
	if got.Title != "New Chat" {
		t.Fatalf("unexpected title: %q", got.Title)
	}
}

func TestSetMessagesUnknownSessionIsNoOp(t *testing.T) {
	store := &memoryStore{}
	svc := chatservice.NewService(store)
	svc.CreateSession()
	saves := store.saves

	svc.SetMessages("missing", []model.Message{userMessage("m-1", "hello")})

	if store.saves != saves {
		t.Fatal("no-op must not flush")
	}
}

func TestDeleteCurrentSessionPromotesNext(t *testing.T) {
	svc := chatservice.NewService(&memoryStore{})
	older := svc.CreateSession()
	newer := svc.CreateSession()

	svc.DeleteSession(newer.ID)

	current, ok := svc.GetCurrent()
	if !ok {
		t.Fatal("expected a current session after delete")
	}
	if current.ID != older.ID {
		t.Fatalf("expected promotion of remaining session: got %s want %s", current.ID, older.ID)
	}
}

func TestDeleteLastSessionCreatesReplacement(t *testing.T) {
	svc := chatservice.NewService(&memoryStore{})
	only := svc.CreateSession()

	svc.DeleteSession(only.ID)

	current, ok := svc.GetCurrent()
	if !ok {
		t.Fatal("expected a fresh current session after deleting the last one")
	}
	if current.ID == only.ID {
		t.Fatal("replacement must be a new session")
	}
	if len(svc.Sessions()) != 1 {
		t.Fatalf("expected exactly one session, got %d", len(svc.Sessions()))
	}
}

func TestDeleteNonCurrentKeepsPointer(t *testing.T) {
	svc := chatservice.NewService(&memoryStore{})
	older := svc.CreateSession()
	newer := svc.CreateSession()

	svc.DeleteSession(older.ID)

	current, _ := svc.GetCurrent()
	if current.ID != newer.ID {
		t.Fatalf("current pointer moved unexpectedly: got %s want %s", current.ID, newer.ID)
	}
}

func TestNewServiceRestoresPersistedState(t *testing.T) {
	store := &memoryStore{}
	svc := chatservice.NewService(store)
	session := svc.CreateSession()
	svc.AppendMessages(session.ID,
		model.Message{ID: model.WelcomeMessageID, Content: "Hello!"},
		userMessage("m-1", "Is paracetamol safe during pregnancy?"),
	)

	restored := chatservice.NewService(store)

	current, ok := restored.GetCurrent()
	if !ok {
		t.Fatal("expected restored current session")
	}
	if current.ID != session.ID {
		t.Fatalf("unexpected current session: %s", current.ID)
	}
	if len(current.Messages) != 2 {
		t.Fatalf("unexpected message count: %d", len(current.Messages))
	}
	if current.Title != "Is paracetamol safe during" {
		t.Fatalf("unexpected restored title: %q", current.Title)
	}
}

func TestNewServiceCorruptStoreStartsEmpty(t *testing.T) {
	store := &memoryStore{loadErr: errInject}
	svc := chatservice.NewService(store)

	if len(svc.Sessions()) != 0 {
		t.Fatal("corrupt store must yield an empty collection")
	}
	if _, ok := svc.GetCurrent(); ok {
		t.Fatal("no current session expected on empty start")
	}
}

var errInject = &corruptErr{}

type corruptErr struct{}

func (*corruptErr) Error() string { return "corrupt state" }

func TestExportSkipsWelcomeAndSanitizesFilename(t *testing.T) {
	svc := chatservice.NewService(&memoryStore{})
	session := svc.CreateSession()
	ts := time.Date(2025, 3, 10, 14, 5, 0, 0, time.UTC)
	svc.SetMessages(session.ID, []model.Message{
		{ID: model.WelcomeMessageID, Content: "Hello! I'm Velmora."},
		{ID: "m-1", Content: "What should I eat today?", IsUser: true, Timestamp: ts, Intent: "nutrition"},
		{ID: "m-2", Content: "Plenty of vegetables.", Timestamp: ts.Add(time.Minute)},
	})

	filename, doc, err := svc.Export(session.ID)
	if err != nil {
		t.Fatalf("Export err: %v", err)
	}
	if strings.Contains(doc, "I'm Velmora") {
		t.Fatal("welcome message must be excluded from export")
	}
	if !strings.Contains(doc, "### **You**") || !strings.Contains(doc, "### **Health Assistant**") {
		t.Fatal("expected role headings for both parties")
	}
	if !strings.Contains(doc, "*Intent: nutrition*") {
		t.Fatal("expected intent annotation")
	}
	if filename != "health-chat-What-should-I-eat.md" {
		t.Fatalf("unexpected filename: %q", filename)
	}
}

func TestExportUnknownSession(t *testing.T) {
	svc := chatservice.NewService(&memoryStore{})
	if _, _, err := svc.Export("missing"); err == nil {
		t.Fatal("expected error for unknown session")
	}
}
