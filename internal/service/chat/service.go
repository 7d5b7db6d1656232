package chat

import (
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/velmora/health-assistant/backend/internal/model/chat"
	"github.com/velmora/health-assistant/backend/internal/storage"
)

var ErrSessionNotFound = errors.New("session not found")

const defaultTitle = "New Chat"

// Service owns the session collection and the current-session pointer. Every
// mutation re-serializes the full collection to the storage port before the
// lock is released, so in-memory and durable state never diverge across a
// suspension point.
type Service struct {
	mu       sync.RWMutex
	store    storage.Store
	sessions []chat.Session // newest first
	current  string
}

// NewService loads the persisted collection. Corrupt or unreadable state
// degrades to an empty collection; when sessions exist, the most recently
// created one becomes current.
func NewService(store storage.Store) *Service {
	s := &Service{store: store}

	sessions, err := store.Load()
	if err != nil {
		log.Printf("[chat] load sessions: %v (starting empty)", err)
		sessions = nil
	}
	s.sessions = sessions
	if len(sessions) > 0 {
		s.current = sessions[0].ID
	}
	return s
}

// CreateSession provisions a fresh session at the front of the collection
// and makes it current.
func (s *Service) CreateSession() chat.Session {
	now := time.Now().UTC()
	session := chat.Session{
		ID:        uuid.NewString(),
		Title:     defaultTitle,
		Messages:  []chat.Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = append([]chat.Session{session}, s.sessions...)
	s.current = session.ID
	s.flushLocked()

	return session.Clone()
}

// SetMessages replaces the session's message sequence, refreshes its updated
// timestamp and recomputes its title from the second message. Unknown ids
// are a silent no-op.
func (s *Service) SetMessages(sessionID string, messages []chat.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setMessagesLocked(sessionID, append([]chat.Message(nil), messages...))
}

// AppendMessages adds messages to the end of the session's sequence through
// the same title and persistence path as SetMessages.
func (s *Service) AppendMessages(sessionID string, messages ...chat.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sessions {
		if s.sessions[i].ID == sessionID {
			combined := append(append([]chat.Message(nil), s.sessions[i].Messages...), messages...)
			s.setMessagesLocked(sessionID, combined)
			return
		}
	}
}

func (s *Service) setMessagesLocked(sessionID string, messages []chat.Message) {
	for i := range s.sessions {
		if s.sessions[i].ID != sessionID {
			continue
		}
		s.sessions[i].Messages = messages
		s.sessions[i].UpdatedAt = time.Now().UTC()
		if len(messages) > 1 {
			s.sessions[i].Title = deriveTitle(messages[1].Content)
		} else {
			s.sessions[i].Title = defaultTitle
		}
		s.flushLocked()
		return
	}
}

// DeleteSession removes the session. Deleting the current session promotes
// the next remaining one, or creates a fresh session when none remain, so
// the current pointer always references an existing session.
func (s *Service) DeleteSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.sessions {
		if s.sessions[i].ID == sessionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	s.sessions = append(s.sessions[:idx], s.sessions[idx+1:]...)

	if s.current == sessionID {
		if len(s.sessions) > 0 {
			s.current = s.sessions[0].ID
		} else {
			now := time.Now().UTC()
			replacement := chat.Session{
				ID:        uuid.NewString(),
				Title:     defaultTitle,
				Messages:  []chat.Message{},
				CreatedAt: now,
				UpdatedAt: now,
			}
			s.sessions = []chat.Session{replacement}
			s.current = replacement.ID
		}
	}
	s.flushLocked()
}

// GetCurrent returns the session the current pointer references.
func (s *Service) GetCurrent() (chat.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.sessions {
		if s.sessions[i].ID == s.current {
			return s.sessions[i].Clone(), true
		}
	}
	return chat.Session{}, false
}

// Select moves the current pointer to an existing session.
func (s *Service) Select(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sessions {
		if s.sessions[i].ID == sessionID {
			s.current = sessionID
			return nil
		}
	}
	return ErrSessionNotFound
}

// Get retrieves a session by identifier.
func (s *Service) Get(sessionID string) (chat.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.sessions {
		if s.sessions[i].ID == sessionID {
			return s.sessions[i].Clone(), nil
		}
	}
	return chat.Session{}, ErrSessionNotFound
}

// Sessions lists the collection, newest first.
func (s *Service) Sessions() []chat.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]chat.Session, 0, len(s.sessions))
	for i := range s.sessions {
		out = append(out, s.sessions[i].Clone())
	}
	return out
}

// flushLocked persists the full collection; the caller holds the write lock.
// Persistence failures are logged, never surfaced to the chat flow.
func (s *Service) flushLocked() {
	if err := s.store.Save(s.sessions); err != nil {
		log.Printf("[chat] persist sessions: %v", err)
	}
}

// deriveTitle takes the first four whitespace-separated words, truncating to
// 30 characters with an ellipsis when longer.
func deriveTitle(content string) string {
	words := strings.Fields(content)
	if len(words) == 0 {
		return defaultTitle
	}
	if len(words) > 4 {
		words = words[:4]
	}
	title := strings.Join(words, " ")
	if runes := []rune(title); len(runes) > 30 {
		return string(runes[:30]) + "..."
	}
	return title
}
