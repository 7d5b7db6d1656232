package chat

import "time"

// Session is one persisted conversation thread. Messages are append-only in
// conversation order; Title is derived from the first exchange.
type Session struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a deep copy so callers cannot mutate stored state.
func (s Session) Clone() Session {
	copied := s
	copied.Messages = append([]Message(nil), s.Messages...)
	return copied
}
