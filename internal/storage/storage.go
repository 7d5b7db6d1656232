package storage

import (
	"github.com/velmora/health-assistant/backend/internal/model/chat"
)

// StorageKey is the fixed key the serialized session collection lives under,
// in every backend.
const StorageKey = "healthAssistantChats"

// Store is the durable persistence port for the session collection. Save is
// called after every mutation with the full ordered collection; Load runs
// once at startup. A Load miss (nothing persisted yet) is (nil, nil), not an
// error.
type Store interface {
	Load() ([]chat.Session, error)
	Save(sessions []chat.Session) error
}
