package chat

import (
	"time"

	"github.com/velmora/health-assistant/backend/internal/analysis/entity"
	"github.com/velmora/health-assistant/backend/internal/analysis/intent"
)

// WelcomeMessageID marks the synthetic greeting seeded into a fresh session.
// Welcome messages are skipped when exporting a transcript.
const WelcomeMessageID = "welcome"

const welcomeContent = "Hello! I'm Velmora, your personal AI health assistant. I can help answer your health questions, provide wellness tips, and guide you on medical topics. You can also upload prescription images for personalized suggestions. How can I assist you today?"

// NewWelcomeMessage builds the greeting every fresh session starts with.
func NewWelcomeMessage() Message {
	return Message{
		ID:        WelcomeMessageID,
		Content:   welcomeContent,
		IsUser:    false,
		Timestamp: time.Now(),
	}
}

// Message is one turn of a conversation. Messages are immutable once created
// and belong to exactly one session.
type Message struct {
	ID                 string        `json:"id"`
	Content            string        `json:"content"`
	IsUser             bool          `json:"isUser"`
	Timestamp          time.Time     `json:"timestamp"`
	Intent             intent.Intent `json:"intent,omitempty"`
	Entity             entity.Entity `json:"entity,omitempty"`
	IsDocumentAnalysis bool          `json:"isDocumentAnalysis,omitempty"`
}
