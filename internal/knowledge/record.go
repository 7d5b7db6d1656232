package knowledge

import (
	"github.com/velmora/health-assistant/backend/internal/analysis/intent"
	"github.com/velmora/health-assistant/backend/internal/analysis/language"
)

// QAPair is one curated question/answer record. Records are loaded once at
// startup and never mutated; answers are reused verbatim when a lookup hits.
type QAPair struct {
	Question string            `json:"q"`
	Answer   string            `json:"a"`
	Language language.Language `json:"language"`
	Intent   intent.Intent     `json:"intent"`
}
