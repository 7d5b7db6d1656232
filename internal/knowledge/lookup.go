package knowledge

import (
	"strings"

	"github.com/velmora/health-assistant/backend/internal/analysis/language"
)

// keyPhrases is the shared fuzzy-match vocabulary: the same domain terms in
// every supported language. A record only fuzzy-matches a query when both
// contain at least one common phrase from this list.
var keyPhrases = []string{
	"hemoglobin", "हीमोग्लोबिन", "ஹீமோகுளோபின்",
	"paracetamol", "पैरासिटामोल", "பைராசிட்டமால்",
	"dehydration", "पानी की कमी", "நீர்ச்சத்து",
	"dizzy", "चक्कर", "தலைச்சுற்றல்",
	"heart attack", "दिल का दौरा", "மாரடைப்பு",
	"pregnancy", "गर्भावस्था", "கர்ப்பம்",
	"fever", "बुखार", "காய்ச்சல்",
}

// Base holds the immutable record set and the fuzzy-match vocabulary.
// Lookups never mutate it.
type Base struct {
	records []QAPair
	phrases []string
}

// NewBase returns a Base over the supplied records. extraPhrases widens the
// fuzzy-match vocabulary beyond the built-in list; it is a configuration
// knob, empty by default.
func NewBase(records []QAPair, extraPhrases ...string) *Base {
	phrases := make([]string, 0, len(keyPhrases)+len(extraPhrases))
	for _, p := range keyPhrases {
		phrases = append(phrases, strings.ToLower(p))
	}
	for _, p := range extraPhrases {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			phrases = append(phrases, p)
		}
	}
	return &Base{records: append([]QAPair(nil), records...), phrases: phrases}
}

// Records returns a copy of the record set.
func (b *Base) Records() []QAPair {
	return append([]QAPair(nil), b.records...)
}

// ExactMatch finds a record whose question equals the query after trimming
// and case folding, regardless of record language.
func (b *Base) ExactMatch(query string) (QAPair, bool) {
	normalized := normalize(query)
	for _, rec := range b.records {
		if normalize(rec.Question) == normalized {
			return rec, true
		}
	}
	return QAPair{}, false
}

// ExactMatchInLanguage is ExactMatch restricted to records in lang.
func (b *Base) ExactMatchInLanguage(query string, lang language.Language) (QAPair, bool) {
	normalized := normalize(query)
	for _, rec := range b.records {
		if rec.Language == lang && normalize(rec.Question) == normalized {
			return rec, true
		}
	}
	return QAPair{}, false
}

// FuzzyMatch finds the first record in lang whose question shares at least
// one key phrase with the query. Records in other languages are never
// returned.
func (b *Base) FuzzyMatch(query string, lang language.Language) (QAPair, bool) {
	normalized := normalize(query)
	for _, rec := range b.records {
		if rec.Language != lang {
			continue
		}
		question := normalize(rec.Question)
		for _, phrase := range b.phrases {
			if strings.Contains(normalized, phrase) && strings.Contains(question, phrase) {
				return rec, true
			}
		}
	}
	return QAPair{}, false
}

// ExamplesInLanguage returns up to n records in lang, in enumeration order,
// for use as in-context prompt examples.
func (b *Base) ExamplesInLanguage(lang language.Language, n int) []QAPair {
	examples := make([]QAPair, 0, n)
	for _, rec := range b.records {
		if rec.Language != lang {
			continue
		}
		examples = append(examples, rec)
		if len(examples) == n {
			break
		}
	}
	return examples
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
