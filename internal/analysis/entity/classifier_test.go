package entity_test

import (
	"testing"

	"github.com/velmora/health-assistant/backend/internal/analysis/entity"
	"github.com/velmora/health-assistant/backend/internal/analysis/intent"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		text string
		want entity.Entity
	}{
		{"My blood pressure has been high lately", entity.Cardiology},
		{"What should I eat when my hemoglobin is low?", entity.Hematology},
		{"Suggest a balanced diet for me", entity.Nutrition},
		{"What is the right dose of ibuprofen?", entity.Pharmacology},
		{"There was an accident and heavy bleeding", entity.Emergency},
		{"Is this safe while pregnant?", entity.Gynecology},
		{"I caught a cold and my immunity feels weak", entity.Immunology},
		{"Tell me a story about the moon", entity.General},
		{"", entity.General},
	}
	for _, tc := range cases {
		if got := entity.Classify(tc.text); got != tc.want {
			t.Fatalf("Classify(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}

func TestClassifyRequiresWordBoundary(t *testing.T) {
	// Entity matching is stricter than intent matching: "hearty" must not
	// trigger cardiology.
	if got := entity.Classify("a hearty congratulations"); got != entity.General {
		t.Fatalf("expected general for substring-only hit, got %s", got)
	}
}

func TestEntityAndIntentAreIndependent(t *testing.T) {
	text := "Is paracetamol safe during pregnancy?"
	if got := intent.Classify(text); got != intent.Medicine {
		t.Fatalf("unexpected intent: %s", got)
	}
	// Gynecology is enumerated after pharmacology, but "paracetamol" hits
	// pharmacology first; the tags may disagree with the intent table.
	if got := entity.Classify(text); got != entity.Pharmacology {
		t.Fatalf("unexpected entity: %s", got)
	}
}
