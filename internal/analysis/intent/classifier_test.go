package intent_test

import (
	"testing"

	"github.com/velmora/health-assistant/backend/internal/analysis/intent"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		text string
		want intent.Intent
	}{
		{"What should I eat when my hemoglobin is low?", intent.Nutrition},
		{"Is paracetamol safe during pregnancy?", intent.Medicine},
		{"My father is unconscious, what do I do?", intent.Emergency},
		{"How do I manage mild dehydration at home?", intent.General},
		{"हीमोग्लोबिन कम हो तो क्या खाना चाहिए?", intent.Nutrition},
		{"क्या बुखार में पैरासिटामोल लेना सुरक्षित है?", intent.Medicine},
		{"மாரடைப்பின் அறிகுறிகள் என்ன?", intent.Emergency},
		{"Tell me a story about the moon", intent.General},
		{"", intent.General},
	}
	for _, tc := range cases {
		if got := intent.Classify(tc.text); got != tc.want {
			t.Fatalf("Classify(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	// "diet" (nutrition) is enumerated before "tablet" (medicine); intent
	// order decides ambiguous input.
	if got := intent.Classify("Which tablet fits my diet?"); got != intent.Nutrition {
		t.Fatalf("expected nutrition for ambiguous input, got %s", got)
	}
}

func TestClassifyMultiWordFallsThrough(t *testing.T) {
	// Multi-word non-Latin keywords strip to whitespace-only strings when
	// cleaned; they must not compile into boundary patterns that match any
	// spaced-out text. Multi-word input with no trigger keyword stays General.
	cases := []string{
		"hello world",
		"please recommend a good book",
		"what time is it now",
	}
	for _, text := range cases {
		if got := intent.Classify(text); got != intent.General {
			t.Fatalf("Classify(%q) = %s, want %s", text, got, intent.General)
		}
	}
}

func TestClassifySubstringMatch(t *testing.T) {
	// Unanchored substring matching is part of the contract: "eat" inside
	// "eating" still triggers nutrition.
	if got := intent.Classify("eating habits"); got != intent.Nutrition {
		t.Fatalf("expected nutrition via substring match, got %s", got)
	}
}
