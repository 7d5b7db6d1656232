package intent

import (
	"regexp"
	"strings"
)

// Intent is the coarse topical category of a user question.
type Intent string

const (
	Nutrition Intent = "nutrition"
	Medicine  Intent = "medicine"
	Emergency Intent = "emergency"
	General   Intent = "general"
)

// rule binds one intent to its ordered trigger keywords. Rules are evaluated
// in slice order and the first keyword hit wins, so the table doubles as the
// priority ordering of the classifier.
type rule struct {
	intent   Intent
	keywords []keyword
}

type keyword struct {
	raw string
	// boundaryClean anchors the keyword stripped of non-word characters; nil
	// when stripping leaves nothing to anchor (non-Latin keywords strip to
	// empty or whitespace-only strings).
	boundaryClean *regexp.Regexp
	boundaryRaw   *regexp.Regexp
}

var nonWord = regexp.MustCompile(`[^\w\s]`)

func compileKeyword(raw string) keyword {
	lowered := strings.ToLower(raw)
	kw := keyword{
		raw:         lowered,
		boundaryRaw: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(lowered) + `\b`),
	}
	if clean := nonWord.ReplaceAllString(lowered, ""); strings.TrimSpace(clean) != "" && clean != lowered {
		kw.boundaryClean = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(clean) + `\b`)
	}
	return kw
}

func compileRule(it Intent, words ...string) rule {
	r := rule{intent: it, keywords: make([]keyword, 0, len(words))}
	for _, w := range words {
		r.keywords = append(r.keywords, compileKeyword(w))
	}
	return r
}

// rules spans English, Hindi and Tamil triggers per intent. Substring
// matching is deliberately loose: short keywords can false-positive, which is
// accepted for recall.
var rules = []rule{
	compileRule(Nutrition,
		"eat", "diet", "food", "nutrition", "vitamin", "iron", "protein", "calcium",
		"hemoglobin", "anemia",
		"हीमोग्लोबिन", "खाना", "भोजन", "आहार", "विटामिन", "आयरन", "प्रोटीन", "कैल्शियम", "खून", "एनीमिया",
		"ஹீமோகுளோபின்", "உணவு", "ஆஹாரம்", "வைட்டமின்", "இரும்பு", "புரதம்", "கால்சியம்", "இரத்தம்", "இரத்த சோகை", "சாப்பிட",
	),
	compileRule(Medicine,
		"paracetamol", "ibuprofen", "tablet", "dose", "drug", "medicine", "medication",
		"pills", "fever", "pain", "safe", "pregnancy", "pregnant",
		"दवा", "गोली", "पैरासिटामोल", "दवाई", "बुखार", "दर्द", "सुरक्षित", "गर्भावस्था", "गर्भवती",
		"மருந்து", "பைராசிட்டமால்", "மாத்திரை", "காய்ச்சல்", "வலி", "பாதுகாப்பு", "கர்ப்பம்", "கர்ப்பிணி",
	),
	compileRule(Emergency,
		"emergency", "urgent", "bleeding", "unconscious", "chest pain", "stroke",
		"accident", "dizzy", "dizziness", "heart attack", "dangerous",
		"आपात", "घातक", "अचानक", "बेहोश", "दुर्घटना", "चक्कर", "खतरनाक", "दिल का दौरा", "सीने में दर्द",
		"அவசரம்", "கொடுதுயரம்", "மயக்கம்", "விபத்து", "தலைச்சுற்றல்", "ஆபத்து", "மாரடைப்பு", "மார்பு வலி",
	),
	compileRule(General,
		"dehydration", "dehydrated", "water", "thirst", "dizzy", "tired", "weakness",
		"manage", "home remedies",
		"पानी की कमी", "प्यास", "कमजोरी", "थकान", "घरेलू उपाय",
		"நீர்ச்சத்து குறைபாடு", "தாகம்", "பலவீனம்", "களைப்பு", "வீட்டு வைத்தியம்",
	),
}

// Classify maps text to an intent. Per keyword it tries, in order, a
// word-boundary match on the cleaned keyword, a plain substring match, and a
// word-boundary match on the raw keyword; the first keyword satisfying any
// test decides the intent. Text matching nothing falls back to General.
func Classify(text string) Intent {
	lowered := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if kw.boundaryClean != nil && kw.boundaryClean.MatchString(lowered) {
				return r.intent
			}
			if strings.Contains(lowered, kw.raw) {
				return r.intent
			}
			if kw.boundaryRaw.MatchString(lowered) {
				return r.intent
			}
		}
	}
	return General
}
