package entity

import (
	"regexp"
	"strings"
)

// Entity is a finer-grained topical tag assigned independently of intent.
type Entity string

const (
	Cardiology   Entity = "cardiology"
	Hematology   Entity = "hematology"
	Nutrition    Entity = "nutrition"
	Pharmacology Entity = "pharmacology"
	Emergency    Entity = "emergency"
	Gynecology   Entity = "gynecology"
	Immunology   Entity = "immunology"
	General      Entity = "general"
)

type rule struct {
	entity   Entity
	patterns []*regexp.Regexp
}

func compileRule(e Entity, words ...string) rule {
	r := rule{entity: e, patterns: make([]*regexp.Regexp, 0, len(words))}
	for _, w := range words {
		r.patterns = append(r.patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(strings.ToLower(w))+`\b`))
	}
	return r
}

// rules is evaluated in order; matching is word-boundary-anchored only,
// stricter than intent classification.
var rules = []rule{
	compileRule(Cardiology,
		"heart", "chest pain", "cardiac", "blood pressure", "hypertension", "cholesterol",
		"दिल", "सीने में दर्द", "हृदय", "बीपी", "कोलेस्ट्रॉल",
		"இதயம்", "மார்பு வலி", "இரத்த அழுத்தம்", "கொலஸ்ட்ரால்",
	),
	compileRule(Hematology,
		"hemoglobin", "anemia", "blood", "iron deficiency", "hb",
		"हीमोग्लोबिन", "खून", "एनीमिया", "आयरन",
		"ஹீமோகுளோபின்", "இரத்தம்", "இரத்த சோகை", "இரும்பு",
	),
	compileRule(Nutrition,
		"eat", "diet", "food", "nutrition", "vitamin", "protein", "calcium", "fruits", "vegetables",
		"खाना", "भोजन", "आहार", "विटामिन", "प्रोटीन", "कैल्शियम",
		"உணவு", "ஆஹாரம்", "வைட்டமின்", "புரதம்", "கால்சியம்",
	),
	compileRule(Pharmacology,
		"paracetamol", "ibuprofen", "tablet", "dose", "drug", "medicine", "medication", "pills",
		"दवा", "गोली", "पैरासिटामोल", "दवाई",
		"மருந்து", "பைராசிட்டமால்", "மாத்திரை",
	),
	compileRule(Emergency,
		"emergency", "urgent", "bleeding", "unconscious", "chest pain", "stroke", "accident",
		"आपात", "घातक", "अचानक", "बेहोश", "दुर्घटना",
		"அவசரம்", "கொடுதுயரம்", "மயக்கம்", "விபத்து",
	),
	compileRule(Gynecology,
		"pregnancy", "pregnant", "menstruation", "periods", "gynecology", "obstetrics",
		"गर्भावस्था", "गर्भवती", "माहवारी", "प्रसूति",
		"கர்ப்பம்", "கர்ப்பிணி", "மாதவிடாய்", "மகப்பேறு",
	),
	compileRule(Immunology,
		"immunity", "immune", "infection", "fever", "cold", "flu", "antibody",
		"प्रतिरक्षा", "संक्रमण", "बुखार", "सर्दी", "फ्लू",
		"நோய் எதிர்ப்பு", "தொற்று", "காய்ச்சல்", "சளி",
	),
}

// Classify maps text to an entity tag, defaulting to General. First match
// wins in rule and keyword order.
func Classify(text string) Entity {
	lowered := strings.ToLower(text)
	for _, r := range rules {
		for _, p := range r.patterns {
			if p.MatchString(lowered) {
				return r.entity
			}
		}
	}
	return General
}
