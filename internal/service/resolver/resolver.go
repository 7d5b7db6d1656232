package resolver

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/velmora/health-assistant/backend/internal/analysis/entity"
	"github.com/velmora/health-assistant/backend/internal/analysis/intent"
	"github.com/velmora/health-assistant/backend/internal/analysis/language"
	"github.com/velmora/health-assistant/backend/internal/knowledge"
	"github.com/velmora/health-assistant/backend/internal/service/ai"
)

// Source records where a resolution's text came from.
type Source string

const (
	SourceKnowledgeBase Source = "knowledge-base"
	SourceGenerated     Source = "generated"
	SourceFallback      Source = "fallback"
)

// Resolution is the resolver's answer. Text is always non-empty; the
// resolver never fails outward.
type Resolution struct {
	Text     string            `json:"text"`
	Language language.Language `json:"language"`
	Intent   intent.Intent     `json:"intent"`
	Entity   entity.Entity     `json:"entity"`
	Source   Source            `json:"source"`
}

// Generator is the generation-backend seam. A nil Generator behaves like a
// backend failure and degrades to the canned fallback.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts ai.GenerationOptions) (string, error)
}

// Service orchestrates language detection, knowledge-base lookup and the
// generation fallback chain.
type Service struct {
	base      *knowledge.Base
	generator Generator
}

// NewService wires a resolver over the knowledge base and an optional
// generation backend.
func NewService(base *knowledge.Base, generator Generator) *Service {
	return &Service{base: base, generator: generator}
}

// Resolve answers a user question on the conversational path: detect
// language, try a language-scoped exact then fuzzy knowledge-base match, and
// only then fall back to the generation backend steered by same-language
// in-context examples. Backend failures degrade to the language-specific
// fallback message; Resolve never returns an error.
func (s *Service) Resolve(ctx context.Context, question string, it intent.Intent) Resolution {
	lang := language.Detect(question)
	ent := entity.Classify(question)

	rec, ok := s.base.ExactMatchInLanguage(question, lang)
	if !ok {
		rec, ok = s.base.FuzzyMatch(question, lang)
	}
	if ok {
		text := rec.Answer + "\n\n" + disclaimerFor(lang, it) + "\n\n*(From knowledge base)*"
		return Resolution{Text: text, Language: lang, Intent: it, Entity: ent, Source: SourceKnowledgeBase}
	}

	generated, err := s.generate(ctx, s.conversationalPrompt(question, lang), ai.GenerationOptions{
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 512,
	})
	if err != nil {
		log.Printf("[resolver] generation backend failed: %v", err)
		text := fallbackFor(lang) + "\n\n" + disclaimerFor(lang, it)
		return Resolution{Text: text, Language: lang, Intent: it, Entity: ent, Source: SourceFallback}
	}

	text := strings.TrimSpace(generated) + "\n\n" + disclaimerFor(lang, it)
	return Resolution{Text: text, Language: lang, Intent: it, Entity: ent, Source: SourceGenerated}
}

// AnswerDirect answers on the one-shot path: an exact knowledge-base match
// regardless of record language, else a single intent-steered completion.
// Like Resolve it always produces text.
func (s *Service) AnswerDirect(ctx context.Context, question string, it intent.Intent) Resolution {
	lang := language.Detect(question)
	ent := entity.Classify(question)

	if rec, ok := s.base.ExactMatch(question); ok {
		text := rec.Answer + "\n\n" + disclaimerFor(lang, it) + "\n\n*(From knowledge base)*"
		return Resolution{Text: text, Language: lang, Intent: it, Entity: ent, Source: SourceKnowledgeBase}
	}

	generated, err := s.generate(ctx, s.directPrompt(question, lang, it), ai.GenerationOptions{
		Temperature:     0.3,
		MaxOutputTokens: 300,
	})
	if err != nil {
		log.Printf("[resolver] generation backend failed: %v", err)
		text := fallbackFor(lang) + "\n\n" + disclaimerFor(lang, it)
		return Resolution{Text: text, Language: lang, Intent: it, Entity: ent, Source: SourceFallback}
	}

	text := strings.TrimSpace(generated) + "\n\n" + disclaimerFor(lang, it) + "\n\n*(AI-powered response)*"
	return Resolution{Text: text, Language: lang, Intent: it, Entity: ent, Source: SourceGenerated}
}

func (s *Service) generate(ctx context.Context, prompt string, opts ai.GenerationOptions) (string, error) {
	if s.generator == nil {
		return "", fmt.Errorf("generation backend unavailable")
	}
	text, err := s.generator.Generate(ctx, prompt, opts)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("generation backend returned empty text")
	}
	return text, nil
}

func (s *Service) conversationalPrompt(question string, lang language.Language) string {
	examples := s.base.ExamplesInLanguage(lang, 3)
	rendered := make([]string, 0, len(examples))
	for _, ex := range examples {
		rendered = append(rendered, fmt.Sprintf("Q: %s\nA: %s", ex.Question, ex.Answer))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a multilingual health AI assistant. %s\n\n", languageInstructions[lang])
	if len(rendered) > 0 {
		fmt.Fprintf(&b, "Follow these examples for tone and format:\n\n%s\n\n", strings.Join(rendered, "\n\n---\n\n"))
	}
	b.WriteString(`Guidelines:
- Respond in the SAME language as the user's question
- Use empathetic, caring tone like the examples above
- For nutrition: Suggest specific foods and include emojis/symbols
- For medicine: Provide general info but emphasize consulting doctors
- For emergencies: Give immediate advice while urging medical care
- Always include appropriate disclaimers
- Keep responses helpful but concise (under 300 words)

`)
	fmt.Fprintf(&b, "User question: %s", question)
	return b.String()
}

func (s *Service) directPrompt(question string, lang language.Language, it intent.Intent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a knowledgeable but cautious health assistant. %s %s\n\n",
		languageInstructions[lang], intentInstructions[it])
	b.WriteString(`Guidelines:
- Provide helpful, accurate health information (under 200 words)
- Use simple, clear language
- Include relevant health tips when appropriate
- Always emphasize that this is educational information
- Be empathetic and supportive
- If it's an emergency, prioritize immediate action advice

`)
	fmt.Fprintf(&b, "User question: %s", question)
	return b.String()
}
