package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"quizforge-backend/internal/models"
)

// AttemptFunc performs one generation attempt against a single model and
// returns the raw model text. Injected so the fallback loop tests without a
// network.
type AttemptFunc func(ctx context.Context, model, prompt string) (string, error)

// Generator tries each configured model in order until one produces a valid
// question set or the list is exhausted.
type Generator struct {
	apiKey        string
	models        []string
	timeout       time.Duration
	questionCount int
	attempt       AttemptFunc
}

func NewGenerator(apiKey string, modelList []string, timeout time.Duration, questionCount int, attempt AttemptFunc) *Generator {
	return &Generator{
		apiKey:        apiKey,
		models:        modelList,
		timeout:       timeout,
		questionCount: questionCount,
		attempt:       attempt,
	}
}

// Generate runs the fallback loop for one topic. Attempts are strictly
// sequential: the first valid result wins and later models are never called.
// Any per-model failure, timeout included, advances to the next model; only
// the last model's error surfaces to the caller.
func (g *Generator) Generate(ctx context.Context, topic string) ([]models.QuizQuestion, error) {
	if g.apiKey == "" {
		return nil, NewError(KindConfiguration, "OPENROUTER_API_KEY not configured")
	}

	prompt := buildQuizPrompt(topic, g.questionCount)

	var lastErr error
	for i, model := range g.models {
		questions, err := g.tryModel(ctx, model, prompt)
		if err == nil {
			log.Printf("quiz generated: topic=%q model=%s attempt=%d/%d", topic, model, i+1, len(g.models))
			return questions, nil
		}

		log.Printf("attempt failed: topic=%q model=%s attempt=%d/%d err=%v", topic, model, i+1, len(g.models), err)
		lastErr = err
	}

	return nil, lastErr
}

// tryModel performs one bounded attempt: call, extract, validate.
func (g *Generator) tryModel(ctx context.Context, model, prompt string) ([]models.QuizQuestion, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.attempt(attemptCtx, model, prompt)
	if err != nil {
		return nil, err
	}

	parsed, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	return ValidateQuestionSet(parsed, g.questionCount)
}

func buildQuizPrompt(topic string, count int) string {
	var b strings.Builder

	b.WriteString("You are an expert quiz writer. Generate multiple choice questions about the topic below.\n\n")
	b.WriteString("CRITICAL: Return ONLY a valid JSON array. No preamble, no markdown, no backticks.\n\n")
	b.WriteString(fmt.Sprintf("Generate exactly %d questions about: %s\n", count, topic))
	b.WriteString(`
JSON schema per question:
{"question": "string", "options": ["string", "string", "string", "string"], "correct": int, "explanation": "string"}

Exactly 4 options per question. "correct" is the 0-based index of the right option. Keep explanations to one or two sentences.
`)

	return b.String()
}
