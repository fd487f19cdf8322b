package services

import (
	"encoding/json"
	"fmt"
	"math"

	"quizforge-backend/internal/models"
)

const optionsPerQuestion = 4

// ValidateQuestionSet checks parsed model output against the question-set
// shape: exactly want records, each with a non-empty question, four string
// options, a correct index in [0,3] and a non-empty explanation. Fail-fast:
// only the first violation is reported, with its record index.
func ValidateQuestionSet(raw json.RawMessage, want int) ([]models.QuizQuestion, error) {
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, NewError(KindSchema, "model response is not a JSON array")
	}
	if len(items) != want {
		return nil, NewError(KindSchema, fmt.Sprintf("expected %d questions, got %d", want, len(items)))
	}

	questions := make([]models.QuizQuestion, 0, want)
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, NewError(KindSchema, fmt.Sprintf("question %d has a missing or invalid question field", i))
		}

		text, ok := obj["question"].(string)
		if !ok || text == "" {
			return nil, NewError(KindSchema, fmt.Sprintf("question %d has a missing or invalid question field", i))
		}

		options, ok := stringOptions(obj["options"])
		if !ok {
			return nil, NewError(KindSchema, fmt.Sprintf("question %d must have exactly %d string options", i, optionsPerQuestion))
		}

		correct, ok := wholeNumberInRange(obj["correct"], 0, optionsPerQuestion-1)
		if !ok {
			return nil, NewError(KindSchema, fmt.Sprintf("question %d has an invalid correct index", i))
		}

		explanation, ok := obj["explanation"].(string)
		if !ok || explanation == "" {
			return nil, NewError(KindSchema, fmt.Sprintf("question %d has a missing or invalid explanation", i))
		}

		questions = append(questions, models.QuizQuestion{
			Question:    text,
			Options:     options,
			Correct:     correct,
			Explanation: explanation,
		})
	}

	return questions, nil
}

func stringOptions(v any) ([]string, bool) {
	raw, ok := v.([]any)
	if !ok || len(raw) != optionsPerQuestion {
		return nil, false
	}
	options := make([]string, optionsPerQuestion)
	for i, o := range raw {
		s, ok := o.(string)
		if !ok {
			return nil, false
		}
		options[i] = s
	}
	return options, true
}

// wholeNumberInRange accepts only integral JSON numbers within [lo, hi].
func wholeNumberInRange(v any, lo, hi int) (int, bool) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	n := int(f)
	if n < lo || n > hi {
		return 0, false
	}
	return n, true
}
