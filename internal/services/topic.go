package services

import (
	"regexp"
	"strings"
)

const (
	topicMinLen = 3
	topicMaxLen = 200
)

// Letters, digits, whitespace and a small punctuation set.
var topicPattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-,.'&()]+$`)

// ValidateTopic normalizes a caller-supplied topic. Pure function, no side
// effects.
func ValidateTopic(input any) (string, error) {
	raw, ok := input.(string)
	if !ok {
		return "", NewError(KindValidation, "Topic is required and must be a string")
	}

	topic := strings.TrimSpace(raw)
	if len(topic) < topicMinLen {
		return "", NewError(KindValidation, "Topic must be at least 3 characters long")
	}
	if len(topic) > topicMaxLen {
		return "", NewError(KindValidation, "Topic must be at most 200 characters long")
	}
	if !topicPattern.MatchString(topic) {
		return "", NewError(KindValidation, "Topic contains invalid characters")
	}

	return topic, nil
}
