package services

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	fencedRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	arrayRe  = regexp.MustCompile(`(?s)\[.*\]`)
	objectRe = regexp.MustCompile(`(?s)\{.*\}`)
)

// ExtractJSON pulls the first parseable JSON value out of raw model output,
// trying in order: the whole text, a fenced code block, the first greedy
// bracketed span. Only the first greedy match is tried; a text with multiple
// candidate spans where the first is malformed fails extraction.
func ExtractJSON(raw string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(raw)

	if v, ok := tryParse(trimmed); ok {
		return v, nil
	}

	if m := fencedRe.FindStringSubmatch(trimmed); m != nil {
		if v, ok := tryParse(strings.TrimSpace(m[1])); ok {
			return v, nil
		}
	}

	if m := arrayRe.FindString(trimmed); m != "" {
		if v, ok := tryParse(m); ok {
			return v, nil
		}
	}
	if m := objectRe.FindString(trimmed); m != "" {
		if v, ok := tryParse(m); ok {
			return v, nil
		}
	}

	return nil, NewError(KindExtraction, "no valid JSON found in model response")
}

func tryParse(s string) (json.RawMessage, bool) {
	if s == "" {
		return nil, false
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	return json.RawMessage(s), true
}
