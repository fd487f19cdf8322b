package services

import (
	"encoding/json"
	"reflect"
	"testing"
)

const sampleArray = `[{"question":"Q1","correct":0}]`

func TestExtractJSON_Direct(t *testing.T) {
	raw, err := ExtractJSON(sampleArray)
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	assertSameJSON(t, sampleArray, raw)
}

func TestExtractJSON_FencedBlock(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"tagged json", "Here you go:\n```json\n" + sampleArray + "\n```\nEnjoy!"},
		{"untagged", "```\n" + sampleArray + "\n```"},
		{"object in fence", "```json\n{\"a\":1}\n```"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ExtractJSON(tc.text); err != nil {
				t.Errorf("Expected success, got %v", err)
			}
		})
	}
}

func TestExtractJSON_FencedMatchesDirect(t *testing.T) {
	direct, err := ExtractJSON(sampleArray)
	if err != nil {
		t.Fatalf("direct parse failed: %v", err)
	}
	fenced, err := ExtractJSON("Sure!\n```json\n" + sampleArray + "\n```")
	if err != nil {
		t.Fatalf("fenced parse failed: %v", err)
	}
	assertSameJSON(t, string(direct), fenced)
}

func TestExtractJSON_GreedyFallback(t *testing.T) {
	text := "The questions are: " + sampleArray + " — good luck."
	raw, err := ExtractJSON(text)
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	assertSameJSON(t, sampleArray, raw)
}

func TestExtractJSON_ObjectFallback(t *testing.T) {
	if _, err := ExtractJSON(`prose {"a": 1} prose`); err != nil {
		t.Errorf("Expected success, got %v", err)
	}
}

// Only the first greedy span is tried. A malformed first span is not skipped
// in favor of a later valid one.
func TestExtractJSON_NoBacktracking(t *testing.T) {
	text := `[broken then ["a", "b"]`
	if _, err := ExtractJSON(text); err == nil {
		t.Error("Expected failure: greedy match spans both brackets and is malformed")
	}
}

func TestExtractJSON_NoJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"prose only", "I cannot help with that."},
		{"empty", ""},
		{"broken array", "[{\"question\": }"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ExtractJSON(tc.text)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if KindOf(err) != KindExtraction {
				t.Errorf("Expected an extraction error, got kind %v", KindOf(err))
			}
		})
	}
}

func TestExtractJSON_IdempotentOnOwnOutput(t *testing.T) {
	first, err := ExtractJSON("```json\n" + sampleArray + "\n```")
	if err != nil {
		t.Fatalf("first extract failed: %v", err)
	}

	serialized, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	second, err := ExtractJSON(string(serialized))
	if err != nil {
		t.Fatalf("second extract failed: %v", err)
	}
	assertSameJSON(t, string(first), second)
}

func assertSameJSON(t *testing.T, expected string, got json.RawMessage) {
	t.Helper()

	var a, b any
	if err := json.Unmarshal([]byte(expected), &a); err != nil {
		t.Fatalf("bad expected JSON: %v", err)
	}
	if err := json.Unmarshal(got, &b); err != nil {
		t.Fatalf("bad extracted JSON: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}
