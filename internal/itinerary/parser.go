package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MalformedResponseError means the model reply held no decodable JSON object.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return "malformed AI response: " + e.Reason
}

// Parse extracts the itinerary object from raw model output. The whole text
// is tried first; otherwise each balanced {...} span is tried in order.
func Parse(raw string) (Document, error) {
	text := stripCodeFence(raw)
	if text == "" {
		return nil, &MalformedResponseError{Reason: "empty response"}
	}

	if doc, err := decodeObject(text); err == nil {
		return doc, nil
	}

	for start := strings.IndexByte(text, '{'); start >= 0; {
		end := matchingBrace(text, start)
		if end < 0 {
			break
		}
		if doc, err := decodeObject(text[start : end+1]); err == nil {
			return doc, nil
		}
		next := strings.IndexByte(text[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return nil, &MalformedResponseError{Reason: "no JSON object found"}
}

func decodeObject(s string) (Document, error) {
	var doc Document
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("null document")
	}
	return doc, nil
}

// matchingBrace returns the index of the '}' closing the '{' at start,
// skipping braces inside JSON strings, or -1.
func matchingBrace(s string, start int) int {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// stripCodeFence removes markdown code blocks if present (e.g. ```json ... ```).
func stripCodeFence(input string) string {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "```") {
		return input
	}
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
