package pipeline

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ErrProtocol is returned when a stage response cannot be turned into valid
// JSON by any extraction strategy.
var ErrProtocol = errors.New("llm response violates protocol")

var (
	fencedBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	// Balanced to one nesting level; enough for reasoning text wrapped
	// around a flat-ish object.
	greedyObjectRe = regexp.MustCompile(`(?s)\{[^{}]*(?:\{[^{}]*\}[^{}]*)*\}`)
)

// ExtractJSON digs a JSON object out of a model response. Strategies in
// order: strict parse, fenced code block, greedy object match, repair pass.
func ExtractJSON(text string) ([]byte, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrProtocol
	}

	if strings.HasPrefix(trimmed, "{") && json.Valid([]byte(trimmed)) {
		return []byte(trimmed), nil
	}

	if m := fencedBlockRe.FindStringSubmatch(trimmed); m != nil {
		if json.Valid([]byte(m[1])) {
			return []byte(m[1]), nil
		}
	}

	if m := greedyObjectRe.FindString(trimmed); m != "" {
		if json.Valid([]byte(m)) {
			return []byte(m), nil
		}
		// Last resort: mend single quotes, trailing commas, unquoted keys.
		if repaired, err := jsonrepair.JSONRepair(m); err == nil && json.Valid([]byte(repaired)) {
			return []byte(repaired), nil
		}
	}

	if repaired, err := jsonrepair.JSONRepair(trimmed); err == nil {
		candidate := strings.TrimSpace(repaired)
		if strings.HasPrefix(candidate, "{") && json.Valid([]byte(candidate)) {
			return []byte(candidate), nil
		}
	}

	return nil, ErrProtocol
}

// decodeObject unmarshals extracted JSON into the stage's wire struct.
func decodeObject(raw []byte, v interface{}) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return ErrProtocol
	}
	return nil
}
