// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/doubt-solver/models"
)

// ExtractJSON returns the JSON object in a model response, dropping any
// markdown code fence or text around it.
func ExtractJSON(response string) (string, error) {
	cleaned := strings.TrimSpace(response)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	if json.Valid([]byte(cleaned)) {
		return cleaned, nil
	}

	start := strings.IndexByte(cleaned, '{')
	end := strings.LastIndexByte(cleaned, '}')
	if start >= 0 && end > start {
		candidate := cleaned[start : end+1]
		if json.Valid([]byte(candidate)) {
			return candidate, nil
		}
	}

	return "", errors.New("no valid JSON found in response")
}

// ParseExplanation decodes the two-field answer. The explanation must be
// present, the example may be missing.
func ParseExplanation(response string) (models.Explanation, error) {
	raw, err := ExtractJSON(response)
	if err != nil {
		return models.Explanation{}, err
	}

	var out models.Explanation
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return models.Explanation{}, fmt.Errorf("decode explanation: %w", err)
	}
	if strings.TrimSpace(out.Explanation) == "" {
		return models.Explanation{}, errors.New("response has no explanation")
	}

	return out, nil
}
