package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrFieldNotFound = errors.New("field not found")

// DecodeFieldWithFallback decodes the value stored under the first present key.
// The backend names some fields inconsistently (accessToken/token, journeyId/journey_id),
// every such field is decoded through this helper with its known aliases.
func DecodeFieldWithFallback[T any](fields map[string]json.RawMessage, keys ...string) (T, error) {
	var result T
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok || isJSONNull(raw) {
			continue
		}

		err := json.Unmarshal(raw, &result)
		if err != nil {
			return result, fmt.Errorf("decode field %s: %w", key, err)
		}
		return result, nil
	}

	return result, fmt.Errorf("%w: none of %s", ErrFieldNotFound, strings.Join(keys, ", "))
}

func isJSONNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}
