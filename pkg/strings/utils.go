package strings

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type SupportedParsingTypes interface {
	bool | int | uint | float64 | string | time.Duration | uuid.UUID | []string
}

func ParseTypedValue[T SupportedParsingTypes](value string) (T, error) {
	var v any
	var err error
	var blank T
	switch any(blank).(type) {
	case bool:
		v, err = strconv.ParseBool(value)
	case int:
		v, err = strconv.Atoi(value)
	case uint:
		var u uint64
		u, err = strconv.ParseUint(value, 10, 64)
		v = uint(u)
	case float64:
		v, err = strconv.ParseFloat(value, 64)
	case string:
		v, err = value, nil
	case time.Duration:
		v, err = time.ParseDuration(value)
	case uuid.UUID:
		v, err = uuid.Parse(value)
	case []string:
		v, err = splitList(value), nil
	default:
		return blank, fmt.Errorf("unsupported value type %T", blank)
	}

	if err != nil {
		return blank, fmt.Errorf("failed to convert to type %T: %w", blank, err)
	}
	return v.(T), nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		result = append(result, part)
	}
	return result
}
