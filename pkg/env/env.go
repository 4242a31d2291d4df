package env

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	pkgstrings "github.com/klwxsrx/loopon-client/pkg/strings"
)

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("failed to parse environment: %w", err))
	}
	return val
}

// LoadDotEnv fills missing variables from the given files, current ".env" by default.
// Absent files are ignored, already set variables are never overridden.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	existing := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load dotenv files: %w", err)
	}
	return nil
}

func Parse[T pkgstrings.SupportedParsingTypes](key string) (T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		var blank T
		return blank, notFoundError(key, blank)
	}

	v, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return v, invalidValueError(key, v)
	}
	return v, nil
}

func ParseOptional[T pkgstrings.SupportedParsingTypes](key string) (*T, error) {
	if _, ok := os.LookupEnv(key); !ok {
		return nil, nil
	}

	v, err := Parse[T](key)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func ParseWithDefault[T pkgstrings.SupportedParsingTypes](key string, defaultValue T) (T, error) {
	v, err := ParseOptional[T](key)
	if err != nil || v == nil {
		return defaultValue, err
	}
	return *v, nil
}

func notFoundError(key string, v any) error {
	return fmt.Errorf("env %s with type %T not found", key, v)
}

func invalidValueError(key string, v any) error {
	return fmt.Errorf("env %s with type %T has invalid value", key, v)
}
