package http

import (
	"fmt"
	"net/http"
	"strings"
	"unicode"
)

type Route struct {
	Method string
	URL    string
}

func (r Route) Name() string {
	path := strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Latin, r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, strings.Trim(r.URL, "/"))
	return strings.ToLower(fmt.Sprintf("%s_%s", r.Method, path))
}

// IsIdempotent reports whether the request may be repeated without side effects.
func (r Route) IsIdempotent() bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}
