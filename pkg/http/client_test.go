package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkghttp "github.com/klwxsrx/loopon-client/pkg/http"
	"github.com/klwxsrx/loopon-client/pkg/log"
)

func TestClient_WithBearerAuth_InjectsHeaderOnlyWithToken(t *testing.T) {
	var gotHeaders []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = append(gotHeaders, r.Header.Get(pkghttp.HeaderAuthorization))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	token := ""
	client := pkghttp.NewClient(
		pkghttp.WithClientDestination("loopon", srv.URL),
		pkghttp.WithBearerAuth(func(context.Context) (string, bool) {
			return token, token != ""
		}),
		pkghttp.WithRequestLogging(log.NewStub(), log.LevelInfo, log.LevelWarn),
	)

	_, err := client.NewRequest(context.Background()).Get("/ping")
	require.NoError(t, err)

	token = "secret"
	_, err = client.NewRequest(context.Background()).Get("/ping")
	require.NoError(t, err)

	assert.Equal(t, []string{"", "Bearer secret"}, gotHeaders)
}

func TestClient_With_KeepsBaseOptions(t *testing.T) {
	var requestID, custom string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get(pkghttp.DefaultRequestIDHeader)
		custom = r.Header.Get("X-Client")
	}))
	defer srv.Close()

	client := pkghttp.NewClient(pkghttp.WithClientDestination("loopon", srv.URL)).
		With(pkghttp.WithRequestID(pkghttp.DefaultRequestIDHeader), pkghttp.WithRequestHeader("X-Client", "cli"))

	_, err := client.NewRequest(context.Background()).Get("/")
	require.NoError(t, err)

	assert.NotEmpty(t, requestID)
	assert.Equal(t, "cli", custom)
}

func TestRoute_Name(t *testing.T) {
	route := pkghttp.Route{Method: http.MethodGet, URL: "/api/journeys/current"}

	assert.Equal(t, "get_api_journeys_current", route.Name())
	assert.True(t, route.IsIdempotent())
	assert.False(t, pkghttp.Route{Method: http.MethodPost}.IsIdempotent())
}
