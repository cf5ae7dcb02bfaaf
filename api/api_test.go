package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/orbitl2/operator/api/core"
	"github.com/stretchr/testify/require"
)

type testController struct{}

var _ core.APIController = (*testController)(nil)

func (*testController) GetPathPrefix() string {
	return "Test"
}

func (*testController) GetEndpoints() []*core.APIEndpoint {
	handler := func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	return []*core.APIEndpoint{
		{Path: "Protected", Method: http.MethodGet, Handler: handler, APIKeyAuth: true},
		{Path: "Open", Method: http.MethodGet, Handler: handler},
	}
}

func TestAPIRoutesAndAuth(t *testing.T) {
	t.Parallel()

	apiConfig := core.APIConfig{
		Port:         10000,
		PathPrefix:   "api",
		APIKeyHeader: "x-api-key",
		APIKeys:      []string{"topsecret"},
	}

	api, err := NewAPI(context.Background(), apiConfig,
		[]core.APIController{&testController{}}, hclog.NewNullLogger())
	require.NoError(t, err)

	execute := func(path string, apiKey string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if apiKey != "" {
			req.Header.Set(apiConfig.APIKeyHeader, apiKey)
		}

		rec := httptest.NewRecorder()

		api.handler.ServeHTTP(rec, req)

		return rec.Code
	}

	require.Equal(t, http.StatusOK, execute("/api/Test/Open", ""))
	require.Equal(t, http.StatusUnauthorized, execute("/api/Test/Protected", ""))
	require.Equal(t, http.StatusUnauthorized, execute("/api/Test/Protected", "wrong"))
	require.Equal(t, http.StatusOK, execute("/api/Test/Protected", "topsecret"))
	require.Equal(t, http.StatusNotFound, execute("/api/Test/Missing", ""))
}
