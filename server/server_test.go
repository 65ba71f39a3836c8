package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	file := filepath.Join(t.TempDir(), "sdlserver.db")
	s, err := New(file, []byte("test-secret-test-secret-test-secret"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	_, err = s.creds.Create(context.Background(), "k-test")
	require.NoError(t, err)
	return s
}

func login(t *testing.T, s *Server, apiKey string) string {
	t.Helper()
	body, _ := json.Marshal(loginRequest{APIKey: apiKey})
	req := httptest.NewRequest(http.MethodPost, "/v1/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp loginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func Test_Server_healthzRequiresNoAuth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/healthz", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func Test_Server_loginWithBadKeyIsUnauthorized(t *testing.T) {
	s := newTestServer(t)

	body, _ := json.Marshal(loginRequest{APIKey: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/v1/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func Test_Server_parseRequiresAuth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/parse", bytes.NewReader([]byte("{ hero }")))
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func Test_Server_parseReturnsDiagnosticsAndCaches(t *testing.T) {
	s := newTestServer(t)
	tok := login(t, s, "k-test")

	source := "{ hero"

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/v1/parse", bytes.NewReader([]byte(source)))
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		s.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp parseResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Errors)
		assert.Equal(t, i == 1, resp.Cached)
	}
}

func Test_Server_parseCleanSourceHasNoDiagnostics(t *testing.T) {
	s := newTestServer(t)
	tok := login(t, s, "k-test")

	req := httptest.NewRequest(http.MethodPost, "/v1/parse", bytes.NewReader([]byte("{ hero { name } }")))
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp parseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Errors)
	assert.Equal(t, 1, resp.DefinitionCount)
}
