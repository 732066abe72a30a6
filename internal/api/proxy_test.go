package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newProxyRouter(t *testing.T, backendHandler http.Handler) *chi.Mux {
	t.Helper()
	backendSrv := httptest.NewServer(backendHandler)
	t.Cleanup(backendSrv.Close)

	r := chi.NewRouter()
	NewProxy(backendSrv.URL, "/api", nil).Mount(r, "/api")
	return r
}

func TestProxy_PassesStatusAndBodyThrough(t *testing.T) {
	t.Parallel()

	r := newProxyRouter(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "/athletes/42", req.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "not found"}`))
	}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/athletes/42", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error": "not found"}`, rec.Body.String())
}

func TestProxy_ForwardsMethodBodyAndQuery(t *testing.T) {
	t.Parallel()

	var gotMethod, gotQuery, gotBody string
	r := newProxyRouter(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotMethod = req.Method
		gotQuery = req.URL.RawQuery
		b, _ := io.ReadAll(req.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"teamId": 7}`))
	}))

	body := `{"code":"BB12345","name":"Hawks","sportId":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/teams?notify=true", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.MethodPost, gotMethod)
	require.Equal(t, "notify=true", gotQuery)
	require.JSONEq(t, body, gotBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"teamId": 7}`, rec.Body.String())
}

func TestProxy_BackendDownYieldsFixedEnvelope(t *testing.T) {
	t.Parallel()

	backendSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {}))
	backendSrv.Close() // nothing listens anymore

	r := chi.NewRouter()
	NewProxy(backendSrv.URL, "/api", nil).Mount(r, "/api")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/events", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error": "Internal server error"}`, rec.Body.String())
}

func TestProxy_DeleteWithEmptyBodySynthesizesAck(t *testing.T) {
	t.Parallel()

	r := newProxyRouter(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, http.MethodDelete, req.Method)
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/performances/5", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.JSONEq(t, `{"message": "Delete successful"}`, rec.Body.String())
}

func TestProxy_DeleteWithBackendBodyKeepsIt(t *testing.T) {
	t.Parallel()

	r := newProxyRouter(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "message": "performance removed"}`))
	}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/performances/5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success": true, "message": "performance removed"}`, rec.Body.String())
}

func TestProxy_UnknownResourceIsNotProxied(t *testing.T) {
	t.Parallel()

	r := newProxyRouter(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		t.Fatal("backend must not be called")
	}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/internal-admin", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
