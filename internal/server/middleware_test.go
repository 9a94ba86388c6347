package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	t.Run("echoes the caller's id", func(t *testing.T) {
		ts := newTestService(t)

		req := httptest.NewRequest(http.MethodGet, "/api/", nil)
		req.Header.Set(headerRequestID, "abc-123")
		rec := httptest.NewRecorder()
		ts.handler.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(headerRequestID))
	})

	t.Run("assigns one when absent", func(t *testing.T) {
		ts := newTestService(t)

		rec := ts.do(http.MethodGet, "/api/", "")

		assert.Len(t, rec.Header().Get(headerRequestID), 16)
	})
}

func TestStripTrailingSlash(t *testing.T) {
	s := &Service{}

	var seen string
	h := s.StripTrailingSlash(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.Path
	}))

	cases := map[string]string{
		"/":                     "/",
		"/api/":                 "/api",
		"/api/oportunidades/":   "/api/oportunidades",
		"/api/oportunidades//":  "/api/oportunidades",
		"/api/oportunidades/12": "/api/oportunidades/12",
	}

	for in, want := range cases {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, in, nil))
		assert.Equal(t, want, seen, in)
		assert.Equal(t, http.StatusOK, rec.Code, in)
	}
}

func TestRoutes(t *testing.T) {
	t.Run("welcome message", func(t *testing.T) {
		ts := newTestService(t)

		for _, path := range []string{"/api", "/api/"} {
			rec := ts.do(http.MethodGet, path, "")
			require.Equal(t, http.StatusOK, rec.Code, path)
			assert.JSONEq(t, `{"message": "Bem-vindo à API Tempo Bem Gasto!"}`, rec.Body.String())
		}
	})

	t.Run("unknown route is a json 404", func(t *testing.T) {
		ts := newTestService(t)

		rec := ts.do(http.MethodGet, "/api/eventos/", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	})

	t.Run("wrong method is a 405", func(t *testing.T) {
		ts := newTestService(t)

		rec := ts.do(http.MethodDelete, "/api/oportunidades/", "")

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestHealth(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		ts := newTestService(t)
		ts.db.On("Ping", mock.Anything).Return(nil)

		rec := ts.do(http.MethodGet, "/healthz", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})

	t.Run("database down", func(t *testing.T) {
		ts := newTestService(t)
		ts.db.On("Ping", mock.Anything).Return(errors.New("dial tcp: connection refused"))

		rec := ts.do(http.MethodGet, "/healthz", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
