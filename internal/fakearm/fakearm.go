// Package fakearm serves canned list pages over HTTP for transport tests.
package fakearm

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Server is an httptest server routing list operations by path template.
type Server struct {
	*httptest.Server

	mux *chi.Mux

	mu       sync.Mutex
	requests []string
}

// New starts a server that is closed when t finishes.
func New(t testing.TB) *Server {
	s := &Server{mux: chi.NewRouter()}
	s.mux.Use(s.record)
	s.Server = httptest.NewServer(s.mux)
	t.Cleanup(s.Close)
	return s
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.URL.RequestURI())
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// Pages serves a list operation at pattern, a chi route such as
// "/subscriptions/{subscriptionId}/keys". Each element of pages is the JSON
// array of one page's items. Every page but the last carries a relative
// nextLink of the form "<path>?page=N".
func (s *Server) Pages(pattern string, pages ...string) {
	s.mux.Get(pattern, func(w http.ResponseWriter, r *http.Request) {
		n := 1
		if q := r.URL.Query().Get("page"); q != "" {
			var err error
			if n, err = strconv.Atoi(q); err != nil || n < 1 || n > len(pages) {
				http.Error(w, `{"error":{"code":"InvalidPage","message":"no such page"}}`, http.StatusBadRequest)
				return
			}
		}

		body := map[string]json.RawMessage{"value": json.RawMessage(pages[n-1])}
		if n < len(pages) {
			link, _ := json.Marshal(fmt.Sprintf("%s?page=%d", r.URL.Path, n+1))
			body["nextLink"] = link
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	})
}

// Fail answers every GET on pattern with status and an ARM error body.
func (s *Server) Fail(pattern string, status int, code, message string) {
	s.mux.Get(pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"code": code, "message": message},
		})
	})
}

// Requests returns the request URIs received so far.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}
