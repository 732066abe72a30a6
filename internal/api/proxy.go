package api

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// proxiedResources are the backend resource roots re-exposed under the
// gateway's /api prefix. Everything else on the backend stays internal.
var proxiedResources = []string{
	"athletes",
	"teams",
	"events",
	"performances",
	"positions",
	"disciplines",
	"sports",
	"ai",
}

// Proxy forwards dashboard requests to the backend verbatim: same method,
// same JSON body, same query string, and the backend's status code and
// body pass through unchanged. The gateway adds nothing on top; the
// backend's responses are the contract the frontend was written against.
type Proxy struct {
	backendURL string
	httpClient *http.Client
	logger     *slog.Logger
	stripped   string
}

// NewProxy creates a proxy to the backend base URL. stripped is the
// gateway routing prefix removed before forwarding (e.g. "/api").
func NewProxy(backendURL, stripped string, logger *slog.Logger) *Proxy {
	if logger == nil {
		logger = slog.Default()
	}
	return &Proxy{
		backendURL: strings.TrimRight(backendURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
		stripped:   stripped,
	}
}

// Mount registers the proxied resource routes under the gateway prefix.
func (p *Proxy) Mount(r chi.Router, prefix string) {
	for _, res := range proxiedResources {
		r.Handle(prefix+"/"+res, p)
		r.Handle(prefix+"/"+res+"/*", p)
	}
}

const internalErrorBody = `{"error": "Internal server error"}`

func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	target := p.backendURL + strings.TrimPrefix(r.URL.Path, p.stripped)
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, r.Body)
	if err != nil {
		p.fail(w, r, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.fail(w, r, err)
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		p.fail(w, r, err)
		return
	}

	// The backend answers some successful DELETEs with no body; the
	// frontend still expects a JSON acknowledgement.
	if r.Method == http.MethodDelete && resp.StatusCode >= 200 && resp.StatusCode < 300 && len(body) == 0 {
		body = []byte(`{"message": "Delete successful"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	w.Write(body)
}

// fail answers any transport-level failure with the fixed opaque envelope;
// backend details go to the log, never to the client.
func (p *Proxy) fail(w http.ResponseWriter, r *http.Request, err error) {
	p.logger.Error("proxy request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	io.WriteString(w, internalErrorBody)
}
