// Package server exposes a dircat Catalog over HTTP.
//
// The handler serves a single read-only endpoint:
//
//	GET /list?name=DATA_DIR   — resolve a registered name, then list
//	GET /list?path=/srv/data  — list a raw filesystem path
//
// Responses are a JSON array of records in the fixed boundary field order.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	dircat "github.com/harolddawson/dircat"
	"github.com/harolddawson/dircat/types"
)

// Handler serves listing requests for one Catalog.
type Handler struct {
	cat *dircat.Catalog
	log *slog.Logger
	mux *http.ServeMux
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the request logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) { h.log = l }
}

// New creates an HTTP handler around cat.
func New(cat *dircat.Catalog, opts ...Option) *Handler {
	h := &Handler{cat: cat, log: slog.Default(), mux: http.NewServeMux()}
	for _, o := range opts {
		o(h)
	}
	h.mux.HandleFunc("GET /list", h.serveList)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) serveList(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	path := r.URL.Query().Get("path")
	if (name == "") == (path == "") {
		http.Error(w, "exactly one of name= or path= is required", http.StatusBadRequest)
		return
	}

	var (
		records []types.Record
		err     error
	)
	if name != "" {
		records, err = h.cat.ListByName(r.Context(), name)
	} else {
		records, err = h.cat.ListByPath(r.Context(), path)
	}
	if err != nil {
		h.log.Warn("listing failed", "name", name, "path", path, "error", err)
		http.Error(w, err.Error(), statusCode(err))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(records); err != nil {
		h.log.Error("response encoding failed", "error", err)
	}
}

// statusCode maps the dircat error taxonomy to HTTP status codes.
func statusCode(err error) int {
	switch {
	case errors.Is(err, types.ErrNameNotFound), errors.Is(err, types.ErrPathNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrNotDir):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
