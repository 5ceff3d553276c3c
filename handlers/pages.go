// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"embed"
	"log/slog"
	"net/http"
)

//go:embed pages/*.html
var pageFS embed.FS

type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Page returns a handler serving one embedded HTML shell.
// The shells fetch their content from the JSON API.
func (h *PageHandler) Page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := pageFS.ReadFile("pages/" + name)
		if err != nil {
			slog.Error("missing page", "page", name, "error", err)
			http.Error(w, "page not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(body)
	}
}
