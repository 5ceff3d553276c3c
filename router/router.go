// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/databiz/cliparse"
	"github.com/danielhkuo/databiz/db"
	"github.com/danielhkuo/databiz/handlers"
	"github.com/danielhkuo/databiz/middleware"
	"github.com/danielhkuo/databiz/slides"
)

func NewRouter(store *db.Store, ticker *slides.Ticker, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	pageHandler := handlers.NewPageHandler()
	contentHandler := handlers.NewContentHandler(store)
	submissionHandler := handlers.NewSubmissionHandler(store)
	slideHandler := handlers.NewSlideHandler(ticker)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Pages
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.Page("index.html")))
	mux.HandleFunc("GET /magazine/{$}", middleware.WithLogging(pageHandler.Page("magazine.html")))
	mux.HandleFunc("GET /podcast/{$}", middleware.WithLogging(pageHandler.Page("podcast.html")))

	// Content (read-only)
	mux.HandleFunc("GET /api/magazines", middleware.WithLogging(contentHandler.ListMagazines))
	mux.HandleFunc("GET /api/podcasts", middleware.WithLogging(contentHandler.ListPodcasts))
	mux.HandleFunc("GET /api/events", middleware.WithLogging(contentHandler.ListEvents))
	mux.HandleFunc("GET /api/testimonials", middleware.WithLogging(contentHandler.ListTestimonials))

	// Write endpoints are registered without a method so the handler answers
	// wrong methods with a JSON 405 instead of the mux's plain-text one
	mux.HandleFunc("/api/join", middleware.WithLogging(submissionHandler.SubmitJoin))
	mux.HandleFunc("/api/contact", middleware.WithLogging(submissionHandler.SubmitContact))

	// Slide ticker
	mux.HandleFunc("GET /api/slides/stream", middleware.WithLogging(slideHandler.Stream))
	mux.HandleFunc("/api/slides/rotate", middleware.WithLogging(slideHandler.Rotate))

	return middleware.CORS(cfg.AllowedOrigins)(mux)
}
