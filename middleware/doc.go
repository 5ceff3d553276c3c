// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status, duration_ms).
The wrapped writer still implements http.Flusher for event streams.

# CORS Middleware

Enable cross-origin requests for the site frontend (go-chi/cors):

	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigins)(mux),
	}

Allows methods GET, POST, OPTIONS with headers Accept, Content-Type,
Authorization.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message") // {"error":"message"}

Reject anything but POST on write endpoints with a JSON 405:

	if !middleware.RequirePOST(w, r) {
		return
	}

Parse JSON request bodies (empty body counts as {}):

	var req models.JoinRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used in request and submission logs.
*/
package middleware
