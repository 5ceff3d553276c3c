// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the DataBiz site.

# Route Registration

NewRouter creates a configured handler with all endpoints, wrapped in CORS:

	handler := router.NewRouter(store, ticker, cfg)

# Endpoints

Health:

	GET /health

Pages (embedded HTML shells):

	GET /          - Home
	GET /magazine/ - Magazine
	GET /podcast/  - Podcast

Content (read-only JSON):

	GET /api/magazines    - Newest date first
	GET /api/podcasts     - Newest date first
	GET /api/events       - Creation order
	GET /api/testimonials - Newest first

Submissions (POST only, other methods get a JSON 405):

	POST /api/join    - {name, email, message?}
	POST /api/contact - {name?, email, message}

Slides:

	GET  /api/slides/stream - One text/event-stream event with the current order
	POST /api/slides/rotate - Move the first slide to the end (JSON 405 for other methods)

# Handler Initialization

The router creates handler instances with dependency injection:

	contentHandler := handlers.NewContentHandler(store)
	submissionHandler := handlers.NewSubmissionHandler(store)
	slideHandler := handlers.NewSlideHandler(ticker)

The ticker is owned by main and shared by every request.
*/
package router
