// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the DataBiz site.

# Handler Types

Each handler is a struct holding the narrow dependency it needs:

  - PageHandler: Embedded HTML shells for /, /magazine/ and /podcast/
  - ContentHandler: Read-only content lists (db.ContentRepository)
  - SubmissionHandler: Join and contact forms (db.SubmissionRepository)
  - SlideHandler: Slide stream and rotation (*slides.Ticker)

Handlers are created via constructor functions:

	contentHandler := handlers.NewContentHandler(store)

# Content

Lists are returned as bare JSON arrays, never null:

	GET /api/magazines    → newest issue date first
	GET /api/podcasts     → newest episode date first
	GET /api/events       → creation order
	GET /api/testimonials → newest first

Storage timestamps are not exposed.

# Submissions

Both forms accept JSON and answer {"ok":true}:

	POST /api/join    → name and email required, message optional
	POST /api/contact → email and message required, name optional

A missing or empty body is treated as {}. Error mapping:

  - Wrong method: 405 {"error":"POST required"}
  - Malformed JSON: 400 {"error":"invalid JSON"}
  - Missing fields: 400 with a message naming them
  - Storage failure: 500 {"error":"internal server error"}

Nothing is persisted unless the response is 200.

# Slides

	GET  /api/slides/stream → one event, data:{"slides":[...]} (no space after the colon)
	POST /api/slides/rotate → {"ok":true,"slides":[...]}

The stream writes a single event and ends; clients reconnect to refresh.
*/
package handlers
