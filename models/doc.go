// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON. Required fields carry a validate tag:

  - JoinRequest: name (required), email (required), message
  - ContactRequest: name, email (required), message (required)

# Response Types

  - OKResponse: ok
  - SlidesResponse: slides (event-stream payload)
  - RotateSlidesResponse: ok, slides
  - ErrorResponse: error

# Domain Types

Persisted records (timestamps are never serialized for content):

  - Magazine: title, url, cover, date (calendar date)
  - Podcast: title, url, date (calendar date)
  - Event: title, location, date (free text, e.g. "TBA")
  - Testimonial: name, quote
  - Submission: type (join or contact), name, email, message

In-memory only:

  - Slide: id, title, link

# Dates

Date is a calendar date serialized as "YYYY-MM-DD" in JSON and in the
database. It implements sql.Scanner and driver.Valuer.

# Errors

ValidationError is returned when a required field is missing; its message
is shown to clients verbatim with HTTP 400.

# Constants

Submission types:

	SubmissionJoin    = "join"
	SubmissionContact = "contact"
*/
package models
