// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the DataBiz site server.

DataBiz is a student data-science community site: a few static pages, a
read-only content API (magazine issues, podcast episodes, events,
testimonials), two lead-capture forms (join, contact) and an in-memory
slide ticker for the home page.

# Starting the Server

With no configuration the server listens on :3000 and uses a local SQLite
file:

	go run .

Or against PostgreSQL:

	go run . -t postgres -d "postgres://..."

A .env file in the working directory is loaded first when present.

# Configuration

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: file:databiz.db, required for postgres)
  - SEED (-seed): Insert starter content into empty tables at startup
  - ALLOWED_ORIGINS (-origins): Comma-separated CORS origins (default: *)

# Architecture

  - handlers: HTTP request handlers (pages, content, submissions, slides)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and entity types
  - db: Schema creation and the content/submission store
  - slides: Rotating slide ticker
  - seed: Starter content
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
