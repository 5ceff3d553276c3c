// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation and record storage.

# Connections

Open selects a driver by database type and pings it:

	conn, err := db.Open("sqlite", "file:databiz.db")
	conn, err := db.Open("postgres", "postgres://...")

SQLite uses modernc.org/sqlite (pure Go); PostgreSQL uses lib/pq.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The SQL is portable between SQLite and PostgreSQL.

# Tables

  - magazine: title, url, cover, date (YYYY-MM-DD text)
  - podcast: title, url, date (YYYY-MM-DD text)
  - event: title, location, date (free text)
  - testimonial: name, quote
  - submission: type ('join' or 'contact'), name, email, message

Every table has id, created_at and updated_at. No table references another.

# Store

Store is the repository. Creates assign a UUIDv7 id and both timestamps,
and reject missing required fields with *models.ValidationError before any
SQL runs. Lists use a fixed order per entity:

	ListMagazines     date DESC
	ListPodcasts      date DESC
	ListEvents        created_at ASC
	ListTestimonials  created_at DESC

Exists is used by the seed step to stay idempotent.
*/
package db
