// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/databiz/cliparse"
	"github.com/danielhkuo/databiz/db"
	"github.com/danielhkuo/databiz/models"
)

// TestDBURL is an in-memory SQLite database; db.Open pins it to one
// connection so every query in a test sees the same data
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3000,
		DatabaseURL:    TestDBURL,
		DatabaseType:   db.TypeSQLite,
		AllowedOrigins: []string{"*"},
	}
}

// MustDate parses a YYYY-MM-DD date or fails the test
func MustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

// CreateTestMagazine inserts a magazine and returns its ID
func CreateTestMagazine(t *testing.T, store *db.Store, title, date string) string {
	t.Helper()
	m := models.Magazine{Title: title, URL: "https://example.com/" + title, Date: MustDate(t, date)}
	if err := store.CreateMagazine(context.Background(), &m); err != nil {
		t.Fatalf("Failed to create test magazine: %v", err)
	}
	return m.ID
}

// CreateTestPodcast inserts a podcast and returns its ID
func CreateTestPodcast(t *testing.T, store *db.Store, title, date string) string {
	t.Helper()
	p := models.Podcast{Title: title, Date: MustDate(t, date)}
	if err := store.CreatePodcast(context.Background(), &p); err != nil {
		t.Fatalf("Failed to create test podcast: %v", err)
	}
	return p.ID
}

// CreateTestEvent inserts an event and returns its ID
func CreateTestEvent(t *testing.T, store *db.Store, title, location, date string) string {
	t.Helper()
	e := models.Event{Title: title, Location: location, Date: date}
	if err := store.CreateEvent(context.Background(), &e); err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}
	return e.ID
}

// CreateTestTestimonial inserts a testimonial and returns its ID
func CreateTestTestimonial(t *testing.T, store *db.Store, name, quote string) string {
	t.Helper()
	tm := models.Testimonial{Name: name, Quote: quote}
	if err := store.CreateTestimonial(context.Background(), &tm); err != nil {
		t.Fatalf("Failed to create test testimonial: %v", err)
	}
	return tm.ID
}

// CountSubmissions returns the number of stored submissions
func CountSubmissions(t *testing.T, conn *sql.DB) int {
	t.Helper()
	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM submission").Scan(&n); err != nil {
		t.Fatalf("Failed to count submissions: %v", err)
	}
	return n
}

// FixedClock returns a clock that advances by one millisecond per call,
// so ordering by created_at is deterministic in tests
func FixedClock(start time.Time) func() time.Time {
	current := start.UTC()
	return func() time.Time {
		current = current.Add(time.Millisecond)
		return current
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeRawRequest creates an HTTP test request with a literal body
func MakeRawRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
