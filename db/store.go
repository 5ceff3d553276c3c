// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/databiz/models"
)

// Table names accepted by Exists
const (
	TableMagazine    = "magazine"
	TablePodcast     = "podcast"
	TableEvent       = "event"
	TableTestimonial = "testimonial"
	TableSubmission  = "submission"
)

var ErrUnknownTable = errors.New("unknown table")

// Store is the repository for every persisted record.
// Records are only created and listed; nothing is updated or deleted here.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
		// UTC without a monotonic reading so SQLite text timestamps sort correctly
		now: func() time.Time { return time.Now().UTC() },
	}
}

// NewStoreWithClock is NewStore with a custom timestamp source.
// now must return UTC times.
func NewStoreWithClock(db *sql.DB, now func() time.Time) *Store {
	return &Store{db: db, now: now}
}

// newRecord returns a fresh id and the created/updated timestamp.
// UUIDv7 ids are time-ordered, which makes (created_at, id) a stable order.
func (s *Store) newRecord() (string, time.Time, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate id: %w", err)
	}
	return id.String(), s.now(), nil
}

// CreateMagazine inserts m, filling ID, CreatedAt and UpdatedAt
func (s *Store) CreateMagazine(ctx context.Context, m *models.Magazine) error {
	if m.Title == "" {
		return &models.ValidationError{Message: "title required"}
	}
	if m.Date.IsZero() {
		return &models.ValidationError{Message: "date required"}
	}

	id, now, err := s.newRecord()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO magazine (id, title, url, cover, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, m.Title, m.URL, m.Cover, m.Date, now, now)
	if err != nil {
		return fmt.Errorf("failed to insert magazine: %w", err)
	}

	m.ID, m.CreatedAt, m.UpdatedAt = id, now, now
	return nil
}

// CreatePodcast inserts p, filling ID, CreatedAt and UpdatedAt
func (s *Store) CreatePodcast(ctx context.Context, p *models.Podcast) error {
	if p.Title == "" {
		return &models.ValidationError{Message: "title required"}
	}
	if p.Date.IsZero() {
		return &models.ValidationError{Message: "date required"}
	}

	id, now, err := s.newRecord()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO podcast (id, title, url, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, p.Title, p.URL, p.Date, now, now)
	if err != nil {
		return fmt.Errorf("failed to insert podcast: %w", err)
	}

	p.ID, p.CreatedAt, p.UpdatedAt = id, now, now
	return nil
}

// CreateEvent inserts e, filling ID, CreatedAt and UpdatedAt
func (s *Store) CreateEvent(ctx context.Context, e *models.Event) error {
	if e.Title == "" {
		return &models.ValidationError{Message: "title required"}
	}

	id, now, err := s.newRecord()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO event (id, title, location, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, e.Title, e.Location, e.Date, now, now)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	e.ID, e.CreatedAt, e.UpdatedAt = id, now, now
	return nil
}

// CreateTestimonial inserts t, filling ID, CreatedAt and UpdatedAt
func (s *Store) CreateTestimonial(ctx context.Context, t *models.Testimonial) error {
	if t.Name == "" || t.Quote == "" {
		return &models.ValidationError{Message: "name and quote required"}
	}

	id, now, err := s.newRecord()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO testimonial (id, name, quote, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, t.Name, t.Quote, now, now)
	if err != nil {
		return fmt.Errorf("failed to insert testimonial: %w", err)
	}

	t.ID, t.CreatedAt, t.UpdatedAt = id, now, now
	return nil
}

// CreateSubmission inserts sub, filling ID, CreatedAt and UpdatedAt.
// Email is always required; the per-form rules live in the handlers.
func (s *Store) CreateSubmission(ctx context.Context, sub *models.Submission) error {
	if sub.Type != models.SubmissionJoin && sub.Type != models.SubmissionContact {
		return &models.ValidationError{Message: "invalid submission type"}
	}
	if sub.Email == "" {
		return &models.ValidationError{Message: "email required"}
	}

	id, now, err := s.newRecord()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO submission (id, type, name, email, message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, sub.Type, sub.Name, sub.Email, sub.Message, now, now)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}

	sub.ID, sub.CreatedAt, sub.UpdatedAt = id, now, now
	return nil
}

// ListMagazines returns magazines newest date first
func (s *Store) ListMagazines(ctx context.Context) ([]models.Magazine, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, url, cover, date
		FROM magazine
		ORDER BY date DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query magazines: %w", err)
	}
	defer rows.Close()

	magazines := []models.Magazine{}
	for rows.Next() {
		var m models.Magazine
		if err := rows.Scan(&m.ID, &m.Title, &m.URL, &m.Cover, &m.Date); err != nil {
			return nil, fmt.Errorf("failed to scan magazine: %w", err)
		}
		magazines = append(magazines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate magazines: %w", err)
	}

	return magazines, nil
}

// ListPodcasts returns podcasts newest date first
func (s *Store) ListPodcasts(ctx context.Context) ([]models.Podcast, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, url, date
		FROM podcast
		ORDER BY date DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query podcasts: %w", err)
	}
	defer rows.Close()

	podcasts := []models.Podcast{}
	for rows.Next() {
		var p models.Podcast
		if err := rows.Scan(&p.ID, &p.Title, &p.URL, &p.Date); err != nil {
			return nil, fmt.Errorf("failed to scan podcast: %w", err)
		}
		podcasts = append(podcasts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate podcasts: %w", err)
	}

	return podcasts, nil
}

// ListEvents returns events in creation order, oldest first
func (s *Store) ListEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, location, date
		FROM event
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Location, &e.Date); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return events, nil
}

// ListTestimonials returns testimonials newest first
func (s *Store) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, quote
		FROM testimonial
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query testimonials: %w", err)
	}
	defer rows.Close()

	testimonials := []models.Testimonial{}
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Quote); err != nil {
			return nil, fmt.Errorf("failed to scan testimonial: %w", err)
		}
		testimonials = append(testimonials, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate testimonials: %w", err)
	}

	return testimonials, nil
}

// ListSubmissions returns all submissions in creation order.
// Not exposed over HTTP; used by administrative tooling and tests.
func (s *Store) ListSubmissions(ctx context.Context) ([]models.Submission, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, name, email, message
		FROM submission
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	submissions := []models.Submission{}
	for rows.Next() {
		var sub models.Submission
		if err := rows.Scan(&sub.ID, &sub.Type, &sub.Name, &sub.Email, &sub.Message); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate submissions: %w", err)
	}

	return submissions, nil
}

// Exists reports whether table holds at least one row
func (s *Store) Exists(ctx context.Context, table string) (bool, error) {
	switch table {
	case TableMagazine, TablePodcast, TableEvent, TableTestimonial, TableSubmission:
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}

	var one int
	// table is one of the constants above, never user input
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM "+table+" LIMIT 1").Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", table, err)
	}

	return true, nil
}
