// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package seed populates one starter record per content table.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/databiz/db"
	"github.com/danielhkuo/databiz/models"
)

// Result lists the tables that received a record
type Result struct {
	Created []string
}

// Run inserts starter content into each empty content table.
// Tables that already hold a row are skipped, so running it twice is safe.
// today is the date stamped on the magazine and podcast, taken in UTC.
func Run(ctx context.Context, repo db.SeedRepository, today time.Time) (Result, error) {
	var res Result
	date := models.DateOf(today.UTC())

	steps := []struct {
		table  string
		create func() error
	}{
		{db.TableMagazine, func() error {
			return repo.CreateMagazine(ctx, &models.Magazine{Title: "Week 1: Launch Issue", Date: date})
		}},
		{db.TablePodcast, func() error {
			return repo.CreatePodcast(ctx, &models.Podcast{Title: "Episode 1: Data Meets Innovation", Date: date})
		}},
		{db.TableEvent, func() error {
			return repo.CreateEvent(ctx, &models.Event{Title: "Kickoff Meetup", Location: "MANIT Bhopal", Date: "TBA"})
		}},
		{db.TableTestimonial, func() error {
			return repo.CreateTestimonial(ctx, &models.Testimonial{Name: "Student Member", Quote: "DataBiz helped me learn by doing."})
		}},
	}

	for _, step := range steps {
		exists, err := repo.Exists(ctx, step.table)
		if err != nil {
			return res, fmt.Errorf("seed %s: %w", step.table, err)
		}
		if exists {
			slog.Debug("seed skipped", "table", step.table)
			continue
		}
		if err := step.create(); err != nil {
			return res, fmt.Errorf("seed %s: %w", step.table, err)
		}
		res.Created = append(res.Created, step.table)
	}

	slog.Info("Seeded data", "created", res.Created)
	return res, nil
}
