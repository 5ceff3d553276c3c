// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"

	"github.com/danielhkuo/databiz/models"
)

type ContentRepository interface {
	ListMagazines(ctx context.Context) ([]models.Magazine, error)
	ListPodcasts(ctx context.Context) ([]models.Podcast, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
}

type SubmissionRepository interface {
	CreateSubmission(ctx context.Context, sub *models.Submission) error
}

// SeedRepository is what the seed step needs: an existence check plus creates.
type SeedRepository interface {
	Exists(ctx context.Context, table string) (bool, error)
	CreateMagazine(ctx context.Context, m *models.Magazine) error
	CreatePodcast(ctx context.Context, p *models.Podcast) error
	CreateEvent(ctx context.Context, e *models.Event) error
	CreateTestimonial(ctx context.Context, t *models.Testimonial) error
}

var (
	_ ContentRepository    = (*Store)(nil)
	_ SubmissionRepository = (*Store)(nil)
	_ SeedRepository       = (*Store)(nil)
)
