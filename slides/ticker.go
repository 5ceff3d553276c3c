// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package slides holds the rotating promotional ticker shown on the home page.
package slides

import (
	"sync"

	"github.com/danielhkuo/databiz/models"
)

// DefaultSlides returns the slides every process starts with
func DefaultSlides() []models.Slide {
	return []models.Slide{
		{ID: "s1", Title: "Welcome to DataBiz", Link: "/"},
		{ID: "s2", Title: "Weekly Magazine Now Live", Link: "/magazine/"},
		{ID: "s3", Title: "Podcast Episode 1 Released", Link: "/podcast/"},
	}
}

// Ticker is an ordered list of slides shared by all requests.
// Rotate and Snapshot are serialized by a mutex, so concurrent rotations
// never lose or duplicate a slide.
type Ticker struct {
	mu     sync.Mutex
	slides []models.Slide
}

// NewTicker creates a ticker holding a copy of initial
func NewTicker(initial []models.Slide) *Ticker {
	return &Ticker{slides: clone(initial)}
}

// Snapshot returns a copy of the current order
func (t *Ticker) Snapshot() []models.Slide {
	t.mu.Lock()
	defer t.mu.Unlock()
	return clone(t.slides)
}

// Rotate moves the first slide to the end and returns the new order.
// An empty ticker is left as is.
func (t *Ticker) Rotate() []models.Slide {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.slides) > 0 {
		first := t.slides[0]
		copy(t.slides, t.slides[1:])
		t.slides[len(t.slides)-1] = first
	}

	return clone(t.slides)
}

func clone(s []models.Slide) []models.Slide {
	out := make([]models.Slide, len(s))
	copy(out, s)
	return out
}
