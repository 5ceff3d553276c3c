package models

import "time"

// Submission type constants
const (
	SubmissionJoin    = "join"
	SubmissionContact = "contact"
)

// Request types

type JoinRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Response types

type OKResponse struct {
	OK bool `json:"ok"`
}

type SlidesResponse struct {
	Slides []Slide `json:"slides"`
}

type RotateSlidesResponse struct {
	OK     bool    `json:"ok"`
	Slides []Slide `json:"slides"`
}

// Domain types

type Magazine struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Cover     string    `json:"cover"`
	Date      Date      `json:"date"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type Podcast struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Date      Date      `json:"date"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Event.Date is free text ("TBA" is valid), unlike Magazine and Podcast.
type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quote     string    `json:"quote"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type Submission struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Slide struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Link  string `json:"link"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationError reports a missing or invalid required field.
// Message is shown to the client as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
