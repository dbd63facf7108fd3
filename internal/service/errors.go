package service

import "errors"

var (
	// ErrProfileUnavailable means the taste profile document is missing or
	// unreadable. Nothing is generated without it.
	ErrProfileUnavailable = errors.New("taste profile unavailable")
	// ErrWatchedShowsUnavailable means neither watched-shows table could be
	// read.
	ErrWatchedShowsUnavailable = errors.New("watched shows unavailable")
	// ErrNoCandidates means the catalog returned nothing to score; the
	// stored recommendations are left untouched.
	ErrNoCandidates    = errors.New("no candidate shows found")
	ErrMissingAPIKey   = errors.New("TMDB_API_KEY is not set")
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidPriority = errors.New("priority must be between 1 and 10")
	ErrInvalidRating   = errors.New("rating must be between 1 and 10")
)
