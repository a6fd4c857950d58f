package models

import "errors"

// Sentinel errors for the fetch/identifier-parsing layer. Detection and
// synthesis never return these: once metadata, listing, and languages are in
// hand, document generation is total and always produces output.
var (
	// ErrInvalidRepositoryReference indicates a repository identifier that
	// could not be parsed into owner/repo form.
	ErrInvalidRepositoryReference = errors.New("invalid repository reference")

	// ErrRepositoryNotFound indicates the repository does not exist or is
	// not accessible with the configured credentials.
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrUpstream indicates a hosting API failure other than not-found.
	ErrUpstream = errors.New("upstream API error")
)
