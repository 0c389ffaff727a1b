package domain

import "errors"

// Data-access contract errors
var (
	// ErrIntegrityViolation is returned when an exact-match lookup yields
	// more than one row. Distinct from not-found, which is (nil, nil).
	ErrIntegrityViolation = errors.New("exact-match lookup returned more than one row")

	// ErrInvalidPage is returned for page numbers below 1 rather than
	// letting a negative offset reach the database.
	ErrInvalidPage = errors.New("page number must be 1 or greater")
)

// Thread errors
var (
	ErrThreadNotFound  = errors.New("thread not found")
	ErrNotThreadAuthor = errors.New("only the thread author can perform this action")
)

// Profile errors
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrNotProfileOwner = errors.New("only the profile owner can perform this action")
)
