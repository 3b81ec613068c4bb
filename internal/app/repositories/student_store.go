package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ersoy/studentms/internal/app/models"
)

// Store error types
var (
	// ErrNilStudent is returned when a nil record is passed to a mutating operation.
	ErrNilStudent = errors.New("student cannot be nil")
	// ErrInvalidID is returned for a missing or non-positive identifier.
	ErrInvalidID = errors.New("invalid student ID")
	// ErrEmptySearchTerm is returned for an empty search input.
	ErrEmptySearchTerm = errors.New("search term cannot be empty")
	// ErrDuplicateEmail is returned when an email uniqueness constraint is violated.
	ErrDuplicateEmail = errors.New("email already in use")
)

// duplicateEmailError wraps ErrDuplicateEmail naming the conflicting email.
func duplicateEmailError(email string) error {
	return fmt.Errorf("%w: student with email '%s' already exists", ErrDuplicateEmail, email)
}

// normalizeSearchTerm trims a search input and rejects empty values.
func normalizeSearchTerm(term string) (string, error) {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return "", ErrEmptySearchTerm
	}
	return trimmed, nil
}

// StudentStore is the single contract both backends implement. It is the sole
// authority over identifier assignment and email uniqueness.
//
// Point lookups signal absence structurally: (nil, nil) from GetByID and
// GetByEmail, and (false, nil) from Update and Delete. Absence is never an
// error.
type StudentStore interface {
	// Create persists a new record, assigning the next identifier and filling
	// enrollment date and status defaults. Fails with ErrDuplicateEmail when
	// another record holds the same email (case-insensitive).
	Create(ctx context.Context, student *models.Student) (*models.Student, error)

	// GetByID returns the matching record, or (nil, nil) when none matches.
	GetByID(ctx context.Context, id int64) (*models.Student, error)

	// GetAll returns every record in store order.
	GetAll(ctx context.Context) ([]*models.Student, error)

	// GetByFirstName returns all records whose first name matches
	// case-insensitively (exact match, not substring).
	GetByFirstName(ctx context.Context, firstName string) ([]*models.Student, error)

	// GetByLastName returns all records whose last name matches
	// case-insensitively (exact match, not substring).
	GetByLastName(ctx context.Context, lastName string) ([]*models.Student, error)

	// GetByEmail returns the record matching the email case-insensitively,
	// or (nil, nil) when none matches.
	GetByEmail(ctx context.Context, email string) (*models.Student, error)

	// Update replaces every mutable field of the stored record with the
	// incoming values. Returns (false, nil) when the identifier is unknown,
	// ErrDuplicateEmail when the email is being moved onto a value already
	// used by a different record.
	Update(ctx context.Context, student *models.Student) (bool, error)

	// Delete removes the matching record and reports whether a removal occurred.
	Delete(ctx context.Context, id int64) (bool, error)

	// Count returns the number of currently stored records.
	Count(ctx context.Context) (int64, error)
}
