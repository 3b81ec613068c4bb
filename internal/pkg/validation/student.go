package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/ersoy/studentms/internal/app/models"
)

// FieldError describes a single field failing a validation rule.
type FieldError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newFieldError(field, format string, args ...interface{}) *FieldError {
	return &FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ValidateName checks a name field: non-empty after trimming, 2-50 characters,
// letters, spaces, hyphens and apostrophes only. fieldName is used in the
// error message ("firstName", "lastName").
func ValidateName(fieldName, name string) *FieldError {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return newFieldError(fieldName, "cannot be empty")
	}
	if !CompiledPatterns.Name.MatchString(trimmed) {
		return newFieldError(fieldName, "must be 2-50 characters and contain only letters, spaces, hyphens, or apostrophes")
	}
	return nil
}

// ValidateEmail checks an email address: non-empty, at most 100 characters,
// and matching a loose local@domain shape. Domain structure is deliberately
// not validated.
func ValidateEmail(email string) *FieldError {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return newFieldError("email", "cannot be empty")
	}
	if len(trimmed) > EmailMaxLength {
		return newFieldError("email", "is too long (max %d characters)", EmailMaxLength)
	}
	if !CompiledPatterns.Email.MatchString(trimmed) {
		return newFieldError("email", "has an invalid format")
	}
	return nil
}

// ValidatePhone checks a phone number: non-empty, and at least 10 digits
// after stripping every non-digit character.
func ValidatePhone(phone string) *FieldError {
	if strings.TrimSpace(phone) == "" {
		return newFieldError("phoneNumber", "cannot be empty")
	}
	digits := CompiledPatterns.NonDigit.ReplaceAllString(phone, "")
	if len(digits) < PhoneMinDigits {
		return newFieldError("phoneNumber", "must contain at least %d digits", PhoneMinDigits)
	}
	return nil
}

// ValidateDateOfBirth checks an optional date of birth: it must not be in the
// future and the computed age must be at least 16 years. A nil value passes.
func ValidateDateOfBirth(dob *time.Time) *FieldError {
	if dob == nil {
		return nil
	}
	now := time.Now()
	if dob.After(now) {
		return newFieldError("dateOfBirth", "cannot be in the future")
	}
	if ageInYears(*dob, now) < MinAgeYears {
		return newFieldError("dateOfBirth", "student must be at least %d years old", MinAgeYears)
	}
	return nil
}

// ValidateZipCode checks an optional zip code against the 5-digit or
// 5+4-digit postal pattern. An empty value passes.
func ValidateZipCode(zipCode string) *FieldError {
	trimmed := strings.TrimSpace(zipCode)
	if trimmed == "" {
		return nil
	}
	if !CompiledPatterns.ZipCode.MatchString(trimmed) {
		return newFieldError("zipCode", "must match 12345 or 12345-6789")
	}
	return nil
}

// ValidateEnrollmentStatus checks that a status string is a member of the
// closed enrollment status set. An empty value passes (the store defaults it).
func ValidateEnrollmentStatus(status string) *FieldError {
	if strings.TrimSpace(status) == "" {
		return nil
	}
	if _, ok := models.ParseEnrollmentStatus(status); !ok {
		return newFieldError("enrollmentStatus", "must be one of ACTIVE, INACTIVE, SUSPENDED, GRADUATED")
	}
	return nil
}

// ageInYears computes whole years between birth and now.
func ageInYears(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	// Subtract a year if the birthday has not occurred yet this year.
	anniversary := birth.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}
