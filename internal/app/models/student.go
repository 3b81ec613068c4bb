package models

import (
	"strings"
	"time"
)

// EnrollmentStatus is the closed set of states a student record can be in.
type EnrollmentStatus string

const (
	StatusActive    EnrollmentStatus = "ACTIVE"
	StatusInactive  EnrollmentStatus = "INACTIVE"
	StatusSuspended EnrollmentStatus = "SUSPENDED"
	StatusGraduated EnrollmentStatus = "GRADUATED"
)

// AllStatuses lists every valid enrollment status.
var AllStatuses = []EnrollmentStatus{StatusActive, StatusInactive, StatusSuspended, StatusGraduated}

// ParseEnrollmentStatus normalizes a raw string into an EnrollmentStatus.
// Returns false when the input is not a member of the closed set.
func ParseEnrollmentStatus(s string) (EnrollmentStatus, bool) {
	status := EnrollmentStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range AllStatuses {
		if status == known {
			return known, true
		}
	}
	return "", false
}

// IsValid reports whether the status is a member of the closed set.
func (s EnrollmentStatus) IsValid() bool {
	_, ok := ParseEnrollmentStatus(string(s))
	return ok
}

// Student defines the student model based on the 'students' table
type Student struct {
	ID               int64            `json:"id" db:"id" example:"1"` // Unique identifier, assigned by the store at creation
	FirstName        string           `json:"firstName" db:"first_name" example:"John"`
	LastName         string           `json:"lastName" db:"last_name" example:"Doe"`
	Email            string           `json:"email" db:"email" example:"john.doe@example.com"` // Unique across all records (case-insensitive)
	PhoneNumber      string           `json:"phoneNumber" db:"phone_number" example:"555-0101"`
	DateOfBirth      *time.Time       `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Address          string           `json:"address,omitempty" db:"address"`
	City             string           `json:"city,omitempty" db:"city"`
	State            string           `json:"state,omitempty" db:"state"`
	ZipCode          string           `json:"zipCode,omitempty" db:"zip_code"`
	EnrollmentDate   time.Time        `json:"enrollmentDate" db:"enrollment_date"`
	EnrollmentStatus EnrollmentStatus `json:"enrollmentStatus" db:"enrollment_status" example:"ACTIVE" enums:"ACTIVE,INACTIVE,SUSPENDED,GRADUATED"`
	CreatedAt        time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time        `json:"updatedAt" db:"updated_at"`
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Clone returns a deep copy of the student record.
func (s *Student) Clone() *Student {
	if s == nil {
		return nil
	}
	clone := *s
	if s.DateOfBirth != nil {
		dob := *s.DateOfBirth
		clone.DateOfBirth = &dob
	}
	return &clone
}
