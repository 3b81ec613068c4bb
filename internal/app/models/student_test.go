package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnrollmentStatus(t *testing.T) {
	tests := []struct {
		input string
		want  EnrollmentStatus
		ok    bool
	}{
		{"ACTIVE", StatusActive, true},
		{"active", StatusActive, true},
		{" Graduated ", StatusGraduated, true},
		{"INACTIVE", StatusInactive, true},
		{"suspended", StatusSuspended, true},
		{"", "", false},
		{"ENROLLED", "", false},
		{"GRAD", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseEnrollmentStatus(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestEnrollmentStatusIsValid(t *testing.T) {
	for _, status := range AllStatuses {
		assert.True(t, status.IsValid())
	}
	assert.False(t, EnrollmentStatus("ENROLLED").IsValid())
}

func TestStudentClone(t *testing.T) {
	dob := time.Date(2004, time.May, 17, 0, 0, 0, 0, time.UTC)
	original := &Student{
		ID:          1,
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john.doe@example.com",
		DateOfBirth: &dob,
	}

	clone := original.Clone()
	clone.FirstName = "Jane"
	*clone.DateOfBirth = clone.DateOfBirth.AddDate(1, 0, 0)

	assert.Equal(t, "John", original.FirstName)
	assert.Equal(t, dob, *original.DateOfBirth, "date of birth must be deep-copied")

	var nilStudent *Student
	assert.Nil(t, nilStudent.Clone())
}

func TestStudentFullName(t *testing.T) {
	student := &Student{FirstName: "John", LastName: "Doe"}
	assert.Equal(t, "John Doe", student.FullName())
}
