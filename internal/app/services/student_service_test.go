package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersoy/studentms/internal/app/models"
	"github.com/ersoy/studentms/internal/app/repositories"
	"github.com/ersoy/studentms/internal/pkg/apperrors"
)

func newService() StudentService {
	return NewStudentService(repositories.NewMemoryStudentStore())
}

func validStudent(email string) *models.Student {
	dob := time.Date(2004, time.May, 17, 0, 0, 0, 0, time.UTC)
	return &models.Student{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       email,
		PhoneNumber: "555-010-1234",
		DateOfBirth: &dob,
		City:        "Springfield",
		State:       "IL",
		ZipCode:     "62704",
	}
}

func TestAddStudentSuccess(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.AddStudent(ctx, validStudent("john.doe@example.com"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, models.StatusActive, created.EnrollmentStatus)
}

func TestAddStudentValidationFailures(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.Student)
		field  string
	}{
		{"empty first name", func(s *models.Student) { s.FirstName = "" }, "firstName"},
		{"short last name", func(s *models.Student) { s.LastName = "X" }, "lastName"},
		{"bad email", func(s *models.Student) { s.Email = "not-an-email" }, "email"},
		{"short phone", func(s *models.Student) { s.PhoneNumber = "12345" }, "phoneNumber"},
		{"bad zip", func(s *models.Student) { s.ZipCode = "1234" }, "zipCode"},
		{"bad status", func(s *models.Student) { s.EnrollmentStatus = "ENROLLED" }, "enrollmentStatus"},
		{"future dob", func(s *models.Student) {
			future := time.Now().AddDate(1, 0, 0)
			s.DateOfBirth = &future
		}, "dateOfBirth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student := validStudent("valid@example.com")
			tt.mutate(student)

			_, err := svc.AddStudent(ctx, student)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			assert.Equal(t, tt.field, apperrors.FieldOf(err))
		})
	}

	// No record should have been persisted
	count, err := svc.GetStudentCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestAddStudentDuplicateEmail(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.AddStudent(ctx, validStudent("john.doe@example.com"))
	require.NoError(t, err)

	_, err = svc.AddStudent(ctx, validStudent("John.Doe@Example.com"))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	count, err := svc.GetStudentCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAddStudentTrimsFields(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	padded := validStudent("  john.doe@example.com ")
	padded.FirstName = " John "
	padded.PhoneNumber = " 555-010-1234 "

	created, err := svc.AddStudent(ctx, padded)
	require.NoError(t, err)
	assert.Equal(t, "John", created.FirstName)
	assert.Equal(t, "john.doe@example.com", created.Email)
	assert.Equal(t, "555-010-1234", created.PhoneNumber)

	// The stored value is the trimmed one, so the duplicate check catches a
	// re-submission with different padding and an exact search finds it.
	_, err = svc.AddStudent(ctx, validStudent(" john.doe@example.com  "))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	found, err := svc.FindByEmail(ctx, "john.doe@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestGetStudentByID(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.AddStudent(ctx, validStudent("john.doe@example.com"))
	require.NoError(t, err)

	found, err := svc.GetStudentByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, found.Email)

	_, err = svc.GetStudentByID(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = svc.GetStudentByID(ctx, 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestSearchOperations(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	john := validStudent("john.doe@example.com")
	_, err := svc.AddStudent(ctx, john)
	require.NoError(t, err)

	jane := validStudent("jane.smith@example.com")
	jane.FirstName = "Jane"
	jane.LastName = "Smith"
	_, err = svc.AddStudent(ctx, jane)
	require.NoError(t, err)

	byFirst, err := svc.SearchByFirstName(ctx, "john")
	require.NoError(t, err)
	assert.Len(t, byFirst, 1)

	byLast, err := svc.SearchByLastName(ctx, "SMITH")
	require.NoError(t, err)
	assert.Len(t, byLast, 1)

	found, err := svc.FindByEmail(ctx, "JANE.SMITH@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane", found.FirstName)

	_, err = svc.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = svc.SearchByFirstName(ctx, "  ")
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	_, err = svc.SearchByLastName(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	_, err = svc.FindByEmail(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestUpdateStudent(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.AddStudent(ctx, validStudent("john.doe@example.com"))
	require.NoError(t, err)

	replacement := validStudent("jonathan.doe@example.com")
	replacement.ID = created.ID
	replacement.FirstName = "Jonathan"

	updated, err := svc.UpdateStudent(ctx, replacement)
	require.NoError(t, err)
	assert.True(t, updated)

	found, err := svc.GetStudentByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jonathan", found.FirstName)
	assert.Equal(t, "jonathan.doe@example.com", found.Email)

	// Unknown identifier reports false without error
	ghost := validStudent("ghost@example.com")
	ghost.ID = 999
	updated, err = svc.UpdateStudent(ctx, ghost)
	require.NoError(t, err)
	assert.False(t, updated)

	// Invalid replacement values are rejected before touching the store
	invalid := validStudent("jonathan.doe@example.com")
	invalid.ID = created.ID
	invalid.PhoneNumber = "123"
	_, err = svc.UpdateStudent(ctx, invalid)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateStudentWithoutStatusKeepsStored(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	suspended := validStudent("john.doe@example.com")
	suspended.EnrollmentStatus = models.StatusSuspended
	created, err := svc.AddStudent(ctx, suspended)
	require.NoError(t, err)

	// Status left empty on the replacement: the update succeeds and the
	// stored status is preserved.
	replacement := validStudent("john.doe@example.com")
	replacement.ID = created.ID
	replacement.FirstName = "Jonathan"

	updated, err := svc.UpdateStudent(ctx, replacement)
	require.NoError(t, err)
	assert.True(t, updated)

	found, err := svc.GetStudentByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jonathan", found.FirstName)
	assert.Equal(t, models.StatusSuspended, found.EnrollmentStatus)
}

func TestUpdateStudentEmailConflict(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	john, err := svc.AddStudent(ctx, validStudent("john.doe@example.com"))
	require.NoError(t, err)
	_, err = svc.AddStudent(ctx, validStudent("jane.smith@example.com"))
	require.NoError(t, err)

	conflicting := validStudent("jane.smith@example.com")
	conflicting.ID = john.ID
	_, err = svc.UpdateStudent(ctx, conflicting)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestDeleteStudent(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.AddStudent(ctx, validStudent("john.doe@example.com"))
	require.NoError(t, err)

	deleted, err := svc.DeleteStudent(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteStudent(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = svc.DeleteStudent(ctx, -1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestGetStatistics(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	stats, err := svc.GetStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Total)
	for _, status := range models.AllStatuses {
		assert.Equal(t, int64(0), stats.ByStatus[status])
	}

	active := validStudent("active@example.com")
	_, err = svc.AddStudent(ctx, active)
	require.NoError(t, err)

	graduated := validStudent("graduated@example.com")
	graduated.EnrollmentStatus = models.StatusGraduated
	_, err = svc.AddStudent(ctx, graduated)
	require.NoError(t, err)

	suspended := validStudent("suspended@example.com")
	suspended.EnrollmentStatus = models.StatusSuspended
	_, err = svc.AddStudent(ctx, suspended)
	require.NoError(t, err)

	stats, err = svc.GetStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(1), stats.ByStatus[models.StatusActive])
	assert.Equal(t, int64(1), stats.ByStatus[models.StatusGraduated])
	assert.Equal(t, int64(1), stats.ByStatus[models.StatusSuspended])
	assert.Equal(t, int64(0), stats.ByStatus[models.StatusInactive])
}
