package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersoy/studentms/internal/app/models"
)

func newTestStudent(first, last, email string) *models.Student {
	dob := time.Date(2004, time.May, 17, 0, 0, 0, 0, time.UTC)
	return &models.Student{
		FirstName:   first,
		LastName:    last,
		Email:       email,
		PhoneNumber: "555-010-1234",
		DateOfBirth: &dob,
		City:        "Springfield",
		State:       "IL",
		ZipCode:     "62704",
	}
}

func TestMemoryStoreCreateAssignsSequentialIDs(t *testing.T) {
	store := NewMemoryStudentStore()
	ctx := context.Background()

	john, err := store.Create(ctx, newTestStudent("John", "Doe", "john.doe@example.com"))
	require.NoError(t, err)
	jane, err := store.Create(ctx, newTestStudent("Jane", "Smith", "jane.smith@example.com"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), john.ID)
	assert.Equal(t, int64(2), jane.ID)
	assert.Equal(t, models.StatusActive, john.EnrollmentStatus)
	assert.False(t, john.EnrollmentDate.IsZero())
	assert.False(t, john.CreatedAt.IsZero())
}

func TestMemoryStoreIDsNeverReused(t *testing.T) {
	store := NewMemoryStudentStore()
	ctx := context.Background()

	john, err := store.Create(ctx, newTestStudent("John", "Doe", "john.doe@example.com"))
	require.NoError(t, err)

	deleted, err := store.Delete(ctx, john.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	jane, err := store.Create(ctx, newTestStudent("Jane", "Smith", "jane.smith@example.com"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), jane.ID, "deleted identifiers must not be reassigned")
}

func TestMemoryStoreGetByIDRoundTrip(t *testing.T) {
	store := NewMemoryStudentStore()
	ctx := context.Background()

	created, err := store.Create(ctx, newTestStudent("John", "Doe", "john.doe@example.com"))
	require.NoError(t, err)

	found, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "John", found.FirstName)
	assert.Equal(t, "john.doe@example.com", found.Email)
}

func TestMemoryStoreAbsenceIsNotAnError(t *testing.T) {
	store := NewMemoryStudentStore()
	ctx := context.Background()

	student, err := store.GetByID(ctx, 42)
	assert.NoError(t, err)
	assert.Nil(t, student)

	student, err = store.GetByEmail(ctx, "ghost@example.com")
	assert.NoError(t, err)
	assert.Nil(t, student)

	updated, err := store.Update(ctx, &models.Student{ID: 42, Email: "ghost@example.com"})
	assert.NoError(t, err)
	assert.False(t, updated)

	deleted, err := store.Delete(ctx, 42)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemoryStoreInvalidInputs(t *testing.T) {
	store := NewMemoryStudentStore()
	ctx := context.Background()

	_, err := store.Create(ctx, nil)
	assert.ErrorIs(t, err, ErrNilStudent)

	_, err = store.GetByID(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = store.GetByID(ctx, -5)
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = store.GetByFirstName(ctx, "   ")
	assert.ErrorIs(t, err, ErrEmptySearchTerm)

	_, err = store.GetByLastName(ctx, "")
	assert.ErrorIs(t, err, ErrEmptySearchTerm)

	_, err = store.GetByEmail(ctx, "")
	assert.ErrorIs(t, err, ErrEmptySearchTerm)
}

func TestMemoryStoreDuplicateEmailRejected(t *testing.T) {
	store := NewMemoryStudentStore()
	ctx := context.Background()

	_, err := store.Create(ctx, newTestStudent("John", "Doe", "john.doe@example.com"))
	require.NoError(t, err)

	// Same email with different casing is still a duplicate
	_, err = store.Create(ctx, newTestStudent("Johnny", "Doe", "JOHN.DOE@EXAMPLE.COM"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "failed create must not change the record count")
}

func TestMemoryStoreCaseInsensitiveSearch(t *testing.T) {
	store := NewMemoryStudentStore()
	ctx := context.Background()

	_, err := store.Create(ctx, newTestStudent("John", "Doe", "john.doe@example.com"))
	require.NoError(t, err)
	_, err = store.Create(ctx, newTestStudent("john", "Smith", "john.smith@example.com"))
	require.NoError(t, err)
	_, err = store.Create(ctx, newTestStudent("Jane", "Doe", "jane.doe@example.com"))
	require.NoError(t, err)

	byFirst, err := store.GetByFirstName(ctx, "JOHN")
	require.NoError(t, err)
	assert.Len(t, byFirst, 2)

	byLast, err := store.GetByLastName(ctx, "doe")
	require.NoError(t, err)
	assert.Len(t, byLast, 2)

	byEmail, err := store.GetByEmail(ctx, "Jane.Doe@Example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, "Jane", byEmail.FirstName)

	// Exact match, not substring
	none, err := store.GetByFirstName(ctx, "Jo")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryStoreGetAllInsertionOrder(t *testing.T) {
	store := NewMemoryStudentStore()
	ctx := context.Background()

	emails := []string{"a@example.com", "b@example.com", "c@example.com"}
	for i, email := range emails {
		_, err := store.Create(ctx, newTestStudent("Student", "Number", email))
		require.NoError(t, err)
		count, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), count)
	}

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, email := range emails {
		assert.Equal(t, email, all[i].Email)
	}
}

func TestMemoryStoreUpdateReplacesFields(t *testing.T) {
	store := NewMemoryStudentStore()
	ctx := context.Background()

	created, err := store.Create(ctx, newTestStudent("John", "Doe", "john.doe@example.com"))
	require.NoError(t, err)

	replacement := newTestStudent("Jonathan", "Doe", "jonathan.doe@example.com")
	replacement.ID = created.ID
	replacement.EnrollmentStatus = models.StatusSuspended

	updated, err := store.Update(ctx, replacement)
	require.NoError(t, err)
	assert.True(t, updated)

	found, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Jonathan", found.FirstName)
	assert.Equal(t, "jonathan.doe@example.com", found.Email)
	assert.Equal(t, models.StatusSuspended, found.EnrollmentStatus)
	assert.Equal(t, created.CreatedAt, found.CreatedAt, "creation timestamp is immutable")
}

func TestMemoryStoreUpdateEmailConflict(t *testing.T) {
	store := NewMemoryStudentStore()
	ctx := context.Background()

	john, err := store.Create(ctx, newTestStudent("John", "Doe", "john.doe@example.com"))
	require.NoError(t, err)
	_, err = store.Create(ctx, newTestStudent("Jane", "Smith", "jane.smith@example.com"))
	require.NoError(t, err)

	// Moving John's email onto Jane's is rejected
	conflicting := newTestStudent("John", "Doe", "jane.smith@example.com")
	conflicting.ID = john.ID
	updated, err := store.Update(ctx, conflicting)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.False(t, updated)

	// Keeping your own email (any casing) is fine
	unchanged := newTestStudent("John", "Doe", "JOHN.DOE@example.com")
	unchanged.ID = john.ID
	updated, err = store.Update(ctx, unchanged)
	require.NoError(t, err)
	assert.True(t, updated)
}

func TestMemoryStoreDeleteThenAbsent(t *testing.T) {
	store := NewMemoryStudentStore()
	ctx := context.Background()

	created, err := store.Create(ctx, newTestStudent("John", "Doe", "john.doe@example.com"))
	require.NoError(t, err)

	deleted, err := store.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	found, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	// Second delete reports nothing removed
	deleted, err = store.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestMemoryStoreReturnsClones(t *testing.T) {
	store := NewMemoryStudentStore()
	ctx := context.Background()

	created, err := store.Create(ctx, newTestStudent("John", "Doe", "john.doe@example.com"))
	require.NoError(t, err)

	// Mutating a returned record must not leak into the store
	created.FirstName = "Hacked"

	found, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "John", found.FirstName)
}
