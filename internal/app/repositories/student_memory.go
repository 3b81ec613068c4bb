package repositories

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ersoy/studentms/internal/app/models"
)

// MemoryStudentStore is the in-process StudentStore backend. Records live in
// an ordered slice; GetAll returns them in insertion order.
//
// The identifier counter and the record slice are guarded by the same
// store-owned mutex, so the duplicate-email check and the insert are atomic
// with respect to other calls on the same store.
type MemoryStudentStore struct {
	mu       sync.RWMutex
	students []*models.Student
	nextID   int64
}

// NewMemoryStudentStore creates an empty in-memory store.
func NewMemoryStudentStore() *MemoryStudentStore {
	return &MemoryStudentStore{nextID: 1}
}

// Create persists a new student record.
func (s *MemoryStudentStore) Create(_ context.Context, student *models.Student) (*models.Student, error) {
	if student == nil {
		return nil, ErrNilStudent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.students {
		if strings.EqualFold(existing.Email, student.Email) {
			return nil, duplicateEmailError(student.Email)
		}
	}

	stored := student.Clone()
	stored.ID = s.nextID
	s.nextID++

	now := time.Now()
	if stored.EnrollmentDate.IsZero() {
		stored.EnrollmentDate = now
	}
	if stored.EnrollmentStatus == "" {
		stored.EnrollmentStatus = models.StatusActive
	}
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.students = append(s.students, stored)
	return stored.Clone(), nil
}

// GetByID returns the matching record or (nil, nil) when absent.
func (s *MemoryStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, student := range s.students {
		if student.ID == id {
			return student.Clone(), nil
		}
	}
	return nil, nil
}

// GetAll returns every record in insertion order.
func (s *MemoryStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	students := make([]*models.Student, 0, len(s.students))
	for _, student := range s.students {
		students = append(students, student.Clone())
	}
	return students, nil
}

// GetByFirstName returns all records whose first name matches case-insensitively.
func (s *MemoryStudentStore) GetByFirstName(_ context.Context, firstName string) ([]*models.Student, error) {
	term := strings.TrimSpace(firstName)
	if term == "" {
		return nil, ErrEmptySearchTerm
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []*models.Student
	for _, student := range s.students {
		if strings.EqualFold(student.FirstName, term) {
			matches = append(matches, student.Clone())
		}
	}
	return matches, nil
}

// GetByLastName returns all records whose last name matches case-insensitively.
func (s *MemoryStudentStore) GetByLastName(_ context.Context, lastName string) ([]*models.Student, error) {
	term := strings.TrimSpace(lastName)
	if term == "" {
		return nil, ErrEmptySearchTerm
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []*models.Student
	for _, student := range s.students {
		if strings.EqualFold(student.LastName, term) {
			matches = append(matches, student.Clone())
		}
	}
	return matches, nil
}

// GetByEmail returns the record matching the email case-insensitively,
// or (nil, nil) when absent.
func (s *MemoryStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	term := strings.TrimSpace(email)
	if term == "" {
		return nil, ErrEmptySearchTerm
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, student := range s.students {
		if strings.EqualFold(student.Email, term) {
			return student.Clone(), nil
		}
	}
	return nil, nil
}

// Update replaces every mutable field of the stored record.
func (s *MemoryStudentStore) Update(_ context.Context, student *models.Student) (bool, error) {
	if student == nil {
		return false, ErrNilStudent
	}
	if student.ID <= 0 {
		return false, ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var existing *models.Student
	for _, candidate := range s.students {
		if candidate.ID == student.ID {
			existing = candidate
			break
		}
	}
	if existing == nil {
		return false, nil
	}

	if !strings.EqualFold(existing.Email, student.Email) {
		for _, other := range s.students {
			if other.ID != student.ID && strings.EqualFold(other.Email, student.Email) {
				return false, duplicateEmailError(student.Email)
			}
		}
	}

	existing.FirstName = student.FirstName
	existing.LastName = student.LastName
	existing.Email = student.Email
	existing.PhoneNumber = student.PhoneNumber
	if student.DateOfBirth != nil {
		dob := *student.DateOfBirth
		existing.DateOfBirth = &dob
	} else {
		existing.DateOfBirth = nil
	}
	existing.Address = student.Address
	existing.City = student.City
	existing.State = student.State
	existing.ZipCode = student.ZipCode
	if !student.EnrollmentDate.IsZero() {
		existing.EnrollmentDate = student.EnrollmentDate
	}
	if student.EnrollmentStatus != "" {
		existing.EnrollmentStatus = student.EnrollmentStatus
	}
	existing.UpdatedAt = time.Now()

	return true, nil
}

// Delete removes the matching record if present.
func (s *MemoryStudentStore) Delete(_ context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, student := range s.students {
		if student.ID == id {
			s.students = append(s.students[:i], s.students[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Count returns the number of stored records.
func (s *MemoryStudentStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.students)), nil
}
