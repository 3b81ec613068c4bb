package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ersoy/studentms/internal/app/models"
	"github.com/ersoy/studentms/internal/app/repositories"
	"github.com/ersoy/studentms/internal/pkg/apperrors"
	"github.com/ersoy/studentms/internal/pkg/logger"
	"github.com/ersoy/studentms/internal/pkg/validation"
)

// StudentStatistics aggregates record counts for reporting.
type StudentStatistics struct {
	Total    int64
	ByStatus map[models.EnrollmentStatus]int64
}

// StudentService defines the interface for student-related operations
type StudentService interface {
	AddStudent(ctx context.Context, student *models.Student) (*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	SearchByFirstName(ctx context.Context, firstName string) ([]*models.Student, error)
	SearchByLastName(ctx context.Context, lastName string) ([]*models.Student, error)
	FindByEmail(ctx context.Context, email string) (*models.Student, error)
	UpdateStudent(ctx context.Context, student *models.Student) (bool, error)
	DeleteStudent(ctx context.Context, id int64) (bool, error)
	GetStudentCount(ctx context.Context) (int64, error)
	GetStatistics(ctx context.Context) (*StudentStatistics, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	store repositories.StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(store repositories.StudentStore) StudentService {
	return &studentServiceImpl{
		store: store,
	}
}

// normalizeStudent returns a copy with surrounding whitespace trimmed, so
// stored values match what the validators and the case-insensitive duplicate
// check compare against.
func normalizeStudent(student *models.Student) *models.Student {
	trimmed := student.Clone()
	trimmed.FirstName = strings.TrimSpace(trimmed.FirstName)
	trimmed.LastName = strings.TrimSpace(trimmed.LastName)
	trimmed.Email = strings.TrimSpace(trimmed.Email)
	trimmed.PhoneNumber = strings.TrimSpace(trimmed.PhoneNumber)
	trimmed.Address = strings.TrimSpace(trimmed.Address)
	trimmed.City = strings.TrimSpace(trimmed.City)
	trimmed.State = strings.TrimSpace(trimmed.State)
	trimmed.ZipCode = strings.TrimSpace(trimmed.ZipCode)
	return trimmed
}

// validateStudent runs every field rule and returns the first failure.
func (s *studentServiceImpl) validateStudent(student *models.Student) error {
	if student == nil {
		return apperrors.NewInvalidArgumentError("student cannot be nil")
	}

	checks := []*validation.FieldError{
		validation.ValidateName("firstName", student.FirstName),
		validation.ValidateName("lastName", student.LastName),
		validation.ValidateEmail(student.Email),
		validation.ValidatePhone(student.PhoneNumber),
		validation.ValidateDateOfBirth(student.DateOfBirth),
		validation.ValidateZipCode(student.ZipCode),
		validation.ValidateEnrollmentStatus(string(student.EnrollmentStatus)),
	}
	for _, check := range checks {
		if check != nil {
			return apperrors.NewValidationError(check.Field, check.Message)
		}
	}
	return nil
}

// AddStudent validates and persists a new student record.
func (s *studentServiceImpl) AddStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	if student == nil {
		return nil, apperrors.NewInvalidArgumentError("student cannot be nil")
	}
	student = normalizeStudent(student)
	if err := s.validateStudent(student); err != nil {
		return nil, err
	}

	created, err := s.store.Create(ctx, student)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, apperrors.NewDuplicateEmailError(
				fmt.Sprintf("a student with email '%s' already exists", student.Email))
		}
		logger.Error().Err(err).Str("email", student.Email).Msg("Failed to create student")
		return nil, apperrors.NewStorageError(err, "error creating student")
	}

	logger.Info().Int64("studentID", created.ID).Str("email", created.Email).Msg("Student created")
	return created, nil
}

// GetStudentByID retrieves a student by ID.
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.NewInvalidArgumentError("student ID must be a positive integer")
	}

	student, err := s.store.GetByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Failed to retrieve student")
		return nil, apperrors.NewStorageError(err, "error retrieving student")
	}
	if student == nil {
		return nil, fmt.Errorf("%w: no student with ID %d", apperrors.ErrStudentNotFound, id)
	}
	return student, nil
}

// GetAllStudents retrieves every student record.
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.store.GetAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve students")
		return nil, apperrors.NewStorageError(err, "error retrieving students")
	}
	return students, nil
}

// SearchByFirstName finds students matching a first name case-insensitively.
func (s *studentServiceImpl) SearchByFirstName(ctx context.Context, firstName string) ([]*models.Student, error) {
	if strings.TrimSpace(firstName) == "" {
		return nil, apperrors.NewInvalidArgumentError("first name cannot be empty")
	}

	students, err := s.store.GetByFirstName(ctx, firstName)
	if err != nil {
		if errors.Is(err, repositories.ErrEmptySearchTerm) {
			return nil, apperrors.NewInvalidArgumentError("first name cannot be empty")
		}
		logger.Error().Err(err).Str("firstName", firstName).Msg("Failed to search students by first name")
		return nil, apperrors.NewStorageError(err, "error searching students")
	}
	return students, nil
}

// SearchByLastName finds students matching a last name case-insensitively.
func (s *studentServiceImpl) SearchByLastName(ctx context.Context, lastName string) ([]*models.Student, error) {
	if strings.TrimSpace(lastName) == "" {
		return nil, apperrors.NewInvalidArgumentError("last name cannot be empty")
	}

	students, err := s.store.GetByLastName(ctx, lastName)
	if err != nil {
		if errors.Is(err, repositories.ErrEmptySearchTerm) {
			return nil, apperrors.NewInvalidArgumentError("last name cannot be empty")
		}
		logger.Error().Err(err).Str("lastName", lastName).Msg("Failed to search students by last name")
		return nil, apperrors.NewStorageError(err, "error searching students")
	}
	return students, nil
}

// FindByEmail finds the single student matching an email case-insensitively.
func (s *studentServiceImpl) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.NewInvalidArgumentError("email cannot be empty")
	}

	student, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrEmptySearchTerm) {
			return nil, apperrors.NewInvalidArgumentError("email cannot be empty")
		}
		logger.Error().Err(err).Str("email", email).Msg("Failed to find student by email")
		return nil, apperrors.NewStorageError(err, "error searching students")
	}
	if student == nil {
		return nil, fmt.Errorf("%w: no student with email '%s'", apperrors.ErrStudentNotFound, email)
	}
	return student, nil
}

// UpdateStudent validates and replaces an existing student record. The bool
// result reports whether a record was updated.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) (bool, error) {
	if student == nil {
		return false, apperrors.NewInvalidArgumentError("student cannot be nil")
	}
	if student.ID <= 0 {
		return false, apperrors.NewInvalidArgumentError("student ID must be a positive integer")
	}
	student = normalizeStudent(student)
	if err := s.validateStudent(student); err != nil {
		return false, err
	}

	updated, err := s.store.Update(ctx, student)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return false, apperrors.NewDuplicateEmailError(
				fmt.Sprintf("a student with email '%s' already exists", student.Email))
		}
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Failed to update student")
		return false, apperrors.NewStorageError(err, "error updating student")
	}

	if updated {
		logger.Info().Int64("studentID", student.ID).Msg("Student updated")
	}
	return updated, nil
}

// DeleteStudent removes a student record. The bool result reports whether a
// record was deleted.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, apperrors.NewInvalidArgumentError("student ID must be a positive integer")
	}

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Failed to delete student")
		return false, apperrors.NewStorageError(err, "error deleting student")
	}

	if deleted {
		logger.Info().Int64("studentID", id).Msg("Student deleted")
	}
	return deleted, nil
}

// GetStudentCount returns the number of stored students.
func (s *studentServiceImpl) GetStudentCount(ctx context.Context) (int64, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to count students")
		return 0, apperrors.NewStorageError(err, "error counting students")
	}
	return count, nil
}

// GetStatistics computes total and per-status record counts.
func (s *studentServiceImpl) GetStatistics(ctx context.Context) (*StudentStatistics, error) {
	students, err := s.store.GetAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve students for statistics")
		return nil, apperrors.NewStorageError(err, "error computing statistics")
	}

	stats := &StudentStatistics{
		Total:    int64(len(students)),
		ByStatus: make(map[models.EnrollmentStatus]int64, len(models.AllStatuses)),
	}
	for _, status := range models.AllStatuses {
		stats.ByStatus[status] = 0
	}
	for _, student := range students {
		stats.ByStatus[student.EnrollmentStatus]++
	}
	return stats, nil
}
