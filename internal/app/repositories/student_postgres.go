package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ersoy/studentms/internal/app/models"
	"github.com/ersoy/studentms/internal/pkg/dberrors"
	"github.com/ersoy/studentms/internal/pkg/logger"
)

// emailUniqueIndex is the unique index on LOWER(email) created by the
// migrations; unique violations naming it are duplicate-email errors.
const emailUniqueIndex = "idx_students_email_lower"

// studentColumns is the canonical column order for scanning student rows.
var studentColumns = []string{
	"id", "first_name", "last_name", "email", "phone_number", "date_of_birth",
	"address", "city", "state", "zip_code", "enrollment_date", "enrollment_status",
	"created_at", "updated_at",
}

// PostgresStudentStore handles student database operations
type PostgresStudentStore struct {
	db *pgxpool.Pool
	// Use squirrel instance with placeholder format
	sb squirrel.StatementBuilderType
}

// NewPostgresStudentStore creates a new PostgresStudentStore
func NewPostgresStudentStore(db *pgxpool.Pool) *PostgresStudentStore {
	return &PostgresStudentStore{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// scanStudent scans a row into a Student following studentColumns order.
func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(
		&student.ID, &student.FirstName, &student.LastName, &student.Email,
		&student.PhoneNumber, &student.DateOfBirth, &student.Address,
		&student.City, &student.State, &student.ZipCode,
		&student.EnrollmentDate, &student.EnrollmentStatus,
		&student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// Create inserts a new student record, assigning the identifier from the
// database sequence. Fails with ErrDuplicateEmail when another record holds
// the same email (case-insensitive).
func (r *PostgresStudentStore) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	if student == nil {
		return nil, ErrNilStudent
	}

	// Pre-check gives a clean duplicate error without surfacing a constraint
	// name; the unique index on LOWER(email) still backs it under races.
	existing, err := r.GetByEmail(ctx, student.Email)
	if err != nil && !errors.Is(err, ErrEmptySearchTerm) {
		return nil, err
	}
	if existing != nil {
		return nil, duplicateEmailError(student.Email)
	}

	now := time.Now()
	enrollmentDate := student.EnrollmentDate
	if enrollmentDate.IsZero() {
		enrollmentDate = now
	}
	status := student.EnrollmentStatus
	if status == "" {
		status = models.StatusActive
	}

	sql, args, err := r.sb.Insert("students").
		Columns("first_name", "last_name", "email", "phone_number", "date_of_birth",
			"address", "city", "state", "zip_code", "enrollment_date", "enrollment_status",
			"created_at", "updated_at").
		Values(student.FirstName, student.LastName, student.Email, student.PhoneNumber,
			student.DateOfBirth, student.Address, student.City, student.State,
			student.ZipCode, enrollmentDate, status, now, now).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return nil, fmt.Errorf("failed to build create student query: %w", err)
	}

	created := student.Clone()
	created.EnrollmentDate = enrollmentDate
	created.EnrollmentStatus = status

	err = r.db.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, emailUniqueIndex) {
			return nil, duplicateEmailError(student.Email)
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	return created, nil
}

// GetByID retrieves a student by ID, returning (nil, nil) when no row matches.
func (r *PostgresStudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by ID SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// GetAll retrieves all students ordered by first then last name.
func (r *PostgresStudentStore) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := r.sb.Select(studentColumns...).
		From("students").
		OrderBy("first_name ASC", "last_name ASC")

	return r.queryStudents(ctx, query, "get all students")
}

// GetByFirstName retrieves students whose first name matches case-insensitively,
// ordered by last name.
func (r *PostgresStudentStore) GetByFirstName(ctx context.Context, firstName string) ([]*models.Student, error) {
	term, err := normalizeSearchTerm(firstName)
	if err != nil {
		return nil, err
	}

	query := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Expr("LOWER(first_name) = LOWER(?)", term)).
		OrderBy("last_name ASC")

	return r.queryStudents(ctx, query, "get students by first name")
}

// GetByLastName retrieves students whose last name matches case-insensitively,
// ordered by first name.
func (r *PostgresStudentStore) GetByLastName(ctx context.Context, lastName string) ([]*models.Student, error) {
	term, err := normalizeSearchTerm(lastName)
	if err != nil {
		return nil, err
	}

	query := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Expr("LOWER(last_name) = LOWER(?)", term)).
		OrderBy("first_name ASC")

	return r.queryStudents(ctx, query, "get students by last name")
}

// GetByEmail retrieves the student matching the email case-insensitively,
// returning (nil, nil) when no row matches.
func (r *PostgresStudentStore) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	term, err := normalizeSearchTerm(email)
	if err != nil {
		return nil, err
	}

	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Expr("LOWER(email) = LOWER(?)", term)).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by email SQL")
		return nil, fmt.Errorf("failed to build get student by email query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Msg("Error scanning student row by email")
		return nil, fmt.Errorf("error getting student by email: %w", err)
	}

	return student, nil
}

// studentUpdateSetMap builds the column assignments for an update. An empty
// status or zero enrollment date means "keep the stored value", matching the
// memory backend; writing an empty status would also trip the table's CHECK
// constraint.
func studentUpdateSetMap(student *models.Student, now time.Time) map[string]interface{} {
	setMap := map[string]interface{}{
		"first_name":    student.FirstName,
		"last_name":     student.LastName,
		"email":         student.Email,
		"phone_number":  student.PhoneNumber,
		"date_of_birth": student.DateOfBirth,
		"address":       student.Address,
		"city":          student.City,
		"state":         student.State,
		"zip_code":      student.ZipCode,
		"updated_at":    now,
	}
	if student.EnrollmentStatus != "" {
		setMap["enrollment_status"] = student.EnrollmentStatus
	}
	if !student.EnrollmentDate.IsZero() {
		setMap["enrollment_date"] = student.EnrollmentDate
	}
	return setMap
}

// Update replaces every mutable field of the stored record. Returns
// (false, nil) when the identifier matches no row.
func (r *PostgresStudentStore) Update(ctx context.Context, student *models.Student) (bool, error) {
	if student == nil {
		return false, ErrNilStudent
	}
	if student.ID <= 0 {
		return false, ErrInvalidID
	}

	// Reject moving the email onto one held by a different record.
	holder, err := r.GetByEmail(ctx, student.Email)
	if err != nil && !errors.Is(err, ErrEmptySearchTerm) {
		return false, err
	}
	if holder != nil && holder.ID != student.ID {
		return false, duplicateEmailError(student.Email)
	}

	sql, args, err := r.sb.Update("students").
		SetMap(studentUpdateSetMap(student, time.Now())).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return false, fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, emailUniqueIndex) {
			return false, duplicateEmailError(student.Email)
		}
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error executing update student query")
		return false, fmt.Errorf("error updating student: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// Delete removes the matching record and reports whether a row was removed.
func (r *PostgresStudentStore) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, ErrInvalidID
	}

	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete student SQL")
		return false, fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return false, fmt.Errorf("error deleting student: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// Count returns the number of student rows.
func (r *PostgresStudentStore) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("students").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building count students SQL")
		return 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error executing count students query")
		return 0, fmt.Errorf("error counting students: %w", err)
	}

	return count, nil
}

// queryStudents executes a multi-row select and scans the results.
func (r *PostgresStudentStore) queryStudents(ctx context.Context, query squirrel.SelectBuilder, op string) ([]*models.Student, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("operation", op).Msg("Error building student SQL")
		return nil, fmt.Errorf("failed to build %s query: %w", op, err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("operation", op).Msg("Error executing student query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Str("operation", op).Msg("Error scanning student row")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Str("operation", op).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}
