package dto

import (
	"fmt"
	"time"

	"github.com/ersoy/studentms/internal/app/models"
)

// dateOnly is the wire format for date-of-birth values.
const dateOnly = "2006-01-02"

// CreateStudentRequest represents a request to register a new student
type CreateStudentRequest struct {
	FirstName        string `json:"firstName" binding:"required" example:"John"`
	LastName         string `json:"lastName" binding:"required" example:"Doe"`
	Email            string `json:"email" binding:"required" example:"john.doe@example.com"`
	PhoneNumber      string `json:"phoneNumber" binding:"required" example:"555-010-1234"`
	DateOfBirth      string `json:"dateOfBirth,omitempty" example:"2004-05-17"`
	Address          string `json:"address,omitempty" example:"123 Main St"`
	City             string `json:"city,omitempty" example:"Springfield"`
	State            string `json:"state,omitempty" example:"IL"`
	ZipCode          string `json:"zipCode,omitempty" example:"62704"`
	EnrollmentDate   string `json:"enrollmentDate,omitempty" example:"2026-08-20"`
	EnrollmentStatus string `json:"enrollmentStatus,omitempty" example:"ACTIVE" enums:"ACTIVE,INACTIVE,SUSPENDED,GRADUATED"`
}

// UpdateStudentRequest represents a full replacement of a student record
type UpdateStudentRequest struct {
	FirstName        string `json:"firstName" binding:"required" example:"John"`
	LastName         string `json:"lastName" binding:"required" example:"Doe"`
	Email            string `json:"email" binding:"required" example:"john.doe@example.com"`
	PhoneNumber      string `json:"phoneNumber" binding:"required" example:"555-010-1234"`
	DateOfBirth      string `json:"dateOfBirth,omitempty" example:"2004-05-17"`
	Address          string `json:"address,omitempty" example:"123 Main St"`
	City             string `json:"city,omitempty" example:"Springfield"`
	State            string `json:"state,omitempty" example:"IL"`
	ZipCode          string `json:"zipCode,omitempty" example:"62704"`
	EnrollmentDate   string `json:"enrollmentDate,omitempty" example:"2026-08-20"`
	EnrollmentStatus string `json:"enrollmentStatus,omitempty" example:"ACTIVE" enums:"ACTIVE,INACTIVE,SUSPENDED,GRADUATED"`
}

// parseOptionalDate parses a yyyy-mm-dd value, returning nil for an empty string.
func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateOnly, value)
	if err != nil {
		return nil, fmt.Errorf("%s must use format %s", field, dateOnly)
	}
	return &parsed, nil
}

// toStudent maps shared request fields onto a model.
func toStudent(firstName, lastName, email, phone, dob, address, city, state, zip, enrollDate, status string) (*models.Student, error) {
	dateOfBirth, err := parseOptionalDate("dateOfBirth", dob)
	if err != nil {
		return nil, err
	}
	enrollmentDate, err := parseOptionalDate("enrollmentDate", enrollDate)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		FirstName:        firstName,
		LastName:         lastName,
		Email:            email,
		PhoneNumber:      phone,
		DateOfBirth:      dateOfBirth,
		Address:          address,
		City:             city,
		State:            state,
		ZipCode:          zip,
		EnrollmentStatus: models.EnrollmentStatus(status),
	}
	if enrollmentDate != nil {
		student.EnrollmentDate = *enrollmentDate
	}
	return student, nil
}

// ToStudent converts the create request into a model
func (r *CreateStudentRequest) ToStudent() (*models.Student, error) {
	return toStudent(r.FirstName, r.LastName, r.Email, r.PhoneNumber, r.DateOfBirth,
		r.Address, r.City, r.State, r.ZipCode, r.EnrollmentDate, r.EnrollmentStatus)
}

// ToStudent converts the update request into a model carrying the given ID
func (r *UpdateStudentRequest) ToStudent(id int64) (*models.Student, error) {
	student, err := toStudent(r.FirstName, r.LastName, r.Email, r.PhoneNumber, r.DateOfBirth,
		r.Address, r.City, r.State, r.ZipCode, r.EnrollmentDate, r.EnrollmentStatus)
	if err != nil {
		return nil, err
	}
	student.ID = id
	return student, nil
}

// StudentResponse represents a student record in API responses
type StudentResponse struct {
	ID               int64     `json:"id" example:"1"`
	FirstName        string    `json:"firstName" example:"John"`
	LastName         string    `json:"lastName" example:"Doe"`
	Email            string    `json:"email" example:"john.doe@example.com"`
	PhoneNumber      string    `json:"phoneNumber" example:"555-010-1234"`
	DateOfBirth      string    `json:"dateOfBirth,omitempty" example:"2004-05-17"`
	Address          string    `json:"address,omitempty" example:"123 Main St"`
	City             string    `json:"city,omitempty" example:"Springfield"`
	State            string    `json:"state,omitempty" example:"IL"`
	ZipCode          string    `json:"zipCode,omitempty" example:"62704"`
	EnrollmentDate   string    `json:"enrollmentDate" example:"2026-08-20"`
	EnrollmentStatus string    `json:"enrollmentStatus" example:"ACTIVE" enums:"ACTIVE,INACTIVE,SUSPENDED,GRADUATED"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// FromStudent converts a models.Student to a StudentResponse
func FromStudent(student *models.Student) StudentResponse {
	if student == nil {
		return StudentResponse{}
	}

	response := StudentResponse{
		ID:               student.ID,
		FirstName:        student.FirstName,
		LastName:         student.LastName,
		Email:            student.Email,
		PhoneNumber:      student.PhoneNumber,
		Address:          student.Address,
		City:             student.City,
		State:            student.State,
		ZipCode:          student.ZipCode,
		EnrollmentDate:   student.EnrollmentDate.Format(dateOnly),
		EnrollmentStatus: string(student.EnrollmentStatus),
		CreatedAt:        student.CreatedAt,
		UpdatedAt:        student.UpdatedAt,
	}
	if student.DateOfBirth != nil {
		response.DateOfBirth = student.DateOfBirth.Format(dateOnly)
	}
	return response
}

// FromStudents converts a slice of models into response DTOs
func FromStudents(students []*models.Student) []StudentResponse {
	responses := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, FromStudent(student))
	}
	return responses
}

// CountResponse carries the record count
type CountResponse struct {
	Count int64 `json:"count" example:"42"`
}

// StatisticsResponse carries total and per-status record counts
type StatisticsResponse struct {
	Total    int64            `json:"total" example:"42"`
	ByStatus map[string]int64 `json:"byStatus"`
}
