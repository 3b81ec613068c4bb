package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ersoy/studentms/internal/app/models/dto"
	"github.com/ersoy/studentms/internal/app/services"
	"github.com/ersoy/studentms/internal/middleware"
	"github.com/ersoy/studentms/internal/pkg/helpers"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// parseStudentID extracts and validates the :id path parameter.
func parseStudentID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// CreateStudent handles student registration
// @Summary Register a new student
// @Description Creates a new student record with the provided information
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse} "Student created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 409 {object} dto.APIResponse "Email already registered"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var request dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := request.ToStudent()
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	created, err := c.studentService.AddStudent(ctx, student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromStudent(created), "Student created successfully"))
}

// GetStudentByID retrieves a student by ID
// @Summary Get student details
// @Description Retrieves a single student record by its identifier
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid student ID format"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromStudent(student), "Student retrieved successfully"))
}

// GetAllStudents retrieves all students with pagination
// @Summary List students
// @Description Retrieves a paginated list of all student records
// @Tags students
// @Accept json
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Students retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	start, end := helpers.CalculateSliceIndices(page, size, len(students))

	response := dto.PaginatedResponse{
		Items:      dto.FromStudents(students[start:end]),
		Pagination: helpers.NewPaginationInfo(len(students), page, size),
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response, "Students retrieved successfully"))
}

// UpdateStudent replaces an existing student record
// @Summary Update a student
// @Description Replaces every field of an existing student record
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.UpdateStudentRequest true "Updated student information"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student updated successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Failure 409 {object} dto.APIResponse "Email already registered"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	var request dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := request.ToStudent(id)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	updated, err := c.studentService.UpdateStudent(ctx, student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !updated {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found")
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return
	}

	refreshed, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromStudent(refreshed), "Student updated successfully"))
}

// DeleteStudent removes a student record
// @Summary Delete a student
// @Description Removes a student record by its identifier
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Student deleted successfully"
// @Failure 400 {object} dto.APIResponse "Invalid student ID"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	deleted, err := c.studentService.DeleteStudent(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !deleted {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found")
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Student deleted successfully"))
}

// SearchByFirstName finds students by first name
// @Summary Search students by first name
// @Description Retrieves all students whose first name matches case-insensitively
// @Tags students
// @Accept json
// @Produce json
// @Param name path string true "First name"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse} "Students retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Empty search term"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /students/search/first-name/{name} [get]
func (c *StudentController) SearchByFirstName(ctx *gin.Context) {
	students, err := c.studentService.SearchByFirstName(ctx, ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromStudents(students), "Students retrieved successfully"))
}

// SearchByLastName finds students by last name
// @Summary Search students by last name
// @Description Retrieves all students whose last name matches case-insensitively
// @Tags students
// @Accept json
// @Produce json
// @Param name path string true "Last name"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse} "Students retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Empty search term"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /students/search/last-name/{name} [get]
func (c *StudentController) SearchByLastName(ctx *gin.Context) {
	students, err := c.studentService.SearchByLastName(ctx, ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromStudents(students), "Students retrieved successfully"))
}

// FindByEmail finds the student holding an email address
// @Summary Find student by email
// @Description Retrieves the single student whose email matches case-insensitively
// @Tags students
// @Accept json
// @Produce json
// @Param email query string true "Email address"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Empty search term"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /students/search/email [get]
func (c *StudentController) FindByEmail(ctx *gin.Context) {
	student, err := c.studentService.FindByEmail(ctx, ctx.Query("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromStudent(student), "Student retrieved successfully"))
}

// GetStudentCount returns the number of stored students
// @Summary Count students
// @Description Returns the total number of student records
// @Tags students
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CountResponse} "Count retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /students/count [get]
func (c *StudentController) GetStudentCount(ctx *gin.Context) {
	count, err := c.studentService.GetStudentCount(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.CountResponse{Count: count}, "Count retrieved successfully"))
}

// GetStatistics returns record counts grouped by enrollment status
// @Summary Student statistics
// @Description Returns total record count and a per-status breakdown
// @Tags students
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StatisticsResponse} "Statistics retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /students/statistics [get]
func (c *StudentController) GetStatistics(ctx *gin.Context) {
	stats, err := c.studentService.GetStatistics(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.StatisticsResponse{
		Total:    stats.Total,
		ByStatus: make(map[string]int64, len(stats.ByStatus)),
	}
	for status, count := range stats.ByStatus {
		response.ByStatus[string(status)] = count
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response, "Statistics retrieved successfully"))
}
