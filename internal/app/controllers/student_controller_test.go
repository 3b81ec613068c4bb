package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersoy/studentms/internal/app/models/dto"
	"github.com/ersoy/studentms/internal/app/repositories"
	"github.com/ersoy/studentms/internal/app/services"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewStudentService(repositories.NewMemoryStudentStore())
	controller := NewStudentController(svc)

	router := gin.New()
	v1 := router.Group("/api/v1")
	students := v1.Group("/students")
	{
		students.GET("", controller.GetAllStudents)
		students.POST("", controller.CreateStudent)
		students.GET("/count", controller.GetStudentCount)
		students.GET("/statistics", controller.GetStatistics)
		students.GET("/:id", controller.GetStudentByID)
		students.PUT("/:id", controller.UpdateStudent)
		students.DELETE("/:id", controller.DeleteStudent)
		students.GET("/search/first-name/:name", controller.SearchByFirstName)
		students.GET("/search/last-name/:name", controller.SearchByLastName)
		students.GET("/search/email", controller.FindByEmail)
	}
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) dto.APIResponse {
	t.Helper()
	var response dto.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

const johnJSON = `{
	"firstName": "John",
	"lastName": "Doe",
	"email": "john.doe@example.com",
	"phoneNumber": "555-010-1234",
	"dateOfBirth": "2004-05-17",
	"city": "Springfield",
	"state": "IL",
	"zipCode": "62704"
}`

func TestCreateStudentEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(router, http.MethodPost, "/api/v1/students", johnJSON)
	require.Equal(t, http.StatusCreated, rec.Code)

	response := decodeResponse(t, rec)
	assert.True(t, response.Success)

	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "john.doe@example.com", data["email"])
	assert.Equal(t, "ACTIVE", data["enrollmentStatus"])
}

func TestCreateStudentValidationError(t *testing.T) {
	router := newTestRouter()

	body := strings.Replace(johnJSON, "john.doe@example.com", "not-an-email", 1)
	rec := doRequest(router, http.MethodPost, "/api/v1/students", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	response := decodeResponse(t, rec)
	assert.False(t, response.Success)
	require.NotNil(t, response.Error)
	assert.Equal(t, dto.ErrorCodeValidationFailed, response.Error.Code)
}

func TestCreateStudentDuplicateEmail(t *testing.T) {
	router := newTestRouter()

	rec := doRequest(router, http.MethodPost, "/api/v1/students", johnJSON)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(router, http.MethodPost, "/api/v1/students", johnJSON)
	require.Equal(t, http.StatusConflict, rec.Code)

	response := decodeResponse(t, rec)
	require.NotNil(t, response.Error)
	assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, response.Error.Code)
	assert.Equal(t, "email", response.Error.Field)
}

func TestGetStudentEndpoints(t *testing.T) {
	router := newTestRouter()
	doRequest(router, http.MethodPost, "/api/v1/students", johnJSON)

	rec := doRequest(router, http.MethodGet, "/api/v1/students/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/v1/students/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/v1/students/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListStudentsPagination(t *testing.T) {
	router := newTestRouter()
	doRequest(router, http.MethodPost, "/api/v1/students", johnJSON)

	rec := doRequest(router, http.MethodGet, "/api/v1/students?page=1&size=10", "")
	require.Equal(t, http.StatusOK, rec.Code)

	response := decodeResponse(t, rec)
	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)

	pagination, ok := data["pagination"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), pagination["totalItems"])
	assert.Equal(t, float64(1), pagination["currentPage"])
}

func TestSearchEndpoints(t *testing.T) {
	router := newTestRouter()
	doRequest(router, http.MethodPost, "/api/v1/students", johnJSON)

	rec := doRequest(router, http.MethodGet, "/api/v1/students/search/first-name/JOHN", "")
	require.Equal(t, http.StatusOK, rec.Code)
	response := decodeResponse(t, rec)
	items, ok := response.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 1)

	rec = doRequest(router, http.MethodGet, "/api/v1/students/search/last-name/doe", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/v1/students/search/email?email=JOHN.DOE@example.com", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/v1/students/search/email?email=missing@example.com", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/v1/students/search/email", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStudentEndpoint(t *testing.T) {
	router := newTestRouter()
	doRequest(router, http.MethodPost, "/api/v1/students", johnJSON)

	updated := strings.Replace(johnJSON, `"firstName": "John"`, `"firstName": "Jonathan"`, 1)
	rec := doRequest(router, http.MethodPut, "/api/v1/students/1", updated)
	require.Equal(t, http.StatusOK, rec.Code)

	response := decodeResponse(t, rec)
	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Jonathan", data["firstName"])

	rec = doRequest(router, http.MethodPut, "/api/v1/students/999", updated)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteStudentEndpoint(t *testing.T) {
	router := newTestRouter()
	doRequest(router, http.MethodPost, "/api/v1/students", johnJSON)

	rec := doRequest(router, http.MethodDelete, "/api/v1/students/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodDelete, "/api/v1/students/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCountAndStatisticsEndpoints(t *testing.T) {
	router := newTestRouter()
	doRequest(router, http.MethodPost, "/api/v1/students", johnJSON)

	rec := doRequest(router, http.MethodGet, "/api/v1/students/count", "")
	require.Equal(t, http.StatusOK, rec.Code)
	response := decodeResponse(t, rec)
	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), data["count"])

	rec = doRequest(router, http.MethodGet, "/api/v1/students/statistics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	response = decodeResponse(t, rec)
	data, ok = response.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), data["total"])

	byStatus, ok := data["byStatus"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), byStatus["ACTIVE"])
	assert.Equal(t, float64(0), byStatus["GRADUATED"])
}
