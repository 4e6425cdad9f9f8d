package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-task-cards/internal/models"
	"github.com/adanyl0v/go-task-cards/internal/services"
)

func newTestRouter(t *testing.T, svc services.TaskService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router, New(zerolog.Nop(), svc))
	return router
}

func jsonReq(method, path string, body any) *http.Request {
	var b []byte
	if body != nil {
		b, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

var milk = models.Task{
	ID:          1729350245000,
	Name:        "Buy milk",
	Description: "2%",
	Thumbnail:   "assets/images/cat.svg",
	CreatedAt:   "10/19/2026, 3:04:05 PM",
}

func TestGetTasksEmptyIsArray(t *testing.T) {
	router := newTestRouter(t, services.NewMemoryTaskService(zerolog.Nop()))

	rec := serve(router, jsonReq(http.MethodGet, "/tasks", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateThenGet(t *testing.T) {
	router := newTestRouter(t, services.NewMemoryTaskService(zerolog.Nop()))

	rec := serve(router, jsonReq(http.MethodPost, "/tasks", milk))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(router, jsonReq(http.MethodGet, "/tasks", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"id": 1729350245000,
		"name": "Buy milk",
		"description": "2%",
		"thumbnail": "assets/images/cat.svg",
		"createdat": "10/19/2026, 3:04:05 PM"
	}]`, rec.Body.String())
}

func TestCreateWithTrailingSlash(t *testing.T) {
	router := newTestRouter(t, services.NewMemoryTaskService(zerolog.Nop()))

	rec := serve(router, jsonReq(http.MethodPost, "/tasks/", milk))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateErrors(t *testing.T) {
	svc := services.NewMemoryTaskService(zerolog.Nop())
	_, err := svc.CreateTask(context.Background(), milk)
	require.NoError(t, err)
	router := newTestRouter(t, svc)

	tests := []struct {
		name string
		req  *http.Request
		code int
	}{
		{
			name: "duplicate id",
			req:  jsonReq(http.MethodPost, "/tasks", milk),
			code: http.StatusConflict,
		},
		{
			name: "missing id",
			req:  jsonReq(http.MethodPost, "/tasks", map[string]any{"name": "n"}),
			code: http.StatusBadRequest,
		},
		{
			name: "malformed body",
			req:  httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewBufferString("{")),
			code: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, tt.req)
			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestUpdateTask(t *testing.T) {
	svc := services.NewMemoryTaskService(zerolog.Nop())
	_, err := svc.CreateTask(context.Background(), milk)
	require.NoError(t, err)
	router := newTestRouter(t, svc)

	changed := milk
	changed.Name = "Buy oat milk"
	changed.ID = 42

	rec := serve(router, jsonReq(http.MethodPut, "/tasks/1729350245000", changed))
	require.Equal(t, http.StatusOK, rec.Code)

	tasks, err := svc.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, milk.ID, tasks[0].ID)
	assert.Equal(t, "Buy oat milk", tasks[0].Name)
	assert.Equal(t, milk.CreatedAt, tasks[0].CreatedAt)
}

func TestUpdateErrors(t *testing.T) {
	router := newTestRouter(t, services.NewMemoryTaskService(zerolog.Nop()))

	rec := serve(router, jsonReq(http.MethodPut, "/tasks/7", milk))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(router, jsonReq(http.MethodPut, "/tasks/seven", milk))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteTask(t *testing.T) {
	svc := services.NewMemoryTaskService(zerolog.Nop())
	_, err := svc.CreateTask(context.Background(), milk)
	require.NoError(t, err)
	router := newTestRouter(t, svc)

	rec := serve(router, jsonReq(http.MethodDelete, "/tasks/1729350245000", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())

	rec = serve(router, jsonReq(http.MethodDelete, "/tasks/1729350245000", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type failingTaskService struct {
	services.TaskService
}

func (failingTaskService) ListTasks(context.Context) ([]models.Task, error) {
	return nil, errors.New("database is down")
}

func TestGetTasksFailure(t *testing.T) {
	router := newTestRouter(t, failingTaskService{})

	rec := serve(router, jsonReq(http.MethodGet, "/tasks", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequestID(t *testing.T) {
	router := newTestRouter(t, services.NewMemoryTaskService(zerolog.Nop()))

	rec := serve(router, jsonReq(http.MethodGet, "/tasks", nil))
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	req := jsonReq(http.MethodGet, "/tasks", nil)
	req.Header.Set(requestIDHeader, "req-1")
	rec = serve(router, req)
	assert.Equal(t, "req-1", rec.Header().Get(requestIDHeader))
}
