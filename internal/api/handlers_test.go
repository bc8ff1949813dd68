package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/listo/internal/database"
	"github.com/thenoetrevino/listo/internal/models"
	"github.com/thenoetrevino/listo/internal/testutil"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	return NewServer(":0", repo, Options{})
}

func doRequest(t *testing.T, s *Server, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeTodo(t *testing.T, rec *httptest.ResponseRecorder) models.Todo {
	t.Helper()
	var todo models.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todo))
	return todo
}

func decodeTodos(t *testing.T, rec *httptest.ResponseRecorder) []models.Todo {
	t.Helper()
	var todos []models.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todos))
	return todos
}

func TestCreateTodoEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/todos", `{"text": "buy milk"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	todo := decodeTodo(t, rec)
	assert.Equal(t, "buy milk", todo.Text)
	assert.False(t, todo.Completed)
	assert.Empty(t, todo.Labels)
	assert.NotZero(t, todo.ID)
}

func TestCreateTodoEmptyText(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/todos", `{"text": ""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTodoMalformedJSON(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/todos", `{"text": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListTodosEmpty(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/todos", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestGetTodoEndpoint(t *testing.T) {
	s := newTestServer(t)

	created := decodeTodo(t, doRequest(t, s, http.MethodPost, "/todos", `{"text": "buy milk"}`))

	rec := doRequest(t, s, http.MethodGet, fmt.Sprintf("/todos/%d", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, decodeTodo(t, rec).ID)
}

func TestGetTodoNotFound(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/todos/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTodoBadID(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/todos/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateTodoEndpoint(t *testing.T) {
	s := newTestServer(t)

	created := decodeTodo(t, doRequest(t, s, http.MethodPost, "/todos", `{"text": "buy milk"}`))

	rec := doRequest(t, s, http.MethodPut, fmt.Sprintf("/todos/%d", created.ID), `{"completed": true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decodeTodo(t, rec)
	assert.True(t, updated.Completed)
	assert.Equal(t, "buy milk", updated.Text, "text must be unchanged by a partial update")
}

func TestUpdateTodoNotFound(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPut, "/todos/999", `{"completed": true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateTodoUnknownLabel(t *testing.T) {
	s := newTestServer(t)

	created := decodeTodo(t, doRequest(t, s, http.MethodPost, "/todos", `{"text": "buy milk"}`))

	rec := doRequest(t, s, http.MethodPut, fmt.Sprintf("/todos/%d", created.ID), `{"labels": [999]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateTodoUnknownIDBeatsBadLabels(t *testing.T) {
	s := newTestServer(t)

	// An unknown todo is a 404 even when the label set is also invalid
	rec := doRequest(t, s, http.MethodPut, "/todos/999", `{"labels": [999]}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTodoEndpoint(t *testing.T) {
	s := newTestServer(t)

	created := decodeTodo(t, doRequest(t, s, http.MethodPost, "/todos", `{"text": "buy milk"}`))

	rec := doRequest(t, s, http.MethodDelete, fmt.Sprintf("/todos/%d", created.ID), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Second delete is not idempotent
	rec = doRequest(t, s, http.MethodDelete, fmt.Sprintf("/todos/%d", created.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateLabelEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/labels", `{"name": "work"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Label
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "work", created.Name)
	assert.NotZero(t, created.ID)
}

func TestCreateLabelConflict(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/labels", `{"name": "work"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, s, http.MethodPost, "/labels", `{"name": "work"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteLabelNotFound(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodDelete, "/labels/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// Full lifecycle: create todo, create label, attach, delete label,
// verify the todo survives with an empty label set.
func TestLabelLifecycleAcrossTodos(t *testing.T) {
	s := newTestServer(t)

	todo := decodeTodo(t, doRequest(t, s, http.MethodPost, "/todos", `{"text": "buy milk"}`))

	rec := doRequest(t, s, http.MethodPost, "/labels", `{"name": "errand"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var errand models.Label
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errand))

	rec = doRequest(t, s, http.MethodPut, fmt.Sprintf("/todos/%d", todo.ID),
		fmt.Sprintf(`{"labels": [%d]}`, errand.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	todos := decodeTodos(t, doRequest(t, s, http.MethodGet, "/todos", ""))
	require.Len(t, todos, 1)
	require.Len(t, todos[0].Labels, 1)
	assert.Equal(t, "errand", todos[0].Labels[0].Name)

	rec = doRequest(t, s, http.MethodDelete, fmt.Sprintf("/labels/%d", errand.ID), "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	todos = decodeTodos(t, doRequest(t, s, http.MethodGet, "/todos", ""))
	require.Len(t, todos, 1)
	assert.Empty(t, todos[0].Labels)
	assert.Equal(t, "buy milk", todos[0].Text)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	doRequest(t, s, http.MethodGet, "/todos", "")
	doRequest(t, s, http.MethodGet, "/todos/999", "")

	rec := doRequest(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var snap MetricsSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, int64(2), snap.RequestsTotal)
	assert.Equal(t, int64(1), snap.ClientErrors)
}

func TestCORSPreflight(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	s := NewServer(":0", repo, Options{AllowedOrigins: []string{"http://localhost:3001"}})

	req := httptest.NewRequest(http.MethodOptions, "/todos", nil)
	req.Header.Set("Origin", "http://localhost:3001")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3001", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSDisallowedOrigin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	s := NewServer(":0", repo, Options{AllowedOrigins: []string{"http://localhost:3001"}})

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
