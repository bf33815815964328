package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentCRUD(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.adminToken(t)

	payload := map[string]any{
		"name":  "John Doe",
		"email": "john.doe@example.edu",
		"year":  "3",
		"bio":   "Full-stack developer.",
	}
	recorder := env.request(t, http.MethodPost, "/api/students", adminToken, payload)
	require.Equal(t, http.StatusCreated, recorder.Code)
	created := decodeBody(t, recorder)
	id := itoa(uint(created["id"].(float64)))

	recorder = env.request(t, http.MethodGet, "/api/students/"+id, "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "John Doe", decodeBody(t, recorder)["name"])

	recorder = env.request(t, http.MethodPatch, "/api/students/"+id, adminToken, map[string]any{"year": "4"})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "4", decodeBody(t, recorder)["year"])

	recorder = env.request(t, http.MethodDelete, "/api/students/"+id, adminToken, nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = env.request(t, http.MethodGet, "/api/students/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestStudentDuplicateEmailConflict(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.adminToken(t)

	payload := map[string]any{"name": "John Doe", "email": "john.doe@example.edu", "year": "3"}
	recorder := env.request(t, http.MethodPost, "/api/students", adminToken, payload)
	require.Equal(t, http.StatusCreated, recorder.Code)

	payload["name"] = "Johnny Doe"
	recorder = env.request(t, http.MethodPost, "/api/students", adminToken, payload)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestStudentSearchQuery(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.adminToken(t)

	for _, s := range []map[string]any{
		{"name": "John Doe", "email": "john.doe@example.edu", "year": "3"},
		{"name": "Jane Roe", "email": "jane.roe@example.edu", "year": "2"},
	} {
		recorder := env.request(t, http.MethodPost, "/api/students", adminToken, s)
		require.Equal(t, http.StatusCreated, recorder.Code)
	}

	recorder := env.request(t, http.MethodGet, "/api/students?search=doe", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.EqualValues(t, 1, body["totalItems"])
}

func TestTechnologyCategoriesEndpoint(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.adminToken(t)

	for _, tech := range []map[string]any{
		{"name": "React", "category": "Frontend"},
		{"name": "Go", "category": "Backend"},
		{"name": "TypeScript", "category": "Frontend"},
	} {
		recorder := env.request(t, http.MethodPost, "/api/technologies", adminToken, tech)
		require.Equal(t, http.StatusCreated, recorder.Code)
	}

	recorder := env.request(t, http.MethodGet, "/api/technologies/categories", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var categories []string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &categories))
	assert.ElementsMatch(t, []string{"Frontend", "Backend"}, categories)

	recorder = env.request(t, http.MethodGet, "/api/technologies?category=Frontend", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.EqualValues(t, 2, decodeBody(t, recorder)["totalItems"])
}

func TestTechnologyValidation(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.adminToken(t)

	recorder := env.request(t, http.MethodPost, "/api/technologies", adminToken, map[string]any{"name": "Go"})
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	violations := decodeBody(t, recorder)["violations"].([]any)
	require.Len(t, violations, 1)
	assert.Equal(t, "category", violations[0].(map[string]any)["field"])
}
