package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/student-showcase/portfolio-backend/auth"
	"github.com/student-showcase/portfolio-backend/database"
	"github.com/student-showcase/portfolio-backend/models"
)

type testEnv struct {
	router *chi.Mux
	db     database.Database
	tokens *auth.TokenManager
}

// newTestEnv stands up a router backed by a fresh in-memory database. The
// token manager mirrors the router's development defaults so issued tokens
// verify against it.
func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(gormDB))

	db := database.New(gormDB)
	return testEnv{
		router: newRouter(db),
		db:     db,
		tokens: auth.NewTokenManager("dev-secret-do-not-use", 24*time.Hour),
	}
}

func (e testEnv) createUser(t *testing.T, email string, roles []string) *models.User {
	t.Helper()
	hashed, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)

	user := &models.User{
		Email:     email,
		Password:  hashed,
		FirstName: "Test",
		LastName:  "Account",
		Roles:     roles,
		IsActive:  true,
	}
	require.NoError(t, e.db.UserRepo().Add(user))
	return user
}

func (e testEnv) adminToken(t *testing.T) string {
	t.Helper()
	admin := e.createUser(t, "admin@example.com", []string{models.RoleAdmin})
	return e.tokenFor(t, admin)
}

func (e testEnv) userToken(t *testing.T) string {
	t.Helper()
	user := e.createUser(t, "user@example.com", nil)
	return e.tokenFor(t, user)
}

func (e testEnv) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := e.tokens.Issue(user)
	require.NoError(t, err)
	return token
}

func (e testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, req)
	return recorder
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)
	recorder := env.request(t, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "ok", decodeBody(t, recorder)["status"])
}
