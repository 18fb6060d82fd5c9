package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/danupratama/portfolio-backend/auth"
	"github.com/danupratama/portfolio-backend/database"
	"github.com/danupratama/portfolio-backend/models"
)

const testSecret = "test-secret"

type testEnv struct {
	gdb       *gorm.DB
	db        database.Database
	router    http.Handler
	tokens    auth.TokenIssuer
	uploadDir string
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(gdb))

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// Each sqlite :memory: connection is its own database, so the pool must
	// stay at a single connection.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db := database.New(gdb)
	uploadDir := t.TempDir()

	router, err := newRouter(db, withConfig(map[string]string{
		"JWT_SECRET": testSecret,
		"UPLOAD_DIR": uploadDir,
	}))
	require.NoError(t, err)

	return testEnv{
		gdb:       gdb,
		db:        db,
		router:    router,
		tokens:    auth.NewTokenIssuer(testSecret, 24*time.Hour),
		uploadDir: uploadDir,
	}
}

// doJSON performs a JSON request against the test router. An empty token
// leaves the Authorization header unset.
func (env testEnv) doJSON(t *testing.T, method, path string, payload any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// createUser registers a user directly and returns a valid token for it.
func (env testEnv) createUser(t *testing.T, username string) (models.User, string) {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		IsAdmin:      true,
	}
	require.NoError(t, env.db.UserRepo().Add(&user))

	token, err := env.tokens.Issue(user.ID)
	require.NoError(t, err)

	return user, token
}

// createProject inserts a project with sensible defaults.
func (env testEnv) createProject(t *testing.T, title string) models.Project {
	t.Helper()

	project := models.Project{
		Title:       title,
		Description: "a description of " + title,
		ImageURL:    "/uploads/example.png",
	}
	require.NoError(t, env.db.ProjectRepo().Add(&project))
	return project
}
