package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/danupratama/portfolio-backend/database"
)

// doUpload posts a multipart body with a single "file" part.
func (env testEnv) doUpload(t *testing.T, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestUploadAndServe(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doUpload(t, "screenshot.png", []byte("fake png bytes"))
	require.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Message string `json:"message"`
		URL     string `json:"url"`
	}
	decodeBody(t, w, &response)
	require.True(t, strings.HasPrefix(response.URL, "/uploads/"))
	require.True(t, strings.HasSuffix(response.URL, "_screenshot.png"))

	req := httptest.NewRequest(http.MethodGet, response.URL, nil)
	served := httptest.NewRecorder()
	env.router.ServeHTTP(served, req)
	require.Equal(t, http.StatusOK, served.Code)
	require.Equal(t, "fake png bytes", served.Body.String())
}

func TestUploadExtensionCaseInsensitive(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doUpload(t, "photo.PNG", []byte("data"))
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestUploadRejectsDisallowedExtension(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doUpload(t, "malware.exe", []byte("data"))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadMissingFilePart(t *testing.T) {
	env := setupTestEnv(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("other", "value"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadTooLarge(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(gdb))

	router, err := newRouter(database.New(gdb), withConfig(map[string]string{
		"JWT_SECRET":       testSecret,
		"UPLOAD_DIR":       t.TempDir(),
		"MAX_UPLOAD_BYTES": "1024",
	}))
	require.NoError(t, err)

	env := testEnv{router: router}
	w := env.doUpload(t, "big.png", bytes.Repeat([]byte("a"), 4096))
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestServeUploadRejectsTraversal(t *testing.T) {
	env := setupTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/uploads/..%2fsecret.txt", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.NotEqual(t, http.StatusOK, w.Code)
}

func TestServeUploadNotFound(t *testing.T) {
	env := setupTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/uploads/missing.png", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSanitizeFilename(t *testing.T) {
	require.Equal(t, "my_photo_1_.png", sanitizeFilename("my photo (1).png"))
	require.Equal(t, "passwd", sanitizeFilename("../../etc/passwd"))
	require.Equal(t, "", sanitizeFilename("...."))
}
