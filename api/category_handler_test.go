package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danupratama/portfolio-backend/models"
)

func TestCreateCategory(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/categories", map[string]any{
		"name": "Embedded",
		"icon": "cpu",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.CategoryResponse
	decodeBody(t, w, &created)
	require.Equal(t, "Embedded", created.Name)
	require.NotZero(t, created.ID)
}

func TestCreateCategoryDuplicate(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/categories", map[string]any{"name": "Embedded"}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.doJSON(t, http.MethodPost, "/api/categories", map[string]any{"name": "Embedded"}, "")
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateCategoryMissingName(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/categories", map[string]any{"icon": "cpu"}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCategories(t *testing.T) {
	env := setupTestEnv(t)

	category := models.Category{Name: "Web", Icon: "globe"}
	require.NoError(t, env.db.CategoryRepo().Add(&category))

	var listed []models.CategoryResponse
	w := env.doJSON(t, http.MethodGet, "/api/categories", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &listed)
	require.Len(t, listed, 1)
	require.Equal(t, "Web", listed[0].Name)
}
