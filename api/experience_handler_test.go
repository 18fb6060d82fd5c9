package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danupratama/portfolio-backend/models"
)

func TestCreateExperience(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/experiences", map[string]any{
		"title":      "Backend Engineer",
		"company":    "Acme",
		"start_date": "2023-04",
		"end_date":   "2024-01",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.ExperienceResponse
	decodeBody(t, w, &created)
	require.Equal(t, "2024-01", created.EndDate)
	require.False(t, created.Current)
}

func TestCurrentExperienceReadsPresent(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/experiences", map[string]any{
		"title":      "Backend Engineer",
		"company":    "Acme",
		"start_date": "2024-02",
		"current":    true,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.ExperienceResponse
	decodeBody(t, w, &created)
	require.Equal(t, "Present", created.EndDate)
	require.True(t, created.Current)
}

func TestCreateExperienceMissingFields(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/experiences", map[string]any{
		"title":   "Backend Engineer",
		"company": "Acme",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListExperiencesNewestFirst(t *testing.T) {
	env := setupTestEnv(t)

	for _, e := range []models.Experience{
		{Title: "Junior", Company: "Acme", StartDate: "2019-01"},
		{Title: "Senior", Company: "Acme", StartDate: "2023-06"},
	} {
		experience := e
		require.NoError(t, env.db.ExperienceRepo().Add(&experience))
	}

	var listed []models.ExperienceResponse
	w := env.doJSON(t, http.MethodGet, "/api/experiences", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &listed)
	require.Len(t, listed, 2)
	require.Equal(t, "Senior", listed[0].Title)
}

func TestDeleteExperienceNotFound(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/experiences/%d", 999), nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
