package api

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danupratama/portfolio-backend/models"
)

func TestCreateProject(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/projects", map[string]any{
		"title":       "Weather App",
		"description": "A weather dashboard",
		"image":       "/uploads/weather.png",
		"tags":        "go,react",
		"featured":    true,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.ProjectResponse
	decodeBody(t, w, &created)
	require.Equal(t, "Weather App", created.Title)
	require.Equal(t, []string{"go", "react"}, created.Tags)
	require.True(t, created.Featured)
	require.Zero(t, created.Views)
	require.Zero(t, created.Likes)
	require.Zero(t, created.CommentsCount)
}

func TestCreateProjectMissingFields(t *testing.T) {
	env := setupTestEnv(t)

	for _, payload := range []map[string]any{
		{"description": "d", "image": "i"},
		{"title": "t", "image": "i"},
		{"title": "t", "description": "d"},
	} {
		w := env.doJSON(t, http.MethodPost, "/api/projects", payload, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestGetProjectIncrementsViews(t *testing.T) {
	env := setupTestEnv(t)
	project := env.createProject(t, "Weather App")

	// Fetching is a write-on-read: each GET bumps the counter by one.
	for i := 1; i <= 3; i++ {
		w := env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/projects/%d", project.ID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var response models.ProjectResponse
		decodeBody(t, w, &response)
		require.Equal(t, i, response.Views)
	}
}

func TestConcurrentViewIncrements(t *testing.T) {
	env := setupTestEnv(t)
	project := env.createProject(t, "Busy Project")

	const workers = 50
	errCh := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- env.db.ProjectRepo().IncrementViews(project.ID)
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	// Increments happen in SQL, so none of the parallel bumps is lost.
	stored, err := env.db.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, workers, stored.Views)
}

func TestGetProjectNotFound(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodGet, "/api/projects/9999", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestLikeProject(t *testing.T) {
	env := setupTestEnv(t)
	project := env.createProject(t, "Weather App")

	var previous int
	for i := 1; i <= 3; i++ {
		w := env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/projects/%d/like", project.ID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Likes int `json:"likes"`
		}
		decodeBody(t, w, &response)
		require.Greater(t, response.Likes, previous)
		previous = response.Likes
	}
	require.Equal(t, 3, previous)
}

func TestUpdateProjectPartial(t *testing.T) {
	env := setupTestEnv(t)
	project := env.createProject(t, "Weather App")

	w := env.doJSON(t, http.MethodPut, fmt.Sprintf("/api/projects/%d", project.ID), map[string]any{
		"title": "Weather App v2",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var response models.ProjectResponse
	decodeBody(t, w, &response)
	require.Equal(t, "Weather App v2", response.Title)
	// absent fields keep their stored values
	require.Equal(t, project.Description, response.Description)
	require.Equal(t, project.ImageURL, response.Image)
}

func TestDeleteProjectCascadesComments(t *testing.T) {
	env := setupTestEnv(t)
	project := env.createProject(t, "Weather App")

	comment := models.Comment{
		ProjectID: project.ID,
		Name:      "visitor",
		Email:     "v@example.com",
		Message:   "nice",
	}
	require.NoError(t, env.db.CommentRepo().Add(&comment))

	w := env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/projects/%d", project.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, env.gdb.Model(&models.Comment{}).Where("project_id = ?", project.ID).Count(&count).Error)
	require.Zero(t, count)

	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/projects/%d", project.ID), nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

type projectListResponse struct {
	Projects    []models.ProjectResponse `json:"projects"`
	Total       int64                    `json:"total"`
	Pages       int                      `json:"pages"`
	CurrentPage int                      `json:"current_page"`
	HasNext     bool                     `json:"has_next"`
	HasPrev     bool                     `json:"has_prev"`
}

func TestListProjectsPagination(t *testing.T) {
	env := setupTestEnv(t)
	for i := 0; i < 7; i++ {
		env.createProject(t, fmt.Sprintf("Project %d", i))
	}

	var response projectListResponse

	w := env.doJSON(t, http.MethodGet, "/api/projects?page=1&per_page=3", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &response)
	require.Len(t, response.Projects, 3)
	require.EqualValues(t, 7, response.Total)
	require.Equal(t, 3, response.Pages)
	require.Equal(t, 1, response.CurrentPage)
	require.True(t, response.HasNext)
	require.False(t, response.HasPrev)

	w = env.doJSON(t, http.MethodGet, "/api/projects?page=3&per_page=3", nil, "")
	decodeBody(t, w, &response)
	require.Len(t, response.Projects, 1)
	require.False(t, response.HasNext)
	require.True(t, response.HasPrev)
}

func TestListProjectsPerPageClamped(t *testing.T) {
	env := setupTestEnv(t)
	for i := 0; i < 12; i++ {
		env.createProject(t, fmt.Sprintf("Project %d", i))
	}

	var response projectListResponse

	// Over-limit values clamp to the maximum page size instead of resetting
	// to the default of 10.
	w := env.doJSON(t, http.MethodGet, "/api/projects?per_page=200", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &response)
	require.Len(t, response.Projects, 12)
	require.Equal(t, 1, response.Pages)
	require.False(t, response.HasNext)
}

func TestListProjectsFilters(t *testing.T) {
	env := setupTestEnv(t)

	category := models.Category{Name: "Web Development"}
	require.NoError(t, env.db.CategoryRepo().Add(&category))

	webProject := models.Project{
		Title:       "Portfolio Site",
		Description: "built with chi",
		ImageURL:    "/uploads/p.png",
		CategoryID:  &category.ID,
		Featured:    true,
	}
	require.NoError(t, env.db.ProjectRepo().Add(&webProject))
	env.createProject(t, "CLI Tool")

	var response projectListResponse

	w := env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/projects?category=%d", category.ID), nil, "")
	decodeBody(t, w, &response)
	require.Len(t, response.Projects, 1)
	require.Equal(t, "Portfolio Site", response.Projects[0].Title)
	require.NotNil(t, response.Projects[0].Category)
	require.Equal(t, "Web Development", response.Projects[0].Category.Name)

	// search is case-insensitive and matches title or description
	w = env.doJSON(t, http.MethodGet, "/api/projects?search=CHI", nil, "")
	decodeBody(t, w, &response)
	require.Len(t, response.Projects, 1)
	require.Equal(t, "Portfolio Site", response.Projects[0].Title)

	w = env.doJSON(t, http.MethodGet, "/api/projects?featured=true", nil, "")
	decodeBody(t, w, &response)
	require.Len(t, response.Projects, 1)
	require.True(t, response.Projects[0].Featured)
}

func TestListProjectsSort(t *testing.T) {
	env := setupTestEnv(t)
	env.createProject(t, "Bravo")
	env.createProject(t, "Alpha")

	var response projectListResponse

	w := env.doJSON(t, http.MethodGet, "/api/projects?sort=title", nil, "")
	decodeBody(t, w, &response)
	require.Equal(t, "Alpha", response.Projects[0].Title)
	require.Equal(t, "Bravo", response.Projects[1].Title)

	// unrecognized sort keys fall back to newest first
	w = env.doJSON(t, http.MethodGet, "/api/projects?sort=bogus", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &response)
	require.Len(t, response.Projects, 2)
}
