package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danupratama/portfolio-backend/models"
)

func TestHealth(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodGet, "/api/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	decodeBody(t, w, &response)
	require.Equal(t, "ok", response["status"])
}

func TestStats(t *testing.T) {
	env := setupTestEnv(t)
	project := env.createProject(t, "Counted Project")

	require.NoError(t, env.db.ProjectRepo().IncrementViews(project.ID))
	require.NoError(t, env.db.ProjectRepo().IncrementViews(project.ID))
	_, err := env.db.ProjectRepo().IncrementLikes(project.ID)
	require.NoError(t, err)

	draft := models.Article{Title: "Draft", Slug: "draft", Content: "x"}
	require.NoError(t, env.db.ArticleRepo().Add(&draft))
	published := models.Article{Title: "Live", Slug: "live", Content: "x", Published: true}
	require.NoError(t, env.db.ArticleRepo().Add(&published))

	pending := models.Comment{ProjectID: project.ID, Name: "a", Email: "a@example.com", Message: "m"}
	require.NoError(t, env.db.CommentRepo().Add(&pending))
	approved := models.Comment{ProjectID: project.ID, Name: "b", Email: "b@example.com", Message: "m", Approved: true}
	require.NoError(t, env.db.CommentRepo().Add(&approved))

	contact := models.Contact{Name: "c", Email: "c@example.com", Message: "m"}
	require.NoError(t, env.db.ContactRepo().Add(&contact))

	w := env.doJSON(t, http.MethodGet, "/api/stats", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	decodeBody(t, w, &response)
	require.Equal(t, "ok", response["status"])
	require.EqualValues(t, 1, response["total_projects"])
	require.EqualValues(t, 2, response["total_views"])
	require.EqualValues(t, 1, response["total_likes"])
	// Drafts and unapproved comments are excluded from the counters.
	require.EqualValues(t, 1, response["total_articles"])
	require.EqualValues(t, 1, response["total_comments"])
	require.EqualValues(t, 1, response["unread_messages"])
}

func TestDashboardRequiresAuth(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodGet, "/api/dashboard", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDashboardSlices(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.createUser(t, "owner")

	for i := 0; i < 7; i++ {
		project := env.createProject(t, "Project "+string(rune('A'+i)))
		for j := 0; j <= i; j++ {
			require.NoError(t, env.db.ProjectRepo().IncrementViews(project.ID))
		}
	}

	w := env.doJSON(t, http.MethodGet, "/api/dashboard", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		RecentProjects  []models.ProjectResponse `json:"recent_projects"`
		RecentComments  []models.CommentResponse `json:"recent_comments"`
		RecentContacts  []models.ContactResponse `json:"recent_contacts"`
		PopularProjects []models.ProjectResponse `json:"popular_projects"`
	}
	decodeBody(t, w, &response)

	require.Len(t, response.RecentProjects, 5)
	require.Len(t, response.PopularProjects, 5)
	require.Empty(t, response.RecentComments)
	require.Empty(t, response.RecentContacts)

	// Popular projects are ranked by views.
	require.Equal(t, "Project G", response.PopularProjects[0].Title)
}
