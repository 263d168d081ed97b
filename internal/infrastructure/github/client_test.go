package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codecraft/internal/config"
	"codecraft/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, token string, h http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(config.GitHubConfig{BaseURL: srv.URL, Token: token, Timeout: time.Second}, logger.NewNop())
}

func TestClient_User(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/gopher", r.URL.Path)
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"login":"gopher","name":"Gopher","public_repos":12,"followers":3,"bio":null}`))
	})

	u, err := c.User(context.Background(), "gopher")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "gopher", u.Login)
	assert.Equal(t, 12, u.PublicRepos)
	assert.Empty(t, u.Bio)
}

func TestClient_User_NotFound(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})

	u, err := c.User(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestClient_Repos(t *testing.T) {
	c := newTestClient(t, "secret", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/gopher/repos", r.URL.Path)
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		assert.Equal(t, "6", r.URL.Query().Get("per_page"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"id":1,"name":"codecraft","language":"Go","stargazers_count":5,"updated_at":"2025-02-01T10:00:00Z"}]`))
	})

	repos, err := c.Repos(context.Background(), "gopher")
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "codecraft", repos[0].Name)
	assert.Equal(t, 5, repos[0].Stars)
	assert.Equal(t, 2025, repos[0].UpdatedAt.Year())
}

func TestClient_Repos_Non2xxIsEmpty(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	repos, err := c.Repos(context.Background(), "gopher")
	require.NoError(t, err)
	assert.NotNil(t, repos)
	assert.Empty(t, repos)
}

func TestClient_RecentCommits(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/gopher/codecraft/commits", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		_, _ = w.Write([]byte(`[
			{"sha":"abc","html_url":"https://github.com/gopher/codecraft/commit/abc",
			 "commit":{"message":"Add matcher\n\nlong body","author":{"name":"Gopher","date":"2025-02-03T08:00:00Z"}}}
		]`))
	})

	commits, err := c.RecentCommits(context.Background(), "gopher", "codecraft")
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "abc", commits[0].SHA)
	assert.Equal(t, "Add matcher", commits[0].Message)
	assert.Equal(t, "Gopher", commits[0].Author)
	assert.Equal(t, 3, commits[0].Date.Day())
}

func TestClient_RecentCommits_EmptyRepository(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Git Repository is empty."}`))
	})

	commits, err := c.RecentCommits(context.Background(), "gopher", "empty")
	require.NoError(t, err)
	assert.Empty(t, commits)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c := NewClient(config.GitHubConfig{BaseURL: srv.URL}, nil)
	srv.Close()

	_, err := c.User(context.Background(), "gopher")
	assert.Error(t, err)
}
