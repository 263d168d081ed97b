package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"codecraft/internal/config"
	"codecraft/internal/pkg/logger"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.github.com"

	reposPerPage   = 6
	commitsPerPage = 5
)

type User struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	HTMLURL     string `json:"html_url"`
	Bio         string `json:"bio"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

type Repo struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	HTMLURL     string    `json:"html_url"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Commit struct {
	SHA     string
	Message string
	Author  string
	Date    time.Time
	URL     string
}

// Client reads public profile data. Non-2xx answers are not errors: User
// returns nil and the list calls return an empty slice.
type Client interface {
	User(ctx context.Context, username string) (*User, error)
	Repos(ctx context.Context, username string) ([]Repo, error)
	RecentCommits(ctx context.Context, owner, repo string) ([]Commit, error)
}

type httpClient struct {
	baseURL string
	token   string
	client  *http.Client
	log     logger.Logger
}

func NewClient(cfg config.GitHubConfig, log logger.Logger) Client {
	if log == nil {
		log = logger.NewNop()
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpClient{
		baseURL: base,
		token:   cfg.Token,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *httpClient) User(ctx context.Context, username string) (*User, error) {
	var u User
	ok, err := c.get(ctx, "/users/"+url.PathEscape(username), nil, &u)
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

// Repos lists the most recently updated repositories first.
func (c *httpClient) Repos(ctx context.Context, username string) ([]Repo, error) {
	q := url.Values{}
	q.Set("sort", "updated")
	q.Set("per_page", strconv.Itoa(reposPerPage))

	repos := []Repo{}
	ok, err := c.get(ctx, "/users/"+url.PathEscape(username)+"/repos", q, &repos)
	if err != nil {
		return nil, err
	}
	if !ok || repos == nil {
		return []Repo{}, nil
	}
	return repos, nil
}

type commitPayload struct {
	SHA     string `json:"sha"`
	HTMLURL string `json:"html_url"`
	Commit  struct {
		Message string `json:"message"`
		Author  struct {
			Name string    `json:"name"`
			Date time.Time `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

// RecentCommits returns the newest commits on the default branch, newest
// first.
func (c *httpClient) RecentCommits(ctx context.Context, owner, repo string) ([]Commit, error) {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(commitsPerPage))

	var payload []commitPayload
	ok, err := c.get(ctx, "/repos/"+url.PathEscape(owner)+"/"+url.PathEscape(repo)+"/commits", q, &payload)
	if err != nil {
		return nil, err
	}
	out := make([]Commit, 0, len(payload))
	if !ok {
		return out, nil
	}
	for _, p := range payload {
		msg, _, _ := strings.Cut(p.Commit.Message, "\n")
		out = append(out, Commit{
			SHA:     p.SHA,
			Message: msg,
			Author:  p.Commit.Author.Name,
			Date:    p.Commit.Author.Date,
			URL:     p.HTMLURL,
		})
	}
	return out, nil
}

// get returns false without an error when GitHub answered non-2xx.
func (c *httpClient) get(ctx context.Context, path string, q url.Values, out any) (bool, error) {
	endpoint := c.baseURL + path
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Warn("[GitHub] upstream returned non-2xx",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("body", strings.TrimSpace(string(rb))),
		)
		return false, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("decode github %s: %w", path, err)
	}
	return true, nil
}
