package usecase

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"codecraft/internal/domain/project"
	"codecraft/internal/infrastructure/github"
	"codecraft/internal/pkg/logger"
	"codecraft/internal/pkg/sanitize"
	"codecraft/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	githubLoginPattern = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]{0,38})$`)
	githubRepoPattern  = regexp.MustCompile(`^[A-Za-z0-9._-]{1,100}$`)
)

type GitHubPortfolio struct {
	User  *github.User  `json:"user"`
	Repos []github.Repo `json:"repos"`
}

type ProjectInput struct {
	RepoURL     string
	Title       string
	Description string
}

type PortfolioUsecase interface {
	GitHub(ctx context.Context, username string) (GitHubPortfolio, error)
	SubmitProject(ctx context.Context, sessionID uuid.UUID, in ProjectInput) (project.Project, error)
	ListProjects(ctx context.Context, sessionID uuid.UUID) ([]project.Project, error)
}

type Portfolio struct {
	client   github.Client
	projects repository.ProjectRepository
	log      logger.Logger
}

func NewPortfolioUsecase(client github.Client, projects repository.ProjectRepository, log logger.Logger) *Portfolio {
	if log == nil {
		log = logger.NewNop()
	}
	return &Portfolio{client: client, projects: projects, log: log}
}

// GitHub returns the public profile and the six most recently updated repos.
// An unknown user or an unreachable API yields a nil user and no repos.
func (u *Portfolio) GitHub(ctx context.Context, username string) (GitHubPortfolio, error) {
	username = strings.TrimSpace(username)
	if !githubLoginPattern.MatchString(username) {
		return GitHubPortfolio{}, ErrInvalidInput
	}

	out := GitHubPortfolio{Repos: []github.Repo{}}
	if u.client == nil {
		return out, nil
	}

	user, err := u.client.User(ctx, username)
	if err != nil {
		u.log.Warn("[GitHub] user fetch failed", zap.String("username", username), zap.Error(err))
		return out, nil
	}
	if user == nil {
		return out, nil
	}
	out.User = user

	repos, err := u.client.Repos(ctx, username)
	if err != nil {
		u.log.Warn("[GitHub] repos fetch failed", zap.String("username", username), zap.Error(err))
		return out, nil
	}
	out.Repos = repos
	return out, nil
}

// SubmitProject records a repository as a portfolio project. The project is
// verified when GitHub reports at least one recent commit; a failed lookup
// stores it unverified.
func (u *Portfolio) SubmitProject(ctx context.Context, sessionID uuid.UUID, in ProjectInput) (project.Project, error) {
	owner, repo, err := ParseRepoURL(in.RepoURL)
	if err != nil {
		return project.Project{}, err
	}
	if u.projects == nil {
		return project.Project{}, ErrInternal
	}

	p := project.Project{
		RepoURL:     "https://github.com/" + owner + "/" + repo,
		Owner:       owner,
		Repo:        repo,
		Title:       sanitize.Input(in.Title),
		Description: sanitize.Input(in.Description),
		Commits:     []project.Commit{},
	}
	if p.Title == "" {
		p.Title = repo
	}

	if u.client != nil {
		commits, err := u.client.RecentCommits(ctx, owner, repo)
		if err != nil {
			u.log.Warn("[GitHub] commit verification failed",
				zap.String("owner", owner),
				zap.String("repo", repo),
				zap.Error(err),
			)
		}
		for _, c := range commits {
			p.Commits = append(p.Commits, project.Commit{
				SHA:     c.SHA,
				Message: c.Message,
				Author:  c.Author,
				Date:    c.Date,
				URL:     c.URL,
			})
		}
	}
	if len(p.Commits) > 0 {
		p.Verified = true
		last := p.Commits[0].Date
		p.LastCommitAt = &last
	}

	saved, err := u.projects.CreateProject(ctx, sessionID, p)
	if err != nil {
		return project.Project{}, mapStoreError(err)
	}
	u.log.Info("[Portfolio] project submitted",
		zap.String("repo", owner+"/"+repo),
		zap.Bool("verified", saved.Verified),
	)
	return saved, nil
}

func (u *Portfolio) ListProjects(ctx context.Context, sessionID uuid.UUID) ([]project.Project, error) {
	if u.projects == nil {
		return []project.Project{}, nil
	}
	ps, err := u.projects.ListProjects(ctx, sessionID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return ps, nil
}

// ParseRepoURL accepts github.com/owner/repo with or without a scheme, a
// trailing .git or extra path segments, and returns owner and repo.
func ParseRepoURL(raw string) (string, string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", ErrInvalidInput
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", "", ErrInvalidInput
	}
	host := strings.ToLower(parsed.Hostname())
	if host != "github.com" && host != "www.github.com" {
		return "", "", ErrInvalidInput
	}

	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(parts) < 2 {
		return "", "", ErrInvalidInput
	}
	owner := parts[0]
	repo := strings.TrimSuffix(parts[1], ".git")
	if !githubLoginPattern.MatchString(owner) || !githubRepoPattern.MatchString(repo) {
		return "", "", ErrInvalidInput
	}
	return owner, repo, nil
}
