package project

import (
	"time"

	"github.com/google/uuid"
)

type Commit struct {
	SHA     string    `json:"sha"`
	Message string    `json:"message"`
	Author  string    `json:"author"`
	Date    time.Time `json:"date"`
	URL     string    `json:"url"`
}

// Project is a portfolio entry backed by a public GitHub repository. It is
// verified when the repository showed recent commit history at submit time.
type Project struct {
	ID           uuid.UUID  `json:"id"`
	SessionID    uuid.UUID  `json:"-"`
	RepoURL      string     `json:"repo_url"`
	Owner        string     `json:"owner"`
	Repo         string     `json:"repo"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Verified     bool       `json:"verified"`
	Commits      []Commit   `json:"commits"`
	LastCommitAt *time.Time `json:"last_commit_at,omitempty"`
	SubmittedAt  time.Time  `json:"submitted_at"`
}
