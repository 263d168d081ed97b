package dto

type ProjectRequest struct {
	RepoURL     string `json:"repo_url" validate:"required,max=300"`
	Title       string `json:"title" validate:"max=120"`
	Description string `json:"description" validate:"max=2000"`
}
