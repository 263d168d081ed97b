package dto

type CreateHackathonRequest struct {
	Title       string   `json:"title" validate:"required,max=120"`
	Organizer   string   `json:"organizer" validate:"required,max=120"`
	Date        string   `json:"date" validate:"required,max=60"`
	Prizes      string   `json:"prizes" validate:"max=120"`
	Description string   `json:"description" validate:"max=2000"`
	Tags        []string `json:"tags" validate:"max=10,dive,max=50"`
}

type RegisterHackathonRequest struct {
	TeamName    string   `json:"team_name" validate:"max=100"`
	TeamMembers []string `json:"team_members" validate:"max=10,dive,max=100"`
}
