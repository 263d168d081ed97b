package dto

type PostJobRequest struct {
	Title          string   `json:"title" validate:"required,max=120"`
	Company        string   `json:"company" validate:"required,max=120"`
	Location       string   `json:"location" validate:"max=120"`
	Type           string   `json:"type" validate:"omitempty,oneof=Full-time Part-time Contract Internship"`
	Salary         string   `json:"salary" validate:"max=60"`
	RequiredSkills []string `json:"required_skills" validate:"required,min=1,max=20,dive,required,max=50"`
	Tags           []string `json:"tags" validate:"max=10,dive,max=50"`
}

type ApplyRequest struct {
	ResumeURL   string `json:"resume_url" validate:"omitempty,url,max=500"`
	CoverLetter string `json:"cover_letter" validate:"max=5000"`
}

type UpdateApplicationRequest struct {
	Status string `json:"status" validate:"required,oneof=applied reviewing interview rejected offer"`
	Notes  string `json:"notes" validate:"max=2000"`
}
