package dto

type MatchScoreRequest struct {
	Required []string `json:"required" validate:"max=100,dive,max=100"`
	Skills   []string `json:"skills" validate:"max=100,dive,max=100"`
}

type RoadmapRequest struct {
	Goal string `json:"goal" validate:"required,max=500"`
}
