package dto

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}
