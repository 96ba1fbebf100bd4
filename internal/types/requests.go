package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxTextLength is the longest input accepted, in characters.
const MaxTextLength = 5000

// SimplifyRequest represents a request to simplify text for a reading profile.
type SimplifyRequest struct {
	Text           string `json:"text" validate:"required,max=5000"`
	ReadingProfile string `json:"readingProfile,omitempty" validate:"omitempty,oneof=child standard neurodivergent elderly academic"`
}

// TranslateRequest represents a request to translate text.
type TranslateRequest struct {
	Text           string `json:"text" validate:"required,max=5000"`
	TargetLanguage string `json:"targetLanguage" validate:"required,oneof=english spanish hindi french"`
	HistoryID      string `json:"historyId,omitempty" validate:"omitempty,uuid"`
}

// Normalize trims the text and lower-cases the profile id.
func (r *SimplifyRequest) Normalize() {
	r.Text = strings.TrimSpace(r.Text)
	r.ReadingProfile = strings.ToLower(strings.TrimSpace(r.ReadingProfile))
}

// Validate validates the SimplifyRequest using the validator.
func (r *SimplifyRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Profile returns the requested profile id, defaulting to "standard".
func (r *SimplifyRequest) Profile() string {
	if r.ReadingProfile == "" {
		return "standard"
	}
	return r.ReadingProfile
}

// Normalize trims the text and lower-cases the target language.
func (r *TranslateRequest) Normalize() {
	r.Text = strings.TrimSpace(r.Text)
	r.TargetLanguage = strings.ToLower(strings.TrimSpace(r.TargetLanguage))
	r.HistoryID = strings.TrimSpace(r.HistoryID)
}

// Validate validates the TranslateRequest using the validator.
func (r *TranslateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
