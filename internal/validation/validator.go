package validation

import (
	"strings"

	"notesquiz/internal/domain"
	"notesquiz/internal/dto"
)

// Validator provides request validation functionality
type Validator struct {
	maxNotesLen int
	maxTitleLen int
}

// NewValidator creates a new validator instance
func NewValidator(maxNotesLen, maxTitleLen int) *Validator {
	return &Validator{
		maxNotesLen: maxNotesLen,
		maxTitleLen: maxTitleLen,
	}
}

// ValidateCreateQuizRequest validates the create quiz request
func (v *Validator) ValidateCreateQuizRequest(req *dto.CreateQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Notes) == "" {
		errors = append(errors, domain.NewMissingFieldError("notes"))
	} else if len(req.Notes) > v.maxNotesLen {
		errors = append(errors, domain.NewOutOfRangeError("notes", len(req.Notes), 1, v.maxNotesLen))
	}

	if len(req.Title) > v.maxTitleLen {
		errors = append(errors, domain.NewOutOfRangeError("title", len(req.Title), 0, v.maxTitleLen))
	}

	return errors
}
