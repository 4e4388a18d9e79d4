package usecase

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"github.com/arclight-digital/arclight-backend/internal/entity"
)

// Server-side re-validation of intake payloads. The site forms validate on
// the client already; this layer re-checks everything so the backend stands
// on its own.

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationFailed(errs []ValidationError) error {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return &DomainError{Code: CodeValidation, Message: strings.Join(msgs, "; ")}
}

func ValidateSubmitLeadInput(input SubmitLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	errors = append(errors, validateEmail(input.Email)...)

	if len(input.Message) > 5000 {
		errors = append(errors, ValidationError{"message", "must not exceed 5000 characters"})
	}

	return errors
}

func ValidateSubmitConsultationInput(input SubmitConsultationInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}

	errors = append(errors, validateEmail(input.Email)...)

	if strings.TrimSpace(input.BusinessInfo) == "" {
		errors = append(errors, ValidationError{"business_info", "is required"})
	}
	if strings.TrimSpace(input.Message) == "" {
		errors = append(errors, ValidationError{"message", "is required"})
	}
	if input.Website != "" && !isValidURL(input.Website) {
		errors = append(errors, ValidationError{"website", "must be a valid URL"})
	}

	return errors
}

func ValidateSubmitApplicationInput(input SubmitApplicationInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.FullName) == "" {
		errors = append(errors, ValidationError{"full_name", "is required"})
	}

	errors = append(errors, validateEmail(input.Email)...)

	if strings.TrimSpace(input.RoleAppliedFor) == "" {
		errors = append(errors, ValidationError{"role_applied_for", "is required"})
	} else if !entity.ValidRole(input.RoleAppliedFor) {
		errors = append(errors, ValidationError{"role_applied_for", "is not an open role"})
	}

	if input.PortfolioURL != "" && !isValidURL(input.PortfolioURL) {
		errors = append(errors, ValidationError{"portfolio_url", "must be a valid URL"})
	}
	if input.ResumeLink != "" && !isValidURL(input.ResumeLink) {
		errors = append(errors, ValidationError{"resume_link", "must be a valid URL"})
	}
	if input.Resume != nil && input.ResumeLink != "" {
		errors = append(errors, ValidationError{"resume", "send either a file or a link, not both"})
	}
	if input.Resume != nil && len(input.Resume.Data) == 0 {
		errors = append(errors, ValidationError{"resume", "uploaded file is empty"})
	}

	return errors
}

func validateEmail(email string) []ValidationError {
	if strings.TrimSpace(email) == "" {
		return []ValidationError{{"email", "is required"}}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return []ValidationError{{"email", "is invalid"}}
	}
	return nil
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
