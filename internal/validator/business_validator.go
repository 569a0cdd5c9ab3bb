package validator

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/CareerPath-2025/recommendation-service/internal/models"
)

// BusinessValidator handles business rule validation beyond struct tags
type BusinessValidator struct {
	validate *validator.Validate
}

// NewBusinessValidator creates a business validator sharing the custom
// rule registrations of the main validator.
func NewBusinessValidator(validate *validator.Validate) *BusinessValidator {
	return &BusinessValidator{validate: validate}
}

// Validate validates struct tags and converts failures
func (bv *BusinessValidator) Validate(s interface{}) ValidationErrors {
	if err := bv.validate.Struct(s); err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

// ValidateOpportunityCreate validates an opportunity posting
func (bv *BusinessValidator) ValidateOpportunityCreate(req *models.OpportunityCreateRequest) ValidationErrors {
	errors := bv.Validate(req)

	// Skill lists must not carry blank or duplicate entries
	seen := make(map[string]bool, len(req.SkillsRequired))
	for i, skill := range req.SkillsRequired {
		trimmed := strings.TrimSpace(skill)
		if trimmed == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("skills_required[%d]", i),
				Message: "skill cannot be empty",
				Value:   skill,
				Rule:    "business_logic",
			})
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("skills_required[%d]", i),
				Message: "duplicate skill in requirement list",
				Value:   skill,
				Rule:    "business_logic",
			})
		}
		seen[key] = true
	}

	// Postings dated in the future are scheduled, not published
	if req.PostedAt != nil && req.PostedAt.After(time.Now().Add(24*time.Hour)) {
		errors = append(errors, ValidationError{
			Field:   "posted_at",
			Message: "cannot be more than one day in the future",
			Value:   req.PostedAt,
			Rule:    "business_logic",
		})
	}

	return errors
}

// ValidateGenerateRequest validates a recommendation generation request
func (bv *BusinessValidator) ValidateGenerateRequest(req *models.GenerateRecommendationsRequest) ValidationErrors {
	errors := bv.Validate(req)

	switch req.Type {
	case models.RecommendInternships, models.RecommendProjects, models.RecommendSkills:
	default:
		errors = append(errors, ValidationError{
			Field:   "type",
			Message: "must be internships, projects or skills",
			Value:   req.Type,
			Rule:    "recommendation_type",
		})
	}

	return errors
}
