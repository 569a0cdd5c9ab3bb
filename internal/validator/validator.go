package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/CareerPath-2025/recommendation-service/internal/models"
)

// Validator wraps struct validation and business rule validation
type Validator struct {
	validate *validator.Validate
	business *BusinessValidator
}

// New creates a validator with all custom rules registered
func New() *Validator {
	validate := validator.New()
	registerCustomRules(validate)

	return &Validator{
		validate: validate,
		business: NewBusinessValidator(validate),
	}
}

// Validate runs struct tag validation
func (v *Validator) Validate(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		return err
	}
	return nil
}

// GetBusinessValidator returns the business rule validator
func (v *Validator) GetBusinessValidator() *BusinessValidator {
	return v.business
}

var skillNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 .+#/_-]*$`)

func registerCustomRules(validate *validator.Validate) {
	// Recommendation type: internships, projects or skills
	validate.RegisterValidation("recommendation_type", func(fl validator.FieldLevel) bool {
		t := models.RecommendationType(fl.Field().String())
		return t == models.RecommendInternships || t == models.RecommendProjects || t == models.RecommendSkills
	})

	// Skill names: printable identifiers like "Node.js", "C++", "REST APIs"
	validate.RegisterValidation("skill_name", func(fl validator.FieldLevel) bool {
		name := strings.TrimSpace(fl.Field().String())
		return len(name) >= 1 && len(name) <= 100 && skillNamePattern.MatchString(name)
	})

	// Proficiency level enum
	validate.RegisterValidation("proficiency_level", func(fl validator.FieldLevel) bool {
		level := models.SkillLevel(fl.Field().String())
		switch level {
		case models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced, models.LevelExpert:
			return true
		}
		return false
	})
}

// ValidationError represents a single field validation failure
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s %s", ve[0].Field, ve[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(ve))
}

// ToResponse converts failures into the API error payload shape.
func (ve ValidationErrors) ToResponse() []models.ValidationErrorResponse {
	out := make([]models.ValidationErrorResponse, len(ve))
	for i, e := range ve {
		value := ""
		if e.Value != nil {
			value = fmt.Sprintf("%v", e.Value)
		}
		out[i] = models.ValidationErrorResponse{
			Field:   e.Field,
			Message: e.Message,
			Value:   value,
			Code:    e.Rule,
		}
	}
	return out
}

// ToValidationErrors converts go-playground validator errors to our format
func ToValidationErrors(err error) ValidationErrors {
	var out ValidationErrors

	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			out = append(out, ValidationError{
				Field:   strings.ToLower(fe.Field()),
				Message: messageForTag(fe),
				Value:   fe.Value(),
				Rule:    fe.Tag(),
			})
		}
		return out
	}

	return ValidationErrors{{Field: "", Message: err.Error(), Rule: "unknown"}}
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "url":
		return "must be a valid URL"
	case "recommendation_type":
		return "must be internships, projects or skills"
	case "skill_name":
		return "must be a valid skill name"
	case "proficiency_level":
		return "must be Beginner, Intermediate, Advanced or Expert"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
