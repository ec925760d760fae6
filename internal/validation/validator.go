package validation

import (
	"strings"

	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
)

const (
	maxNameLength      = 100
	maxStatementLength = 500
	maxQuestionCount   = 50
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateLoginRequest validates the login payload shape.
func (v *Validator) ValidateLoginRequest(req *dto.LoginRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(req.Username) == "" {
		errs = append(errs, domain.NewMissingFieldError("username"))
	}
	if req.Password == "" {
		errs = append(errs, domain.NewMissingFieldError("password"))
	}
	return errs
}

// ValidateCategoryRequest validates category create/update payloads.
func (v *Validator) ValidateCategoryRequest(req *dto.CreateCategoryRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs = append(errs, domain.NewMissingFieldError("name"))
	} else if len(name) > maxNameLength {
		errs = append(errs, domain.NewOutOfRangeError("name", len(name), 1, maxNameLength))
	}
	return errs
}

// ValidateQuizRequest validates quiz create/update payloads.
func (v *Validator) ValidateQuizRequest(req *dto.CreateQuizRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, domain.NewMissingFieldError("name"))
	} else if len(req.Name) > maxNameLength {
		errs = append(errs, domain.NewOutOfRangeError("name", len(req.Name), 1, maxNameLength))
	}
	if strings.TrimSpace(req.CategoryName) == "" {
		errs = append(errs, domain.NewMissingFieldError("category_name"))
	}
	if len(req.Description) > maxStatementLength {
		errs = append(errs, domain.NewOutOfRangeError("description", len(req.Description), 0, maxStatementLength))
	}
	return errs
}

// ValidateQuestionRequest validates question create/update payloads,
// including the rule that at least one option must be marked correct.
func (v *Validator) ValidateQuestionRequest(req *dto.CreateQuestionRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(req.QuestionStatement) == "" {
		errs = append(errs, domain.NewMissingFieldError("question_statement"))
	} else if len(req.QuestionStatement) > maxStatementLength {
		errs = append(errs, domain.NewOutOfRangeError("question_statement", len(req.QuestionStatement), 1, maxStatementLength))
	}

	if strings.TrimSpace(req.ComplexLevel) == "" {
		errs = append(errs, domain.NewMissingFieldError("complex_level"))
	} else if _, ok := domain.ParseComplexity(req.ComplexLevel); !ok {
		errs = append(errs, domain.NewInvalidFormatError("complex_level", req.ComplexLevel))
	}

	if strings.TrimSpace(req.QuizUniqueID) == "" {
		errs = append(errs, domain.NewMissingFieldError("quiz_unique_id"))
	}

	if len(req.Options) == 0 {
		errs = append(errs, domain.NewMissingFieldError("options"))
		return errs
	}

	hasCorrect := false
	for _, opt := range req.Options {
		if strings.TrimSpace(opt.OptionStatement) == "" {
			errs = append(errs, domain.NewMissingFieldError("options.option_statement"))
		}
		if opt.IsCorrect == nil {
			errs = append(errs, domain.NewMissingFieldError("options.is_correct"))
		} else if *opt.IsCorrect {
			hasCorrect = true
		}
	}
	if !hasCorrect {
		errs = append(errs, domain.NewFieldError("options", "at least one option must be marked as correct"))
	}

	return errs
}

// ValidateQuestionFilter validates the filtered-questions query parameters.
func (v *Validator) ValidateQuestionFilter(complexLevel string, count int) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if _, ok := domain.ParseComplexity(complexLevel); !ok {
		errs = append(errs, domain.NewInvalidFormatError("complex_level", complexLevel))
	}
	if count <= 0 || count > maxQuestionCount {
		errs = append(errs, domain.NewOutOfRangeError("question_count", count, 1, maxQuestionCount))
	}
	return errs
}
