package errs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Astemirdum/bookhaven/bookhaven/internal/model"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrMalformed          = errors.New("malformed stored sequence")
	ErrNoAttachment       = errors.New("book has no attachment")
	ErrAttachmentTooLarge = errors.New("attachment too large")
	ErrInvalidDataURI     = errors.New("invalid data uri")
)

// ValidationError is returned when required fields are empty at submission.
type ValidationError struct {
	Fields []string
	Notice model.Notice
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

func NewValidationError(fields []string, description string) *ValidationError {
	return &ValidationError{
		Fields: fields,
		Notice: model.Notice{
			Title:       "Missing Information",
			Description: description,
			Variant:     model.VariantDestructive,
		},
	}
}

func IsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

type ValidationErrorResponse struct {
	Message string       `json:"message"`
	Fields  []string     `json:"fields"`
	Notice  model.Notice `json:"notice"`
}
