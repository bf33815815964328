package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var ErrValidationFailed = errors.New("validation failed")

// Violation is a single field-level validation failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidationError wraps the full set of collected violations. A write is
// rejected with every applicable violation at once, not just the first.
func NewValidationError(violations []Violation) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidationFailed,
		Details:    summarize(violations),
		Violations: violations,
	}
}

func summarize(violations []Violation) string {
	fields := make([]string, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, v.Field)
	}
	return fmt.Sprintf("invalid fields: %s", strings.Join(fields, ", "))
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}
