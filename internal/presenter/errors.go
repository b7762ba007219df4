package presenter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/whistler-mcp/internal/core/domain"
)

// ErrorMessage turns a query failure into a message the caller can act on.
// propertyID names the property a single-property query was about and
// is only used for not-found failures.
func ErrorMessage(err error, propertyID string) string {
	var minStay *domain.MinimumStayError
	var unknown *domain.UnknownPropertyError

	switch {
	case errors.As(err, &minStay):
		return MinimumStay(minStay)
	case errors.As(err, &unknown):
		return fmt.Sprintf("Property IDs not found: %s. Use search_properties to find valid IDs.",
			strings.Join(unknown.IDs, ", "))
	case errors.Is(err, domain.ErrNotFound):
		return PropertyNotFound(propertyID)
	case errors.Is(err, domain.ErrInvalidDate):
		return "Invalid date format. Please use YYYY-MM-DD format."
	case errors.Is(err, domain.ErrInvalidRange):
		return "Check-out date must be after check-in date."
	case errors.Is(err, domain.ErrTooFewTargets):
		return fmt.Sprintf("Please provide at least %d property IDs to compare.", domain.MinCompare)
	case errors.Is(err, domain.ErrTooManyTargets):
		return fmt.Sprintf("Please compare no more than %d properties at a time.", domain.MaxCompare)
	case errors.Is(err, domain.ErrInvalidInput):
		return "Invalid input: " + strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": ")
	default:
		return "Error: " + err.Error()
	}
}
