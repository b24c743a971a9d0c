package domain

import (
	"errors"
	"strings"
)

// ValidateDraft checks the form's required-field and minimum rules.
// All violations are joined into one error.
func ValidateDraft(d Draft) error {
	var errs []error
	if strings.TrimSpace(d.Make) == "" {
		errs = append(errs, ErrMakeRequired)
	}
	if strings.TrimSpace(d.Model) == "" {
		errs = append(errs, ErrModelRequired)
	}
	if d.Quantity < 0 {
		errs = append(errs, ErrNegativeQuantity)
	}
	if d.UnitPrice < 0 {
		errs = append(errs, ErrNegativePrice)
	}
	return errors.Join(errs...)
}
