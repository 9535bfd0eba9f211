package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mkartas/hostel-hub/store-service/internal/validation"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrValidation         = errors.New("validation failed")
)

func validateStruct(v any) error {
	if err := validation.Get().Struct(v); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(validation.ParseErrors(err), "; "))
	}
	return nil
}
