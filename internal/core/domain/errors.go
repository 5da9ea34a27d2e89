package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks input the engine refuses, such as checking out an
	// empty selection.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an unknown event, seat or booking.
	ErrNotFound = errors.New("not found")

	ErrPaymentDeclined = errors.New("payment declined")
)

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}
