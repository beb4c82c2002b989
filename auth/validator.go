package auth

import (
	"collab-hub/errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func validateClaims(claims Claims) error {
	if err := validate.Struct(claims); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrUnauthenticated, err)
	}
	return nil
}
