package service

import (
	"errors"
	"fmt"

	"restaurant-orders/pkg/validator"

	"gorm.io/gorm"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrPriceNotFound      = errors.New("price not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrStaffInactive      = errors.New("staff account is disabled")
)

// ValidationError reports the first field that failed request validation
type ValidationError struct {
	Field string
	Tag   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", e.Field, e.Tag)
}

func validate(req interface{}) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Field: errs[0].FailedField, Tag: errs[0].Tag}
	}
	return nil
}

// notFound maps gorm.ErrRecordNotFound to the given sentinel, tagged with the id
func notFound(err error, sentinel error, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %d", sentinel, id)
	}
	return err
}
