package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/showsphere/showsphere-cli/internal/domain"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("seat_label", validateSeatLabel)
	validator.RegisterValidation("decimal_positive", validateDecimalPositive)

	return validator
}

func validateSeatLabel(fl validator.FieldLevel) bool {
	_, err := domain.ParseSeatLabel(fl.Field().String())
	return err == nil
}

func validateDecimalPositive(fl validator.FieldLevel) bool {
	amount, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	return amount.IsPositive()
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "alpha":
		return "must contain only letters"
	case "min":
		return fmt.Sprintf("must have at least %s elements", err.Param())
	case "max":
		return fmt.Sprintf("must have at most %s elements", err.Param())
	case "seat_label":
		return "must be a seat label like A1 or C5"
	case "decimal_positive":
		return "must be a positive amount"
	default:
		return "is invalid"
	}
}
