package handlers

import (
	stderrors "errors"
	"reflect"
	"strings"

	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CustomValidator implements echo.Validator interface
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a validator with the dashboard's custom rules.
func NewValidator() echo.Validator {
	v := validator.New()

	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("calendar_date", validateCalendarDate)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"form", "query", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	return &CustomValidator{validator: v}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

// validationErrorCode picks the notification code for the first failed
// rule of a validator error.
func validationErrorCode(err error) errors.ErrorCode {
	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return errors.ValidationGeneral
	}

	switch fieldErrors[0].Tag() {
	case "required":
		return errors.ValidationRequiredField
	case "positive_amount":
		return errors.ValidationInvalidAmount
	case "calendar_date":
		return errors.ValidationInvalidDate
	case "transaction_type":
		return errors.ValidationInvalidType
	default:
		return errors.ValidationGeneral
	}
}

// validateTransactionType checks the type against the two-value enum.
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

// validatePositiveAmount checks that a form amount parses as a strictly
// positive decimal. Amounts arrive as strings from the form inputs.
func validatePositiveAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return amount.GreaterThan(decimal.Zero)
}

// validateCalendarDate checks the wire date format.
func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := models.ParseDate(fl.Field().String())
	return err == nil
}
