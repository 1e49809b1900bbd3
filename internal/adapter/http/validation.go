package http

import (
	"math"
	"reflect"
	"regexp"
	"strings"

	"microfinance-backoffice/internal/domain/loan"
	"microfinance-backoffice/pkg/id"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

const minNRCLength = 6

var reMobile = regexp.MustCompile(`^[+]?[0-9\s\-()]{7,15}$`)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// money fields are validated as float64 so gt/gte/dec2 apply
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// public ids = 32-char lowercase hex
	_ = v.RegisterValidation("hex32", func(fl validator.FieldLevel) bool {
		return id.Valid(fl.Field().String())
	})
	// max 2 decimal places
	_ = v.RegisterValidation("dec2", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return math.Abs(f-(math.Round(f*100)/100)) < 1e-9
	})
	_ = v.RegisterValidation("nrc", func(fl validator.FieldLevel) bool {
		return len(strings.TrimSpace(fl.Field().String())) >= minNRCLength
	})
	_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		// blank counts as absent
		m := strings.TrimSpace(fl.Field().String())
		return m == "" || reMobile.MatchString(m)
	})
	// a status a repayment may leave the loan in
	_ = v.RegisterValidation("loanstatus", func(fl validator.FieldLevel) bool {
		s := loan.Status(fl.Field().String())
		return s.Valid() && s != loan.StatusPending
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "hex32":
			out = append(out, FieldError{Field: field, Message: "must be 32-char lowercase hex"})
		case "dec2":
			out = append(out, FieldError{Field: field, Message: "must have at most 2 decimal places"})
		case "nrc":
			out = append(out, FieldError{Field: field, Message: "must be at least 6 characters"})
		case "mobile":
			out = append(out, FieldError{Field: field, Message: "must be a phone number of 7 to 15 digits"})
		case "loanstatus":
			out = append(out, FieldError{Field: field, Message: "must be one of Active, Overdue, Default, Completed"})
		case "datetime":
			out = append(out, FieldError{Field: field, Message: "must be a date in " + e.Param() + " format"})
		case "gt":
			out = append(out, FieldError{Field: field, Message: "must be greater than " + e.Param()})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		case "max":
			out = append(out, FieldError{Field: field, Message: "must be at most " + e.Param() + " characters"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
