package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// SetupValidator registers custom binding rules on gin's validator
// engine. Call once at startup before handling requests.
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("dgt0", decimalGreaterThanZero)
		_ = v.RegisterValidation("dgte0", decimalGreaterThanOrEqualZero)
	}
}

// dgt0 requires a decimal field to be strictly positive
func decimalGreaterThanZero(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && d.IsPositive()
}

// dgte0 requires a decimal field to be zero or positive
func decimalGreaterThanOrEqualZero(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && !d.IsNegative()
}
