package handlers

import (
	"fmt"
	"reflect"

	"github.com/SscSPs/cashflow_app/internal/core/domain"
	"github.com/SscSPs/cashflow_app/internal/utils/accounting"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	decimalGT0Tag    = "decimal_gt0"
	decimal2DPTag    = "decimal_2dp"
	paymentMethodTag = "payment_method"
)

// decimalValue exposes decimal.Decimal to the validator as its string form.
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func validateDecimalGT0(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.IsPositive()
}

func validateDecimal2DP(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return accounting.HasAmountPrecision(d)
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	return domain.PaymentMethod(fl.Field().String()).IsValid()
}

// RegisterValidators installs the custom binding tags on gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	if err := v.RegisterValidation(decimalGT0Tag, validateDecimalGT0); err != nil {
		return fmt.Errorf("failed to register %s: %w", decimalGT0Tag, err)
	}
	if err := v.RegisterValidation(decimal2DPTag, validateDecimal2DP); err != nil {
		return fmt.Errorf("failed to register %s: %w", decimal2DPTag, err)
	}
	if err := v.RegisterValidation(paymentMethodTag, validatePaymentMethod); err != nil {
		return fmt.Errorf("failed to register %s: %w", paymentMethodTag, err)
	}
	return nil
}
