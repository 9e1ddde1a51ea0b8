package validation

import (
	"fmt"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/pritam-ray/mitthuug-sub001/internal/schema"
)

// New returns a configured validator with custom struct-level
// validation registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// an order's monetary breakdown must add up at creation
	v.RegisterStructValidation(orderInsertStructValidation, schema.OrderInsert{})

	return v
}

// orderInsertStructValidation verifies total_amount = subtotal + tax + delivery_fee.
func orderInsertStructValidation(sl validatorv10.StructLevel) {
	ins := sl.Current().Interface().(schema.OrderInsert)

	sum := ins.Subtotal.Add(ins.Tax).Add(ins.DeliveryFee)
	if !sum.Equal(ins.TotalAmount) {
		sl.ReportError(ins.TotalAmount, "total_amount", "TotalAmount", "total_match_breakdown",
			fmt.Sprintf("breakdown sum %s != total %s", sum, ins.TotalAmount))
	}
}
