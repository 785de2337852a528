package order

import (
	"fmt"
	"math"
	"time"

	"spraying/internal/pkg/errs"
)

// Payment is the settlement record attached by the payment flow. The engine
// only carries it; it never creates or changes one.
type Payment struct {
	amount    float64
	method    string
	reference string
	paidAt    time.Time
}

// NewPayment is used when restoring a persisted payment.
func NewPayment(amount float64, method, reference string, paidAt time.Time) (*Payment, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("payment amount is invalid",
			fmt.Errorf("%v is negative or not finite", amount))
	}
	if method == "" {
		return nil, errs.NewValueIsRequiredError("payment method")
	}
	return &Payment{amount: amount, method: method, reference: reference, paidAt: paidAt.UTC()}, nil
}

// Amount returns the settled sum.
func (p *Payment) Amount() float64 {
	return p.amount
}

// Method returns the payment channel name.
func (p *Payment) Method() string {
	return p.method
}

// Reference returns the external transaction reference.
func (p *Payment) Reference() string {
	return p.reference
}

// PaidAt returns the settlement time.
func (p *Payment) PaidAt() time.Time {
	return p.paidAt
}
