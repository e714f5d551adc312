// Package payment charges students for paid courses.
package payment

import (
	"context"
	"fmt"
)

type ChargeRequest struct {
	AmountCents    int64
	Currency       string
	PaymentMethod  string // gateway payment method token
	CustomerRef    string
	Description    string
	IdempotencyKey string
}

type ChargeResult struct {
	TransactionID string
	Status        string
	Raw           map[string]interface{}
}

// Gateway is the external payment collaborator.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
	Refund(ctx context.Context, transactionID string) error
}

// DeclinedError is a charge the gateway refused. Reason is safe to show to
// the customer.
type DeclinedError struct {
	Reason string
	Code   string
}

func (e *DeclinedError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("payment declined (%s): %s", e.Code, e.Reason)
	}
	return "payment declined: " + e.Reason
}
