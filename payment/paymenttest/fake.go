// Package paymenttest provides an in-memory payment gateway for tests.
package paymenttest

import (
	"context"
	"fmt"
	"sync"

	"barmaja/payment"
)

// Gateway records every call. Set Decline to make charges fail.
type Gateway struct {
	mu      sync.Mutex
	Decline *payment.DeclinedError
	Err     error
	Charges []payment.ChargeRequest
	Refunds []string
}

func (g *Gateway) Charge(_ context.Context, req payment.ChargeRequest) (*payment.ChargeResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Charges = append(g.Charges, req)
	if g.Err != nil {
		return nil, g.Err
	}
	if g.Decline != nil {
		return nil, g.Decline
	}
	return &payment.ChargeResult{
		TransactionID: fmt.Sprintf("pi_test_%d", len(g.Charges)),
		Status:        "succeeded",
		Raw:           map[string]interface{}{"amount": req.AmountCents},
	}, nil
}

func (g *Gateway) Refund(_ context.Context, transactionID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Refunds = append(g.Refunds, transactionID)
	return nil
}

func (g *Gateway) ChargeCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.Charges)
}
