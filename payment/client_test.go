package payment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargeSucceeds(t *testing.T) {
	var gotKey, gotAuth, gotAmount, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment_intents", r.URL.Path)
		require.NoError(t, r.ParseForm())
		gotKey = r.Header.Get("Idempotency-Key")
		gotAuth = r.Header.Get("Authorization")
		gotAmount = r.PostForm.Get("amount")
		gotMethod = r.PostForm.Get("payment_method")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","status":"succeeded","amount":4999}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "sk_test", time.Second)
	res, err := c.Charge(context.Background(), ChargeRequest{
		AmountCents:    4999,
		Currency:       "usd",
		PaymentMethod:  "pm_card_visa",
		IdempotencyKey: "key-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_123", res.TransactionID)
	assert.Equal(t, "key-1", gotKey)
	assert.Equal(t, "Bearer sk_test", gotAuth)
	assert.Equal(t, "4999", gotAmount)
	assert.Equal(t, "pm_card_visa", gotMethod)
}

func TestChargeDeclined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"message":"Your card was declined.","code":"card_declined","decline_code":"insufficient_funds"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "sk_test", time.Second)
	_, err := c.Charge(context.Background(), ChargeRequest{AmountCents: 100, Currency: "usd", PaymentMethod: "pm"})

	var declined *DeclinedError
	require.ErrorAs(t, err, &declined)
	assert.Equal(t, "Your card was declined.", declined.Reason)
	assert.Equal(t, "insufficient_funds", declined.Code)
}

func TestChargeRequiresAction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_9","status":"requires_action"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "sk_test", time.Second)
	_, err := c.Charge(context.Background(), ChargeRequest{AmountCents: 100, Currency: "usd", PaymentMethod: "pm"})

	var declined *DeclinedError
	require.ErrorAs(t, err, &declined)
	assert.Equal(t, "requires_action", declined.Code)
}

func TestChargeServerErrorIsNotDecline(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "sk_test", time.Second)
	c.http.SetRetryWaitTime(time.Millisecond).SetRetryMaxWaitTime(2 * time.Millisecond)
	_, err := c.Charge(context.Background(), ChargeRequest{AmountCents: 100, Currency: "usd", PaymentMethod: "pm"})

	require.Error(t, err)
	var declined *DeclinedError
	assert.False(t, errors.As(err, &declined))
	assert.Equal(t, 3, calls, "two retries after the first attempt")
}

func TestRefund(t *testing.T) {
	var gotIntent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/refunds", r.URL.Path)
		require.NoError(t, r.ParseForm())
		gotIntent = r.PostForm.Get("payment_intent")
		_, _ = w.Write([]byte(`{"id":"re_1","status":"succeeded"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "sk_test", time.Second)
	require.NoError(t, c.Refund(context.Background(), "pi_123"))
	assert.Equal(t, "pi_123", gotIntent)
}
