package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"barmaja/logging"
	"barmaja/oops"

	"github.com/go-resty/resty/v2"
)

// Client talks to a Stripe-compatible PaymentIntents API.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// transport failures and 5xx only
			return err != nil || r.StatusCode() >= 500
		})
	return &Client{http: http}
}

type apiError struct {
	Error struct {
		Message     string `json:"message"`
		Code        string `json:"code"`
		DeclineCode string `json:"decline_code"`
	} `json:"error"`
}

func (c *Client) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	form := map[string]string{
		"amount":                                     strconv.FormatInt(req.AmountCents, 10),
		"currency":                                   req.Currency,
		"payment_method":                             req.PaymentMethod,
		"confirm":                                    "true",
		"description":                                req.Description,
		"metadata[customer]":                         req.CustomerRef,
		"automatic_payment_methods[enabled]":         "true",
		"automatic_payment_methods[allow_redirects]": "never",
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Idempotency-Key", req.IdempotencyKey).
		SetFormData(form).
		Post("payment_intents")
	if err != nil {
		return nil, oops.New(err, "payment gateway request failed")
	}

	var body map[string]interface{}
	if len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), &body); err != nil {
			return nil, oops.New(err, "invalid payment gateway response (status %d)", resp.StatusCode())
		}
	}

	if resp.IsError() {
		if resp.StatusCode() >= 500 {
			return nil, oops.New(nil, "payment gateway error (status %d)", resp.StatusCode())
		}
		var apiErr apiError
		_ = json.Unmarshal(resp.Body(), &apiErr)
		reason := apiErr.Error.Message
		if reason == "" {
			reason = fmt.Sprintf("payment rejected with status %d", resp.StatusCode())
		}
		code := apiErr.Error.DeclineCode
		if code == "" {
			code = apiErr.Error.Code
		}
		return nil, &DeclinedError{Reason: reason, Code: code}
	}

	id, _ := body["id"].(string)
	status, _ := body["status"].(string)
	switch status {
	case "succeeded":
	case "requires_action", "requires_payment_method":
		return nil, &DeclinedError{Reason: "Payment requires additional authentication.", Code: status}
	default:
		return nil, &DeclinedError{Reason: "Payment was not completed.", Code: status}
	}

	logging.Debug().Str("payment_intent", id).Int64("amount", req.AmountCents).Msg("charge succeeded")
	return &ChargeResult{TransactionID: id, Status: status, Raw: body}, nil
}

func (c *Client) Refund(ctx context.Context, transactionID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Idempotency-Key", "refund-"+transactionID).
		SetFormData(map[string]string{"payment_intent": transactionID}).
		Post("refunds")
	if err != nil {
		return oops.New(err, "refund request failed for %s", transactionID)
	}
	if resp.IsError() {
		return oops.New(nil, "refund of %s failed with status %d: %s", transactionID, resp.StatusCode(), resp.String())
	}
	return nil
}
