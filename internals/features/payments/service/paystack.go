// internals/features/payments/service/paystack.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

/* =========================================================
   Paystack verifier (default)
   GET {base}/transaction/verify/{reference}
========================================================= */

type PaystackVerifier struct {
	client *resty.Client
}

func NewPaystackVerifier(baseURL, secretKey string) *PaystackVerifier {
	c := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(secretKey).
		SetTimeout(15 * time.Second)
	return &PaystackVerifier{client: c}
}

type paystackVerifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Reference string `json:"reference"`
		Status    string `json:"status"` // "success" | "failed" | "abandoned" | ...
		Amount    int64  `json:"amount"` // minor units
		PaidAt    string `json:"paid_at"`
	} `json:"data"`
}

func (v *PaystackVerifier) Verify(ctx context.Context, reference string) (*GatewayTransaction, error) {
	var out paystackVerifyResponse
	resp, err := v.client.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&out).
		SetPathParam("reference", reference).
		Get("/transaction/verify/{reference}")
	if err != nil {
		return nil, &UpstreamError{Gateway: "paystack", Err: err}
	}
	if resp.IsError() || !out.Status {
		return nil, &UpstreamError{
			Gateway: "paystack",
			Err:     fmt.Errorf("verify %s: status %d: %s", reference, resp.StatusCode(), out.Message),
		}
	}

	status := GatewayStatusFailed
	switch out.Data.Status {
	case "success":
		status = GatewayStatusSuccess
	case "pending", "ongoing", "processing":
		status = GatewayStatusPending
	}

	var paidAt *time.Time
	if out.Data.PaidAt != "" {
		if t, err := time.Parse(time.RFC3339, out.Data.PaidAt); err == nil {
			paidAt = &t
		}
	}

	ref := out.Data.Reference
	if ref == "" {
		ref = reference
	}
	return &GatewayTransaction{
		Reference:   ref,
		Status:      status,
		AmountMinor: out.Data.Amount,
		PaidAt:      paidAt,
	}, nil
}
