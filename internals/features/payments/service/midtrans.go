// internals/features/payments/service/midtrans.go
package service

import (
	"context"
	"math"
	"strconv"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
)

/* =========================================================
   Midtrans verifier (PAYMENT_GATEWAY=midtrans)
   CheckTransaction by order ID via coreapi.
========================================================= */

type MidtransVerifier struct {
	client coreapi.Client
}

// NewMidtransVerifier: useProduction=true untuk Production, false untuk Sandbox.
func NewMidtransVerifier(serverKey string, useProduction bool) *MidtransVerifier {
	v := &MidtransVerifier{}
	if useProduction {
		v.client.New(serverKey, midtrans.Production)
	} else {
		v.client.New(serverKey, midtrans.Sandbox)
	}
	return v
}

func (v *MidtransVerifier) Verify(_ context.Context, reference string) (*GatewayTransaction, error) {
	resp, mErr := v.client.CheckTransaction(reference)
	if mErr != nil {
		return nil, &UpstreamError{Gateway: "midtrans", Err: mErr}
	}
	return mapMidtransStatus(resp, reference), nil
}

func mapMidtransStatus(resp *coreapi.TransactionStatusResponse, fallbackRef string) *GatewayTransaction {
	status := GatewayStatusPending
	switch resp.TransactionStatus {
	case "settlement", "capture":
		status = GatewayStatusSuccess
	case "deny", "cancel", "expire", "failure":
		status = GatewayStatusFailed
	}

	// Gross amount IDR tidak punya minor unit; normalisasi ke minor (× 100)
	// agar sebanding dengan expected_amount × 100.
	gross, _ := strconv.ParseFloat(resp.GrossAmount, 64)
	amountMinor := int64(math.Round(gross)) * 100

	var paidAt *time.Time
	if resp.SettlementTime != "" {
		if t, err := time.Parse("2006-01-02 15:04:05", resp.SettlementTime); err == nil {
			paidAt = &t
		}
	}

	ref := resp.OrderID
	if ref == "" {
		ref = fallbackRef
	}
	return &GatewayTransaction{
		Reference:   ref,
		Status:      status,
		AmountMinor: amountMinor,
		PaidAt:      paidAt,
	}
}
