// internals/features/payments/service/gateway.go
package service

import (
	"context"
	"fmt"
	"time"
)

// GatewayStatus: status transaksi setelah dinormalisasi lintas gateway.
type GatewayStatus string

const (
	GatewayStatusSuccess GatewayStatus = "success"
	GatewayStatusFailed  GatewayStatus = "failed"
	GatewayStatusPending GatewayStatus = "pending"
)

// GatewayTransaction: hasil lookup satu reference di gateway.
// Amount selalu minor units (major × 100).
type GatewayTransaction struct {
	Reference   string
	Status      GatewayStatus
	AmountMinor int64
	PaidAt      *time.Time
}

// GatewayVerifier meng-query gateway pembayaran berdasarkan reference.
// Implementasi: Paystack (REST) dan Midtrans (coreapi), dipilih lewat ENV.
type GatewayVerifier interface {
	Verify(ctx context.Context, reference string) (*GatewayTransaction, error)
}

// UpstreamError: gateway tidak bisa dihubungi / menjawab error.
type UpstreamError struct {
	Gateway string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s gateway: %v", e.Gateway, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
