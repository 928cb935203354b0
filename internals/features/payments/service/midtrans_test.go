package service

import (
	"testing"
	"time"

	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/stretchr/testify/require"
)

func TestMidtransMapSettlement(t *testing.T) {
	tx := mapMidtransStatus(&coreapi.TransactionStatusResponse{
		OrderID:           "REF-9",
		TransactionStatus: "settlement",
		GrossAmount:       "400.00",
		SettlementTime:    "2026-08-20 10:30:00",
	}, "REF-9")

	require.Equal(t, "REF-9", tx.Reference)
	require.Equal(t, GatewayStatusSuccess, tx.Status)
	// gross IDR 400 → 40000 minor unit
	require.EqualValues(t, 40000, tx.AmountMinor)
	require.NotNil(t, tx.PaidAt)
	require.Equal(t, time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC), tx.PaidAt.UTC())
}

func TestMidtransMapCapture(t *testing.T) {
	tx := mapMidtransStatus(&coreapi.TransactionStatusResponse{
		OrderID:           "REF-9",
		TransactionStatus: "capture",
		GrossAmount:       "200.00",
	}, "REF-9")

	require.Equal(t, GatewayStatusSuccess, tx.Status)
	require.EqualValues(t, 20000, tx.AmountMinor)
	require.Nil(t, tx.PaidAt)
}

func TestMidtransMapFailedStatuses(t *testing.T) {
	for _, st := range []string{"deny", "cancel", "expire", "failure"} {
		tx := mapMidtransStatus(&coreapi.TransactionStatusResponse{
			OrderID:           "REF-9",
			TransactionStatus: st,
			GrossAmount:       "200.00",
		}, "REF-9")
		require.Equal(t, GatewayStatusFailed, tx.Status, st)
	}
}

func TestMidtransMapPendingAndFallbackRef(t *testing.T) {
	tx := mapMidtransStatus(&coreapi.TransactionStatusResponse{
		TransactionStatus: "pending",
		GrossAmount:       "not-a-number",
	}, "REF-FALLBACK")

	require.Equal(t, GatewayStatusPending, tx.Status)
	require.Equal(t, "REF-FALLBACK", tx.Reference)
	require.Zero(t, tx.AmountMinor)
}
