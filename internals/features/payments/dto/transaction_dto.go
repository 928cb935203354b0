// internals/features/payments/dto/transaction_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "submitku_backend/internals/features/payments/model"
)

/* =========================
   REQUEST
   ========================= */

type PaymentVerifyRequest struct {
	Reference string `json:"reference" form:"reference" validate:"required"`
	// Nominal yang diharapkan, major units (gateway menyimpan minor units = × 100)
	ExpectedAmount int64  `json:"expected_amount" form:"expected_amount" validate:"required,gt=0"`
	Name           string `json:"name"  form:"name"  validate:"required"`
	Email          string `json:"email" form:"email" validate:"required,email"`
}

func (r *PaymentVerifyRequest) Normalize() {
	r.Reference = strings.TrimSpace(r.Reference)
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

/* =========================
   RESPONSE
   ========================= */

type TransactionResponse struct {
	TransactionID         uuid.UUID               `json:"transaction_id"`
	TransactionPayerName  string                  `json:"transaction_payer_name"`
	TransactionPayerEmail string                  `json:"transaction_payer_email"`
	TransactionAmount     int64                   `json:"transaction_amount"`
	TransactionReference  string                  `json:"transaction_reference"`
	TransactionStatus     model.TransactionStatus `json:"transaction_status"`
	TransactionPaidAt     *time.Time              `json:"transaction_paid_at,omitempty"`
	TransactionCreatedAt  time.Time               `json:"transaction_created_at"`
}

func ToTransactionResponse(m *model.TransactionModel) TransactionResponse {
	return TransactionResponse{
		TransactionID:         m.TransactionID,
		TransactionPayerName:  m.TransactionPayerName,
		TransactionPayerEmail: m.TransactionPayerEmail,
		TransactionAmount:     m.TransactionAmount,
		TransactionReference:  m.TransactionReference,
		TransactionStatus:     m.TransactionStatus,
		TransactionPaidAt:     m.TransactionPaidAt,
		TransactionCreatedAt:  m.TransactionCreatedAt,
	}
}

func ToTransactionResponses(ms []model.TransactionModel) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToTransactionResponse(&ms[i]))
	}
	return out
}

type PaymentVerifyResponse struct {
	Verified    bool                `json:"verified"`
	Transaction TransactionResponse `json:"transaction"`
}
