// internals/features/payments/model/transaction_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "success"
	TransactionStatusFailed  TransactionStatus = "failed"
)

type TransactionModel struct {
	// PK
	TransactionID uuid.UUID `json:"transaction_id" gorm:"column:transaction_id;type:uuid;primaryKey"`

	TransactionPayerName  string `json:"transaction_payer_name"  gorm:"column:transaction_payer_name;type:varchar(120);not null"`
	TransactionPayerEmail string `json:"transaction_payer_email" gorm:"column:transaction_payer_email;type:varchar(160);not null"`

	// Nominal dalam minor units (kobo/sen)
	TransactionAmount int64 `json:"transaction_amount" gorm:"column:transaction_amount;not null"`

	// Reference unik dari gateway; satu record per reference terverifikasi
	TransactionReference string `json:"transaction_reference" gorm:"column:transaction_reference;type:varchar(120);not null;uniqueIndex:uq_transactions_reference"`

	TransactionStatus TransactionStatus `json:"transaction_status" gorm:"column:transaction_status;type:varchar(20);not null"`

	TransactionPaidAt    *time.Time `json:"transaction_paid_at,omitempty" gorm:"column:transaction_paid_at"`
	TransactionCreatedAt time.Time  `json:"transaction_created_at" gorm:"column:transaction_created_at;not null;autoCreateTime"`
}

func (TransactionModel) TableName() string { return "transactions" }

func (m *TransactionModel) BeforeCreate(_ *gorm.DB) error {
	if m.TransactionID == uuid.Nil {
		m.TransactionID = uuid.New()
	}
	return nil
}
