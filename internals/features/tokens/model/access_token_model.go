// internals/features/tokens/model/access_token_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccessTokenModel struct {
	// PK
	AccessTokenID uuid.UUID `json:"access_token_id" gorm:"column:access_token_id;type:uuid;primaryKey"`

	// Nilai token ("ICT-" + 8 karakter base-36), unik
	AccessTokenValue string `json:"access_token_value" gorm:"column:access_token_value;type:varchar(32);not null;uniqueIndex:uq_access_tokens_value"`

	// Sekali true, tidak pernah kembali false
	AccessTokenUsed bool `json:"access_token_used" gorm:"column:access_token_used;not null;default:false"`

	AccessTokenCreatedAt time.Time `json:"access_token_created_at" gorm:"column:access_token_created_at;not null;autoCreateTime"`
}

func (AccessTokenModel) TableName() string { return "access_tokens" }

func (m *AccessTokenModel) BeforeCreate(_ *gorm.DB) error {
	if m.AccessTokenID == uuid.Nil {
		m.AccessTokenID = uuid.New()
	}
	return nil
}
