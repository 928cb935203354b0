// internals/features/tokens/dto/access_token_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "submitku_backend/internals/features/tokens/model"
)

/* =========================
   REQUEST
   ========================= */

type TokenValidateRequest struct {
	Token string `json:"token" form:"token" validate:"required"`
}

func (r *TokenValidateRequest) Normalize() {
	r.Token = strings.ToUpper(strings.TrimSpace(r.Token))
}

type TokenGenerateRequest struct {
	Amount int `json:"amount" form:"amount" validate:"required,gt=0,lte=500"`
}

/* =========================
   RESPONSE
   ========================= */

type AccessTokenResponse struct {
	AccessTokenID        uuid.UUID `json:"access_token_id"`
	AccessTokenValue     string    `json:"access_token_value"`
	AccessTokenUsed      bool      `json:"access_token_used"`
	AccessTokenCreatedAt time.Time `json:"access_token_created_at"`
}

func ToAccessTokenResponse(m *model.AccessTokenModel) AccessTokenResponse {
	return AccessTokenResponse{
		AccessTokenID:        m.AccessTokenID,
		AccessTokenValue:     m.AccessTokenValue,
		AccessTokenUsed:      m.AccessTokenUsed,
		AccessTokenCreatedAt: m.AccessTokenCreatedAt,
	}
}

func ToAccessTokenResponses(ms []model.AccessTokenModel) []AccessTokenResponse {
	out := make([]AccessTokenResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToAccessTokenResponse(&ms[i]))
	}
	return out
}
