// internals/features/tokens/service/token_service.go
package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"gorm.io/gorm"

	model "submitku_backend/internals/features/tokens/model"
	"submitku_backend/internals/constants"
)

var ErrTokenAlreadyUsed = errors.New("token already used")

const base36Upper = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateTokenValue membentuk nilai token baru: prefix + 8 karakter
// base-36 uppercase acak. Tabrakan dianggap sangat jarang; unique index
// di DB yang jadi pagar terakhir.
func GenerateTokenValue() (string, error) {
	out := make([]byte, constants.TokenRandomLength)
	for i := 0; i < len(out); i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36Upper))))
		if err != nil {
			return "", fmt.Errorf("rand: %w", err)
		}
		out[i] = base36Upper[n.Int64()]
	}
	return constants.TokenPrefix + string(out), nil
}

// GenerateBatch membuat count token baru dalam satu insert.
func GenerateBatch(db *gorm.DB, count int) ([]model.AccessTokenModel, error) {
	tokens := make([]model.AccessTokenModel, 0, count)
	for i := 0; i < count; i++ {
		v, err := GenerateTokenValue()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, model.AccessTokenModel{AccessTokenValue: v})
	}
	if err := db.Create(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}

// Consume menandai token terpakai secara atomik (compare-and-set):
// UPDATE ... SET used = true WHERE value = ? AND used = false.
// Return ErrTokenAlreadyUsed kalau tidak ada baris yang berubah.
// Dipanggil di dalam transaksi submission supaya konsumsi token dan
// pembuatan record submission jadi satu unit.
func Consume(tx *gorm.DB, value string) error {
	res := tx.Model(&model.AccessTokenModel{}).
		Where("access_token_value = ? AND access_token_used = ?", value, false).
		Update("access_token_used", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTokenAlreadyUsed
	}
	return nil
}
