package database

import (
	"log"

	"gorm.io/gorm"

	paymentModel "submitku_backend/internals/features/payments/model"
	submissionModel "submitku_backend/internals/features/submissions/model"
	tokenModel "submitku_backend/internals/features/tokens/model"
)

// Migrate menjalankan auto-migration untuk semua tabel domain.
func Migrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&tokenModel.AccessTokenModel{},
		&paymentModel.TransactionModel{},
		&submissionModel.SubmissionModel{},
	); err != nil {
		log.Fatalf("[ERROR] migrate: %v", err)
	}
	log.Println("[INFO] migrations applied.")
}
