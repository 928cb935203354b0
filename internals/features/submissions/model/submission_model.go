// internals/features/submissions/model/submission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubmissionFileItem: satu entri pada daftar file terurut.
type SubmissionFileItem struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Type int    `json:"type"` // constants.DetectFileTypeFromExt
}

type SubmissionModel struct {
	// PK
	SubmissionID uuid.UUID `json:"submission_id" gorm:"column:submission_id;type:uuid;primaryKey"`

	// Identitas pengumpul
	SubmissionName       string `json:"submission_name"       gorm:"column:submission_name;type:varchar(120);not null"`
	SubmissionDepartment string `json:"submission_department" gorm:"column:submission_department;type:varchar(120);not null"`
	SubmissionCourse     string `json:"submission_course"     gorm:"column:submission_course;type:varchar(120);not null"`
	SubmissionPhone      string `json:"submission_phone"      gorm:"column:submission_phone;type:varchar(32);not null"`
	SubmissionEmail      string `json:"submission_email"      gorm:"column:submission_email;type:varchar(160);not null"`

	// Daftar file terurut (url + nama asli), JSON
	SubmissionFiles datatypes.JSONType[[]SubmissionFileItem] `json:"submission_files" gorm:"column:submission_files"`

	SubmissionFileCount int `json:"submission_file_count" gorm:"column:submission_file_count;not null"`

	// file_count × unit price, major units
	SubmissionAmountPaid int `json:"submission_amount_paid" gorm:"column:submission_amount_paid;not null"`

	// Reference pembayaran yang diverifikasi terpisah (linkage longgar)
	SubmissionPaymentRef *string `json:"submission_payment_ref,omitempty" gorm:"column:submission_payment_ref;type:varchar(120)"`

	SubmissionScore int `json:"submission_score" gorm:"column:submission_score;not null"`

	// Token yang dikonsumsi (by value, bukan FK)
	SubmissionToken string `json:"submission_token" gorm:"column:submission_token;type:varchar(32);not null;index:idx_submissions_token"`

	SubmissionCreatedAt time.Time `json:"submission_created_at" gorm:"column:submission_created_at;not null;autoCreateTime"`
}

func (SubmissionModel) TableName() string { return "submissions" }

func (m *SubmissionModel) BeforeCreate(_ *gorm.DB) error {
	if m.SubmissionID == uuid.Nil {
		m.SubmissionID = uuid.New()
	}
	return nil
}
