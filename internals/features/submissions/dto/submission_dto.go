// internals/features/submissions/dto/submission_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "submitku_backend/internals/features/submissions/model"
)

/* =========================
   REQUEST
   ========================= */

// SubmissionCreateRequest: field teks dari form multipart.
// File dibaca terpisah dari form.File["files"].
type SubmissionCreateRequest struct {
	Name       string `json:"name"       form:"name"       validate:"required"`
	Department string `json:"department" form:"department" validate:"required"`
	Course     string `json:"course"     form:"course"     validate:"required"`
	Phone      string `json:"phone"      form:"phone"      validate:"required"`
	Email      string `json:"email"      form:"email"      validate:"required,email"`
	Token      string `json:"token"      form:"token"      validate:"required"`
	PaymentRef string `json:"payment_ref" form:"payment_ref"`
}

func (r *SubmissionCreateRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Department = strings.TrimSpace(r.Department)
	r.Course = strings.TrimSpace(r.Course)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Token = strings.ToUpper(strings.TrimSpace(r.Token))
	r.PaymentRef = strings.TrimSpace(r.PaymentRef)
}

/* =========================
   RESPONSE
   ========================= */

type SubmissionResponse struct {
	SubmissionID         uuid.UUID                  `json:"submission_id"`
	SubmissionName       string                     `json:"submission_name"`
	SubmissionDepartment string                     `json:"submission_department"`
	SubmissionCourse     string                     `json:"submission_course"`
	SubmissionPhone      string                     `json:"submission_phone"`
	SubmissionEmail      string                     `json:"submission_email"`
	SubmissionFiles      []model.SubmissionFileItem `json:"submission_files"`
	SubmissionFileCount  int                        `json:"submission_file_count"`
	SubmissionAmountPaid int                        `json:"submission_amount_paid"`
	SubmissionPaymentRef *string                    `json:"submission_payment_ref,omitempty"`
	SubmissionScore      int                        `json:"submission_score"`
	SubmissionToken      string                     `json:"submission_token"`
	SubmissionCreatedAt  time.Time                  `json:"submission_created_at"`
}

func ToSubmissionResponse(m *model.SubmissionModel) SubmissionResponse {
	return SubmissionResponse{
		SubmissionID:         m.SubmissionID,
		SubmissionName:       m.SubmissionName,
		SubmissionDepartment: m.SubmissionDepartment,
		SubmissionCourse:     m.SubmissionCourse,
		SubmissionPhone:      m.SubmissionPhone,
		SubmissionEmail:      m.SubmissionEmail,
		SubmissionFiles:      m.SubmissionFiles.Data(),
		SubmissionFileCount:  m.SubmissionFileCount,
		SubmissionAmountPaid: m.SubmissionAmountPaid,
		SubmissionPaymentRef: m.SubmissionPaymentRef,
		SubmissionScore:      m.SubmissionScore,
		SubmissionToken:      m.SubmissionToken,
		SubmissionCreatedAt:  m.SubmissionCreatedAt,
	}
}

func ToSubmissionResponses(ms []model.SubmissionModel) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToSubmissionResponse(&ms[i]))
	}
	return out
}
