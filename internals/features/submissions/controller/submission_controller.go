// internals/features/submissions/controller/submission_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"submitku_backend/internals/configs"
	"submitku_backend/internals/constants"
	tokenModel "submitku_backend/internals/features/tokens/model"
	tokenService "submitku_backend/internals/features/tokens/service"
	dto "submitku_backend/internals/features/submissions/dto"
	model "submitku_backend/internals/features/submissions/model"
	service "submitku_backend/internals/features/submissions/service"
	helper "submitku_backend/internals/helpers"
)

type SubmissionController struct {
	DB       *gorm.DB
	Ingestor service.FileIngestor
	Scorer   service.Scorer
}

var validate = validator.New()

// =========================================================
// CREATE - POST /api/submissions
// Multipart: name, department, course, phone, email, token,
// payment_ref + 1..N part "files".
//
// Urutan langkah disengaja: token dikonsumsi PALING AKHIR, satu
// transaksi dengan insert submission, supaya kegagalan upload tidak
// menghanguskan token dan tidak meninggalkan record setengah jadi.
// =========================================================
func (h *SubmissionController) Create(c *fiber.Ctx) error {
	var req dto.SubmissionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Name, department, course, phone, email and token are required")
	}

	// 1) Pre-check token untuk pesan error yang jelas. Pagar sebenarnya
	//    adalah compare-and-set di langkah commit.
	var tok tokenModel.AccessTokenModel
	if err := h.DB.First(&tok, "access_token_value = ?", req.Token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Token not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up token")
	}
	if tok.AccessTokenUsed {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token already used")
	}

	// 2) Kumpulkan file part
	form, err := c.MultipartForm()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Multipart form expected")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No files provided")
	}
	maxFiles := configs.MaxFilesPerSubmission()
	if len(files) > maxFiles {
		return helper.JsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("A maximum of %d files is allowed", maxFiles))
	}

	// 3) Ingest ke object storage (gagal → tidak ada yang dipersist,
	//    file yang sudah naik dihapus oleh ingestor)
	dir := "submissions/" + strings.ToLower(req.Token)
	stored, err := h.Ingestor.Ingest(c.UserContext(), dir, files)
	if err != nil {
		if errors.Is(err, service.ErrFileTooLarge) {
			return helper.JsonError(c, fiber.StatusBadRequest,
				fmt.Sprintf("Each file must be at most %d MiB", constants.MaxUploadFileSize>>20))
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to upload files")
	}

	// 4) Amount = jumlah file × harga per file
	amount := len(stored) * configs.UnitPrice()

	// 5) Score dari strategi yang diinject
	scorer := h.Scorer
	if scorer == nil {
		scorer = service.DefaultScorer()
	}
	score := scorer()

	items := make([]model.SubmissionFileItem, 0, len(stored))
	for _, f := range stored {
		items = append(items, model.SubmissionFileItem{
			URL:  f.URL,
			Name: f.Name,
			Type: constants.DetectFileTypeFromExt(f.Name),
		})
	}

	m := model.SubmissionModel{
		SubmissionName:       req.Name,
		SubmissionDepartment: req.Department,
		SubmissionCourse:     req.Course,
		SubmissionPhone:      req.Phone,
		SubmissionEmail:      req.Email,
		SubmissionFiles:      datatypes.NewJSONType(items),
		SubmissionFileCount:  len(stored),
		SubmissionAmountPaid: amount,
		SubmissionScore:      score,
		SubmissionToken:      req.Token,
	}
	if req.PaymentRef != "" {
		m.SubmissionPaymentRef = &req.PaymentRef
	}

	// 6) Satu transaksi: insert submission + konsumsi token (CAS).
	//    Race dua request dengan token sama kalah di sini, bukan di pre-check.
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		return tokenService.Consume(tx, req.Token)
	})
	if txErr != nil {
		h.Ingestor.Discard(c.UserContext(), stored)
		if errors.Is(txErr, tokenService.ErrTokenAlreadyUsed) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Token already used")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save submission")
	}

	return helper.JsonOK(c, "Submission recorded", dto.ToSubmissionResponse(&m))
}

// =========================================================
// LIST - GET /api/submissions (admin), terbaru dulu
// =========================================================
func (h *SubmissionController) List(c *fiber.Ctx) error {
	var ms []model.SubmissionModel
	if err := h.DB.
		Order("submission_created_at DESC").
		Find(&ms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list submissions")
	}
	out := dto.ToSubmissionResponses(ms)
	return helper.JsonList(c, "ok", out, len(out))
}
