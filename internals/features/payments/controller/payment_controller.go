// internals/features/payments/controller/payment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "submitku_backend/internals/features/payments/dto"
	model "submitku_backend/internals/features/payments/model"
	service "submitku_backend/internals/features/payments/service"
	helper "submitku_backend/internals/helpers"
)

type PaymentController struct {
	DB       *gorm.DB
	Verifier service.GatewayVerifier
}

var validate = validator.New()

// =========================================================
// VERIFY - POST /api/payment/verify
// Body: {reference, expected_amount, name, email}
// =========================================================
func (h *PaymentController) Verify(c *fiber.Ctx) error {
	var req dto.PaymentVerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Reference, expected_amount, name and email are required")
	}

	gwTx, err := h.Verifier.Verify(c.UserContext(), req.Reference)
	if err != nil {
		var ue *service.UpstreamError
		if errors.As(err, &ue) {
			return helper.JsonError(c, fiber.StatusBadGateway, "Payment gateway unavailable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify payment")
	}

	if gwTx.Status != service.GatewayStatusSuccess {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payment not successful")
	}
	// Gateway menyimpan minor units; expected dikirim major units.
	if gwTx.AmountMinor != req.ExpectedAmount*100 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Amount mismatch")
	}

	m := model.TransactionModel{
		TransactionPayerName:  req.Name,
		TransactionPayerEmail: req.Email,
		TransactionAmount:     gwTx.AmountMinor,
		TransactionReference:  gwTx.Reference,
		TransactionStatus:     model.TransactionStatusSuccess,
		TransactionPaidAt:     gwTx.PaidAt,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Payment already recorded")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record transaction")
	}

	return helper.JsonOK(c, "Payment verified", dto.PaymentVerifyResponse{
		Verified:    true,
		Transaction: dto.ToTransactionResponse(&m),
	})
}

// =========================================================
// LIST - GET /api/transactions (admin), terbaru dulu
// =========================================================
func (h *PaymentController) List(c *fiber.Ctx) error {
	var ms []model.TransactionModel
	if err := h.DB.
		Order("transaction_created_at DESC").
		Find(&ms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list transactions")
	}
	out := dto.ToTransactionResponses(ms)
	return helper.JsonList(c, "ok", out, len(out))
}
