// internals/features/tokens/controller/access_token_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "submitku_backend/internals/features/tokens/dto"
	model "submitku_backend/internals/features/tokens/model"
	service "submitku_backend/internals/features/tokens/service"
	helper "submitku_backend/internals/helpers"
)

type AccessTokenController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// VALIDATE - POST /api/tokens/validate
// Body: {token}
// =========================================================
func (h *AccessTokenController) Validate(c *fiber.Ctx) error {
	var req dto.TokenValidateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token is required")
	}

	var m model.AccessTokenModel
	if err := h.DB.First(&m, "access_token_value = ?", req.Token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Token not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up token")
	}
	if m.AccessTokenUsed {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token already used")
	}

	return helper.JsonOK(c, "Token valid", dto.ToAccessTokenResponse(&m))
}

// =========================================================
// GENERATE - POST /api/tokens/generate (admin)
// Body: {amount}
// =========================================================
func (h *AccessTokenController) Generate(c *fiber.Ctx) error {
	var req dto.TokenGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid amount")
	}

	tokens, err := service.GenerateBatch(h.DB, req.Amount)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate tokens")
	}
	return helper.JsonOK(c, "Tokens generated", dto.ToAccessTokenResponses(tokens))
}

// =========================================================
// LIST - GET /api/tokens (admin), terbaru dulu
// =========================================================
func (h *AccessTokenController) List(c *fiber.Ctx) error {
	var ms []model.AccessTokenModel
	if err := h.DB.
		Order("access_token_created_at DESC").
		Find(&ms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list tokens")
	}
	out := dto.ToAccessTokenResponses(ms)
	return helper.JsonList(c, "ok", out, len(out))
}
