package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tokenController "submitku_backend/internals/features/tokens/controller"
	"submitku_backend/internals/middlewares"
)

// TokenUserRoutes: endpoint publik.
//   POST /api/tokens/validate
func TokenUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &tokenController.AccessTokenController{DB: db}
	r.Post("/tokens/validate", ctl.Validate)
}

// TokenAdminRoutes: endpoint admin (guard dipasang di group pemanggil).
//   POST /api/tokens/generate
//   GET  /api/tokens
func TokenAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &tokenController.AccessTokenController{DB: db}
	r.Post("/tokens/generate", middlewares.TokenGenerateRateLimiter(), ctl.Generate)
	r.Get("/tokens", ctl.List)
}
