package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "submitku_backend/internals/features/payments/controller"
	paymentService "submitku_backend/internals/features/payments/service"
)

// PaymentUserRoutes: endpoint publik.
//   POST /api/payment/verify
func PaymentUserRoutes(r fiber.Router, db *gorm.DB, verifier paymentService.GatewayVerifier) {
	ctl := &paymentController.PaymentController{DB: db, Verifier: verifier}
	r.Post("/payment/verify", ctl.Verify)
}

// PaymentAdminRoutes: endpoint admin.
//   GET /api/transactions
func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &paymentController.PaymentController{DB: db}
	r.Get("/transactions", ctl.List)
}
