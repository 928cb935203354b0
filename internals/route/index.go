// file: internals/route/index.go
package routes

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"submitku_backend/internals/configs"
	paymentRoute "submitku_backend/internals/features/payments/route"
	paymentService "submitku_backend/internals/features/payments/service"
	submissionRoute "submitku_backend/internals/features/submissions/route"
	submissionService "submitku_backend/internals/features/submissions/service"
	tokenRoute "submitku_backend/internals/features/tokens/route"
	helperOSS "submitku_backend/internals/helpers/oss"
	authMiddleware "submitku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===== Object storage (File Ingestor) =====
	ossSvc, err := helperOSS.NewOSSServiceFromEnv("")
	if err != nil {
		log.Fatalf("[ERROR] OSS not configured: %v", err)
	}
	ingestor := submissionService.NewOSSIngestor(ossSvc)
	scorer := submissionService.DefaultScorer()

	// ===== Payment gateway =====
	var verifier paymentService.GatewayVerifier
	switch configs.PaymentGateway {
	case "midtrans":
		useProd, _ := strconv.ParseBool(configs.GetEnv("MIDTRANS_USE_PROD", "false"))
		verifier = paymentService.NewMidtransVerifier(configs.PaymentSecretKey, useProd)
	default:
		verifier = paymentService.NewPaystackVerifier(configs.PaymentBaseURL, configs.PaymentSecretKey)
	}
	log.Printf("[INFO] payment gateway: %s", configs.PaymentGateway)

	// ===== PUBLIC =====
	api := app.Group("/api")
	tokenRoute.TokenUserRoutes(api, db)
	paymentRoute.PaymentUserRoutes(api, db, verifier)
	submissionRoute.SubmissionUserRoutes(api, db, ingestor, scorer)

	// ===== ADMIN (JWT) =====
	admin := app.Group("/api",
		authMiddleware.AdminJWT(authMiddleware.AdminJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	tokenRoute.TokenAdminRoutes(admin, db)
	paymentRoute.PaymentAdminRoutes(admin, db)
	submissionRoute.SubmissionAdminRoutes(admin, db)
}
