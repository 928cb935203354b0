package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	PaymentGateway   string // "paystack" (default) atau "midtrans"
	PaymentSecretKey string
	PaymentBaseURL   string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[WARN] no .env file found, using system ENV")
		} else {
			log.Println("[INFO] .env file loaded")
		}
	} else {
		log.Println("[INFO] running in Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	PaymentGateway = GetEnv("PAYMENT_GATEWAY", "paystack")
	PaymentSecretKey = GetEnv("PAYMENT_SECRET_KEY")
	PaymentBaseURL = GetEnv("PAYMENT_BASE_URL", "https://api.paystack.co")

	if JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET not set, admin routes will reject all requests")
	}
	if PaymentSecretKey == "" {
		log.Println("[WARN] PAYMENT_SECRET_KEY not set")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// UnitPrice: biaya per file yang diupload (major units).
func UnitPrice() int { return GetEnvInt("SUBMISSION_UNIT_PRICE", 200) }

// MaxFilesPerSubmission: batas jumlah file per request multipart.
func MaxFilesPerSubmission() int { return GetEnvInt("SUBMISSION_MAX_FILES", 5) }
