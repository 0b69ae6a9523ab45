package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBSource  string
	JWTSecret string
	JWTTTL    time.Duration

	TaxRate            float64
	PaymentSuccessRate float64

	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		Port:               getEnv("PORT", "8000"),
		DBSource:           getEnv("DB_SOURCE", "fooddelivery.db"),
		JWTSecret:          getEnv("JWT_SECRET", "changeme"),
		JWTTTL:             24 * time.Hour,
		TaxRate:            getEnvFloat("TAX_RATE", 0.08),
		PaymentSuccessRate: getEnvFloat("PAYMENT_SUCCESS_RATE", 0.95),
		AdminEmail:         os.Getenv("ADMIN_EMAIL"),
		AdminPassword:      os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
