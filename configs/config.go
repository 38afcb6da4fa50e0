package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration
	LogLevel  string

	// cart expiry
	CartInactiveMinutes int
	SweepInterval       time.Duration

	// delivery slot generation, both in minutes
	MinDeliveryTime  int
	DeliveryTimeStep int
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:            getEnv("DB_SOURCE", "app.db"),
		Port:                getEnv("PORT", "8000"),
		JWTSecret:           getEnv("JWT_SECRET", "changeme"),
		JWTTTL:              time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		CartInactiveMinutes: getEnvInt("CART_INACTIVE_MINUTES", 30),
		SweepInterval:       time.Duration(getEnvInt("CART_SWEEP_SECONDS", 60)) * time.Second,
		MinDeliveryTime:     getEnvInt("MIN_DELIVERY_TIME", 60),
		DeliveryTimeStep:    getEnvInt("DELIVERY_TIME_STEP", 30),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
