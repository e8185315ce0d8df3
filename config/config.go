package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// App menampung konfigurasi runtime dari environment variable.
type App struct {
	Env              string
	Port             string
	DatabaseURL      string
	DatabaseName     string
	DBConnectTimeout time.Duration
	JWTSecret        string
	TokenTTL         time.Duration
	CORSAllowOrigins []string
	SeedAdminEmail   string
	SeedAdminName    string
	SeedAdminPass    string
}

// Load membaca .env (jika ada) lalu environment, dengan nilai default.
func Load() App {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env tidak ditemukan, menggunakan environment sistem")
	}

	return App{
		Env:              getEnv("APP_ENV", "dev"),
		Port:             getEnv("PORT", "8000"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		DatabaseName:     os.Getenv("DATABASE_NAME"),
		DBConnectTimeout: durationEnv("DB_CONNECT_TIMEOUT", 10*time.Second),
		JWTSecret:        getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:         durationEnv("TOKEN_TTL", 24*time.Hour),
		CORSAllowOrigins: listEnv("CORS_ALLOW_ORIGINS", []string{"*"}),
		SeedAdminEmail:   os.Getenv("SEED_ADMIN_EMAIL"),
		SeedAdminName:    getEnv("SEED_ADMIN_NAME", "Admin PKL"),
		SeedAdminPass:    os.Getenv("SEED_ADMIN_PASSWORD"),
	}
}

// IsProduction melaporkan apakah APP_ENV menunjuk ke production.
func (a App) IsProduction() bool {
	return a.Env == "production" || a.Env == "prod"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		log.Printf("durasi tidak valid untuk %s: %v, pakai default %s", key, err, fallback)
		return fallback
	}
	return d
}

func listEnv(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
