package config

import (
	"os"
)

type Config struct {
	ServerPort string
	Env        string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string

	MigrationsDir string

	// File storage: "local" or "gcs".
	StorageBackend string
	UploadDir      string
	UploadBaseURL  string
	GCSBucket      string
	GCSCredentials string
}

func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Env:        getEnv("APP_ENV", "development"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "social"),
		DBPassword: getEnv("DB_PASSWORD", "social_dev_password"),
		DBName:     getEnv("DB_NAME", "social"),
		JWTSecret:  getEnv("JWT_SECRET", "dev-secret-change-me"),

		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),

		StorageBackend: getEnv("STORAGE_BACKEND", "local"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		UploadBaseURL:  getEnv("UPLOAD_BASE_URL", "/uploads"),
		GCSBucket:      getEnv("GCS_BUCKET", ""),
		GCSCredentials: getEnv("GCS_CREDENTIALS_JSON_PATH", ""),
	}
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}
