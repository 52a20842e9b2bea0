package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	CourseStartDate time.Time
	UploadDir       string
	DataDir         string

	EmailSender string
	Password    string // SMTP Password

	NotifyWebhookURL string // ops webhook pinged on new registrations, optional
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		CourseStartDate: getEnvDate("COURSE_START_DATE", "2025-01-06"),
		UploadDir:       getEnv("UPLOAD_DIR", "./uploads"),
		DataDir:         getEnv("DATA_DIR", "./data"),

		EmailSender: getEnv("EMAIL_SENDER", "defaultSecret"),
		Password:    getEnv("PASSWORD", "defaultSecret"),

		NotifyWebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvDate retrieves an environment variable as a YYYY-MM-DD date or returns the default
func getEnvDate(key, defaultValue string) time.Time {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		log.Printf("Error parsing environment variable %s as date: %v", key, err)
		t, _ = time.Parse("2006-01-02", defaultValue)
	}
	return t
}
