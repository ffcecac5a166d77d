package utils

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort          string `yaml:"APP_PORT"`
	AppURL           string `yaml:"APP_URL"`
	CORSAllowOrigins string `yaml:"CORS_ALLOW_ORIGINS"`
	RateLimitMax     string `yaml:"RATE_LIMIT_MAX"`
	LogFile          string `yaml:"LOG_FILE"`

	// Database configuration
	DBType     string `yaml:"DB_TYPE"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBPath     string `yaml:"DB_PATH"`

	// Auth provider token verification
	JWTSecret   string `yaml:"JWT_SECRET"`
	JWTIssuer   string `yaml:"JWT_ISSUER"`
	JWTAudience string `yaml:"JWT_AUDIENCE"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var (
	config     Config
	configOnce sync.Once
)

var defaults = map[string]string{
	"APP_PORT":       "8080",
	"DB_TYPE":        "postgres",
	"DB_PORT":        "5432",
	"DB_PATH":        "trackfit.db",
	"RATE_LIMIT_MAX": "20",
	"LOG_FILE":       "./logs/app.log",
	"SMTP_PORT":      "587",
}

// LoadConfig reads .env and config.yaml once. Later calls are no-ops.
func LoadConfig() {
	configOnce.Do(func() {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("Error reading .env file: %s\n", err)
		}

		file, err := os.ReadFile("config.yaml")
		if err != nil {
			if !os.IsNotExist(err) {
				log.Printf("Error reading YAML file: %s\n", err)
			}
			return
		}

		if err := yaml.Unmarshal(file, &config); err != nil {
			log.Printf("Error parsing YAML file: %s\n", err)
		}
	})
}

// GetConfig returns the environment value for key when set, the config.yaml
// value otherwise, and finally the built-in default.
func GetConfig(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if v := fileConfig(key); v != "" {
		return v
	}
	return defaults[key]
}

func fileConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "APP_URL":
		return config.AppURL
	case "CORS_ALLOW_ORIGINS":
		return config.CORSAllowOrigins
	case "RATE_LIMIT_MAX":
		return config.RateLimitMax
	case "LOG_FILE":
		return config.LogFile
	case "DB_TYPE":
		return config.DBType
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_PATH":
		return config.DBPath
	case "JWT_SECRET":
		return config.JWTSecret
	case "JWT_ISSUER":
		return config.JWTIssuer
	case "JWT_AUDIENCE":
		return config.JWTAudience
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}
