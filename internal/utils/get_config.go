package utils

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort          string `yaml:"APP_PORT"`
	CORSAllowOrigins string `yaml:"CORS_ALLOW_ORIGINS"`
	RateLimitPerSec  string `yaml:"RATE_LIMIT_PER_SECOND"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBPath     string `yaml:"DB_PATH"`

	// USDA FoodData Central
	USDAAPIKey             string `yaml:"USDA_API_KEY"`
	USDABaseURL            string `yaml:"USDA_BASE_URL"`
	USDAImportConcurrency  string `yaml:"USDA_IMPORT_CONCURRENCY"`
	USDARequestTimeoutSecs string `yaml:"USDA_REQUEST_TIMEOUT_SECONDS"`
	USDAImportCron         string `yaml:"USDA_IMPORT_CRON"`

	// Mailing configuration
	ReportEmail      string `yaml:"REPORT_EMAIL"`
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

var config Config

// LoadConfig reads config.yaml, falling back to .env and the process environment
// for every key the yaml file leaves empty.
func LoadConfig() {
	config = Config{}

	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file found, using system env")
		}
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	fillFromEnv(&config.AppPort, "APP_PORT")
	fillFromEnv(&config.CORSAllowOrigins, "CORS_ALLOW_ORIGINS")
	fillFromEnv(&config.RateLimitPerSec, "RATE_LIMIT_PER_SECOND")
	fillFromEnv(&config.DBDriver, "DB_DRIVER")
	fillFromEnv(&config.DBUser, "DB_USER")
	fillFromEnv(&config.DBName, "DB_NAME")
	fillFromEnv(&config.DBPassword, "DB_PASSWORD")
	fillFromEnv(&config.DBPort, "DB_PORT")
	fillFromEnv(&config.DBHost, "DB_HOST")
	fillFromEnv(&config.DBPath, "DB_PATH")
	fillFromEnv(&config.USDAAPIKey, "USDA_API_KEY")
	fillFromEnv(&config.USDABaseURL, "USDA_BASE_URL")
	fillFromEnv(&config.USDAImportConcurrency, "USDA_IMPORT_CONCURRENCY")
	fillFromEnv(&config.USDARequestTimeoutSecs, "USDA_REQUEST_TIMEOUT_SECONDS")
	fillFromEnv(&config.USDAImportCron, "USDA_IMPORT_CRON")
	fillFromEnv(&config.ReportEmail, "REPORT_EMAIL")
	fillFromEnv(&config.SMTPHost, "SMTP_HOST")
	fillFromEnv(&config.SMTPPort, "SMTP_PORT")
	fillFromEnv(&config.SMTPSenderName, "SMTP_SENDER_NAME")
	fillFromEnv(&config.SMTPAuthEmail, "SMTP_AUTH_EMAIL")
	fillFromEnv(&config.SMTPAuthPassword, "SMTP_AUTH_PASSWORD")
	fillFromEnv(&config.AWSS3Bucket, "AWS_S3_BUCKET")
	fillFromEnv(&config.AWSS3Region, "AWS_S3_REGION")
	fillFromEnv(&config.AWSAccessKey, "AWS_ACCESS_KEY")
	fillFromEnv(&config.AWSSecretKey, "AWS_SECRET_KEY")
}

func fillFromEnv(field *string, key string) {
	if *field != "" {
		return
	}
	if val, ok := os.LookupEnv(key); ok {
		*field = val
	}
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "CORS_ALLOW_ORIGINS":
		return config.CORSAllowOrigins
	case "RATE_LIMIT_PER_SECOND":
		return config.RateLimitPerSec
	case "DB_DRIVER":
		return config.DBDriver
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
	case "USDA_API_KEY":
		return config.USDAAPIKey
	case "USDA_BASE_URL":
		return config.USDABaseURL
	case "USDA_IMPORT_CONCURRENCY":
		return config.USDAImportConcurrency
	case "USDA_REQUEST_TIMEOUT_SECONDS":
		return config.USDARequestTimeoutSecs
	case "USDA_IMPORT_CRON":
		return config.USDAImportCron
	case "REPORT_EMAIL":
		return config.ReportEmail
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

// GetConfigOrDefault returns def when key is unset.
func GetConfigOrDefault(key, def string) string {
	if v := GetConfig(key); v != "" {
		return v
	}
	return def
}

// GetConfigInt returns def when key is unset, not a number or not positive.
func GetConfigInt(key string, def int) int {
	n, err := strconv.Atoi(GetConfig(key))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
