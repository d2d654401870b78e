package utils

import (
	"log"
	"os"
	"strconv"
	"sync"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`
	DBTimeZone string `yaml:"DB_TIMEZONE"`

	// Server
	AppPort            string `yaml:"APP_PORT"`
	AppURL             string `yaml:"APP_URL"`
	CORSOrigins        string `yaml:"CORS_ORIGINS"`
	RateLimitPerSecond string `yaml:"RATE_LIMIT_PER_SECOND"`

	// Auth
	JWTSecret       string `yaml:"JWT_SECRET"`
	TokenTTLMinutes string `yaml:"TOKEN_TTL_MINUTES"`

	// Logging
	LogLevel  string `yaml:"LOG_LEVEL"`
	LogFormat string `yaml:"LOG_FORMAT"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket   string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region   string `yaml:"AWS_S3_REGION"`
	AWSS3Endpoint string `yaml:"AWS_S3_ENDPOINT"`
	AWSAccessKey  string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey  string `yaml:"AWS_SECRET_KEY"`

	// Redis
	RedisAddr     string `yaml:"REDIS_ADDR"`
	RedisPassword string `yaml:"REDIS_PASSWORD"`
	RedisDB       string `yaml:"REDIS_DB"`
}

var (
	config     Config
	configOnce sync.Once
)

// LoadConfig reads the YAML file named by CONFIG_PATH (config.yaml by default)
// once. A missing file is not fatal; values can come from the environment.
func LoadConfig() {
	configOnce.Do(func() {
		path := os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "config.yaml"
		}

		file, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Error reading YAML file: %s\n", err)
			return
		}

		if err := yaml.Unmarshal(file, &config); err != nil {
			log.Printf("Error parsing YAML file: %s\n", err)
			return
		}
	})
}

// GetConfig returns the value for key. Environment variables take precedence
// over the YAML file.
func GetConfig(key string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	switch key {
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
	case "DB_SSLMODE":
		return orDefault(config.DBSSLMode, "disable")
	case "DB_TIMEZONE":
		return orDefault(config.DBTimeZone, "UTC")
	case "APP_PORT":
		return orDefault(config.AppPort, "8080")
	case "APP_URL":
		return config.AppURL
	case "CORS_ORIGINS":
		return orDefault(config.CORSOrigins, "*")
	case "RATE_LIMIT_PER_SECOND":
		return orDefault(config.RateLimitPerSecond, "10")
	case "JWT_SECRET":
		return config.JWTSecret
	case "TOKEN_TTL_MINUTES":
		return orDefault(config.TokenTTLMinutes, "1440")
	case "LOG_LEVEL":
		return orDefault(config.LogLevel, "info")
	case "LOG_FORMAT":
		return orDefault(config.LogFormat, "json")
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
	case "AWS_S3_ENDPOINT":
		return config.AWSS3Endpoint
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "REDIS_ADDR":
		return config.RedisAddr
	case "REDIS_PASSWORD":
		return config.RedisPassword
	case "REDIS_DB":
		return orDefault(config.RedisDB, "0")
	default:
		return ""
	}
}

// GetConfigInt parses the value for key, falling back to def when it is
// missing or malformed.
func GetConfigInt(key string, def int) int {
	v, err := strconv.Atoi(GetConfig(key))
	if err != nil {
		return def
	}
	return v
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
