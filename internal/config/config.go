package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type Config struct {
	ServerPort    string
	MongoURI      string
	MongoDatabase string

	TokenSecret    string
	PasswordPepper string
	BcryptCost     int

	Email       EmailConfig
	FrontendURL string
	AssetsDir   string
}

// Load reads .env (if present) and then the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnv("MONGO_DATABASE", "clinic_booking"),
		TokenSecret:    getEnv("TOKEN_SECRET", ""),
		PasswordPepper: getEnv("BCRYPT_PASSWORD", ""),
		BcryptCost:     getEnvInt("SALT_ROUNDS", 10),
		Email: EmailConfig{
			Host:     getEnv("EMAIL_HOST", "localhost"),
			Port:     getEnvInt("EMAIL_PORT", 587),
			Username: getEnv("EMAIL_USER", ""),
			Password: getEnv("EMAIL_PASS", ""),
			From:     getEnv("EMAIL_FROM", "a-team@clinics.local"),
		},
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		AssetsDir:   getEnv("ASSETS_DIR", "./assets"),
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
