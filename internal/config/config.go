package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	// CatalogURL is the remote catalog endpoint. GET lists products,
	// POST (multipart) creates one.
	CatalogURL string
	// TokenFile is where the client keeps its authorization token.
	// Read at submission time, never written.
	TokenFile string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		CatalogURL: getEnvOrDefault("CATALOG_URL", "http://localhost:3300"),
		TokenFile:  getEnvOrDefault("TOKEN_FILE", ".jwt"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
