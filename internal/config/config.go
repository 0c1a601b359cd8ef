package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Cinema   StoreConfig
	Banking  StoreConfig
	Receipts ReceiptConfig
}

// StoreConfig identifies one of the two SQLite stores
type StoreConfig struct {
	Path string
}

type ReceiptConfig struct {
	Dir string
}

func Load() (*Config, error) {
	// Load .env files if they exist (try .env.local first, then .env)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	config := &Config{
		Cinema: StoreConfig{
			Path: getEnv("CINEMA_DB_PATH", "cinema.db"),
		},
		Banking: StoreConfig{
			Path: getEnv("BANKING_DB_PATH", "banking.db"),
		},
		Receipts: ReceiptConfig{
			Dir: getEnv("RECEIPT_DIR", "receipts"),
		},
	}

	return config, nil
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
