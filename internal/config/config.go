package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	dataDir := os.Getenv("STORE_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	return &Config{
		DataDir: dataDir,
	}
}
