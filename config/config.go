package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var loaded bool

// Config reads a variable from .env / the environment.
func Config(key string) string {
	if !loaded {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("No .env file found, using environment variables")
		}
		loaded = true
	}
	return os.Getenv(key)
}
