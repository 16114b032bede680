package config

import (
	"os"
)

type Config struct {
	BackendURL  string
	ServerPort  string
	ImageBucket string
}

func LoadConfig() *Config {
	return &Config{
		BackendURL:  getEnvOrDefault("BACKEND_URL", "https://street-ware-backend.onrender.com"),
		ServerPort:  getEnvOrDefault("PORT", "8080"),
		ImageBucket: getEnvOrDefault("IMAGE_BUCKET", "streetware"),
	}
}

func getEnvOrDefault(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}
