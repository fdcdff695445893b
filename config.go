// config.go

package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string
	Port     int
	GinMode  string
	// "*" allows any origin.
	AllowOrigins []string
}

// LoadConfig reads an optional .env file and then the environment. A missing
// .env is not an error.
func LoadConfig() Config {
	_ = godotenv.Load()

	env := getEnv("APP_ENV", "dev")
	mode := gin.ReleaseMode
	if env == "dev" {
		mode = gin.DebugMode
	}

	return Config{
		AppEnv:       env,
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Port:         getEnvInt("PORT", 3001),
		GinMode:      getEnv("GIN_MODE", mode),
		AllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
