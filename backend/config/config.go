package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	SessionSecret string
	DBPath        string
	UploadDir     string
	MaxUploadMB   int
	AllowedExts   []string
	ServerPort    string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	cfg := &Config{
		SessionSecret: getEnv("SESSION_SECRET", ""),
		DBPath:        getEnv("DB_PATH", "cs_teaching.db"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadMB:   getEnvInt("MAX_UPLOAD_MB", 100),
		AllowedExts:   parseExtensions(getEnv("ALLOWED_EXTENSIONS", ".blend")),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
	}

	// Without an explicit secret, sessions do not survive a restart
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = randomSecret()
	}

	return cfg, nil
}

// MaxUploadBytes returns the request body cap in bytes.
func (c *Config) MaxUploadBytes() int {
	return c.MaxUploadMB * 1024 * 1024
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

// parseExtensions normalizes a comma-separated list like ".blend,.fbx"
// to lowercase extensions with a leading dot.
func parseExtensions(raw string) []string {
	var exts []string
	for _, part := range strings.Split(raw, ",") {
		ext := strings.ToLower(strings.TrimSpace(part))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	return exts
}

func randomSecret() string {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("Could not generate session secret: %v", err)
	}
	return hex.EncodeToString(buf)
}
