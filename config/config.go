package config

import (
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the sqlite database named by DB_PATH (default korba.db).
func InitDB() (*gorm.DB, error) {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "korba.db"
	}

	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

// ChatConfig carries the settings for the concierge text-generation endpoint.
type ChatConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// LoadChatConfig reads the chat settings from the environment. The defaults
// target Gemini's OpenAI-compatible endpoint.
func LoadChatConfig() ChatConfig {
	cfg := ChatConfig{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		BaseURL: os.Getenv("CHAT_BASE_URL"),
		Model:   os.Getenv("CHAT_MODEL"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-1.5-flash"
	}
	return cfg
}
