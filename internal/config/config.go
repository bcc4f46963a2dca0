package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	BoardRows          int
	BoardColumns       int
	Player1Label       string
	Player2Label       string
	AnnounceDelay      time.Duration
	AllowedOrigins     []string
	FrontendURL        string
	SessionIdleTTL     time.Duration
	SessionFinishedTTL time.Duration
	CleanupInterval    time.Duration
}

var AppConfig *Config

// LoadEnvFile loads .env from the working directory or its parent, if any.
func LoadEnvFile() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("[CONFIG] No .env file found")
		}
	}
}

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Board
	rows := GetEnvAsInt("BOARD_ROWS", 6)
	columns := GetEnvAsInt("BOARD_COLUMNS", 7)
	player1Label := GetEnv("PLAYER1_LABEL", "Pacman")
	player2Label := GetEnv("PLAYER2_LABEL", "Ghost")
	announceDelay := GetEnvAsDuration("ANNOUNCE_DELAY_MS", 500*time.Millisecond, time.Millisecond)

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:"+port)
	allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", "")

	// Build allowed origins list (Frontend URL + Localhost + CSV values)
	allowedOrigins := []string{
		frontendURL,
		"http://localhost:5173", // Local development
	}
	if allowedOriginsStr != "" {
		extras := strings.Split(allowedOriginsStr, ",")
		for _, origin := range extras {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	// Session housekeeping
	idleTTL := GetEnvAsDuration("SESSION_IDLE_TTL_MINUTES", 24*time.Hour, time.Minute)
	finishedTTL := GetEnvAsDuration("SESSION_FINISHED_TTL_MINUTES", time.Hour, time.Minute)
	cleanupInterval := GetEnvAsDuration("CLEANUP_INTERVAL_MINUTES", time.Hour, time.Minute)

	AppConfig = &Config{
		Port:               port,
		BoardRows:          rows,
		BoardColumns:       columns,
		Player1Label:       player1Label,
		Player2Label:       player2Label,
		AnnounceDelay:      announceDelay,
		AllowedOrigins:     allowedOrigins,
		FrontendURL:        frontendURL,
		SessionIdleTTL:     idleTTL,
		SessionFinishedTTL: finishedTTL,
		CleanupInterval:    cleanupInterval,
	}

	return AppConfig
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	if c.BoardRows < 4 || c.BoardColumns < 4 {
		return fmt.Errorf("board must be at least 4x4, got %dx%d", c.BoardRows, c.BoardColumns)
	}
	if c.Player1Label == c.Player2Label {
		return fmt.Errorf("player labels must differ, both are %q", c.Player1Label)
	}
	if c.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup interval must be positive, got %s", c.CleanupInterval)
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsDuration reads an integer count of unit, e.g. minutes.
func GetEnvAsDuration(key string, defaultValue, unit time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil || value < 0 {
		log.Printf("Invalid duration value for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}
	return time.Duration(value) * unit
}
