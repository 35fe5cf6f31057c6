package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all server settings, read from the environment. main loads
// a .env file first, so local development overrides live there.
type Config struct {
	Addr           string
	AllowedOrigins []string

	MaxRoomSize       int
	MaxRooms          int
	MaxMessageSize    int
	MessagesPerSecond float64
	BurstSize         int
}

// Load reads configuration from environment variables with sane defaults.
// MAX_MESSAGE_SIZE must leave room for full-canvas snapshot data URLs.
func Load() *Config {
	return &Config{
		Addr:              envString("ADDR", ":8080"),
		AllowedOrigins:    envList("DOMAINS"),
		MaxRoomSize:       envInt("MAX_ROOM_SIZE", 50),
		MaxRooms:          envInt("MAX_ROOMS", 1000),
		MaxMessageSize:    envInt("MAX_MESSAGE_SIZE", 2*1024*1024),
		MessagesPerSecond: envFloat("MESSAGES_PER_SECOND", 60),
		BurstSize:         envInt("BURST_SIZE", 20),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}

	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
