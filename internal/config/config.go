// SPDX-License-Identifier: EPL-2.0

// Package config reads the player settings from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	OutputOto      = "oto"
	OutputHeadless = "headless"
)

type Config struct {
	Output     string // device backend
	RecordPath string // headless backend recording, .wav or .aiff
	FPS        int
	PlotPoints int
	CoverCols  int

	// Logging
	LogFilePath   string
	LogLevel      string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
}

// LoadConfig reads an optional .env file from the working directory, then
// the environment. Values already set in the environment win over the file.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Output:     getEnv("AUDVIS_OUTPUT", OutputOto),
		RecordPath: getEnv("AUDVIS_RECORD", ""),
		FPS:        getEnvAsInt("AUDVIS_FPS", 30),
		PlotPoints: getEnvAsInt("AUDVIS_PLOT_POINTS", 288),
		CoverCols:  getEnvAsInt("AUDVIS_COVER_COLS", 24),

		LogFilePath:   getEnv("AUDVIS_LOG_FILE", ""),
		LogLevel:      getEnv("AUDVIS_LOG_LEVEL", "warn"),
		LogMaxSizeMB:  getEnvAsInt("AUDVIS_LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvAsInt("AUDVIS_LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvAsInt("AUDVIS_LOG_MAX_AGE_DAYS", 7),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
