package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const envFileEnvVar = "ENV_FILE"

// loadEnvFile loads environment variables before the config options are
// resolved. ENV_FILE points at an explicit file; otherwise .env in the
// working directory is loaded when present.
func loadEnvFile() error {
	if path := os.Getenv(envFileEnvVar); path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("loading env file %s: %w", path, err)
		}
		return nil
	}

	err := godotenv.Load()
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading .env file: %w", err)
}
