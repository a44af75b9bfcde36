package util

import "os"

// Getenv returns the environment variable, or the default value if not set
func Getenv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}
