// Package config provides shared configuration utilities and centralizes
// all tunable game parameters.
package config

import (
	"os"
	"strconv"
	"strings"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvBool interprets the variable as a switch. "0", "false", "off" and
// "no" (any case) disable it, any other non-empty value enables it.
// Unset or empty variables yield fallback.
func GetEnvBool(key string, fallback bool) bool {
	value := strings.TrimSpace(GetEnv(key, ""))
	if value == "" {
		return fallback
	}
	switch strings.ToLower(value) {
	case "0", "false", "off", "no":
		return false
	}
	return true
}

// GetEnvUint64 parses the variable as an unsigned integer.
// ok is false when the variable is unset or not a valid number.
func GetEnvUint64(key string) (value uint64, ok bool) {
	raw, set := os.LookupEnv(key)
	if !set {
		return 0, false
	}
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
