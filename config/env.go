package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys read by the commands as flag defaults
const (
	EnvConfig = "PLINKO_CONFIG"
	EnvSeed   = "PLINKO_SEED"
	EnvDebug  = "PLINKO_DEBUG"
	EnvLogDir = "PLINKO_LOG_DIR"
	EnvMute   = "PLINKO_MUTE"
)

// LoadDotEnv loads .env files into the environment without overriding set variables
// A missing file is not an error
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func EnvString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// EnvBool returns def when the variable is unset or not a boolean
func EnvBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

// EnvUint64 returns def when the variable is unset or not a number
func EnvUint64(key string, def uint64) uint64 {
	if v, err := strconv.ParseUint(os.Getenv(key), 10, 64); err == nil {
		return v
	}
	return def
}
