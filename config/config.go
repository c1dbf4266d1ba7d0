package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/they4kman/lightsout/logging"
)

// Server configures `lightsout serve`
type Server struct {
	Port      int
	DataFile  string
	PublicDir string

	LogLevel string
	LogJSON  bool
}

func Defaults() Server {
	return Server{
		Port:      3000,
		DataFile:  "server/data/projects.json",
		PublicDir: "public",
		LogLevel:  "info",
	}
}

// Load reads envFiles into the environment (missing files are skipped, and
// variables already set win), then builds the config from the environment
// over Defaults.
func Load(envFiles ...string) (Server, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Server{}, err
		}
		logging.Log.WithField("file", file).Debug("loaded env file")
	}

	return FromEnv(os.LookupEnv)
}

// FromEnv builds the config from PORT, DATA_FILE, PUBLIC_DIR, LOG_LEVEL and
// LOG_FORMAT ("json" for JSON logs), using lookup to read them.
func FromEnv(lookup func(string) (string, bool)) (Server, error) {
	cfg := Defaults()

	if port, ok := lookup("PORT"); ok && port != "" {
		parsed, err := strconv.Atoi(port)
		if err != nil || parsed <= 0 || parsed > 65535 {
			return Server{}, &InvalidError{Key: "PORT", Value: port}
		}
		cfg.Port = parsed
	}
	if dataFile, ok := lookup("DATA_FILE"); ok && dataFile != "" {
		cfg.DataFile = dataFile
	}
	if publicDir, ok := lookup("PUBLIC_DIR"); ok && publicDir != "" {
		cfg.PublicDir = publicDir
	}
	if level, ok := lookup("LOG_LEVEL"); ok && level != "" {
		cfg.LogLevel = level
	}
	if format, ok := lookup("LOG_FORMAT"); ok {
		cfg.LogJSON = strings.EqualFold(strings.TrimSpace(format), "json")
	}

	return cfg, nil
}

type InvalidError struct {
	Key   string
	Value string
}

func (err *InvalidError) Error() string {
	return "invalid value for " + err.Key + ": " + strconv.Quote(err.Value)
}
