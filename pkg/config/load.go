package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads an optional .env file and then the process environment into App.
// Each envFilePath is searched for upward from the working directory and the
// first one found is used. Values already set in the environment win over the file.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	if len(envFilePath) == 0 {
		envFilePath = []string{".env"}
	}

	for _, path := range envFilePath {
		foundPath, err := FindEnvFile(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path)
			continue
		}
		if err := godotenv.Load(foundPath); err != nil {
			logger.Warn("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		logger.Debug("Loaded environment file", "path", foundPath)
		break
	}
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	slog.Default().Debug("App config loaded",
		"env", cfg.Env,
		"bank", cfg.BankName,
		"store_dir", cfg.Store.Dir,
		"log_level", cfg.Log.Level,
		"log_format", cfg.Log.Format,
	)
	return &cfg, nil
}
