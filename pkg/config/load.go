package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the configuration from the environment. The first of
// envFilePath found (searching upwards from the working directory) is
// loaded into the environment first; with no paths, a nearby .env is
// tried. Variables already set in the environment win.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	if len(envFilePath) == 0 {
		envFilePath = []string{".env"}
	}

	for _, path := range envFilePath {
		foundPath, err := FindEnvTest(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path)
			continue
		}
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		logger.Info("Environment loaded from file", "path", foundPath)
		break
	}
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Default().Info("App config loaded",
		"env", cfg.Env,
		"db_driver", cfg.DB.Driver,
		"db", maskValue(cfg.DB.Url),
		"auth_strategy", cfg.Auth.Strategy,
		"auth_jwt_expiry", cfg.Auth.Jwt.Expiry,
		"redis", maskValue(cfg.Redis.URL),
		"dashboard_cache_ttl", cfg.Dashboard.CacheTTL,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
	)
	return &cfg, nil
}

// Validate checks the rules envconfig cannot express.
func (c *App) Validate() error {
	var errs []error
	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("DATABASE_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.DB.Driver))
	}
	if c.DB.Url == "" {
		errs = append(errs, errors.New("DATABASE_URL is not set"))
	}
	switch c.Auth.Strategy {
	case AuthStrategyJWT:
		if c.Auth.Jwt.Secret == "" {
			errs = append(errs, errors.New("AUTH_JWT_SECRET is required for the jwt strategy"))
		}
	case AuthStrategyDev:
		if c.Env == "production" {
			errs = append(errs, errors.New("the dev auth strategy cannot run in production"))
		}
	default:
		errs = append(errs, fmt.Errorf("AUTH_STRATEGY must be %q or %q, got %q", AuthStrategyJWT, AuthStrategyDev, c.Auth.Strategy))
	}
	return errors.Join(errs...)
}

// FindEnvTest searches for the nearest file named filename, starting at
// the working directory and walking up. Empty filename means .env.
func FindEnvTest(filename string) (string, error) {
	if filename == "" {
		filename = ".env"
	}
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err != nil {
			return "", err
		}
		return filename, nil
	}
	curr, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(curr, filename)
		if _, err = os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(curr)
		if parent == curr {
			return "", os.ErrNotExist
		}
		curr = parent
	}
}

func maskValue(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
