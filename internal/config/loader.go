package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultPaths are tried in order when CONFIG_PATH is unset. The server and
// the maintenance commands run from the repo root or from a deploy directory.
var defaultPaths = []string{"./config.yaml", "./configs/config.yaml"}

// Load builds the configuration with priority ENV > YAML > env-default tags
// and validates it. CONFIG_PATH names the YAML file and must exist when set;
// otherwise the first of defaultPaths that exists is read, and with none the
// configuration comes from the environment alone.
func Load() (*Config, error) {
	path, err := resolvePath(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return nil, err
	}

	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = os.Getenv("DATABASE_URL")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func resolvePath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config: file %s: %w", explicit, err)
		}
		return explicit, nil
	}
	for _, p := range defaultPaths {
		_, err := os.Stat(p)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("config: file %s: %w", p, err)
		}
	}
	return "", nil
}
