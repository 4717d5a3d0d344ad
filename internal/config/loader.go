package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultPath is consulted when CONFIG_PATH is unset; a missing file is
// then not an error and the environment alone supplies the settings.
const defaultPath = "./config.yaml"

// Load assembles the configuration and validates it. Environment
// variables override YAML values, which override the struct defaults.
func Load() (*Config, error) {
	cfg := new(Config)

	path, required := configPath()
	err := cleanenv.ReadConfig(path, cfg)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !required:
		// No file to merge; defaults plus environment.
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

// configPath resolves the YAML location and whether it must exist.
func configPath() (string, bool) {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p, true
	}
	return defaultPath, false
}

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Dict.MainDictPathList()) == 0 {
		return fmt.Errorf("dict.main_dict_paths must name at least one candidate file")
	}
	if c.Dict.UserDataDir == "" {
		return fmt.Errorf("dict.user_data_dir must not be empty")
	}
	for _, tok := range strings.Split(c.IME.Fuzzy, ",") {
		tok = strings.TrimSpace(strings.ToLower(tok))
		if tok == "" {
			continue
		}
		if _, ok := fuzzyNames[tok]; !ok {
			return fmt.Errorf("ime.fuzzy: unknown token %q", tok)
		}
	}
	return nil
}
