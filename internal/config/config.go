package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Dataset contains the movie dataset location.
type Dataset struct {
	Path string `toml:"path"`
}

// Recommend contains recommendation sizing and rating-prompt bounds.
type Recommend struct {
	Limit            int     `toml:"limit"`
	SimilarLimit     int     `toml:"similar_limit"`
	MinRatingFloor   float64 `toml:"min_rating_floor"`
	MinRatingCeiling float64 `toml:"min_rating_ceiling"`
}

// Logging contains log output settings.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates all configuration values for reelpick.
type Config struct {
	Dataset   Dataset   `toml:"dataset"`
	Recommend Recommend `toml:"recommend"`
	Logging   Logging   `toml:"logging"`
}

// Load locates, parses, and validates a configuration file. The returned
// config has the dataset path expanded. exists reports whether a file was
// actually read (defaults apply either way).
func Load(path string) (cfg *Config, resolvedPath string, exists bool, err error) {
	defaults := Default()

	resolvedPath, exists, err = resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&defaults); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := defaults.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := defaults.Validate(); err != nil {
		return nil, "", false, err
	}

	return &defaults, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("reelpick.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// DefaultConfigPath returns the expanded user-level config location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/reelpick/config.toml")
}

func (c *Config) normalize() error {
	path := strings.TrimSpace(c.Dataset.Path)
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return err
		}
		c.Dataset.Path = expanded
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes the sample configuration file to the specified location.
func CreateSample(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory %q: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
