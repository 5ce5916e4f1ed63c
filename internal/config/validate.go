package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDataset(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDataset() error {
	if c.Dataset.Path == "" {
		return errors.New("dataset.path must be set")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.Limit <= 0 {
		return errors.New("recommend.limit must be positive")
	}
	if c.Recommend.SimilarLimit <= 0 {
		return errors.New("recommend.similar_limit must be positive")
	}
	if c.Recommend.MinRatingFloor > c.Recommend.MinRatingCeiling {
		return fmt.Errorf("recommend.min_rating_floor (%.1f) exceeds min_rating_ceiling (%.1f)",
			c.Recommend.MinRatingFloor, c.Recommend.MinRatingCeiling)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
