package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"

	"reelpick/internal/catalog"
	"reelpick/internal/config"
	"reelpick/internal/dataset"
	"reelpick/internal/logging"
)

// app bundles the loaded dataset and the services built from it.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	movies []dataset.Movie
	store  *catalog.Store
	genres []string
}

// commandContext lazily loads configuration and the dataset so that commands
// which never touch them (config init) stay cheap.
type commandContext struct {
	configFlag  *string
	datasetFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	appOnce sync.Once
	app     *app
	appErr  error
}

func newCommandContext(configFlag, datasetFlag *string) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		datasetFlag: datasetFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureApp loads the dataset and populates the in-memory catalog. Dataset
// errors (missing file, bad schema) surface here and abort the command.
func (c *commandContext) ensureApp(ctx context.Context) (*app, error) {
	c.appOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.appErr = err
			return
		}

		// Logs go to stderr so prompts and tables own stdout.
		logger, err := logging.NewFromConfig(cfg, os.Stderr)
		if err != nil {
			c.appErr = err
			return
		}

		path := cfg.Dataset.Path
		if c.datasetFlag != nil && strings.TrimSpace(*c.datasetFlag) != "" {
			path, err = config.ExpandPath(strings.TrimSpace(*c.datasetFlag))
			if err != nil {
				c.appErr = err
				return
			}
		}

		movies, err := dataset.Load(path)
		if err != nil {
			c.appErr = err
			return
		}

		store, err := catalog.Open(ctx)
		if err != nil {
			c.appErr = err
			return
		}
		if err := store.Load(ctx, movies); err != nil {
			_ = store.Close()
			c.appErr = err
			return
		}

		logger.Info("dataset loaded",
			slog.String("path", path),
			slog.Int("movies", len(movies)))

		c.app = &app{
			cfg:    cfg,
			logger: logger,
			movies: movies,
			store:  store,
			genres: dataset.GenreCatalog(movies),
		}
	})
	return c.app, c.appErr
}
