package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/five82/oxtail/internal/config"
	"github.com/five82/oxtail/internal/logging"
	"github.com/five82/oxtail/internal/openobserve"
)

type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	configOnce sync.Once
	config     config.Config
	configErr  error
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) ensureConfig() (config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		c.config, c.configErr = config.Load(path)
	})
	return c.config, c.configErr
}

func (c *commandContext) newClient() (*openobserve.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return openobserve.NewClient(cfg.URL, cfg.Org, cfg.Token)
}

func (c *commandContext) logger() *slog.Logger {
	if c.verboseFlag != nil && *c.verboseFlag {
		return logging.New(os.Stderr, "debug")
	}
	return logging.Nop()
}
