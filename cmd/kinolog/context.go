package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"kinolog/internal/accounts"
	"kinolog/internal/catalog"
	"kinolog/internal/config"
	"kinolog/internal/history"
	"kinolog/internal/logging"
	"kinolog/internal/media"
	"kinolog/internal/session"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

// configPathFlag returns the value of the root --config flag, trimmed.
func (c *commandContext) configPathFlag() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPathFlag())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the shared logger. Falls back to a no-op logger when
// config or the log directory is unavailable so commands still run.
func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewForDir(cfg.Paths.LogDir, cfg.Logging.Level, cfg.Logging.Format)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// withAccounts opens the user store for the duration of fn and releases the
// store lock afterwards.
func (c *commandContext) withAccounts(fn func(*accounts.Manager) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	mgr, err := accounts.Open(cfg.UserStorePath(), c.ensureLogger())
	if err != nil {
		return err
	}
	defer mgr.Close()
	return fn(mgr)
}

func (c *commandContext) sessionStore() (*session.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return session.NewStore(cfg.SessionPath()), nil
}

// requireUser resolves the active session to a registered account. A
// session pointing at a deleted account is cleared and reported.
func (c *commandContext) requireUser(mgr *accounts.Manager) (*media.User, error) {
	store, err := c.sessionStore()
	if err != nil {
		return nil, err
	}
	sess, err := store.Current()
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return nil, fmt.Errorf("not logged in; run `kinolog login <username>` first")
		}
		return nil, err
	}
	user := mgr.FindByUsername(sess.Username)
	if user == nil {
		_ = store.ClearIfUser(sess.Username)
		return nil, fmt.Errorf("session references account %q which no longer exists; log in again", sess.Username)
	}
	return user, nil
}

// openCatalog loads the configured sample catalog.
func (c *commandContext) openCatalog() (*catalog.Catalog, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return catalog.Load(cfg.Catalog.Path, cfg.Catalog.WriteBack, c.ensureLogger())
}

// recordEvent appends to the activity log. Best-effort: failures are logged
// and never surfaced to the user action that triggered them.
func (c *commandContext) recordEvent(username, action, subject, detail string) {
	cfg, err := c.ensureConfig()
	if err != nil || !cfg.History.Enabled {
		return
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		c.ensureLogger().Warn("failed to open history store", logging.Error(err))
		return
	}
	defer store.Close()
	if err := store.Append(context.Background(), username, action, subject, detail); err != nil {
		c.ensureLogger().Warn("failed to record history event",
			logging.String("action", action),
			logging.Error(err))
	}
}
