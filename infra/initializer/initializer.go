// Package initializer builds the process-wide dependencies from configuration.
package initializer

import (
	"errors"
	"io"

	"github.com/amirasaad/retailbank/infra/repository/textfile"
	"github.com/amirasaad/retailbank/pkg/app"
	"github.com/amirasaad/retailbank/pkg/config"
)

// InitializeDependencies sets up the logger, writing to logOut, and the text-file store.
func InitializeDependencies(cfg *config.App, logOut io.Writer) (*app.Deps, error) {
	if cfg == nil || cfg.Log == nil || cfg.Store == nil {
		return nil, errors.New("incomplete configuration")
	}
	logger := setupLogger(logOut, cfg.Log)

	store := textfile.New(textfile.Config{
		Dir:              cfg.Store.Dir,
		CustomersFile:    cfg.Store.CustomersFile,
		AccountsFile:     cfg.Store.AccountsFile,
		TransactionsFile: cfg.Store.TransactionsFile,
	}, logger)

	logger.Debug("Dependencies initialized", "env", cfg.Env, "store_dir", cfg.Store.Dir)
	return &app.Deps{
		Store:  store,
		Logger: logger,
	}, nil
}
