package app

import (
	"context"
	"log/slog"

	"github.com/amirasaad/retailbank/pkg/config"
	"github.com/amirasaad/retailbank/pkg/domain/bank"
	"github.com/amirasaad/retailbank/pkg/repository"
	banksvc "github.com/amirasaad/retailbank/pkg/service/bank"
)

// Deps contains the infrastructure the application services are built from.
type Deps struct {
	Store  repository.Store
	Logger *slog.Logger
}

type App struct {
	Deps        *Deps
	Config      *config.App
	Bank        *bank.Bank
	BankService *banksvc.Service
}

// New wires the services over a fresh, empty bank. Call Start to hydrate it.
func New(deps *Deps, cfg *config.App) *App {
	b := bank.New(cfg.BankName)
	return &App{
		Deps:        deps,
		Config:      cfg,
		Bank:        b,
		BankService: banksvc.New(b, deps.Store, deps.Logger),
	}
}

// Start loads persisted state into the bank.
func (a *App) Start(ctx context.Context) error {
	return a.BankService.Load(ctx)
}
