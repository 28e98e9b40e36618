package app

import (
	"context"
	"log/slog"

	"github.com/amirasaad/networth/pkg/cache"
	"github.com/amirasaad/networth/pkg/config"
	"github.com/amirasaad/networth/pkg/repository"
	"github.com/amirasaad/networth/pkg/service/auth"
	"github.com/amirasaad/networth/pkg/service/category"
	"github.com/amirasaad/networth/pkg/service/dashboard"
	"github.com/amirasaad/networth/pkg/service/export"
	"github.com/amirasaad/networth/pkg/service/ledger"
	"github.com/amirasaad/networth/pkg/service/lineitem"
	"github.com/amirasaad/networth/pkg/service/user"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps contains the infrastructure the services are built on.
type Deps struct {
	Uow            repository.UnitOfWork
	DashboardCache cache.DashboardCache
	DB             Pinger
	Logger         *slog.Logger
}

type App struct {
	Deps             *Deps
	Config           *config.App
	AuthService      *auth.Service
	UserService      *user.Service
	CategoryService  *category.Service
	LineItemService  *lineitem.Service
	LedgerService    *ledger.Service
	DashboardService *dashboard.Service
	ExportService    *export.Service
}

func New(deps *Deps, cfg *config.App) (*App, error) {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.UserService = user.New(deps.Uow, deps.DashboardCache, deps.Logger)
	authSvc, err := auth.FromConfig(cfg.Auth, deps.Uow, app.UserService, deps.Logger)
	if err != nil {
		return nil, err
	}
	app.AuthService = authSvc
	app.CategoryService = category.New(deps.Uow, deps.DashboardCache, deps.Logger)
	app.LineItemService = lineitem.New(deps.Uow, deps.DashboardCache, deps.Logger)
	app.LedgerService = ledger.New(deps.Uow, deps.DashboardCache, deps.Logger)
	app.DashboardService = dashboard.New(deps.Uow, deps.DashboardCache, cfg.Dashboard.CacheTTL, deps.Logger)
	app.ExportService = export.New(deps.Uow, deps.Logger)
	return app, nil
}
