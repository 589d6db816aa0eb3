package app

import (
	"context"
	"runtime"

	"github.com/doeshing/fontset/internal/application/apply"
	"github.com/doeshing/fontset/internal/application/doctor"
	"github.com/doeshing/fontset/internal/domain"
	"github.com/doeshing/fontset/internal/infrastructure/adapters"
	"github.com/doeshing/fontset/internal/infrastructure/adapters/jsonfile"
	"github.com/doeshing/fontset/internal/infrastructure/config"
	"github.com/doeshing/fontset/internal/infrastructure/executor"
	"github.com/doeshing/fontset/internal/infrastructure/history"
	"github.com/doeshing/fontset/internal/pkg/logger"
	"github.com/doeshing/fontset/internal/ports"
)

// Options tweak how the container is built.
type Options struct {
	Verbose bool
	// ConfigPath overrides the config file location.
	ConfigPath string
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config         domain.Config
	ApplyService   *apply.Service
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	DoctorService  *doctor.Service
	HistoryStore   ports.HistoryRepository
	Resolver       ports.AdapterResolver
	Logger         *logger.StdLogger
}

// BuildContainer constructs the dependency graph. The Reporter of the apply
// service is left for the caller to set.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(opts.Verbose)
	runner := executor.NewLocalExecutor(log)

	registry, err := adapters.NewRegistry(adapters.Dependencies{
		GOOS:    runtime.GOOS,
		Config:  cfg,
		Layout:  jsonfile.DefaultLayout(runtime.GOOS),
		Locator: executor.NewPathLocator(),
		Runner:  runner,
		Logger:  log,
	})
	if err != nil {
		return nil, err
	}

	historyStore := history.NewSQLiteStore(cfg.History.Path)

	applyService := &apply.Service{
		Resolver: registry,
		Logger:   log,
	}
	if cfg.History.Enabled {
		applyService.HistoryStore = historyStore
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		Resolver:       registry,
		HistoryStore:   historyStore,
	}

	return &Container{
		Config:         cfg,
		ApplyService:   applyService,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		DoctorService:  doctorService,
		HistoryStore:   historyStore,
		Resolver:       registry,
		Logger:         log,
	}, nil
}
