package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/chronos/internal/catalog"
	"github.com/alexanderramin/chronos/internal/cli"
	"github.com/alexanderramin/chronos/internal/config"
	"github.com/alexanderramin/chronos/internal/db"
	"github.com/alexanderramin/chronos/internal/generation"
	"github.com/alexanderramin/chronos/internal/intelligence"
	"github.com/alexanderramin/chronos/internal/llm"
	"github.com/alexanderramin/chronos/internal/repository"
	"github.com/alexanderramin/chronos/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	llmCfg, err := llm.LoadConfig()
	if err != nil {
		return err
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	scenarioRepo := repository.NewSQLiteScenarioRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	library := service.NewScenarioLibrary(scenarioRepo, uow, service.NewLogUseCaseObserver(logger))

	// Remote generation is only wired when a credential is configured.
	var remote intelligence.RemoteScenarioClient
	if llmCfg.Enabled() {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(logger)
		}
		remote = intelligence.NewRemoteScenarioClient(llm.NewGeminiClient(llmCfg, observer))
	}
	generator := generation.NewGenerator(cat)
	scenariosFor := func(seed int64) intelligence.ScenarioService {
		return intelligence.NewScenarioService(remote, generator, llmCfg.APIKey, generation.NewSource(seed), logger)
	}

	app := &cli.App{
		Scenarios:        scenariosFor(cfg.Seed),
		SeededScenarios:  scenariosFor,
		Library:          library,
		ClusterThreshold: cfg.ClusterThreshold,
		HTTPAddr:         cfg.HTTPAddr,
		Logger:           logger,
		IsTerminal: func() bool {
			return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
