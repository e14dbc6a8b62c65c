package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/EpicMandM/lhms/internal/config"
	"github.com/EpicMandM/lhms/internal/console"
	"github.com/EpicMandM/lhms/internal/logger"
	"github.com/EpicMandM/lhms/internal/service"
	"github.com/EpicMandM/lhms/internal/store"
)

type App struct {
	ctx        context.Context
	logger     *logger.Logger
	logFile    io.Closer
	featureCfg *service.FeatureConfig
	shell      *console.Shell
}

func main() {
	app := &App{
		ctx:    context.Background(),
		logger: logger.New(),
	}

	if err := app.run(os.Stdin, os.Stdout); err != nil {
		app.logger.Error("Application error", logger.Error(err))
		os.Exit(1)
	}
}

func (a *App) run(in io.Reader, out io.Writer) error {
	if err := a.initialize(".env", in, out); err != nil {
		return err
	}
	defer a.close()

	return a.shell.Run(a.ctx)
}

func (a *App) initialize(envPath string, in io.Reader, out io.Writer) error {
	infraCfg, err := config.LoadWithFile(envPath)
	if err != nil {
		a.logger.Error("Failed to load infrastructure config", logger.Error(err), logger.Path(envPath))
		return err
	}

	if infraCfg.LogFile != "" {
		file, err := os.OpenFile(infraCfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
		if err != nil {
			a.logger.Error("Failed to open log file", logger.Error(err), logger.Path(infraCfg.LogFile))
			return fmt.Errorf("opening log file: %w", err)
		}
		a.logFile = file
		a.logger = logger.NewWithWriter(file, infraCfg.Level())
	} else {
		a.logger = logger.NewWithWriter(os.Stderr, infraCfg.Level())
	}

	featureCfg, err := service.LoadFeatureConfig(infraCfg.ConfigPath)
	if err != nil {
		a.logger.Error("Failed to load feature config", logger.Error(err), logger.Path(infraCfg.ConfigPath))
		return err
	}
	a.featureCfg = featureCfg

	register := service.NewRegister(store.NewMemoryStore(), a.logger)
	snapshots := service.NewSnapshotFile(featureCfg.Storage, a.logger)
	a.shell = console.NewShell(register, snapshots, featureCfg.Hotel.Name, in, out, a.logger)

	a.logStartup()
	return nil
}

func (a *App) logStartup() {
	a.logger.Info("Register ready",
		logger.Action("startup"),
		logger.Status("ready"),
		logger.Path(a.featureCfg.Storage.DataFile()),
		logger.F("HOTEL", a.featureCfg.Hotel.Name),
		logger.F("FIXED_ID", a.featureCfg.Storage.FixedID))
}

func (a *App) close() {
	if a.logFile == nil {
		return
	}
	if err := a.logFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
	}
}
