package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli"

	"github.com/pomod/pomod/internal/api"
	"github.com/pomod/pomod/internal/notify"
	"github.com/pomod/pomod/internal/scheduler"
	"github.com/pomod/pomod/internal/server"
	"github.com/pomod/pomod/internal/store"
	"github.com/pomod/pomod/pkg/keyring"
	"github.com/pomod/pomod/pkg/logger"
)

const storeFileName = "pomod.db"

func daemon(ctx *cli.Context) error {
	// A .env beside the binary can override the environment in dev setups.
	_ = godotenv.Load()

	cfg, err := loadDaemonConfig()
	if err != nil {
		printRuntimeErr(ctx, "daemon", "load_config", err)
		return nil
	}

	var l logger.Logger = logger.NewStandardLogger(log.Default())
	if cfg.LogFile != "" {
		fl, err := logger.NewFileLogger(cfg.LogFile)
		if err != nil {
			printRuntimeErr(ctx, "daemon", "open_log", err)
			return nil
		}
		l = fl
	}
	defer l.Close()

	dataDir, err := dataDirFromConfig(cfg)
	if err != nil {
		printRuntimeErr(ctx, "daemon", "data_dir", err)
		return nil
	}
	st, err := store.Open(filepath.Join(dataDir, storeFileName))
	if err != nil {
		printRuntimeErr(ctx, "daemon", "open_store", err)
		return nil
	}

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The api is created after the scheduler, so the trigger callback
	// dispatches through a late-bound pointer.
	var a *api.Api
	sched := scheduler.New(runCtx, func(key string) {
		a.OnTrigger(key)
	})

	a = api.NewApi(l, st, sched, notify.NewDesktopNotifier(l), currentBuildArgs.Version, currentBuildArgs.BuildType)
	defer a.Close()

	var web *server.WebServer
	if cfg.Web.Enabled {
		token, err := keyring.NewKeyring().EnsureToken()
		if err != nil {
			l.Warning("web bridge token unavailable, bridge disabled: %v", err)
		} else {
			web = server.NewWebServer(l, a, cfg.Web.Port, token)
		}
	}

	socketPath := cfg.SocketPath
	if socketPath == "" {
		socketPath = server.DefaultSocketPath()
	}
	serv := server.NewServer(l, socketPath, cfg.TCPPort, web)
	a.RegisterHandlers(serv)

	// Restore triggers from persisted state before accepting commands.
	if err := a.Reconcile(); err != nil {
		printRuntimeErr(ctx, "daemon", "reconcile", err)
		return nil
	}

	if err := writePidFile(dataDir); err != nil {
		l.Warning("writing pid file: %v", err)
	}
	defer removePidFile(dataDir)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		l.Info("received %s, shutting down", sig)
		cancel()
	}()

	return serv.Start(runCtx)
}
