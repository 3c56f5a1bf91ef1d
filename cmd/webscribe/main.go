package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/patrickprogramme/webscribe/internal/assets"
	"github.com/patrickprogramme/webscribe/internal/bootstrap"
	"github.com/patrickprogramme/webscribe/internal/config"
	"github.com/patrickprogramme/webscribe/internal/fsutil"
	"github.com/patrickprogramme/webscribe/internal/logger"
	"github.com/patrickprogramme/webscribe/internal/server"
	"github.com/patrickprogramme/webscribe/internal/updater"
	"github.com/patrickprogramme/webscribe/internal/webui"
	"github.com/patrickprogramme/webscribe/internal/yt"
)

// Version est renseignée au build via -ldflags "-X main.Version=...".
var Version = "dev"

type cliFlags struct {
	ConfigPath     string
	Addr           string
	ExportDefaults bool
}

func main() {
	flags := parseFlags()

	// déterminer exePath/binDir
	binDir := "."
	exePath, err := os.Executable()
	if err != nil {
		log.Printf("impossible de déterminer le chemin de l'executable: %v", err)
	} else {
		binDir = filepath.Dir(exePath)
	}

	// emplacement config par défaut
	if flags.ConfigPath == "webscribe.yaml" || flags.ConfigPath == "" {
		flags.ConfigPath = filepath.Join(binDir, "webscribe.yaml")
	}

	// -export-defaults : déposer les assets embarqués à côté du binaire puis sortir
	if flags.ExportDefaults {
		status, err := bootstrap.ExportDefaults(assets.Embedded, "templates", filepath.Join(binDir, "templates"), false)
		for p, st := range status {
			fmt.Printf("%s: %s\n", p, st)
		}
		if err != nil {
			log.Fatalf("export defaults: %v", err)
		}
		return
	}

	// s'assurer que le fichier config existe, si non on le crée
	if err := bootstrap.EnsureConfigPresent(
		flags.ConfigPath,
		assets.Embedded,
		assets.DefaultConfigAsset,
	); err != nil {
		log.Printf("erreur: EnsureConfigPresent: %v", err)
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}
	warnings, err := cfg.Validate()
	if err != nil {
		log.Fatalf("config validate: %v", err)
	}

	// appliquer le flag -addr par-dessus la config
	if flags.Addr != "" {
		cfg.Server.Addr = flags.Addr
	}

	zlog, err := logger.New(cfg.Server.Mode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()
	for _, w := range warnings {
		zlog.Warn("config", "warning", w)
	}

	ytClient := &yt.Client{
		Timeout:        cfg.FetchTimeout(),
		MaxBytes:       cfg.Fetch.MaxBytes,
		UserAgent:      cfg.Fetch.UserAgent,
		AcceptLanguage: cfg.Fetch.AcceptLanguage,
	}

	// templates personnalisés à côté du binaire (via -export-defaults),
	// sinon la page embarquée
	var renderer *webui.Renderer
	tplDir := filepath.Join(binDir, "templates")
	if ok, _ := fsutil.DirHasMatchingFiles(tplDir, []string{"*.tmpl"}); ok {
		renderer, err = webui.DiskRenderer(exePath)
	} else {
		renderer, err = webui.EmbeddedRenderer()
	}
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}
	if err := renderer.ParseNow(); err != nil {
		log.Fatalf("parse templates: %v", err)
	}

	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.AutoUpdateCheck {
		go checkForUpdate(ctx, zlog)
	}

	srv := server.New(cfg, zlog, ytClient, renderer)
	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      srv.Router(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
	}

	go func() {
		zlog.Info("server listening", "addr", cfg.Server.Addr, "version", Version)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server", "error", err.Error())
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zlog.Error("shutdown", "error", err.Error())
	}
}

func checkForUpdate(ctx context.Context, zlog *logger.Logger) {
	check, err := updater.CheckSelfUpdate(ctx, Version)
	if err != nil {
		zlog.Warn("update check failed", "error", err.Error())
		return
	}
	if !check.IsUpToDate {
		zlog.Info("a newer version is available",
			"current", check.CurrentVersion,
			"latest", check.LatestRelease.TagName,
			"url", check.LatestRelease.HTMLURL)
	}
}

func parseFlags() *cliFlags {
	f := &cliFlags{}
	flag.StringVar(&f.ConfigPath, "config", "webscribe.yaml", "path to config file")
	flag.StringVar(&f.Addr, "addr", "", "listen address (overrides config)")
	flag.BoolVar(&f.ExportDefaults, "export-defaults", false, "écrire les assets embarqués à côté du binaire puis quitter")
	flag.Parse()
	return f
}
