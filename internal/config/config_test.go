package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "webscribe.yaml")
	yaml := []byte(`
server:
  addr: "0.0.0.0:9000"
  mode: PROD
render:
  display_mode: no_ts_block
  include_title: true
config_version: 1
`)
	if err := os.WriteFile(path, yaml, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr != "0.0.0.0:9000" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.Mode != "prod" {
		t.Errorf("Mode doit être normalisé en minuscules, obtenu %q", cfg.Server.Mode)
	}
	if cfg.Render.DisplayMode != "no_ts_block" {
		t.Errorf("DisplayMode = %q", cfg.Render.DisplayMode)
	}
	if !cfg.Render.IncludeTitle {
		t.Error("IncludeTitle doit être vrai")
	}

	// champs absents du YAML -> valeurs par défaut
	if cfg.Fetch.TimeoutSec != 15 {
		t.Errorf("TimeoutSec = %d, attendu le défaut 15", cfg.Fetch.TimeoutSec)
	}
	if cfg.Export.Format != "txt" {
		t.Errorf("Format = %q, attendu le défaut txt", cfg.Export.Format)
	}
}

func TestLoadCreatesDefaultFromEmbedded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "webscribe.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("le fichier de configuration doit avoir été créé : %v", err)
	}
	if cfg.Server.Addr == "" {
		t.Error("Addr vide après création depuis l'asset embarqué")
	}
}

func TestValidateRejectsBadAddr(t *testing.T) {
	cfg := defaultConfig()
	cfg.Server.Addr = "pas-une-adresse"
	if _, err := cfg.Validate(); err == nil {
		t.Error("Validate doit refuser une adresse sans port")
	}
}

func TestValidateWarnsOnUnknownMode(t *testing.T) {
	cfg := defaultConfig()
	cfg.Render.DisplayMode = "fancy"
	warnings, err := cfg.Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(warnings) == 0 {
		t.Error("un mode d'affichage inconnu doit produire un warning")
	}
	if cfg.Render.DisplayMode != "ts_newline" {
		t.Errorf("DisplayMode doit retomber sur ts_newline, obtenu %q", cfg.Render.DisplayMode)
	}
}
