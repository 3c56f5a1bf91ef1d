package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/patrickprogramme/webscribe/internal/assets"
	"github.com/patrickprogramme/webscribe/internal/fsutil"
	"gopkg.in/yaml.v3"
)

const CurrentConfigVersion = 1

// struct pour les paramètres de configuration
type Config struct {
	// Serveur HTTP
	Server struct {
		Addr            string   `yaml:"addr"`
		Mode            string   `yaml:"mode"` // "dev" ou "prod"
		AllowedOrigins  []string `yaml:"allowed_origins"`
		ReadTimeoutSec  int      `yaml:"read_timeout_seconds"`
		WriteTimeoutSec int      `yaml:"write_timeout_seconds"`
	} `yaml:"server"`

	// Accès YouTube
	Fetch struct {
		TimeoutSec     int    `yaml:"timeout_seconds"`
		MaxBytes       int64  `yaml:"max_bytes"`
		UserAgent      string `yaml:"user_agent"`
		AcceptLanguage string `yaml:"accept_language"`
	} `yaml:"fetch"`

	// Valeurs par défaut de mise en forme
	Render struct {
		DisplayMode        string `yaml:"display_mode"`
		IncludeTitle       bool   `yaml:"include_title"`
		IncludeDescription bool   `yaml:"include_description"`
	} `yaml:"render"`

	// Sorties fichier (CLI)
	Export struct {
		OutputDir string `yaml:"output_dir"`
		Format    string `yaml:"format"`
		Overwrite bool   `yaml:"overwrite"`
	} `yaml:"export"`

	// Vérification de nouvelle version au démarrage
	AutoUpdateCheck bool `yaml:"auto_update_check"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// Configuration par défaut (fallback si l'asset embarqué est manquant)
func defaultConfig() *Config {
	c := &Config{}

	// Serveur HTTP
	c.Server.Addr = "127.0.0.1:8501"
	c.Server.Mode = "dev"
	c.Server.AllowedOrigins = []string{"*"}
	c.Server.ReadTimeoutSec = 30
	c.Server.WriteTimeoutSec = 60

	// Accès YouTube
	c.Fetch.TimeoutSec = 15
	c.Fetch.MaxBytes = 10_000_000
	c.Fetch.UserAgent = ""
	c.Fetch.AcceptLanguage = "en-US"

	// Mise en forme
	c.Render.DisplayMode = "ts_newline"
	c.Render.IncludeTitle = false
	c.Render.IncludeDescription = false

	// Sorties fichier
	c.Export.OutputDir = "."
	c.Export.Format = "txt"
	c.Export.Overwrite = false

	c.AutoUpdateCheck = false

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué depuis internal/assets
func Load(path string) (*Config, error) {
	if path == "" {
		path = "webscribe.yaml"
	}

	// si le fichier n'existe pas -> essayer de créer à partir de l'asset embarqué
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	// On déserialise dans cfg initialisé : les champs absents conservent les valeurs par défaut.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()

	return cfg, nil
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	b, err := assets.Embedded.ReadFile(assets.DefaultConfigAsset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("échec mkdir pour la configuration %s : %w", filepath.Dir(dstPath), err)
	}

	// écrire atomiquement sur disque (évite les fichiers partiels)
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}

	fmt.Printf("info : fichier de configuration par défaut créé : %s\n", dstPath)
	return nil
}

func (c *Config) normalizeConfig() {
	c.Server.Addr = strings.TrimSpace(c.Server.Addr)
	if c.Server.Addr == "" {
		c.Server.Addr = "127.0.0.1:8501"
	}
	c.Server.Mode = strings.TrimSpace(strings.ToLower(c.Server.Mode))
	if c.Server.Mode == "" {
		c.Server.Mode = "dev"
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"*"}
	}
	if c.Server.ReadTimeoutSec <= 0 {
		c.Server.ReadTimeoutSec = 30
	}
	if c.Server.WriteTimeoutSec <= 0 {
		c.Server.WriteTimeoutSec = 60
	}

	if c.Fetch.TimeoutSec <= 0 {
		c.Fetch.TimeoutSec = 15
	}
	if c.Fetch.MaxBytes <= 0 {
		c.Fetch.MaxBytes = 10_000_000
	}
	c.Fetch.AcceptLanguage = strings.TrimSpace(c.Fetch.AcceptLanguage)
	if c.Fetch.AcceptLanguage == "" {
		c.Fetch.AcceptLanguage = "en-US"
	}

	c.Render.DisplayMode = strings.TrimSpace(strings.ToLower(c.Render.DisplayMode))
	if c.Render.DisplayMode == "" {
		c.Render.DisplayMode = "ts_newline"
	}

	c.Export.OutputDir = filepath.Clean(strings.TrimSpace(c.Export.OutputDir))
	if c.Export.OutputDir == "" {
		c.Export.OutputDir = "."
	}
	c.Export.Format = strings.TrimSpace(strings.ToLower(c.Export.Format))
	if c.Export.Format == "" {
		c.Export.Format = "txt"
	}
}

// FetchTimeout retourne le timeout configuré sous forme de durée.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSec) * time.Second
}

// FilePath retourne le chemin du fichier de configuration chargé.
func (c *Config) FilePath() string {
	return c.configFilePath
}
