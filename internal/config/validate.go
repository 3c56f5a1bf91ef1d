package config

import (
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/patrickprogramme/webscribe/internal/export"
	"github.com/patrickprogramme/webscribe/internal/transcript"
)

// Validate vérifie de manière statique les valeurs qui ne peuvent pas être
// corrigées silencieusement par normalizeConfig.
// Retourne warnings (non-fataux) et une erreur si c'est critique.
func (c *Config) Validate() (warnings []string, err error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}

	// adresse d'écoute : host:port obligatoire
	if _, _, aerr := net.SplitHostPort(c.Server.Addr); aerr != nil {
		return warnings, fmt.Errorf("adresse d'écoute invalide %q : %w", c.Server.Addr, aerr)
	}

	switch c.Server.Mode {
	case "dev", "prod", "production":
	default:
		warnings = append(warnings, fmt.Sprintf("mode serveur inconnu %q, \"dev\" sera utilisé", c.Server.Mode))
		c.Server.Mode = "dev"
	}

	if _, merr := transcript.ParseDisplayMode(c.Render.DisplayMode); merr != nil {
		warnings = append(warnings, fmt.Sprintf("mode d'affichage inconnu %q, \"ts_newline\" sera utilisé", c.Render.DisplayMode))
		c.Render.DisplayMode = string(transcript.ModeTimestampNewline)
	}

	if _, ferr := export.ParseFormat(c.Export.Format); ferr != nil {
		warnings = append(warnings, fmt.Sprintf("format d'export inconnu %q, \"txt\" sera utilisé", c.Export.Format))
		c.Export.Format = string(export.FormatTXT)
	}

	// le dossier de sortie doit exister (ou être créable plus tard) : warning seulement
	if dir := strings.TrimSpace(c.Export.OutputDir); dir != "" && dir != "." {
		if st, serr := os.Stat(dir); serr != nil {
			if os.IsNotExist(serr) {
				warnings = append(warnings, fmt.Sprintf("le dossier de sortie n'existe pas encore : %s", dir))
			} else {
				return warnings, fmt.Errorf("impossible d'accéder au dossier de sortie %s : %w", dir, serr)
			}
		} else if !st.IsDir() {
			return warnings, fmt.Errorf("le chemin de sortie n'est pas un répertoire : %s", dir)
		}
	}

	return warnings, nil
}
