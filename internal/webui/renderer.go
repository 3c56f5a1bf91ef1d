// Package webui rend la page HTML embarquée servie à la racine du serveur.
package webui

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/patrickprogramme/webscribe/internal/assets"
	"github.com/patrickprogramme/webscribe/internal/export"
	"github.com/patrickprogramme/webscribe/internal/transcript"
)

// IndexTemplate : basename du template de la page principale.
const IndexTemplate = "index.html.tmpl"

// ModeOption alimente le <select> des modes d'affichage.
type ModeOption struct {
	Value string
	Label string
}

// IndexData est le contexte passé au template de la page.
type IndexData struct {
	Title   string
	Modes   []ModeOption
	Formats []export.Format
}

// DefaultIndexData retourne le contexte standard (tous les modes, tous les formats).
func DefaultIndexData(title string) IndexData {
	modes := transcript.DisplayModes()
	opts := make([]ModeOption, 0, len(modes))
	for _, m := range modes {
		opts = append(opts, ModeOption{Value: m.String(), Label: m.Label()})
	}
	return IndexData{
		Title:   title,
		Modes:   opts,
		Formats: export.Formats(),
	}
}

// Renderer gère le parsing paresseux (lazy) des templates et le rendu.
type Renderer struct {
	templates *template.Template
	fsys      fs.FS
	patterns  []string // patterns relatifs au fsys, ex: "templates/*.tmpl"
	once      sync.Once
	err       error // mémorise l'erreur d'initialisation (utile avec once)
}

// NewRendererFromFS construit un Renderer configuré pour parser ultérieurement
// les patterns fournis depuis le fsys (ne parse pas immédiatement).
func NewRendererFromFS(fsys fs.FS, patterns []string) (*Renderer, error) {
	if fsys == nil {
		return nil, fmt.Errorf("fsys est nil")
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("aucun template fourni")
	}
	return &Renderer{
		fsys:     fsys,
		patterns: append([]string(nil), patterns...),
	}, nil
}

// EmbeddedRenderer construit un Renderer sur les templates embarqués.
func EmbeddedRenderer() (*Renderer, error) {
	return NewRendererFromFS(assets.Embedded, []string{"templates/*.tmpl"})
}

// DiskRenderer construit un Renderer sur un dossier templates/ à côté du
// binaire, parsé immédiatement (permet de personnaliser la page).
func DiskRenderer(exePath string) (*Renderer, error) {
	tplDir := filepath.Join(filepath.Dir(exePath), "templates")
	r, err := NewRendererFromFS(os.DirFS(tplDir), []string{"*.tmpl"})
	if err != nil {
		return nil, err
	}
	if err := r.ParseNow(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Renderer) parseTemplates() error {
	r.once.Do(func() {
		t := template.New("root")
		for _, p := range r.patterns {
			var parseErr error
			t, parseErr = t.ParseFS(r.fsys, p)
			if parseErr != nil {
				r.err = fmt.Errorf("parse pattern %q: %w", p, parseErr)
				return
			}
		}
		r.templates = t
	})
	return r.err
}

// ParseNow force l'initialisation / parsing immédiat.
func (r *Renderer) ParseNow() error {
	if r == nil {
		return fmt.Errorf("nil renderer")
	}
	return r.parseTemplates()
}

// Render exécute le template nommé (basename du fichier .tmpl) avec data.
func (r *Renderer) Render(tmplName string, data any) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("renderer is nil")
	}
	if err := r.parseTemplates(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, tmplName, data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", tmplName, err)
	}
	return buf.Bytes(), nil
}
