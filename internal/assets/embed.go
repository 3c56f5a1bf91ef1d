package assets

import "embed"

//go:embed webscribe.example.yaml
//go:embed templates/*tmpl
var Embedded embed.FS

// Nom de l'asset de config par défaut (chemin DANS Embedded)
const DefaultConfigAsset = "webscribe.example.yaml"

// DefaultTemplatePaths : liste ordonnée des templates embarqués.
// Ce sont des chemins relatifs DANS Embedded.
var DefaultTemplatePaths = []string{
	"templates/index.html.tmpl",
}

// TemplateByName donne un accès par clé (map).
var TemplateByName = map[string]string{
	"index": "templates/index.html.tmpl",
}
