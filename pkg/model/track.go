package model

import "fmt"

// LanguageTrack décrit une piste de transcript disponible pour une vidéo.
type LanguageTrack struct {
	Code        string `json:"code"`         // code langue ("en", "fr", "en-GB"...)
	Name        string `json:"name"`         // nom humain ("English", "Français"...)
	IsGenerated bool   `json:"is_generated"` // true = sous-titres auto-générés
}

// Label construit le libellé montré dans le sélecteur de langue :
// "English (auto-generated) [en]".
func (t LanguageTrack) Label() string {
	label := t.Name
	if t.IsGenerated {
		label += " (auto-generated)"
	}
	return fmt.Sprintf("%s [%s]", label, t.Code)
}

// DefaultLanguage choisit le code par défaut d'une liste de pistes :
// la première piste sert de repli, une piste dont le code commence par "en"
// est préférée si elle existe.
func DefaultLanguage(tracks []LanguageTrack) string {
	def := ""
	for _, t := range tracks {
		if def == "" {
			def = t.Code
		}
		if len(t.Code) >= 2 && t.Code[:2] == "en" {
			def = t.Code
		}
	}
	return def
}
