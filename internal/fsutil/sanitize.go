package fsutil

import (
	"regexp"
	"strings"
)

// nom de repli quand tout a été supprimé
const defaultBaseName = "transcript"

// illegalFileRunes définit les caractères interdits dans les noms de
// fichiers sous macOS/Windows/Linux : \ / : * ? " < > |
// Ils sont supprimés, pas remplacés.
var illegalFileRunes = regexp.MustCompile(`[\\/:*?"<>|]`)

// whitespaceRun détecte les séquences de blancs pour les réduire à un "_".
var whitespaceRun = regexp.MustCompile(`\s+`)

// SanitizeFilename nettoie une chaîne pour en faire un nom de fichier de base.
// Étapes :
// - Suppression des caractères interdits
// - Remplacement des séquences de blancs par "_"
// - Suppression des "_" en début/fin
// - Nom par défaut si le résultat est vide
func SanitizeFilename(name string) string {
	name = illegalFileRunes.ReplaceAllString(name, "")
	name = whitespaceRun.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")

	if name == "" {
		return defaultBaseName
	}
	return name
}
