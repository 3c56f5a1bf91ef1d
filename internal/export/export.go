// Package export convertit un texte de transcript déjà mis en forme vers
// les formats de fichier proposés au téléchargement : txt, csv, docx, pdf.
package export

import (
	"errors"
	"fmt"
)

// Format identifie un format d'export supporté.
type Format string

const (
	FormatTXT  Format = "txt"
	FormatCSV  Format = "csv"
	FormatDOCX Format = "docx"
	FormatPDF  Format = "pdf"
)

// ErrUnknownFormat : format demandé hors de la liste supportée.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat valide une chaîne reçue de l'extérieur (API, flag CLI).
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTXT, FormatCSV, FormatDOCX, FormatPDF:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Formats retourne les formats supportés dans l'ordre d'affichage.
func Formats() []Format {
	return []Format{FormatTXT, FormatCSV, FormatDOCX, FormatPDF}
}

// Extension retourne l'extension de fichier (sans point).
func (f Format) Extension() string {
	return string(f)
}

// MediaType retourne le type MIME à utiliser en Content-Type.
func (f Format) MediaType() string {
	switch f {
	case FormatTXT:
		return "text/plain; charset=utf-8"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// Render produit les octets du fichier exporté pour le format donné.
func Render(f Format, text string) ([]byte, error) {
	switch f {
	case FormatTXT:
		return []byte(text), nil
	case FormatCSV:
		return renderCSV(text), nil
	case FormatDOCX:
		return renderDOCX(text)
	case FormatPDF:
		return renderPDF(text)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}
