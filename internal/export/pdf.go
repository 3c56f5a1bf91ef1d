package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// renderPDF compose le transcript en A4 portrait, Helvetica 11, avec
// saut de page automatique. Les polices de base sont limitées à cp1252 :
// le traducteur remplace les caractères hors jeu plutôt que de casser
// la sortie.
func renderPDF(text string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 11)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	clean := strings.ReplaceAll(text, "\r\n", "\n")
	// un bloc par paragraphe (séparé par ligne vide) ; MultiCell gère les
	// retours à la ligne internes
	for i, para := range strings.Split(clean, "\n\n") {
		if i > 0 {
			pdf.Ln(3)
		}
		pdf.MultiCell(0, 5, tr(para), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
