package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// Un .docx est une archive zip OOXML. On génère le strict minimum qu'un
// traitement de texte accepte : les types de contenu, la relation racine
// et le document lui-même (un paragraphe par ligne du transcript).

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const (
	docxDocumentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`
	docxDocumentFooter = `</w:body></w:document>`
)

func renderDOCX(text string) ([]byte, error) {
	var doc strings.Builder
	doc.WriteString(docxDocumentHeader)
	// un paragraphe par bloc séparé par une ligne vide ; les retours à la
	// ligne simples deviennent des <w:br/> dans le paragraphe
	for _, para := range strings.Split(text, "\n\n") {
		doc.WriteString(`<w:p>`)
		for i, line := range strings.Split(para, "\n") {
			if i > 0 {
				doc.WriteString(`<w:r><w:br/></w:r>`)
			}
			doc.WriteString(`<w:r><w:t xml:space="preserve">`)
			if err := xml.EscapeText(&doc, []byte(line)); err != nil {
				return nil, fmt.Errorf("escape paragraph: %w", err)
			}
			doc.WriteString(`</w:t></w:r>`)
		}
		doc.WriteString(`</w:p>`)
	}
	doc.WriteString(docxDocumentFooter)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name, body string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", doc.String()},
	}
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", p.name, err)
		}
		if _, err := w.Write([]byte(p.body)); err != nil {
			return nil, fmt.Errorf("write %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close docx archive: %w", err)
	}
	return buf.Bytes(), nil
}
