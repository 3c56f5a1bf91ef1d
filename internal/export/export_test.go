package export

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"txt", "csv", "docx", "pdf"} {
		f, err := ParseFormat(s)
		if err != nil {
			t.Fatalf("ParseFormat(%q) erreur inattendue : %v", s, err)
		}
		if f.Extension() != s {
			t.Errorf("Extension() = %q, attendu %q", f.Extension(), s)
		}
	}

	if _, err := ParseFormat("epub"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(epub) : attendu ErrUnknownFormat, obtenu %v", err)
	}
}

func TestRenderTXT(t *testing.T) {
	const text = "[00:00] Hello\n[00:05] World"
	out, err := Render(FormatTXT, text)
	if err != nil {
		t.Fatalf("Render txt : %v", err)
	}
	if string(out) != text {
		t.Errorf("le txt doit être le texte verbatim, obtenu %q", out)
	}
}

func TestRenderCSV(t *testing.T) {
	out, err := Render(FormatCSV, "Hello\nWorld")
	if err != nil {
		t.Fatalf("Render csv : %v", err)
	}
	want := "text\n\"Hello\"\n\"World\"\n"
	if string(out) != want {
		t.Errorf("csv = %q, attendu %q", out, want)
	}
}

func TestRenderCSVEscapesQuotes(t *testing.T) {
	out, err := Render(FormatCSV, `He said "hi"`)
	if err != nil {
		t.Fatalf("Render csv : %v", err)
	}
	want := "text\n\"He said \"\"hi\"\"\"\n"
	if string(out) != want {
		t.Errorf("csv = %q, attendu %q", out, want)
	}
}

func TestRenderDOCX(t *testing.T) {
	out, err := Render(FormatDOCX, "First line\nstill first\n\nSecond <para> & more")
	if err != nil {
		t.Fatalf("Render docx : %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatalf("le docx doit être un zip valide : %v", err)
	}

	names := make(map[string]bool)
	var document string
	for _, f := range zr.File {
		names[f.Name] = true
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				t.Fatalf("ouvrir document.xml : %v", err)
			}
			data, err := io.ReadAll(rc)
			rc.Close()
			if err != nil {
				t.Fatalf("lire document.xml : %v", err)
			}
			document = string(data)
		}
	}

	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"} {
		if !names[name] {
			t.Errorf("entrée zip manquante : %s", name)
		}
	}
	if !strings.Contains(document, "First line") {
		t.Error("document.xml ne contient pas la première ligne")
	}
	if !strings.Contains(document, "Second &lt;para&gt; &amp; more") {
		t.Errorf("les caractères XML doivent être échappés, document : %s", document)
	}
	// deux blocs séparés par une ligne vide -> deux paragraphes
	if got := strings.Count(document, "<w:p>"); got != 2 {
		t.Errorf("attendu 2 paragraphes, obtenu %d", got)
	}
	// retour à la ligne simple -> saut de ligne dans le paragraphe
	if !strings.Contains(document, "<w:br/>") {
		t.Error("un \\n simple doit produire un <w:br/>")
	}
}

func TestRenderPDF(t *testing.T) {
	out, err := Render(FormatPDF, "A line of transcript text\n\nAnother paragraph with accents : éèà")
	if err != nil {
		t.Fatalf("Render pdf : %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("la sortie doit commencer par %%PDF-, obtenu %q", out[:min(len(out), 8)])
	}
}

func TestMediaTypes(t *testing.T) {
	cases := map[Format]string{
		FormatTXT:  "text/plain; charset=utf-8",
		FormatCSV:  "text/csv; charset=utf-8",
		FormatDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		FormatPDF:  "application/pdf",
	}
	for f, want := range cases {
		if got := f.MediaType(); got != want {
			t.Errorf("MediaType(%s) = %q, attendu %q", f, got, want)
		}
	}
}
