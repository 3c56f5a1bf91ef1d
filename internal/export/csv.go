package export

import "strings"

// renderCSV écrit une colonne "text", une ligne du transcript par
// enregistrement. L'en-tête est nu, les champs sont systématiquement entre
// guillemets (encoding/csv ne cite que lorsque nécessaire, ici on cite
// toujours pour que chaque ligne ait la même forme quel que soit son
// contenu) et les lignes se terminent par un simple LF.
func renderCSV(text string) []byte {
	var b strings.Builder
	b.WriteString("text\n")
	for _, line := range strings.Split(text, "\n") {
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(line, `"`, `""`))
		b.WriteString("\"\n")
	}
	return []byte(b.String())
}
