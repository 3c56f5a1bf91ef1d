package transcript

import "strings"

// RenderOptions regroupe les options de rendu d'un transcript filtré.
type RenderOptions struct {
	StartStr           string // borne de début ("mm:ss"...), vide = depuis le début
	EndStr             string // borne de fin, vide = jusqu'à la fin
	Mode               DisplayMode
	IncludeTitle       bool
	IncludeDescription bool
	VideoTitle         string
	VideoDescription   string
}

// BuildFilteredText applique le filtrage temporel, le placement des
// timestamps et l'en-tête optionnel (titre/description).
//
// La sélection des bornes est volontairement "enveloppe au plus proche" :
// on inclut le segment qui commence juste avant la borne de début, et un
// segment de plus après la borne de fin, pour ne pas tronquer une phrase
// à cheval sur la coupe. Comportement aux bords (listes courtes, borne
// au-delà du dernier segment) conservé tel quel — l'UI en dépend.
func BuildFilteredText(segments []Segment, o RenderOptions) string {
	if len(segments) == 0 {
		return ""
	}

	startSec, hasStart := ParseTimecode(o.StartStr)
	endSec, hasEnd := ParseTimecode(o.EndStr)

	idxStart := 0
	idxEnd := len(segments) - 1

	// borne de début : "timestamp précédent le plus proche"
	if hasStart {
		found := false
		for i, seg := range segments {
			if seg.Start >= startSec {
				idxStart = max(0, i-1)
				found = true
				break
			}
		}
		if !found {
			// borne au-delà de tous les segments
			idxStart = max(0, len(segments)-2)
		}
	}

	// borne de fin : "timestamp suivant le plus proche"
	if hasEnd {
		lastIdx := 0
		for i, seg := range segments {
			if seg.Start <= endSec {
				lastIdx = i
			}
		}
		idxEnd = min(len(segments)-1, lastIdx+1)
	}

	filtered := segments[idxStart : idxEnd+1]
	lines := make([]string, 0, len(filtered))

	for _, seg := range filtered {
		ts := FormatTimestamp(seg.Start)
		text := strings.TrimSpace(strings.ReplaceAll(seg.Text, "\n", " "))

		var line string
		switch o.Mode {
		case ModeTimestampNewline:
			line = "[" + ts + "]\n" + text
		case ModeTimestampBefore:
			line = "[" + ts + "] " + text
		case ModeTimestampAfter:
			line = text + " [" + ts + "]"
		default:
			// no_ts_lines / no_ts_block (et tout mode inconnu)
			line = text
		}
		lines = append(lines, line)
	}

	var body string
	if o.Mode == ModeNoTimestampBlock {
		body = strings.Join(lines, " ")
	} else {
		body = strings.Join(lines, "\n")
	}

	var headerParts []string
	if o.IncludeTitle && o.VideoTitle != "" {
		headerParts = append(headerParts, strings.TrimSpace(o.VideoTitle))
	}
	if o.IncludeDescription && o.VideoDescription != "" {
		headerParts = append(headerParts, strings.TrimSpace(o.VideoDescription))
	}

	if len(headerParts) > 0 {
		header := strings.Join(headerParts, "\n\n")
		if body != "" {
			return header + "\n\n" + body
		}
		return header
	}
	return body
}
