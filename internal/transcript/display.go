package transcript

import (
	"errors"
	"fmt"
)

// ErrUnknownDisplayMode : mode demandé hors de la liste supportée.
var ErrUnknownDisplayMode = errors.New("unknown display mode")

// DisplayMode contrôle le placement (ou l'absence) des timestamps dans le
// rendu final.
type DisplayMode string

const (
	// "[00:10]" sur sa propre ligne, texte en dessous
	ModeTimestampNewline DisplayMode = "ts_newline"
	// "[00:10] texte"
	ModeTimestampBefore DisplayMode = "ts_before"
	// "texte [00:10]"
	ModeTimestampAfter DisplayMode = "ts_after"
	// texte seul, une ligne par segment
	ModeNoTimestampLines DisplayMode = "no_ts_lines"
	// texte seul, un unique bloc joint par des espaces
	ModeNoTimestampBlock DisplayMode = "no_ts_block"
)

// ParseDisplayMode valide une chaîne venant de l'extérieur (config, CLI).
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch DisplayMode(s) {
	case ModeTimestampNewline, ModeTimestampBefore, ModeTimestampAfter,
		ModeNoTimestampLines, ModeNoTimestampBlock:
		return DisplayMode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDisplayMode, s)
	}
}

func (m DisplayMode) String() string {
	return string(m)
}

// Label retourne le libellé montré dans le sélecteur de la page.
func (m DisplayMode) Label() string {
	switch m {
	case ModeTimestampNewline:
		return "Timestamp on its own line"
	case ModeTimestampBefore:
		return "Timestamp before text (same line)"
	case ModeTimestampAfter:
		return "Timestamp after text (same line)"
	case ModeNoTimestampLines:
		return "No timestamp, keep line breaks"
	case ModeNoTimestampBlock:
		return "No timestamp, single block of text"
	default:
		return string(m)
	}
}

// DisplayModes liste les modes dans l'ordre d'affichage de l'UI.
func DisplayModes() []DisplayMode {
	return []DisplayMode{
		ModeTimestampNewline,
		ModeTimestampBefore,
		ModeTimestampAfter,
		ModeNoTimestampLines,
		ModeNoTimestampBlock,
	}
}
