package transcript

import (
	"errors"
	"strings"
)

// Erreurs exportées de la résolution de plage. Toutes sont récupérables :
// le caller les affiche près du champ concerné et laisse l'état intact.
var (
	ErrNoTranscriptLoaded = errors.New("transcript not loaded")
	ErrInvalidStartFormat = errors.New("invalid start time format")
	ErrInvalidEndFormat   = errors.New("invalid end time format")
	ErrEndNotAfterStart   = errors.New("end time must be greater than start time")
)

// ResolveRange normalise une plage start/end saisie par l'utilisateur.
//
// videoLength est la durée annoncée (0 = inconnue) ; la durée effective est
// inférée via InferDuration. Règles :
//   - les deux vides        -> [0, durée]
//   - start seul renseigné  -> [start, durée]
//   - end seul renseigné    -> [0, end]
//   - les deux renseignés   -> parse indépendant, l'erreur nomme le côté fautif
//   - clamp dans [0, durée], puis end > start strict
//
// En sortie : les deux bornes re-rendues par FormatTimestamp ("1:5" devient
// "01:05"). Le caller réinjecte ces valeurs dans les champs éditables — les
// champs affichent toujours les valeurs réellement utilisées pour filtrer,
// jamais la saisie brute.
func ResolveRange(segments []Segment, rawStart, rawEnd string, videoLength float64) (string, string, error) {
	duration, ok := InferDuration(segments, videoLength)
	if !ok {
		return "", "", ErrNoTranscriptLoaded
	}

	rawStart = strings.TrimSpace(rawStart)
	rawEnd = strings.TrimSpace(rawEnd)

	var startSec, endSec float64
	switch {
	case rawStart == "" && rawEnd == "":
		startSec, endSec = 0, duration
	case rawStart != "" && rawEnd == "":
		v, ok := ParseTimecode(rawStart)
		if !ok {
			return "", "", ErrInvalidStartFormat
		}
		startSec, endSec = v, duration
	case rawStart == "" && rawEnd != "":
		v, ok := ParseTimecode(rawEnd)
		if !ok {
			return "", "", ErrInvalidEndFormat
		}
		startSec, endSec = 0, v
	default:
		s, ok := ParseTimecode(rawStart)
		if !ok {
			return "", "", ErrInvalidStartFormat
		}
		e, ok := ParseTimecode(rawEnd)
		if !ok {
			return "", "", ErrInvalidEndFormat
		}
		startSec, endSec = s, e
	}

	// clamp dans [0, durée]
	startSec = clamp(startSec, 0, duration)
	endSec = clamp(endSec, 0, duration)

	// end > start strict (égalité = erreur aussi)
	if endSec <= startSec {
		return "", "", ErrEndNotAfterStart
	}

	return FormatTimestamp(startSec), FormatTimestamp(endSec), nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
