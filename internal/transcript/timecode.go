package transcript

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseTimecode convertit "ss", "mm:ss" ou "hh:mm:ss" en secondes.
// Les composants acceptent les décimales ("1:30.5").
// ok=false pour une chaîne vide/blanche, un nombre de composants invalide
// ou un composant non numérique — à traiter comme "format invalide",
// jamais comme un crash.
func ParseTimecode(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	parts := strings.Split(s, ":")
	vals := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, false
		}
		vals = append(vals, v)
	}

	switch len(vals) {
	case 1:
		return vals[0], true
	case 2:
		return vals[0]*60 + vals[1], true
	case 3:
		return vals[0]*3600 + vals[1]*60 + vals[2], true
	}
	return 0, false
}

// FormatTimestamp formate des secondes en "mm:ss" (ou "hh:mm:ss" au-delà
// d'une heure), chaque champ sur 2 chiffres. Arrondi à la seconde entière.
// Invariant : ParseTimecode(FormatTimestamp(x)) == round(x) pour x >= 0.
func FormatTimestamp(seconds float64) string {
	total := int64(math.Round(seconds))
	h := total / 3600
	m := (total % 3600) / 60
	sec := total % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%02d:%02d", m, sec)
}
