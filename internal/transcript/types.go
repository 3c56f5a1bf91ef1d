// Package transcript contient la logique métier pure du formatage de
// transcripts : parsing de timecodes, résolution de plage, filtrage et
// rendu. Aucune I/O ici — tout opère sur des données en mémoire.
package transcript

// Segment représente une entrée horodatée du transcript telle que fournie
// par YouTube (endpoint timedtext).
type Segment struct {
	Text     string  `json:"text"`     // texte brut du segment
	Start    float64 `json:"start"`    // début en secondes depuis le début de la vidéo
	Duration float64 `json:"duration"` // durée en secondes
}

// State regroupe l'état d'une session de travail sur un transcript.
// Chaque session (requête HTTP, exécution CLI) possède sa propre instance ;
// jamais de partage entre sessions.
type State struct {
	FullSegments     []Segment // segments complets, triés par Start croissant
	VideoTitle       string
	VideoDescription string
	VideoLength      float64 // durée annoncée par YouTube en secondes ; 0 = inconnue
	CurrentText      string  // dernier rendu produit
	VideoURL         string
}

// Duration retourne la meilleure durée connue de la vidéo, recalculée à
// chaque appel (les segments ou VideoLength peuvent changer entre deux
// appels, ex: changement de langue).
// - VideoLength fait autorité si > 0
// - sinon on infère depuis le dernier segment (start + duration)
// - ok=false si rien n'est disponible
func (s *State) Duration() (float64, bool) {
	return InferDuration(s.FullSegments, s.VideoLength)
}

// InferDuration applique la même règle que State.Duration à partir de
// valeurs libres (utile côté API où l'état voyage dans la requête).
func InferDuration(segments []Segment, videoLength float64) (float64, bool) {
	if videoLength > 0 {
		return videoLength, true
	}
	if len(segments) > 0 {
		last := segments[len(segments)-1]
		return last.Start + last.Duration, true
	}
	return 0, false
}
