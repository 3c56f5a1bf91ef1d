package model

import "fmt"

// VideoMeta regroupe les métadonnées extraites de la page d'une vidéo
// YouTube. Tous les champs sont optionnels : un échec de récupération se
// traduit par des champs vides, jamais par un échec du flux complet.
type VideoMeta struct {
	ID            string  `json:"id"`
	Title         string  `json:"title,omitempty"`
	Description   string  `json:"description,omitempty"`
	LengthSeconds float64 `json:"length_seconds,omitempty"` // 0 = inconnue
	ThumbnailURL  string  `json:"thumbnail_url,omitempty"`
}

// HasLength indique si la durée annoncée est exploitable.
func (m VideoMeta) HasLength() bool {
	return m.LengthSeconds > 0
}

func (m VideoMeta) String() string {
	return fmt.Sprintf("VideoMeta[ID=%s, Title=%q, Length=%.0fs]", m.ID, m.Title, m.LengthSeconds)
}

// WatchURL reconstruit l'URL canonique de lecture.
func (m VideoMeta) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + m.ID
}
