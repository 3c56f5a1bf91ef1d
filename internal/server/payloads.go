package server

import "github.com/patrickprogramme/webscribe/internal/transcript"

// L'API est sans état : les segments voyagent dans les requêtes, le serveur
// ne garde aucune session. Chaque réponse de fetch contient tout ce qu'il
// faut pour les appels apply/export suivants.

// LanguageOption décrit une piste de transcript proposée au client.
// Label reprend le libellé complet du sélecteur ("English (auto-generated)
// [en]"), la page l'affiche tel quel.
type LanguageOption struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Label       string `json:"label"`
	IsGenerated bool   `json:"is_generated"`
}

// FetchRequest : URL (ou ID) de la vidéo, langue optionnelle.
type FetchRequest struct {
	URL      string `json:"url" binding:"required"`
	Language string `json:"language"`
}

// FetchResponse : métadonnées + segments + plage complète résolue.
type FetchResponse struct {
	VideoID             string               `json:"video_id"`
	VideoURL            string               `json:"video_url"`
	VideoTitle          string               `json:"video_title"`
	VideoDescription    string               `json:"video_description"`
	VideoLength         float64              `json:"video_length"`
	ThumbnailURL        string               `json:"thumbnail_url"`
	TranscriptLanguages []LanguageOption     `json:"transcript_languages"`
	DefaultLanguage     string               `json:"default_language"`
	Language            string               `json:"language"`
	Segments            []transcript.Segment `json:"segments"`
	Start               string               `json:"start"`
	End                 string               `json:"end"`
}

// LoadTranscriptRequest recharge les segments pour une autre langue.
type LoadTranscriptRequest struct {
	VideoID  string `json:"video_id" binding:"required"`
	Language string `json:"language_code" binding:"required"`
}

// LoadTranscriptResponse : segments de la langue demandée + plage complète.
type LoadTranscriptResponse struct {
	Language string               `json:"language"`
	Segments []transcript.Segment `json:"segments"`
	Start    string               `json:"start"`
	End      string               `json:"end"`
}

// OptionsPayload : options de mise en forme envoyées par le client.
type OptionsPayload struct {
	Start              string `json:"start"`
	End                string `json:"end"`
	DisplayMode        string `json:"display_mode"`
	IncludeTitle       bool   `json:"include_title"`
	IncludeDescription bool   `json:"include_description"`
}

// ApplyOptionsRequest : segments + contexte vidéo + options.
type ApplyOptionsRequest struct {
	Segments         []transcript.Segment `json:"segments" binding:"required"`
	VideoTitle       string               `json:"video_title"`
	VideoDescription string               `json:"video_description"`
	VideoLength      float64              `json:"video_length"`
	Options          OptionsPayload       `json:"options"`
}

// ApplyOptionsResponse : texte mis en forme + plage canonique + statistiques.
type ApplyOptionsResponse struct {
	Text      string `json:"text"`
	Start     string `json:"start"`
	End       string `json:"end"`
	WordCount int    `json:"word_count"`
	CharCount int    `json:"char_count"`
	SizeBytes int    `json:"size_bytes"`
	SizeStr   string `json:"size_str"`
}

// ExportRequest : le texte déjà mis en forme par apply_options, le nom de
// fichier souhaité (sanitisé côté serveur, le champ est éditable) et le
// format voulu.
type ExportRequest struct {
	Text     string `json:"text"`
	Filename string `json:"filename"`
	Format   string `json:"format" binding:"required"`
}
