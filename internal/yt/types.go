package yt

// Formes brutes du JSON embarqué dans la page watch. On ne déclare que les
// champs réellement lus.

// playerResponse est le sous-ensemble utile de ytInitialPlayerResponse.
type playerResponse struct {
	VideoDetails videoDetails `json:"videoDetails"`
}

type videoDetails struct {
	VideoID          string `json:"videoId"`
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
	LengthSeconds    string `json:"lengthSeconds"` // entier sérialisé en chaîne
}

// captionsRenderer est le bloc `"captions": {...}` de la page watch.
type captionsRenderer struct {
	PlayerCaptionsTracklistRenderer *tracklistRenderer `json:"playerCaptionsTracklistRenderer"`
}

type tracklistRenderer struct {
	CaptionTracks []captionTrack `json:"captionTracks"`
}

type captionTrack struct {
	BaseURL        string  `json:"baseUrl"`
	Name           *tkName `json:"name"`
	LanguageCode   string  `json:"languageCode"`
	Kind           string  `json:"kind"` // "asr" = auto-généré
	IsTranslatable bool    `json:"isTranslatable"`
}

type tkName struct {
	SimpleText string `json:"simpleText"`
	Runs       []struct {
		Text string `json:"text"`
	} `json:"runs"`
}

// displayName gère les deux encodages du nom de piste rencontrés en pratique
// (simpleText direct ou liste de runs).
func (n *tkName) displayName() string {
	if n == nil {
		return ""
	}
	if n.SimpleText != "" {
		return n.SimpleText
	}
	out := ""
	for _, r := range n.Runs {
		out += r.Text
	}
	return out
}
