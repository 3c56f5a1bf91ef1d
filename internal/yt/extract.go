package yt

import (
	"net/url"
	"strings"
)

// hôtes acceptés pour la forme youtube.com/watch?v=...
var watchHosts = map[string]bool{
	"www.youtube.com": true,
	"youtube.com":     true,
	"m.youtube.com":   true,
}

// ExtractVideoID extrait l'identifiant vidéo des formats d'URL usuels :
// - youtube.com / www.youtube.com / m.youtube.com avec paramètre ?v=
// - youtu.be/<id>
// - repli : un token nu de 11 caractères est traité comme un ID
// ok=false si rien d'exploitable.
func ExtractVideoID(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	parseable := raw
	if !strings.Contains(parseable, "//") &&
		(strings.Contains(parseable, "youtube.com/") || strings.Contains(parseable, "youtu.be/")) {
		parseable = "https://" + parseable
	}

	if u, err := url.Parse(parseable); err == nil {
		host := strings.ToLower(u.Hostname())
		if watchHosts[host] {
			if v := u.Query().Get("v"); v != "" {
				return v, true
			}
			return "", false
		}
		if host == "youtu.be" {
			id := strings.TrimPrefix(u.Path, "/")
			if id != "" {
				return id, true
			}
			return "", false
		}
	}

	// repli : un ID nu ("dQw4w9WgXcQ")
	if len(raw) == 11 {
		return raw, true
	}
	return "", false
}
