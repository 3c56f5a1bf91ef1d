// Package yt parle directement aux pages publiques de YouTube : page watch
// pour les métadonnées et la liste des pistes, endpoint timedtext pour le
// contenu des transcripts. Aucun binaire externe, uniquement du HTTP.
package yt

import "errors"

// Erreurs exportées, mappées sur des messages utilisateur par le serveur.
// Les erreurs réseau brutes des bibliothèques ne remontent jamais telles
// quelles jusqu'à l'UI.
var (
	ErrInvalidURL      = errors.New("could not extract video ID from URL")
	ErrNoTranscript    = errors.New("video has no accessible transcripts")
	ErrUnavailable     = errors.New("video is unavailable")
	ErrTooManyRequests = errors.New("youtube is rate limiting requests (captcha)")
	ErrUnknownLanguage = errors.New("no transcript for requested language")
)
