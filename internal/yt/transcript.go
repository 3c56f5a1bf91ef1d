package yt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/patrickprogramme/webscribe/internal/fetch"
	"github.com/patrickprogramme/webscribe/internal/transcript"
	"github.com/patrickprogramme/webscribe/pkg/model"
)

// ListTracks retourne les pistes de transcript disponibles pour une vidéo
// (dédupliquées par code langue, ordre de la page conservé) ainsi que le
// code par défaut (préférence aux codes commençant par "en").
func (c *Client) ListTracks(ctx context.Context, videoID string) ([]model.LanguageTrack, string, error) {
	tracks, err := c.captionTracks(ctx, videoID)
	if err != nil {
		return nil, "", err
	}

	seen := make(map[string]bool, len(tracks))
	out := make([]model.LanguageTrack, 0, len(tracks))
	for _, t := range tracks {
		if seen[t.LanguageCode] {
			continue
		}
		seen[t.LanguageCode] = true
		out = append(out, model.LanguageTrack{
			Code:        t.LanguageCode,
			Name:        t.Name.displayName(),
			IsGenerated: t.Kind == "asr",
		})
	}

	if len(out) == 0 {
		return nil, "", ErrNoTranscript
	}
	return out, model.DefaultLanguage(out), nil
}

// FetchSegments télécharge et analyse le transcript d'une vidéo pour un
// code langue donné.
func (c *Client) FetchSegments(ctx context.Context, videoID, languageCode string) ([]transcript.Segment, error) {
	tracks, err := c.captionTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}

	var track *captionTrack
	for i := range tracks {
		if tracks[i].LanguageCode == languageCode {
			track = &tracks[i]
			break
		}
	}
	if track == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, languageCode)
	}

	body, err := fetch.Bytes(ctx, track.BaseURL, c.fetchOpts())
	if err != nil {
		return nil, fmt.Errorf("fetch timedtext: %w", err)
	}

	segments, err := parseTimedText(body)
	if err != nil {
		return nil, fmt.Errorf("parse timedtext: %w", err)
	}
	if len(segments) == 0 {
		return nil, ErrNoTranscript
	}
	return segments, nil
}

// captionTracks extrait la liste brute des pistes depuis la page watch.
// Le bloc `"captions":` est délimité par `,"videoDetails` — découpage par
// chaînes plutôt que parsing complet de la page, comme la taille du JSON
// environnant l'impose.
func (c *Client) captionTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	html, err := c.fetchWatchPage(ctx, videoID)
	if err != nil {
		return nil, err
	}
	body := string(html)

	parts := strings.SplitN(body, `"captions":`, 2)
	if len(parts) < 2 {
		if strings.Contains(body, `class="g-recaptcha"`) {
			return nil, ErrTooManyRequests
		}
		if !strings.Contains(body, `"playabilityStatus":`) {
			return nil, ErrUnavailable
		}
		return nil, ErrNoTranscript
	}

	rawJSON := strings.SplitN(parts[1], `,"videoDetails`, 2)[0]
	rawJSON = strings.ReplaceAll(rawJSON, "\n", "")

	var captions captionsRenderer
	if err := json.Unmarshal([]byte(rawJSON), &captions); err != nil {
		return nil, fmt.Errorf("unmarshal captions block: %w", err)
	}
	if captions.PlayerCaptionsTracklistRenderer == nil ||
		len(captions.PlayerCaptionsTracklistRenderer.CaptionTracks) == 0 {
		return nil, ErrNoTranscript
	}

	return captions.PlayerCaptionsTracklistRenderer.CaptionTracks, nil
}
