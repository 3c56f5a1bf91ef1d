package yt

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/patrickprogramme/webscribe/internal/fetch"
)

const watchURLFormat = "https://www.youtube.com/watch?v=%s"

var (
	consentFormRegex  = regexp.MustCompile(`action="https://consent\.youtube\.com/s`)
	consentValueRegex = regexp.MustCompile(`name="v" value="(.*?)"`)
)

// Client accède aux pages publiques de YouTube.
// Les valeurs zéro donnent un client utilisable avec les défauts du package
// fetch ; tout est injectable pour les tests.
type Client struct {
	Timeout        time.Duration
	MaxBytes       int64
	UserAgent      string
	AcceptLanguage string
	HTTPClient     *http.Client
}

func (c *Client) fetchOpts() fetch.Options {
	accept := c.AcceptLanguage
	if accept == "" {
		accept = "en-US"
	}
	return fetch.Options{
		Timeout:   c.Timeout,
		MaxBytes:  c.MaxBytes,
		UserAgent: c.UserAgent,
		Headers:   map[string]string{"Accept-Language": accept},
		Client:    c.HTTPClient,
	}
}

// fetchWatchPage récupère la page watch d'une vidéo, en gérant
// l'interstitiel de consentement européen (cookie CONSENT + nouvel essai).
func (c *Client) fetchWatchPage(ctx context.Context, videoID string) ([]byte, error) {
	watchURL := fmt.Sprintf(watchURLFormat, videoID)

	body, err := fetch.Bytes(ctx, watchURL, c.fetchOpts())
	if err != nil {
		return nil, fmt.Errorf("fetch watch page: %w", err)
	}

	if !consentFormRegex.Match(body) {
		return body, nil
	}

	// page de consentement : extraire la valeur du formulaire et rejouer
	// la requête avec le cookie CONSENT
	match := consentValueRegex.FindSubmatch(body)
	if len(match) < 2 {
		return nil, fmt.Errorf("consent form present but value not found")
	}
	opts := c.fetchOpts()
	opts.Cookies = []*http.Cookie{{
		Name:   "CONSENT",
		Value:  "YES+" + string(match[1]),
		Domain: ".youtube.com",
	}}

	body, err = fetch.Bytes(ctx, watchURL, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch watch page after consent: %w", err)
	}
	return body, nil
}
