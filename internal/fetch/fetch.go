// Package fetch fournit des utilitaires légers et testables pour télécharger
// des ressources HTTP avec un budget strict (timeout + taille maximale).
// Les clients YouTube (page watch, timedtext) et la vérification de release
// passent tous par ici.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultTimeout   = 15 * time.Second
	DefaultMaxBytes  = 10_000_000
	DefaultUserAgent = "webscribe/1.0"
)

// Erreurs exportées
var (
	ErrStatus   = errors.New("unexpected HTTP status")
	ErrTooLarge = errors.New("response body too large")
)

// Options ajuste une requête sans multiplier les paramètres positionnels.
type Options struct {
	Timeout   time.Duration     // si <=0 on utilise DefaultTimeout
	MaxBytes  int64             // si <=0 on utilise DefaultMaxBytes
	UserAgent string            // si vide on utilise DefaultUserAgent
	Headers   map[string]string // en-têtes additionnels (Accept-Language...)
	Cookies   []*http.Cookie    // cookies à joindre (consentement YouTube)
	Client    *http.Client      // client injectable pour les tests
}

func (o Options) normalize() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = DefaultMaxBytes
	}
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}
	if o.Client == nil {
		o.Client = http.DefaultClient
	}
	return o
}

// Bytes télécharge l'URL et retourne les octets.
// - ctx peut être nil.
// Note : tout est lu en mémoire (OK pour des pages HTML et du XML timedtext).
func Bytes(ctx context.Context, rawURL string, opts Options) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	opts = opts.normalize()

	// valider l'URL tôt
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, fmt.Errorf("fetch: invalid url %q: %w", rawURL, err)
	}

	// timeout via context
	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: new request: %w", err)
	}
	req.Header.Set("User-Agent", opts.UserAgent)
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	for _, c := range opts.Cookies {
		req.AddCookie(c)
	}

	resp, err := opts.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch: %w: %s", ErrStatus, resp.Status)
	}

	// si Content-Length connu et supérieur à maxBytes -> échouer vite
	if resp.ContentLength > 0 && resp.ContentLength > opts.MaxBytes {
		return nil, fmt.Errorf("fetch: %w: content-length %d exceeds limit %d", ErrTooLarge, resp.ContentLength, opts.MaxBytes)
	}

	r := io.LimitReader(resp.Body, opts.MaxBytes+1) // +1 pour détecter dépassement
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fetch: read body: %w", err)
	}
	if int64(len(data)) > opts.MaxBytes {
		return nil, fmt.Errorf("fetch: %w (>%d bytes)", ErrTooLarge, opts.MaxBytes)
	}
	return data, nil
}
