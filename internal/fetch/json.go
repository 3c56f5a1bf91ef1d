package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// countingReader compte le nombre d'octets lus via Read.
type countingReader struct {
	R io.Reader
	N int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.R.Read(p)
	if n > 0 {
		c.N += int64(n)
	}
	return n, err
}

// JSONInto télécharge rawURL et décode le JSON directement dans dst (dst
// doit être un pointeur). Utilise un json.Decoder sur un reader limité et
// détecte si le decode a nécessité plus de MaxBytes via le compteur.
func JSONInto(ctx context.Context, rawURL string, opts Options, dst interface{}) error {
	if ctx == nil {
		ctx = context.Background()
	}
	opts = opts.normalize()

	// valider l'URL tôt
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return fmt.Errorf("fetch json: invalid url %q: %w", rawURL, err)
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("fetch json: new request: %w", err)
	}
	req.Header.Set("User-Agent", opts.UserAgent)
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	resp, err := opts.Client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch json: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("fetch json: %w: %s", ErrStatus, resp.Status)
	}

	if resp.ContentLength > 0 && resp.ContentLength > opts.MaxBytes {
		return fmt.Errorf("fetch json: %w: content-length %d exceeds limit %d", ErrTooLarge, resp.ContentLength, opts.MaxBytes)
	}

	// reader qui limite et qui compte les octets lus
	limitReader := io.LimitReader(resp.Body, opts.MaxBytes+1) // +1 pour détecter dépassement
	cr := &countingReader{R: limitReader}
	dec := json.NewDecoder(cr)

	if err := dec.Decode(dst); err != nil {
		// erreur de décodage (JSON invalide, EOF inattendu, etc.)
		return fmt.Errorf("fetch json: decode: %w", err)
	}

	// si on a lu plus que MaxBytes, le decode a consommé MaxBytes+1 => overflow
	if cr.N > opts.MaxBytes {
		return ErrTooLarge
	}

	return nil
}

// JSON générique : fetch + décodage dans une valeur typée.
func JSON[T any](ctx context.Context, rawURL string, opts Options) (T, error) {
	var zero T
	var v T
	if err := JSONInto(ctx, rawURL, opts, &v); err != nil {
		return zero, err
	}
	return v, nil
}
