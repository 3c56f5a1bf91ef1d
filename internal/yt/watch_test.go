package yt

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const consentInterstitial = `<html><body>
<form action="https://consent.youtube.com/s" method="POST">
<input type="hidden" name="v" value="cb.20260829-07-p0.en+FX+123"/>
</form></body></html>`

// consentTransport sert l'interstitiel de consentement tant que la requête
// n'apporte pas de cookie CONSENT, puis la page watch demandée.
type consentTransport struct {
	page     string
	requests int
	cookies  []string
}

func (s *consentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	s.requests++
	body := consentInterstitial
	if c, err := req.Cookie("CONSENT"); err == nil {
		s.cookies = append(s.cookies, c.Value)
		body = s.page
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Status:     http.StatusText(http.StatusOK),
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

func TestFetchWatchPageConsentRetry(t *testing.T) {
	tr := &consentTransport{page: watchPageWithCaptions}
	c := &Client{HTTPClient: &http.Client{Transport: tr}}

	tracks, _, err := c.ListTracks(context.Background(), "abc12345678")
	require.NoError(t, err)
	require.Len(t, tracks, 2)

	// premier essai sans cookie, second avec la valeur du formulaire
	assert.Equal(t, 2, tr.requests)
	require.Len(t, tr.cookies, 1)
	assert.Equal(t, "YES+cb.20260829-07-p0.en+FX+123", tr.cookies[0])
}

func TestFetchWatchPageConsentValueMissing(t *testing.T) {
	c := stubClient(map[string]string{
		"https://www.youtube.com/watch?v=abc12345678": `<html><form action="https://consent.youtube.com/s"></form></html>`,
	})

	_, _, err := c.ListTracks(context.Background(), "abc12345678")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "consent form")
}
