package yt

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTransport sert des corps de réponse fixes selon l'URL demandée.
type stubTransport struct {
	pages map[string]string
}

func (s *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	body, ok := s.pages[req.URL.String()]
	if !ok {
		// retrouver par préfixe (les URL timedtext portent des paramètres signés)
		for k, v := range s.pages {
			if strings.HasPrefix(req.URL.String(), k) {
				body, ok = v, true
				break
			}
		}
	}
	status := http.StatusOK
	if !ok {
		status = http.StatusNotFound
	}
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

func stubClient(pages map[string]string) *Client {
	return &Client{HTTPClient: &http.Client{Transport: &stubTransport{pages: pages}}}
}

const watchPageWithCaptions = `<html><body><script>
var ytInitialData = {};
"playabilityStatus":{"status":"OK"},
"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[
{"baseUrl":"https://www.youtube.com/api/timedtext?v=abc","name":{"simpleText":"English"},"languageCode":"en","kind":"asr","isTranslatable":true},
{"baseUrl":"https://www.youtube.com/api/timedtext?v=abc&lang=fr","name":{"simpleText":"French"},"languageCode":"fr","isTranslatable":true}
]}},"videoDetails":{"videoId":"abc"}
</script></body></html>`

func TestListTracks(t *testing.T) {
	c := stubClient(map[string]string{
		"https://www.youtube.com/watch?v=abc12345678": watchPageWithCaptions,
	})

	tracks, defaultCode, err := c.ListTracks(context.Background(), "abc12345678")
	require.NoError(t, err)
	require.Len(t, tracks, 2)

	assert.Equal(t, "en", tracks[0].Code)
	assert.Equal(t, "English", tracks[0].Name)
	assert.True(t, tracks[0].IsGenerated, "kind asr means auto-generated")

	assert.Equal(t, "fr", tracks[1].Code)
	assert.False(t, tracks[1].IsGenerated)

	assert.Equal(t, "en", defaultCode)
}

func TestListTracksErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name string
		page string
		want error
	}{
		{"captcha page", `<html><form class="g-recaptcha"></form></html>`, ErrTooManyRequests},
		{"video unavailable", `<html>Video unavailable</html>`, ErrUnavailable},
		{"no captions block", `<html>"playabilityStatus":{"status":"OK"}</html>`, ErrNoTranscript},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := stubClient(map[string]string{
				"https://www.youtube.com/watch?v=abc12345678": tc.page,
			})
			_, _, err := c.ListTracks(context.Background(), "abc12345678")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFetchSegments(t *testing.T) {
	c := stubClient(map[string]string{
		"https://www.youtube.com/watch?v=abc12345678": watchPageWithCaptions,
		"https://www.youtube.com/api/timedtext?v=abc": `<transcript>` +
			`<text start="0" dur="1.5">first</text>` +
			`<text start="1.5" dur="2">second</text>` +
			`</transcript>`,
	})

	segments, err := c.FetchSegments(context.Background(), "abc12345678", "en")
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, "first", segments[0].Text)
	assert.Equal(t, 1.5, segments[1].Start)
	assert.Equal(t, 2.0, segments[1].Duration)
}

func TestFetchSegmentsUnknownLanguage(t *testing.T) {
	c := stubClient(map[string]string{
		"https://www.youtube.com/watch?v=abc12345678": watchPageWithCaptions,
	})

	_, err := c.FetchSegments(context.Background(), "abc12345678", "de")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}
