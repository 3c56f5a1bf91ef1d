package yt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const watchPageWithPlayerResponse = `<html><head></head><body><script>
var ytInitialPlayerResponse = {"videoDetails":{"videoId":"abc12345678","title":"A demo title","shortDescription":"Line one\nLine two","lengthSeconds":"245"}};
</script></body></html>`

const watchPageOpenGraphOnly = `<html><head>
<meta property="og:title" content="OG title">
<meta property="og:description" content="OG description">
<meta property="og:image" content="https://i.ytimg.com/vi/abc12345678/sddefault.jpg">
</head><body></body></html>`

func TestMetadataFromPlayerResponse(t *testing.T) {
	c := stubClient(map[string]string{
		"https://www.youtube.com/watch?v=abc12345678": watchPageWithPlayerResponse,
	})

	meta, err := c.Metadata(context.Background(), "abc12345678")
	require.NoError(t, err)

	assert.Equal(t, "A demo title", meta.Title)
	assert.Equal(t, "Line one\nLine two", meta.Description)
	assert.Equal(t, 245.0, meta.LengthSeconds)
	assert.Contains(t, meta.ThumbnailURL, "maxresdefault")
}

func TestMetadataOpenGraphFallback(t *testing.T) {
	c := stubClient(map[string]string{
		"https://www.youtube.com/watch?v=abc12345678": watchPageOpenGraphOnly,
	})

	meta, err := c.Metadata(context.Background(), "abc12345678")
	require.NoError(t, err)

	assert.Equal(t, "OG title", meta.Title)
	assert.Equal(t, "OG description", meta.Description)
	assert.Equal(t, "https://i.ytimg.com/vi/abc12345678/sddefault.jpg", meta.ThumbnailURL)
}

func TestMetadataNetworkFailureKeepsFallback(t *testing.T) {
	c := stubClient(map[string]string{}) // toute requête -> 404

	meta, err := c.Metadata(context.Background(), "abc12345678")
	assert.Error(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, "abc12345678", meta.ID)
	assert.Contains(t, meta.ThumbnailURL, "hqdefault")
}
