package yt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTimedText = `<?xml version="1.0" encoding="utf-8" ?>
<transcript>
  <text start="0" dur="2.5">hello &amp; welcome</text>
  <text start="2.5" dur="3.1">this is &amp;lt;b&amp;gt;bold&amp;lt;/b&amp;gt; text</text>
  <text start="5.6" dur="1.2">   </text>
  <text start="6.8">no duration here</text>
</transcript>`

func TestParseTimedText(t *testing.T) {
	segments, err := parseTimedText([]byte(sampleTimedText))
	require.NoError(t, err)
	require.Len(t, segments, 3)

	assert.Equal(t, "hello & welcome", segments[0].Text)
	assert.Equal(t, 0.0, segments[0].Start)
	assert.Equal(t, 2.5, segments[0].Duration)

	assert.Equal(t, "this is bold text", segments[1].Text)
	assert.Equal(t, 2.5, segments[1].Start)

	assert.Equal(t, "no duration here", segments[2].Text)
	assert.Equal(t, 6.8, segments[2].Start)
	assert.Equal(t, 0.0, segments[2].Duration)
}

func TestParseTimedTextEntities(t *testing.T) {
	xmlDoc := `<transcript><text start="1" dur="2">it&#39;s &quot;quoted&quot;</text></transcript>`
	segments, err := parseTimedText([]byte(xmlDoc))
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, `it's "quoted"`, segments[0].Text)
}

func TestParseTimedTextBadXML(t *testing.T) {
	_, err := parseTimedText([]byte(`<transcript><text start="1"`))
	assert.Error(t, err)
}
