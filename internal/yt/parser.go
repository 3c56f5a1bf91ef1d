package yt

import (
	"encoding/xml"
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/patrickprogramme/webscribe/internal/transcript"
)

// htmlTagRegex retire les balises de mise en forme que YouTube insère
// parfois dans le texte des segments (<b>, <i>, <font>...).
var htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

type timedText struct {
	XMLName xml.Name       `xml:"transcript"`
	Texts   []timedTextSeg `xml:"text"`
}

type timedTextSeg struct {
	Start string `xml:"start,attr"`
	Dur   string `xml:"dur,attr"`
	Text  string `xml:",chardata"`
}

// parseTimedText transforme le XML timedtext en segments. Les entrées
// sans texte après nettoyage sont ignorées.
func parseTimedText(data []byte) ([]transcript.Segment, error) {
	var doc timedText
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal transcript XML: %w", err)
	}

	segments := make([]transcript.Segment, 0, len(doc.Texts))
	for _, t := range doc.Texts {
		text := strings.TrimSpace(htmlTagRegex.ReplaceAllString(html.UnescapeString(t.Text), ""))
		if text == "" {
			continue
		}

		start, err := strconv.ParseFloat(t.Start, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid start attribute %q: %w", t.Start, err)
		}
		dur := 0.0
		if t.Dur != "" {
			if dur, err = strconv.ParseFloat(t.Dur, 64); err != nil {
				return nil, fmt.Errorf("invalid dur attribute %q: %w", t.Dur, err)
			}
		}

		segments = append(segments, transcript.Segment{
			Text:     text,
			Start:    start,
			Duration: dur,
		})
	}
	return segments, nil
}
