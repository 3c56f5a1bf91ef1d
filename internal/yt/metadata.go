package yt

import (
	"bytes"
	"context"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/patrickprogramme/webscribe/pkg/model"
)

// JSON du player embarqué dans la page watch
var playerResponseRegex = regexp.MustCompile(`var ytInitialPlayerResponse\s*=\s*(\{.+?\});`)

// Metadata récupère titre, description, durée et vignette d'une vidéo en
// analysant sa page watch. Dégradation douce : en cas d'échec partiel on
// retourne ce qu'on a pu lire (au minimum l'ID et une vignette de repli) ;
// seul un échec réseau complet produit une erreur — que le caller peut
// d'ailleurs ignorer et continuer sans métadonnées.
func (c *Client) Metadata(ctx context.Context, videoID string) (*model.VideoMeta, error) {
	meta := &model.VideoMeta{
		ID:           videoID,
		ThumbnailURL: "https://i.ytimg.com/vi/" + videoID + "/hqdefault.jpg",
	}

	body, err := c.fetchWatchPage(ctx, videoID)
	if err != nil {
		return meta, err
	}

	if c.fillFromPlayerResponse(meta, body) {
		// le JSON du player a répondu : vignette max qualité disponible
		meta.ThumbnailURL = "https://i.ytimg.com/vi/" + videoID + "/maxresdefault.jpg"
		return meta, nil
	}

	// repli : balises og: de la page
	c.fillFromOpenGraph(meta, body)
	return meta, nil
}

// fillFromPlayerResponse lit videoDetails depuis ytInitialPlayerResponse.
// Retourne false si le bloc est absent ou illisible.
func (c *Client) fillFromPlayerResponse(meta *model.VideoMeta, body []byte) bool {
	m := playerResponseRegex.FindSubmatch(body)
	if len(m) < 2 {
		return false
	}

	var pr playerResponse
	if err := json.Unmarshal(m[1], &pr); err != nil {
		return false
	}
	if pr.VideoDetails.Title == "" && pr.VideoDetails.ShortDescription == "" {
		return false
	}

	meta.Title = pr.VideoDetails.Title
	meta.Description = pr.VideoDetails.ShortDescription
	if n, err := strconv.ParseFloat(pr.VideoDetails.LengthSeconds, 64); err == nil && n > 0 {
		meta.LengthSeconds = n
	}
	return true
}

// fillFromOpenGraph complète depuis les meta og:title / og:description.
func (c *Client) fillFromOpenGraph(meta *model.VideoMeta, body []byte) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return
	}

	if v, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		meta.Title = strings.TrimSpace(v)
	}
	if v, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok {
		meta.Description = strings.TrimSpace(v)
	}
	if v, ok := doc.Find(`meta[property="og:image"]`).Attr("content"); ok && v != "" {
		meta.ThumbnailURL = v
	}
}
