package updater

import (
	"context"
	"time"

	"github.com/patrickprogramme/webscribe/pkg/github"
)

// Dépôt GitHub du projet, interrogé pour la vérification de version.
const (
	repoOwner = "patrickprogramme"
	repoName  = "webscribe"
)

// ReleaseInfo contient les métadonnées de la dernière release publiée.
type ReleaseInfo struct {
	TagName     string
	Name        string
	PublishedAt time.Time
	Body        string
	HTMLURL     string
}

type rawRelease struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	PublishedAt time.Time `json:"published_at"`
	Body        string    `json:"body"`
	HTMLURL     string    `json:"html_url"`
}

// GetLatestRelease récupère la dernière release du projet sur GitHub.
func GetLatestRelease(ctx context.Context) (*ReleaseInfo, error) {
	var raw rawRelease
	if err := github.FetchLatestRelease(ctx, repoOwner, repoName, nil, &raw); err != nil {
		return nil, err
	}

	return &ReleaseInfo{
		TagName:     raw.TagName,
		Name:        raw.Name,
		PublishedAt: raw.PublishedAt,
		Body:        raw.Body,
		HTMLURL:     raw.HTMLURL,
	}, nil
}
