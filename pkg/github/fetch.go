// Package github interroge l'API publique de GitHub (releases).
package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/patrickprogramme/webscribe/internal/fetch"
)

const defaultUserAgent = "webscribe-updater"

// FetchLatestRelease interroge l'API GitHub pour la dernière release d'un
// dépôt et décode la réponse JSON dans dst (pointeur).
func FetchLatestRelease(ctx context.Context, owner, repo string, client *http.Client, dst interface{}) error {
	url := fmt.Sprintf("https://api.github.com/repos/%s/%s/releases/latest", owner, repo)
	opts := fetch.Options{
		UserAgent: defaultUserAgent,
		Client:    client,
	}
	if err := fetch.JSONInto(ctx, url, opts, dst); err != nil {
		return fmt.Errorf("requête GitHub: %w", err)
	}
	return nil
}
