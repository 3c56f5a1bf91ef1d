package updater

import (
	"context"
	"fmt"
	"strings"
)

// UpdateCheck contient le résultat de la comparaison
type UpdateCheck struct {
	CurrentVersion string       // version compilée dans le binaire
	LatestRelease  *ReleaseInfo // info complète de la release distante
	IsUpToDate     bool         // true si CurrentVersion correspond au tag distant
}

// CheckSelfUpdate compare la version locale et la dernière release GitHub.
// Les tags sont comparés sans leur préfixe "v" éventuel.
func CheckSelfUpdate(ctx context.Context, localVer string) (*UpdateCheck, error) {
	latest, err := GetLatestRelease(ctx)
	if err != nil {
		return nil, fmt.Errorf("impossible de récupérer la release GitHub : %w", err)
	}

	local := strings.TrimPrefix(strings.TrimSpace(localVer), "v")
	remote := strings.TrimPrefix(strings.TrimSpace(latest.TagName), "v")

	return &UpdateCheck{
		CurrentVersion: localVer,
		LatestRelease:  latest,
		IsUpToDate:     local == remote,
	}, nil
}
