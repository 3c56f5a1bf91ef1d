package bootstrap

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/patrickprogramme/webscribe/internal/fsutil"
)

// ExportDefaults copie récursivement tous les fichiers sous srcPrefix (dans fsys)
// vers destDir en préservant la hiérarchie relative. Utilisé par le flag
// -export-defaults pour permettre la personnalisation des assets embarqués.
// - force : si true, écrase les fichiers différents (avec backup)
//
// Retourne une map[embeddedPath]status et une erreur globale si Walk échoue.
func ExportDefaults(fsys fs.FS, srcPrefix, destDir string, force bool) (map[string]string, error) {
	status := make(map[string]string)

	err := fs.WalkDir(fsys, srcPrefix, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, err := filepath.Rel(srcPrefix, path)
		if err != nil {
			return err
		}

		if d.IsDir() {
			if rel == "." {
				return nil
			}
			_ = os.MkdirAll(filepath.Join(destDir, rel), 0o755)
			return nil
		}

		data, err := fs.ReadFile(fsys, filepath.ToSlash(path))
		if err != nil {
			status[path] = "error: read embedded failed"
			return err
		}

		destPath := filepath.Join(destDir, rel)

		// si le fichier existe déjà : comparer
		if existing, err := os.ReadFile(destPath); err == nil {
			if bytes.Equal(existing, data) {
				status[path] = "unchanged"
				return nil
			}
			if !force {
				status[path] = "skipped (different)"
				return nil
			}
			// force == true -> backup + overwrite
			backup := destPath + ".bak." + time.Now().Format("20060102T150405")
			if err := os.WriteFile(backup, existing, 0o644); err != nil {
				status[path] = "error: backup failed"
				return fmt.Errorf("backup failed for %s: %w", destPath, err)
			}
			if err := fsutil.WriteFileAtomic(destPath, data, 0o644); err != nil {
				status[path] = "error: overwrite failed"
				return err
			}
			status[path] = "overwritten"
			return nil
		}

		if err := fsutil.WriteFileAtomic(destPath, data, 0o644); err != nil {
			status[path] = "error: write failed"
			return err
		}
		status[path] = "written"
		return nil
	})

	return status, err
}
