// Package backup snapshots and restores a period's data folder (members
// CSV, responses CSV, output/results JSON, the history database) as a
// single zip archive (SPEC_FULL.md §4.18), grounded on the original
// implementation's db/backup.py and scripts/create_repo_zip.py.
package backup

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Manifest describes one created archive.
type Manifest struct {
	ID        string
	Path      string
	SourceDir string
	CreatedAt time.Time
}

// Create snapshots every regular file under dataDir into a timestamped zip
// archive under destDir.
func Create(dataDir, destDir string) (*Manifest, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("create backup dir: %w", err)
	}

	id := uuid.New().String()
	createdAt := time.Now().UTC()
	archivePath := filepath.Join(destDir, fmt.Sprintf("%s-%s.zip", createdAt.Format("20060102T150405Z"), id))

	out, err := os.Create(archivePath)
	if err != nil {
		return nil, fmt.Errorf("create archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	walkErr := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dataDir, path)
		if err != nil {
			return fmt.Errorf("relativize %q: %w", path, err)
		}
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return fmt.Errorf("add %q to archive: %w", rel, err)
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %q: %w", path, err)
		}
		defer f.Close()
		_, err = io.Copy(w, f)
		return err
	})
	if closeErr := zw.Close(); walkErr == nil {
		walkErr = closeErr
	}
	if walkErr != nil {
		return nil, fmt.Errorf("build archive: %w", walkErr)
	}

	return &Manifest{ID: id, Path: archivePath, SourceDir: dataDir, CreatedAt: createdAt}, nil
}

// Restore extracts archivePath into destDir, overwriting any existing files
// at the same relative paths.
func Restore(archivePath, destDir string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("open archive %q: %w", archivePath, err)
	}
	defer r.Close()

	for _, f := range r.File {
		target := filepath.Join(destDir, filepath.FromSlash(f.Name))
		if !isWithinDir(destDir, target) {
			return fmt.Errorf("archive entry %q escapes destination %q", f.Name, destDir)
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("create dir %q: %w", target, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("create dir %q: %w", filepath.Dir(target), err)
		}
		if err := extractFile(f, target); err != nil {
			return err
		}
	}
	return nil
}

// isWithinDir reports whether target, once cleaned, resolves to destDir or a
// path inside it, rejecting zip-slip entries such as "../../etc/passwd".
func isWithinDir(destDir, target string) bool {
	destDir = filepath.Clean(destDir)
	target = filepath.Clean(target)
	if target == destDir {
		return true
	}
	return len(target) > len(destDir) && target[:len(destDir)] == destDir && target[len(destDir)] == filepath.Separator
}

func extractFile(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("open %q in archive: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create %q: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("write %q: %w", target, err)
	}
	return nil
}
