package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"flyfund/internal/common/fsutil"
	"flyfund/pkg/types"
)

// LoadDir scans a directory for *.gguf files and builds a model list from
// filenames. ID is the full filename (including extension); Path is the
// absolute file path. Fingerprints are computed from size plus a digest of
// the file head, cheap enough for multi-gigabyte weights.
func LoadDir(dir string) ([]types.Model, error) {
	base, err := fsutil.ExpandHome(dir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var models []types.Model
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".gguf") {
			continue
		}
		p := filepath.Join(abs, name)
		fp, err := Fingerprint(p)
		if err != nil {
			// A transient read failure should not hide the model entirely.
			fp = ""
		}
		models = append(models, types.Model{
			ID:          name,
			Name:        displayName(name),
			Path:        p,
			SizeBytes:   fsutil.FileSize(p),
			Fingerprint: fp,
		})
	}
	sort.Slice(models, func(i, j int) bool { return models[i].ID < models[j].ID })
	return models, nil
}

// displayName strips the extension and replaces separators for listings.
func displayName(filename string) string {
	n := strings.TrimSuffix(filename, filepath.Ext(filename))
	n = strings.ReplaceAll(n, "_", " ")
	n = strings.ReplaceAll(n, "-", " ")
	return n
}
