package site

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// listAssets walks the assets dir and returns the relative slash paths of
// files matching the include globs and none of the exclude globs. A missing
// assets dir is not an error: a site can live entirely off its templates.
func listAssets(dir string, include, exclude []string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	var out []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if matchesAny(rel, exclude) {
			return nil
		}
		if len(include) == 0 || matchesAny(rel, include) {
			out = append(out, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}

// matchesAny reports whether the relative path matches any of the globs.
func matchesAny(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.PathMatch(pattern, rel); err == nil && matched {
			return true
		}
	}
	return false
}

// copyAsset copies one asset, creating parent directories as needed.
func copyAsset(srcDir, dstDir, rel string) error {
	src := filepath.Join(srcDir, filepath.FromSlash(rel))
	dst := filepath.Join(dstDir, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
