package term

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/campusnexus/nexus/internal/app"
	"github.com/campusnexus/nexus/internal/walker"
)

// ExpandFiles resolves paths and doublestar patterns (docs/**/*.pdf) into
// upload candidates, in argument order without duplicates. A directory
// argument contributes every supported document beneath it; directories
// matched by a pattern are skipped. An argument that yields no file is an
// error.
func ExpandFiles(patterns []string) ([]app.File, error) {
	var files []app.File
	seen := make(map[string]bool)
	add := func(path string, size int64) {
		clean := filepath.Clean(path)
		if seen[clean] {
			return
		}
		seen[clean] = true
		files = append(files, fileFromPath(clean, size))
	}

	for _, pattern := range patterns {
		if info, err := os.Stat(pattern); err == nil && info.IsDir() {
			docs, err := walker.Walk(walker.Config{RootDir: pattern})
			if err != nil {
				return nil, err
			}
			if len(docs) == 0 {
				return nil, fmt.Errorf("no supported documents (%s) under %q",
					strings.Join(walker.SupportedExtensions, ", "), pattern)
			}
			for _, d := range docs {
				add(d.Path, d.Size)
			}
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}

		found := 0
		for _, path := range matches {
			info, err := os.Stat(path)
			if err != nil || info.IsDir() {
				continue
			}
			found++
			add(path, info.Size())
		}
		if found == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
	}
	return files, nil
}

func fileFromPath(path string, size int64) app.File {
	return app.File{
		Name: filepath.Base(path),
		Size: size,
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}
