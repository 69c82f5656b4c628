package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink receives finished downloads.
type Sink interface {
	Save(d Download) (string, error)
}

// DirSink writes downloads into a directory, creating it on first use.
type DirSink struct {
	Dir string
}

func (s DirSink) Save(d Download) (string, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	path := filepath.Join(dir, d.Filename)
	if err := os.WriteFile(path, d.Content, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", d.Filename, err)
	}
	return path, nil
}
