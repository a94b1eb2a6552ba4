// Package fileio reads and writes whole documents.
package fileio

import (
	"fmt"
	"os"

	"github.com/bethropolis/jot/internal/logger"
)

// FileMode is the permission used when save creates a file.
const FileMode os.FileMode = 0644

// Read returns the full content of path as text.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading '%s': %w", path, err)
	}
	logger.Debugf("fileio: read %d bytes from '%s'", len(data), path)
	return string(data), nil
}

// Write replaces the content of path, creating the file if needed.
func Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), FileMode); err != nil {
		return fmt.Errorf("writing '%s': %w", path, err)
	}
	logger.Debugf("fileio: wrote %d bytes to '%s'", len(content), path)
	return nil
}
