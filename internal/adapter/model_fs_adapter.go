// Package adapter contains the infrastructure adapters used by lswbridge.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	m "github.com/mouse-blink/lswbridge/internal/model"
)

// ModelFSAdapter abstracts the filesystem operations the domain layer needs.
// It hides direct `os` access so the workflow can be tested without touching
// the disk.
type ModelFSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to path, truncating any existing file.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path so the domain can check existence.
	FileInfo(path m.Path) (os.FileInfo, error)

	// HashFile returns the hex SHA-256 of the file at path.
	HashFile(path m.Path) (string, error)

	// IsExecutable reports whether path is a regular file with an execute
	// bit set. A missing file is not an error.
	IsExecutable(path m.Path) (bool, error)
}

// LocalModelFSAdapter is the os-backed ModelFSAdapter.
type LocalModelFSAdapter struct{}

// NewLocalModelFSAdapter constructs a LocalModelFSAdapter.
func NewLocalModelFSAdapter() *LocalModelFSAdapter {
	return &LocalModelFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalModelFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - the model path is chosen by the user on purpose
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalModelFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalModelFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalModelFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// IsExecutable reports whether path is an executable regular file.
func (a *LocalModelFSAdapter) IsExecutable(path m.Path) (bool, error) {
	info, err := os.Stat(string(path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0, nil
}
