package editor

import (
	"os"
	"path/filepath"
	"time"
)

// FileStore is the narrow filesystem surface the editor depends on.
// Production code uses the local OS; tests substitute a fake to drive
// load and save failure paths.
type FileStore interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	ModTime(path string) (time.Time, error)
}

type osStore struct{}

func (osStore) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (osStore) WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func (osStore) ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
