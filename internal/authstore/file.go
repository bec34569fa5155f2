package authstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
)

// FileKV persists keys as a single JSON object on disk. It is the headless
// analogue of the browser's localStorage: one small file per console user.
// A missing or corrupt file reads as empty rather than failing.
type FileKV struct {
	path string
}

// NewFileKV creates a file binding at the given path. The file is created
// lazily on the first Set.
func NewFileKV(path string) *FileKV {
	return &FileKV{path: path}
}

// Get retrieves a value; a missing file or key reads as empty.
func (f *FileKV) Get(ctx context.Context, key string) (string, error) {
	values, err := f.load()
	if err != nil {
		return "", err
	}
	return values[key], nil
}

// Set stores a value, creating the file and its directory as needed.
func (f *FileKV) Set(ctx context.Context, key, value string) error {
	values, err := f.load()
	if err != nil {
		return err
	}
	values[key] = value
	return f.save(values)
}

// Remove deletes a key; removing from a missing file is a no-op.
func (f *FileKV) Remove(ctx context.Context, key string) error {
	values, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return f.save(values)
}

func (f *FileKV) load() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	values := map[string]string{}
	if err := json.Unmarshal(raw, &values); err != nil {
		// Corrupt file reads as signed-out rather than wedging the console.
		return map[string]string{}, nil
	}
	return values, nil
}

func (f *FileKV) save(values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, raw, 0o600)
}
