package util

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/keshon/tvc/internal/fs"
)

// WriteJSON writes v as indented JSON to path, atomically.
func WriteJSON(fsys fs.FS, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	return fs.WriteFileAtomic(fsys, path, data, 0o644)
}

// ReadJSON reads a JSON file and unmarshals it into v. Read errors are
// returned as is so callers can test them with fsys.IsNotExist.
func ReadJSON(fsys fs.FS, path string, v any) error {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return nil
}

// SortedKeys returns the keys of a map sorted alphabetically.
func SortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
