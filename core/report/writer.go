package report

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tristendillon/pydeps/core/models"
)

// WriteDependencyMap writes m as a JSON object with sorted keys and sorted
// dependency arrays, two-space indented, followed by a newline. Identical
// maps always produce identical bytes.
func WriteDependencyMap(w io.Writer, m models.DependencyMap) error {
	return writeJSON(w, m.Sorted())
}

// ReadDependencyMap loads a map previously written by WriteDependencyMap.
func ReadDependencyMap(r io.Reader) (models.DependencyMap, error) {
	var m models.DependencyMap
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode dependency map: %w", err)
	}
	for file, deps := range m {
		if deps == nil {
			m[file] = []string{}
		}
	}
	return m, nil
}

func SaveDependencyMap(path string, m models.DependencyMap) error {
	return saveFile(path, func(w io.Writer) error { return WriteDependencyMap(w, m) })
}

func LoadDependencyMap(path string) (models.DependencyMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dependency map %s: %w", path, err)
	}
	defer f.Close()

	m, err := ReadDependencyMap(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// WriteUnused writes one path per line.
func WriteUnused(w io.Writer, files []string) error {
	bw := bufio.NewWriter(w)
	for _, file := range files {
		if _, err := bw.WriteString(file + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func SaveUnused(path string, files []string) error {
	return saveFile(path, func(w io.Writer) error { return WriteUnused(w, files) })
}

func WriteSystems(w io.Writer, systems []models.System) error {
	if systems == nil {
		systems = []models.System{}
	}
	return writeJSON(w, systems)
}

func SaveSystems(path string, systems []models.System) error {
	return saveFile(path, func(w io.Writer) error { return WriteSystems(w, systems) })
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

// saveFile renders into memory first so a failed encode never truncates an
// existing output file.
func saveFile(path string, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func WriteStats(w io.Writer, stats models.Stats) error {
	return writeJSON(w, stats)
}
