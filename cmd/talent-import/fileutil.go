package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

func writeJSONFile(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return withCode(exitDB, fmt.Errorf("mkdir %s: %w", dir, err))
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return withCode(exitDB, fmt.Errorf("json marshal: %w", err))
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return withCode(exitDB, fmt.Errorf("write %s: %w", path, err))
	}
	return nil
}

func writeManifest(outputDir string, manifest *importManifest) (string, error) {
	ts := manifest.StartedAt.UTC().Format("20060102T150405Z")
	if manifest.StartedAt.IsZero() {
		ts = time.Now().UTC().Format("20060102T150405Z")
	}
	name := fmt.Sprintf("import_manifest_%s_%s.json", ts, manifest.RunID.String())
	path := filepath.Join(outputDir, name)
	if err := writeJSONFile(path, manifest); err != nil {
		return "", err
	}
	return path, nil
}
