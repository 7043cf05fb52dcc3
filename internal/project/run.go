package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/SquarePack/internal/model"
)

// RunFileVersion is written into every saved run.
const RunFileVersion = "1.0.0"

// ErrInvalidRunFile is returned for run files without a version.
var ErrInvalidRunFile = errors.New("invalid run file")

// RunFile is the on-disk envelope of a saved run.
type RunFile struct {
	Version string    `json:"version"`
	SavedAt string    `json:"saved_at"`
	Run     model.Run `json:"run"`
}

// SaveRun writes a run as indented JSON, creating parent directories.
func SaveRun(path string, run model.Run) error {
	file := RunFile{
		Version: RunFileVersion,
		SavedAt: time.Now().UTC().Format(time.RFC3339),
		Run:     run,
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create run directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write run file: %w", err)
	}
	return nil
}

// LoadRun reads a run saved by SaveRun.
func LoadRun(path string) (model.Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Run{}, fmt.Errorf("failed to read run file: %w", err)
	}
	var file RunFile
	if err := json.Unmarshal(data, &file); err != nil {
		return model.Run{}, fmt.Errorf("failed to parse run file: %w", err)
	}
	if file.Version == "" {
		return model.Run{}, fmt.Errorf("%w: missing version field", ErrInvalidRunFile)
	}
	if file.Run.Rectangles == nil {
		file.Run.Rectangles = []model.Rectangle{}
	}
	return file.Run, nil
}
