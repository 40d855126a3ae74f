package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/sketchkit/pkg/errors"
	"github.com/matzehuels/sketchkit/pkg/scene"
)

// ReadScene decodes and validates a TOML scene from r. ReadScene does not
// close r.
func ReadScene(r io.Reader) (*scene.Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return scene.Parse(data)
}

// ImportScene reads the scene file at path. Relative paths are resolved
// against the working directory before validation.
func ImportScene(path string) (*scene.Scene, error) {
	data, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	sc, err := scene.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// ReadSource validates path and returns the raw scene source, for callers
// that hand the bytes to the pipeline.
func ReadSource(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New(errors.ErrCodeInvalidPath, "path cannot be empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", path)
	}
	if err := errors.ValidatePath(abs); err != nil {
		return nil, err
	}
	f, err := os.Open(abs)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// ReadResult decodes a result written by [WriteJSON].
func ReadResult(r io.Reader) (*scene.Result, error) {
	var res scene.Result
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &res, nil
}
