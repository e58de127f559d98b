package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/chain/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML or JSON configuration file (chosen by extension) on top of Default.
//
// A file that declares states must also declare the matrix, and vice versa.
// When it declares states without an initial state, the first state is used.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var file Config
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	return merge(Default(), file)
}

func merge(base, over Config) (Config, error) {
	out := base.Clone()

	switch {
	case len(over.States) > 0 && len(over.Matrix) == 0:
		return Config{}, fmt.Errorf("%w: states given without a matrix", domain.ErrInvalidConfig)
	case len(over.States) == 0 && len(over.Matrix) > 0:
		return Config{}, fmt.Errorf("%w: matrix given without states", domain.ErrInvalidConfig)
	case len(over.States) > 0:
		out.States = over.States
		out.Matrix = over.Matrix
		out.Initial = over.States[0]
	}

	if over.Initial != "" {
		out.Initial = over.Initial
	}
	if over.Iterations != 0 {
		out.Iterations = over.Iterations
	}
	if over.Trials != 0 {
		out.Trials = over.Trials
	}
	if over.Seed != 0 {
		out.Seed = over.Seed
	}
	if over.LogLevel != "" {
		out.LogLevel = over.LogLevel
	}
	return out, nil
}
