// Package projectconfig loads viewmill.yaml, the optional project-wide
// defaults cmd/viewmillc reads before falling back to its own flags.
// Grounded on rajajisai-bot-go's internal/config (flat yaml-tagged struct,
// loaded with a decoder rather than yaml.Unmarshal so unknown keys are
// caught) and ben-ranford-lopper's internal/thresholds (KnownFields(true)
// strictness, wrapped read/parse errors).
package projectconfig

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultFileName = "viewmill.yaml"

// Config mirrors original_source/transformer/src/lib.rs's Options, plus
// the output-side knobs api.TransformOptions exposes, so a project can
// pin them once instead of passing flags on every invocation.
type Config struct {
	Target          string `yaml:"target"`
	Syntax          string `yaml:"syntax"`
	CanEmitWarnings bool   `yaml:"can_emit_warnings"`
	NoHeader        bool   `yaml:"no_header"`
}

// Load reads and strictly decodes path. A missing file is not an error —
// callers are expected to check os.IsNotExist and fall back to defaults,
// matching how cmd/viewmillc treats an absent viewmill.yaml as "use flags
// only" rather than a fatal condition.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}
