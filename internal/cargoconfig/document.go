// Package cargoconfig synthesizes the `.cargo/config.toml` that wires the
// probed accelerators into cargo.
//
// Synthesis is a pure transform over the probed facts and the fixed tables
// in tables.go. Field tags carry cargo's key spellings.
package cargoconfig

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is where cargo picks up project configuration.
const DefaultPath = ".cargo/config.toml"

const header = "# Generated by fleet. This file is rewritten on every build or run.\n\n"

// ErrRender reports that a document could not be encoded.
var ErrRender = errors.New("rendering cargo config")

// Document is the root of config.toml.
type Document struct {
	Build   Build      `toml:"build"`
	Target  Targets    `toml:"target"`
	Profile ProfileSet `toml:"profile"`
}

// Build holds the [build] section.
type Build struct {
	RustcWrapper *string `toml:"rustc-wrapper,omitempty"`
}

// TargetValues holds one [target.<triple>] section.
type TargetValues struct {
	Rustflags []string `toml:"rustflags"`
	Linker    *string  `toml:"linker,omitempty"`
}

// Targets has one field per Platform so a document can never omit one.
type Targets struct {
	Linux   TargetValues `toml:"x86_64-unknown-linux-gnu"`
	Windows TargetValues `toml:"x86_64-pc-windows-msvc"`
	Mac     TargetValues `toml:"x86_64-apple-darwin"`
}

// For returns the section for p.
func (t *Targets) For(p Platform) *TargetValues {
	switch p {
	case WindowsMsvc:
		return &t.Windows
	case MacDarwin:
		return &t.Mac
	default:
		return &t.Linux
	}
}

// ProfileValues holds one [profile.<name>] section.
type ProfileValues struct {
	OptLevel     int  `toml:"opt-level"`
	Debug        int  `toml:"debug"`
	Incremental  bool `toml:"incremental"`
	CodegenUnits int  `toml:"codegen-units"`
}

// ProfileSet holds the [profile] section.
type ProfileSet struct {
	Dev     ProfileValues `toml:"dev"`
	Release ProfileValues `toml:"release"`
}

// Marshal encodes the document as TOML. The output is deterministic.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)
	if err := toml.NewEncoder(&buf).Encode(d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

// Parse decodes config.toml content into a Document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing cargo config: %w", err)
	}
	return &doc, nil
}
