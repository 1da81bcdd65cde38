package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/xyproto/predef"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

const (
	sourceBuild     = "build"
	sourceGoTarget  = "go-target"
	sourceToolchain = "toolchain"
)

// fields selects which labels a text report prints.
type fields int

const (
	fieldStdlib fields = 1 << iota
	fieldPlatform
)

type report struct {
	Source   string              `json:"source" yaml:"source"`
	Stdlib   predef.StdlibKind   `json:"stdlib,omitempty" yaml:"stdlib,omitempty"`
	Platform predef.PlatformKind `json:"platform,omitempty" yaml:"platform,omitempty"`
	Compiler string              `json:"compiler,omitempty" yaml:"compiler,omitempty"`
	Target   string              `json:"target,omitempty" yaml:"target,omitempty"`
}

// render writes r in the selected format. Text output with a single field is
// just the label, so scripts can use it directly.
func (a *app) render(w io.Writer, r report, f fields) error {
	switch a.format() {
	case formatJSON:
		return writeJSON(w, r)
	case formatYAML:
		return writeYAML(w, r)
	}

	if f == fieldStdlib {
		_, err := fmt.Fprintln(w, a.paint(r.Stdlib.String(), r.Stdlib.Known()))
		return err
	}
	if f == fieldPlatform {
		_, err := fmt.Fprintln(w, a.paint(r.Platform.String(), r.Platform.Known()))
		return err
	}
	if _, err := fmt.Fprintf(w, "stdlib:   %s\nplatform: %s\n",
		a.paint(r.Stdlib.String(), r.Stdlib.Known()),
		a.paint(r.Platform.String(), r.Platform.Known())); err != nil {
		return err
	}
	if r.Compiler != "" {
		if _, err := fmt.Fprintf(w, "compiler: %s\n", r.Compiler); err != nil {
			return err
		}
	}
	if r.Target != "" {
		if _, err := fmt.Fprintf(w, "target:   %s\n", r.Target); err != nil {
			return err
		}
	}
	return nil
}

// paint colors known labels green and unknown ones yellow.
func (a *app) paint(label string, known bool) string {
	c := color.New(color.FgGreen)
	if !known {
		c = color.New(color.FgYellow)
	}
	if a.noColor() {
		c.DisableColor()
	}
	return c.Sprint(label)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("could not encode JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("could not encode YAML: %w", err)
	}
	return enc.Close()
}
