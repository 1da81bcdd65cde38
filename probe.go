package predef

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// ErrNoCompiler is returned by Probe when no C++ compiler can be found.
var ErrNoCompiler = errors.New("no C++ compiler found")

// probeSource pulls in the standard library configuration header and, on
// Apple targets, the platform conditionals.
const probeSource = `#include <cstddef>
#if defined(__APPLE__)
#include <TargetConditionals.h>
#endif
`

// ProbeOptions selects the toolchain to probe.
type ProbeOptions struct {
	Compiler string        // compiler command; FindCompiler(false) when empty
	Target   string        // target triple, passed as --target (clang only)
	Args     []string      // extra arguments, such as -stdlib=libc++
	Timeout  time.Duration // zero means no limit beyond ctx
}

// Result is what a toolchain reported about itself.
type Result struct {
	Compiler string       `json:"compiler" yaml:"compiler"`
	Args     []string     `json:"args" yaml:"args"`
	Stdlib   StdlibKind   `json:"stdlib" yaml:"stdlib"`
	Platform PlatformKind `json:"platform" yaml:"platform"`
	Macros   Macros       `json:"-" yaml:"-"`
}

// ProbeError is returned when the compiler could not preprocess the probe.
type ProbeError struct {
	Compiler string
	Args     []string
	Stderr   string
	Err      error
}

func (e *ProbeError) Error() string {
	msg := fmt.Sprintf("%s failed: %v", e.Compiler, e.Err)
	if s := firstLine(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *ProbeError) Unwrap() error { return e.Err }

// Probe runs the preprocessor of a C++ toolchain over a small probe source and
// classifies the macros it predefines.
func Probe(ctx context.Context, opts ProbeOptions) (*Result, error) {
	command := opts.Compiler
	if command == "" {
		command = FindCompiler(false)
	}
	if command == "" {
		return nil, ErrNoCompiler
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	exe, leading := splitCompiler(command)
	compiler := realCompiler(exe, leading)
	flavor := Flavor(compiler)

	dir, err := os.MkdirTemp("", "predef-")
	if err != nil {
		return nil, fmt.Errorf("could not create probe directory: %w", err)
	}
	defer os.RemoveAll(dir)

	source := probeSource
	if flavor == FlavorMSVC {
		source = markerSource()
	}
	src := filepath.Join(dir, "probe.cpp")
	if err := os.WriteFile(src, []byte(source), 0o644); err != nil {
		return nil, fmt.Errorf("could not write probe source: %w", err)
	}

	args, err := probeArgs(compiler, flavor, leading, opts, src)
	if err != nil {
		return nil, err
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, exe, args...)
	cmd.Dir = dir
	cmd.WaitDelay = time.Second
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return nil, &ProbeError{Compiler: exe, Args: args, Stderr: stderr.String(), Err: err}
	}

	var parse func(io.Reader) (Macros, error) = ParseDefines
	if flavor == FlavorMSVC {
		parse = parseMarkers
	}
	macros, err := parse(&stdout)
	if err != nil {
		return nil, err
	}
	return &Result{
		Compiler: exe,
		Args:     args,
		Stdlib:   ClassifyStdlib(macros),
		Platform: ClassifyPlatform(macros),
		Macros:   macros,
	}, nil
}

// probeArgs builds the preprocessor command line for the given dialect.
// compiler is the real compiler, also when leading starts with it after a
// wrapper.
func probeArgs(compiler string, flavor CompilerFlavor, leading []string, opts ProbeOptions, src string) ([]string, error) {
	args := append([]string{}, leading...)
	if opts.Target != "" {
		if !isCompilerClang(compiler) {
			return nil, fmt.Errorf("%s does not take --target, use a cross compiler for %s instead", filepath.Base(compiler), opts.Target)
		}
		args = append(args, "--target="+opts.Target)
	}
	if flavor == FlavorMSVC {
		args = append(args, "/nologo", "/EP", "/TP")
		args = append(args, opts.Args...)
		return append(args, src), nil
	}
	args = append(args, opts.Args...)
	return append(args, "-x", "c++", "-dM", "-E", src), nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if line, _, ok := strings.Cut(s, "\n"); ok {
		return strings.TrimSpace(line)
	}
	return s
}
