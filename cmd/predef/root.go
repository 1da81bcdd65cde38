package main

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xyproto/predef"
)

// version is set at build time via ldflags.
var version = "1.0.0"

// Package-level function variables for testability.
var (
	probeToolchain = predef.Probe
	findCompiler   = predef.FindCompiler
	buildStdlib    = predef.Stdlib
	buildPlatform  = predef.Platform
)

// app holds the settings shared by all commands, after flags, PREDEF_*
// environment variables and defaults have been merged by viper.
type app struct {
	v   *viper.Viper
	log zerolog.Logger
}

func (a *app) cxx() string { return a.v.GetString("cxx") }
func (a *app) target() string { return a.v.GetString("target") }
func (a *app) format() string { return strings.ToLower(a.v.GetString("format")) }
func (a *app) timeout() time.Duration { return a.v.GetDuration("timeout") }
func (a *app) noColor() bool { return a.v.GetBool("no-color") }
func (a *app) wantsToolchain() bool { return a.cxx() != "" || a.target() != "" }

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "predef",
		Short: "Identify the C++ standard library and target platform",
		Long: `predef reports which C++ standard library (libstdc++, libc++, msvc) and
which platform (windows, linux, macos, ios, ios-simulator) a build targets.

Without --cxx or --target it reports on the build of predef itself. With
them it asks that C++ toolchain for its predefined macros.

Examples:
  predef
  predef stdlib --cxx clang++ -- -stdlib=libc++
  predef platform --target arm64-apple-ios17.0-simulator
  predef platform --goos ios --goarch arm64
  predef macros --cxx g++ --format json`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		Version:           version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := a.resolve(cmd.Context(), args)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), r, fieldStdlib|fieldPlatform)
		},
	}
	cmd.SetVersionTemplate("predef {{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.String("cxx", "", "C++ compiler command to probe (env PREDEF_CXX)")
	pf.String("target", "", "target triple to pass to clang (env PREDEF_TARGET)")
	pf.String("format", "text", "output format: text, json, yaml")
	pf.Duration("timeout", 30*time.Second, "time limit for probing a toolchain")
	pf.CountP("verbose", "v", "increase log verbosity (-v, -vv)")
	pf.Bool("no-color", false, "disable colored output")

	cmd.AddCommand(
		newStdlibCmd(a),
		newPlatformCmd(a),
		newMacrosCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// setup wires viper to the environment and sets up logging.
func (a *app) setup(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("PREDEF")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("could not bind flags: %w", err)
	}

	switch a.format() {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown format %q, only text/json/yaml is allowed", a.v.GetString("format"))
	}

	level := zerolog.WarnLevel
	switch n := a.v.GetInt("verbose"); {
	case n == 1:
		level = zerolog.DebugLevel
	case n >= 2:
		level = zerolog.TraceLevel
	}
	w := zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: a.noColor(), TimeFormat: time.TimeOnly}
	a.log = zerolog.New(w).Level(level).With().Timestamp().Logger()
	return nil
}

// resolve reports on the build of this program, or on a toolchain when one
// was asked for. Extra args are passed on to the compiler.
func (a *app) resolve(ctx context.Context, args []string) (report, *predef.Result, error) {
	if !a.wantsToolchain() {
		if len(args) > 0 {
			return report{}, nil, fmt.Errorf("compiler arguments %q need --cxx or --target", args)
		}
		r := report{Source: sourceBuild, Stdlib: buildStdlib(), Platform: buildPlatform()}
		a.log.Debug().Str("goos", runtime.GOOS).Str("goarch", runtime.GOARCH).Msg("reporting on this build")
		return r, nil, nil
	}
	res, err := a.probe(ctx, args)
	if err != nil {
		return report{}, nil, err
	}
	return report{
		Source:   sourceToolchain,
		Stdlib:   res.Stdlib,
		Platform: res.Platform,
		Compiler: res.Compiler,
		Target:   a.target(),
	}, res, nil
}

func (a *app) probe(ctx context.Context, args []string) (*predef.Result, error) {
	opts := predef.ProbeOptions{
		Compiler: a.cxx(),
		Target:   a.target(),
		Args:     args,
		Timeout:  a.timeout(),
	}
	if opts.Compiler == "" {
		// --target only means something to clang
		opts.Compiler = findCompiler(opts.Target != "")
		if opts.Compiler == "" {
			return nil, predef.ErrNoCompiler
		}
	}
	a.log.Debug().Str("compiler", opts.Compiler).Str("target", opts.Target).Strs("args", args).Msg("probing toolchain")

	start := time.Now()
	res, err := probeToolchain(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("could not probe toolchain: %w", err)
	}
	a.log.Trace().Strs("argv", res.Args).Int("macros", len(res.Macros)).Dur("took", time.Since(start)).Msg("probe finished")
	if !res.Stdlib.Known() || !res.Platform.Known() {
		a.log.Info().Str("stdlib", res.Stdlib.String()).Str("platform", res.Platform.String()).Msg("toolchain not fully recognized")
	}
	return res, nil
}
