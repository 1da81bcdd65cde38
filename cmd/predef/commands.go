package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xyproto/predef"
)

func newStdlibCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stdlib [-- compiler args]",
		Short: "Print the C++ standard library: libstdc++, libc++, msvc or unknown",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := a.resolve(cmd.Context(), args)
			if err != nil {
				return err
			}
			r.Platform = ""
			return a.render(cmd.OutOrStdout(), r, fieldStdlib)
		},
	}
}

func newPlatformCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platform [-- compiler args]",
		Short: "Print the platform: windows, linux, macos, ios, ios-simulator or unknown",
		Long: `Print the platform a build targets.

With --goos the platform of that Go target is printed without asking any
toolchain. An ios target is a simulator when --simulator is given or
--goarch is amd64.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if goos := a.v.GetString("goos"); goos != "" {
				if a.wantsToolchain() {
					return fmt.Errorf("--goos cannot be combined with --cxx or --target")
				}
				goarch := a.v.GetString("goarch")
				if goarch == "" {
					goarch = runtime.GOARCH
				}
				r := report{
					Source:   sourceGoTarget,
					Platform: predef.PlatformFor(goos, goarch, a.v.GetBool("simulator")),
					Target:   goos + "/" + goarch,
				}
				a.log.Debug().Str("goos", goos).Str("goarch", goarch).Msg("classifying Go target")
				return a.render(cmd.OutOrStdout(), r, fieldPlatform)
			}
			r, _, err := a.resolve(cmd.Context(), args)
			if err != nil {
				return err
			}
			r.Stdlib = ""
			return a.render(cmd.OutOrStdout(), r, fieldPlatform)
		},
	}
	cmd.Flags().String("goos", "", "classify this Go GOOS instead of a toolchain")
	cmd.Flags().String("goarch", "", "GOARCH to go with --goos (default: this build's)")
	cmd.Flags().Bool("simulator", false, "treat an ios --goos as an iossimulator build")
	return cmd
}

func newMacrosCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "macros [-- compiler args]",
		Short: "Print the predefined macros the classification is based on",
		Long: `Print the predefined macros the classification is based on.

Without --cxx or --target these are the target macros implied by the Go
target of this build. Use --all to print every macro a toolchain defines.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var macros predef.Macros
			if a.wantsToolchain() {
				res, err := a.probe(cmd.Context(), args)
				if err != nil {
					return err
				}
				macros = res.Macros
			} else {
				if len(args) > 0 {
					return fmt.Errorf("compiler arguments %q need --cxx or --target", args)
				}
				macros = predef.BuildMacros()
			}
			if !a.v.GetBool("all") {
				macros = macros.Watched()
			}
			return a.renderMacros(cmd, macros)
		},
	}
	cmd.Flags().Bool("all", false, "print every predefined macro, not just the watched ones")
	return cmd
}

func (a *app) renderMacros(cmd *cobra.Command, macros predef.Macros) error {
	w := cmd.OutOrStdout()
	switch a.format() {
	case formatJSON:
		return writeJSON(w, map[string]string(macros))
	case formatYAML:
		return writeYAML(w, map[string]string(macros))
	}
	for _, name := range macros.Names() {
		line := strings.TrimSpace("#define " + name + " " + macros[name])
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of predef",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "predef %s\n", version)
			return err
		},
	}
}
