package predef

import (
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/xyproto/env/v2"
	"github.com/xyproto/files"
)

// CompilerFlavor tells which command line dialect a compiler speaks.
type CompilerFlavor string

const (
	FlavorGCC   CompilerFlavor = "gcc"
	FlavorClang CompilerFlavor = "clang"
	FlavorMSVC  CompilerFlavor = "msvc"
	FlavorOther CompilerFlavor = "other"
)

// FindCompiler returns the C++ compiler command to probe, or "" if none is
// found. When useClang is set, clang++ is preferred. $CXX is honored next and
// may carry a wrapper or extra arguments ("ccache g++", "g++ -m32"). Like the
// rest of the env package, $CXX is read from a cached copy of the environment;
// call env.Load after changing it with os.Setenv.
func FindCompiler(useClang bool) string {
	if useClang {
		if p := files.WhichCached("clang++"); p != "" {
			return p
		}
	}
	if cxx := strings.TrimSpace(env.Str("CXX")); cxx != "" {
		if p, err := exec.LookPath(cxx); err == nil {
			return p
		}
		if fields := strings.Fields(cxx); len(fields) > 1 {
			if p, err := exec.LookPath(fields[0]); err == nil {
				return strings.Join(append([]string{p}, fields[1:]...), " ")
			}
		}
	}
	for _, compiler := range defaultCompilers {
		if p := files.WhichCached(compiler); p != "" {
			return p
		}
	}
	return ""
}

// splitCompiler separates a compiler command into the executable and any
// leading arguments. A command that names an existing executable as a whole
// is never split, so paths with spaces survive.
func splitCompiler(command string) (string, []string) {
	command = strings.TrimSpace(command)
	if _, err := exec.LookPath(command); err == nil {
		return command, nil
	}
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

// compilerWrappers run the compiler named by their first non-flag argument.
var compilerWrappers = map[string]bool{
	"ccache": true, "sccache": true, "distcc": true, "icecc": true,
}

// realCompiler returns the compiler behind a wrapper command such as
// "ccache clang++", or exe itself when it is not a wrapper.
func realCompiler(exe string, leading []string) string {
	base := strings.TrimSuffix(strings.ToLower(filepath.Base(exe)), ".exe")
	if !compilerWrappers[base] {
		return exe
	}
	for _, arg := range leading {
		if !strings.HasPrefix(arg, "-") {
			return arg
		}
	}
	return exe
}

// Flavor guesses the compiler dialect from the executable name, looking
// through wrappers like ccache.
func Flavor(compiler string) CompilerFlavor {
	exe := realCompiler(splitCompiler(compiler))
	switch {
	case isCompilerMSVC(exe):
		return FlavorMSVC
	case isCompilerClang(exe):
		return FlavorClang
	case isCompilerGCC(exe):
		return FlavorGCC
	}
	return FlavorOther
}

// isCompilerMSVC checks if a compiler path looks like cl.exe or clang-cl.
func isCompilerMSVC(compiler string) bool {
	base := strings.ToLower(filepath.Base(compiler))
	base = strings.TrimSuffix(base, ".exe")
	return base == "cl" || strings.HasSuffix(base, "clang-cl")
}

// isCompilerGCC checks if a compiler path looks like gcc/g++.
func isCompilerGCC(compiler string) bool {
	base := filepath.Base(compiler)
	for _, needle := range []string{"g++", "gcc"} {
		idx := strings.Index(base, needle)
		if idx < 0 {
			continue
		}
		if idx == 0 || !isLetter(base[idx-1]) {
			return true
		}
	}
	return false
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isCompilerClang checks if a compiler path looks like clang/clang++.
func isCompilerClang(compiler string) bool {
	base := filepath.Base(compiler)
	return strings.Contains(base, "clang")
}
