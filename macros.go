package predef

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Macros maps predefined macro names to their replacement text.
type Macros map[string]string

// WatchedMacros are the macros the classifiers look at, plus a few that help
// when reading a probe report.
var WatchedMacros = []string{
	"__GLIBCXX__", "_LIBCPP_VERSION", "_MSC_VER", "_MSVC_STL_VERSION",
	"_WIN32", "__linux__", "__ANDROID__", "__APPLE__",
	"TARGET_OS_MAC", "TARGET_OS_OSX", "TARGET_OS_IPHONE",
	"TARGET_OS_SIMULATOR", "TARGET_IPHONE_SIMULATOR",
	"__GNUC__", "__clang__", "__cplusplus",
}

// Defined reports whether name is defined, like defined(name) in #if.
func (m Macros) Defined(name string) bool {
	_, ok := m[name]
	return ok
}

// True reports whether "#if name" would take the branch: name must be
// defined and expand to a nonzero integer literal.
func (m Macros) True(name string) bool {
	v, ok := m[name]
	if !ok {
		return false
	}
	n, ok := intValue(v)
	return ok && n != 0
}

// Names returns the defined macro names in sorted order.
func (m Macros) Names() []string {
	return slices.Sorted(maps.Keys(m))
}

// Watched returns the subset of m named in WatchedMacros.
func (m Macros) Watched() Macros {
	sub := make(Macros)
	for _, name := range WatchedMacros {
		if v, ok := m[name]; ok {
			sub[name] = v
		}
	}
	return sub
}

// intValue evaluates a replacement text that is a single integer literal,
// optionally parenthesized and suffixed (1, (1), 201103L, 0x10u).
func intValue(v string) (int64, bool) {
	v = strings.TrimSpace(v)
	for len(v) >= 2 && v[0] == '(' && v[len(v)-1] == ')' {
		v = strings.TrimSpace(v[1 : len(v)-1])
	}
	v = strings.TrimRight(v, "uUlL")
	if v == "" {
		return 0, false
	}
	if n, err := strconv.ParseInt(v, 0, 64); err == nil {
		return n, true
	}
	if n, err := strconv.ParseUint(v, 0, 64); err == nil {
		return int64(n), true
	}
	return 0, false
}

// ParseDefines reads "#define NAME VALUE" lines, as printed by "cc -dM -E",
// and ignores everything else. Function-like macros are stored under their
// bare name with the body as the value.
func ParseDefines(r io.Reader) (Macros, error) {
	m := make(Macros)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		rest, ok := strings.CutPrefix(line, "#define ")
		if !ok {
			continue
		}
		rest = strings.TrimLeft(rest, " \t")
		end := strings.IndexAny(rest, " \t(")
		if end < 0 {
			if rest != "" {
				m[rest] = ""
			}
			continue
		}
		name, body := rest[:end], rest[end:]
		if body[0] == '(' {
			if rp := strings.IndexByte(body, ')'); rp >= 0 {
				body = body[rp+1:]
			}
		}
		if name != "" {
			m[name] = strings.TrimSpace(body)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read macro definitions: %w", err)
	}
	return m, nil
}

// Markers are string literals so the preprocessor leaves the name alone and
// only expands the value after it.
const (
	markerOpen  = `"^^`
	markerClose = `^^"`
)

// markerSource returns a translation unit that prints "^^NAME^^" NAME for every
// watched macro that is defined. Used with preprocessors that cannot dump
// their predefined macros.
func markerSource() string {
	var sb strings.Builder
	sb.WriteString("#include <cstddef>\n")
	sb.WriteString("#if defined(__APPLE__)\n#include <TargetConditionals.h>\n#endif\n")
	for _, name := range WatchedMacros {
		fmt.Fprintf(&sb, "#ifdef %s\n%s%s%s %s\n#endif\n", name, markerOpen, name, markerClose, name)
	}
	return sb.String()
}

// parseMarkers reads the preprocessed output of markerSource.
func parseMarkers(r io.Reader) (Macros, error) {
	m := make(Macros)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		rest, ok := strings.CutPrefix(line, markerOpen)
		if !ok {
			continue
		}
		name, value, ok := strings.Cut(rest, markerClose)
		if !ok || name == "" {
			continue
		}
		value = strings.TrimSpace(value)
		if value == name {
			// defined but expanding to itself, or to nothing the preprocessor kept
			value = ""
		}
		m[name] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read marker output: %w", err)
	}
	return m, nil
}
