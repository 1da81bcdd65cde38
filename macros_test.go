package predef

import (
	"slices"
	"strings"
	"testing"
)

const gccDump = `#define __SIZEOF_INT__ 4
#define __GNUC__ 14
#define __linux__ 1
#define __cplusplus 201703L
#define __GLIBCXX__ 20240508
#define _GLIBCXX_CONST __attribute__ ((__const__))
#define __has_include(STR) __has_include__(STR)
#define __STDC_HOSTED__ 1
#define _GNU_SOURCE
# 1 "probe.cpp"
int x;
`

func TestParseDefines(t *testing.T) {
	m, err := ParseDefines(strings.NewReader(gccDump))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{
		"__GNUC__":       "14",
		"__linux__":      "1",
		"__cplusplus":    "201703L",
		"__GLIBCXX__":    "20240508",
		"_GLIBCXX_CONST": "__attribute__ ((__const__))",
		"__has_include":  "__has_include__(STR)",
		"_GNU_SOURCE":    "",
	}
	for name, value := range want {
		got, ok := m[name]
		if !ok {
			t.Errorf("expected %s to be defined", name)
			continue
		}
		if got != value {
			t.Errorf("%s = %q, want %q", name, got, value)
		}
	}
	if m.Defined("x") || m.Defined("int") {
		t.Errorf("non-define lines leaked into %v", m.Names())
	}
	if got := ClassifyStdlib(m); got != StdlibGNU {
		t.Errorf("ClassifyStdlib = %q, want %q", got, StdlibGNU)
	}
	if got := ClassifyPlatform(m); got != PlatformLinux {
		t.Errorf("ClassifyPlatform = %q, want %q", got, PlatformLinux)
	}
}

func TestMacrosTrue(t *testing.T) {
	m := Macros{
		"ONE":    "1",
		"ZERO":   "0",
		"PAREN":  "(1)",
		"LONG":   "201703L",
		"HEX":    "0x10u",
		"EMPTY":  "",
		"WORD":   "__attribute__",
		"NEG":    "-1",
		"SPACED": " ( 0 ) ",
	}
	cases := []struct {
		name string
		want bool
	}{
		{"ONE", true},
		{"ZERO", false},
		{"PAREN", true},
		{"LONG", true},
		{"HEX", true},
		{"EMPTY", false},
		{"WORD", false},
		{"NEG", true},
		{"SPACED", false},
		{"MISSING", false},
	}
	for _, tc := range cases {
		if got := m.True(tc.name); got != tc.want {
			t.Errorf("True(%s) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestMacrosWatched(t *testing.T) {
	m := Macros{"__GLIBCXX__": "1", "__SIZEOF_INT__": "4", "__linux__": "1"}
	got := m.Watched().Names()
	want := []string{"__GLIBCXX__", "__linux__"}
	if !slices.Equal(got, want) {
		t.Errorf("Watched().Names() = %v, want %v", got, want)
	}
}

func TestMarkerSource(t *testing.T) {
	src := markerSource()
	for _, name := range WatchedMacros {
		if !strings.Contains(src, "#ifdef "+name+"\n\"^^"+name+"^^\" "+name+"\n") {
			t.Errorf("marker source does not cover %s", name)
		}
	}
}

func TestParseMarkers(t *testing.T) {
	out := `

"^^_MSC_VER^^" 1938
"^^_WIN32^^" 1
"^^_MSVC_STL_VERSION^^" 143
"^^__cplusplus^^" 199711L
"^^EMPTY^^"
"^^SELF^^" SELF
int unrelated;
"^^^^" 1
^^1938^^ 1938
`
	m, err := parseMarkers(strings.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if got := ClassifyStdlib(m); got != StdlibMSVC {
		t.Errorf("ClassifyStdlib = %q, want %q", got, StdlibMSVC)
	}
	if got := ClassifyPlatform(m); got != PlatformWindows {
		t.Errorf("ClassifyPlatform = %q, want %q", got, PlatformWindows)
	}
	if m["_MSC_VER"] != "1938" {
		t.Errorf("_MSC_VER = %q, want 1938", m["_MSC_VER"])
	}
	if v, ok := m["EMPTY"]; !ok || v != "" {
		t.Errorf("EMPTY = %q, %v", v, ok)
	}
	if v := m["SELF"]; v != "" {
		t.Errorf("SELF = %q, want empty", v)
	}
	if len(m) != 6 {
		t.Errorf("expected 6 macros, got %v", m.Names())
	}
}
