package predef

import "testing"

func TestClassifyStdlib(t *testing.T) {
	cases := []struct {
		name   string
		macros Macros
		want   StdlibKind
	}{
		{"gnu", Macros{"__GLIBCXX__": "20240508"}, StdlibGNU},
		{"llvm", Macros{"_LIBCPP_VERSION": "180100"}, StdlibLLVM},
		{"msvc", Macros{"_MSC_VER": "1938"}, StdlibMSVC},
		{"none", Macros{"__GNUC__": "14", "__linux__": "1"}, StdlibUnknown},
		{"empty", Macros{}, StdlibUnknown},
		{"nil", nil, StdlibUnknown},
		{"gnu wins over llvm", Macros{"_LIBCPP_VERSION": "1", "__GLIBCXX__": "1"}, StdlibGNU},
		{"llvm wins over msvc", Macros{"_MSC_VER": "1938", "_LIBCPP_VERSION": "1"}, StdlibLLVM},
		{"defined empty counts", Macros{"__GLIBCXX__": ""}, StdlibGNU},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyStdlib(tc.macros); got != tc.want {
				t.Errorf("ClassifyStdlib(%v) = %q, want %q", tc.macros, got, tc.want)
			}
		})
	}
}

func TestClassifyPlatform(t *testing.T) {
	cases := []struct {
		name   string
		macros Macros
		want   PlatformKind
	}{
		{"windows", Macros{"_WIN32": "1"}, PlatformWindows},
		{"windows first", Macros{"_WIN32": "1", "__linux__": "1", "__APPLE__": "1", "TARGET_OS_MAC": "1"}, PlatformWindows},
		{"linux", Macros{"__linux__": "1"}, PlatformLinux},
		{"android is linux", Macros{"__linux__": "1", "__ANDROID__": "1"}, PlatformLinux},
		{"linux before apple", Macros{"__linux__": "1", "__APPLE__": "1"}, PlatformLinux},
		{"ios simulator", Macros{"__APPLE__": "1", "TARGET_OS_MAC": "1", "TARGET_OS_IPHONE": "1", "TARGET_IPHONE_SIMULATOR": "1"}, PlatformIOSSimulator},
		{"ios device", Macros{"__APPLE__": "1", "TARGET_OS_MAC": "1", "TARGET_OS_IPHONE": "1", "TARGET_IPHONE_SIMULATOR": "0"}, PlatformIOS},
		{"macos", Macros{"__APPLE__": "1", "TARGET_OS_MAC": "1"}, PlatformMacOS},
		{"macos with zeros", Macros{"__APPLE__": "1", "TARGET_OS_MAC": "1", "TARGET_OS_IPHONE": "0", "TARGET_IPHONE_SIMULATOR": "0"}, PlatformMacOS},
		{"apple without conditionals", Macros{"__APPLE__": "1"}, PlatformUnknown},
		{"apple all zero", Macros{"__APPLE__": "1", "TARGET_OS_MAC": "0", "TARGET_OS_IPHONE": "0"}, PlatformUnknown},
		{"conditionals without apple", Macros{"TARGET_OS_MAC": "1"}, PlatformUnknown},
		{"nothing", Macros{"__FreeBSD__": "14"}, PlatformUnknown},
		{"nil", nil, PlatformUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyPlatform(tc.macros); got != tc.want {
				t.Errorf("ClassifyPlatform(%v) = %q, want %q", tc.macros, got, tc.want)
			}
		})
	}
}

func TestClassifiersAreTotal(t *testing.T) {
	// every subset of these, each set to 1
	interesting := []string{"_WIN32", "__linux__", "__APPLE__", "TARGET_OS_IPHONE", "TARGET_IPHONE_SIMULATOR", "TARGET_OS_MAC", "__GLIBCXX__", "_LIBCPP_VERSION", "_MSC_VER"}
	for mask := 0; mask < 1<<len(interesting); mask++ {
		m := Macros{}
		for i, name := range interesting {
			if mask&(1<<i) != 0 {
				m[name] = "1"
			}
		}
		if k := ClassifyStdlib(m); !k.valid() {
			t.Fatalf("ClassifyStdlib(%v) = %q, outside the closed set", m, k)
		}
		if k := ClassifyPlatform(m); !k.valid() {
			t.Fatalf("ClassifyPlatform(%v) = %q, outside the closed set", m, k)
		}
	}
}
