// Package predef identifies which C++ standard library implementation and
// which operating system or device a build targets, from the macros a
// compiler predefines.
//
// The classifiers are pure functions over a Macros set. Stdlib and Platform
// report the labels for the build this program was compiled in, and Probe asks
// an external C++ toolchain for its macros.
package predef

import "fmt"

// StdlibKind names a C++ standard library implementation.
type StdlibKind string

const (
	StdlibGNU     StdlibKind = "libstdc++"
	StdlibLLVM    StdlibKind = "libc++"
	StdlibMSVC    StdlibKind = "msvc"
	StdlibUnknown StdlibKind = "unknown"
)

// PlatformKind names an operating system or device target.
type PlatformKind string

const (
	PlatformWindows      PlatformKind = "windows"
	PlatformLinux        PlatformKind = "linux"
	PlatformMacOS        PlatformKind = "macos"
	PlatformIOS          PlatformKind = "ios"
	PlatformIOSSimulator PlatformKind = "ios-simulator"
	PlatformUnknown      PlatformKind = "unknown"
)

// StdlibKinds returns every StdlibKind, in the order they are checked.
func StdlibKinds() []StdlibKind {
	return []StdlibKind{StdlibGNU, StdlibLLVM, StdlibMSVC, StdlibUnknown}
}

// PlatformKinds returns every PlatformKind, in the order they are checked.
func PlatformKinds() []PlatformKind {
	return []PlatformKind{
		PlatformWindows, PlatformLinux, PlatformIOSSimulator,
		PlatformIOS, PlatformMacOS, PlatformUnknown,
	}
}

// String returns the label.
func (k StdlibKind) String() string { return string(k) }

// Known reports whether k names an actual implementation.
func (k StdlibKind) Known() bool { return k != StdlibUnknown && k.valid() }

func (k StdlibKind) valid() bool {
	switch k {
	case StdlibGNU, StdlibLLVM, StdlibMSVC, StdlibUnknown:
		return true
	}
	return false
}

// MarshalText encodes k as its label, rejecting labels outside the set.
func (k StdlibKind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("invalid standard library kind %q", string(k))
	}
	return []byte(k), nil
}

// UnmarshalText decodes a label with ParseStdlibKind.
func (k *StdlibKind) UnmarshalText(b []byte) error {
	parsed, err := ParseStdlibKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseStdlibKind returns the StdlibKind with the given label.
func ParseStdlibKind(s string) (StdlibKind, error) {
	k := StdlibKind(s)
	if !k.valid() {
		return StdlibUnknown, fmt.Errorf("unrecognized standard library %q", s)
	}
	return k, nil
}

// String returns the label.
func (k PlatformKind) String() string { return string(k) }

// Known reports whether k names an actual platform.
func (k PlatformKind) Known() bool { return k != PlatformUnknown && k.valid() }

func (k PlatformKind) valid() bool {
	switch k {
	case PlatformWindows, PlatformLinux, PlatformMacOS, PlatformIOS, PlatformIOSSimulator, PlatformUnknown:
		return true
	}
	return false
}

// MarshalText encodes k as its label, rejecting labels outside the set.
func (k PlatformKind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("invalid platform kind %q", string(k))
	}
	return []byte(k), nil
}

// UnmarshalText decodes a label with ParsePlatformKind.
func (k *PlatformKind) UnmarshalText(b []byte) error {
	parsed, err := ParsePlatformKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParsePlatformKind returns the PlatformKind with the given label.
func ParsePlatformKind(s string) (PlatformKind, error) {
	k := PlatformKind(s)
	if !k.valid() {
		return PlatformUnknown, fmt.Errorf("unrecognized platform %q", s)
	}
	return k, nil
}
