package predef

import (
	"runtime"
	"sync"
)

var (
	stdlibOnce   = sync.OnceValue(buildStdlib)
	platformOnce = sync.OnceValue(func() PlatformKind {
		return ClassifyPlatform(BuildMacros())
	})
)

// Stdlib returns the C++ standard library of the build this program was
// compiled in. With cgo it is decided by the C++ compiler at build time;
// without cgo the default toolchain is probed once. It never fails: anything
// unrecognized is StdlibUnknown. The result is computed once per process.
func Stdlib() StdlibKind {
	return stdlibOnce()
}

// Platform returns the platform this program was compiled for. The result is
// computed once per process.
func Platform() PlatformKind {
	return platformOnce()
}

// BuildMacros returns the target macros implied by the Go target of this build.
func BuildMacros() Macros {
	return TargetMacros(runtime.GOOS, runtime.GOARCH, iosSimulatorBuild)
}
