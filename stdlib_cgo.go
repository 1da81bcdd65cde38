//go:build cgo

package predef

// const char *predefStdlib(void);
import "C"

// buildStdlib returns what stdlib.cc picked when it was compiled.
func buildStdlib() StdlibKind {
	k, err := ParseStdlibKind(C.GoString(C.predefStdlib()))
	if err != nil {
		return StdlibUnknown
	}
	return k
}
