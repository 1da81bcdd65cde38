//go:build !cgo

package predef

import (
	"context"
	"time"
)

const buildProbeTimeout = 10 * time.Second

// buildStdlib asks the default C++ toolchain, since without cgo there is no
// C++ translation unit in this binary.
func buildStdlib() StdlibKind {
	ctx, cancel := context.WithTimeout(context.Background(), buildProbeTimeout)
	defer cancel()
	res, err := Probe(ctx, ProbeOptions{})
	if err != nil {
		return StdlibUnknown
	}
	return res.Stdlib
}
