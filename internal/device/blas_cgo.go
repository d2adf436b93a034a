//go:build cgo && netlib

package device

// This file registers the netlib BLAS implementation which uses system BLAS
// (Accelerate on macOS, OpenBLAS on Linux) when built with -tags netlib.

import (
	"github.com/rs/zerolog/log"
	"gonum.org/v1/netlib/blas/netlib"
)

func init() {
	UseBLAS(netlib.Implementation{})
	log.Debug().Msg("CGO/BLAS acceleration enabled (netlib)")
}
