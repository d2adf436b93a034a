package device

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features describes the SIMD capabilities of the host.
type Features struct {
	Architecture string
	HasSSE2      bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
}

// DetectFeatures reports host SIMD support via golang.org/x/sys/cpu.
func DetectFeatures() Features {
	f := Features{Architecture: runtime.GOARCH}
	switch runtime.GOARCH {
	case "amd64", "386":
		f.HasSSE2 = cpu.X86.HasSSE2
		f.HasAVX2 = cpu.X86.HasAVX2
		f.HasAVX512 = cpu.X86.HasAVX512F
	case "arm64":
		f.HasNEON = cpu.ARM64.HasASIMD
	}
	return f
}
