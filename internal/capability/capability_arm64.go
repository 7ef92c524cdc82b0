//go:build arm64

package capability

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

func init() {
	// Every Apple Silicon part implements the CRC32 extension, but the
	// feature registers are not readable from user space on darwin.
	hasCRC32 = cpu.ARM64.HasCRC32 || runtime.GOOS == "darwin"
	hasPMULL = cpu.ARM64.HasPMULL || runtime.GOOS == "darwin"
}
