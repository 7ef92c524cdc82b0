package capability

import (
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
)

// Set is an immutable snapshot of CRC-relevant CPU features.
type Set struct {
	// Arch is runtime.GOARCH.
	Arch string
	// CPU is the processor brand string, if the CPU reports one.
	CPU string
	// Vendor is the processor vendor string, if known.
	Vendor string

	// SSE42 reports the x86-64 CRC32 instruction.
	SSE42 bool
	// PCLMULQDQ reports x86-64 carry-less multiply.
	PCLMULQDQ bool
	// CRC32 reports the ARMv8 CRC32 extension.
	CRC32 bool
	// PMULL reports ARMv8 polynomial multiply long.
	PMULL bool
}

// Platform-specific probes fill these at init.
var (
	hasSSE42     bool
	hasPCLMULQDQ bool
	hasCRC32     bool
	hasPMULL     bool
)

// Detect returns the capability set of the executing CPU.
func Detect() Set {
	return Set{
		Arch:      runtime.GOARCH,
		CPU:       strings.TrimSpace(cpuid.CPU.BrandName),
		Vendor:    cpuid.CPU.VendorString,
		SSE42:     hasSSE42,
		PCLMULQDQ: hasPCLMULQDQ,
		CRC32:     hasCRC32,
		PMULL:     hasPMULL,
	}
}

// Accelerated reports whether the CRC32C instruction path can run.
func (s Set) Accelerated() bool {
	switch s.Arch {
	case "amd64":
		return s.SSE42
	case "arm64":
		return s.CRC32
	default:
		return false
	}
}

// Features lists the detected feature names in a stable order.
func (s Set) Features() []string {
	var out []string
	if s.SSE42 {
		out = append(out, "sse4.2")
	}
	if s.PCLMULQDQ {
		out = append(out, "pclmulqdq")
	}
	if s.CRC32 {
		out = append(out, "crc32")
	}
	if s.PMULL {
		out = append(out, "pmull")
	}
	return out
}
