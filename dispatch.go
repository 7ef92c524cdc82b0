package crc32c

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/hupe1980/crc32c/internal/capability"
	"github.com/hupe1980/crc32c/internal/hw"
	"github.com/hupe1980/crc32c/internal/table"
)

// EnvImpl names the environment variable that forces an implementation.
// Unknown or unavailable values are ignored.
const EnvImpl = "CRC32C_IMPL"

// Impl identifies a CRC32C engine.
type Impl uint8

const (
	// Reference is the portable slicing-by-8 table engine.
	Reference Impl = iota
	// Accelerated is the CPU-instruction engine (SSE4.2 or ARMv8 CRC32).
	Accelerated
)

// String returns the string representation of an Impl.
func (i Impl) String() string {
	switch i {
	case Reference:
		return "reference"
	case Accelerated:
		return "accelerated"
	default:
		return "unknown"
	}
}

// ParseImpl parses a string into an Impl value.
func ParseImpl(s string) (Impl, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reference", "generic", "table":
		return Reference, true
	case "accelerated", "hw", "hardware":
		return Accelerated, true
	default:
		return Reference, false
	}
}

// Func has the signature of Compute.
type Func func(seed uint32, p []byte) uint32

// Info describes the process-wide engine binding.
type Info struct {
	Impl         Impl
	Overridden   bool
	Capabilities capability.Set
}

// binding is published once and never mutated.
type binding struct {
	info    Info
	update  func(crc uint32, p []byte) uint32
	compute Func
}

var active = newResolver()

// newResolver returns a function that probes the CPU and binds an engine
// on its first call and returns that same binding ever after.
func newResolver() func() *binding {
	return sync.OnceValue(func() *binding {
		b := bind(capability.Detect(), os.Getenv(EnvImpl))
		logger().LogSelection(context.Background(), b.info)
		return b
	})
}

// ChecksumFunc returns the Compute function of the engine selected for
// this process. Every call returns an equivalent handle.
func ChecksumFunc() Func {
	return active().compute
}

// Selected reports which engine the process is bound to.
func Selected() Info {
	return active().info
}

func bind(caps capability.Set, override string) *binding {
	impl, overridden := selectImpl(caps, override)
	update := engineFor(impl)
	return &binding{
		info: Info{
			Impl:         impl,
			Overridden:   overridden,
			Capabilities: caps,
		},
		update: update,
		compute: func(seed uint32, p []byte) uint32 {
			return ^update(seed, p)
		},
	}
}

// selectImpl is a total function of the capability set and the override.
func selectImpl(caps capability.Set, override string) (Impl, bool) {
	if override != "" {
		if impl, ok := ParseImpl(override); ok && isAvailable(impl, caps) {
			return impl, true
		}
		// Invalid override - fall through to auto-detection
	}
	if isAvailable(Accelerated, caps) {
		return Accelerated, false
	}
	return Reference, false
}

func isAvailable(impl Impl, caps capability.Set) bool {
	switch impl {
	case Reference:
		return true
	case Accelerated:
		return hw.Compiled && caps.Accelerated()
	default:
		return false
	}
}

// engineFor returns the raw-register update function for impl.
func engineFor(impl Impl) func(crc uint32, p []byte) uint32 {
	if impl == Accelerated {
		return hw.Update
	}
	return table.Update
}
