package crc32c

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/hupe1980/crc32c/internal/capability"
	"github.com/hupe1980/crc32c/internal/hw"
	"github.com/hupe1980/crc32c/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain prints the engine binding so CI logs show which path ran.
func TestMain(m *testing.M) {
	info := Selected()
	fmt.Printf("=== CRC32C Engine Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("%s=%q\n", EnvImpl, os.Getenv(EnvImpl))
	fmt.Printf("Selected: %s\n", info.Impl)
	fmt.Printf("Override: %v\n", info.Overridden)
	fmt.Printf("CPU: %q\n", info.Capabilities.CPU)
	fmt.Printf("Features: %v\n", info.Capabilities.Features())
	fmt.Printf("=================================\n\n")

	os.Exit(m.Run())
}

var castagnoliTable = crc32.MakeTable(crc32.Castagnoli)

// engines returns every raw-register engine that can run on this host,
// plus the software emulation of the accelerated loop.
func engines() map[string]func(uint32, []byte) uint32 {
	m := map[string]func(uint32, []byte) uint32{
		"reference": engineFor(Reference),
		"bytewise":  table.UpdateBytewise,
		"emulated":  hw.Emulate,
	}
	if isAvailable(Accelerated, capability.Detect()) {
		m["accelerated"] = engineFor(Accelerated)
	}
	return m
}

func randomBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	rng.Read(b)
	return b
}

func TestKnownVectors(t *testing.T) {
	ascending := make([]byte, 32)
	descending := make([]byte, 32)
	for i := range ascending {
		ascending[i] = byte(i)
		descending[i] = byte(31 - i)
	}

	tests := []struct {
		name     string
		data     []byte
		expected uint32
	}{
		{"empty", []byte{}, 0x00000000},
		{"nil", nil, 0x00000000},
		{"check string", []byte("123456789"), 0xE3069283},
		{"iSCSI 32 zeros", make([]byte, 32), 0x8A9136AA},
		{"iSCSI 32 ones", bytes.Repeat([]byte{0xff}, 32), 0x62A8AB43},
		{"iSCSI ascending", ascending, 0x46DD794E},
		{"iSCSI descending", descending, 0x113FDB5C},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Compute(InitialSeed, tc.data))
			assert.Equal(t, tc.expected, Checksum(tc.data))
			assert.Equal(t, tc.expected, ChecksumFunc()(InitialSeed, tc.data))
			for name, update := range engines() {
				assert.Equal(t, tc.expected, ^update(InitialSeed, tc.data), name)
			}
		})
	}
}

func TestEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	buf := randomBytes(rng, 1<<16+7)
	all := engines()
	ref := all["reference"]

	lengths := []int{0, 1, 2, 3, 4, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64, 65, 255, 256, 257, 4095, 4096, 4097, len(buf)}
	seeds := []uint32{0, 1, InitialSeed, 0xDEADBEEF, rng.Uint32()}

	for name, update := range all {
		t.Run(name, func(t *testing.T) {
			for _, n := range lengths {
				for _, seed := range seeds {
					require.Equal(t, ref(seed, buf[:n]), update(seed, buf[:n]), "n=%d seed=%#x", n, seed)
				}
				// Misaligned start.
				if n > 0 {
					require.Equal(t, ref(InitialSeed, buf[1:n]), update(InitialSeed, buf[1:n]), "n=%d offset=1", n)
				}
			}
		})
	}
}

func TestMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 100; i++ {
		data := randomBytes(rng, rng.Intn(10000))
		require.Equal(t, crc32.Checksum(data, castagnoliTable), Checksum(data))
	}
}

func TestUpdate_Incremental(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	data := randomBytes(rng, 1000)
	whole := Checksum(data)

	for _, split := range []int{0, 1, 7, 8, 500, 999, 1000} {
		crc := Update(0, data[:split])
		crc = Update(crc, data[split:])
		assert.Equal(t, whole, crc, "split=%d", split)

		// Same chaining through Compute's register seed.
		c := Compute(InitialSeed, data[:split])
		c = Compute(^c, data[split:])
		assert.Equal(t, whole, c, "split=%d", split)
	}
}

func TestDeterminism(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	data := randomBytes(rng, 12345)
	seed := rng.Uint32()
	first := Compute(seed, data)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Compute(seed, data))
	}
}

func TestVerify(t *testing.T) {
	data := []byte("123456789")
	assert.True(t, Verify(data, 0xE3069283))
	assert.False(t, Verify(data, 0xE3069284))
}

func TestMask(t *testing.T) {
	for _, crc := range []uint32{0, 1, 0xE3069283, 0xFFFFFFFF, 0x12345678} {
		masked := Mask(crc)
		assert.NotEqual(t, crc, masked)
		assert.Equal(t, crc, Unmask(masked))
	}
	assert.Equal(t, uint32(maskDelta), Mask(0))
}

func TestHash(t *testing.T) {
	h := New()
	assert.Equal(t, Size, h.Size())
	assert.Equal(t, 1, h.BlockSize())

	_, _ = h.Write([]byte("12345"))
	_, _ = h.Write([]byte("6789"))
	assert.Equal(t, uint32(0xE3069283), h.Sum32())
	assert.Equal(t, []byte{0xE3, 0x06, 0x92, 0x83}, h.Sum(nil))
	assert.Equal(t, []byte{0x01, 0xE3, 0x06, 0x92, 0x83}, h.Sum([]byte{0x01}))

	h.Reset()
	assert.Equal(t, uint32(0), h.Sum32())
}

func TestHash_WithSeed(t *testing.T) {
	prev := Checksum([]byte("1234"))
	h := NewWithSeed(prev)
	_, _ = h.Write([]byte("56789"))
	assert.Equal(t, uint32(0xE3069283), h.Sum32())

	h.Reset()
	assert.Equal(t, prev, h.Sum32())
}

func TestWriterReader(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	data := randomBytes(rng, 70000)
	expected := Checksum(data)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	for off := 0; off < len(data); off += 4096 {
		_, err := w.Write(data[off:min(off+4096, len(data))])
		require.NoError(t, err)
	}
	assert.Equal(t, expected, w.Sum32())
	assert.Equal(t, int64(len(data)), w.Len())
	assert.Equal(t, data, buf.Bytes())

	w.Reset()
	assert.Equal(t, uint32(0), w.Sum32())
	assert.Equal(t, int64(0), w.Len())

	r := NewReader(bytes.NewReader(data))
	_, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, expected, r.Sum32())
	assert.Equal(t, int64(len(data)), r.Len())
	require.NoError(t, r.Verify(expected))

	err = r.Verify(expected ^ 1)
	var mismatch *ErrChecksumMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, expected^1, mismatch.Expected)
	assert.Equal(t, expected, mismatch.Actual)
	assert.Contains(t, err.Error(), "crc32c mismatch")
}

func TestDispatch_ConcurrentFirstUse(t *testing.T) {
	const goroutines = 32

	// Capture selection log lines from a resolver nobody has called yet.
	var logs bytes.Buffer
	SetLogger(NewLogger(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	resolve := newResolver()
	data := []byte("123456789")
	bindings := make([]*binding, goroutines)
	results := make([]uint32, goroutines)

	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			b := resolve()
			bindings[i] = b
			results[i] = b.compute(InitialSeed, data)
		}()
	}
	close(start)
	wg.Wait()

	for i := 0; i < goroutines; i++ {
		assert.Same(t, bindings[0], bindings[i])
		assert.Equal(t, uint32(0xE3069283), results[i])
	}
	assert.Equal(t, 1, strings.Count(logs.String(), "crc32c implementation selected"))

	// Every resolver binds the same engine for the same host.
	assert.Equal(t, Selected(), bindings[0].info)
}

type selectCase struct {
	name           string
	caps           capability.Set
	override       string
	wantImpl       Impl
	wantOverridden bool
}

func TestSelectImpl(t *testing.T) {
	accelerated := capability.Set{Arch: runtime.GOARCH, SSE42: true, CRC32: true}
	none := capability.Set{Arch: runtime.GOARCH}

	tests := []selectCase{
		{"no features", none, "", Reference, false},
		{"override reference", accelerated, "reference", Reference, true},
		{"override unavailable accelerated", none, "accelerated", Reference, false},
		{"garbage override", none, "avx9000", Reference, false},
		{"override with whitespace", none, "  TABLE ", Reference, true},
	}
	if hw.Compiled && accelerated.Accelerated() {
		tests = append(tests,
			selectCase{"auto accelerated", accelerated, "", Accelerated, false},
			selectCase{"override accelerated", accelerated, "hw", Accelerated, true},
		)
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			impl, overridden := selectImpl(tc.caps, tc.override)
			assert.Equal(t, tc.wantImpl, impl)
			assert.Equal(t, tc.wantOverridden, overridden)
		})
	}
}

func TestBind(t *testing.T) {
	b := bind(capability.Set{Arch: "riscv64"}, "")
	assert.Equal(t, Reference, b.info.Impl)
	assert.Equal(t, uint32(0xE3069283), b.compute(InitialSeed, []byte("123456789")))
}

func TestImpl_String(t *testing.T) {
	assert.Equal(t, "reference", Reference.String())
	assert.Equal(t, "accelerated", Accelerated.String())
	assert.Equal(t, "unknown", Impl(99).String())

	impl, ok := ParseImpl("Accelerated")
	assert.True(t, ok)
	assert.Equal(t, Accelerated, impl)

	_, ok = ParseImpl("sse")
	assert.False(t, ok)
}

func BenchmarkChecksum(b *testing.B) {
	for _, size := range []int{64, 4096, 1 << 20} {
		buf := make([]byte, size)
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for b.Loop() {
				_ = Checksum(buf)
			}
		})
	}
}
