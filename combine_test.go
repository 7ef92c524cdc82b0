package crc32c

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine_Associativity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	data := randomBytes(rng, 3000)
	whole := Compute(InitialSeed, data)

	for i := 0; i < 200; i++ {
		a := rng.Intn(len(data) + 1)
		b := a + rng.Intn(len(data)-a+1)
		A, B, C := data[:a], data[a:b], data[b:]

		ab := Combine(Checksum(A), Checksum(B), uint64(len(B)))
		require.Equal(t, Checksum(data[:b]), ab, "a=%d b=%d", a, b)

		abc := Combine(ab, Checksum(C), uint64(len(C)))
		require.Equal(t, whole, abc, "a=%d b=%d", a, b)

		// Right-leaning fold gives the same answer.
		bc := Combine(Checksum(B), Checksum(C), uint64(len(C)))
		require.Equal(t, whole, Combine(Checksum(A), bc, uint64(len(B)+len(C))), "a=%d b=%d", a, b)
	}
}

func TestCombine_Identity(t *testing.T) {
	empty := Checksum(nil)
	for _, x := range []uint32{0, 1, 0xE3069283, 0xFFFFFFFF} {
		assert.Equal(t, x, Combine(x, empty, 0))
		assert.Equal(t, x, ExtendByZeros(x, 0))
	}
	// The empty prefix is also an identity on the left.
	crc := Checksum([]byte("123456789"))
	assert.Equal(t, crc, Combine(empty, crc, 9))
}

func TestExtendByZeros(t *testing.T) {
	data := []byte("crc32c zero extension")
	base := Checksum(data)

	for _, n := range []int{0, 1, 7, 8, 63, 64, 65, 4096, 10_000_000} {
		padded := append(append([]byte{}, data...), make([]byte, n)...)
		require.Equal(t, Compute(InitialSeed, padded), ExtendByZeros(base, uint64(n)), "n=%d", n)
	}
}

func TestExtendByZeros_EmptyPrefix(t *testing.T) {
	for _, n := range []int{1, 32, 1000} {
		assert.Equal(t, Checksum(make([]byte, n)), ExtendByZeros(0, uint64(n)), "n=%d", n)
	}
}

func TestExtendByZeros_Composes(t *testing.T) {
	crc := Checksum([]byte("seed"))
	// Large counts exercise the high table entries; splitting the count
	// must not change the result.
	big := uint64(1) << 62
	assert.Equal(t,
		ExtendByZeros(ExtendByZeros(crc, big), big),
		ExtendByZeros(crc, big<<1),
	)
	assert.Equal(t,
		ExtendByZeros(ExtendByZeros(crc, 12345), 67890),
		ExtendByZeros(crc, 12345+67890),
	)
	// Maximum length must terminate.
	_ = ExtendByZeros(crc, ^uint64(0))
}

func TestCombine_MatchesZeroExtension(t *testing.T) {
	crc := Checksum([]byte("abc"))
	for _, n := range []uint64{1, 100, 1 << 40} {
		assert.Equal(t, ExtendByZeros(crc, n), Combine(crc, ExtendByZeros(0, n), n), "n=%d", n)
	}
}

func TestMultModP(t *testing.T) {
	one := uint32(1) << 31
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		a, b := rng.Uint32()|1, rng.Uint32()|1
		assert.Equal(t, a, multModP(one, a))
		assert.Equal(t, multModP(a, b), multModP(b, a))
	}
	assert.Equal(t, one, xPow8N(0))
	assert.Equal(t, x2n[3], xPow8N(1))
}

func BenchmarkCombine(b *testing.B) {
	crcA, crcB := Checksum([]byte("a")), Checksum([]byte("b"))
	for b.Loop() {
		_ = Combine(crcA, crcB, 1<<30)
	}
}
