package crc32c_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/crc32c"
)

func ExampleChecksum() {
	fmt.Printf("%08x\n", crc32c.Checksum([]byte("123456789")))
	// Output: e3069283
}

func ExampleCompute() {
	crc := crc32c.Compute(crc32c.InitialSeed, []byte("12345"))
	// Continue from a finalised checksum by inverting it back into a seed.
	crc = crc32c.Compute(^crc, []byte("6789"))
	fmt.Printf("%08x\n", crc)
	// Output: e3069283
}

func ExampleCombine() {
	a, b := []byte("1234"), []byte("56789")
	crc := crc32c.Combine(crc32c.Checksum(a), crc32c.Checksum(b), uint64(len(b)))
	fmt.Printf("%08x\n", crc)
	// Output: e3069283
}

func ExampleExtendByZeros() {
	crc := crc32c.ExtendByZeros(crc32c.Checksum(nil), 32)
	fmt.Printf("%08x\n", crc)
	// Output: 8a9136aa
}

func ExampleChecksumParallel() {
	data := make([]byte, 32)
	crc, err := crc32c.ChecksumParallel(context.Background(), data, crc32c.WithChunkSize(5))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%08x\n", crc)
	// Output: 8a9136aa
}
