package stress

import (
	"math/rand"
)

// RndBuf fills buf with bytes from the harness RNG. The RNG is seeded
// once at process start; cryptographic strength is not a requirement
// for stress payloads.
func RndBuf(buf []byte) {
	for i := range buf {
		buf[i] = byte(rand.Intn(256))
	}
}
