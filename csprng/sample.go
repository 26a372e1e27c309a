package csprng

import (
	"io"
	"math/big"

	"github.com/primecraft/primefield/field"
)

// sampleModAssign fills xOut with a uniform integer in [0, p),
// rejection sampling from r. The top byte is masked so that on
// average at most two draws are needed.
func sampleModAssign(r io.Reader, m *field.Modulus, xOut *big.Int) {
	buf := make([]byte, (m.BitLen()+7)/8)
	mask := byte(0xff >> (uint(8*len(buf)) - uint(m.BitLen())))

	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			panic(err)
		}
		buf[0] &= mask

		xOut.SetBytes(buf)
		if m.Contains(xOut) {
			return
		}
	}
}
