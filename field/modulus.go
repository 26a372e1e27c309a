// Package field implements arithmetic over the prime field Z/pZ,
// including multiplicative inversion based on Fermat's little theorem.
package field

import (
	"math/big"
)

// Modulus is an odd prime modulus defining the field Z/pZ.
// It is immutable after construction, and carries precomputed
// constants for the Barrett reduction used in field multiplication.
//
// Modulus holds internal scratch buffers, so a single Modulus must
// not be used by multiple goroutines at the same time.
// Use [Modulus.ShallowCopy] to obtain a copy that can be used concurrently.
type Modulus struct {
	value *big.Int

	rBound   *big.Int
	qBitLen  uint
	barConst *big.Int

	quo  *big.Int
	quoQ *big.Int
}

// NewModulus creates a new Modulus for the odd prime q.
// Panics if q is smaller than 3, even, or fails a primality check.
func NewModulus(q *big.Int) *Modulus {
	if q.Cmp(big.NewInt(3)) < 0 {
		panic("modulus must be at least 3")
	}
	if q.Bit(0) == 0 {
		panic("modulus must be odd")
	}
	if !q.ProbablyPrime(20) {
		panic("modulus must be prime")
	}

	value := big.NewInt(0).Set(q)

	qBitLen := uint(value.BitLen())
	exp := big.NewInt(0).Lsh(big.NewInt(1), (qBitLen<<1)+1)
	barConst := big.NewInt(0).Div(exp, value)

	rBound := big.NewInt(0).Mul(value, value)
	rBound.Lsh(rBound, 1)

	return &Modulus{
		value: value,

		rBound:   rBound,
		qBitLen:  qBitLen,
		barConst: barConst,

		quo:  big.NewInt(0),
		quoQ: big.NewInt(0),
	}
}

// NewModulusUint64 creates a new Modulus for the odd prime q.
// Panics under the same conditions as [NewModulus].
func NewModulusUint64(q uint64) *Modulus {
	return NewModulus(big.NewInt(0).SetUint64(q))
}

// ShallowCopy creates a shallow copy of Modulus that is thread-safe.
func (m *Modulus) ShallowCopy() *Modulus {
	return &Modulus{
		value: m.value,

		rBound:   m.rBound,
		qBitLen:  m.qBitLen,
		barConst: m.barConst,

		quo:  big.NewInt(0),
		quoQ: big.NewInt(0),
	}
}

// Value returns a copy of the integer value of the modulus.
func (m *Modulus) Value() *big.Int {
	return big.NewInt(0).Set(m.value)
}

// BitLen returns the bit length of the modulus.
func (m *Modulus) BitLen() int {
	return m.value.BitLen()
}

// Uint64 returns the modulus as a uint64.
// The second return value is false if the modulus does not fit.
func (m *Modulus) Uint64() (uint64, bool) {
	if !m.value.IsUint64() {
		return 0, false
	}
	return m.value.Uint64(), true
}

// Cmp compares the integer values of m and other, returning
// -1, 0 or 1 like [big.Int.Cmp].
func (m *Modulus) Cmp(other *Modulus) int {
	return m.value.Cmp(other.value)
}

// Equal returns whether m and other define the same field.
func (m *Modulus) Equal(other *Modulus) bool {
	return m.Cmp(other) == 0
}

// Contains returns whether x is a canonical residue in [0, p).
func (m *Modulus) Contains(x *big.Int) bool {
	return x.Sign() >= 0 && x.Cmp(m.value) < 0
}

// String returns the decimal representation of the modulus.
func (m *Modulus) String() string {
	return m.value.String()
}

// reduce performs the Barrett reduction on x in-place.
// It assumes that x is between -2p^2 and 2p^2.
func (m *Modulus) reduce(x *big.Int) {
	if x.Sign() < 0 {
		x.Add(x, m.rBound)
	}

	if x.Sign() < 0 || x.Cmp(m.rBound) >= 0 {
		panic("input must be in the range [0, 2p^2)")
	}

	m.quo.Mul(x, m.barConst)
	m.quo.Rsh(m.quo, (m.qBitLen<<1)+1)
	m.quoQ.Mul(m.quo, m.value)
	x.Sub(x, m.quoQ)
	if x.Cmp(m.value) >= 0 {
		x.Sub(x, m.value)
	}
}
