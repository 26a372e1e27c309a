package field

import (
	"math/big"
)

// Element is a field element, a canonical residue in [0, p)
// bound to its Modulus.
//
// Elements are immutable values; operations return new elements
// instead of mutating their operands. Binary operations assume both
// operands belong to the same field, and mixing fields is a
// precondition violation with undefined results.
type Element struct {
	m     *Modulus
	value *big.Int
}

// NewElement creates a new Element from a value in [0, p).
// The value is copied. Panics if the value is out of range.
func (m *Modulus) NewElement(x *big.Int) Element {
	if !m.Contains(x) {
		panic("cannot create field element from value outside of [0, p)")
	}
	return Element{m: m, value: big.NewInt(0).Set(x)}
}

// Reduce creates a new Element from an arbitrary integer,
// reducing it modulo p. The value is copied.
func (m *Modulus) Reduce(x *big.Int) Element {
	v := big.NewInt(0).Mod(x, m.value)
	return Element{m: m, value: v}
}

// FromUint64 creates a new Element from v, reducing it modulo p.
func (m *Modulus) FromUint64(v uint64) Element {
	return m.Reduce(big.NewInt(0).SetUint64(v))
}

// Zero returns the additive identity of the field.
func (m *Modulus) Zero() Element {
	return Element{m: m, value: big.NewInt(0)}
}

// One returns the multiplicative identity of the field.
func (m *Modulus) One() Element {
	return Element{m: m, value: big.NewInt(1)}
}

// Modulus returns the Modulus the element is bound to.
func (a Element) Modulus() *Modulus {
	return a.m
}

// Value returns a copy of the canonical residue of the element.
func (a Element) Value() *big.Int {
	return big.NewInt(0).Set(a.value)
}

// Uint64 returns the residue as a uint64.
// The second return value is false if the residue does not fit.
func (a Element) Uint64() (uint64, bool) {
	if !a.value.IsUint64() {
		return 0, false
	}
	return a.value.Uint64(), true
}

// Add returns a + b.
func (a Element) Add(b Element) Element {
	out := big.NewInt(0).Add(a.value, b.value)
	if out.Cmp(a.m.value) >= 0 {
		out.Sub(out, a.m.value)
	}
	return Element{m: a.m, value: out}
}

// Sub returns a - b.
func (a Element) Sub(b Element) Element {
	out := big.NewInt(0).Sub(a.value, b.value)
	if out.Sign() < 0 {
		out.Add(out, a.m.value)
	}
	return Element{m: a.m, value: out}
}

// Neg returns -a.
func (a Element) Neg() Element {
	if a.value.Sign() == 0 {
		return a.m.Zero()
	}
	return Element{m: a.m, value: big.NewInt(0).Sub(a.m.value, a.value)}
}

// Mul returns a * b, reduced with the Barrett reduction.
func (a Element) Mul(b Element) Element {
	out := big.NewInt(0).Mul(a.value, b.value)
	a.m.reduce(out)
	return Element{m: a.m, value: out}
}

// Square returns a * a.
func (a Element) Square() Element {
	return a.Mul(a)
}

// Exp returns a^e, using binary exponentiation.
func (a Element) Exp(e uint64) Element {
	r := a.m.One()
	base := a
	for e > 0 {
		if e&1 == 1 {
			r = r.Mul(base)
		}
		base = base.Square()
		e >>= 1
	}
	return r
}

// Equal returns whether a and b are the same element of the same field.
func (a Element) Equal(b Element) bool {
	return a.m.Equal(b.m) && a.value.Cmp(b.value) == 0
}

// IsZero returns whether a is the additive identity.
func (a Element) IsZero() bool {
	return a.value.Sign() == 0
}

// IsOne returns whether a is the multiplicative identity.
func (a Element) IsOne() bool {
	return a.value.Cmp(big.NewInt(1)) == 0
}

// String returns the decimal representation of the residue.
func (a Element) String() string {
	return a.value.String()
}
