package field

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// ErrArithmetic is the sentinel matched by every ArithmeticError,
// for use with [errors.Is].
var ErrArithmetic = errors.New("modulus does not fit working exponent width")

// ArithmeticError is returned when the modulus of an Inverter cannot be
// represented in its working exponent type.
type ArithmeticError struct {
	// Modulus is the modulus that failed to convert.
	Modulus *big.Int
	// Bits is the bit width of the working exponent type.
	Bits int
}

// Error implements the error interface.
func (e ArithmeticError) Error() string {
	return fmt.Sprintf("modulus of %v bits does not fit in %v-bit exponent", e.Modulus.BitLen(), e.Bits)
}

// Unwrap returns ErrArithmetic.
func (e ArithmeticError) Unwrap() error {
	return ErrArithmetic
}

// Inverter computes multiplicative inverses in Z/pZ using Fermat's
// little theorem: a^(p-2) = a^(-1) mod p for nonzero a.
//
// The exponent p-2 is held in the unsigned working type T.
// Invert returns an ArithmeticError when p does not fit in T;
// this is the only failure path.
//
// Inverter is a stateless value and may be shared freely, but its
// Modulus carries reduction scratch buffers, so concurrent callers
// should each bind an Inverter to their own [Modulus.ShallowCopy].
//
// The computation is not constant-time. The exponent bit scan leaks
// only the public value p-2, never the input element, but the routine
// must not be used with secret exponents.
type Inverter[T constraints.Unsigned] struct {
	m *Modulus
}

// NewInverter creates a new Inverter bound to m.
// No validation is performed here; a modulus that does not fit in T
// is reported by Invert.
func NewInverter[T constraints.Unsigned](m *Modulus) Inverter[T] {
	return Inverter[T]{m: m}
}

// Modulus returns the Modulus the Inverter is bound to.
func (inv Inverter[T]) Modulus() *Modulus {
	return inv.m
}

// Invert returns the unique r with a * r = 1 mod p.
//
// The input must be a nonzero element of the bound field.
// The zero element is a precondition violation: the exponentiation
// runs to completion and mechanically returns zero with a nil error,
// which is not a valid inverse of anything.
func (inv Inverter[T]) Invert(a Element) (Element, error) {
	e, err := inv.exponent()
	if err != nil {
		return Element{}, err
	}
	return a.Exp(uint64(e)), nil
}

// exponent returns p-2 as T.
func (inv Inverter[T]) exponent() (T, error) {
	tBits := bits.Len64(uint64(^T(0)))
	if inv.m.value.BitLen() > tBits {
		return 0, ArithmeticError{Modulus: inv.m.Value(), Bits: tBits}
	}

	p := inv.m.value.Uint64()
	if p < 2 {
		return 0, ArithmeticError{Modulus: inv.m.Value(), Bits: tBits}
	}
	return T(p - 2), nil
}
