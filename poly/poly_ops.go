package poly

import (
	"github.com/primecraft/primefield/field"
)

// Add returns p + q. Both polynomials must have the same length.
func (p Poly) Add(q Poly) Poly {
	pOut := make([]field.Element, len(p.Coeffs))
	for i := 0; i < len(p.Coeffs); i++ {
		pOut[i] = p.Coeffs[i].Add(q.Coeffs[i])
	}
	return Poly{Coeffs: pOut}
}

// Sub returns p - q. Both polynomials must have the same length.
func (p Poly) Sub(q Poly) Poly {
	pOut := make([]field.Element, len(p.Coeffs))
	for i := 0; i < len(p.Coeffs); i++ {
		pOut[i] = p.Coeffs[i].Sub(q.Coeffs[i])
	}
	return Poly{Coeffs: pOut}
}

// Neg returns -p.
func (p Poly) Neg() Poly {
	pOut := make([]field.Element, len(p.Coeffs))
	for i := 0; i < len(p.Coeffs); i++ {
		pOut[i] = p.Coeffs[i].Neg()
	}
	return Poly{Coeffs: pOut}
}

// ScalarMul returns p * c.
func (p Poly) ScalarMul(c field.Element) Poly {
	pOut := make([]field.Element, len(p.Coeffs))
	for i := 0; i < len(p.Coeffs); i++ {
		pOut[i] = p.Coeffs[i].Mul(c)
	}
	return Poly{Coeffs: pOut}
}

// Mul returns the product of p and q, using schoolbook multiplication.
// The result has len(p.Coeffs) + len(q.Coeffs) - 1 coefficients.
func (p Poly) Mul(q Poly) Poly {
	m := p.Coeffs[0].Modulus()

	pOut := make([]field.Element, len(p.Coeffs)+len(q.Coeffs)-1)
	for i := 0; i < len(pOut); i++ {
		pOut[i] = m.Zero()
	}

	for i := 0; i < len(p.Coeffs); i++ {
		for j := 0; j < len(q.Coeffs); j++ {
			pOut[i+j] = pOut[i+j].Add(p.Coeffs[i].Mul(q.Coeffs[j]))
		}
	}
	return Poly{Coeffs: pOut}
}

// Evaluate returns p(x), using Horner's method.
func (p Poly) Evaluate(x field.Element) field.Element {
	out := x.Modulus().Zero()
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		out = out.Mul(x).Add(p.Coeffs[i])
	}
	return out
}
