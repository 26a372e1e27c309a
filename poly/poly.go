// Package poly implements polynomials with coefficients in a prime field.
package poly

import (
	"github.com/primecraft/primefield/field"
)

// Poly is a polynomial over Z/pZ.
// Coeffs[i] is the coefficient of degree i.
type Poly struct {
	Coeffs []field.Element
}

// NewPoly creates a zero Poly with N coefficients over m.
func NewPoly(m *field.Modulus, N int) Poly {
	coeffs := make([]field.Element, N)
	for i := 0; i < N; i++ {
		coeffs[i] = m.Zero()
	}
	return Poly{Coeffs: coeffs}
}

// Degree returns the number of coefficients of the Poly.
func (p Poly) Degree() int {
	return len(p.Coeffs)
}

// Clear clears the Poly.
func (p *Poly) Clear() {
	for i := 0; i < len(p.Coeffs); i++ {
		p.Coeffs[i] = p.Coeffs[i].Modulus().Zero()
	}
}

// Equal returns whether p and q have the same coefficients.
func (p Poly) Equal(q Poly) bool {
	if len(p.Coeffs) != len(q.Coeffs) {
		return false
	}
	for i := 0; i < len(p.Coeffs); i++ {
		if !p.Coeffs[i].Equal(q.Coeffs[i]) {
			return false
		}
	}
	return true
}
