package poly

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/primecraft/primefield/field"
)

// ErrRepeatedPoint signifies that interpolation points were not
// pairwise distinct.
var ErrRepeatedPoint = errors.New("interpolation points must be pairwise distinct")

// InterpolateAt evaluates, at x, the unique polynomial of degree less
// than len(xs) passing through the points (xs[i], ys[i]), using the
// Lagrange form. The denominators are inverted in a single batch.
//
// Returns ErrRepeatedPoint if the xs are not pairwise distinct, and
// propagates any error from the Inverter.
func InterpolateAt[T constraints.Unsigned](inv field.Inverter[T], xs, ys []field.Element, x field.Element) (field.Element, error) {
	m := inv.Modulus()

	den := make([]field.Element, len(xs))
	for i := 0; i < len(xs); i++ {
		d := m.One()
		for j := 0; j < len(xs); j++ {
			if j == i {
				continue
			}
			d = d.Mul(xs[i].Sub(xs[j]))
		}
		if d.IsZero() {
			return field.Element{}, ErrRepeatedPoint
		}
		den[i] = d
	}

	denInv, err := inv.InvertSlice(den)
	if err != nil {
		return field.Element{}, err
	}

	out := m.Zero()
	for i := 0; i < len(xs); i++ {
		term := ys[i].Mul(denInv[i])
		for j := 0; j < len(xs); j++ {
			if j == i {
				continue
			}
			term = term.Mul(x.Sub(xs[j]))
		}
		out = out.Add(term)
	}
	return out, nil
}
