package field

// InvertSlice returns the multiplicative inverses of all elements of as,
// using Montgomery's trick: a single Fermat inversion and 3(n-1)
// multiplications, instead of n inversions.
//
// Zero entries are skipped and map to zero in the output, matching the
// behavior of Invert on the zero element; all other entries are inverted.
func (inv Inverter[T]) InvertSlice(as []Element) ([]Element, error) {
	out := make([]Element, len(as))

	// prefix[i] is the product of the nonzero elements of as[:i].
	prefix := make([]Element, len(as))
	acc := inv.m.One()
	for i, a := range as {
		prefix[i] = acc
		if !a.IsZero() {
			acc = acc.Mul(a)
		}
	}

	accInv, err := inv.Invert(acc)
	if err != nil {
		return nil, err
	}

	for i := len(as) - 1; i >= 0; i-- {
		if as[i].IsZero() {
			out[i] = inv.m.Zero()
			continue
		}
		out[i] = accInv.Mul(prefix[i])
		accInv = accInv.Mul(as[i])
	}
	return out, nil
}
