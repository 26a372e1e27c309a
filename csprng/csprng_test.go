package csprng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/primecraft/primefield/csprng"
	"github.com/primecraft/primefield/field"
)

func TestUniformSampler(t *testing.T) {
	m := field.NewModulusUint64(65537)

	t.Run("SampleN", func(t *testing.T) {
		sampler := csprng.NewUniformSampler()
		for i := 0; i < 1000; i++ {
			assert.Less(t, sampler.SampleN(100), uint64(100))
		}
	})

	t.Run("SampleElement", func(t *testing.T) {
		sampler := csprng.NewUniformSamplerWithSeed([]byte("sampler"))
		for i := 0; i < 1000; i++ {
			a := sampler.SampleElement(m)
			assert.True(t, m.Contains(a.Value()))
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		s0 := csprng.NewUniformSamplerWithSeed([]byte("sampler"))
		s1 := csprng.NewUniformSamplerWithSeed([]byte("sampler"))
		for i := 0; i < 100; i++ {
			assert.True(t, s0.SampleElement(m).Equal(s1.SampleElement(m)))
		}
	})
}

func TestStreamSampler(t *testing.T) {
	m := field.NewModulusUint64(65537)

	t.Run("SampleN", func(t *testing.T) {
		sampler := csprng.NewStreamSampler()
		seen := make(map[uint64]bool)
		for i := 0; i < 1000; i++ {
			res := sampler.SampleN(100)
			assert.Less(t, res, uint64(100))
			seen[res] = true
		}
		assert.Greater(t, len(seen), 1)
	})

	t.Run("FreshSamplerIsKeyed", func(t *testing.T) {
		sampler := csprng.NewStreamSampler()
		allZero := true
		for i := 0; i < 1024; i++ {
			if sampler.Sample() != 0 {
				allZero = false
				break
			}
		}
		assert.False(t, allZero)
	})

	t.Run("SampleElement", func(t *testing.T) {
		sampler := csprng.NewStreamSampler()
		for i := 0; i < 1000; i++ {
			a := sampler.SampleElement(m)
			assert.True(t, m.Contains(a.Value()))
		}
	})
}
