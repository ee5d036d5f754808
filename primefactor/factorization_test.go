package primefactor_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvpart/primefactor"
)

// TestZeroAndOne checks the two special values.
func TestZeroAndOne(t *testing.T) {
	z := primefactor.Zero()
	assert.True(t, z.IsZero())
	assert.False(t, z.IsOne())
	assert.Equal(t, uint64(0), z.Value())
	assert.Equal(t, "0", z.String())

	o := primefactor.One()
	assert.True(t, o.IsOne())
	assert.False(t, o.IsPrime())
	assert.Equal(t, uint64(1), o.Value())
	assert.Equal(t, "1", o.String())
	assert.Empty(t, slices.Collect(o.Primes()))
}

// TestWithPower verifies accumulation and immutability.
func TestWithPower(t *testing.T) {
	base := primefactor.One().WithPower(2, 3)
	f := base.WithPower(5, 1).WithPower(2, 1)

	assert.Equal(t, uint64(8), base.Value(), "receiver is unchanged")
	assert.Equal(t, uint64(80), f.Value())
	assert.Equal(t, []uint32{2, 5}, slices.Collect(f.Primes()))
	assert.Equal(t, "2^4 * 5^1 = 80", f.String())
	assert.Equal(t, "[[2 4] [5 1]]", fmt.Sprintf("%#v", f))
}

// TestIsPrime distinguishes primes from prime powers.
func TestIsPrime(t *testing.T) {
	assert.True(t, primefactor.FromPowers(primefactor.Power{Prime: 7, Exp: 1}).IsPrime())
	assert.False(t, primefactor.FromPowers(primefactor.Power{Prime: 2, Exp: 3}).IsPrime())
	assert.False(t, primefactor.Factorize(12).IsPrime())
	assert.True(t, primefactor.Factorize(13).IsPrime())
	assert.False(t, primefactor.Factorize(8).IsPrime(), "a single prime power is not prime")
	assert.False(t, primefactor.One().IsPrime())
}

// TestFactorize round-trips small integers.
func TestFactorize(t *testing.T) {
	for n := uint32(0); n <= 500; n++ {
		f := primefactor.Factorize(n)
		assert.Equal(t, uint64(n), f.Value(), "n=%d", n)
	}
	assert.Equal(t, []primefactor.Power{{Prime: 2, Exp: 2}, {Prime: 3, Exp: 1}, {Prime: 7, Exp: 1}},
		primefactor.Factorize(84).Powers())
	assert.Equal(t, "4294967291^1 = 4294967291", primefactor.Factorize(4294967291).String())
}
