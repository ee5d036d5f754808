// Package primefactor represents positive integers by their prime
// factorization.
//
// A Factorization is an immutable value: every method that "changes" it
// returns a new one. Zero is represented by the empty factorization and one
// by 2⁰, matching how callers accumulate products factor by factor:
//
//	f := primefactor.One().WithPower(2, 3).WithPower(5, 1)
//	fmt.Println(f)         // 2^3 * 5^1 = 40
//	fmt.Println(f.Value()) // 40
package primefactor

import (
	"fmt"
	"iter"
	"strings"
)

// Power is one prime raised to an exponent.
type Power struct {
	Prime, Exp uint32
}

// Factorization is a product of prime powers, in insertion order.
type Factorization struct {
	powers []Power
}

// Zero returns the factorization of 0.
func Zero() Factorization {
	return Factorization{}
}

// One returns the factorization of 1, written as 2⁰.
func One() Factorization {
	return Factorization{powers: []Power{{Prime: 2, Exp: 0}}}
}

// FromPowers builds a factorization from prime powers as given. The caller
// is responsible for passing primes; repeated primes are not merged.
func FromPowers(powers ...Power) Factorization {
	return Factorization{powers: append([]Power(nil), powers...)}
}

// Factorize returns the factorization of n by trial division. Factorize(0)
// is Zero and Factorize(1) is One.
func Factorize(n uint32) Factorization {
	switch n {
	case 0:
		return Zero()
	case 1:
		return One()
	}
	f := One()
	for p := uint32(2); uint64(p)*uint64(p) <= uint64(n); p++ {
		var exp uint32
		for n%p == 0 {
			n /= p
			exp++
		}
		if exp > 0 {
			f = f.WithPower(p, exp)
		}
	}
	if n > 1 {
		f = f.WithPower(n, 1)
	}

	return f
}

// IsZero reports whether f represents 0.
func (f Factorization) IsZero() bool {
	return len(f.powers) == 0
}

// IsOne reports whether f represents 1.
func (f Factorization) IsOne() bool {
	return len(f.powers) == 1 && f.powers[0] == Power{Prime: 2, Exp: 0}
}

// IsPrime reports whether f is a single prime to the first power.
// A higher prime power such as 2^3 is not prime, even though it has a single
// distinct prime factor.
func (f Factorization) IsPrime() bool {
	return len(f.powers) == 1 && f.powers[0].Exp == 1
}

// Primes returns the distinct primes of f in insertion order.
func (f Factorization) Primes() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		if f.IsOne() {
			return
		}
		for _, pw := range f.powers {
			if !yield(pw.Prime) {
				return
			}
		}
	}
}

// Powers returns a copy of the prime powers.
func (f Factorization) Powers() []Power {
	return append([]Power(nil), f.powers...)
}

// Value multiplies the factorization out. The caller must keep the product
// within uint64.
func (f Factorization) Value() uint64 {
	if f.IsZero() {
		return 0
	}
	v := uint64(1)
	for _, pw := range f.powers {
		for i := uint32(0); i < pw.Exp; i++ {
			v *= uint64(pw.Prime)
		}
	}

	return v
}

// WithPower returns f multiplied by p^exp. An existing power of p has its
// exponent raised; multiplying One replaces the 2⁰ placeholder.
func (f Factorization) WithPower(p, exp uint32) Factorization {
	if f.IsOne() {
		return Factorization{powers: []Power{{Prime: p, Exp: exp}}}
	}
	powers := append([]Power(nil), f.powers...)
	for i := range powers {
		if powers[i].Prime == p {
			powers[i].Exp += exp

			return Factorization{powers: powers}
		}
	}

	return Factorization{powers: append(powers, Power{Prime: p, Exp: exp})}
}

// String renders f as "p^e * q^f = value", or "0" / "1".
func (f Factorization) String() string {
	switch {
	case f.IsZero():
		return "0"
	case f.IsOne():
		return "1"
	}
	var sb strings.Builder
	for i, pw := range f.powers {
		if i > 0 {
			sb.WriteString(" * ")
		}
		fmt.Fprintf(&sb, "%d^%d", pw.Prime, pw.Exp)
	}
	fmt.Fprintf(&sb, " = %d", f.Value())

	return sb.String()
}

// GoString renders the raw prime powers, e.g. "[[2 3] [5 1]]".
func (f Factorization) GoString() string {
	pairs := make([][2]uint32, len(f.powers))
	for i, pw := range f.powers {
		pairs[i] = [2]uint32{pw.Prime, pw.Exp}
	}

	return fmt.Sprint(pairs)
}
