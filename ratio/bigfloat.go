// SPDX-License-Identifier: MIT

package ratio

import (
	"math"
	"math/big"
)

const (
	// DefaultDigits is the decimal precision used when a caller passes digits <= 0.
	DefaultDigits = 50

	// MaxDigits caps the decimal precision; larger requests are clamped.
	MaxDigits = 10000

	// guardBits absorb the rounding of the exp squaring chain (at most
	// ~20 squarings for |x| ≤ OverflowThreshold) and the final divisions.
	guardBits = 64

	// maxSeriesTerms bounds every series loop; convergence happens long before.
	maxSeriesTerms = 4096
)

// BigFloatEngine recomputes κ·sinh(r/κ)/r with math/big at Digits decimal
// digits and rounds the result to float64.
//
// Inputs that the float64 ladder resolves without evaluating sinh
// (degenerate, overflow, NaN/±Inf) are delegated to Base, so both engines
// agree on every fallback.
//
// big.Float carries precision per value, so no shared precision context is
// touched and concurrent use is safe.
type BigFloatEngine struct {
	Digits int
	Base   Float64Engine
}

// NewBigFloatEngine returns an engine working at digits decimal digits.
// digits <= 0 selects DefaultDigits; digits > MaxDigits is clamped to
// MaxDigits. opts configure the float64 base.
func NewBigFloatEngine(digits int, opts ...Option) BigFloatEngine {
	return BigFloatEngine{Digits: clampDigits(digits), Base: NewFloat64Engine(opts...)}
}

// Epsilon returns the degenerate band of the float64 base.
func (e BigFloatEngine) Epsilon() float64 { return e.Base.Eps }

// PiAOverPi implements Engine.
func (e BigFloatEngine) PiAOverPi(r, kappa float64) float64 {
	// big.Float panics on 0/0 and ∞−∞; the base ladder already maps these to 1.
	if !isFinite(r) || !isFinite(kappa) || r == 0 || kappa == 0 {
		return e.Base.PiAOverPi(r, kappa)
	}
	switch Classify(r, kappa, e.Base.Eps) {
	case RegimeTaylor, RegimeDirect:
	default:
		return e.Base.PiAOverPi(r, kappa)
	}

	q, ok := bigRatio(r, kappa, digitsToBits(e.Digits))
	if !ok {
		return e.Base.PiAOverPi(r, kappa)
	}

	return q
}

// PiAOverPiHighPrecision evaluates π_a/π at digits decimal digits.
// digits <= 0 selects DefaultDigits; digits above MaxDigits are clamped.
func PiAOverPiHighPrecision(r, kappa float64, digits int) float64 {
	return NewBigFloatEngine(digits).PiAOverPi(r, kappa)
}

func clampDigits(digits int) int {
	switch {
	case digits <= 0:
		return DefaultDigits
	case digits > MaxDigits:
		return MaxDigits
	default:
		return digits
	}
}

// digitsToBits converts a decimal precision to a big.Float mantissa size.
// Digits set directly on the struct are clamped the same way.
func digitsToBits(digits int) uint {
	return uint(math.Ceil(float64(clampDigits(digits))*math.Log2(10))) + guardBits
}

// bigRatio returns (κ·sinh(r/κ)/r, true), or false when the rounded result
// is not a finite positive float64. r and kappa must be finite and non-zero.
func bigRatio(r, kappa float64, prec uint) (float64, bool) {
	br := newFloat(prec).SetFloat64(r)
	bk := newFloat(prec).SetFloat64(kappa)

	x := newFloat(prec).Quo(br, bk)
	s := bigSinh(x, prec)

	q := newFloat(prec).Mul(bk, s)
	q.Quo(q, br)

	f, _ := q.Float64()
	if !(f > 0) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// bigSinh returns sinh(x). For |x| < 1 the odd power series is summed
// directly (no cancellation); otherwise (eˣ − e⁻ˣ)/2.
func bigSinh(x *big.Float, prec uint) *big.Float {
	one := newFloat(prec).SetInt64(1)
	ax := newFloat(prec).Abs(x)
	if ax.Cmp(one) < 0 {
		return sinhSeries(x, prec)
	}

	e := bigExp(x, prec)
	inv := newFloat(prec).Quo(one, e)
	s := newFloat(prec).Sub(e, inv)

	return s.Quo(s, newFloat(prec).SetInt64(2))
}

// sinhSeries sums x + x³/3! + x⁵/5! + … until terms drop below the precision.
func sinhSeries(x *big.Float, prec uint) *big.Float {
	sum := newFloat(prec).Set(x)
	if x.Sign() == 0 {
		return sum
	}
	term := newFloat(prec).Set(x)
	x2 := newFloat(prec).Mul(x, x)
	d := newFloat(prec)

	var k int64
	for k = 1; k <= maxSeriesTerms; k++ {
		term.Mul(term, x2)
		term.Quo(term, d.SetInt64((2*k)*(2*k+1)))
		if negligible(term, sum, prec) {
			break
		}
		sum.Add(sum, term)
	}

	return sum
}

// bigExp returns eˣ by scaling x into |y| < 2⁻⁸, summing the Taylor series
// of eʸ and squaring back.
func bigExp(x *big.Float, prec uint) *big.Float {
	n := x.MantExp(nil) + 8
	if n < 0 {
		n = 0
	}
	y := newFloat(prec).SetMantExp(x, -n)

	sum := newFloat(prec).SetInt64(1)
	term := newFloat(prec).SetInt64(1)
	d := newFloat(prec)

	var k int64
	for k = 1; k <= maxSeriesTerms; k++ {
		term.Mul(term, y)
		term.Quo(term, d.SetInt64(k))
		if negligible(term, sum, prec) {
			break
		}
		sum.Add(sum, term)
	}

	for i := 0; i < n; i++ {
		sum.Mul(sum, sum)
	}

	return sum
}

// negligible reports whether adding term to sum can no longer change sum.
func negligible(term, sum *big.Float, prec uint) bool {
	if term.Sign() == 0 {
		return true
	}

	return term.MantExp(nil) < sum.MantExp(nil)-int(prec)
}

func newFloat(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
