package agreement

import (
	"math/big"
	"strings"
)

// DefaultDigits is the significant-digit count used when rendering a
// coefficient without an explicit precision.
const DefaultDigits = 28

// Coefficient is an exact agreement coefficient. It wraps a rational
// value so no precision is lost between computation and rendering; the
// zero value represents zero.
type Coefficient struct {
	rat *big.Rat
}

// newCoefficient wraps an exact rational value in a Coefficient.
func newCoefficient(r *big.Rat) Coefficient {
	return Coefficient{rat: new(big.Rat).Set(r)}
}

// Rat returns the exact value. The caller receives an independent copy.
func (c Coefficient) Rat() *big.Rat {
	if c.rat == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(c.rat)
}

// Float64 returns the nearest floating-point value. Use it for display
// and thresholding only; exact comparisons go through Cmp or Decimal.
func (c Coefficient) Float64() float64 {
	f, _ := c.Rat().Float64()
	return f
}

// Cmp compares two coefficients exactly and returns -1, 0, or +1.
func (c Coefficient) Cmp(other Coefficient) int {
	return c.Rat().Cmp(other.Rat())
}

// String renders the coefficient with DefaultDigits significant digits.
func (c Coefficient) String() string { return c.Decimal(DefaultDigits) }

// Decimal renders the exact value in positional decimal notation with at
// most the given number of significant digits. Terminating expansions
// print exactly with no padding; non-terminating expansions round
// half-even at the final digit. Digit counts below one are clamped to one.
func (c Coefficient) Decimal(digits int) string {
	if digits < 1 {
		digits = 1
	}
	r := c.rat
	if r == nil || r.Sign() == 0 {
		return "0"
	}

	num := new(big.Int).Abs(r.Num())
	den := r.Denom()
	exp := decimalExponent(num, den)

	// Scale |value| by 10^(digits-1-exp) so that truncating to an
	// integer keeps exactly `digits` significant digits.
	shift := digits - 1 - exp
	scaledNum := new(big.Int).Set(num)
	scaledDen := new(big.Int).Set(den)
	if shift >= 0 {
		scaledNum.Mul(scaledNum, pow10(shift))
	} else {
		scaledDen.Mul(scaledDen, pow10(-shift))
	}

	mantissa, rem := new(big.Int).QuoRem(scaledNum, scaledDen, new(big.Int))
	exact := rem.Sign() == 0
	if !exact {
		mantissa = roundHalfEven(mantissa, rem, scaledDen)
		// Rounding may carry into an extra digit (0.99... becomes 1.0...).
		if mantissa.Cmp(pow10(digits)) >= 0 {
			mantissa.Quo(mantissa, big.NewInt(10))
			exp++
		}
	}

	return formatDecimal(r.Sign() < 0, mantissa.String(), exp, exact)
}

// decimalExponent returns the exponent e with 10^e <= num/den < 10^(e+1)
// for positive num and den.
func decimalExponent(num, den *big.Int) int {
	atLeast := func(e int) bool {
		n := new(big.Int).Set(num)
		d := new(big.Int).Set(den)
		if e >= 0 {
			d.Mul(d, pow10(e))
		} else {
			n.Mul(n, pow10(-e))
		}
		return n.Cmp(d) >= 0
	}

	// Digit-count difference lands within one of the true exponent.
	exp := len(num.String()) - len(den.String())
	for !atLeast(exp) {
		exp--
	}
	for atLeast(exp + 1) {
		exp++
	}
	return exp
}

// roundHalfEven rounds quo up when the discarded remainder exceeds half
// of den, down when below, and to the even neighbor on an exact tie.
func roundHalfEven(quo, rem, den *big.Int) *big.Int {
	doubled := new(big.Int).Lsh(rem, 1)
	switch doubled.Cmp(den) {
	case 1:
		return quo.Add(quo, big.NewInt(1))
	case -1:
		return quo
	default:
		if quo.Bit(0) == 1 {
			return quo.Add(quo, big.NewInt(1))
		}
		return quo
	}
}

// formatDecimal lays out a mantissa against its decimal exponent. Exact
// values drop trailing zeros first; rounded values keep every significant
// digit.
func formatDecimal(negative bool, mantissa string, exp int, exact bool) string {
	if exact {
		mantissa = strings.TrimRight(mantissa, "0")
		if mantissa == "" {
			mantissa = "0"
		}
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}

	if exp >= 0 {
		intLen := exp + 1
		if len(mantissa) <= intLen {
			b.WriteString(mantissa)
			b.WriteString(strings.Repeat("0", intLen-len(mantissa)))
		} else {
			b.WriteString(mantissa[:intLen])
			b.WriteByte('.')
			b.WriteString(mantissa[intLen:])
		}
		return b.String()
	}

	b.WriteString("0.")
	b.WriteString(strings.Repeat("0", -exp-1))
	b.WriteString(mantissa)
	return b.String()
}

// pow10 returns 10^n for non-negative n.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
