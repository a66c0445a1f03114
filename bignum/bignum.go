package bignum

import (
	"fmt"
	"math/big"
)

const (
	// MaxPrec is the largest precision, in bits, supported for public
	// entry points. The embedded π literal carries 1000 decimal digits
	// (≈3321 bits); the margin above MaxPrec absorbs the guard bits that
	// nested calls stack on top of the caller's precision.
	MaxPrec = 3000

	// piCap bounds Pi itself. Internal working precisions never exceed
	// MaxPrec plus three guard layers, which stays below this cap.
	piCap = 3320

	// guardBits is the internal headroom every computation carries so
	// that the single rounding back to the caller's precision lands on
	// the correctly rounded result.
	guardBits = 96
)

// piDigits is π to 1000 decimal places (Johansson-style embedded constant).
const piDigits = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679821480865132823066470938446095505822317253594081284811174502841027019385211055596446229489549303819644288109756659334461284756482337867831652712019091456485669234603486104543266482133936072602491412737245870066063155881748815209209628292540917153643678925903600113305305488204665213841469519415116094330572703657595919530921861173819326117931051185480744623799627495673518857527248912279381830119491298336733624406566430860213949463952247371907021798609437027705392171762931767523846748184676694051320005681271452635608277857713427577896091736371787214684409012249534301465495853710507922796892589235420199561121290219608640344181598136297747713099605187072113499999983729780499510597317328160963185950244594553469083026425223082533446850352619311881710100031378387528865875332083814206171776691473035982534904287554687311595628638823537875937519577818577805321712268066130019278766111959092164201989"

// NewFloat constructs a big.Float holding x at the given precision.
// Panics if x is NaN (big.Float cannot represent NaN).
func NewFloat(x float64, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetFloat64(x)
}

// ParseFloat constructs a big.Float from a decimal literal at the given
// precision, rounding to nearest-even. Exact decimal constants such as
// grid perturbation factors should enter the computation through here
// rather than through a float64 intermediary.
func ParseFloat(s string, prec uint) (*big.Float, error) {
	f, _, err := big.ParseFloat(s, 10, prec, big.ToNearestEven)
	if err != nil {
		return nil, fmt.Errorf("bignum: parse %q: %w", s, err)
	}

	return f, nil
}

// Pi returns π rounded to prec bits.
//
// prec must be in (0, piCap]; Pi is also called internally at the
// caller's precision plus guard bits, which is why MaxPrec for public
// callers sits below the literal's capacity. Out-of-range precision is
// a programmer error and panics.
func Pi(prec uint) *big.Float {
	if prec == 0 || prec > piCap {
		panic("bignum: Pi precision out of range")
	}
	f, _, err := big.ParseFloat(piDigits, 10, prec, big.ToNearestEven)
	if err != nil {
		// The literal is a compile-time constant; failing to parse it
		// means the source itself is corrupted.
		panic("bignum: invalid π literal: " + err.Error())
	}

	return f
}
