package units

import (
	"fmt"
	"math"
)

// fracBits is the number of fractional bits in a FracInt.
const fracBits = 16

// fracScale is 2^16 as a float64.
const fracScale = float64(1 << fracBits)

// FracInt is an unsigned fixed-point number with 48 integer bits and 16
// fractional bits: the value FracInt(x) represents x / 2^16.
//
// Time measured in samples is stored as a FracInt rather than a float so that
// adding exactly one sample never loses precision, no matter how many samples
// have accumulated. A float64 seconds counter would drift after billions of
// increments; this type cannot.
type FracInt uint64

const (
	// FracZero is the number zero.
	FracZero FracInt = 0

	// FracOne is the number one.
	FracOne FracInt = 1 << fracBits

	// FracEps is the smallest positive value representable.
	FracEps FracInt = 1

	// FracMax is the largest value representable.
	FracMax FracInt = math.MaxUint64
)

// FracFromParts builds a FracInt from an integer part and a fractional part
// in units of 2^-16. The integer part must be less than 2^48.
func FracFromParts(whole uint64, frac uint16) FracInt {
	return FracInt(whole<<fracBits + uint64(frac))
}

// FracFromInt converts an integer less than 2^48 into a FracInt.
func FracFromInt(x uint64) FracInt {
	return FracFromParts(x, 0)
}

// FracFromFloat rounds a float64 into a FracInt. The value ought to be
// between 0 and 2^48.
func FracFromFloat(x float64) FracInt {
	whole, frac := math.Modf(x)
	return FracFromParts(uint64(whole), uint16(math.Round(frac*fracScale)))
}

// Int returns the integer part of the number.
func (x FracInt) Int() uint64 {
	return uint64(x) >> fracBits
}

// FracBits returns the fractional part of the number, multiplied by 2^16.
func (x FracInt) FracBits() uint16 {
	return uint16(x)
}

// Frac returns the fractional part of the number. The conversion is exact:
// float64 has more than the 16 needed mantissa bits.
func (x FracInt) Frac() float64 {
	return float64(x.FracBits()) / fracScale
}

// Float64 returns the value this FracInt represents, rounded to a float64.
func (x FracInt) Float64() float64 {
	return float64(x) / fracScale
}

// IsZero reports whether the number equals zero.
func (x FracInt) IsZero() bool {
	return x == 0
}

// Floor rounds down to the nearest integer.
func (x FracInt) Floor() FracInt {
	return x &^ (FracOne - 1)
}

// MulInt multiplies by a non-negative integer.
func (x FracInt) MulInt(n uint64) FracInt {
	return x * FracInt(n)
}

// DivInt divides by a positive integer.
func (x FracInt) DivInt(n uint64) FracInt {
	return x / FracInt(n)
}

// MulFloat multiplies by a non-negative float, truncating the result.
func (x FracInt) MulFloat(f float64) FracInt {
	return FracInt(float64(x) * f)
}

// DivFloat divides by a positive float, truncating the result.
func (x FracInt) DivFloat(f float64) FracInt {
	return FracInt(float64(x) / f)
}

// Quot returns the ratio of two FracInts as a float64.
func (x FracInt) Quot(y FracInt) float64 {
	return x.Float64() / y.Float64()
}

// String formats the value with its full fractional part, e.g. "0.375".
func (x FracInt) String() string {
	decimal := fmt.Sprintf("%v", x.Frac())
	return fmt.Sprintf("%d%s", x.Int(), decimal[1:])
}
