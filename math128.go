package polyclip

// Exact wide arithmetic for the predicates the sweep relies on. Cross
// products of safe-range coordinates exceed int64, so the comparisons that
// decide edge ordering and collinearity go through 128-bit intermediates.

import "math/bits"

// Int128 represents a signed 128-bit integer
type Int128 struct {
	Hi int64  // high 64 bits (sign-extended)
	Lo uint64 // low 64 bits
}

// mul64x64 returns the full signed 128-bit product of two int64 values
func mul64x64(a, b int64) Int128 {
	negative := (a < 0) != (b < 0)

	ua := uint64(a)
	if a < 0 {
		ua = uint64(-a) // MinInt64 wraps to its own magnitude, which is correct
	}
	ub := uint64(b)
	if b < 0 {
		ub = uint64(-b)
	}

	hi, lo := bits.Mul64(ua, ub)
	result := Int128{Hi: int64(hi), Lo: lo}
	if negative {
		result = result.Negate()
	}
	return result
}

// IsNegative returns true if the value is negative
func (i Int128) IsNegative() bool {
	return i.Hi < 0
}

// IsZero returns true if the value is zero
func (i Int128) IsZero() bool {
	return i.Hi == 0 && i.Lo == 0
}

// Sign returns -1, 0 or 1
func (i Int128) Sign() int {
	if i.Hi < 0 {
		return -1
	}
	if i.Hi == 0 && i.Lo == 0 {
		return 0
	}
	return 1
}

// Negate returns the two's complement negation.
// Negate(MinInt128) wraps back to MinInt128.
func (i Int128) Negate() Int128 {
	lo := ^i.Lo + 1
	hi := ^i.Hi
	if lo == 0 {
		hi++
	}
	return Int128{Hi: hi, Lo: lo}
}

// Add returns i + other
func (i Int128) Add(other Int128) Int128 {
	lo, carry := bits.Add64(i.Lo, other.Lo, 0)
	hi, _ := bits.Add64(uint64(i.Hi), uint64(other.Hi), carry)
	return Int128{Hi: int64(hi), Lo: lo}
}

// Sub returns i - other
func (i Int128) Sub(other Int128) Int128 {
	lo, borrow := bits.Sub64(i.Lo, other.Lo, 0)
	hi, _ := bits.Sub64(uint64(i.Hi), uint64(other.Hi), borrow)
	return Int128{Hi: int64(hi), Lo: lo}
}

// Cmp returns -1 if i < other, 0 if equal, 1 if i > other
func (i Int128) Cmp(other Int128) int {
	if i.Hi != other.Hi {
		if i.Hi < other.Hi {
			return -1
		}
		return 1
	}
	if i.Lo == other.Lo {
		return 0
	}
	if i.Lo < other.Lo {
		return -1
	}
	return 1
}

// ToFloat64 converts to float64, losing precision for large magnitudes
func (i Int128) ToFloat64() float64 {
	if (i.Hi == 0 && i.Lo < 1<<63) || (i.Hi == -1 && i.Lo >= 1<<63) {
		return float64(int64(i.Lo))
	}
	const two64 = 18446744073709551616.0
	return float64(i.Hi)*two64 + float64(i.Lo)
}

// crossProduct128 calculates the cross product of vectors (p2-p1) and (p3-p2)
// exactly. The sign decides turn direction; zero means collinear.
func crossProduct128(p1, p2, p3 Point64) Int128 {
	a := mul64x64(p2.X-p1.X, p3.Y-p2.Y)
	b := mul64x64(p2.Y-p1.Y, p3.X-p2.X)
	return a.Sub(b)
}

// crossSign128 returns the sign of crossProduct128 without materializing it twice
func crossSign128(p1, p2, p3 Point64) int {
	return crossProduct128(p1, p2, p3).Sign()
}

// dotProduct128 calculates the dot product of vectors (p2-p1) and (p3-p2) exactly
func dotProduct128(p1, p2, p3 Point64) Int128 {
	a := mul64x64(p2.X-p1.X, p3.X-p2.X)
	b := mul64x64(p2.Y-p1.Y, p3.Y-p2.Y)
	return a.Add(b)
}

// productsAreEqual reports whether a*b == c*d without overflow
func productsAreEqual(a, b, c, d int64) bool {
	return mul64x64(a, b).Cmp(mul64x64(c, d)) == 0
}

// area128 calculates twice the signed area of a path exactly
func area128(path Path64) Int128 {
	var area Int128
	if len(path) < 3 {
		return area
	}
	prev := path[len(path)-1]
	for _, pt := range path {
		area = area.Add(mul64x64(prev.Y+pt.Y, prev.X-pt.X))
		prev = pt
	}
	return area
}

// distanceSquared128 calculates the squared distance between two points exactly
func distanceSquared128(p1, p2 Point64) Int128 {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	return mul64x64(dx, dx).Add(mul64x64(dy, dy))
}
