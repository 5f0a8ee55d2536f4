package bigint

import "math"

// digits is the magnitude of an integer: a sequence of decimal digits,
// each in the range [0, 9], with the most significant digit first.
//
// A magnitude is normalized if it has no leading zero digits.
// During arithmetic operations denormalized temporaries may occur, but they
// are always normalized before a result is returned.
// The normalized representation of 0 is the empty or nil slice.
//
// Magnitudes are never modified after they have been handed to an [Int].
type digits []byte

// adc (Add with Carry) calculates x + y + c for single digits x, y and
// a carry c in [-1, 1].
// It returns the resulting digit and the carry into the next position.
// A negative sum is corrected by adding 10 and yields a carry of -1 (borrow).
func adc(x, y, c int) (z, carry int) {
	z = x + y + c
	if z < 0 {
		return z + 10, -1
	}
	return z % 10, z / 10
}

// mulc (Multiply with Carry) calculates x * y + c for single digits x, y
// and a carry c in [0, 8].
// It returns the resulting digit and the carry into the next position.
func mulc(x, y, c byte) (z, carry byte) {
	p := x*y + c // at most 9 * 9 + 8 = 89
	return p % 10, p / 10
}

// digitsFromUint64 returns the decimal digits of u.
func digitsFromUint64(u uint64) digits {
	if u == 0 {
		return nil
	}
	var buf [20]byte // 18_446_744_073_709_551_615
	pos := len(buf)
	for u > 0 {
		pos--
		buf[pos] = byte(u % 10)
		u /= 10
	}
	z := make(digits, len(buf)-pos)
	copy(z, buf[pos:])
	return z
}

// uint64 converts x to uint64 and reports whether the conversion is exact.
func (x digits) uint64() (uint64, bool) {
	var z uint64
	for _, d := range x {
		if z > (math.MaxUint64-uint64(d))/10 {
			return 0, false
		}
		z = z*10 + uint64(d)
	}
	return z, true
}

// norm returns x with leading zeros removed.
// The result shares the underlying array with x.
func (x digits) norm() digits {
	i := 0
	for i < len(x) && x[i] == 0 {
		i++
	}
	if i == len(x) {
		return nil
	}
	return x[i:]
}

// digit returns the i-th digit of x counting from the least significant one.
// Missing digits are treated as 0.
func (x digits) digit(i int) int {
	if i < 0 || i >= len(x) {
		return 0
	}
	return int(x[len(x)-1-i])
}

// isOdd reports whether x is odd.
func (x digits) isOdd() bool {
	return len(x) > 0 && x[len(x)-1]&1 != 0
}

// cmp compares normalized magnitudes x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x digits) cmp(y digits) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := range x {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// add calculates x + y.
func (x digits) add(y digits) digits {
	n := max(len(x), len(y))
	z := make(digits, n+1)
	c := 0
	for i := 0; i < n; i++ {
		var s int
		s, c = adc(x.digit(i), y.digit(i), c)
		z[n-i] = byte(s)
	}
	z[0] = byte(c)
	return z.norm()
}

// sub calculates x - y.
// The digits of y enter the carry chain negated, so every position that goes
// below zero borrows from the next one.
// sub panics if x < y.
func (x digits) sub(y digits) digits {
	z := make(digits, len(x))
	b := 0
	for i := 0; i < len(x); i++ {
		var s int
		s, b = adc(x.digit(i), -y.digit(i), b)
		z[len(x)-1-i] = byte(s)
	}
	if b != 0 || len(y) > len(x) {
		panic("sub: negative difference") // unexpected by design
	}
	return z.norm()
}

// mulDigit calculates x * y * 10^shift for a single digit y.
func (x digits) mulDigit(y byte, shift int) digits {
	if y == 0 || len(x) == 0 {
		return nil
	}
	z := make(digits, len(x)+1+shift) // trailing zeros are the shift
	var c byte
	for i := len(x) - 1; i >= 0; i-- {
		z[i+1], c = mulc(x[i], y, c)
	}
	z[0] = c
	return z.norm()
}

// mul calculates x * y using "grade school" multiplication:
// one partial product per digit of y, each shifted by the position
// of the digit, accumulated with add.
func (x digits) mul(y digits) digits {
	var z digits
	for i := 0; i < len(y); i++ {
		p := x.mulDigit(y[len(y)-1-i], i)
		if p != nil {
			z = z.add(p)
		}
	}
	return z
}

// quoRem calculates q = ⌊x / y⌋ and r = x - y * q using long division.
// Digits of x are brought down into a running remainder one at a time;
// y is subtracted from the remainder while it fits, and the number of
// subtractions is the next digit of the quotient.
// quoRem panics if y is 0.
func (x digits) quoRem(y digits) (q, r digits) {
	if len(y) == 0 {
		panic("quoRem: division by zero") // unexpected by design
	}

	// Special cases
	switch x.cmp(y) {
	case -1:
		return nil, x
	case 0:
		return digits{1}, nil
	}

	// General case
	q = make(digits, len(x))
	r = make(digits, 0, len(y)+1)
	for i, d := range x {
		r = append(r, d).norm()
		var n byte
		for r.cmp(y) >= 0 {
			r = r.sub(y)
			n++
		}
		q[i] = n
	}
	return q.norm(), r
}

// quoDigit calculates q = ⌊x / y⌋ and r = x mod y for a single non-zero
// digit y using short division.
func (x digits) quoDigit(y byte) (q digits, r byte) {
	q = make(digits, len(x))
	for i, d := range x {
		n := r*10 + d // r < y, thus n < 90
		q[i], r = n/y, n%y
	}
	return q.norm(), r
}
