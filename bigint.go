package bigint

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
)

// Int type is a representation of a signed integer of arbitrary size.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// An integer is a struct with two parameters:
//
//   - Sign: a boolean indicating whether the integer is negative.
//   - Magnitude: the decimal digits of the absolute value of the integer,
//     with the most significant digit first.
//
// Every method returns a new normalized integer and never modifies its
// receiver or arguments, so an Int can be passed and copied by value.
// Compound assignment is written as x = x.Add(y).
//
// Zero has exactly one representation: it is never negative.
type Int struct {
	neg bool   // indicates whether the integer is negative
	mag digits // the magnitude of the integer
}

var (
	// ErrInvalidDigit is returned when a string contains a character that is
	// neither an optional leading '-' nor an ASCII decimal digit.
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrDivisionByZero is returned when the divisor is 0.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNegativeExponent is returned when an integer is raised to a negative power.
	ErrNegativeExponent = errors.New("negative exponent")
)

var (
	Zero = New(0)  // Zero represents the integer value of 0.
	One  = New(1)  // One represents the integer value of 1.
	Two  = New(2)  // Two represents the integer value of 2.
	Ten  = New(10) // Ten represents the integer value of 10.
)

// newInt returns a normalized integer: leading zeros are stripped from the
// magnitude and the sign of zero is cleared.
func newInt(neg bool, mag digits) Int {
	mag = mag.norm()
	if len(mag) == 0 {
		neg = false
	}
	return Int{neg: neg, mag: mag}
}

// New returns an integer equal to n.
func New(n int64) Int {
	neg := n < 0
	u := uint64(n)
	if neg {
		u = -u // also correct for math.MinInt64
	}
	return newInt(neg, digitsFromUint64(u))
}

// NewFromUint64 returns an integer equal to u.
func NewFromUint64(u uint64) Int {
	return newInt(false, digitsFromUint64(u))
}

// Parse converts a string to an integer.
// The input string must be in one of the following formats:
//
//	1234
//	-1234
//	0001234
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits
//
// Parse removes leading zeros, so "-0" is parsed as 0 and "007" as 7.
//
// Parse returns an error wrapping [ErrInvalidDigit] if the string is empty,
// has no digits, or contains any other character.
func Parse(s string) (Int, error) {
	var (
		pos   int
		width int
		neg   bool
		mag   digits
	)

	width = len(s)

	// Sign
	if pos < width && s[pos] == '-' {
		neg = true
		pos++
	}

	if pos == width {
		return Int{}, fmt.Errorf("no digits in %q: %w", s, ErrInvalidDigit)
	}

	// Digits
	mag = make(digits, 0, width-pos)
	for ; pos < width; pos++ {
		c := s[pos]
		if c < '0' || '9' < c {
			return Int{}, fmt.Errorf("invalid character %q at position %v: %w", c, pos, ErrInvalidDigit)
		}
		mag = append(mag, c-'0')
	}

	return newInt(neg, mag), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of an integer value.
// The returned string is formatted according to the following formal
// EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits
//
// Zero is rendered as "0" without a sign.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Int) String() string {
	if x.IsZero() {
		return "0"
	}
	buf := make([]byte, 0, len(x.mag)+1)
	if x.neg {
		buf = append(buf, '-')
	}
	for _, d := range x.mag {
		buf = append(buf, d+'0')
	}
	return string(buf)
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Int) UnmarshalText(text []byte) error {
	var err error
	*x, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Int.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// Scan implements the [sql.Scanner] interface.
// It accepts string, []byte, int64 and uint64 values.
// See also method [Parse].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (x *Int) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*x, err = Parse(value)
	case []byte:
		*x, err = Parse(string(value))
	case int64:
		*x = New(value)
	case uint64:
		*x = NewFromUint64(value)
	default:
		err = fmt.Errorf("failed to convert from %T to %T", value, Int{})
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// See also method [Int.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (x Int) Value() (driver.Value, error) {
	return x.String(), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%d, %s, %v: -123
//	%q:        "-123"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Int) Format(state fmt.State, verb rune) {
	// Digits
	intdigs := len(x.mag)
	if intdigs == 0 {
		intdigs = 1 // zero
	}

	// Arithmetic sign
	rsign := 0
	if x.IsNeg() || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + intdigs + tquote
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if lquote > 0 {
		buf = append(buf, '"')
	}
	if rsign > 0 {
		switch {
		case x.IsNeg():
			buf = append(buf, '-')
		case state.Flag(' '):
			buf = append(buf, ' ')
		default:
			buf = append(buf, '+')
		}
	}
	for i := 0; i < lzeroes; i++ {
		buf = append(buf, '0')
	}
	if x.IsZero() {
		buf = append(buf, '0')
	}
	for _, d := range x.mag {
		buf = append(buf, d+'0')
	}
	if tquote > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'd':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(bigint.Int="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// Int64 returns the integer as int64.
// If the integer cannot be represented as int64, the result is (0, false).
func (x Int) Int64() (n int64, ok bool) {
	u, ok := x.mag.uint64()
	if !ok {
		return 0, false
	}
	if x.neg {
		if u > 1<<63 {
			return 0, false
		}
		return -int64(u), true // -(1 << 63) wraps to math.MinInt64
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// Uint64 returns the integer as uint64.
// If the integer is negative or cannot be represented as uint64,
// the result is (0, false).
func (x Int) Uint64() (u uint64, ok bool) {
	if x.neg {
		return 0, false
	}
	return x.mag.uint64()
}

// Prec returns number of decimal digits in the magnitude of x.
// Prec returns 0 for zero.
func (x Int) Prec() int {
	return len(x.mag)
}

// Neg returns x with opposite sign.
func (x Int) Neg() Int {
	return newInt(!x.neg, x.mag)
}

// Abs returns absolute value of x.
func (x Int) Abs() Int {
	return newInt(false, x.mag)
}

// CopySign returns x with the same sign as y.
// If y is zero, sign of the result remains unchanged.
func (x Int) CopySign(y Int) Int {
	switch {
	case y.IsZero():
		return x
	case x.IsNeg() != y.IsNeg():
		return x.Neg()
	default:
		return x
	}
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x Int) Sign() int {
	switch {
	case x.neg:
		return -1
	case len(x.mag) == 0:
		return 0
	}
	return 1
}

// IsPos returns true if x > 0.
func (x Int) IsPos() bool {
	return len(x.mag) != 0 && !x.neg
}

// IsNeg returns true if x < 0.
func (x Int) IsNeg() bool {
	return x.neg
}

// IsZero returns true if x == 0.
func (x Int) IsZero() bool {
	return len(x.mag) == 0
}

// IsOdd returns true if x is odd.
func (x Int) IsOdd() bool {
	return x.mag.isOdd()
}

// Add returns the sum of x and y.
// Also see method [Int.Sub].
func (x Int) Add(y Int) Int {
	// Same signs: magnitudes are added
	if x.neg == y.neg {
		return newInt(x.neg, x.mag.add(y.mag))
	}

	// Different signs: the smaller magnitude is subtracted from the larger one
	switch x.mag.cmp(y.mag) {
	case -1:
		return newInt(y.neg, y.mag.sub(x.mag))
	case 1:
		return newInt(x.neg, x.mag.sub(y.mag))
	}
	return Int{}
}

// Sub returns the difference of x and y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// SubAbs returns |x - y|.
func (x Int) SubAbs(y Int) Int {
	return x.Sub(y).Abs()
}

// Mul returns the product of x and y.
func (x Int) Mul(y Int) Int {
	return newInt(x.neg != y.neg, x.mag.mul(y.mag))
}

// Quo returns the quotient of x and y truncated towards zero,
// just like integer division of the built-in signed types.
// For example, -7 / 2 is -3.
//
// Quo returns an error wrapping [ErrDivisionByZero] if y is 0.
// Also see method [Int.QuoRem].
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	if err != nil {
		return Int{}, err
	}
	return q, nil
}

// Rem returns the remainder x - y * (x / y), where the quotient is
// truncated towards zero.
// The result has the sign of x and its absolute value is less than |y|.
// For example, -7 % 2 is -1.
//
// Rem returns an error wrapping [ErrDivisionByZero] if y is 0.
// Also see method [Int.QuoRem].
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	if err != nil {
		return Int{}, err
	}
	return r, nil
}

// QuoRem returns the quotient q and remainder r of x and y such that
// x = q * y + r, where q is truncated towards zero and r has the sign of x.
//
// QuoRem returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, fmt.Errorf("computing [%v / %v]: %w", x, y, ErrDivisionByZero)
	}
	qmag, rmag := x.mag.quoRem(y.mag)
	q = newInt(x.neg != y.neg, qmag)
	r = newInt(x.neg, rmag)
	return q, r, nil
}

// PowInt returns x raised to the power of exp, computed with
// square-and-multiply over the binary digits of exp.
// Any integer raised to the power of 0, including 0 itself, is 1.
//
// PowInt returns an error wrapping [ErrNegativeExponent] if exp is negative.
// Also see method [Int.Pow].
func (x Int) PowInt(exp int) (Int, error) {
	if exp < 0 {
		return Int{}, fmt.Errorf("computing [%v^%v]: %w", x, exp, ErrNegativeExponent)
	}
	z, b := One, x
	for exp > 0 {
		if exp&1 != 0 {
			z = z.Mul(b)
		}
		exp >>= 1
		if exp > 0 {
			b = b.Mul(b)
		}
	}
	return z, nil
}

// Pow returns x raised to the power of exp, computed with
// square-and-multiply: the parity of exp is taken from its last decimal
// digit and exp is halved on every round.
// Pow and [Int.PowInt] return the same result for the same exponent.
//
// Pow returns an error wrapping [ErrNegativeExponent] if exp is negative.
func (x Int) Pow(exp Int) (Int, error) {
	if exp.IsNeg() {
		return Int{}, fmt.Errorf("computing [%v^%v]: %w", x, exp, ErrNegativeExponent)
	}
	z, b, e := One, x, exp.mag
	for len(e) > 0 {
		if e.isOdd() {
			z = z.Mul(b)
		}
		e, _ = e.quoDigit(2)
		if len(e) > 0 {
			b = b.Mul(b)
		}
	}
	return z, nil
}

// Cmp compares x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Int) Cmp(y Int) int {
	// Special case: different signs
	switch {
	case y.Sign() < x.Sign():
		return 1
	case x.Sign() < y.Sign():
		return -1
	}

	// General case: a larger magnitude is a smaller negative number
	r := x.mag.cmp(y.mag)
	if x.neg {
		return -r
	}
	return r
}

// Equal returns true if x == y.
func (x Int) Equal(y Int) bool {
	return x.neg == y.neg && x.mag.cmp(y.mag) == 0
}

// Max returns maximum of x and y.
// If x and y are equal, x is returned.
func (x Int) Max(y Int) Int {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Min returns minimum of x and y.
// If x and y are equal, x is returned.
func (x Int) Min(y Int) Int {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// NullInt represents an integer that can be null.
// Its zero value is null.
// NullInt is not thread-safe.
type NullInt struct {
	Int   Int
	Valid bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Int.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullInt) Scan(value any) error {
	if value == nil {
		n.Int = Int{}
		n.Valid = false
		return nil
	}
	err := n.Int.Scan(value)
	if err != nil {
		n.Int = Int{}
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [Int.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullInt) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Int.Value()
}
