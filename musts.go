package bigint

import "fmt"

// MustQuo is like [Int.Quo] but panics if computing error.
func (x Int) MustQuo(y Int) Int {
	q, err := x.Quo(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", y, err))
	}
	return q
}

// MustRem is like [Int.Rem] but panics if computing error.
func (x Int) MustRem(y Int) Int {
	r, err := x.Rem(y)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", y, err))
	}
	return r
}

// MustQuoRem is like [Int.QuoRem] but panics if computing error.
func (x Int) MustQuoRem(y Int) (Int, Int) {
	q, r, err := x.QuoRem(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuoRem(%v) failed: %v", y, err))
	}
	return q, r
}

// MustPow is like [Int.Pow] but panics if computing error.
func (x Int) MustPow(exp Int) Int {
	z, err := x.Pow(exp)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", exp, err))
	}
	return z
}

// MustPowInt is like [Int.PowInt] but panics if computing error.
func (x Int) MustPowInt(exp int) Int {
	z, err := x.PowInt(exp)
	if err != nil {
		panic(fmt.Sprintf("MustPowInt(%v) failed: %v", exp, err))
	}
	return z
}
