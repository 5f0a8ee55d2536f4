/*
Package bigint implements immutable signed integers of arbitrary size.
The arithmetic is carried out directly on decimal digits, so conversions
from and to decimal strings are exact and cheap.

# Representation

[Int] is a struct with two fields:

  - Sign: a boolean indicating whether the integer is negative.
  - Magnitude: a sequence of decimal digits of the absolute value,
    with the most significant digit first.

The numerical value of an integer is calculated as:

  - -Magnitude, if Sign is true.
  - Magnitude, if Sign is false.

Every integer is kept in normalized form: the magnitude has no leading zeros,
zero is represented by an empty magnitude, and zero is never negative.
As a result, each numeric value has exactly one representation.
For example, "007", "7" and "-0", "0" are parsed into the same integers
as 7 and 0 respectively.

# Constraints

There are no limits on the size of an integer other than available memory.
There is no overflow and no "wrap around": the magnitude of a result grows
as needed.

# Conversions

The package provides methods for converting integers:

  - from/to string:
    [Parse], [Int.String], [Int.Format].
  - from/to int64:
    [New], [Int.Int64].
  - from/to uint64:
    [NewFromUint64], [Int.Uint64].

See the documentation for each method for more details.

# Operations

Each operation returns a new integer and never modifies its operands.
Compound assignment is therefore written as

	x = x.Add(y)

The operations are implemented with the classical digit-by-digit algorithms:

  - [Int.Add], [Int.Sub]:
    addition with carry propagation, and subtraction of the smaller magnitude
    from the larger one with borrow propagation.
  - [Int.Mul]:
    "grade school" multiplication, summing one shifted partial product per digit.
  - [Int.Quo], [Int.Rem], [Int.QuoRem]:
    long division, where every digit of the quotient is found by repeated
    subtraction of the divisor from the running remainder.
    The quotient is truncated towards zero, exactly like integer division
    of the built-in types: -7 / 2 = -3 and -7 % 2 = -1.
  - [Int.Pow], [Int.PowInt]:
    binary exponentiation (square-and-multiply).

# Errors

All methods are pure and, apart from the Must* family, panic-free.
Errors are returned in the following cases:

  - Invalid Digit.
    [Parse] returns an error wrapping [ErrInvalidDigit] if the string contains
    anything but an optional leading '-' followed by decimal digits.

  - Division by Zero.
    Unlike the standard library, [Int.Quo], [Int.Rem], and [Int.QuoRem]
    do not panic when dividing by 0.
    Instead, they return an error wrapping [ErrDivisionByZero].

  - Negative Exponent.
    [Int.Pow] and [Int.PowInt] return an error wrapping [ErrNegativeExponent]
    if the exponent is negative.

Use [errors.Is] to check for a specific error.
*/
package bigint
