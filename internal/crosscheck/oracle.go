package crosscheck

import (
	"math/big"

	"github.com/govalues/bigint"
)

// Operators checked by the runner
var operators = []string{"+", "-", "*", "/", "%", "^"}

// maxExp bounds the random exponents of "^"
const maxExp = 8

// engineFunc applies an operator of the engine under test.
type engineFunc func(x, y bigint.Int) (bigint.Int, error)

// engineOps returns the operations of the engine under test.
func engineOps() map[string]engineFunc {
	return map[string]engineFunc{
		"+": func(x, y bigint.Int) (bigint.Int, error) { return x.Add(y), nil },
		"-": func(x, y bigint.Int) (bigint.Int, error) { return x.Sub(y), nil },
		"*": func(x, y bigint.Int) (bigint.Int, error) { return x.Mul(y), nil },
		"/": bigint.Int.Quo,
		"%": bigint.Int.Rem,
		"^": bigint.Int.Pow,
	}
}

// nativeOracle computes x op y with int64 arithmetic.
// It reports false if the operation has no result.
// Operands must be small enough for the result to fit into int64.
func nativeOracle(op string, x, y int64) (int64, bool) {
	switch op {
	case "+":
		return x + y, true
	case "-":
		return x - y, true
	case "*":
		return x * y, true
	case "/":
		if y == 0 {
			return 0, false
		}
		return x / y, true
	case "%":
		if y == 0 {
			return 0, false
		}
		return x % y, true
	case "^":
		if y < 0 {
			return 0, false
		}
		z := int64(1)
		for ; y > 0; y-- {
			z *= x
		}
		return z, true
	}
	return 0, false
}

// bigOracle computes x op y with math/big.
// It reports false if the operation has no result.
func bigOracle(op string, x, y *big.Int) (*big.Int, bool) {
	z := new(big.Int)
	switch op {
	case "+":
		return z.Add(x, y), true
	case "-":
		return z.Sub(x, y), true
	case "*":
		return z.Mul(x, y), true
	case "/":
		if y.Sign() == 0 {
			return nil, false
		}
		return z.Quo(x, y), true // truncated, like the engine
	case "%":
		if y.Sign() == 0 {
			return nil, false
		}
		return z.Rem(x, y), true
	case "^":
		if y.Sign() < 0 {
			return nil, false
		}
		return z.Exp(x, y, nil), true
	}
	return nil, false
}
