// Package calc evaluates integer expressions written in prefix (Polish)
// notation, such as "* 10 + 123 456".
package calc

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/govalues/bigint"
	lru "github.com/hashicorp/golang-lru/v2"
)

var (
	// ErrNoTokens is returned for blank expressions
	ErrNoTokens = errors.New("no tokens")
	// ErrStack is returned when an expression does not reduce to exactly one value
	ErrStack = errors.New("unbalanced expression")
)

// Apply applies a binary operator to x and y.
// Supported operators are + - * / % ^.
func Apply(x bigint.Int, op string, y bigint.Int) (bigint.Int, error) {
	switch op {
	case "+":
		return x.Add(y), nil
	case "-":
		return x.Sub(y), nil
	case "*":
		return x.Mul(y), nil
	case "/":
		return x.Quo(y)
	case "%":
		return x.Rem(y)
	case "^":
		return x.Pow(y)
	}
	return bigint.Int{}, fmt.Errorf("unknown operator %q", op)
}

// IsOperator reports whether token is a supported operator
func IsOperator(token string) bool {
	switch token {
	case "+", "-", "*", "/", "%", "^":
		return true
	}
	return false
}

// Evaluate computes the value of an expression in prefix notation.
// Tokens are separated by whitespace and processed from right to left:
// operands are pushed onto a stack, an operator pops its left operand
// first and its right operand second.
func Evaluate(input string) (bigint.Int, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return bigint.Int{}, ErrNoTokens
	}
	stack := make([]bigint.Int, 0, len(tokens))
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		if !IsOperator(token) {
			x, err := bigint.Parse(token)
			if err != nil {
				return bigint.Int{}, fmt.Errorf("processing token %q: %w", token, err)
			}
			stack = append(stack, x)
			continue
		}
		if len(stack) < 2 {
			return bigint.Int{}, fmt.Errorf("processing token %q: not enough operands: %w", token, ErrStack)
		}
		left := stack[len(stack)-1]
		right := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		z, err := Apply(left, token, right)
		if err != nil {
			return bigint.Int{}, fmt.Errorf("evaluating \"%v %s %v\": %w", left, token, right, err)
		}
		stack = append(stack, z)
	}
	if len(stack) != 1 {
		return bigint.Int{}, fmt.Errorf("stack contains %v, expected exactly one item: %w", stack, ErrStack)
	}
	return stack[0], nil
}

// Calculator evaluates expressions and memoizes their results.
// It is safe for concurrent use.
type Calculator struct {
	mu      sync.Mutex
	results *lru.Cache[string, bigint.Int]

	// Metrics
	hits   uint64
	misses uint64
}

// Stats reports the cache effectiveness of a calculator
type Stats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

// New creates a calculator remembering up to size results
func New(size int) (*Calculator, error) {
	results, err := lru.New[string, bigint.Int](size)
	if err != nil {
		return nil, fmt.Errorf("creating result cache: %w", err)
	}
	return &Calculator{results: results}, nil
}

// Evaluate is like [Evaluate], but returns a remembered result if the same
// expression (up to whitespace) has been evaluated before.
// Failed evaluations are not remembered.
func (c *Calculator) Evaluate(input string) (bigint.Int, error) {
	key := strings.Join(strings.Fields(input), " ")

	c.mu.Lock()
	if x, ok := c.results.Get(key); ok {
		c.hits++
		c.mu.Unlock()
		return x, nil
	}
	c.misses++
	c.mu.Unlock()

	x, err := Evaluate(key)
	if err != nil {
		return bigint.Int{}, err
	}

	c.mu.Lock()
	c.results.Add(key, x)
	c.mu.Unlock()
	return x, nil
}

// Stats returns the current cache statistics
func (c *Calculator) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Hits:   c.hits,
		Misses: c.misses,
		Len:    c.results.Len(),
	}
}
