// Package crosscheck compares bigint arithmetic with independent oracles
// on randomly generated operands.
//
// Every iteration runs two phases. The native phase draws operands from
// [-Range, Range) and checks the results against int64 arithmetic.
// The long phase draws operands of up to Digits decimal digits and checks
// the results against math/big. Mismatches are reported one per line.
package crosscheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/big"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/govalues/bigint"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidOptions is wrapped by errors returned from [New].
var ErrInvalidOptions = errors.New("invalid options")

// Options configures a run
type Options struct {
	Iterations int
	Range      int64
	Digits     int
	Seed       int64 // 0 picks a time-based seed
	Workers    int
}

// Mismatch describes an operation where the engine and the oracle disagree.
// Got is null if the engine failed, Want is null if the oracle has no result.
type Mismatch struct {
	Op   string
	X, Y bigint.Int
	Got  bigint.NullInt
	Want bigint.NullInt
}

// String renders the mismatch as "x op y: got g, want w", where a missing
// result is written as "error".
func (m Mismatch) String() string {
	return fmt.Sprintf("%v %s %v: got %v, want %v", m.X, m.Op, m.Y, nullString(m.Got), nullString(m.Want))
}

func nullString(n bigint.NullInt) string {
	if !n.Valid {
		return "error"
	}
	return n.Int.String()
}

// Report summarizes a run
type Report struct {
	Seed       int64
	Checks     int64
	Mismatches []Mismatch
	Elapsed    time.Duration
}

// Passed reports whether the run found no mismatches
func (r Report) Passed() bool {
	return len(r.Mismatches) == 0
}

// Runner executes differential checks
type Runner struct {
	opts   Options
	logger *log.Logger
	ops    map[string]engineFunc

	mu         sync.Mutex // guards out and mismatches
	out        io.Writer
	mismatches []Mismatch
	checks     atomic.Int64
}

// New creates a runner. A nil logger discards progress messages.
func New(opts Options, logger *log.Logger) (*Runner, error) {
	switch {
	case opts.Iterations <= 0:
		return nil, fmt.Errorf("iterations must be positive: %w", ErrInvalidOptions)
	case opts.Range <= 0 || opts.Range > 1<<31:
		return nil, fmt.Errorf("range must be in (0, 2^31]: %w", ErrInvalidOptions)
	case opts.Digits < 0:
		return nil, fmt.Errorf("digits must not be negative: %w", ErrInvalidOptions)
	case opts.Workers <= 0:
		return nil, fmt.Errorf("workers must be positive: %w", ErrInvalidOptions)
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Runner{
		opts:   opts,
		logger: logger,
		ops:    engineOps(),
	}, nil
}

// Seed returns the seed used by the runner
func (r *Runner) Seed() int64 {
	return r.opts.Seed
}

// Run performs the checks on Workers goroutines and writes every mismatch
// to w as soon as it is found. It returns early with the context error if
// ctx is cancelled; the report then covers the checks done so far.
func (r *Runner) Run(ctx context.Context, w io.Writer) (Report, error) {
	start := time.Now()
	r.out = w
	r.mismatches = nil
	r.checks.Store(0)

	g, gCtx := errgroup.WithContext(ctx)
	for id := 0; id < r.opts.Workers; id++ {
		id := id
		g.Go(func() error { return r.work(gCtx, id) })
	}
	err := g.Wait()

	r.mu.Lock()
	report := Report{
		Seed:       r.opts.Seed,
		Checks:     r.checks.Load(),
		Mismatches: r.mismatches,
		Elapsed:    time.Since(start),
	}
	r.mu.Unlock()

	if err != nil {
		return report, fmt.Errorf("crosscheck with seed %d: %w", r.opts.Seed, err)
	}
	return report, nil
}

// work runs the iterations id, id + Workers, id + 2 * Workers, ...
// Each worker owns its generator, so a run is reproducible for the same
// seed and number of workers.
func (r *Runner) work(ctx context.Context, id int) error {
	rng := rand.New(rand.NewPCG(uint64(r.opts.Seed), uint64(id)))
	found := 0
	for i := id; i < r.opts.Iterations; i += r.opts.Workers {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := r.checkNative(rng)
		if err != nil {
			return err
		}
		found += n
		if r.opts.Digits > 0 {
			n, err = r.checkLong(rng)
			if err != nil {
				return err
			}
			found += n
		}
	}
	r.logger.Printf("worker %d done, %d mismatches", id, found)
	return nil
}

// checkNative checks every operator on a pair of small operands
func (r *Runner) checkNative(rng *rand.Rand) (int, error) {
	a := rng.Int64N(2*r.opts.Range) - r.opts.Range
	b := rng.Int64N(2*r.opts.Range) - r.opts.Range
	found := 0
	for _, op := range operators {
		a, b := a, b
		if op == "^" {
			a, b = a%100, rng.Int64N(maxExp+1) // 99^8 fits into int64
		}
		want, ok := nativeOracle(op, a, b)
		m, err := r.compare(op, bigint.New(a), bigint.New(b), nullFromInt64(want, ok))
		if err != nil {
			return found, err
		}
		if m {
			found++
		}
	}
	return found, nil
}

// checkLong checks every operator on a pair of long operands
func (r *Runner) checkLong(rng *rand.Rand) (int, error) {
	xs := randomDigits(rng, r.opts.Digits)
	ys := randomDigits(rng, r.opts.Digits)
	found := 0
	for _, op := range operators {
		xs, ys := xs, ys
		if op == "^" {
			ys = fmt.Sprint(rng.IntN(maxExp + 1))
		}
		x, y, err := parsePair(xs, ys)
		if err != nil {
			return found, err
		}
		bx, _ := new(big.Int).SetString(xs, 10)
		by, _ := new(big.Int).SetString(ys, 10)
		want, ok := bigOracle(op, bx, by)
		wantN, err := nullFromBig(want, ok)
		if err != nil {
			return found, err
		}
		m, err := r.compare(op, x, y, wantN)
		if err != nil {
			return found, err
		}
		if m {
			found++
		}
	}
	return found, nil
}

// compare applies op to x and y, and records a mismatch if the result
// differs from want. It reports whether a mismatch was found.
func (r *Runner) compare(op string, x, y bigint.Int, want bigint.NullInt) (bool, error) {
	r.checks.Add(1)
	var got bigint.NullInt
	z, err := r.ops[op](x, y)
	if err == nil {
		got = bigint.NullInt{Int: z, Valid: true}
	}
	if got.Valid == want.Valid && (!got.Valid || got.Int.Equal(want.Int)) {
		return false, nil
	}
	m := Mismatch{Op: op, X: x, Y: y, Got: got, Want: want}
	return true, r.record(m)
}

// record appends the mismatch to the report and writes it out
func (r *Runner) record(m Mismatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mismatches = append(r.mismatches, m)
	if r.out == nil {
		return nil
	}
	if _, err := fmt.Fprintln(r.out, m); err != nil {
		return fmt.Errorf("writing mismatch: %w", err)
	}
	return nil
}

// randomDigits returns a decimal string of 1 to n digits with a random sign.
// Leading zeros are allowed, they exercise normalization.
func randomDigits(rng *rand.Rand, n int) string {
	k := 1 + rng.IntN(n)
	buf := make([]byte, 0, k+1)
	if rng.IntN(2) == 0 {
		buf = append(buf, '-')
	}
	for i := 0; i < k; i++ {
		buf = append(buf, byte('0'+rng.IntN(10)))
	}
	return string(buf)
}

func parsePair(xs, ys string) (x, y bigint.Int, err error) {
	x, err = bigint.Parse(xs)
	if err != nil {
		return bigint.Int{}, bigint.Int{}, fmt.Errorf("generated operand: %w", err)
	}
	y, err = bigint.Parse(ys)
	if err != nil {
		return bigint.Int{}, bigint.Int{}, fmt.Errorf("generated operand: %w", err)
	}
	return x, y, nil
}

func nullFromInt64(n int64, ok bool) bigint.NullInt {
	if !ok {
		return bigint.NullInt{}
	}
	return bigint.NullInt{Int: bigint.New(n), Valid: true}
}

func nullFromBig(z *big.Int, ok bool) (bigint.NullInt, error) {
	if !ok {
		return bigint.NullInt{}, nil
	}
	var n bigint.NullInt
	if err := n.Scan(z.String()); err != nil {
		return bigint.NullInt{}, fmt.Errorf("oracle result: %w", err)
	}
	return n, nil
}
