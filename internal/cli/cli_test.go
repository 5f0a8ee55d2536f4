package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/govalues/bigint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs a fresh command tree with args and returns its standard output
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"123", "+", "-23"}, "100\n"},
		{[]string{"-7", "/", "2"}, "-3\n"},
		{[]string{"-7", "%", "2"}, "-1\n"},
		{[]string{"999", "*", "999"}, "998001\n"},
		{[]string{"2", "^", "10"}, "1024\n"},
		{[]string{"-0", "-", "0"}, "0\n"},
	}
	for _, tt := range tests {
		got, err := execute(t, "", append([]string{"eval"}, tt.args...)...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, got, tt.args)
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		args []string
		want error
	}{
		{[]string{"1", "/", "0"}, bigint.ErrDivisionByZero},
		{[]string{"2", "^", "-1"}, bigint.ErrNegativeExponent},
		{[]string{"1x", "+", "1"}, bigint.ErrInvalidDigit},
		{[]string{"1", "+", "+1"}, bigint.ErrInvalidDigit},
	}
	for _, tt := range tests {
		_, err := execute(t, "", append([]string{"eval"}, tt.args...)...)
		assert.ErrorIs(t, err, tt.want, tt.args)
	}

	_, err := execute(t, "", "eval", "1", "&", "1")
	assert.ErrorContains(t, err, "unknown operator")

	_, err = execute(t, "", "eval", "1", "+")
	assert.Error(t, err)
}

func TestCalc(t *testing.T) {
	got, err := execute(t, "", "calc", "* 10 + 123 456", "^ 2 64")
	require.NoError(t, err)
	assert.Equal(t, "5790\n18446744073709551616\n", got)

	got, err = execute(t, "- ^ 2 64 1\n\n  % -7 2  \n- ^ 2 64 1\n", "calc")
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551615\n-1\n18446744073709551615\n", got)

	_, err = execute(t, "/ 1 0\n", "calc")
	assert.ErrorIs(t, err, bigint.ErrDivisionByZero)
}

func TestPow(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "answer.txt")
	db := filepath.Join(dir, "journal.db")

	got, err := execute(t, "", "pow", "2", "100", "--out", out, "--journal", db)
	require.NoError(t, err)
	assert.Contains(t, got, "2^100 has 31 digits")

	answer, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(answer), "2^100 = 1267650600228229401496703205376\n\ntime = "), string(answer))

	got, err = execute(t, "", "history", "--journal", db)
	require.NoError(t, err)
	assert.Contains(t, got, "2^100 = 12676506002282294014... (31 digits)")
}

func TestPowErrors(t *testing.T) {
	out := filepath.Join(t.TempDir(), "answer.txt")

	_, err := execute(t, "", "pow", "2", "--out", out, "--", "-1")
	assert.ErrorIs(t, err, bigint.ErrNegativeExponent)

	_, err = execute(t, "", "pow", "2x", "3", "--out", out)
	assert.ErrorIs(t, err, bigint.ErrInvalidDigit)

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	errorsFile := filepath.Join(dir, "errors.txt")
	db := filepath.Join(dir, "journal.db")

	got, err := execute(t, "", "check",
		"--iterations", "100", "--range", "1000", "--digits", "25",
		"--seed", "42", "--workers", "2",
		"--errors", errorsFile, "--journal", db,
	)
	require.NoError(t, err)
	assert.Contains(t, got, "seed 42: 1200 checks, 0 mismatches")

	content, err := os.ReadFile(errorsFile)
	require.NoError(t, err)
	assert.Empty(t, content)

	got, err = execute(t, "", "history", "--journal", db)
	require.NoError(t, err)
	assert.Contains(t, got, "seed 42: 1200 checks, 0 mismatches")
}

func TestCheckConfigFile(t *testing.T) {
	dir := t.TempDir()
	errorsFile := filepath.Join(dir, "mismatches.txt")
	configFile := filepath.Join(dir, "bigcalc.yaml")
	content := "check:\n  iterations: 10\n  digits: 0\n  seed: 7\n  workers: 1\n  errors_file: " + errorsFile + "\n"
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	got, err := execute(t, "", "check", "--config", configFile)
	require.NoError(t, err)
	assert.Contains(t, got, "seed 7: 60 checks, 0 mismatches")

	_, err = os.Stat(errorsFile)
	assert.NoError(t, err)
}

func TestCheckInvalidConfig(t *testing.T) {
	_, err := execute(t, "", "check", "--iterations", "0", "--errors", filepath.Join(t.TempDir(), "e.txt"))
	assert.ErrorContains(t, err, "iterations")
}

func TestHistoryRequiresJournal(t *testing.T) {
	_, err := execute(t, "", "history")
	assert.ErrorContains(t, err, "no journal")
}

func TestVersion(t *testing.T) {
	got, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, got, "bigcalc version "+version)
	assert.Contains(t, got, "Go version: go")
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "123", preview("123"))
	assert.Equal(t, "12345678901234567890", preview("12345678901234567890"))
	assert.Equal(t, "12345678901234567890...", preview("123456789012345678901"))
}
