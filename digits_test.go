package bigint

import (
	"math"
	"slices"
	"testing"
)

// digs converts a string of ASCII digits to digits without normalization.
func digs(s string) digits {
	z := make(digits, len(s))
	for i := range s {
		z[i] = s[i] - '0'
	}
	return z
}

func TestAdc(t *testing.T) {
	tests := []struct {
		x, y, c          int
		wantZ, wantCarry int
	}{
		{0, 0, 0, 0, 0},
		{1, 2, 0, 3, 0},
		{5, 5, 0, 0, 1},
		{9, 9, 1, 9, 1},
		{9, 0, 1, 0, 1},
		{0, -1, 0, 9, -1},
		{0, -9, -1, 0, -1},
		{3, -5, 0, 8, -1},
		{5, -5, 0, 0, 0},
		{5, -4, -1, 0, 0},
	}
	for _, tt := range tests {
		z, carry := adc(tt.x, tt.y, tt.c)
		if z != tt.wantZ || carry != tt.wantCarry {
			t.Errorf("adc(%v, %v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, tt.c, z, carry, tt.wantZ, tt.wantCarry)
		}
	}
}

func TestMulc(t *testing.T) {
	tests := []struct {
		x, y, c          byte
		wantZ, wantCarry byte
	}{
		{0, 0, 0, 0, 0},
		{2, 3, 0, 6, 0},
		{2, 5, 0, 0, 1},
		{9, 9, 0, 1, 8},
		{9, 9, 8, 9, 8},
		{0, 9, 7, 7, 0},
	}
	for _, tt := range tests {
		z, carry := mulc(tt.x, tt.y, tt.c)
		if z != tt.wantZ || carry != tt.wantCarry {
			t.Errorf("mulc(%v, %v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, tt.c, z, carry, tt.wantZ, tt.wantCarry)
		}
	}
}

func TestDigitsFromUint64(t *testing.T) {
	tests := []struct {
		u    uint64
		want digits
	}{
		{0, nil},
		{7, digits{7}},
		{120, digits{1, 2, 0}},
		{math.MaxUint64, digs("18446744073709551615")},
	}
	for _, tt := range tests {
		got := digitsFromUint64(tt.u)
		if !slices.Equal(got, tt.want) {
			t.Errorf("digitsFromUint64(%v) = %v, want %v", tt.u, got, tt.want)
		}
		u, ok := got.uint64()
		if !ok || u != tt.u {
			t.Errorf("%v.uint64() = (%v, %v), want (%v, true)", got, u, ok, tt.u)
		}
	}
}

func TestDigits_Uint64(t *testing.T) {
	tests := []string{"18446744073709551616", "99999999999999999999", "100000000000000000000"}
	for _, s := range tests {
		_, ok := digs(s).uint64()
		if ok {
			t.Errorf("%v.uint64() did not fail", s)
		}
	}
}

func TestDigits_Norm(t *testing.T) {
	tests := []struct {
		x, want string
	}{
		{"", ""},
		{"0", ""},
		{"000", ""},
		{"007", "7"},
		{"100", "100"},
	}
	for _, tt := range tests {
		got := digs(tt.x).norm()
		if !slices.Equal(got, digs(tt.want)) {
			t.Errorf("%q.norm() = %v, want %v", tt.x, got, digs(tt.want))
		}
		if len(tt.want) == 0 && got != nil {
			t.Errorf("%q.norm() = %v, want nil", tt.x, got)
		}
	}
}

func TestDigits_Cmp(t *testing.T) {
	tests := []struct {
		x, y string
		want int
	}{
		{"", "", 0},
		{"", "1", -1},
		{"1", "", 1},
		{"9", "10", -1},
		{"10", "9", 1},
		{"123", "123", 0},
		{"123", "124", -1},
		{"124", "123", 1},
		{"99999", "99998", 1},
	}
	for _, tt := range tests {
		got := digs(tt.x).cmp(digs(tt.y))
		if got != tt.want {
			t.Errorf("%q.cmp(%q) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDigits_Add(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"", "", ""},
		{"", "5", "5"},
		{"5", "", "5"},
		{"5", "5", "10"},
		{"999", "1", "1000"},
		{"1", "999", "1000"},
		{"123", "877", "1000"},
		{"45", "54", "99"},
	}
	for _, tt := range tests {
		got := digs(tt.x).add(digs(tt.y))
		if !slices.Equal(got, digs(tt.want)) {
			t.Errorf("%q.add(%q) = %v, want %v", tt.x, tt.y, got, digs(tt.want))
		}
	}
}

func TestDigits_Sub(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, y, want string
		}{
			{"", "", ""},
			{"5", "", "5"},
			{"5", "5", ""},
			{"10", "1", "9"},
			{"1000", "1", "999"},
			{"1000", "999", "1"},
			{"5000", "4321", "679"},
		}
		for _, tt := range tests {
			got := digs(tt.x).sub(digs(tt.y))
			if !slices.Equal(got, digs(tt.want)) {
				t.Errorf("%q.sub(%q) = %v, want %v", tt.x, tt.y, got, digs(tt.want))
			}
		}
	})

	t.Run("panic", func(t *testing.T) {
		tests := []struct {
			x, y string
		}{
			{"1", "2"},
			{"99", "100"},
			{"", "1"},
		}
		for _, tt := range tests {
			func() {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("%q.sub(%q) did not panic", tt.x, tt.y)
					}
				}()
				digs(tt.x).sub(digs(tt.y))
			}()
		}
	})
}

func TestDigits_MulDigit(t *testing.T) {
	tests := []struct {
		x     string
		y     byte
		shift int
		want  string
	}{
		{"", 5, 0, ""},
		{"123", 0, 2, ""},
		{"123", 1, 0, "123"},
		{"123", 9, 0, "1107"},
		{"999", 9, 2, "899100"},
	}
	for _, tt := range tests {
		got := digs(tt.x).mulDigit(tt.y, tt.shift)
		if !slices.Equal(got, digs(tt.want)) {
			t.Errorf("%q.mulDigit(%v, %v) = %v, want %v", tt.x, tt.y, tt.shift, got, digs(tt.want))
		}
	}
}

func TestDigits_Mul(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"", "123", ""},
		{"123", "", ""},
		{"999", "999", "998001"},
		{"12", "10", "120"},
		{"101", "101", "10201"},
	}
	for _, tt := range tests {
		got := digs(tt.x).mul(digs(tt.y))
		if !slices.Equal(got, digs(tt.want)) {
			t.Errorf("%q.mul(%q) = %v, want %v", tt.x, tt.y, got, digs(tt.want))
		}
	}
}

func TestDigits_QuoRem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, y, q, r string
		}{
			{"", "7", "", ""},
			{"6", "7", "", "6"},
			{"7", "7", "1", ""},
			{"100", "7", "14", "2"},
			{"1000", "10", "100", ""},
			{"998001", "999", "999", ""},
			{"998002", "999", "999", "1"},
			{"10000000000", "99999", "100001", "1"},
		}
		for _, tt := range tests {
			q, r := digs(tt.x).quoRem(digs(tt.y))
			if !slices.Equal(q, digs(tt.q)) || !slices.Equal(r, digs(tt.r)) {
				t.Errorf("%q.quoRem(%q) = (%v, %v), want (%v, %v)", tt.x, tt.y, q, r, digs(tt.q), digs(tt.r))
			}
		}
	})

	t.Run("panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("quoRem by zero did not panic")
			}
		}()
		digs("1").quoRem(nil)
	})
}

func TestDigits_QuoDigit(t *testing.T) {
	tests := []struct {
		x     string
		y     byte
		wantQ string
		wantR byte
	}{
		{"", 2, "", 0},
		{"1", 2, "", 1},
		{"10", 2, "5", 0},
		{"1001", 2, "500", 1},
		{"123456789", 9, "13717421", 0},
	}
	for _, tt := range tests {
		q, r := digs(tt.x).quoDigit(tt.y)
		if !slices.Equal(q, digs(tt.wantQ)) || r != tt.wantR {
			t.Errorf("%q.quoDigit(%v) = (%v, %v), want (%v, %v)", tt.x, tt.y, q, r, digs(tt.wantQ), tt.wantR)
		}
	}
}
