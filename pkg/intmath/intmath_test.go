package intmath

import (
	"math"
	"strconv"
	"testing"
)

func TestAddOverflow(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		want     int
		overflow bool
	}{
		{"simple", 1, 2, 3, false},
		{"negatives", -5, -7, -12, false},
		{"mixed", -5, 7, 2, false},
		{"max plus zero", math.MaxInt, 0, math.MaxInt, false},
		{"max plus one", math.MaxInt, 1, math.MinInt, true},
		{"min plus min", math.MinInt, math.MinInt, 0, true},
		{"min plus max", math.MinInt, math.MaxInt, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, overflow := AddOverflow(tt.x, tt.y)
			if got != tt.want || overflow != tt.overflow {
				t.Errorf("AddOverflow(%d, %d) = (%d, %v), want (%d, %v)",
					tt.x, tt.y, got, overflow, tt.want, tt.overflow)
			}
		})
	}
}

func TestSubOverflow(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		want     int
		overflow bool
	}{
		{"simple", 5, 3, 2, false},
		{"negative result", 3, 5, -2, false},
		{"min minus zero", math.MinInt, 0, math.MinInt, false},
		{"min minus one", math.MinInt, 1, math.MaxInt, true},
		{"max minus min", math.MaxInt, math.MinInt, -1, true},
		{"zero minus min", 0, math.MinInt, math.MinInt, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, overflow := SubOverflow(tt.x, tt.y)
			if got != tt.want || overflow != tt.overflow {
				t.Errorf("SubOverflow(%d, %d) = (%d, %v), want (%d, %v)",
					tt.x, tt.y, got, overflow, tt.want, tt.overflow)
			}
		})
	}
}

func TestMulOverflow(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		want     int
		overflow bool
	}{
		{"simple", 6, 7, 42, false},
		{"by zero", math.MaxInt, 0, 0, false},
		{"zero by", 0, math.MinInt, 0, false},
		{"negatives", -6, -7, 42, false},
		{"max by one", math.MaxInt, 1, math.MaxInt, false},
		{"max by two", math.MaxInt, 2, -2, true},
		{"min by minus one", math.MinInt, -1, math.MinInt, true},
		{"minus one by min", -1, math.MinInt, math.MinInt, true},
		{"min by two", math.MinInt, 2, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, overflow := MulOverflow(tt.x, tt.y)
			if got != tt.want || overflow != tt.overflow {
				t.Errorf("MulOverflow(%d, %d) = (%d, %v), want (%d, %v)",
					tt.x, tt.y, got, overflow, tt.want, tt.overflow)
			}
		})
	}
}

func TestBswap(t *testing.T) {
	if got := Bswap(Bswap(0x12345678)); got != 0x12345678 {
		t.Errorf("Bswap(Bswap(x)) = %#x, want %#x", got, 0x12345678)
	}

	if strconv.IntSize == 64 {
		if got := Bswap(0x0102030405060708); got != int(int64(0x0807060504030201)) {
			t.Errorf("Bswap = %#x, want %#x", got, int64(0x0807060504030201))
		}
	}

	if got := Bswap(0); got != 0 {
		t.Errorf("Bswap(0) = %#x, want 0", got)
	}
	if got := Bswap(-1); got != -1 {
		t.Errorf("Bswap(-1) = %#x, want -1", got)
	}
}

func TestByteOrderConversions(t *testing.T) {
	const x = 0x11223344

	// Exactly one of ToBE/ToLE is the identity on any given target, and
	// the other must be a byte swap.
	be, le := ToBE(x), ToLE(x)
	if be == x && le == x {
		t.Fatal("ToBE and ToLE are both the identity")
	}
	if be != x && le != x {
		t.Fatal("neither ToBE nor ToLE is the identity")
	}
	if be != x && be != Bswap(x) {
		t.Errorf("ToBE(%#x) = %#x, want %#x", x, be, Bswap(x))
	}
	if le != x && le != Bswap(x) {
		t.Errorf("ToLE(%#x) = %#x, want %#x", x, le, Bswap(x))
	}

	// Round trips are the identity either way.
	if got := ToBE(ToBE(x)); got != x {
		t.Errorf("ToBE(ToBE(x)) = %#x, want %#x", got, x)
	}
	if got := ToLE(ToLE(x)); got != x {
		t.Errorf("ToLE(ToLE(x)) = %#x, want %#x", got, x)
	}
}
