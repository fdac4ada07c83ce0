package bitgrid

import (
	"math/big"
	"testing"

	"github.com/bour278/collatz-automata/pkg/collatz"
)

func values(ns ...int64) []*big.Int {
	vs := make([]*big.Int, len(ns))
	for i, n := range ns {
		vs[i] = big.NewInt(n)
	}
	return vs
}

func TestEncodeShape(t *testing.T) {
	// 27 = 11011 (5 bits), 82 = 1010010 (7 bits), 41 = 101001 (6 bits).
	g := Encode(values(27, 82, 41))

	if got, want := g.Rows(), 3; got != want {
		t.Errorf("rows = %d, want %d", got, want)
	}
	if got, want := g.Cols(), 7; got != want {
		t.Errorf("cols = %d, want %d", got, want)
	}
}

func TestEncodeRow(t *testing.T) {
	g := Encode(values(27, 82))

	// Row 0: 11011 left-aligned, then two Unset columns.
	want := []Cell{One, One, Zero, One, One, Unset, Unset}
	for c, w := range want {
		if got := g.At(0, c); got != w {
			t.Errorf("At(0,%d) = %d, want %d", c, got, w)
		}
	}

	// Row 1: 1010010, fully occupied.
	want = []Cell{One, Zero, One, Zero, Zero, One, Zero}
	for c, w := range want {
		if got := g.At(1, c); got != w {
			t.Errorf("At(1,%d) = %d, want %d", c, got, w)
		}
	}
}

func TestEncodeSingleOne(t *testing.T) {
	g := Encode(values(1))

	if g.Rows() != 1 || g.Cols() != 1 {
		t.Fatalf("shape = %dx%d, want 1x1", g.Rows(), g.Cols())
	}
	if got := g.At(0, 0); got != One {
		t.Errorf("At(0,0) = %d, want One", got)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	res := collatz.TrajectoryInt(27, collatz.Standard)
	g := Encode(res.Values)

	if got, want := g.Rows(), len(res.Values); got != want {
		t.Fatalf("rows = %d, want %d", got, want)
	}
	for i, v := range res.Values {
		if rv := g.RowValue(i); rv.Cmp(v) != 0 {
			t.Errorf("RowValue(%d) = %v, want %v", i, rv, v)
		}
		if got, want := g.RowBits(i), v.BitLen(); got != want {
			t.Errorf("RowBits(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestEncodeWidthIsMaxBitLen(t *testing.T) {
	res := collatz.TrajectoryInt(97, collatz.Accelerated)
	g := Encode(res.Values)

	maxBits := 0
	for _, v := range res.Values {
		if v.BitLen() > maxBits {
			maxBits = v.BitLen()
		}
	}
	if got := g.Cols(); got != maxBits {
		t.Errorf("cols = %d, want %d", got, maxBits)
	}
}

func TestEncodeIdempotent(t *testing.T) {
	vs := values(7, 22, 11, 34, 17)
	a := Encode(vs)
	b := Encode(vs)

	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shapes differ: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	for r := 0; r < a.Rows(); r++ {
		for c := 0; c < a.Cols(); c++ {
			if a.At(r, c) != b.At(r, c) {
				t.Errorf("At(%d,%d) differs: %d vs %d", r, c, a.At(r, c), b.At(r, c))
			}
		}
	}
}

func TestEncodeEmpty(t *testing.T) {
	g := Encode(nil)
	if g.Rows() != 0 || g.Cols() != 0 {
		t.Errorf("shape = %dx%d, want 0x0", g.Rows(), g.Cols())
	}
}
