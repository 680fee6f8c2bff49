package core

import "testing"

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}
}

func TestCopyInto(t *testing.T) {
	dst := make([]float64, 2)

	n := CopyInto(dst, []float64{1, 2, 3})
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}

	if dst[0] != 1 || dst[1] != 2 {
		t.Fatalf("unexpected dst: %#v", dst)
	}
}

func TestZero(t *testing.T) {
	buf := []float64{1, 2, 3}
	Zero(buf)

	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}
}

func TestTimeGridSpacing(t *testing.T) {
	fs := 250.0

	grid := TimeGrid(100, fs)
	if len(grid) != 100 {
		t.Fatalf("len = %d, want 100", len(grid))
	}

	if grid[0] != 0 {
		t.Fatalf("grid[0] = %v, want 0", grid[0])
	}

	for i := 1; i < len(grid); i++ {
		dt := grid[i] - grid[i-1]
		if !NearlyEqual(dt, 1/fs, 1e-12) {
			t.Fatalf("spacing at %d = %v, want %v", i, dt, 1/fs)
		}
	}
}

func TestTimeGridInvalid(t *testing.T) {
	if TimeGrid(0, 100) != nil {
		t.Fatal("expected nil for n=0")
	}

	if TimeGrid(10, 0) != nil {
		t.Fatal("expected nil for zero sample rate")
	}
}
