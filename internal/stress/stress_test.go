package stress

import (
	"errors"
	"testing"
)

func TestCPU_Deterministic(t *testing.T) {
	r1, _ := CPU(100000)
	r2, _ := CPU(100000)
	if r1 != r2 {
		t.Fatalf("CPU not deterministic: %d != %d", r1, r2)
	}
}

func TestCPU_Boundaries(t *testing.T) {
	if r, _ := CPU(0); r != 0 {
		t.Fatalf("CPU(0)=%d, want 0", r)
	}
	// 0 + 1 + 4 + 9 = 14
	if r, _ := CPU(4); r != 14 {
		t.Fatalf("CPU(4)=%d, want 14", r)
	}
}

func TestCPU_ElapsedNonNegative(t *testing.T) {
	_, elapsed := CPU(1000)
	if elapsed < 0 {
		t.Fatalf("elapsed=%s", elapsed)
	}
}

func TestMemory_AllocatesExactly(t *testing.T) {
	allocated, elapsed, err := Memory(2)
	if err != nil {
		t.Fatalf("Memory(2): %v", err)
	}
	if allocated != 2*1024*1024 {
		t.Fatalf("allocated=%d, want %d", allocated, 2*1024*1024)
	}
	if elapsed < 0 {
		t.Fatalf("elapsed=%s", elapsed)
	}
}

func TestMemory_Boundaries(t *testing.T) {
	if _, _, err := Memory(MaxMemoryMB); err != nil {
		t.Fatalf("Memory(%d): %v", MaxMemoryMB, err)
	}
	if _, _, err := Memory(MaxMemoryMB + 1); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("Memory(%d) err=%v, want ErrTooLarge", MaxMemoryMB+1, err)
	}
	if _, _, err := Memory(-1); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("Memory(-1) err=%v, want ErrTooLarge", err)
	}
	if allocated, _, err := Memory(0); err != nil || allocated != 0 {
		t.Fatalf("Memory(0)=%d err=%v", allocated, err)
	}
}
