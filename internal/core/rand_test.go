package core

import "testing"

func TestSeededSourceDeterministic(t *testing.T) {
	a := NewSeededSource("HELLO")
	b := NewSeededSource("HELLO")

	for i := 0; i < 100; i++ {
		va, vb := a.Between(0, 100), b.Between(0, 100)
		if va != vb {
			t.Fatalf("draw %d differs: %d vs %d", i, va, vb)
		}
	}
}

func TestSeededSourceDiffersBySeed(t *testing.T) {
	a := NewSeededSource("HELLO")
	b := NewSeededSource("WORLD")

	same := 0
	for i := 0; i < 50; i++ {
		if a.Between(0, 1000) == b.Between(0, 1000) {
			same++
		}
	}
	if same == 50 {
		t.Error("different seeds should produce different sequences")
	}
}

func TestBetweenInclusiveRange(t *testing.T) {
	r := NewRNG(12345)
	seen := make(map[int]bool)

	for i := 0; i < 2000; i++ {
		v := r.Between(3, 7)
		if v < 3 || v > 7 {
			t.Fatalf("Between(3, 7) = %d, out of range", v)
		}
		seen[v] = true
	}

	// Both endpoints must be reachable
	for v := 3; v <= 7; v++ {
		if !seen[v] {
			t.Errorf("value %d never produced", v)
		}
	}
}

func TestBetweenDegenerateRange(t *testing.T) {
	r := NewRNG(1)

	if r.Between(5, 5) != 5 {
		t.Error("Between(5, 5) should be 5")
	}
	if r.Between(9, 2) != 9 {
		t.Error("Between with max < min should return min")
	}
}

func TestIntnNonPositive(t *testing.T) {
	r := NewRNG(1)
	if r.Intn(0) != 0 || r.Intn(-3) != 0 {
		t.Error("Intn with n <= 0 should return 0")
	}
}

func TestZeroSeedUsable(t *testing.T) {
	r := NewRNG(0)
	if r.Next() == 0 {
		t.Error("zero seed should be replaced with a non-zero state")
	}
}
