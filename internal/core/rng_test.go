package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}
}

func TestRNGZeroSeed(t *testing.T) {
	r := NewRNG(0)
	if r.Next() == 0 {
		t.Error("zero seed must not produce a stuck generator")
	}
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		f := r.Float()
		if f < 0 || f >= 1 {
			t.Fatalf("Float() = %v, out of [0, 1)", f)
		}
		n := r.Intn(5)
		if n < 0 || n >= 5 {
			t.Fatalf("Intn(5) = %d", n)
		}
	}
	if r.Intn(0) != 0 || r.Intn(-3) != 0 {
		t.Error("Intn of a non-positive bound must be 0")
	}
}

func TestIndexSentinel(t *testing.T) {
	r := NewRNG(1)

	tests := []struct {
		name    string
		weights []float64
	}{
		{"nil", nil},
		{"empty", []float64{}},
		{"all zero", []float64{0, 0, 0}},
		{"all negative", []float64{-1, -2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Index(tc.weights); got != -1 {
				t.Errorf("Index(%v) = %d, want -1", tc.weights, got)
			}
		})
	}
}

func TestIndexSkipsNonPositive(t *testing.T) {
	r := NewRNG(99)
	weights := []float64{0, 3, -5, 1, 0}

	counts := make([]int, len(weights))
	for i := 0; i < 4000; i++ {
		idx := r.Index(weights)
		if idx < 0 {
			t.Fatalf("unexpected sentinel for %v", weights)
		}
		counts[idx]++
	}

	if counts[0] != 0 || counts[2] != 0 || counts[4] != 0 {
		t.Errorf("non-positive weights were picked: %v", counts)
	}
	// Weight 3 against weight 1: expect roughly 3000 against 1000.
	if counts[1] < 2500 || counts[3] < 700 {
		t.Errorf("distribution looks wrong: %v", counts)
	}
}

func TestIndexSingleWeight(t *testing.T) {
	r := NewRNG(5)
	for i := 0; i < 50; i++ {
		if got := r.Index([]float64{0, 0, 2}); got != 2 {
			t.Fatalf("Index = %d, want 2", got)
		}
	}
}

func TestActionKinds(t *testing.T) {
	for _, a := range []Action{ActionNorth, ActionEast, ActionSouth, ActionWest} {
		if !a.IsMove() || a.IsElement() {
			t.Errorf("%v should be a move", a)
		}
	}
	for _, a := range []Action{ActionAir, ActionFire, ActionIce, ActionPlant, ActionStone, ActionWater} {
		if !a.IsElement() || a.IsMove() {
			t.Errorf("%v should be an element", a)
		}
	}
	if ActionQuit.IsMove() || ActionQuit.IsElement() {
		t.Error("quit is neither")
	}
	if Action(999).String() != "Unknown" {
		t.Error("unknown action name")
	}
}
