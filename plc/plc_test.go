package plc

import "testing"

func TestNextDeterministicSequence(t *testing.T) {
	// The 100th value after reset must be reproducible by any conforming
	// implementation of the same recurrence (spec.md §8); pin the actual
	// computed value rather than comparing the formula against itself, so
	// a regression in the recurrence itself is caught.
	const want = 43603
	seed := seedInit
	for i := 0; i < 100; i++ {
		seed = Next(seed)
	}
	if seed != want {
		t.Fatalf("Next applied 100 times from seedInit = %d, want %d", seed, want)
	}
}

func TestAlphaMonotonicDecreasing(t *testing.T) {
	s := NewState()
	s.Good([]float64{1, 2, 3})
	prev := 1.0
	for i := 0; i < 12; i++ {
		s.Conceal()
		if s.Alpha() > prev {
			t.Fatalf("alpha increased: %v > %v at iteration %d", s.Alpha(), prev, i)
		}
		prev = s.Alpha()
	}
}

func TestGoodResetsCountAndAlpha(t *testing.T) {
	s := NewState()
	s.Good([]float64{1, 2})
	for i := 0; i < 10; i++ {
		s.Conceal()
	}
	if s.Alpha() == 1 {
		t.Fatalf("alpha should have faded after concealment")
	}
	s.Good([]float64{1, 2})
	if s.Count() != 1 {
		t.Errorf("Count() = %d, want 1", s.Count())
	}
	if s.Alpha() != 1 {
		t.Errorf("Alpha() = %v, want 1", s.Alpha())
	}
}

func TestConcealPreservesLineCount(t *testing.T) {
	s := NewState()
	lines := []float64{0.5, -0.3, 0.1, 0.9}
	s.Good(lines)
	out := s.Conceal()
	if len(out) != len(lines) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(lines))
	}
}

func TestConcealNilWithoutGoodFrame(t *testing.T) {
	s := NewState()
	if out := s.Conceal(); out != nil {
		t.Errorf("Conceal() = %v, want nil before any Good frame", out)
	}
}
