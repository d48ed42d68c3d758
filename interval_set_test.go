package antlr

import "testing"

func TestIntervalSetAddRangeMergesAdjacent(t *testing.T) {
	s := NewIntervalSet()
	s.AddRange(1, 3)
	s.AddRange(4, 6)
	if got := s.GetIntervals(); len(got) != 1 || got[0] != (Interval{Start: 1, Stop: 6}) {
		t.Fatalf("expected single merged interval [1,6], got %v", got)
	}
}

func TestIntervalSetAddRangeMergesOverlapping(t *testing.T) {
	s := NewIntervalSet()
	s.AddRange(5, 10)
	s.AddRange(1, 6)
	if got := s.GetIntervals(); len(got) != 1 || got[0] != (Interval{Start: 1, Stop: 10}) {
		t.Fatalf("expected merged interval [1,10], got %v", got)
	}
}

func TestIntervalSetAddRangeKeepsDisjointSorted(t *testing.T) {
	s := NewIntervalSet()
	s.AddRange(10, 12)
	s.AddRange(1, 3)
	s.AddRange(20, 22)
	want := []Interval{{1, 3}, {10, 12}, {20, 22}}
	got := s.GetIntervals()
	if len(got) != len(want) {
		t.Fatalf("expected %d intervals, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("interval %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestIntervalSetContains(t *testing.T) {
	s := NewIntervalSetFromRange(5, 10)
	for v := 5; v <= 10; v++ {
		if !s.Contains(v) {
			t.Fatalf("expected set to contain %d", v)
		}
	}
	if s.Contains(4) || s.Contains(11) {
		t.Fatalf("set should not contain values outside [5,10]")
	}
}

func TestIntervalSetRemoveOneSplits(t *testing.T) {
	s := NewIntervalSetFromRange(1, 10)
	s.RemoveOne(5)
	if s.Contains(5) {
		t.Fatalf("5 should have been removed")
	}
	if !s.Contains(4) || !s.Contains(6) {
		t.Fatalf("removing the middle of a range should preserve its neighbours")
	}
}

func TestIntervalSetComplement(t *testing.T) {
	s := NewIntervalSetFromRange(3, 5)
	comp := s.Complement(1, 10)
	for _, v := range []int{1, 2, 6, 7, 8, 9, 10} {
		if !comp.Contains(v) {
			t.Fatalf("complement should contain %d", v)
		}
	}
	for v := 3; v <= 5; v++ {
		if comp.Contains(v) {
			t.Fatalf("complement should not contain %d", v)
		}
	}
}

func TestIntervalSetAddSetUnion(t *testing.T) {
	a := NewIntervalSetFromRange(1, 3)
	b := NewIntervalSetFromRange(10, 12)
	a.AddSet(b)
	if !a.Contains(2) || !a.Contains(11) {
		t.Fatalf("union should contain members of both operands")
	}
	if a.Contains(5) {
		t.Fatalf("union should not contain values outside either operand")
	}
}

func TestIntervalSetReadOnlyPanics(t *testing.T) {
	s := NewIntervalSet()
	s.SetReadOnly(true)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected AddRange on a read-only set to panic")
		}
	}()
	s.AddRange(1, 2)
}
