package antlr

import "testing"

func TestNewDFADetectsPrecedenceDecision(t *testing.T) {
	loop := NewStarLoopEntryState()
	loop.IsPrecedenceDecision = true
	d := NewDFA(loop, 0)
	if !d.Precedence {
		t.Fatalf("a StarLoopEntryState with IsPrecedenceDecision should mark the DFA as a precedence decision")
	}
	if d.GetPrecedenceStartState(0) != nil {
		t.Fatalf("a fresh precedence DFA should have no cached start state yet")
	}
}

func TestNewDFAPlainStateIsNotPrecedence(t *testing.T) {
	d := NewDFA(newTestBasicState(1), 0)
	if d.Precedence {
		t.Fatalf("a plain BasicState start should not mark the DFA as a precedence decision")
	}
}

func TestDFASetAndGetS0(t *testing.T) {
	d := NewDFA(newTestBasicState(1), 0)
	if d.GetS0() != nil {
		t.Fatalf("a fresh DFA should have a nil s0")
	}
	s := NewDFAState(0, nil)
	d.SetS0(s)
	if d.GetS0() != s {
		t.Fatalf("GetS0 should return the state passed to SetS0")
	}
}

func TestDFAPrecedenceStartStatePerLevel(t *testing.T) {
	loop := NewStarLoopEntryState()
	loop.IsPrecedenceDecision = true
	d := NewDFA(loop, 0)

	low := NewDFAState(0, nil)
	high := NewDFAState(0, nil)
	d.SetPrecedenceStartState(1, low)
	d.SetPrecedenceStartState(2, high)

	if d.GetPrecedenceStartState(1) != low {
		t.Fatalf("expected the level-1 start state back")
	}
	if d.GetPrecedenceStartState(2) != high {
		t.Fatalf("expected the level-2 start state back")
	}
	if d.GetPrecedenceStartState(3) != nil {
		t.Fatalf("an unset precedence level should report nil")
	}
}

func TestDFAAddStateInternsEqualStates(t *testing.T) {
	d := NewDFA(newTestBasicState(1), 0)
	s1 := newTestBasicState(5)

	ctx := NewSingletonPredictionContext(EmptyPredictionContext, 10)
	configsA := NewATNConfigSet(false)
	configsA.Add(NewATNConfig(s1, 1, ctx, nil), nil)
	configsB := NewATNConfigSet(false)
	configsB.Add(NewATNConfig(s1, 1, ctx, nil), nil)

	added := d.AddState(NewDFAState(-1, configsA))
	same := d.AddState(NewDFAState(-1, configsB))

	if added != same {
		t.Fatalf("two states over structurally equal config sets should intern to the same pointer")
	}
	if d.NumStates() != 1 {
		t.Fatalf("interning an equal state must not grow NumStates, got %d", d.NumStates())
	}
}

func TestDFAAddStateAssignsDistinctNumbers(t *testing.T) {
	d := NewDFA(newTestBasicState(1), 0)
	s1 := newTestBasicState(5)
	s2 := newTestBasicState(6)

	ctx := NewSingletonPredictionContext(EmptyPredictionContext, 10)
	configsA := NewATNConfigSet(false)
	configsA.Add(NewATNConfig(s1, 1, ctx, nil), nil)
	configsB := NewATNConfigSet(false)
	configsB.Add(NewATNConfig(s2, 1, ctx, nil), nil)

	first := d.AddState(NewDFAState(-1, configsA))
	second := d.AddState(NewDFAState(-1, configsB))

	if first.GetStateNumber() == second.GetStateNumber() {
		t.Fatalf("structurally distinct states must get distinct state numbers")
	}
	if d.NumStates() != 2 {
		t.Fatalf("expected NumStates to grow to 2, got %d", d.NumStates())
	}
}

func TestDFAStringRendersEdges(t *testing.T) {
	d := NewDFA(newTestBasicState(1), 0)
	s1 := newTestBasicState(5)
	ctx := NewSingletonPredictionContext(EmptyPredictionContext, 10)

	configsA := NewATNConfigSet(false)
	configsA.Add(NewATNConfig(s1, 1, ctx, nil), nil)
	a := d.AddState(NewDFAState(-1, configsA))

	configsB := NewATNConfigSet(false)
	configsB.Add(NewATNConfig(s1, 2, ctx, nil), nil)
	b := d.AddState(NewDFAState(-1, configsB))
	b.SetAcceptState(true)
	b.Prediction = 2

	a.SetEdge(7, b)

	out := d.String(nil, nil)
	if out == "" {
		t.Fatalf("expected a non-empty rendering once an edge exists")
	}
}

func TestDFAStringEmptyWhenNoStates(t *testing.T) {
	d := NewDFA(newTestBasicState(1), 0)
	if d.String(nil, nil) != "" {
		t.Fatalf("a DFA with no interned states should render empty")
	}
}
