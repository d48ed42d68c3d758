package antlr

import "testing"

func newTestBasicState(num int) *BasicState {
	s := NewBasicState()
	s.SetStateNumber(num)
	return s
}

func TestATNConfigSetMergesSameKeyDifferentContext(t *testing.T) {
	set := NewATNConfigSet(false)
	s1 := newTestBasicState(1)

	ctxA := NewSingletonPredictionContext(EmptyPredictionContext, 10)
	ctxB := NewSingletonPredictionContext(EmptyPredictionContext, 20)

	added1 := set.Add(NewATNConfig(s1, 1, ctxA, nil), nil)
	added2 := set.Add(NewATNConfig(s1, 1, ctxB, nil), nil)

	if !added1 {
		t.Fatalf("first insert of a fresh key should report added")
	}
	if added2 {
		t.Fatalf("second insert sharing (state,alt,semctx) should merge, not add")
	}
	if set.Length() != 1 {
		t.Fatalf("expected one merged config, got %d", set.Length())
	}
	merged := set.GetItems()[0]
	if merged.Context.Length() != 2 {
		t.Fatalf("merged context should carry both return states, got length %d", merged.Context.Length())
	}
}

func TestATNConfigSetKeepsDistinctAlts(t *testing.T) {
	set := NewATNConfigSet(false)
	s1 := newTestBasicState(1)
	ctx := NewSingletonPredictionContext(EmptyPredictionContext, 10)

	set.Add(NewATNConfig(s1, 1, ctx, nil), nil)
	set.Add(NewATNConfig(s1, 2, ctx, nil), nil)

	if set.Length() != 2 {
		t.Fatalf("configs differing only by alt must stay distinct, got length %d", set.Length())
	}
}

func TestATNConfigSetHasSemanticContext(t *testing.T) {
	set := NewATNConfigSet(false)
	s1 := newTestBasicState(1)
	ctx := NewSingletonPredictionContext(EmptyPredictionContext, 10)

	set.Add(NewATNConfig(s1, 1, ctx, nil), nil)
	if set.HasSemanticContext() {
		t.Fatalf("a config with the default SemanticContextNone should not set HasSemanticContext")
	}

	pred := &PredicateContext{RuleIndex: 0, PredIndex: 1}
	set.Add(NewATNConfig(s1, 2, ctx, pred), nil)
	if !set.HasSemanticContext() {
		t.Fatalf("adding a config with a real predicate should set HasSemanticContext")
	}
}

func TestATNConfigSetReadOnlyPanics(t *testing.T) {
	set := NewATNConfigSet(false)
	set.SetReadOnly(true)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Add on a read-only config set to panic")
		}
	}()
	s1 := newTestBasicState(1)
	set.Add(NewATNConfig(s1, 1, EmptyPredictionContext, nil), nil)
}

func TestATNConfigSetClonePreservesFlags(t *testing.T) {
	set := NewATNConfigSet(false)
	s1 := newTestBasicState(1)
	pred := &PredicateContext{RuleIndex: 0, PredIndex: 1}
	set.Add(NewATNConfig(s1, 1, EmptyPredictionContext, pred), nil)
	set.SetUniqueAlt(1)

	clone := set.Clone()
	if clone.Length() != set.Length() {
		t.Fatalf("clone should carry the same number of configs")
	}
	if !clone.HasSemanticContext() {
		t.Fatalf("clone should preserve HasSemanticContext")
	}
	if clone.GetUniqueAlt() != 1 {
		t.Fatalf("clone should preserve UniqueAlt")
	}
}
