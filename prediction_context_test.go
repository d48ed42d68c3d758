package antlr

import "testing"

func TestSingletonPredictionContextEquality(t *testing.T) {
	a := NewSingletonPredictionContext(EmptyPredictionContext, 5)
	b := NewSingletonPredictionContext(EmptyPredictionContext, 5)
	if !a.Equals(b) {
		t.Fatalf("singletons with equal parent/returnState should be equal")
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("equal contexts must hash equally")
	}
	c := NewSingletonPredictionContext(EmptyPredictionContext, 6)
	if a.Equals(c) {
		t.Fatalf("singletons with different returnState must not be equal")
	}
}

func TestEmptyPredictionContext(t *testing.T) {
	if !EmptyPredictionContext.IsEmpty() {
		t.Fatalf("EmptyPredictionContext must report IsEmpty")
	}
	if EmptyPredictionContext.GetReturnState(0) != BasePredictionContextEmptyReturnState {
		t.Fatalf("EmptyPredictionContext's return state must be the sentinel")
	}
}

func TestMergeSingletonsSameReturnStateSharesParent(t *testing.T) {
	parent := NewSingletonPredictionContext(EmptyPredictionContext, 1)
	a := NewSingletonPredictionContext(parent, 9)
	b := NewSingletonPredictionContext(parent, 9)
	merged := MergePredictionContexts(a, b, false)
	if merged != a && !merged.Equals(a) {
		t.Fatalf("merging identical singletons should yield an equivalent singleton")
	}
	if merged.Length() != 1 {
		t.Fatalf("same return-state merge should stay a singleton, got length %d", merged.Length())
	}
}

func TestMergeSingletonsDifferentReturnStateProducesSortedArray(t *testing.T) {
	a := NewSingletonPredictionContext(EmptyPredictionContext, 20)
	b := NewSingletonPredictionContext(EmptyPredictionContext, 10)
	merged := MergePredictionContexts(a, b, false)
	arr, ok := merged.(*ArrayPredictionContext)
	if !ok {
		t.Fatalf("merging singletons with different return states must produce an ArrayPredictionContext, got %T", merged)
	}
	if arr.Length() != 2 || arr.GetReturnState(0) != 10 || arr.GetReturnState(1) != 20 {
		t.Fatalf("expected sorted return states [10,20], got %v", arr.returnStates)
	}
}

func TestMergeSingletonsEmptyWithRootWildcard(t *testing.T) {
	a := EmptyPredictionContext
	b := NewSingletonPredictionContext(EmptyPredictionContext, 7)
	merged := MergePredictionContexts(a, b, true)
	if !merged.IsEmpty() {
		t.Fatalf("rootIsWildcard merge with an empty operand should collapse to empty")
	}
}

func TestMergeSingletonsEmptyWithoutWildcardKeepsBothPaths(t *testing.T) {
	a := EmptyPredictionContext
	b := NewSingletonPredictionContext(EmptyPredictionContext, 7)
	merged := MergePredictionContexts(a, b, false)
	if merged.IsEmpty() {
		t.Fatalf("non-wildcard merge with an empty operand must preserve both the empty and non-empty path")
	}
	if !merged.HasEmptyPath() {
		t.Fatalf("merged context should still report an empty path present")
	}
}

func TestMergeArraysDedupesSharedReturnState(t *testing.T) {
	parent := NewSingletonPredictionContext(EmptyPredictionContext, 1)
	a := NewArrayPredictionContext([]PredictionContext{parent, nil}, []int{5, 9})
	b := NewArrayPredictionContext([]PredictionContext{parent, nil}, []int{5, 12})
	merged := MergePredictionContexts(a, b, false)
	arr, ok := merged.(*ArrayPredictionContext)
	if !ok {
		t.Fatalf("expected ArrayPredictionContext, got %T", merged)
	}
	if arr.Length() != 3 {
		t.Fatalf("expected the shared return state 5 to be deduped, got length %d (%v)", arr.Length(), arr.returnStates)
	}
}

func TestPredictionContextCacheInterns(t *testing.T) {
	cache := NewPredictionContextCache()
	a := NewSingletonPredictionContext(EmptyPredictionContext, 42)
	b := NewSingletonPredictionContext(EmptyPredictionContext, 42)
	sharedA := cache.GetAsShared(a)
	sharedB := cache.GetAsShared(b)
	if sharedA != sharedB {
		t.Fatalf("structurally equal contexts must intern to the same pointer")
	}
	if cache.Len() != 1 {
		t.Fatalf("expected exactly one interned entry, got %d", cache.Len())
	}
}
