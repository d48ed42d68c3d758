package antlr

import "testing"

func TestPredictionModeHasNonConflictingAltSet(t *testing.T) {
	sets := []map[int]bool{{1: true, 2: true}, {1: true}}
	if !predictionModeHasNonConflictingAltSet(sets) {
		t.Fatalf("a singleton alt set should count as non-conflicting")
	}
	if predictionModeHasNonConflictingAltSet([]map[int]bool{{1: true, 2: true}}) {
		t.Fatalf("no set has size 1, so there should be no non-conflicting set")
	}
}

func TestPredictionModeAllSubsetsConflict(t *testing.T) {
	if predictionModeAllSubsetsConflict([]map[int]bool{{1: true}}) {
		t.Fatalf("a singleton alt set resolves prediction, so not every subset conflicts")
	}
	if !predictionModeAllSubsetsConflict([]map[int]bool{{1: true, 2: true}, {1: true, 2: true}}) {
		t.Fatalf("two ambiguous sets with no singleton should report all-conflict")
	}
}

func TestPredictionModeGetUniqueAlt(t *testing.T) {
	if got := predictionModeGetUniqueAlt([]map[int]bool{{1: true}, {1: true}}); got != 1 {
		t.Fatalf("expected unique alt 1, got %d", got)
	}
	if got := predictionModeGetUniqueAlt([]map[int]bool{{1: true}, {2: true}}); got != ATNInvalidAltNumber {
		t.Fatalf("expected ATNInvalidAltNumber for disagreeing alts, got %d", got)
	}
}

func TestPredictionModeResolvesToJustOneViableAltFromSet(t *testing.T) {
	sets := []map[int]bool{{1: true, 3: true}, {1: true, 2: true}}
	if got := predictionModeResolvesToJustOneViableAltFromSet(sets); got != 1 {
		t.Fatalf("expected the shared minimum alt 1, got %d", got)
	}
	sets2 := []map[int]bool{{1: true}, {2: true}}
	if got := predictionModeResolvesToJustOneViableAltFromSet(sets2); got != ATNInvalidAltNumber {
		t.Fatalf("expected no resolution when minimums disagree, got %d", got)
	}
}

func TestPredictionModeGetSingleViableAlt(t *testing.T) {
	if got := predictionModeGetSingleViableAlt(map[int]SemanticContext{1: SemanticContextNone}); got != 1 {
		t.Fatalf("expected the sole alt 1, got %d", got)
	}
	multi := map[int]SemanticContext{1: SemanticContextNone, 2: SemanticContextNone}
	if got := predictionModeGetSingleViableAlt(multi); got != ATNInvalidAltNumber {
		t.Fatalf("expected ATNInvalidAltNumber for multiple alts, got %d", got)
	}
}

func TestPredictionModeAllConfigsInRuleStopStates(t *testing.T) {
	set := NewATNConfigSet(false)
	ctx := NewSingletonPredictionContext(EmptyPredictionContext, 10)
	stop := NewRuleStopState()
	stop.SetStateNumber(0)
	set.Add(NewATNConfig(stop, 1, ctx, nil), nil)
	if !predictionModeAllConfigsInRuleStopStates(set) {
		t.Fatalf("a config set entirely at RuleStopStates should report true")
	}

	set.Add(NewATNConfig(newTestBasicState(1), 2, ctx, nil), nil)
	if predictionModeAllConfigsInRuleStopStates(set) {
		t.Fatalf("adding a non-stop-state config should flip the result to false")
	}
}

func TestPredictionModeGetAltThatFinishedDecisionEntryRule(t *testing.T) {
	set := NewATNConfigSet(false)
	ctx := NewSingletonPredictionContext(EmptyPredictionContext, 10)
	stop := NewRuleStopState()
	stop.SetStateNumber(0)
	set.Add(NewATNConfig(stop, 3, ctx, nil), nil)
	set.Add(NewATNConfig(newTestBasicState(1), 4, ctx, nil), nil)

	if got := predictionModeGetAltThatFinishedDecisionEntryRule(set); got != 3 {
		t.Fatalf("expected alt 3 (the one that reached RuleStopState), got %d", got)
	}
}

func TestPredictionModeGetConflictingAltSubsets(t *testing.T) {
	set := NewATNConfigSet(false)
	ctx := NewSingletonPredictionContext(EmptyPredictionContext, 10)
	s1 := newTestBasicState(1)
	set.Add(NewATNConfig(s1, 1, ctx, nil), nil)
	set.Add(NewATNConfig(s1, 2, ctx, nil), nil)

	subsets := predictionModeGetConflictingAltSubsets(set)
	if len(subsets) != 1 {
		t.Fatalf("expected one state's worth of alt subsets, got %d", len(subsets))
	}
	if len(subsets[0]) != 2 || !subsets[0][1] || !subsets[0][2] {
		t.Fatalf("expected the single state's subset to contain alts {1,2}, got %v", subsets[0])
	}
}
