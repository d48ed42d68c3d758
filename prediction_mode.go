// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// Prediction resolution mode identifiers. ParserATNSimulator does not
// consult them: it always tries SLL first and falls back to full
// context when the SLL walk hits a conflict.
const (
	PredictionModeSLL = 0
	PredictionModeLL   = 1
	PredictionModeLLExactAmbigDetection = 2
)

// predictionModeResolvesToJustOneViableAlt returns the lone viable alt
// if every config in altToPred agrees on one, else ATNInvalidAltNumber.
func predictionModeResolvesToJustOneViableAlt(altToPred map[int]SemanticContext) int {
	return predictionModeGetSingleViableAlt(altToPred)
}

// predictionModeAllSubsetsConflict reports whether every alt subset in
// altSets contains more than one alternative - the condition that makes
// SLL prediction ambiguous rather than merely needing one more token.
func predictionModeAllSubsetsConflict(altSets []map[int]bool) bool {
	return !predictionModeHasNonConflictingAltSet(altSets)
}

// predictionModeHasNonConflictingAltSet reports whether some alt set
// contains exactly one alternative.
func predictionModeHasNonConflictingAltSet(altSets []map[int]bool) bool {
	for _, s := range altSets {
		if len(s) == 1 {
			return true
		}
	}
	return false
}

// predictionModeHasConflictingAltSet reports whether any alt set
// contains more than one alternative.
func predictionModeHasConflictingAltSet(altSets []map[int]bool) bool {
	for _, s := range altSets {
		if len(s) > 1 {
			return true
		}
	}
	return false
}

// predictionModeHasStateAssociatedWithOneAlt reports whether, across
// the config set's distinct ATN states, at least one state's configs
// agree on a single alt.
func predictionModeHasStateAssociatedWithOneAlt(configs *ATNConfigSet) bool {
	altSets := predictionModeGetConflictingAltSubsets(configs)
	return predictionModeHasNonConflictingAltSet(altSets)
}

// predictionModeGetConflictingAltSubsets groups configs by ATN state and
// returns, for each state, the set of alts reached there.
func predictionModeGetConflictingAltSubsets(configs *ATNConfigSet) []map[int]bool {
	stateToAlts := make(map[ATNState]map[int]bool)
	var order []ATNState
	for _, c := range configs.GetItems() {
		set, ok := stateToAlts[c.State]
		if !ok {
			set = make(map[int]bool)
			stateToAlts[c.State] = set
			order = append(order, c.State)
		}
		set[c.Alt] = true
	}
	out := make([]map[int]bool, len(order))
	for i, st := range order {
		out[i] = stateToAlts[st]
	}
	return out
}

// predictionModeGetStateToAltMap groups configs by ATN state and
// returns, for each state, the set of alts reached there, keyed by
// state for lookups that need random access rather than stable order.
func predictionModeGetStateToAltMap(configs *ATNConfigSet) map[ATNState]map[int]bool {
	out := make(map[ATNState]map[int]bool)
	for _, c := range configs.GetItems() {
		set, ok := out[c.State]
		if !ok {
			set = make(map[int]bool)
			out[c.State] = set
		}
		set[c.Alt] = true
	}
	return out
}

// predictionModeGetSingleViableAlt returns the only alt keyed in
// altToPred if exactly one is present, else ATNInvalidAltNumber; the
// predicates themselves are not consulted.
func predictionModeGetSingleViableAlt(altToPred map[int]SemanticContext) int {
	result := ATNInvalidAltNumber
	for alt := range altToPred {
		if result == ATNInvalidAltNumber {
			result = alt
		} else if result != alt {
			return ATNInvalidAltNumber
		}
	}
	return result
}

// predictionModeGetAltThatFinishedDecisionEntryRule returns the lowest
// alt among configs whose state is a RuleStopState (meaning that
// alternative's parse has already finished), ignoring configs that reach
// into the outer context, or ATNInvalidAltNumber if none has.
func predictionModeGetAltThatFinishedDecisionEntryRule(configs *ATNConfigSet) int {
	alts := NewIntervalSet()
	for _, c := range configs.GetItems() {
		if c.ReachesIntoOuterContext > 0 {
			continue
		}
		if _, ok := c.State.(*RuleStopState); ok {
			alts.AddOne(c.Alt)
		}
	}
	if alts.Length() == 0 {
		return ATNInvalidAltNumber
	}
	return alts.GetIntervals()[0].Start
}

// predictionModeGetUniqueAlt returns the single alt shared by every
// config, or ATNInvalidAltNumber if more than one is present.
func predictionModeGetUniqueAlt(altSets []map[int]bool) int {
	all := make(map[int]bool)
	for _, s := range altSets {
		for alt := range s {
			all[alt] = true
		}
	}
	if len(all) == 1 {
		for alt := range all {
			return alt
		}
	}
	return ATNInvalidAltNumber
}

// predictionModeAllConfigsInRuleStopStates reports whether every config
// has finished its rule, meaning the decision is fully resolved without
// further lookahead.
func predictionModeAllConfigsInRuleStopStates(configs *ATNConfigSet) bool {
	for _, c := range configs.GetItems() {
		if _, ok := c.State.(*RuleStopState); !ok {
			return false
		}
	}
	return true
}

// predictionModeResolvesToJustOneViableAltFromSet is the full-context
// (LL) resolution rule: collapse conflicting alt sets down to the
// minimum alt in each, then require exactly one survivor.
func predictionModeResolvesToJustOneViableAltFromSet(altSets []map[int]bool) int {
	minAlts := make(map[int]bool)
	for _, s := range altSets {
		minAlts[predictionModeMinAlt(s)] = true
	}
	if len(minAlts) == 1 {
		for alt := range minAlts {
			return alt
		}
	}
	return ATNInvalidAltNumber
}

func predictionModeMinAlt(s map[int]bool) int {
	min := -1
	for alt := range s {
		if min == -1 || alt < min {
			min = alt
		}
	}
	return min
}
