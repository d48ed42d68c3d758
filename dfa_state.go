// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// PredPrediction pairs a predicate with the alternative it guards,
// used by a DFA accept state whose prediction is conditional on
// semantic predicates rather than unconditionally resolved.
type PredPrediction struct {
	Pred SemanticContext
	Alt  int
}

// DFAState is one node of a decision's lazily-built DFA: the set of ATN
// configs it represents, the edges out of it keyed by input symbol, and
// - if it is an accept state - the prediction it yields (either a fixed
// alt or a list of predicate-guarded alts to evaluate at match time).
type DFAState struct {
	stateNumber int
	configs     *ATNConfigSet

	edges map[int]*DFAState

	isAcceptState bool

	// Prediction is the predicted alt when this is an unconditional
	// accept state.
	Prediction int

	LexerActionExecutor *LexerActionExecutor

	RequiresFullContext bool

	// Predicates holds the predicate/alt pairs to be evaluated at match
	// time when resolution required semantic lookahead instead of being
	// decidable on context alone.
	Predicates []*PredPrediction
}

func NewDFAState(stateNumber int, configs *ATNConfigSet) *DFAState {
	if configs == nil {
		configs = NewATNConfigSet(false)
	}
	return &DFAState{
		stateNumber: stateNumber,
		configs:     configs,
		edges:       make(map[int]*DFAState),
		Prediction:  ATNInvalidAltNumber,
	}
}

func (d *DFAState) GetStateNumber() int      { return d.stateNumber }
func (d *DFAState) SetStateNumber(n int)     { d.stateNumber = n }
func (d *DFAState) GetConfigs() *ATNConfigSet { return d.configs }

func (d *DFAState) IsAcceptState() bool  { return d.isAcceptState }
func (d *DFAState) SetAcceptState(v bool) { d.isAcceptState = v }

func (d *DFAState) GetEdge(symbol int) *DFAState { return d.edges[symbol] }
func (d *DFAState) SetEdge(symbol int, target *DFAState) {
	d.edges[symbol] = target
}

// GetAltSet returns the set of alt numbers represented among this
// state's configs, used when reporting ambiguity.
func (d *DFAState) GetAltSet() map[int]bool {
	return d.configs.GetAlts()
}

// Equals compares two DFA states by their underlying config sets: two
// states are equivalent, and therefore collapsible to one, iff their
// config sets contain the same (state, alt, context, semantic context)
// elements irrespective of order.
func (d *DFAState) Equals(other *DFAState) bool {
	if d == other {
		return true
	}
	if len(d.configs.configs) != len(other.configs.configs) {
		return false
	}
	for k, i := range d.configs.byKey {
		j, ok := other.configs.byKey[k]
		if !ok || !d.configs.configs[i].equals(other.configs.configs[j]) {
			return false
		}
	}
	return true
}

// Hash is a structural hash over the contained configs' keys, order
// independent, used to bucket states during state-set interning.
func (d *DFAState) Hash() int {
	h := 7
	for _, c := range d.configs.configs {
		k := c.closureKey()
		h ^= combineHash(combineHash(combineHash(k.state, k.alt), k.ctxHash), k.semHash)
	}
	return h
}

func (d *DFAState) String() string {
	return fmt.Sprintf("%d:%v=>%d", d.stateNumber, d.configs, d.Prediction)
}
