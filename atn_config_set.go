// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// ATNConfigSet is the de-duplicated, merge-on-insert collection of
// configs produced by a single closure computation. Two configs with
// equal (state, alt, semantic context) but differing only in
// PredictionContext are merged by replacing their contexts with
// MergePredictionContexts's result, rather than kept as separate
// elements - this is what keeps closures from growing without bound
// across deeply left-recursive or highly ambiguous grammars.
type ATNConfigSet struct {
	configs  []*ATNConfig
	byKey    map[configKey]int // key -> index into configs, for merge lookup
	readOnly bool

	fullCtx       bool
	uniqueAlt     int
	hasSemanticContext bool
	dipsIntoOuterContext bool

	cachedHash int
	hashDirty  bool
}

func NewATNConfigSet(fullCtx bool) *ATNConfigSet {
	return &ATNConfigSet{
		byKey:     make(map[configKey]int),
		fullCtx:   fullCtx,
		uniqueAlt: ATNInvalidAltNumber,
	}
}

// Add inserts cfg, merging its context with any existing config sharing
// the same (state, alt, semantic context) key. mergeCache, if non-nil,
// memoizes the pairwise PredictionContext merges performed across many
// Add calls within one closure so repeated merges of the same pair of
// contexts are computed once.
func (s *ATNConfigSet) Add(cfg *ATNConfig, mergeCache map[[2]PredictionContext]PredictionContext) bool {
	if s.readOnly {
		panic(&IllegalStateError{msg: "config set is read-only"})
	}
	if cfg.SemanticContext != SemanticContextNone {
		s.hasSemanticContext = true
	}
	if cfg.ReachesIntoOuterContext > 0 {
		s.dipsIntoOuterContext = true
	}

	k := cfg.key()
	s.hashDirty = true
	if idx, ok := s.byKey[k]; ok {
		existing := s.configs[idx]
		merged := mergeContext(existing.Context, cfg.Context, mergeCache)
		existing.ReachesIntoOuterContext = maxInt2(existing.ReachesIntoOuterContext, cfg.ReachesIntoOuterContext)
		if cfg.PrecedenceFilterSuppressed {
			existing.PrecedenceFilterSuppressed = true
		}
		existing.Context = merged
		return false
	}

	s.byKey[k] = len(s.configs)
	s.configs = append(s.configs, cfg)
	return true
}

func mergeContext(a, b PredictionContext, mergeCache map[[2]PredictionContext]PredictionContext) PredictionContext {
	if a == b || a.Equals(b) {
		return a
	}
	if mergeCache == nil {
		return MergePredictionContexts(a, b, false)
	}
	key := [2]PredictionContext{a, b}
	if m, ok := mergeCache[key]; ok {
		return m
	}
	m := MergePredictionContexts(a, b, false)
	mergeCache[key] = m
	mergeCache[[2]PredictionContext{b, a}] = m
	return m
}

func maxInt2(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (s *ATNConfigSet) AddAll(other []*ATNConfig, mergeCache map[[2]PredictionContext]PredictionContext) {
	for _, c := range other {
		s.Add(c, mergeCache)
	}
}

func (s *ATNConfigSet) GetItems() []*ATNConfig { return s.configs }
func (s *ATNConfigSet) Length() int            { return len(s.configs) }
func (s *ATNConfigSet) IsEmpty() bool          { return len(s.configs) == 0 }

func (s *ATNConfigSet) SetReadOnly(v bool) { s.readOnly = v }
func (s *ATNConfigSet) IsReadOnly() bool    { return s.readOnly }

func (s *ATNConfigSet) HasSemanticContext() bool    { return s.hasSemanticContext }
func (s *ATNConfigSet) DipsIntoOuterContext() bool { return s.dipsIntoOuterContext }

func (s *ATNConfigSet) GetUniqueAlt() int  { return s.uniqueAlt }
func (s *ATNConfigSet) SetUniqueAlt(v int) { s.uniqueAlt = v }

// GetStates returns the set of distinct ATN states among the configs,
// used by the prediction-mode conflict checks.
func (s *ATNConfigSet) GetStates() map[ATNState]bool {
	out := make(map[ATNState]bool, len(s.configs))
	for _, c := range s.configs {
		out[c.State] = true
	}
	return out
}

// GetAlts returns the set of alt numbers present.
func (s *ATNConfigSet) GetAlts() map[int]bool {
	out := make(map[int]bool)
	for _, c := range s.configs {
		out[c.Alt] = true
	}
	return out
}

// GetPredicates returns the non-trivial semantic context of each
// config, in config order; duplicates are not removed.
func (s *ATNConfigSet) GetPredicates() []SemanticContext {
	var preds []SemanticContext
	for _, c := range s.configs {
		if c.SemanticContext != SemanticContextNone {
			preds = append(preds, c.SemanticContext)
		}
	}
	return preds
}

func (s *ATNConfigSet) Clone() *ATNConfigSet {
	clone := NewATNConfigSet(s.fullCtx)
	for _, c := range s.configs {
		cc := *c
		clone.Add(&cc, nil)
	}
	clone.uniqueAlt = s.uniqueAlt
	clone.hasSemanticContext = s.hasSemanticContext
	clone.dipsIntoOuterContext = s.dipsIntoOuterContext
	return clone
}

func (s *ATNConfigSet) String() string {
	return fmt.Sprintf("%v", s.configs)
}
