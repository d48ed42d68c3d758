// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// BasePredictionContextEmptyReturnState is the sentinel return state
// that terminates a call chain.
const BasePredictionContextEmptyReturnState = 0x7FFFFFFF

// PredictionContext is the call-return graph node backing every
// ATNConfig's call stack. Either a single
// call-return pair (SingletonPredictionContext) or a sorted array of
// parallel pairs representing merged alternatives
// (ArrayPredictionContext). Contexts form a DAG; equal contexts compare
// equal by structural hash so they can be shared.
type PredictionContext interface {
	GetParent(index int) PredictionContext
	GetReturnState(index int) int
	Length() int
	IsEmpty() bool
	HasEmptyPath() bool
	Hash() int
	Equals(other PredictionContext) bool
}

// EmptyPredictionContext is the singleton "empty" context: parent=nil,
// return-state is the empty sentinel. Built through the same
// constructor as any other singleton so its cachedHash matches what
// NewSingletonPredictionContext(nil, emptyReturnState) computes,
// keeping "equal contexts hash equally" true even if code elsewhere
// builds an equivalent context directly instead of sharing this one.
var EmptyPredictionContext PredictionContext = NewSingletonPredictionContext(nil, BasePredictionContextEmptyReturnState)

// SingletonPredictionContext is a single (parent, returnState) pair.
type SingletonPredictionContext struct {
	cachedHash  int
	parentCtx   PredictionContext
	returnState int
}

func NewSingletonPredictionContext(parent PredictionContext, returnState int) *SingletonPredictionContext {
	s := &SingletonPredictionContext{parentCtx: parent, returnState: returnState}
	s.cachedHash = calculateSingletonHash(parent, returnState)
	return s
}

func calculateSingletonHash(parent PredictionContext, returnState int) int {
	h := 1
	if parent != nil {
		h = combineHash(h, parent.Hash())
	}
	return combineHash(h, returnState)
}

func (s *SingletonPredictionContext) GetParent(index int) PredictionContext {
	if index != 0 {
		panic(&IllegalStateError{msg: "singleton context has only one parent slot"})
	}
	return s.parentCtx
}

func (s *SingletonPredictionContext) GetReturnState(index int) int { return s.returnState }
func (s *SingletonPredictionContext) Length() int                  { return 1 }
func (s *SingletonPredictionContext) IsEmpty() bool {
	return s.returnState == BasePredictionContextEmptyReturnState
}
func (s *SingletonPredictionContext) HasEmptyPath() bool { return s.IsEmpty() }
func (s *SingletonPredictionContext) Hash() int          { return s.cachedHash }

func (s *SingletonPredictionContext) Equals(other PredictionContext) bool {
	o, ok := other.(*SingletonPredictionContext)
	if !ok {
		return false
	}
	if s == o {
		return true
	}
	if s.Hash() != o.Hash() || s.returnState != o.returnState {
		return false
	}
	if s.parentCtx == nil {
		return o.parentCtx == nil
	}
	return o.parentCtx != nil && s.parentCtx.Equals(o.parentCtx)
}

// ArrayPredictionContext is a sorted-by-return-state set of parallel
// (parent, returnState) pairs representing merged alternatives.
type ArrayPredictionContext struct {
	cachedHash   int
	parents      []PredictionContext
	returnStates []int
}

func NewArrayPredictionContext(parents []PredictionContext, returnStates []int) *ArrayPredictionContext {
	a := &ArrayPredictionContext{parents: parents, returnStates: returnStates}
	h := 1
	for i := range parents {
		if parents[i] != nil {
			h = combineHash(h, parents[i].Hash())
		}
		h = combineHash(h, returnStates[i])
	}
	a.cachedHash = h
	return a
}

func (a *ArrayPredictionContext) GetParent(index int) PredictionContext { return a.parents[index] }
func (a *ArrayPredictionContext) GetReturnState(index int) int          { return a.returnStates[index] }
func (a *ArrayPredictionContext) Length() int                          { return len(a.returnStates) }
func (a *ArrayPredictionContext) IsEmpty() bool                        { return false }

// HasEmptyPath iff the LAST return-state is the empty sentinel: sorted
// position is significant.
func (a *ArrayPredictionContext) HasEmptyPath() bool {
	return a.returnStates[len(a.returnStates)-1] == BasePredictionContextEmptyReturnState
}
func (a *ArrayPredictionContext) Hash() int { return a.cachedHash }

func (a *ArrayPredictionContext) Equals(other PredictionContext) bool {
	o, ok := other.(*ArrayPredictionContext)
	if !ok {
		return false
	}
	if a == o {
		return true
	}
	if a.Hash() != o.Hash() || len(a.returnStates) != len(o.returnStates) {
		return false
	}
	for i := range a.returnStates {
		if a.returnStates[i] != o.returnStates[i] {
			return false
		}
		if (a.parents[i] == nil) != (o.parents[i] == nil) {
			return false
		}
		if a.parents[i] != nil && !a.parents[i].Equals(o.parents[i]) {
			return false
		}
	}
	return true
}

func predictionContextToArray(c PredictionContext) *ArrayPredictionContext {
	if a, ok := c.(*ArrayPredictionContext); ok {
		return a
	}
	s := c.(*SingletonPredictionContext)
	return &ArrayPredictionContext{
		parents:      []PredictionContext{s.parentCtx},
		returnStates: []int{s.returnState},
	}
}

// MergePredictionContexts combines two call-return contexts into the
// context representing either path, sharing structure wherever the two
// agree. Idempotent, commutative on result structure.
func MergePredictionContexts(a, b PredictionContext, rootIsWildcard bool) PredictionContext {
	if a == b || a.Equals(b) {
		return a
	}
	as, aOk := a.(*SingletonPredictionContext)
	bs, bOk := b.(*SingletonPredictionContext)
	if aOk && bOk {
		return mergeSingletons(as, bs, rootIsWildcard)
	}
	if rootIsWildcard {
		if a.IsEmpty() {
			return a
		}
		if b.IsEmpty() {
			return b
		}
	}
	return mergeArrays(predictionContextToArray(a), predictionContextToArray(b), rootIsWildcard)
}

func mergeSingletons(a, b *SingletonPredictionContext, rootIsWildcard bool) PredictionContext {
	if rootIsWildcard {
		if a.IsEmpty() {
			return a
		}
		if b.IsEmpty() {
			return b
		}
	} else {
		if a.IsEmpty() && b.IsEmpty() {
			return a
		}
		if a.IsEmpty() {
			return NewArrayPredictionContext(
				[]PredictionContext{b.parentCtx, nil},
				[]int{b.returnState, BasePredictionContextEmptyReturnState},
			)
		}
		if b.IsEmpty() {
			return NewArrayPredictionContext(
				[]PredictionContext{a.parentCtx, nil},
				[]int{a.returnState, BasePredictionContextEmptyReturnState},
			)
		}
	}

	if a.returnState == b.returnState {
		parent := MergePredictionContexts(a.parentCtx, b.parentCtx, rootIsWildcard)
		if parent == a.parentCtx {
			return a
		}
		if parent == b.parentCtx {
			return b
		}
		return NewSingletonPredictionContext(parent, a.returnState)
	}

	// Different return states: a 2-element array sorted by return state,
	// parents shared (never merged) since the paths genuinely diverge.
	var parents [2]PredictionContext
	var returnStates [2]int
	if a.returnState < b.returnState {
		parents = [2]PredictionContext{a.parentCtx, b.parentCtx}
		returnStates = [2]int{a.returnState, b.returnState}
	} else {
		parents = [2]PredictionContext{b.parentCtx, a.parentCtx}
		returnStates = [2]int{b.returnState, a.returnState}
	}
	return NewArrayPredictionContext(parents[:], returnStates[:])
}

func mergeArrays(a, b *ArrayPredictionContext, rootIsWildcard bool) PredictionContext {
	i, j := 0, 0
	mergedParents := make([]PredictionContext, 0, len(a.returnStates)+len(b.returnStates))
	mergedReturnStates := make([]int, 0, len(a.returnStates)+len(b.returnStates))

	for i < len(a.returnStates) && j < len(b.returnStates) {
		aParent, bParent := a.parents[i], b.parents[j]
		switch {
		case a.returnStates[i] == b.returnStates[j]:
			payload := a.returnStates[i]
			bothEmpty := payload == BasePredictionContextEmptyReturnState && aParent == nil && bParent == nil
			sameParent := aParent != nil && bParent != nil && aParent.Equals(bParent)
			if bothEmpty || sameParent {
				mergedParents = append(mergedParents, aParent)
			} else {
				mergedParents = append(mergedParents, MergePredictionContexts(aParent, bParent, rootIsWildcard))
			}
			mergedReturnStates = append(mergedReturnStates, payload)
			i++
			j++
		case a.returnStates[i] < b.returnStates[j]:
			mergedParents = append(mergedParents, aParent)
			mergedReturnStates = append(mergedReturnStates, a.returnStates[i])
			i++
		default:
			mergedParents = append(mergedParents, bParent)
			mergedReturnStates = append(mergedReturnStates, b.returnStates[j])
			j++
		}
	}
	for ; i < len(a.returnStates); i++ {
		mergedParents = append(mergedParents, a.parents[i])
		mergedReturnStates = append(mergedReturnStates, a.returnStates[i])
	}
	for ; j < len(b.returnStates); j++ {
		mergedParents = append(mergedParents, b.parents[j])
		mergedReturnStates = append(mergedReturnStates, b.returnStates[j])
	}

	if len(mergedReturnStates) == 1 {
		return NewSingletonPredictionContext(mergedParents[0], mergedReturnStates[0])
	}
	return NewArrayPredictionContext(mergedParents, mergedReturnStates)
}

// PredictionContextCache interns singleton/array contexts by structural
// hash so equal contexts become pointer-identical. ParserATNSimulator
// stores one (sharedContextCache) but does not consult it during
// prediction.
type PredictionContextCache struct {
	cache map[int][]PredictionContext
}

func NewPredictionContextCache() *PredictionContextCache {
	return &PredictionContextCache{cache: make(map[int][]PredictionContext)}
}

// GetAsShared returns ctx's interned equivalent, registering ctx itself
// if this is the first time its structure is seen.
func (c *PredictionContextCache) GetAsShared(ctx PredictionContext) PredictionContext {
	if ctx == nil || ctx == EmptyPredictionContext {
		return ctx
	}
	h := ctx.Hash()
	for _, existing := range c.cache[h] {
		if existing.Equals(ctx) {
			return existing
		}
	}
	c.cache[h] = append(c.cache[h], ctx)
	return ctx
}

func (c *PredictionContextCache) Len() int {
	n := 0
	for _, bucket := range c.cache {
		n += len(bucket)
	}
	return n
}

// predictionContextFromRuleContext lifts an outer RuleContext (the
// generated parser's live call stack) into a PredictionContext chain,
// used by LL1Analyzer.Look when a concrete context is supplied.
func predictionContextFromRuleContext(a *ATN, outerCtx RuleContext) PredictionContext {
	if outerCtx == nil || outerCtx.GetParentCtx() == nil {
		return EmptyPredictionContext
	}
	parent := predictionContextFromRuleContext(a, outerCtx.GetParentCtx())
	state := a.states[outerCtx.GetInvokingState()]
	transition := state.GetTransitions()[0].(*RuleTransition)
	return NewSingletonPredictionContext(parent, transition.FollowState.GetStateNumber())
}
