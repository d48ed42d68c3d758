// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// LL1Analyzer computes, by epsilon-closure over the ATN, the set of
// tokens that can appear next at a given state - used to answer
// ATN.NextTokens and GetExpectedTokens queries directly, without
// running the full SLL/LL machinery.
type LL1Analyzer struct {
	atn *ATN
}

func NewLL1Analyzer(atn *ATN) *LL1Analyzer { return &LL1Analyzer{atn: atn} }

// hitPredicate is returned embedded in the interval set's presence of
// TokenInvalidType to signal that a predicate blocked a path; callers
// that care (GetExpectedTokens) ignore it, since predicates are assumed
// true there.
const llAnalyzerHitPredicate = TokenInvalidType

// Look computes the set of tokens reachable from s. If ctx is nil the
// computation stops at s's own rule, adding Epsilon if the rule's end
// is reachable. If ctx is a real RuleContext, computation continues
// into the calling rules recorded by ctx, adding EOF if the outermost
// context's end is reachable. stopState, if non-nil, halts the closure
// instead of s's enclosing RuleStopState (used to compute "what comes
// right after this sub-block" without leaving the rule at all).
func (l *LL1Analyzer) Look(s ATNState, stopState ATNState, ctx RuleContext) *IntervalSet {
	r := NewIntervalSet()
	seeThruPreds := true
	var lookCtx PredictionContext
	if ctx != nil {
		lookCtx = predictionContextFromRuleContext(l.atn, ctx)
	}
	busy := make(map[atnConfigLookKey]bool)
	calledRuleStack := make(map[int]bool)
	l.look(s, stopState, lookCtx, r, busy, calledRuleStack, seeThruPreds, true)
	return r
}

// atnConfigLookKey identifies a (state, context) pair already visited
// during one Look call, breaking infinite recursion through cyclic
// rules (direct or mutual left recursion).
type atnConfigLookKey struct {
	state int
	ctx   PredictionContext
}

func (l *LL1Analyzer) look(s, stopState ATNState, ctx PredictionContext, look *IntervalSet,
	busy map[atnConfigLookKey]bool, calledRuleStack map[int]bool, seeThruPreds, addEOF bool) {

	key := atnConfigLookKey{state: s.GetStateNumber(), ctx: ctx}
	if busy[key] {
		return
	}
	busy[key] = true

	if s == stopState {
		if ctx == nil {
			look.AddOne(TokenEpsilon)
			return
		} else if ctx.IsEmpty() && addEOF {
			look.AddOne(TokenEOF)
			return
		}
	}

	if _, ok := s.(*RuleStopState); ok {
		if ctx == nil {
			look.AddOne(TokenEpsilon)
			return
		} else if ctx.IsEmpty() && addEOF {
			look.AddOne(TokenEOF)
			return
		}

		if ctx != EmptyPredictionContext {
			removed := calledRuleStack[s.GetRuleIndex()]
			defer func() {
				if !removed {
					delete(calledRuleStack, s.GetRuleIndex())
				}
			}()
			calledRuleStack[s.GetRuleIndex()] = true
			for i := 0; i < ctx.Length(); i++ {
				returnState := l.atn.states[ctx.GetReturnState(i)]
				l.look(returnState, stopState, ctx.GetParent(i), look, busy, calledRuleStack, seeThruPreds, addEOF)
			}
			return
		}
	}

	for _, t := range s.GetTransitions() {
		switch tt := t.(type) {
		case *RuleTransition:
			if calledRuleStack[tt.RuleIndex] {
				continue
			}
			newContext := NewSingletonPredictionContext(ctx, tt.FollowState.GetStateNumber())
			calledRuleStack[tt.RuleIndex] = true
			l.look(tt.GetTarget(), stopState, newContext, look, busy, calledRuleStack, seeThruPreds, addEOF)
			delete(calledRuleStack, tt.RuleIndex)
		case *PredicateTransition:
			if seeThruPreds {
				l.look(tt.GetTarget(), stopState, ctx, look, busy, calledRuleStack, seeThruPreds, addEOF)
			} else {
				look.AddOne(llAnalyzerHitPredicate)
			}
		case *PrecedencePredicateTransition:
			if seeThruPreds {
				l.look(tt.GetTarget(), stopState, ctx, look, busy, calledRuleStack, seeThruPreds, addEOF)
			} else {
				look.AddOne(llAnalyzerHitPredicate)
			}
		default:
			if t.IsEpsilon() {
				l.look(t.GetTarget(), stopState, ctx, look, busy, calledRuleStack, seeThruPreds, addEOF)
			} else if _, ok := t.(*WildcardTransition); ok {
				look.AddRange(TokenMinUserTokenType, l.atn.maxTokenType)
			} else {
				set := t.Label()
				if set != nil {
					if _, ok := t.(*NotSetTransition); ok {
						set = set.complementWithin(TokenMinUserTokenType, l.atn.maxTokenType)
					}
					look.AddSet(set)
				}
			}
		}
	}
}

// complementWithin computes s' complement restricted to [minValue,
// maxValue], used when resolving a NotSetTransition's reachable symbols
// for lookahead purposes.
func (s *IntervalSet) complementWithin(minValue, maxValue int) *IntervalSet {
	return s.Complement(minValue, maxValue)
}
