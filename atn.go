// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "sync"

// ATNInvalidAltNumber represents an ALT number that has yet to be
// calculated, or which is invalid for a particular struct such as
// [*antlr.BaseParserRuleContext].
const ATNInvalidAltNumber = 0

// ATN grammar-type tags.
const (
	ATNTypeLexer  = 0
	ATNTypeParser = 1
)

// ATN represents an "Augmented Transition Network": the grammar compiled
// to a graph of states joined by transitions, including call/return edges
// for rules. Immutable
// after deserialization; a generated recognizer constructs exactly one
// and shares it across every parse.
type ATN struct {
	// DecisionToState indexes every decision point (sub-rule, block,
	// loop, etc) by its decision number, so the simulators can build a
	// DFA predictor for it on demand.
	DecisionToState []DecisionState

	grammarType int

	// LexerActions is referenced by ACTION transitions in lexer ATNs.
	LexerActions []LexerAction

	maxTokenType int

	ModeNameToStartState map[string]*TokensStartState
	ModeToStartState     []*TokensStartState

	ruleToStartState []*RuleStartState
	ruleToStopState  []*RuleStopState

	// RuleToTokenType maps a lexer rule index to the token type it
	// produces.
	RuleToTokenType []int

	states []ATNState

	mu      sync.Mutex
	stateMu sync.RWMutex
	edgeMu  sync.RWMutex
}

// NewATN constructs an empty ATN of the given grammar type, ready to be
// populated by ATNDeserializer.
func NewATN(grammarType, maxTokenType int) *ATN {
	return &ATN{
		grammarType:          grammarType,
		maxTokenType:         maxTokenType,
		ModeNameToStartState: make(map[string]*TokensStartState),
	}
}

func (a *ATN) GetGrammarType() int  { return a.grammarType }
func (a *ATN) GetMaxTokenType() int { return a.maxTokenType }
func (a *ATN) GetStates() []ATNState { return a.states }

func (a *ATN) GetState(stateNumber int) ATNState {
	if stateNumber < 0 || stateNumber >= len(a.states) {
		return nil
	}
	return a.states[stateNumber]
}

// NextTokensInContext computes the set of valid tokens that can occur
// starting in state s, given ctx. If ctx is nil the result is restricted
// to tokens reachable while staying within s's rule.
func (a *ATN) NextTokensInContext(s ATNState, ctx RuleContext) *IntervalSet {
	return NewLL1Analyzer(a).Look(s, nil, ctx)
}

// NextTokensNoContext computes and caches, on the state itself, the set
// of valid tokens reachable from s while staying in its rule.
// Token.EPSILON is included if the rule's end can be reached.
func (a *ATN) NextTokensNoContext(s ATNState) *IntervalSet {
	a.mu.Lock()
	defer a.mu.Unlock()
	iset := s.GetNextTokenWithinRule()
	if iset == nil {
		iset = a.NextTokensInContext(s, nil)
		iset.SetReadOnly(true)
		s.SetNextTokenWithinRule(iset)
	}
	return iset
}

// NextTokens dispatches to NextTokensNoContext (ctx == nil) or
// NextTokensInContext (ctx != nil).
func (a *ATN) NextTokens(s ATNState, ctx RuleContext) *IntervalSet {
	if ctx == nil {
		return a.NextTokensNoContext(s)
	}
	return a.NextTokensInContext(s, ctx)
}

func (a *ATN) addState(state ATNState) {
	if state != nil {
		state.SetATN(a)
		state.SetStateNumber(len(a.states))
	}
	a.states = append(a.states, state)
}

func (a *ATN) defineDecisionState(s DecisionState) int {
	a.DecisionToState = append(a.DecisionToState, s)
	s.setDecision(len(a.DecisionToState) - 1)
	return s.getDecision()
}

func (a *ATN) getDecisionState(decision int) DecisionState {
	if len(a.DecisionToState) == 0 {
		return nil
	}
	return a.DecisionToState[decision]
}

// GetExpectedTokens computes the set of input symbols that could follow
// ATN state stateNumber in the given full parse context. Semantic
// predicates are assumed true. If a path exists to the outermost
// context's RuleStopState without consuming a symbol, Token.EOF is
// added.
func (a *ATN) GetExpectedTokens(stateNumber int, ctx RuleContext) *IntervalSet {
	if stateNumber < 0 || stateNumber >= len(a.states) {
		panic(&IllegalStateError{msg: "invalid state number"})
	}

	s := a.states[stateNumber]
	following := a.NextTokens(s, nil)
	if !following.Contains(TokenEpsilon) {
		return following
	}

	expected := NewIntervalSet()
	expected.AddSet(following)
	expected.RemoveOne(TokenEpsilon)

	for ctx != nil && ctx.GetInvokingState() >= 0 && following.Contains(TokenEpsilon) {
		invokingState := a.states[ctx.GetInvokingState()]
		rt := invokingState.GetTransitions()[0].(*RuleTransition)
		following = a.NextTokens(rt.FollowState, nil)
		expected.AddSet(following)
		expected.RemoveOne(TokenEpsilon)
		ctx = ctx.GetParentCtx()
	}

	if following.Contains(TokenEpsilon) {
		expected.AddOne(TokenEOF)
	}

	return expected
}

func (a *ATN) GetRuleToStartState(index int) *RuleStartState { return a.ruleToStartState[index] }
func (a *ATN) GetRuleToStopState(index int) *RuleStopState   { return a.ruleToStopState[index] }
