// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ParserATNSimulator resolves each multi-alternative decision point a
// generated parser reaches by walking a lazily-built, per-decision DFA
// over the token stream, falling back to a full-context (LL) search
// when the SLL walk can't commit to a single alternative without
// knowing what called the current rule.
type ParserATNSimulator struct {
	recog Parser
	atn   *ATN

	DecisionToDFA []*DFA

	sharedContextCache *PredictionContextCache
}

func NewParserATNSimulator(recog Parser, atn *ATN, decisionToDFA []*DFA, sharedContextCache *PredictionContextCache) *ParserATNSimulator {
	return &ParserATNSimulator{
		recog:              recog,
		atn:                atn,
		DecisionToDFA:      decisionToDFA,
		sharedContextCache: sharedContextCache,
	}
}

// atnSimulatorParserError is the sentinel DFA state meaning "no
// transition out of here on this symbol", distinct from nil so a cached
// dead edge doesn't get recomputed on every visit.
var atnSimulatorParserError = NewDFAState(-1, NewATNConfigSet(false))

// AdaptivePredict decides which alternative of decision to take, given
// input positioned at the decision point and outerContext describing
// the rule invocation stack the parser is currently inside. The result
// is cached as DFA edges so repeated visits to the same decision in the
// same rule context are near-instant afterward.
func (s *ParserATNSimulator) AdaptivePredict(input TokenStream, decision int, outerContext ParserRuleContext) int {
	dfa := s.DecisionToDFA[decision]
	startIndex := input.Index()
	defer input.Seek(startIndex)

	var s0 *DFAState
	if dfa.Precedence {
		s0 = dfa.GetPrecedenceStartState(s.recog.GetPrecedence())
	} else {
		s0 = dfa.GetS0()
	}

	if s0 == nil {
		configs := s.computeStartState(dfa.GetATNStartState(), outerContext, false)
		s0 = s.addDFAState(dfa, configs)
		if dfa.Precedence {
			dfa.SetPrecedenceStartState(s.recog.GetPrecedence(), s0)
		} else {
			dfa.SetS0(s0)
		}
	}

	return s.execATN(dfa, s0, input, startIndex, outerContext)
}

// execATN drives the SLL walk one token at a time, consulting and
// extending the decision's cached DFA, until it lands on an accept
// state (single surviving alt) or discovers the decision needs full
// context to resolve.
func (s *ParserATNSimulator) execATN(dfa *DFA, s0 *DFAState, input TokenStream, startIndex int, outerContext ParserRuleContext) int {
	previousD := s0
	t := input.LA(1)

	for {
		d := s.getExistingTargetState(previousD, t)
		if d == nil {
			d = s.computeTargetState(dfa, previousD, t, outerContext)
		}
		if d == atnSimulatorParserError {
			panic(NewNoViableAltException(s.recog, input, input.LT(1), input.LT(1), previousD.configs, outerContext))
		}
		if d.RequiresFullContext {
			return s.execATNWithFullContext(dfa, input, startIndex, outerContext)
		}
		if d.isAcceptState {
			return d.Prediction
		}
		previousD = d
		if t != TokenEOF {
			input.Consume()
			t = input.LA(1)
		}
	}
}

func (s *ParserATNSimulator) getExistingTargetState(previousD *DFAState, t int) *DFAState {
	return previousD.GetEdge(t)
}

// computeTargetState extends the DFA by one edge: it moves every config
// in previousD across symbol t, closes the result, classifies the
// resulting state (accept / conflicting / plain), and interns it.
func (s *ParserATNSimulator) computeTargetState(dfa *DFA, previousD *DFAState, t int, outerContext ParserRuleContext) *DFAState {
	reach := s.computeReachSet(previousD.configs, t, false, outerContext)
	if reach == nil {
		s.addDFAEdge(dfa, previousD, t, atnSimulatorParserError)
		return atnSimulatorParserError
	}
	d := s.classify(reach)
	return s.addDFAEdge(dfa, previousD, t, d)
}

// classify builds a fresh (uninterned) DFAState from configs, marking
// it an accept state if the configs agree on one alt, or requiring
// full context if they disagree without any predicate having resolved
// the conflict.
func (s *ParserATNSimulator) classify(configs *ATNConfigSet) *DFAState {
	d := NewDFAState(-1, configs)
	if alt := s.getUniqueAlt(configs); alt != ATNInvalidAltNumber {
		d.isAcceptState = true
		d.Prediction = alt
		return d
	}
	if predictionModeHasConflictingAltSet(predictionModeGetConflictingAltSubsets(configs)) {
		d.RequiresFullContext = true
	}
	return d
}

func (s *ParserATNSimulator) getUniqueAlt(configs *ATNConfigSet) int {
	return predictionModeGetUniqueAlt(predictionModeGetConflictingAltSubsets(configs))
}

func (s *ParserATNSimulator) addDFAState(dfa *DFA, configs *ATNConfigSet) *DFAState {
	return dfa.AddState(s.classify(configs))
}

func (s *ParserATNSimulator) addDFAEdge(dfa *DFA, from *DFAState, t int, to *DFAState) *DFAState {
	if to != atnSimulatorParserError {
		to = dfa.AddState(to)
	}
	from.SetEdge(t, to)
	return to
}

// execATNWithFullContext re-walks the decision from startIndex using
// the real rule-invocation context, the escape hatch for decisions SLL
// can't resolve (typically ones only disambiguated by what rule called
// the current one). Its result is not cached as DFA edges, since it is
// specific to this particular outer context.
func (s *ParserATNSimulator) execATNWithFullContext(dfa *DFA, input TokenStream, startIndex int, outerContext ParserRuleContext) int {
	input.Seek(startIndex)
	t := input.LA(1)
	configs := s.computeStartState(dfa.GetATNStartState(), outerContext, true)

	for {
		reach := s.computeReachSet(configs, t, true, outerContext)
		if reach == nil {
			panic(NewNoViableAltException(s.recog, input, input.LT(1), input.LT(1), configs, outerContext))
		}
		altSets := predictionModeGetConflictingAltSubsets(reach)
		if !predictionModeHasConflictingAltSet(altSets) {
			if alt := predictionModeGetUniqueAlt(altSets); alt != ATNInvalidAltNumber {
				return alt
			}
		}
		if predictionModeAllConfigsInRuleStopStates(reach) || t == TokenEOF {
			alt := predictionModeResolvesToJustOneViableAltFromSet(altSets)
			if alt == ATNInvalidAltNumber {
				alt = predictionModeGetAltThatFinishedDecisionEntryRule(reach)
			}
			if alt == ATNInvalidAltNumber {
				panic(NewNoViableAltException(s.recog, input, input.LT(1), input.LT(1), reach, outerContext))
			}
			return alt
		}
		configs = reach
		input.Consume()
		t = input.LA(1)
	}
}

// computeStartState seeds one config per alternative leaving decision
// state p, each carrying the call-return context derived from
// outerCtx, then closes every one of them.
func (s *ParserATNSimulator) computeStartState(p ATNState, outerCtx RuleContext, fullCtx bool) *ATNConfigSet {
	initialContext := predictionContextFromRuleContext(s.atn, outerCtx)
	configs := NewATNConfigSet(fullCtx)
	for i, t := range p.GetTransitions() {
		c := NewATNConfig(t.GetTarget(), i+1, initialContext, nil)
		closureBusy := make(map[closureKey]bool)
		s.closure(c, configs, closureBusy, fullCtx, outerCtx, nil)
	}
	return configs
}

// computeReachSet moves every config in configs across symbol, then
// closes the result. Configs parked at a RuleStopState with an empty
// context are held out of the closure (skippedStopStates) and folded
// back in verbatim once symbol is EOF, since a rule that has already
// finished has nothing left to close over.
func (s *ParserATNSimulator) computeReachSet(configs *ATNConfigSet, symbol int, fullCtx bool, outerContext RuleContext) *ATNConfigSet {
	intermediate := NewATNConfigSet(fullCtx)
	var skippedStopStates []*ATNConfig

	for _, c := range configs.GetItems() {
		if _, ok := c.State.(*RuleStopState); ok {
			if c.Context == nil || c.Context.IsEmpty() {
				if fullCtx || symbol == TokenEOF {
					skippedStopStates = append(skippedStopStates, c)
				}
				continue
			}
		}
		for _, t := range c.State.GetTransitions() {
			if target := s.getReachableTarget(t, symbol); target != nil {
				intermediate.Add(NewATNConfigFrom(c, target), nil)
			}
		}
	}

	var reach *ATNConfigSet
	if skippedStopStates == nil && symbol != TokenEOF && intermediate.Length() == 1 {
		reach = intermediate
	} else {
		reach = NewATNConfigSet(fullCtx)
		closureBusy := make(map[closureKey]bool)
		mergeCache := make(map[[2]PredictionContext]PredictionContext)
		for _, c := range intermediate.GetItems() {
			s.closure(c, reach, closureBusy, fullCtx, outerContext, mergeCache)
		}
	}

	if symbol == TokenEOF {
		for _, c := range skippedStopStates {
			reach.Add(c, nil)
		}
	}

	if reach.IsEmpty() {
		return nil
	}
	return reach
}

func (s *ParserATNSimulator) getReachableTarget(t Transition, symbol int) ATNState {
	if t.Matches(symbol, TokenMinUserTokenType, s.atn.maxTokenType) {
		return t.GetTarget()
	}
	return nil
}

// closure computes the epsilon closure of config: rule calls push a new
// return address onto its PredictionContext, rule returns pop one, and
// semantic/precedence predicates are evaluated immediately against
// outerContext, pruning the branch outright if they fail rather than
// deferring evaluation to a cached DFA accept state. A config sitting
// on a state with a real (non-epsilon) transition out of it is added to
// configs unchanged - that transition is what computeReachSet moves
// across next.
func (s *ParserATNSimulator) closure(config *ATNConfig, configs *ATNConfigSet, closureBusy map[closureKey]bool,
	fullCtx bool, outerContext RuleContext, mergeCache map[[2]PredictionContext]PredictionContext) {

	key := config.closureKey()
	if closureBusy[key] {
		return
	}
	closureBusy[key] = true

	if _, ok := config.State.(*RuleStopState); ok {
		if config.Context == nil || config.Context.IsEmpty() {
			configs.Add(config, mergeCache)
			return
		}
		for i := 0; i < config.Context.Length(); i++ {
			returnState := s.atn.states[config.Context.GetReturnState(i)]
			c := NewATNConfigFromWithContext(config, returnState, config.Context.GetParent(i))
			s.closure(c, configs, closureBusy, fullCtx, outerContext, mergeCache)
		}
		return
	}

	p := config.State
	for _, t := range p.GetTransitions() {
		if !t.IsEpsilon() {
			continue
		}
		if c := s.getEpsilonTarget(config, t, outerContext); c != nil {
			s.closure(c, configs, closureBusy, fullCtx, outerContext, mergeCache)
		}
	}
	if !p.hasEpsilonOnlyTransitions() {
		configs.Add(config, mergeCache)
	}
}

func (s *ParserATNSimulator) getEpsilonTarget(config *ATNConfig, t Transition, outerContext RuleContext) *ATNConfig {
	switch tt := t.(type) {
	case *RuleTransition:
		newContext := NewSingletonPredictionContext(config.Context, tt.FollowState.GetStateNumber())
		return NewATNConfigFromWithContext(config, tt.GetTarget(), newContext)
	case *PredicateTransition:
		if !tt.getPredicate().Eval(s.recog, outerContext) {
			return nil
		}
		return NewATNConfigFrom(config, tt.GetTarget())
	case *PrecedencePredicateTransition:
		if !tt.getPredicate().Eval(s.recog, outerContext) {
			return nil
		}
		return NewATNConfigFrom(config, tt.GetTarget())
	default:
		return NewATNConfigFrom(config, t.GetTarget())
	}
}
