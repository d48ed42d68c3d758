// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// LexerATNSimulator finds the longest match starting at the current
// input position by walking a per-mode DFA, falling back to ATN
// closure to extend the DFA whenever input leads somewhere the DFA
// hasn't cached yet. Unlike the parser simulator there is no ambiguity
// to resolve: the lexer always wants the single longest match, with
// earlier-declared rules winning ties.
type LexerATNSimulator struct {
	recog Lexer
	atn   *ATN

	DecisionToDFA []*DFA

	mode int

	// line/charPositionInLine track source position across Consume
	// calls so Token objects get correct line:column info.
	line               int
	charPositionInLine int

	startIndex int

	mergeCache map[[2]PredictionContext]PredictionContext
}

func NewLexerATNSimulator(recog Lexer, atn *ATN, decisionToDFA []*DFA) *LexerATNSimulator {
	return &LexerATNSimulator{
		recog:         recog,
		atn:           atn,
		DecisionToDFA: decisionToDFA,
		line:          1,
		charPositionInLine: 0,
	}
}

func (sim *LexerATNSimulator) Reset() {
	sim.line = 1
	sim.charPositionInLine = 0
}

// simState snapshots where the DFA/ATN walk last saw an accept state,
// so failOrAccept can roll the input cursor back to the longest accepted
// prefix if later input fails to extend the match further.
type simState struct {
	index               int
	line                int
	charPos             int
	dfaState            *DFAState
}

func newSimState() *simState { return &simState{index: -1} }

func (s *simState) reset() { *s = simState{index: -1} }

// Match runs the matcher for input starting at the current position in
// the given mode, returning the matched rule's token type (or invoking
// Lexer.Skip()/More() via the action executor, in which case the
// returned type reflects that command).
func (sim *LexerATNSimulator) Match(input CharStream, mode int) int {
	sim.mode = mode
	mark := input.Mark()
	defer input.Release(mark)

	sim.startIndex = input.Index()

	dfa := sim.DecisionToDFA[mode]
	s0 := dfa.GetS0()
	if s0 == nil {
		return sim.matchATN(input)
	}
	return sim.execATN(input, s0)
}

func (sim *LexerATNSimulator) matchATN(input CharStream) int {
	startState := sim.atn.ModeToStartState[sim.mode]

	s0Closure := sim.computeStartState(input, startState)
	suppressEdge := s0Closure.hasSemanticContext
	s0Closure.hasSemanticContext = false

	next := sim.addDFAState(s0Closure)
	if !suppressEdge {
		sim.DecisionToDFA[sim.mode].SetS0(next)
	}
	return sim.execATN(input, next)
}

func (sim *LexerATNSimulator) execATN(input CharStream, ds0 *DFAState) int {
	t := input.LA(1)
	s := ds0

	prevAccept := newSimState()
	if s.isAcceptState {
		sim.captureSimState(prevAccept, input, s)
	}

	for {
		target := sim.getExistingTargetState(s, t)
		if target == nil {
			target = sim.computeTargetState(input, s, t)
		}
		if target == atnSimulatorError {
			break
		}
		if target.isAcceptState {
			sim.captureSimState(prevAccept, input, target)
			if t == TokenEOF {
				break
			}
		}
		if t != TokenEOF {
			sim.Consume(input)
		}
		t = input.LA(1)
		s = target
	}

	return sim.failOrAccept(input, prevAccept, t)
}

// atnSimulatorError is a sentinel *DFAState marking "no viable edge for
// this symbol", distinct from nil (which means "not yet computed").
var atnSimulatorError = &DFAState{stateNumber: -1}

func (sim *LexerATNSimulator) getExistingTargetState(s *DFAState, t int) *DFAState {
	if s.edges == nil {
		return nil
	}
	target, ok := s.edges[t]
	if !ok {
		return nil
	}
	return target
}

func (sim *LexerATNSimulator) computeTargetState(input CharStream, s *DFAState, t int) *DFAState {
	reach := NewATNConfigSet(false)
	sim.getReachableConfigSet(input, s.configs, reach, t)

	if len(reach.configs) == 0 {
		if !reach.hasSemanticContext {
			sim.addDFAEdge(s, t, atnSimulatorError)
		}
		return atnSimulatorError
	}

	return sim.addDFAEdgeForConfigs(s, t, reach)
}

func (sim *LexerATNSimulator) addDFAEdgeForConfigs(from *DFAState, t int, reach *ATNConfigSet) *DFAState {
	target := sim.addDFAState(reach)
	sim.addDFAEdge(from, t, target)
	return target
}

func (sim *LexerATNSimulator) addDFAEdge(from *DFAState, t int, target *DFAState) {
	from.SetEdge(t, target)
}

// addDFAState interns configs' closure as a DFAState, computing its
// accept-state status (the lowest-numbered alt present, since lexer
// rules are tried in declaration order) and action executor along the
// way.
func (sim *LexerATNSimulator) addDFAState(configs *ATNConfigSet) *DFAState {
	proposed := NewDFAState(-1, configs)
	var firstConfigWithRuleStopState *ATNConfig
	for _, c := range configs.configs {
		if _, ok := c.State.(*RuleStopState); ok {
			firstConfigWithRuleStopState = c
			break
		}
	}
	if firstConfigWithRuleStopState != nil {
		proposed.isAcceptState = true
		proposed.LexerActionExecutor = firstConfigWithRuleStopState.LexerActionExecutor
		proposed.Prediction = sim.atn.RuleToTokenType[firstConfigWithRuleStopState.State.GetRuleIndex()]
	}
	configs.SetReadOnly(true)
	return sim.DecisionToDFA[sim.mode].AddState(proposed)
}

// getReachableConfigSet extends closure's configs by the transitions
// matching t, producing the next ATNConfigSet. Each moved config's
// position-dependent actions are pinned to the offset reached so far.
// Once a config's closure reaches an accept state, later configs of
// the same alt that passed through a non-greedy decision are dropped,
// so a non-greedy loop stops at its shortest match.
func (sim *LexerATNSimulator) getReachableConfigSet(input CharStream, closureCfgs *ATNConfigSet, reach *ATNConfigSet, t int) {
	skipAlt := ATNInvalidAltNumber
	for _, c := range closureCfgs.configs {
		currentAltReachedAcceptState := c.Alt == skipAlt
		if currentAltReachedAcceptState && c.Passed0Mode {
			continue
		}
		for _, trans := range c.State.GetTransitions() {
			target := sim.getReachableTarget(trans, t)
			if target == nil {
				continue
			}
			cfg := NewATNConfigFrom(c, target)
			if cfg.LexerActionExecutor != nil {
				cfg.LexerActionExecutor = cfg.LexerActionExecutor.FixOffsetBeforeMatch(input.Index() - sim.startIndex)
			}
			if sim.closure(input, cfg, reach, currentAltReachedAcceptState, false) {
				skipAlt = c.Alt
			}
		}
	}
}

func (sim *LexerATNSimulator) getReachableTarget(trans Transition, t int) ATNState {
	if trans.Matches(t, LexerMinCharValue, LexerMaxCharValue) {
		return trans.GetTarget()
	}
	return nil
}

// computeStartState builds the initial closure for a fresh decision:
// one config per alternative out of p (the mode's TokensStartState),
// each with an empty call context.
func (sim *LexerATNSimulator) computeStartState(input CharStream, p ATNState) *ATNConfigSet {
	configs := NewATNConfigSet(false)
	for i, trans := range p.GetTransitions() {
		cfg := NewATNConfig(trans.GetTarget(), i+1, EmptyPredictionContext, nil)
		sim.closure(input, cfg, configs, false, false)
	}
	return configs
}

// closure epsilon-closes config into configs, recursing through
// epsilon/rule/predicate transitions and stopping at a RuleStopState
// (recorded into configs directly, since reaching one means this
// alternative has a complete match at the current position) or at a
// transition that consumes a symbol (left for the caller to follow).
func (sim *LexerATNSimulator) closure(input CharStream, config *ATNConfig, configs *ATNConfigSet, currentAltReachedAcceptState, speculative bool) bool {
	if _, ok := config.State.(*RuleStopState); ok {
		if config.Context == nil || config.Context.HasEmptyPath() {
			if config.Context == nil || config.Context == EmptyPredictionContext {
				configs.Add(config, sim.mergeCache)
				return true
			}
			configs.Add(NewATNConfigFromWithContext(config, config.State, EmptyPredictionContext), sim.mergeCache)
			currentAltReachedAcceptState = true
		}
		if config.Context != nil && !config.Context.IsEmpty() {
			for i := 0; i < config.Context.Length(); i++ {
				if config.Context.GetReturnState(i) == BasePredictionContextEmptyReturnState {
					continue
				}
				returnState := sim.atn.states[config.Context.GetReturnState(i)]
				newContext := config.Context.GetParent(i)
				newCfg := NewATNConfigFromWithContext(config, returnState, newContext)
				currentAltReachedAcceptState = sim.closure(input, newCfg, configs, currentAltReachedAcceptState, speculative)
			}
		}
		return currentAltReachedAcceptState
	}

	if !config.State.hasEpsilonOnlyTransitions() {
		if !currentAltReachedAcceptState || !config.Passed0Mode {
			configs.Add(config, sim.mergeCache)
		}
	}

	for _, t := range config.State.GetTransitions() {
		newConfig := sim.getEpsilonTarget(input, config, t, speculative)
		if newConfig != nil {
			currentAltReachedAcceptState = sim.closure(input, newConfig, configs, currentAltReachedAcceptState, speculative)
		}
	}
	return currentAltReachedAcceptState
}

// checkNonGreedyDecision reports whether a config reaching target has
// passed through a non-greedy decision state, either because source
// already had (carried forward across the closure) or target itself is
// one. Such configs are dropped once their alt has reached an accept
// state, which is what makes a non-greedy loop stop at the shortest
// match.
func checkNonGreedyDecision(source *ATNConfig, target ATNState) bool {
	if source.Passed0Mode {
		return true
	}
	d, ok := target.(DecisionState)
	return ok && d.GetNonGreedy()
}

func (sim *LexerATNSimulator) getEpsilonTarget(input CharStream, config *ATNConfig, t Transition, speculative bool) *ATNConfig {
	var cfg *ATNConfig
	switch tt := t.(type) {
	case *RuleTransition:
		newContext := NewSingletonPredictionContext(config.Context, tt.FollowState.GetStateNumber())
		cfg = NewATNConfigFromWithContext(config, t.GetTarget(), newContext)
	case *PredicateTransition:
		if !sim.evaluatePredicate(input, tt.RuleIndex, tt.PredIndex, speculative) {
			return nil
		}
		cfg = NewATNConfigFrom(config, t.GetTarget())
	case *ActionTransition:
		executor := LexerActionExecutorAppend(config.LexerActionExecutor,
			sim.atn.LexerActions[tt.ActionIndex])
		cfg = NewATNConfigFrom(config, t.GetTarget())
		cfg.LexerActionExecutor = executor
	default:
		if !t.IsEpsilon() {
			return nil
		}
		cfg = NewATNConfigFrom(config, t.GetTarget())
	}
	cfg.Passed0Mode = checkNonGreedyDecision(config, cfg.State)
	return cfg
}

func (sim *LexerATNSimulator) evaluatePredicate(input CharStream, ruleIndex, predIndex int, speculative bool) bool {
	if !speculative {
		return sim.recog.Sempred(nil, ruleIndex, predIndex)
	}
	savedCharPos := sim.charPositionInLine
	savedLine := sim.line
	index := input.Index()
	marker := input.Mark()
	defer func() {
		sim.charPositionInLine = savedCharPos
		sim.line = savedLine
		input.Seek(index)
		input.Release(marker)
	}()
	sim.Consume(input)
	return sim.recog.Sempred(nil, ruleIndex, predIndex)
}

func (sim *LexerATNSimulator) captureSimState(settings *simState, input CharStream, dfaState *DFAState) {
	settings.index = input.Index()
	settings.line = sim.line
	settings.charPos = sim.charPositionInLine
	settings.dfaState = dfaState
}

func (sim *LexerATNSimulator) failOrAccept(input CharStream, prevAccept *simState, t int) int {
	if prevAccept.dfaState != nil {
		executor := prevAccept.dfaState.LexerActionExecutor
		sim.accept(input, executor, sim.startIndex, prevAccept.index, prevAccept.line, prevAccept.charPos)
		return prevAccept.dfaState.Prediction
	}
	if t == TokenEOF && input.Index() == sim.startIndex {
		return TokenEOF
	}
	panic(NewLexerNoViableAltException(sim.recog, input, sim.startIndex, nil))
}

func (sim *LexerATNSimulator) accept(input CharStream, executor *LexerActionExecutor, startIndex, index, line, charPos int) {
	input.Seek(index)
	sim.line = line
	sim.charPositionInLine = charPos
	if executor != nil {
		executor.Execute(sim.recog, input, startIndex)
	}
}

// Consume advances the input by one symbol, updating line/column
// tracking when a newline is crossed - the lexer analog of
// InputStream.Consume, but kept on the simulator since only it tracks
// source position.
func (sim *LexerATNSimulator) Consume(input CharStream) {
	curChar := input.LA(1)
	if curChar == int('\n') {
		sim.line++
		sim.charPositionInLine = 0
	} else {
		sim.charPositionInLine++
	}
	input.Consume()
}

// Recover is invoked after a no-viable-alt panic to resynchronize:
// consume a single symbol (unless already at EOF) so the next call to
// NextToken makes progress instead of failing on the same input again.
func (sim *LexerATNSimulator) Recover(e *LexerNoViableAltException) {
	if e.GetInputStream().LA(1) != TokenEOF {
		sim.Consume(e.GetInputStream().(CharStream))
	}
}

func (sim *LexerATNSimulator) GetCharPositionInLine() int { return sim.charPositionInLine }
func (sim *LexerATNSimulator) GetLine() int                { return sim.line }
