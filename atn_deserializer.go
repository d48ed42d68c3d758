// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "github.com/google/uuid"

// serializedATNVersion is the only wire format this deserializer
// understands; a generated recognizer embedding an older or newer
// format fails fast rather than silently misreading it.
const serializedATNVersion = 3

var (
	baseSerializedUUID          = uuid.MustParse("33761B2D-78BB-4A43-8B0B-4F5BEE8AACF3")
	addedPrecedenceTransitions  = uuid.MustParse("1DA0C57D-6C06-438A-9B27-10BCB3CE0F61")
	addedLexerActions           = uuid.MustParse("AADB8D7E-AEEF-4415-AD2B-8204D6CF042E")
	addedUnicodeSMP             = uuid.MustParse("59627784-3BE5-417A-B9EB-8131A7286089")
	supportedUUIDs              = []uuid.UUID{baseSerializedUUID, addedPrecedenceTransitions, addedLexerActions, addedUnicodeSMP}
)

// ATNDeserializationOptions controls the optional post-deserialize
// verification pass.
type ATNDeserializationOptions struct {
	VerifyATN bool
}

func DefaultATNDeserializationOptions() *ATNDeserializationOptions {
	return &ATNDeserializationOptions{VerifyATN: true}
}

// ATNDeserializer turns a generated recognizer's embedded serialized
// ATN (a string of code points, each offset by +2 so 0 never appears
// in it) into a live *ATN.
type ATNDeserializer struct {
	options *ATNDeserializationOptions
}

func NewATNDeserializer(options *ATNDeserializationOptions) *ATNDeserializer {
	if options == nil {
		options = DefaultATNDeserializationOptions()
	}
	return &ATNDeserializer{options: options}
}

// atnDeserializerCursor walks the decoded integer stream one value at a
// time, undoing the +2 wire offset on every read.
type atnDeserializerCursor struct {
	data []rune
	pos  int
}

func (c *atnDeserializerCursor) next() int {
	v := int(c.data[c.pos]) - 2
	c.pos++
	return v
}

// Deserialize parses serialized (a generated recognizer's embedded ATN
// string) into a fully linked ATN.
func (d *ATNDeserializer) Deserialize(serialized string) *ATN {
	cur := &atnDeserializerCursor{data: []rune(serialized)}

	d.checkVersion(cur.next())
	d.checkUUID(cur)

	atn := d.readATN(cur)

	blockStartStates, loopEndStates := d.readStates(atn, cur)
	d.readRules(atn, cur)
	d.readModes(atn, cur)

	sets := d.readSets(cur, func(c *atnDeserializerCursor) int { return c.next() })
	sets = append(sets, d.readSets(cur, func(c *atnDeserializerCursor) int {
		lo, hi := c.next(), c.next()
		return (lo & 0xFFFF) | (hi << 16)
	})...)

	d.readEdges(atn, cur, sets, blockStartStates, loopEndStates)
	d.readDecisions(atn, cur)
	if atn.grammarType == ATNTypeLexer {
		d.readLexerActions(atn, cur)
	}
	d.markPrecedenceDecisions(atn)

	if d.options.VerifyATN {
		d.verifyATN(atn)
	}
	return atn
}

func (d *ATNDeserializer) checkVersion(version int) {
	if version != serializedATNVersion {
		panic(&IllegalStateError{msg: "could not deserialize ATN with unsupported version"})
	}
}

func (d *ATNDeserializer) checkUUID(cur *atnDeserializerCursor) uuid.UUID {
	bs := make([]byte, 0, 16)
	for i := 0; i < 8; i++ {
		v := cur.next()
		bs = append(bs, byte(v), byte(v>>8))
	}
	for i, j := 0, len(bs)-1; i < j; i, j = i+1, j-1 {
		bs[i], bs[j] = bs[j], bs[i]
	}
	id, err := uuid.FromBytes(bs)
	if err != nil {
		panic(&IllegalStateError{msg: "malformed ATN UUID"})
	}
	supported := false
	for _, u := range supportedUUIDs {
		if u == id {
			supported = true
			break
		}
	}
	if !supported {
		panic(&IllegalStateError{msg: "could not deserialize ATN with UUID " + id.String()})
	}
	return id
}

func (d *ATNDeserializer) readATN(cur *atnDeserializerCursor) *ATN {
	grammarType := cur.next()
	maxTokenType := cur.next()
	return NewATN(grammarType, maxTokenType)
}

// blockStartFixup and loopEndFixup record a forward reference read
// during readStates that can only be resolved once every state has
// been allocated.
type blockStartFixup struct {
	state        blockStartState
	endStateNum  int
}

type loopEndFixup struct {
	state         *LoopEndState
	loopBackStateNum int
}

// blockStartState is satisfied by every block-start kind; SetEndState
// closes the loop between a block's entry and its matching
// BlockEndState.
type blockStartState interface {
	ATNState
	SetEndState(*BlockEndState)
}

func (s *BlockStartState) SetEndState(e *BlockEndState) { s.EndState = e }

func (d *ATNDeserializer) readStates(atn *ATN, cur *atnDeserializerCursor) ([]blockStartFixup, []loopEndFixup) {
	var blockStarts []blockStartFixup
	var loopEnds []loopEndFixup

	nstates := cur.next()
	for i := 0; i < nstates; i++ {
		stype := cur.next()
		if stype == ATNStateInvalidType {
			atn.addState(nil)
			continue
		}

		ruleIndex := cur.next()
		if ruleIndex == 0xFFFF {
			ruleIndex = -1
		}

		s := d.stateFactory(stype)
		s.SetRuleIndex(ruleIndex)

		switch st := s.(type) {
		case *LoopEndState:
			loopEnds = append(loopEnds, loopEndFixup{st, cur.next()})
		case blockStartState:
			blockStarts = append(blockStarts, blockStartFixup{st, cur.next()})
		}

		atn.addState(s)
	}

	numNonGreedy := cur.next()
	for i := 0; i < numNonGreedy; i++ {
		st := cur.next()
		if ds, ok := atn.states[st].(DecisionState); ok {
			ds.SetNonGreedy(true)
		}
	}

	numPrecedenceStates := cur.next()
	for i := 0; i < numPrecedenceStates; i++ {
		st := cur.next()
		if rs, ok := atn.states[st].(*RuleStartState); ok {
			rs.IsLeftRecursive = true
		}
	}

	return blockStarts, loopEnds
}

func (d *ATNDeserializer) readRules(atn *ATN, cur *atnDeserializerCursor) {
	nrules := cur.next()
	atn.ruleToStartState = make([]*RuleStartState, nrules)
	for i := 0; i < nrules; i++ {
		s := cur.next()
		atn.ruleToStartState[i] = atn.states[s].(*RuleStartState)
		if atn.grammarType == ATNTypeLexer {
			atn.RuleToTokenType = append(atn.RuleToTokenType, cur.next())
		}
	}

	atn.ruleToStopState = make([]*RuleStopState, nrules)
	for _, s := range atn.states {
		stop, ok := s.(*RuleStopState)
		if !ok {
			continue
		}
		atn.ruleToStopState[stop.GetRuleIndex()] = stop
		atn.ruleToStartState[stop.GetRuleIndex()].StopState = stop
	}
}

func (d *ATNDeserializer) readModes(atn *ATN, cur *atnDeserializerCursor) {
	nmodes := cur.next()
	for i := 0; i < nmodes; i++ {
		s := cur.next()
		atn.ModeToStartState = append(atn.ModeToStartState, atn.states[s].(*TokensStartState))
	}
}

func (d *ATNDeserializer) readSets(cur *atnDeserializerCursor, readValue func(*atnDeserializerCursor) int) []*IntervalSet {
	nsets := cur.next()
	sets := make([]*IntervalSet, 0, nsets)
	for i := 0; i < nsets; i++ {
		nintervals := cur.next()
		set := NewIntervalSet()
		if cur.next() != 0 {
			set.AddOne(TokenEOF)
		}
		for j := 0; j < nintervals; j++ {
			set.AddRange(readValue(cur), readValue(cur))
		}
		sets = append(sets, set)
	}
	return sets
}

func (d *ATNDeserializer) readEdges(atn *ATN, cur *atnDeserializerCursor, sets []*IntervalSet,
	blockStarts []blockStartFixup, loopEnds []loopEndFixup) {

	nedges := cur.next()
	for i := 0; i < nedges; i++ {
		src := cur.next()
		trg := cur.next()
		ttype := cur.next()
		arg1 := cur.next()
		arg2 := cur.next()
		arg3 := cur.next()

		t := d.edgeFactory(atn, ttype, trg, arg1, arg2, arg3, sets)
		atn.states[src].AddTransition(t)
	}

	for _, f := range blockStarts {
		f.state.SetEndState(atn.states[f.endStateNum].(*BlockEndState))
	}
	for _, f := range loopEnds {
		f.state.LoopBackState = atn.states[f.loopBackStateNum]
	}
}

func (d *ATNDeserializer) readDecisions(atn *ATN, cur *atnDeserializerCursor) {
	ndecisions := cur.next()
	for i := 0; i < ndecisions; i++ {
		s := cur.next()
		ds := atn.states[s].(DecisionState)
		atn.DecisionToState = append(atn.DecisionToState, ds)
		ds.setDecision(i)
	}
}

func (d *ATNDeserializer) readLexerActions(atn *ATN, cur *atnDeserializerCursor) {
	nactions := cur.next()
	atn.LexerActions = make([]LexerAction, nactions)
	for i := 0; i < nactions; i++ {
		actionType := cur.next()
		data1 := cur.next()
		if data1 == 0xFFFF {
			data1 = -1
		}
		data2 := cur.next()
		if data2 == 0xFFFF {
			data2 = -1
		}
		atn.LexerActions[i] = d.lexerActionFactory(actionType, data1, data2)
	}
}

// markPrecedenceDecisions flags the StarLoopEntryState of every
// left-recursive rule's precedence-climbing loop, so the parser ATN
// simulator knows to cache that decision's DFA per precedence level
// rather than once for the whole rule.
func (d *ATNDeserializer) markPrecedenceDecisions(atn *ATN) {
	for _, s := range atn.states {
		entry, ok := s.(*StarLoopEntryState)
		if !ok {
			continue
		}
		if !atn.ruleToStartState[entry.GetRuleIndex()].IsLeftRecursive {
			continue
		}
		transitions := entry.GetTransitions()
		maybeLoopEnd := transitions[len(transitions)-1].GetTarget()
		loopEnd, ok := maybeLoopEnd.(*LoopEndState)
		if !ok || !loopEnd.hasEpsilonOnlyTransitions() {
			continue
		}
		loopEndTransitions := loopEnd.GetTransitions()
		if len(loopEndTransitions) == 1 {
			if _, ok := loopEndTransitions[0].GetTarget().(*RuleStopState); ok {
				entry.IsPrecedenceDecision = true
			}
		}
	}
}

// verifyATN runs a handful of cheap structural sanity checks; it is not
// a full verifier, only a guard against the more common hand-built or
// corrupted-wire mistakes.
func (d *ATNDeserializer) verifyATN(atn *ATN) {
	for i, s := range atn.states {
		if s == nil {
			continue
		}
		if s.GetStateNumber() != i {
			panic(&IllegalStateError{msg: "ATN state number does not match its index"})
		}
		if _, ok := s.(*RuleStopState); ok {
			continue
		}
		for _, t := range s.GetTransitions() {
			if rt, ok := t.(*RuleTransition); ok {
				if atn.ruleToStartState[rt.RuleIndex] == nil {
					panic(&IllegalStateError{msg: "rule transition targets an unknown rule"})
				}
			}
		}
	}
	for i, start := range atn.ruleToStartState {
		if start == nil || atn.ruleToStopState[i] == nil {
			panic(&IllegalStateError{msg: "rule is missing its start or stop state"})
		}
	}
}

func (d *ATNDeserializer) edgeFactory(atn *ATN, ttype, trg, arg1, arg2, arg3 int, sets []*IntervalSet) Transition {
	target := atn.states[trg]
	switch ttype {
	case TransitionEpsilon:
		return NewEpsilonTransition(target, arg1)
	case TransitionRange:
		if arg3 != 0 {
			return NewRangeTransition(target, TokenEOF, arg2)
		}
		return NewRangeTransition(target, arg1, arg2)
	case TransitionRule:
		return NewRuleTransition(atn.states[arg1], arg2, arg3, target)
	case TransitionPredicate:
		return NewPredicateTransition(target, arg1, arg2, arg3 != 0)
	case TransitionAtom:
		if arg3 != 0 {
			return NewAtomTransition(target, TokenEOF)
		}
		return NewAtomTransition(target, arg1)
	case TransitionAction:
		return NewActionTransition(target, arg1, arg2, arg3 != 0)
	case TransitionSet:
		return NewSetTransition(target, sets[arg1])
	case TransitionNotSet:
		return NewNotSetTransition(target, sets[arg1])
	case TransitionWildcard:
		return NewWildcardTransition(target)
	case TransitionPrecedencePredicate:
		return NewPrecedencePredicateTransition(target, arg1)
	default:
		panic(&IllegalStateError{msg: "invalid transition serialization type"})
	}
}

func (d *ATNDeserializer) stateFactory(typeIndex int) ATNState {
	switch typeIndex {
	case ATNStateBasic:
		return NewBasicState()
	case ATNStateRuleStart:
		return NewRuleStartState()
	case ATNStateBlockStart:
		return NewBasicBlockStartState()
	case ATNStatePlusBlockStart:
		return NewPlusBlockStartState()
	case ATNStateStarBlockStart:
		return NewStarBlockStartState()
	case ATNStateTokenStart:
		return NewTokensStartState()
	case ATNStateRuleStop:
		return NewRuleStopState()
	case ATNStateBlockEnd:
		return NewBlockEndState()
	case ATNStateStarLoopBack:
		return NewStarLoopbackState()
	case ATNStateStarLoopEntry:
		return NewStarLoopEntryState()
	case ATNStatePlusLoopBack:
		return NewPlusLoopbackState()
	case ATNStateLoopEnd:
		return NewLoopEndState()
	default:
		panic(&IllegalStateError{msg: "invalid ATN state serialization type"})
	}
}

func (d *ATNDeserializer) lexerActionFactory(typeIndex, data1, data2 int) LexerAction {
	switch typeIndex {
	case LexerActionTypeChannel:
		return NewLexerChannelAction(data1)
	case LexerActionTypeCustom:
		return NewLexerCustomAction(data1, data2)
	case LexerActionTypeMode:
		return NewLexerModeAction(data1)
	case LexerActionTypeMore:
		return LexerMoreActionINSTANCE
	case LexerActionTypePopMode:
		return LexerPopModeActionINSTANCE
	case LexerActionTypePushMode:
		return NewLexerPushModeAction(data1)
	case LexerActionTypeSkip:
		return LexerSkipActionINSTANCE
	case LexerActionTypeType:
		return NewLexerTypeAction(data1)
	default:
		panic(&IllegalStateError{msg: "invalid lexer action serialization type"})
	}
}
