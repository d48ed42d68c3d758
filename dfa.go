// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/exp/maps"
)

// DFA is the lazily-built deterministic automaton backing one decision
// (or, for a lexer, one mode). States are discovered on demand as the
// simulators walk new input; previously-seen state-sets are interned so
// the same ATN-config-set is never represented by two DFAState objects.
// Concurrent goroutines may share a recognizer and its DFAs, so all
// mutation is guarded by mu.
type DFA struct {
	mu sync.RWMutex

	// states interns discovered states by their structural hash,
	// mirroring PredictionContextCache's bucket-by-hash scheme.
	states map[int][]*DFAState

	s0 *DFAState

	// s0Precedence is the per-precedence start state used by
	// left-recursive decisions, keyed by the enclosing rule's current
	// precedence level.
	s0Precedence map[int]*DFAState

	decision int

	atnStartState ATNState

	// Precedence marks decisions belonging to left-recursive rules,
	// where closure must respect precedence filtering.
	Precedence bool

	numStates int
}

func NewDFA(atnStartState ATNState, decision int) *DFA {
	_, isPrecedence := atnStartState.(*StarLoopEntryState)
	d := &DFA{
		states:        make(map[int][]*DFAState),
		decision:      decision,
		atnStartState: atnStartState,
	}
	if isPrecedence && atnStartState.(*StarLoopEntryState).IsPrecedenceDecision {
		d.Precedence = true
		d.s0Precedence = make(map[int]*DFAState)
	}
	return d
}

func (d *DFA) GetDecision() int          { return d.decision }
func (d *DFA) GetATNStartState() ATNState { return d.atnStartState }

func (d *DFA) GetS0() *DFAState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.s0
}

func (d *DFA) SetS0(s *DFAState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.s0 = s
}

func (d *DFA) GetPrecedenceStartState(precedence int) *DFAState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.s0Precedence == nil {
		return nil
	}
	return d.s0Precedence[precedence]
}

func (d *DFA) SetPrecedenceStartState(precedence int, s *DFAState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.s0Precedence == nil {
		d.s0Precedence = make(map[int]*DFAState)
	}
	d.s0Precedence[precedence] = s
}

// AddState interns newState: if a structurally equal state is already
// present its existing instance is returned, otherwise newState is
// registered (given a fresh state number) and returned.
func (d *DFA) AddState(newState *DFAState) *DFAState {
	d.mu.Lock()
	defer d.mu.Unlock()
	h := newState.Hash()
	for _, existing := range d.states[h] {
		if existing.Equals(newState) {
			return existing
		}
	}
	newState.SetStateNumber(d.numStates)
	d.numStates++
	d.states[h] = append(d.states[h], newState)
	return newState
}

func (d *DFA) NumStates() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.numStates
}

// sortedStates returns every interned state ordered by state number,
// for deterministic debug output; the iteration order of d.states
// itself (a Go map) is not stable across runs.
func (d *DFA) sortedStates() []*DFAState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	all := make([]*DFAState, 0, d.numStates)
	for _, bucket := range maps.Values(d.states) {
		all = append(all, bucket...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].stateNumber < all[j].stateNumber })
	return all
}

// String renders the DFA in the same "state->edges" textual form the
// tool's -Dlog diagnostics use, with literal or symbolic token names
// substituted for token types when available.
func (d *DFA) String(literalNames, symbolicNames []string) string {
	states := d.sortedStates()
	if len(states) == 0 {
		return ""
	}
	var b strings.Builder
	for _, s := range states {
		edgeSymbols := maps.Keys(s.edges)
		sort.Ints(edgeSymbols)
		for _, symbol := range edgeSymbols {
			target := s.edges[symbol]
			b.WriteString(dfaStateLabel(s))
			b.WriteString("-")
			b.WriteString(dfaEdgeLabel(symbol, literalNames, symbolicNames))
			b.WriteString("->")
			b.WriteString(dfaStateLabel(target))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func dfaStateLabel(s *DFAState) string {
	if s.isAcceptState {
		if len(s.Predicates) > 0 {
			return ":s" + strconv.Itoa(s.stateNumber) + "=>" + predsToString(s.Predicates)
		}
		return ":s" + strconv.Itoa(s.stateNumber) + "=>" + strconv.Itoa(s.Prediction)
	}
	return "s" + strconv.Itoa(s.stateNumber)
}

func predsToString(preds []*PredPrediction) string {
	parts := make([]string, len(preds))
	for i, p := range preds {
		parts[i] = strconv.Itoa(p.Alt)
	}
	return strings.Join(parts, ",")
}

func dfaEdgeLabel(symbol int, literalNames, symbolicNames []string) string {
	if symbol == TokenEOF {
		return "EOF"
	}
	if literalNames != nil && symbol >= 0 && symbol < len(literalNames) && literalNames[symbol] != "" {
		return literalNames[symbol]
	}
	if symbolicNames != nil && symbol >= 0 && symbol < len(symbolicNames) {
		return symbolicNames[symbol]
	}
	return strconv.Itoa(symbol)
}
