// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// ATNConfig is a (state, alt, context) triple tracked during closure
// computation: the ATN state reached, the alternative number that led
// there, the call-return context (PredictionContext) describing how to
// get back out of the current rule, and any semantic predicate still
// pending evaluation.
type ATNConfig struct {
	State               ATNState
	Alt                 int
	Context             PredictionContext
	SemanticContext      SemanticContext
	ReachesIntoOuterContext int

	// PrecedenceFilterSuppressed marks a config produced while pruning
	// lower-precedence alternatives of a left-recursive rule, so it is
	// not pruned a second time within the same closure.
	PrecedenceFilterSuppressed bool

	// lexer-only fields, populated by the lexer ATN simulator's closure.
	LexerActionExecutor *LexerActionExecutor

	// Passed0Mode marks a config whose path already passed through a
	// non-greedy decision state. The lexer's closure and
	// getReachableConfigSet drop such configs once their alt has
	// reached an accept state, so a non-greedy loop stops at its
	// shortest match.
	Passed0Mode bool
}

// NewATNConfig constructs a config, defaulting the semantic context to
// the always-true sentinel when none is supplied.
func NewATNConfig(state ATNState, alt int, context PredictionContext, semCtx SemanticContext) *ATNConfig {
	if semCtx == nil {
		semCtx = SemanticContextNone
	}
	return &ATNConfig{State: state, Alt: alt, Context: context, SemanticContext: semCtx}
}

// NewATNConfigFrom copies c, overriding the state.
func NewATNConfigFrom(c *ATNConfig, state ATNState) *ATNConfig {
	clone := *c
	clone.State = state
	return &clone
}

// NewATNConfigFromWithContext copies c, overriding state and context.
func NewATNConfigFromWithContext(c *ATNConfig, state ATNState, context PredictionContext) *ATNConfig {
	clone := *c
	clone.State = state
	clone.Context = context
	return &clone
}

// NewATNConfigFull copies c, overriding state, context and semantic
// context.
func NewATNConfigFull(c *ATNConfig, state ATNState, context PredictionContext, semCtx SemanticContext) *ATNConfig {
	clone := *c
	clone.State = state
	clone.Context = context
	clone.SemanticContext = semCtx
	return &clone
}

// configKey is the dedup/merge key: configs with equal (state, alt,
// semantic-context) are the same config for set-insertion purposes -
// Context is deliberately excluded so that two configs differing only
// in their call-return context get merged (via MergePredictionContexts)
// into one entry instead of kept as separate elements.
type configKey struct {
	state   int
	alt     int
	semHash int
}

func (c *ATNConfig) key() configKey {
	semHash := 1
	if c.SemanticContext != nil {
		semHash = c.SemanticContext.hash()
	}
	return configKey{state: c.State.GetStateNumber(), alt: c.Alt, semHash: semHash}
}

// closureKey additionally distinguishes by context, unlike key(): within
// a single closure computation, the same (state, alt) reached through
// two different call-return contexts is not "already visited" the way
// it is for configKey's merge purposes - losing that distinction would
// prune a path that still needs expanding in its own right.
type closureKey struct {
	configKey
	ctxHash int
}

func (c *ATNConfig) closureKey() closureKey {
	ctxHash := 1
	if c.Context != nil {
		ctxHash = c.Context.Hash()
	}
	return closureKey{configKey: c.key(), ctxHash: ctxHash}
}

func (c *ATNConfig) equals(o *ATNConfig) bool {
	if c == o {
		return true
	}
	if c.State.GetStateNumber() != o.State.GetStateNumber() || c.Alt != o.Alt {
		return false
	}
	ctxEq := c.Context == o.Context || (c.Context != nil && o.Context != nil && c.Context.Equals(o.Context))
	if !ctxEq {
		return false
	}
	return c.SemanticContext.equals(o.SemanticContext)
}

func (c *ATNConfig) String() string {
	alt := ""
	if c.Alt != ATNInvalidAltNumber {
		alt = fmt.Sprintf(",%d", c.Alt)
	}
	ctx := ""
	if c.Context != nil {
		ctx = fmt.Sprintf(",[%v]", c.Context)
	}
	sem := ""
	if c.SemanticContext != SemanticContextNone {
		sem = fmt.Sprintf(",%v", c.SemanticContext)
	}
	outer := ""
	if c.ReachesIntoOuterContext > 0 {
		outer = fmt.Sprintf(",up=%d", c.ReachesIntoOuterContext)
	}
	return fmt.Sprintf("(%d%s%s%s%s)", c.State.GetStateNumber(), alt, ctx, sem, outer)
}
