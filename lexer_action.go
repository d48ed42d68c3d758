// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// Lexer action kind tags, matching the serialized action table.
const (
	LexerActionTypeChannel  = 0
	LexerActionTypeCustom   = 1
	LexerActionTypeMode     = 2
	LexerActionTypeMore     = 3
	LexerActionTypePopMode  = 4
	LexerActionTypePushMode = 5
	LexerActionTypeSkip     = 6
	LexerActionTypeType     = 7
)

// LexerAction is one step of a lexer rule's command list (->skip,
// ->channel(HIDDEN), ->pushMode(X), a raw {action} block, and so on),
// executed by LexerActionExecutor once a token's extent is known.
type LexerAction interface {
	GetActionType() int
	// IsPositionDependent reports whether the action reads lexer state
	// that depends on where in the input it executes (the custom-action
	// case); such actions cannot be cached across input
	// positions the way the others can.
	IsPositionDependent() bool
	Execute(lexer Lexer)
	hash() int
	equals(other LexerAction) bool
}

type baseLexerAction struct {
	actionType int
}

func (b *baseLexerAction) GetActionType() int        { return b.actionType }
func (b *baseLexerAction) IsPositionDependent() bool { return false }
func (b *baseLexerAction) hash() int                  { return b.actionType }

// LexerSkipAction discards the current token ( -> skip).
type LexerSkipAction struct{ baseLexerAction }

var LexerSkipActionINSTANCE = &LexerSkipAction{baseLexerAction{LexerActionTypeSkip}}

func (a *LexerSkipAction) Execute(lexer Lexer)            { lexer.Skip() }
func (a *LexerSkipAction) equals(o LexerAction) bool      { _, ok := o.(*LexerSkipAction); return ok }
func (a *LexerSkipAction) String() string                 { return "skip" }

// LexerMoreAction continues lexing without emitting a token ( -> more).
type LexerMoreAction struct{ baseLexerAction }

var LexerMoreActionINSTANCE = &LexerMoreAction{baseLexerAction{LexerActionTypeMore}}

func (a *LexerMoreAction) Execute(lexer Lexer)       { lexer.More() }
func (a *LexerMoreAction) equals(o LexerAction) bool { _, ok := o.(*LexerMoreAction); return ok }
func (a *LexerMoreAction) String() string            { return "more" }

// LexerTypeAction overrides the emitted token's type ( -> type(X)).
type LexerTypeAction struct {
	baseLexerAction
	TokenType int
}

func NewLexerTypeAction(tokenType int) *LexerTypeAction {
	return &LexerTypeAction{baseLexerAction{LexerActionTypeType}, tokenType}
}

func (a *LexerTypeAction) Execute(lexer Lexer) { lexer.SetType(a.TokenType) }
func (a *LexerTypeAction) hash() int           { return combineHash(a.actionType, a.TokenType) }
func (a *LexerTypeAction) equals(o LexerAction) bool {
	t, ok := o.(*LexerTypeAction)
	return ok && a.TokenType == t.TokenType
}
func (a *LexerTypeAction) String() string { return fmt.Sprintf("type(%d)", a.TokenType) }

// LexerPushModeAction pushes the current mode and switches to another
// ( -> pushMode(X)).
type LexerPushModeAction struct {
	baseLexerAction
	Mode int
}

func NewLexerPushModeAction(mode int) *LexerPushModeAction {
	return &LexerPushModeAction{baseLexerAction{LexerActionTypePushMode}, mode}
}

func (a *LexerPushModeAction) Execute(lexer Lexer) { lexer.PushMode(a.Mode) }
func (a *LexerPushModeAction) hash() int           { return combineHash(a.actionType, a.Mode) }
func (a *LexerPushModeAction) equals(o LexerAction) bool {
	t, ok := o.(*LexerPushModeAction)
	return ok && a.Mode == t.Mode
}
func (a *LexerPushModeAction) String() string { return fmt.Sprintf("pushMode(%d)", a.Mode) }

// LexerPopModeAction pops back to the previously pushed mode ( -> popMode).
type LexerPopModeAction struct{ baseLexerAction }

var LexerPopModeActionINSTANCE = &LexerPopModeAction{baseLexerAction{LexerActionTypePopMode}}

func (a *LexerPopModeAction) Execute(lexer Lexer) { lexer.PopMode() }
func (a *LexerPopModeAction) equals(o LexerAction) bool {
	_, ok := o.(*LexerPopModeAction)
	return ok
}
func (a *LexerPopModeAction) String() string { return "popMode" }

// LexerModeAction switches mode without pushing ( -> mode(X)).
type LexerModeAction struct {
	baseLexerAction
	Mode int
}

func NewLexerModeAction(mode int) *LexerModeAction {
	return &LexerModeAction{baseLexerAction{LexerActionTypeMode}, mode}
}

func (a *LexerModeAction) Execute(lexer Lexer) { lexer.SetMode(a.Mode) }
func (a *LexerModeAction) hash() int           { return combineHash(a.actionType, a.Mode) }
func (a *LexerModeAction) equals(o LexerAction) bool {
	t, ok := o.(*LexerModeAction)
	return ok && a.Mode == t.Mode
}
func (a *LexerModeAction) String() string { return fmt.Sprintf("mode(%d)", a.Mode) }

// LexerChannelAction routes the token to a non-default channel
// ( -> channel(X)).
type LexerChannelAction struct {
	baseLexerAction
	Channel int
}

func NewLexerChannelAction(channel int) *LexerChannelAction {
	return &LexerChannelAction{baseLexerAction{LexerActionTypeChannel}, channel}
}

func (a *LexerChannelAction) Execute(lexer Lexer) { lexer.SetChannel(a.Channel) }
func (a *LexerChannelAction) hash() int           { return combineHash(a.actionType, a.Channel) }
func (a *LexerChannelAction) equals(o LexerAction) bool {
	t, ok := o.(*LexerChannelAction)
	return ok && a.Channel == t.Channel
}
func (a *LexerChannelAction) String() string { return fmt.Sprintf("channel(%d)", a.Channel) }

// LexerCustomAction invokes a generated lexer's numbered action method,
// the escape hatch for raw `{ ... }` action blocks embedded in a rule.
type LexerCustomAction struct {
	baseLexerAction
	RuleIndex   int
	ActionIndex int
}

func NewLexerCustomAction(ruleIndex, actionIndex int) *LexerCustomAction {
	return &LexerCustomAction{baseLexerAction{LexerActionTypeCustom}, ruleIndex, actionIndex}
}

func (a *LexerCustomAction) IsPositionDependent() bool { return true }
func (a *LexerCustomAction) Execute(lexer Lexer)       { lexer.Action(nil, a.RuleIndex, a.ActionIndex) }
func (a *LexerCustomAction) hash() int {
	return combineHash(combineHash(a.actionType, a.RuleIndex), a.ActionIndex)
}
func (a *LexerCustomAction) equals(o LexerAction) bool {
	t, ok := o.(*LexerCustomAction)
	return ok && a.RuleIndex == t.RuleIndex && a.ActionIndex == t.ActionIndex
}
func (a *LexerCustomAction) String() string {
	return fmt.Sprintf("custom(%d,%d)", a.RuleIndex, a.ActionIndex)
}

// LexerIndexedCustomAction wraps another action with the input offset
// at which it must execute, used when a position-dependent action is
// cached inside a DFA accept state built from input seen earlier.
type LexerIndexedCustomAction struct {
	baseLexerAction
	Offset int
	Action LexerAction
}

func NewLexerIndexedCustomAction(offset int, action LexerAction) *LexerIndexedCustomAction {
	return &LexerIndexedCustomAction{baseLexerAction{action.GetActionType()}, offset, action}
}

func (a *LexerIndexedCustomAction) IsPositionDependent() bool { return true }
func (a *LexerIndexedCustomAction) Execute(lexer Lexer)       { a.Action.Execute(lexer) }
func (a *LexerIndexedCustomAction) hash() int {
	return combineHash(combineHash(a.actionType, a.Offset), a.Action.hash())
}
func (a *LexerIndexedCustomAction) equals(o LexerAction) bool {
	t, ok := o.(*LexerIndexedCustomAction)
	return ok && a.Offset == t.Offset && a.Action.equals(t.Action)
}

// LexerActionExecutor runs a token's full action list and caches the
// list on a DFA accept state, so repeated matches of the same lexer
// rule don't recompute it. A position-dependent action forces a fresh
// executor (with that action's offset fixed up) rather than reuse.
type LexerActionExecutor struct {
	LexerActions []LexerAction
	cachedHash   int
}

func NewLexerActionExecutor(actions []LexerAction) *LexerActionExecutor {
	e := &LexerActionExecutor{LexerActions: actions}
	h := 1
	for _, a := range actions {
		h = combineHash(h, a.hash())
	}
	e.cachedHash = h
	return e
}

// LexerActionExecutorAppend returns an executor combining executor's
// actions (if any) with action appended, used while building up a
// lexer rule's command list during ATN closure.
func LexerActionExecutorAppend(executor *LexerActionExecutor, action LexerAction) *LexerActionExecutor {
	if executor == nil {
		return NewLexerActionExecutor([]LexerAction{action})
	}
	actions := make([]LexerAction, len(executor.LexerActions)+1)
	copy(actions, executor.LexerActions)
	actions[len(executor.LexerActions)] = action
	return NewLexerActionExecutor(actions)
}

// FixOffsetBeforeMatch rewrites every position-dependent action to carry
// its offset relative to the token's start, since by match time the
// lexer's input cursor has moved on past where the action was recorded
// during closure.
func (e *LexerActionExecutor) FixOffsetBeforeMatch(offset int) *LexerActionExecutor {
	var updated []LexerAction
	for i, a := range e.LexerActions {
		if _, indexed := a.(*LexerIndexedCustomAction); a.IsPositionDependent() && !indexed {
			if updated == nil {
				updated = make([]LexerAction, len(e.LexerActions))
				copy(updated, e.LexerActions)
			}
			updated[i] = NewLexerIndexedCustomAction(offset, a)
		}
	}
	if updated == nil {
		return e
	}
	return NewLexerActionExecutor(updated)
}

// Execute runs every action in order against lexer, restoring the input
// cursor around any indexed (position-dependent) action so it sees the
// input exactly as it stood when that action was recorded.
func (e *LexerActionExecutor) Execute(lexer Lexer, input CharStream, startIndex int) {
	requiresSeek := false
	stopIndex := input.Index()
	defer func() {
		if requiresSeek {
			input.Seek(stopIndex)
		}
	}()

	for _, a := range e.LexerActions {
		if idx, ok := a.(*LexerIndexedCustomAction); ok {
			position := startIndex + idx.Offset
			input.Seek(position)
			requiresSeek = input.Index() != stopIndex
			idx.Action.Execute(lexer)
		} else {
			a.Execute(lexer)
		}
	}
}

func (e *LexerActionExecutor) Hash() int { return e.cachedHash }

func (e *LexerActionExecutor) Equals(o *LexerActionExecutor) bool {
	if e == o {
		return true
	}
	if o == nil || len(e.LexerActions) != len(o.LexerActions) {
		return false
	}
	for i := range e.LexerActions {
		if !e.LexerActions[i].equals(o.LexerActions[i]) {
			return false
		}
	}
	return true
}
