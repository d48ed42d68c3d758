// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// Recognizer is implemented by both generated lexers and parsers; the
// simulators call back into it for Sempred/Action evaluation and state
// name lookups.
type Recognizer interface {
	GetATN() *ATN
	Sempred(localctx RuleContext, ruleIndex, actionIndex int) bool
	Action(localctx RuleContext, ruleIndex, actionIndex int)

	GetState() int
	SetState(v int)

	AddErrorListener(l ErrorListener)
	RemoveErrorListeners()
	GetErrorListenerDispatch() ErrorListener

	GetRuleNames() []string
}

// BaseRecognizer holds the fields and default behavior shared by Lexer
// and Parser: the error-listener dispatch list, the current ATN state
// and the rule names.
type BaseRecognizer struct {
	ErrorListenerDispatch

	state     int
	ruleNames []string
}

func NewBaseRecognizer(ruleNames []string) *BaseRecognizer {
	b := &BaseRecognizer{state: -1, ruleNames: ruleNames}
	b.AddErrorListener(ConsoleErrorListenerINSTANCE)
	return b
}

func (b *BaseRecognizer) GetState() int       { return b.state }
func (b *BaseRecognizer) SetState(v int)      { b.state = v }
func (b *BaseRecognizer) GetRuleNames() []string { return b.ruleNames }

func (b *BaseRecognizer) GetErrorListenerDispatch() ErrorListener { return &b.ErrorListenerDispatch }

// Sempred/Action defaults: generated recognizers override these via
// embedding; the base always accepts.
func (b *BaseRecognizer) Sempred(_ RuleContext, _, _ int) bool { return true }
func (b *BaseRecognizer) Action(_ RuleContext, _, _ int)       {}
