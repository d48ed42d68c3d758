// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// Parser is the contract every generated parser's struct satisfies by
// embedding BaseParser: the Recognizer surface plus the handful of
// calls a generated rule method makes (Match, AdaptivePredict,
// EnterRule/ExitRule bookkeeping, error delegation).
type Parser interface {
	Recognizer

	GetInterpreter() *ParserATNSimulator
	GetInputStream() IntStream
	GetTokenStream() TokenStream
	SetTokenStream(TokenStream)
	GetTokenFactory() TokenFactory

	GetCurrentToken() Token
	Consume() Token
	Match(ttype int) Token
	MatchWildcard() Token

	GetParserRuleContext() ParserRuleContext
	SetParserRuleContext(ParserRuleContext)
	EnterRule(localctx ParserRuleContext, state, ruleIndex int)
	ExitRule()
	EnterOuterAlt(localctx ParserRuleContext, altNum int)
	EnterRecursionRule(localctx ParserRuleContext, state, ruleIndex, precedence int)
	PushNewRecursionContext(localctx ParserRuleContext, state, ruleIndex int)
	UnrollRecursionContexts(parentCtx ParserRuleContext)

	GetErrorHandler() ErrorStrategy
	SetErrorHandler(ErrorStrategy)
	NotifyErrorListeners(msg string, offending Token, e RecognitionException)
	GetExpectedTokens() *IntervalSet

	GetPrecedence() int
	Precpred(localctx RuleContext, precedence int) bool

	GetLiteralNames() []string
	GetSymbolicNames() []string

	AddParseListener(ParseTreeListener)
	TriggerEnterRuleEvent()
	TriggerExitRuleEvent()
}

// BaseParser is embedded by every generated parser. It drives the same
// Match/Consume/error-recovery loop across every rule method the
// generator emits, leaving each rule free to just call Match,
// AdaptivePredict and EnterRule/ExitRule around its own grammar logic.
type BaseParser struct {
	*BaseRecognizer

	Virt Parser

	Interpreter *ParserATNSimulator

	input TokenStream
	ctx   ParserRuleContext

	errHandler ErrorStrategy

	// precedenceStack tracks the minimum precedence a left-recursive
	// rule's current invocation will accept, one entry per nested
	// recursive call.
	precedenceStack []int

	buildParseTrees bool
	parseListeners  []ParseTreeListener

	literalNames  []string
	symbolicNames []string

	matchedEOF bool
}

func NewBaseParser(input TokenStream, ruleNames, literalNames, symbolicNames []string) *BaseParser {
	p := &BaseParser{
		BaseRecognizer:  NewBaseRecognizer(ruleNames),
		input:           input,
		errHandler:      NewDefaultErrorStrategy(),
		precedenceStack: []int{0},
		buildParseTrees: true,
		literalNames:    literalNames,
		symbolicNames:   symbolicNames,
	}
	return p
}

func (p *BaseParser) GetInterpreter() *ParserATNSimulator { return p.Interpreter }
func (p *BaseParser) GetATN() *ATN                        { return p.Interpreter.atn }

func (p *BaseParser) GetInputStream() IntStream { return p.input }
func (p *BaseParser) GetTokenStream() TokenStream { return p.input }
func (p *BaseParser) SetTokenStream(ts TokenStream) { p.input = ts }

func (p *BaseParser) GetTokenFactory() TokenFactory { return CommonTokenFactoryDefault }

func (p *BaseParser) GetLiteralNames() []string  { return p.literalNames }
func (p *BaseParser) GetSymbolicNames() []string { return p.symbolicNames }

func (p *BaseParser) GetErrorHandler() ErrorStrategy   { return p.errHandler }
func (p *BaseParser) SetErrorHandler(h ErrorStrategy)  { p.errHandler = h }

func (p *BaseParser) GetParserRuleContext() ParserRuleContext     { return p.ctx }
func (p *BaseParser) SetParserRuleContext(ctx ParserRuleContext) { p.ctx = ctx }

func (p *BaseParser) SetBuildParseTrees(v bool) { p.buildParseTrees = v }

func (p *BaseParser) AddParseListener(l ParseTreeListener) {
	p.parseListeners = append(p.parseListeners, l)
}

func (p *BaseParser) TriggerEnterRuleEvent() {
	for _, l := range p.parseListeners {
		p.ctx.EnterRule(l)
		l.EnterEveryRule(p.ctx)
	}
}

func (p *BaseParser) TriggerExitRuleEvent() {
	for i := len(p.parseListeners) - 1; i >= 0; i-- {
		l := p.parseListeners[i]
		l.ExitEveryRule(p.ctx)
		p.ctx.ExitRule(l)
	}
}

func (p *BaseParser) GetCurrentToken() Token { return p.input.LT(1) }

func (p *BaseParser) NotifyErrorListeners(msg string, offending Token, e RecognitionException) {
	line, column := -1, -1
	if offending != nil {
		line = offending.GetLine()
		column = offending.GetColumn()
	}
	p.GetErrorListenerDispatch().SyntaxError(p.Virt, offending, line, column, msg, e)
}

// Consume advances the input by one token, attaching it as a child of
// the current rule context when parse-tree building is enabled.
func (p *BaseParser) Consume() Token {
	o := p.GetCurrentToken()
	if o.GetTokenType() != TokenEOF {
		p.input.Consume()
	}
	hasListener := p.ctx != nil && p.buildParseTrees
	if hasListener {
		if o.GetTokenType() == TokenInvalidType {
			p.ctx.AddErrorNode(o)
		} else {
			p.ctx.AddTokenNode(o)
		}
	}
	return o
}

// Match consumes the current token if it has type ttype, otherwise
// delegates to the error strategy's single-token recovery.
func (p *BaseParser) Match(ttype int) Token {
	t := p.GetCurrentToken()
	if t.GetTokenType() == ttype {
		p.errHandler.ReportMatch(p.Virt)
		return p.Consume()
	}
	return p.errHandler.RecoverInline(p.Virt)
}

// MatchWildcard consumes the current token regardless of its type,
// used for the "." wildcard element in a grammar rule.
func (p *BaseParser) MatchWildcard() Token {
	t := p.GetCurrentToken()
	if t.GetTokenType() == TokenEOF {
		return p.errHandler.RecoverInline(p.Virt)
	}
	p.errHandler.ReportMatch(p.Virt)
	return p.Consume()
}

func (p *BaseParser) GetExpectedTokens() *IntervalSet {
	return p.GetATN().GetExpectedTokens(p.GetState(), p.ctx)
}

func (p *BaseParser) GetPrecedence() int {
	if len(p.precedenceStack) == 0 {
		return -1
	}
	return p.precedenceStack[len(p.precedenceStack)-1]
}

// Precpred reports whether the active precedence level permits
// continuing the left-recursive rule at precedence, generated into
// every left-recursive alternative's semantic predicate.
func (p *BaseParser) Precpred(localctx RuleContext, precedence int) bool {
	return precedence >= p.GetPrecedence()
}

// EnterRule is called at the start of every generated rule method: it
// sets the current ATN state to state, makes localctx the current
// context, and fires listener callbacks.
func (p *BaseParser) EnterRule(localctx ParserRuleContext, state, ruleIndex int) {
	p.SetState(state)
	p.ctx = localctx
	p.ctx.SetStart(p.input.LT(1))
	if p.buildParseTrees {
		p.TriggerEnterRuleEvent()
	}
}

func (p *BaseParser) ExitRule() {
	p.ctx.SetStop(p.input.LT(-1))
	if p.buildParseTrees {
		p.TriggerExitRuleEvent()
	}
	p.SetState(p.ctx.GetInvokingState())
	if parent, ok := p.ctx.GetParentCtx().(ParserRuleContext); ok {
		p.ctx = parent
	}
}

func (p *BaseParser) EnterOuterAlt(localctx ParserRuleContext, altNum int) {
	if p.buildParseTrees && p.ctx != localctx {
		if parent, ok := p.ctx.GetParent().(ParserRuleContext); ok {
			parent.RemoveLastChild()
			parent.AddChild(localctx)
		}
	}
	p.ctx = localctx
}

// EnterRecursionRule starts a left-recursive rule: it pushes the
// invocation's minimum precedence and installs a bare placeholder
// context, since the rule's real context is built up incrementally by
// PushNewRecursionContext as each left-recursive alternative matches.
func (p *BaseParser) EnterRecursionRule(localctx ParserRuleContext, state, ruleIndex, precedence int) {
	p.SetState(state)
	p.precedenceStack = append(p.precedenceStack, precedence)
	p.ctx = localctx
	p.ctx.SetStart(p.input.LT(1))
}

// PushNewRecursionContext wraps the current context in a new one
// becoming its parent, the standard left-recursion-elimination
// rewrite: each successful recursive alternative grows the tree
// upward rather than recursing the call stack.
func (p *BaseParser) PushNewRecursionContext(localctx ParserRuleContext, state, ruleIndex int) {
	previous := p.ctx
	previous.SetParent(localctx)
	localctx.AddChild(previous)
	p.ctx = localctx
	p.ctx.SetStart(previous.GetStart())
	if p.buildParseTrees {
		p.TriggerEnterRuleEvent()
	}
}

// UnrollRecursionContexts closes out a left-recursive rule: it walks
// the chain of wrapper contexts PushNewRecursionContext built back down
// to parentCtx, firing exit events for each, then reattaches the final
// result under parentCtx.
func (p *BaseParser) UnrollRecursionContexts(parentCtx ParserRuleContext) {
	p.precedenceStack = p.precedenceStack[:len(p.precedenceStack)-1]
	p.ctx.SetStop(p.input.LT(-1))
	retCtx := p.ctx
	if p.buildParseTrees {
		for p.ctx != parentCtx {
			p.TriggerExitRuleEvent()
			parent, ok := p.ctx.GetParent().(ParserRuleContext)
			if !ok {
				break
			}
			p.ctx = parent
		}
	}
	p.ctx = parentCtx
	retCtx.SetParent(parentCtx)
}

// AdaptivePredict delegates to the parser ATN simulator to choose which
// alternative of decision to take, the hook every generated decision
// point (an alt block with more than one alternative) calls.
func (p *BaseParser) AdaptivePredict(input TokenStream, decision int, ctx ParserRuleContext) int {
	return p.Interpreter.AdaptivePredict(input, decision, ctx)
}

func (p *BaseParser) String() string {
	return fmt.Sprintf("Parser(state=%d)", p.GetState())
}
