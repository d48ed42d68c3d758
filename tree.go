// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// Tree is the uniform parse-tree node interface every context
// satisfies, letting listeners/visitors dispatch without per-rule
// downcasts.
type Tree interface {
	GetParent() Tree
	GetChild(i int) Tree
	GetChildCount() int
	GetChildren() []Tree
}

// ParseTree additionally exposes the token range and text a node spans,
// and accepts a ParseTreeVisitor for double-dispatch traversal.
type ParseTree interface {
	Tree
	GetSourceInterval() Interval
	GetText() string
	Accept(visitor ParseTreeVisitor) interface{}
	ToStringTree(ruleNames []string) string
}

// TerminalNode wraps a single matched Token as a tree leaf.
type TerminalNode interface {
	ParseTree
	GetSymbol() Token
}

// ErrorNode marks a token consumed during error recovery.
type ErrorNode interface{ TerminalNode }

// RuleNode is satisfied by every generated rule-context struct.
type RuleNode interface {
	ParseTree
	GetRuleContext() RuleContext
}

// ParseTreeVisitor is the double-dispatch surface: generated visitors
// implement Visit* methods and route through VisitChildren for
// aggregation. This package provides no default visitor base.
type ParseTreeVisitor interface {
	Visit(tree ParseTree) interface{}
	VisitChildren(node RuleNode) interface{}
	VisitTerminal(node TerminalNode) interface{}
	VisitErrorNode(node ErrorNode) interface{}
}

// ParseTreeListener is the enter/exit pair generated listeners
// implement; ParseTreeWalker drives it depth-first.
type ParseTreeListener interface {
	VisitTerminal(node TerminalNode)
	VisitErrorNode(node ErrorNode)
	EnterEveryRule(ctx ParserRuleContext)
	ExitEveryRule(ctx ParserRuleContext)
}

// BaseParseTreeListener provides no-op defaults so generated listeners
// only override what they need.
type BaseParseTreeListener struct{}

func (b *BaseParseTreeListener) VisitTerminal(TerminalNode)    {}
func (b *BaseParseTreeListener) VisitErrorNode(ErrorNode)      {}
func (b *BaseParseTreeListener) EnterEveryRule(ParserRuleContext) {}
func (b *BaseParseTreeListener) ExitEveryRule(ParserRuleContext)  {}

// ParseTreeWalker performs the depth-first traversal that drives
// listener callbacks over a finished parse tree.
type ParseTreeWalker struct{}

func NewParseTreeWalker() *ParseTreeWalker { return &ParseTreeWalker{} }

func (w *ParseTreeWalker) Walk(listener ParseTreeListener, t ParseTree) {
	switch v := t.(type) {
	case *ErrorNodeImpl:
		listener.VisitErrorNode(v)
		return
	case TerminalNode:
		listener.VisitTerminal(v)
		return
	}
	rule := t.(RuleNode).GetRuleContext().(ParserRuleContext)
	rule.EnterRule(listener)
	listener.EnterEveryRule(rule)
	for i := 0; i < t.GetChildCount(); i++ {
		w.Walk(listener, t.GetChild(i).(ParseTree))
	}
	listener.ExitEveryRule(rule)
	rule.ExitRule(listener)
}

// TerminalNodeImpl is the default TerminalNode implementation, a leaf
// wrapping a matched Token.
type TerminalNodeImpl struct {
	parent RuleContext
	symbol Token
}

func NewTerminalNodeImpl(symbol Token) *TerminalNodeImpl { return &TerminalNodeImpl{symbol: symbol} }

func (t *TerminalNodeImpl) GetChild(int) Tree       { return nil }
func (t *TerminalNodeImpl) GetChildCount() int      { return 0 }
func (t *TerminalNodeImpl) GetChildren() []Tree     { return nil }
func (t *TerminalNodeImpl) GetSymbol() Token        { return t.symbol }
func (t *TerminalNodeImpl) GetParent() Tree {
	if t.parent == nil {
		return nil
	}
	return t.parent
}
func (t *TerminalNodeImpl) SetParent(p RuleContext) { t.parent = p }

func (t *TerminalNodeImpl) GetSourceInterval() Interval {
	if t.symbol == nil {
		return Interval{Start: -1, Stop: -2}
	}
	return Interval{Start: t.symbol.GetTokenIndex(), Stop: t.symbol.GetTokenIndex()}
}

func (t *TerminalNodeImpl) GetText() string {
	if t.symbol == nil {
		return ""
	}
	return t.symbol.GetText()
}

func (t *TerminalNodeImpl) ToStringTree([]string) string { return t.GetText() }

func (t *TerminalNodeImpl) Accept(v ParseTreeVisitor) interface{} { return v.VisitTerminal(t) }

func (t *TerminalNodeImpl) String() string {
	if t.symbol == nil {
		return "<EOF>"
	}
	return t.symbol.GetText()
}

// ErrorNodeImpl marks tokens consumed by error recovery so listeners can
// distinguish them from normal terminals.
type ErrorNodeImpl struct{ TerminalNodeImpl }

func NewErrorNodeImpl(symbol Token) *ErrorNodeImpl {
	return &ErrorNodeImpl{TerminalNodeImpl{symbol: symbol}}
}

func (e *ErrorNodeImpl) Accept(v ParseTreeVisitor) interface{} { return v.VisitErrorNode(e) }
