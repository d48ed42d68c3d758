// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ParserRuleContext is the tree node produced for each rule invocation:
// parent pointer, invoking-state id, children, optional start/stop
// tokens and exception. Generated rule-specific contexts embed
// BaseParserRuleContext and add labelled-child/labelled-token accessors.
type ParserRuleContext interface {
	RuleContext

	SetStart(Token)
	GetStart() Token
	SetStop(Token)
	GetStop() Token

	AddChild(child RuleContext) RuleContext
	AddTokenNode(token Token) TerminalNode
	AddErrorNode(badToken Token) ErrorNode
	RemoveLastChild()

	SetException(RecognitionException)
	GetException() RecognitionException

	EnterRule(listener ParseTreeListener)
	ExitRule(listener ParseTreeListener)

	CopyFrom(ctx *BaseParserRuleContext)
}

// BaseParserRuleContext is embedded by every generated rule context.
// Lifecycle: constructed on rule entry, children appended as
// the rule body executes, finalized (Stop token set) on rule exit.
// Children are stored as the uniform ParseTree view so terminals, error nodes and nested rule
// contexts share one slice.
type BaseParserRuleContext struct {
	BaseRuleContext

	start, stop Token
	exception   RecognitionException
	children    []ParseTree
}

func NewBaseParserRuleContext(parent ParserRuleContext, invokingStateNumber int) *BaseParserRuleContext {
	var p RuleContext
	if parent != nil {
		p = parent
	}
	return &BaseParserRuleContext{BaseRuleContext: *NewBaseRuleContext(p, invokingStateNumber)}
}

func (c *BaseParserRuleContext) SetStart(t Token) { c.start = t }
func (c *BaseParserRuleContext) GetStart() Token  { return c.start }
func (c *BaseParserRuleContext) SetStop(t Token)  { c.stop = t }
func (c *BaseParserRuleContext) GetStop() Token   { return c.stop }

func (c *BaseParserRuleContext) SetException(e RecognitionException) { c.exception = e }
func (c *BaseParserRuleContext) GetException() RecognitionException  { return c.exception }

func (c *BaseParserRuleContext) AddChild(child RuleContext) RuleContext {
	c.children = append(c.children, child.(ParseTree))
	return child
}

func (c *BaseParserRuleContext) AddTokenNode(token Token) TerminalNode {
	node := NewTerminalNodeImpl(token)
	node.SetParent(c)
	c.children = append(c.children, node)
	return node
}

func (c *BaseParserRuleContext) AddErrorNode(badToken Token) ErrorNode {
	node := NewErrorNodeImpl(badToken)
	node.SetParent(c)
	c.children = append(c.children, node)
	return node
}

func (c *BaseParserRuleContext) RemoveLastChild() {
	if len(c.children) > 0 {
		c.children = c.children[:len(c.children)-1]
	}
}

func (c *BaseParserRuleContext) GetChildCount() int { return len(c.children) }

func (c *BaseParserRuleContext) GetChild(i int) Tree {
	if i < 0 || i >= len(c.children) {
		return nil
	}
	return c.children[i]
}

// GetChildOfType returns the i-th child assignable to RuleContext,
// skipping terminals/error nodes - the helper generated labelled-rule
// accessors (e.g. `ctx.Expr(0)`) are built on.
func (c *BaseParserRuleContext) GetChildOfType(i int, want RuleContext) RuleContext {
	count := 0
	for _, ch := range c.children {
		if rc, ok := ch.(RuleContext); ok {
			if want == nil || sameRuleType(rc, want) {
				if count == i {
					return rc
				}
				count++
			}
		}
	}
	return nil
}

func sameRuleType(a, b RuleContext) bool { return a.GetRuleIndex() == b.GetRuleIndex() }

func (c *BaseParserRuleContext) GetChildren() []Tree {
	out := make([]Tree, len(c.children))
	for i, ch := range c.children {
		out[i] = ch
	}
	return out
}

func (c *BaseParserRuleContext) GetParent() Tree {
	if c.parent == nil {
		return nil
	}
	return c.parent
}

func (c *BaseParserRuleContext) GetParentCtx() RuleContext { return c.parent }

func (c *BaseParserRuleContext) GetRuleContext() RuleContext { return c }

func (c *BaseParserRuleContext) GetSourceInterval() Interval {
	if c.start == nil {
		return Interval{Start: -1, Stop: -2}
	}
	if c.stop == nil || c.stop.GetTokenIndex() < c.start.GetTokenIndex() {
		return Interval{Start: c.start.GetTokenIndex(), Stop: c.start.GetTokenIndex() - 1}
	}
	return Interval{Start: c.start.GetTokenIndex(), Stop: c.stop.GetTokenIndex()}
}

// GetText concatenates the text of every child, recursing into nested
// rule contexts - the ANTLR convention for a rule's default textual
// representation.
func (c *BaseParserRuleContext) GetText() string {
	s := ""
	for _, ch := range c.children {
		s += ch.GetText()
	}
	return s
}

func (c *BaseParserRuleContext) Accept(v ParseTreeVisitor) interface{} { return v.VisitChildren(c) }

func (c *BaseParserRuleContext) EnterRule(listener ParseTreeListener) {}
func (c *BaseParserRuleContext) ExitRule(listener ParseTreeListener)  {}

// CopyFrom is used by labelled-alternative rule contexts: it duplicates
// the common fields (start/stop/parent/invokingState) from an
// unspecialized context into a concrete alt-specific subtype the way
// generated code does after a decision selects that alternative.
func (c *BaseParserRuleContext) CopyFrom(src *BaseParserRuleContext) {
	c.parent = src.parent
	c.invokingState = src.invokingState
	c.start = src.start
	c.stop = src.stop
}

func (c *BaseParserRuleContext) ToStringTree(ruleNames []string) string {
	return TreesStringTree(c, ruleNames)
}
