// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// SemanticContext is a tree of user predicates (AND/OR of Predicate and
// PrecedencePredicate leaves) attached to an ATNConfig. Evaluated at
// decision boundaries; predicated configs are pruned when their
// predicate fails.
type SemanticContext interface {
	Eval(parser Recognizer, outerContext RuleContext) bool
	hash() int
	equals(other SemanticContext) bool
}

// SemanticContextNone is the canonical "always true" predicate, used as
// the default for configs with no attached predicate.
var SemanticContextNone SemanticContext = &PredicateContext{RuleIndex: -1, PredIndex: -1, IsCtxDependent: false}

// PredicateContext wraps a single PREDICATE transition's (rule, index)
// pair.
type PredicateContext struct {
	RuleIndex      int
	PredIndex      int
	IsCtxDependent bool
}

func (p *PredicateContext) Eval(parser Recognizer, outerContext RuleContext) bool {
	if p == SemanticContextNone {
		return true
	}
	var localctx RuleContext
	if p.IsCtxDependent {
		localctx = outerContext
	}
	return parser.Sempred(localctx, p.RuleIndex, p.PredIndex)
}

func (p *PredicateContext) hash() int {
	return combineHash(combineHash(p.RuleIndex, p.PredIndex), boolHash(p.IsCtxDependent))
}

func (p *PredicateContext) equals(other SemanticContext) bool {
	o, ok := other.(*PredicateContext)
	return ok && o.RuleIndex == p.RuleIndex && o.PredIndex == p.PredIndex && o.IsCtxDependent == p.IsCtxDependent
}

// PrecedencePredicate wraps a PRECEDENCE_PREDICATE transition; true iff
// the predicate's precedence is >= the rule's current precedence (the
// same test as Parser.Precpred).
type PrecedencePredicate struct{ Precedence int }

func (p *PrecedencePredicate) Eval(parser Recognizer, outerContext RuleContext) bool {
	if pp, ok := parser.(PrecedenceEvaluator); ok {
		return p.Precedence >= pp.GetPrecedence()
	}
	return true
}

func (p *PrecedencePredicate) hash() int { return p.Precedence * 31 }

func (p *PrecedencePredicate) equals(other SemanticContext) bool {
	o, ok := other.(*PrecedencePredicate)
	return ok && o.Precedence == p.Precedence
}

// PrecedenceEvaluator is implemented by parsers with left-recursive
// rules, exposing the currently active precedence level.
type PrecedenceEvaluator interface {
	GetPrecedence() int
}

// AndContext / OrContext combine sub-predicates; SemanticContextAnd/
// SemanticContextOr flatten nested same-kind operands the way the real
// runtime's simplification pass does.
type AndContext struct{ opnds []SemanticContext }
type OrContext struct{ opnds []SemanticContext }

func SemanticContextAnd(a, b SemanticContext) SemanticContext {
	if a == SemanticContextNone || a == nil {
		return b
	}
	if b == SemanticContextNone || b == nil {
		return a
	}
	operands := make([]SemanticContext, 0, 2)
	operands = appendAndOperand(operands, a)
	operands = appendAndOperand(operands, b)
	if len(operands) == 1 {
		return operands[0]
	}
	return &AndContext{opnds: operands}
}

func appendAndOperand(acc []SemanticContext, c SemanticContext) []SemanticContext {
	if and, ok := c.(*AndContext); ok {
		return append(acc, and.opnds...)
	}
	return append(acc, c)
}

func (a *AndContext) Eval(parser Recognizer, outerContext RuleContext) bool {
	for _, o := range a.opnds {
		if !o.Eval(parser, outerContext) {
			return false
		}
	}
	return true
}

func (a *AndContext) hash() int {
	h := 0
	for _, o := range a.opnds {
		h = combineHash(h, o.hash())
	}
	return h
}

func (a *AndContext) equals(other SemanticContext) bool {
	o, ok := other.(*AndContext)
	return ok && semCtxSliceEqual(a.opnds, o.opnds)
}

func SemanticContextOr(a, b SemanticContext) SemanticContext {
	if a == SemanticContextNone || a == nil {
		return SemanticContextNone
	}
	if b == SemanticContextNone || b == nil {
		return SemanticContextNone
	}
	operands := make([]SemanticContext, 0, 2)
	operands = appendOrOperand(operands, a)
	operands = appendOrOperand(operands, b)
	if len(operands) == 1 {
		return operands[0]
	}
	return &OrContext{opnds: operands}
}

func appendOrOperand(acc []SemanticContext, c SemanticContext) []SemanticContext {
	if or, ok := c.(*OrContext); ok {
		return append(acc, or.opnds...)
	}
	return append(acc, c)
}

func (o *OrContext) Eval(parser Recognizer, outerContext RuleContext) bool {
	for _, x := range o.opnds {
		if x.Eval(parser, outerContext) {
			return true
		}
	}
	return false
}

func (o *OrContext) hash() int {
	h := 0
	for _, x := range o.opnds {
		h = combineHash(h, x.hash())
	}
	return h
}

func (o *OrContext) equals(other SemanticContext) bool {
	x, ok := other.(*OrContext)
	return ok && semCtxSliceEqual(o.opnds, x.opnds)
}

func semCtxSliceEqual(a, b []SemanticContext) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].equals(b[i]) {
			return false
		}
	}
	return true
}

func combineHash(a, b int) int { return a*31 + b }

func boolHash(b bool) int {
	if b {
		return 1
	}
	return 0
}
