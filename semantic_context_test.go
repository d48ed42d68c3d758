package antlr

import "testing"

// fakeSempredRecognizer lets tests control what Sempred returns for a
// given (ruleIndex, predIndex), standing in for a generated recognizer's
// user-predicate dispatch.
type fakeSempredRecognizer struct {
	*BaseRecognizer
	result bool
}

func newFakeSempredRecognizer(result bool) *fakeSempredRecognizer {
	return &fakeSempredRecognizer{BaseRecognizer: NewBaseRecognizer(nil), result: result}
}

func (f *fakeSempredRecognizer) Sempred(_ RuleContext, _, _ int) bool { return f.result }
func (f *fakeSempredRecognizer) GetATN() *ATN                         { return nil }

func TestPredicateContextEval(t *testing.T) {
	p := &PredicateContext{RuleIndex: 1, PredIndex: 2}
	if !p.Eval(newFakeSempredRecognizer(true), nil) {
		t.Fatalf("expected Eval to delegate to Sempred and return true")
	}
	if p.Eval(newFakeSempredRecognizer(false), nil) {
		t.Fatalf("expected Eval to delegate to Sempred and return false")
	}
}

func TestSemanticContextNoneAlwaysTrue(t *testing.T) {
	if !SemanticContextNone.Eval(newFakeSempredRecognizer(false), nil) {
		t.Fatalf("SemanticContextNone must evaluate true regardless of the recognizer")
	}
}

func TestSemanticContextAndFlattensNestedAnd(t *testing.T) {
	a := &PredicateContext{RuleIndex: 0, PredIndex: 1}
	b := &PredicateContext{RuleIndex: 0, PredIndex: 2}
	c := &PredicateContext{RuleIndex: 0, PredIndex: 3}

	ab := SemanticContextAnd(a, b)
	abc := SemanticContextAnd(ab, c)

	and, ok := abc.(*AndContext)
	if !ok {
		t.Fatalf("expected an AndContext, got %T", abc)
	}
	if len(and.opnds) != 3 {
		t.Fatalf("expected nested And to flatten into 3 operands, got %d", len(and.opnds))
	}
}

func TestSemanticContextAndShortCircuitsOnFalse(t *testing.T) {
	a := &PredicateContext{RuleIndex: 0, PredIndex: 1}
	b := &PredicateContext{RuleIndex: 0, PredIndex: 2}
	and := SemanticContextAnd(a, b)

	if and.Eval(newFakeSempredRecognizer(false), nil) {
		t.Fatalf("AND of anything with a false predicate must evaluate false")
	}
	if !and.Eval(newFakeSempredRecognizer(true), nil) {
		t.Fatalf("AND of two true predicates must evaluate true")
	}
}

func TestSemanticContextOrWithNoneCollapsesToNone(t *testing.T) {
	a := &PredicateContext{RuleIndex: 0, PredIndex: 1}
	result := SemanticContextOr(SemanticContextNone, a)
	if result != SemanticContextNone {
		t.Fatalf("OR with the always-true predicate must collapse to SemanticContextNone")
	}
}

func TestSemanticContextOrFlattensNestedOr(t *testing.T) {
	a := &PredicateContext{RuleIndex: 0, PredIndex: 1}
	b := &PredicateContext{RuleIndex: 0, PredIndex: 2}
	c := &PredicateContext{RuleIndex: 0, PredIndex: 3}

	ab := SemanticContextOr(a, b)
	abc := SemanticContextOr(ab, c)

	or, ok := abc.(*OrContext)
	if !ok {
		t.Fatalf("expected an OrContext, got %T", abc)
	}
	if len(or.opnds) != 3 {
		t.Fatalf("expected nested Or to flatten into 3 operands, got %d", len(or.opnds))
	}
}

func TestPrecedencePredicateEval(t *testing.T) {
	pred := &PrecedencePredicate{Precedence: 3}
	if pred.Eval(&precedenceParserStub{precedence: 5}, nil) {
		t.Fatalf("a predicate of precedence 3 should fail when the active precedence is 5")
	}
	if !pred.Eval(&precedenceParserStub{precedence: 1}, nil) {
		t.Fatalf("a predicate of precedence 3 should hold when the active precedence is 1")
	}
}

// precedenceParserStub implements Recognizer + PrecedenceEvaluator with a
// fixed precedence level, enough to drive PrecedencePredicate.Eval.
type precedenceParserStub struct {
	*BaseRecognizer
	precedence int
}

func (p *precedenceParserStub) GetPrecedence() int { return p.precedence }
func (p *precedenceParserStub) GetATN() *ATN        { return nil }

func TestSemanticContextEqualsAndHash(t *testing.T) {
	a := &PredicateContext{RuleIndex: 1, PredIndex: 2}
	b := &PredicateContext{RuleIndex: 1, PredIndex: 2}
	c := &PredicateContext{RuleIndex: 1, PredIndex: 3}

	if !a.equals(b) {
		t.Fatalf("predicate contexts with equal fields should be equal")
	}
	if a.hash() != b.hash() {
		t.Fatalf("equal predicate contexts must hash equally")
	}
	if a.equals(c) {
		t.Fatalf("predicate contexts with different PredIndex must not be equal")
	}
}
