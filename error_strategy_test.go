package antlr

import "testing"

// testParser is a minimal Parser fixture: a single state expecting token
// type 2, used to exercise DefaultErrorStrategy's recovery decisions
// without a generated grammar.
type testParser struct {
	*BaseParser
}

func newTestParser(tokens []int) *testParser {
	atn := NewATN(ATNTypeParser, 10)
	s0 := NewBasicState()
	atn.addState(s0)
	s1 := NewRuleStopState()
	atn.addState(s1)
	s0.AddTransition(NewAtomTransition(s1, 2))

	src := newFakeTokenSource(tokens, nil)
	stream := NewCommonTokenStream(src, TokenDefaultChannel)

	bp := NewBaseParser(stream, nil, nil, nil)
	bp.SetState(0)
	bp.RemoveErrorListeners()

	p := &testParser{BaseParser: bp}
	p.Virt = p
	p.Interpreter = NewParserATNSimulator(p, atn, nil, nil)
	return p
}

func TestSingleTokenDeletionRecovers(t *testing.T) {
	// token stream holds [99, 2]: 99 is unexpected, 2 is what the state
	// wants, so deleting the bad token and matching 2 should succeed.
	p := newTestParser([]int{99, 2})
	strat := NewDefaultErrorStrategy()

	tok := strat.RecoverInline(p)
	if tok == nil || tok.GetTokenType() != 2 {
		t.Fatalf("expected the matched token (type 2) to be returned, got %v", tok)
	}
	if p.GetTokenStream().LA(1) != TokenEOF {
		t.Fatalf("after deleting 99 and matching 2, the stream should sit on EOF, got %d", p.GetTokenStream().LA(1))
	}
	if strat.InErrorRecoveryMode(p) {
		t.Fatalf("successfully recovering should have cleared error recovery mode via ReportMatch")
	}
}

func TestSingleTokenDeletionFailsWithoutMatchAhead(t *testing.T) {
	// neither the current nor the next token is type 2, so deletion
	// cannot help and RecoverInline must panic with a mismatch.
	p := newTestParser([]int{99, 98})
	strat := NewDefaultErrorStrategy()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected RecoverInline to panic when no recovery is possible")
		}
	}()
	strat.RecoverInline(p)
}

func TestBailErrorStrategyAlwaysPanics(t *testing.T) {
	p := newTestParser([]int{99, 98})
	strat := NewBailErrorStrategy()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected BailErrorStrategy.RecoverInline to panic")
		}
		if _, ok := r.(*FallThroughError); !ok {
			t.Fatalf("expected a *FallThroughError, got %T", r)
		}
	}()
	strat.RecoverInline(p)
}

func TestEscapeWSAndQuote(t *testing.T) {
	got := escapeWSAndQuote("a\nb\tc\rd")
	want := "'a\\nb\\tc\\rd'"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTokenErrDisplayNil(t *testing.T) {
	if got := tokenErrDisplay(nil); got != "<unknown>" {
		t.Fatalf("expected <unknown> for a nil token, got %q", got)
	}
}

func TestItoa(t *testing.T) {
	cases := map[int]string{0: "0", 42: "42", -7: "-7"}
	for in, want := range cases {
		if got := itoa(in); got != want {
			t.Fatalf("itoa(%d): expected %q, got %q", in, want, got)
		}
	}
}
