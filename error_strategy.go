// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ErrorStrategy is the pluggable recovery policy a Parser delegates to
// whenever Match fails or AdaptivePredict finds no viable alternative:
// report the problem, then either resynchronize in place or fabricate
// a token so the rule body can keep running.
type ErrorStrategy interface {
	Reset(recognizer Parser)
	RecoverInline(recognizer Parser) Token
	Recover(recognizer Parser, e RecognitionException)
	Sync(recognizer Parser)
	InErrorRecoveryMode(recognizer Parser) bool
	ReportError(recognizer Parser, e RecognitionException)
	ReportMatch(recognizer Parser)
}

// DefaultErrorStrategy implements ANTLR's standard single-token
// deletion/insertion recovery: on mismatch, try deleting the offending
// token or inserting the expected one before giving up and bubbling the
// exception: once a rule fails outright it stays in "error recovery
// mode" and swallows further errors silently until the next successful
// match (ReportMatch), so one
// bad token doesn't cascade into a wall of reports.
type DefaultErrorStrategy struct {
	errorRecoveryMode bool
	lastErrorIndex    int
	lastErrorStates   *IntervalSet
}

func NewDefaultErrorStrategy() *DefaultErrorStrategy {
	return &DefaultErrorStrategy{lastErrorIndex: -1}
}

func (d *DefaultErrorStrategy) Reset(recognizer Parser) {
	d.endErrorCondition(recognizer)
}

func (d *DefaultErrorStrategy) beginErrorCondition(recognizer Parser) {
	d.errorRecoveryMode = true
}

func (d *DefaultErrorStrategy) endErrorCondition(recognizer Parser) {
	d.errorRecoveryMode = false
	d.lastErrorStates = nil
	d.lastErrorIndex = -1
}

func (d *DefaultErrorStrategy) InErrorRecoveryMode(recognizer Parser) bool {
	return d.errorRecoveryMode
}

func (d *DefaultErrorStrategy) ReportMatch(recognizer Parser) {
	d.endErrorCondition(recognizer)
}

// ReportError dispatches to the appropriate message, then suppresses
// any further report until the parser makes progress again - avoids
// flooding listeners with cascading errors from one root cause.
func (d *DefaultErrorStrategy) ReportError(recognizer Parser, e RecognitionException) {
	if d.InErrorRecoveryMode(recognizer) {
		return
	}
	d.beginErrorCondition(recognizer)
	switch ex := e.(type) {
	case *NoViableAltException:
		d.reportNoViableAlternative(recognizer, ex)
	case *InputMismatchException:
		d.reportInputMismatch(recognizer, ex)
	case *FailedPredicateException:
		d.reportFailedPredicate(recognizer, ex)
	default:
		recognizer.NotifyErrorListeners(e.Error(), e.GetOffendingToken(), e)
	}
}

func (d *DefaultErrorStrategy) reportNoViableAlternative(recognizer Parser, e *NoViableAltException) {
	tokens := recognizer.GetTokenStream()
	var input string
	if tokens != nil {
		if e.StartToken.GetTokenType() == TokenEOF {
			input = "<EOF>"
		} else {
			input = tokens.GetTextFromTokens(e.StartToken, e.GetOffendingToken())
		}
	}
	msg := "no viable alternative at input " + escapeWSAndQuote(input)
	recognizer.NotifyErrorListeners(msg, e.GetOffendingToken(), e)
}

func (d *DefaultErrorStrategy) reportInputMismatch(recognizer Parser, e *InputMismatchException) {
	msg := "mismatched input " + tokenErrDisplay(e.GetOffendingToken()) +
		" expecting " + recognizer.GetExpectedTokens().String()
	recognizer.NotifyErrorListeners(msg, e.GetOffendingToken(), e)
}

func (d *DefaultErrorStrategy) reportFailedPredicate(recognizer Parser, e *FailedPredicateException) {
	recognizer.NotifyErrorListeners(e.Error(), e.GetOffendingToken(), e)
}

func (d *DefaultErrorStrategy) reportUnwantedToken(recognizer Parser) {
	if d.InErrorRecoveryMode(recognizer) {
		return
	}
	d.beginErrorCondition(recognizer)
	t := recognizer.GetCurrentToken()
	msg := "extraneous input " + tokenErrDisplay(t) + " expecting " + recognizer.GetExpectedTokens().String()
	recognizer.NotifyErrorListeners(msg, t, nil)
}

func (d *DefaultErrorStrategy) reportMissingToken(recognizer Parser) {
	if d.InErrorRecoveryMode(recognizer) {
		return
	}
	d.beginErrorCondition(recognizer)
	t := recognizer.GetCurrentToken()
	expecting := recognizer.GetExpectedTokens()
	msg := "missing " + expecting.String() + " at " + tokenErrDisplay(t)
	recognizer.NotifyErrorListeners(msg, t, nil)
}

// Recover consumes tokens up to a safe resynchronization point (a token
// in the current or an enclosing rule's follow set) after a rule body
// fails outright - used when single-token recovery in RecoverInline
// isn't applicable.
func (d *DefaultErrorStrategy) Recover(recognizer Parser, e RecognitionException) {
	if d.lastErrorIndex == recognizer.GetInputStream().Index() &&
		d.lastErrorStates != nil && d.lastErrorStates.Contains(recognizer.GetState()) {
		recognizer.Consume()
	}
	d.lastErrorIndex = recognizer.GetInputStream().Index()
	if d.lastErrorStates == nil {
		d.lastErrorStates = NewIntervalSet()
	}
	d.lastErrorStates.AddOne(recognizer.GetState())
	followSet := d.computeErrorRecoverySet(recognizer)
	d.consumeUntil(recognizer, followSet)
}

// Sync is called before matching the next token inside a loop's
// iteration decision; it deletes tokens that could never begin an
// alternative of that loop, preventing an infinite loop on garbage
// input.
func (d *DefaultErrorStrategy) Sync(recognizer Parser) {
	s := recognizer.GetInterpreter().atn.states[recognizer.GetState()]
	switch s.(type) {
	case *PlusBlockStartState, *StarLoopEntryState, *BlockStartState, *BasicState:
	default:
		return
	}

	la := recognizer.GetTokenStream().LA(1)
	nextTokens := recognizer.GetATN().NextTokens(s, nil)
	if nextTokens.Contains(TokenEpsilon) || nextTokens.Contains(la) {
		return
	}
	if d.singleTokenDeletion(recognizer) != nil {
		return
	}
	panic(NewInputMismatchException(recognizer))
}

// RecoverInline implements single-token deletion and single-token
// insertion: if deleting the current offending token lets the stream
// match, delete it and continue; otherwise if the current token is
// itself valid at the following position, fabricate the missing
// expected token rather than aborting the rule.
func (d *DefaultErrorStrategy) RecoverInline(recognizer Parser) Token {
	if t := d.singleTokenDeletion(recognizer); t != nil {
		recognizer.Consume()
		return t
	}
	if d.singleTokenInsertion(recognizer) {
		return d.getMissingSymbol(recognizer)
	}
	panic(NewInputMismatchException(recognizer))
}

func (d *DefaultErrorStrategy) singleTokenInsertion(recognizer Parser) bool {
	currentSymbolType := recognizer.GetTokenStream().LA(1)
	atn := recognizer.GetInterpreter().atn
	currentState := atn.states[recognizer.GetState()]
	next := currentState.GetTransitions()[0].GetTarget()
	expectingAtLL2 := atn.NextTokens(next, recognizer.GetParserRuleContext())
	if expectingAtLL2.Contains(currentSymbolType) {
		d.reportMissingToken(recognizer)
		return true
	}
	return false
}

func (d *DefaultErrorStrategy) singleTokenDeletion(recognizer Parser) Token {
	nextTokenType := recognizer.GetTokenStream().LA(2)
	expecting := recognizer.GetExpectedTokens()
	if expecting.Contains(nextTokenType) {
		d.reportUnwantedToken(recognizer)
		recognizer.Consume()
		matchedSymbol := recognizer.GetCurrentToken()
		d.ReportMatch(recognizer)
		return matchedSymbol
	}
	return nil
}

func (d *DefaultErrorStrategy) getMissingSymbol(recognizer Parser) Token {
	currentSymbol := recognizer.GetCurrentToken()
	expecting := recognizer.GetExpectedTokens()
	expectedTokenType := TokenInvalidType
	if !expecting.IsNil() {
		expectedTokenType = expecting.GetIntervals()[0].Start
	}
	var tokenText string
	if expectedTokenType == TokenEOF {
		tokenText = "<missing EOF>"
	} else {
		tokenText = "<missing " + tokenName(recognizer, expectedTokenType) + ">"
	}
	current := currentSymbol
	lookback := recognizer.GetTokenStream().LT(-1)
	if current.GetTokenType() == TokenEOF && lookback != nil {
		current = lookback
	}
	source, stream := current.GetSource()
	t := recognizer.GetTokenFactory().Create(source, stream, expectedTokenType, TokenDefaultChannel,
		-1, -1, current.GetLine(), current.GetColumn())
	t.SetText(tokenText)
	return t
}

func tokenName(recognizer Parser, tokenType int) string {
	if names := recognizer.GetLiteralNames(); tokenType >= 0 && tokenType < len(names) && names[tokenType] != "" {
		return names[tokenType]
	}
	return "token " + itoa(tokenType)
}

// computeErrorRecoverySet walks the rule-invocation stack, unioning
// each enclosing rule's follow set, so Recover can skip forward to
// whatever token could legally follow any rule currently on the stack.
func (d *DefaultErrorStrategy) computeErrorRecoverySet(recognizer Parser) *IntervalSet {
	atn := recognizer.GetInterpreter().atn
	ctx := recognizer.GetParserRuleContext()
	recoverSet := NewIntervalSet()
	for ctx != nil {
		if ctx.GetInvokingState() < 0 {
			break
		}
		invokingState := atn.states[ctx.GetInvokingState()]
		rt := invokingState.GetTransitions()[0].(*RuleTransition)
		follow := atn.NextTokens(rt.FollowState, nil)
		recoverSet.AddSet(follow)
		ctx = ctx.GetParentCtx()
	}
	recoverSet.RemoveOne(TokenEpsilon)
	return recoverSet
}

func (d *DefaultErrorStrategy) consumeUntil(recognizer Parser, set *IntervalSet) {
	ttype := recognizer.GetTokenStream().LA(1)
	for ttype != TokenEOF && !set.Contains(ttype) {
		recognizer.Consume()
		ttype = recognizer.GetTokenStream().LA(1)
	}
}

// BailErrorStrategy is used by tests and tools that want the first
// error to abort parsing immediately instead of attempting recovery:
// Recover and RecoverInline panic with a FallThroughError, and Sync
// does nothing.
type BailErrorStrategy struct {
	DefaultErrorStrategy
}

func NewBailErrorStrategy() *BailErrorStrategy {
	return &BailErrorStrategy{*NewDefaultErrorStrategy()}
}

func (b *BailErrorStrategy) Recover(recognizer Parser, e RecognitionException) {
	ctx := recognizer.GetParserRuleContext()
	for ctx != nil {
		ctx.SetException(e)
		parent, ok := ctx.GetParentCtx().(ParserRuleContext)
		if !ok {
			break
		}
		ctx = parent
	}
	panic(&FallThroughError{Cause: e})
}

func (b *BailErrorStrategy) RecoverInline(recognizer Parser) Token {
	b.Recover(recognizer, NewInputMismatchException(recognizer))
	return nil
}

func (b *BailErrorStrategy) Sync(recognizer Parser) {}

func tokenErrDisplay(t Token) string {
	if t == nil {
		return "<unknown>"
	}
	s := t.GetText()
	if s == "" {
		if t.GetTokenType() == TokenEOF {
			s = "<EOF>"
		} else {
			s = "<" + itoa(t.GetTokenType()) + ">"
		}
	}
	return escapeWSAndQuote(s)
}

func escapeWSAndQuote(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '\'')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			out = append(out, '\\', 'n')
		case '\r':
			out = append(out, '\\', 'r')
		case '\t':
			out = append(out, '\\', 't')
		default:
			out = append(out, s[i])
		}
	}
	out = append(out, '\'')
	return string(out)
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
