// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

const (
	LexerDefaultTokenChannel = TokenDefaultChannel
	LexerHidden              = TokenHiddenChannel
	LexerMinCharValue        = 0x0000
	LexerMaxCharValue        = 0x10FFFF
	LexerDefaultMode         = 0
	LexerMore                = -2
	LexerSkipToken           = -3
	LexerTokenTypeInvalid    = 0
)

// Lexer is the contract a generated lexer's struct embeds BaseLexer to
// satisfy: Recognizer plus TokenSource plus the handful of mode/action
// hooks LexerAction.Execute needs to manipulate lexer state directly
// (skip the pending token, switch mode, etc).
type Lexer interface {
	Recognizer
	TokenSource

	Skip()
	More()
	SetMode(m int)
	PushMode(m int)
	PopMode() int
	SetType(t int)
	SetChannel(c int)

	GetCharIndex() int
	GetText() string
	SetText(s string)

	GetAllTokens() []Token
	NextToken() Token
}

// BaseLexer is embedded by every generated lexer. It drives
// LexerATNSimulator.Match in a loop, turning the resulting (type,
// start, stop) spans into Token values via the configured TokenFactory,
// and honors the skip/more/mode-switch commands LexerAction values can
// issue mid-match.
type BaseLexer struct {
	*BaseRecognizer

	Virt Lexer // the generated subtype, for Action/Sempred dispatch

	Interpreter *LexerATNSimulator

	input CharStream

	factory TokenFactory

	token       Token
	tokenStartCharIndex int
	tokenStartLine      int
	tokenStartColumn    int
	text                string
	hitEOF              bool

	channel int
	ttype   int

	modeStack []int
	mode      int
}

func NewBaseLexer(input CharStream, ruleNames []string) *BaseLexer {
	l := &BaseLexer{
		BaseRecognizer: NewBaseRecognizer(ruleNames),
		input:          input,
		factory:        CommonTokenFactoryDefault,
		channel:        TokenDefaultChannel,
		ttype:          TokenInvalidType,
		tokenStartCharIndex: -1,
		mode:           LexerDefaultMode,
	}
	return l
}

func (l *BaseLexer) GetInputStream() CharStream  { return l.input }
func (l *BaseLexer) GetSourceName() string       { return l.input.GetSourceName() }
func (l *BaseLexer) GetCharIndex() int           { return l.input.Index() }
func (l *BaseLexer) GetTokenFactory() TokenFactory { return l.factory }
func (l *BaseLexer) SetTokenFactory(f TokenFactory) { l.factory = f }

func (l *BaseLexer) GetLine() int              { return l.Interpreter.line }
func (l *BaseLexer) GetCharPositionInLine() int { return l.Interpreter.charPositionInLine }

func (l *BaseLexer) GetType() int   { return l.ttype }
func (l *BaseLexer) SetType(t int)  { l.ttype = t }
func (l *BaseLexer) GetChannel() int { return l.channel }
func (l *BaseLexer) SetChannel(c int) { l.channel = c }

func (l *BaseLexer) GetText() string {
	if l.text != "" {
		return l.text
	}
	return l.input.GetTextFromInterval(l.tokenStartCharIndex, l.GetCharIndex()-1)
}
func (l *BaseLexer) SetText(s string) { l.text = s }

func (l *BaseLexer) GetTokenStartCharIndex() int { return l.tokenStartCharIndex }

func (l *BaseLexer) Skip() { l.ttype = LexerSkipToken }
func (l *BaseLexer) More() { l.ttype = LexerMore }

func (l *BaseLexer) SetMode(m int) { l.mode = m }
func (l *BaseLexer) PushMode(m int) {
	l.modeStack = append(l.modeStack, l.mode)
	l.mode = m
}
func (l *BaseLexer) PopMode() int {
	if len(l.modeStack) == 0 {
		panic(&IllegalStateError{msg: "empty mode stack"})
	}
	l.mode = l.modeStack[len(l.modeStack)-1]
	l.modeStack = l.modeStack[:len(l.modeStack)-1]
	return l.mode
}

// Action is the default for custom lexer actions and does nothing;
// BaseLexer itself has no rule actions. A generated lexer that embeds
// BaseLexer supplies its own Action method to run them.
func (l *BaseLexer) Action(context RuleContext, ruleIndex, actionIndex int) {}

// Reset rewinds the lexer to the start of its input and clears all
// per-token state, as if freshly constructed - used between repeated
// lexing passes over the same InputStream in tests.
func (l *BaseLexer) Reset() {
	if l.input != nil {
		l.input.Seek(0)
	}
	l.token = nil
	l.ttype = TokenInvalidType
	l.channel = TokenDefaultChannel
	l.tokenStartCharIndex = -1
	l.tokenStartColumn = -1
	l.tokenStartLine = -1
	l.text = ""
	l.hitEOF = false
	l.mode = LexerDefaultMode
	l.modeStack = nil
	if l.Interpreter != nil {
		l.Interpreter.Reset()
	}
}

// NextToken runs the adaptive DFA/ATN matcher repeatedly until it
// produces a real token: ->skip commands loop back around, ->more
// commands keep extending the current token's text instead of emitting
// it. This is the Lexer half of the pull-based TokenSource contract
// TokenStream implementations drive.
func (l *BaseLexer) NextToken() Token {
	if l.input == nil {
		panic(&IllegalStateError{msg: "NextToken called with no input stream"})
	}
	tokenStartMarker := l.input.Mark()
	defer l.input.Release(tokenStartMarker)

	for {
		if l.hitEOF {
			return l.emitEOF()
		}
		l.token = nil
		l.channel = TokenDefaultChannel
		l.tokenStartCharIndex = l.input.Index()
		l.tokenStartColumn = l.Interpreter.charPositionInLine
		l.tokenStartLine = l.Interpreter.line
		l.text = ""

		continueOuter := false
		for {
			l.ttype = TokenInvalidType
			ttype := l.matchOrRecover()
			if l.input.LA(1) == TokenEOF {
				l.hitEOF = true
			}
			if l.ttype == TokenInvalidType {
				l.ttype = ttype
			}
			if l.ttype == LexerSkipToken {
				continueOuter = true
				break
			}
			if l.ttype != LexerMore {
				break
			}
		}

		if continueOuter {
			continue
		}
		if l.token == nil {
			l.Emit()
		}
		return l.token
	}
}

// matchOrRecover runs one adaptive match, converting a no-viable-
// alternative panic into a reported error plus a single-character skip
// so the lexer can resynchronize instead of aborting the whole stream.
func (l *BaseLexer) matchOrRecover() (ttype int) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*LexerNoViableAltException)
			if !ok {
				panic(r)
			}
			l.notifyListeners(e)
			l.Interpreter.Recover(e)
			ttype = LexerSkipToken
		}
	}()
	return l.Interpreter.Match(l.input, l.mode)
}

func (l *BaseLexer) notifyListeners(e *LexerNoViableAltException) {
	text := l.input.GetTextFromInterval(l.tokenStartCharIndex, l.input.Index())
	msg := "token recognition error at: '" + text + "'"
	l.GetErrorListenerDispatch().SyntaxError(l.Virt, nil, l.tokenStartLine, l.tokenStartColumn, msg, e)
}

// Emit constructs a Token from the lexer's current span and type, using
// the configured TokenFactory, and stashes it as the pending token.
func (l *BaseLexer) Emit() Token {
	t := l.factory.Create(l.Virt, l.input, l.ttype, l.channel,
		l.tokenStartCharIndex, l.GetCharIndex()-1, l.tokenStartLine, l.tokenStartColumn)
	if l.text != "" {
		t.SetText(l.text)
	}
	l.token = t
	return t
}

func (l *BaseLexer) emitEOF() Token {
	idx := l.GetCharIndex()
	t := l.factory.Create(l.Virt, l.input, TokenEOF, TokenDefaultChannel, idx, idx-1,
		l.GetLine(), l.GetCharPositionInLine())
	l.token = t
	return t
}

// GetAllTokens drains NextToken until EOF, a convenience used by tests
// and tools that want every token up front rather than streaming.
func (l *BaseLexer) GetAllTokens() []Token {
	var tokens []Token
	for {
		t := l.Virt.NextToken()
		tokens = append(tokens, t)
		if t.GetTokenType() == TokenEOF {
			break
		}
	}
	return tokens
}

func (l *BaseLexer) String() string {
	return fmt.Sprintf("Lexer(mode=%d)", l.mode)
}
