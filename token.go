// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "strconv"

// Token type/channel constants shared by every generated lexer/parser.
const (
	TokenInvalidType = 0

	// TokenEpsilon marks a transition that consumes no input; it is never
	// emitted as a real token but is used internally by LOOK() and the
	// simulators.
	TokenEpsilon = -2

	TokenMinUserTokenType = 1

	TokenEOF = -1

	TokenDefaultChannel = 0

	TokenHiddenChannel = 1
)

// Token is the public face of a single lexical unit. Generated lexers
// produce these via a TokenFactory; the parser simulator and generated
// parser code consume them read-only.
type Token interface {
	GetSource() (TokenSource, CharStream)
	GetTokenType() int
	GetChannel() int
	GetStart() int
	GetStop() int
	GetLine() int
	GetColumn() int

	GetText() string
	SetText(s string)

	GetTokenIndex() int
	SetTokenIndex(v int)

	GetTokenSource() TokenSource
	GetInputStream() CharStream

	String() string
}

// CommonToken is the default Token implementation returned by
// CommonTokenFactory.
type CommonToken struct {
	tokenType   int
	channel     int
	start       int
	stop        int
	tokenIndex  int
	line        int
	column      int
	text        string
	readOnlyText bool

	source      TokenSource
	input       CharStream
}

// NewCommonToken constructs a token bound to the given source/stream pair.
func NewCommonToken(source TokenSource, input CharStream, tokenType, channel, start, stop int) *CommonToken {
	t := &CommonToken{
		tokenType:  tokenType,
		channel:    channel,
		start:      start,
		stop:       stop,
		tokenIndex: -1,
		source:     source,
		input:      input,
		line:       0,
		column:     -1,
	}
	if source != nil {
		t.line = source.GetLine()
		t.column = source.GetCharPositionInLine()
	}
	return t
}

func (t *CommonToken) GetSource() (TokenSource, CharStream) { return t.source, t.input }
func (t *CommonToken) GetTokenType() int                    { return t.tokenType }
func (t *CommonToken) GetChannel() int                      { return t.channel }
func (t *CommonToken) GetStart() int                        { return t.start }
func (t *CommonToken) GetStop() int                         { return t.stop }
func (t *CommonToken) GetLine() int                         { return t.line }
func (t *CommonToken) GetColumn() int                       { return t.column }
func (t *CommonToken) GetTokenIndex() int                   { return t.tokenIndex }
func (t *CommonToken) SetTokenIndex(v int)                  { t.tokenIndex = v }
func (t *CommonToken) GetTokenSource() TokenSource          { return t.source }
func (t *CommonToken) GetInputStream() CharStream           { return t.input }

func (t *CommonToken) GetText() string {
	if t.text != "" || t.readOnlyText {
		return t.text
	}
	if t.input == nil {
		return ""
	}
	n := t.input.Size()
	if t.stop < n && t.start < n {
		return t.input.GetTextFromInterval(t.start, t.stop)
	}
	return "<EOF>"
}

func (t *CommonToken) SetText(s string) {
	t.text = s
	t.readOnlyText = true
}

func (t *CommonToken) String() string {
	txt := t.GetText()
	return "[@" + strconv.Itoa(t.tokenIndex) + "," + strconv.Itoa(t.start) + ":" + strconv.Itoa(t.stop) +
		"='" + txt + "',<" + strconv.Itoa(t.tokenType) + ">" + chanSuffix(t.channel) +
		"," + strconv.Itoa(t.line) + ":" + strconv.Itoa(t.column) + "]"
}

func chanSuffix(ch int) string {
	if ch > 0 {
		return ",channel=" + strconv.Itoa(ch)
	}
	return ""
}

// TokenSource is the lexer's public face, consumed by TokenStream
// implementations.
type TokenSource interface {
	NextToken() Token
	GetLine() int
	GetCharPositionInLine() int
	GetInputStream() CharStream
	GetSourceName() string
	GetTokenFactory() TokenFactory
}

// TokenFactory creates Token instances; generated code and tests may swap
// in a custom factory, but CommonTokenFactory is the default.
type TokenFactory interface {
	Create(source TokenSource, input CharStream, ttype, channel, start, stop, line, column int) Token
}

type CommonTokenFactory struct{ copyText bool }

func NewCommonTokenFactory(copyText bool) *CommonTokenFactory {
	return &CommonTokenFactory{copyText: copyText}
}

var CommonTokenFactoryDefault = NewCommonTokenFactory(false)

func (f *CommonTokenFactory) Create(source TokenSource, input CharStream, ttype, channel, start, stop, line, column int) Token {
	t := NewCommonToken(source, input, ttype, channel, start, stop)
	t.line = line
	t.column = column
	if f.copyText && input != nil {
		t.SetText(input.GetTextFromInterval(start, stop))
		t.readOnlyText = false
	}
	return t
}
