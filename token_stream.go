// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// TokenStream is the Parser's view of a lexer: buffered, seekable
// lookahead over the token sequence, with channel filtering (hidden
// tokens, e.g. whitespace/comments, are skipped by LA/Consume but stay
// addressable by absolute index for things like GetHiddenTokensToLeft).
type TokenStream interface {
	IntStream

	LT(k int) Token
	Get(index int) Token
	GetTokenSource() TokenSource
	GetAllText() string
	GetTextFromInterval(start, stop int) string
	GetTextFromTokens(start, stop Token) string
	Fill()
}

// CommonTokenStream buffers tokens pulled from its TokenSource on
// demand, then serves LA/LT/Consume from that buffer,
// skipping tokens not on the requested channel.
type CommonTokenStream struct {
	tokenSource TokenSource
	channel     int

	tokens []Token
	index  int
	fetchedEOF bool
}

func NewCommonTokenStream(lexer TokenSource, channel int) *CommonTokenStream {
	return &CommonTokenStream{tokenSource: lexer, channel: channel, index: -1}
}

func (s *CommonTokenStream) GetTokenSource() TokenSource { return s.tokenSource }

func (s *CommonTokenStream) lazyInit() {
	if s.index == -1 {
		s.setup()
	}
}

func (s *CommonTokenStream) setup() {
	s.sync(0)
	s.index = s.adjustSeekIndex(0)
}

// sync ensures at least i+1 tokens are buffered, pulling more from the
// token source as needed.
func (s *CommonTokenStream) sync(i int) bool {
	n := i - len(s.tokens) + 1
	if n > 0 {
		return s.fetch(n) >= n
	}
	return true
}

func (s *CommonTokenStream) fetch(n int) int {
	if s.fetchedEOF {
		return 0
	}
	for i := 0; i < n; i++ {
		t := s.tokenSource.NextToken()
		t.SetTokenIndex(len(s.tokens))
		s.tokens = append(s.tokens, t)
		if t.GetTokenType() == TokenEOF {
			s.fetchedEOF = true
			return i + 1
		}
	}
	return n
}

// adjustSeekIndex skips forward from i past any token not on this
// stream's channel, since the parser never sees hidden-channel tokens
// directly.
func (s *CommonTokenStream) adjustSeekIndex(i int) int {
	return s.nextTokenOnChannel(i)
}

func (s *CommonTokenStream) nextTokenOnChannel(i int) int {
	s.sync(i)
	if i >= len(s.tokens) {
		return len(s.tokens) - 1
	}
	t := s.tokens[i]
	for t.GetChannel() != s.channel {
		if t.GetTokenType() == TokenEOF {
			return i
		}
		i++
		s.sync(i)
		t = s.tokens[i]
	}
	return i
}

func (s *CommonTokenStream) previousTokenOnChannel(i int) int {
	for i >= 0 && s.tokens[i].GetChannel() != s.channel {
		i--
	}
	return i
}

func (s *CommonTokenStream) Consume() {
	s.lazyInit()
	skipEOFCheck := s.index >= 0 && s.index < len(s.tokens) && s.tokens[s.index].GetTokenType() != TokenEOF
	if !skipEOFCheck && s.index >= 0 && len(s.tokens) > 0 && s.tokens[len(s.tokens)-1].GetTokenType() == TokenEOF && s.index == len(s.tokens)-1 {
		panic(&IllegalStateError{msg: "cannot consume EOF"})
	}
	if s.sync(s.index + 1) {
		s.index = s.adjustSeekIndex(s.index + 1)
	}
}

func (s *CommonTokenStream) LA(i int) int {
	t := s.LT(i)
	if t == nil {
		return TokenInvalidType
	}
	return t.GetTokenType()
}

func (s *CommonTokenStream) LT(k int) Token {
	s.lazyInit()
	if k == 0 {
		return nil
	}
	if k < 0 {
		return s.lbLT(-k)
	}
	i := s.index
	n := 1
	for n < k {
		if s.sync(i + 1) {
			i = s.nextTokenOnChannel(i + 1)
		}
		n++
	}
	if i >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}
	return s.tokens[i]
}

func (s *CommonTokenStream) lbLT(k int) Token {
	if s.index-k < 0 {
		return nil
	}
	i := s.index
	n := 1
	for n <= k && i > 0 {
		i = s.previousTokenOnChannel(i - 1)
		n++
	}
	if i < 0 {
		return nil
	}
	return s.tokens[i]
}

func (s *CommonTokenStream) Mark() int { return 0 }
func (s *CommonTokenStream) Release(int) {}

func (s *CommonTokenStream) Index() int { return s.index }

func (s *CommonTokenStream) Seek(index int) {
	s.lazyInit()
	s.index = s.adjustSeekIndex(index)
}

func (s *CommonTokenStream) Size() int {
	s.lazyInit()
	return len(s.tokens)
}

func (s *CommonTokenStream) GetSourceName() string { return s.tokenSource.GetSourceName() }

func (s *CommonTokenStream) Get(index int) Token {
	s.lazyInit()
	return s.tokens[index]
}

func (s *CommonTokenStream) Fill() {
	s.lazyInit()
	for s.fetch(1000) == 1000 {
	}
}

func (s *CommonTokenStream) GetAllText() string {
	s.Fill()
	return s.GetTextFromInterval(0, len(s.tokens)-1)
}

func (s *CommonTokenStream) GetTextFromInterval(start, stop int) string {
	s.lazyInit()
	if start < 0 || stop >= len(s.tokens) {
		return ""
	}
	var text string
	for i := start; i <= stop; i++ {
		text += s.tokens[i].GetText()
	}
	return text
}

func (s *CommonTokenStream) GetTextFromTokens(start, stop Token) string {
	if start == nil || stop == nil {
		return ""
	}
	return s.GetTextFromInterval(start.GetTokenIndex(), stop.GetTokenIndex())
}

// GetHiddenTokensToRight returns the run of off-channel tokens
// immediately following tokenIndex, up to (but not including) the next
// on-channel token - how a generated parser finds trailing comments.
func (s *CommonTokenStream) GetHiddenTokensToRight(tokenIndex int) []Token {
	s.lazyInit()
	if tokenIndex < 0 || tokenIndex >= len(s.tokens) {
		panic(&IllegalStateError{msg: "token index out of bounds"})
	}
	nextOnChannel := s.nextTokenOnChannel(tokenIndex + 1)
	from := tokenIndex + 1
	to := nextOnChannel
	if to == -1 {
		to = len(s.tokens) - 1
	}
	return s.filterForChannel(from, to)
}

// GetHiddenTokensToLeft returns the run of off-channel tokens
// immediately preceding tokenIndex, back to (but not including) the
// previous on-channel token.
func (s *CommonTokenStream) GetHiddenTokensToLeft(tokenIndex int) []Token {
	s.lazyInit()
	if tokenIndex < 0 || tokenIndex >= len(s.tokens) {
		panic(&IllegalStateError{msg: "token index out of bounds"})
	}
	prevOnChannel := s.previousTokenOnChannel(tokenIndex - 1)
	if prevOnChannel == tokenIndex-1 {
		return nil
	}
	return s.filterForChannel(prevOnChannel+1, tokenIndex-1)
}

func (s *CommonTokenStream) filterForChannel(from, to int) []Token {
	var hidden []Token
	for i := from; i <= to; i++ {
		if s.tokens[i].GetChannel() != s.channel {
			hidden = append(hidden, s.tokens[i])
		}
	}
	return hidden
}
