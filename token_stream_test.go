package antlr

import "testing"

// fakeTokenSource replays a fixed token slice, appending a trailing EOF,
// standing in for a real lexer in stream-buffering tests.
type fakeTokenSource struct {
	toks []Token
	pos  int
}

func newFakeTokenSource(types []int, channels []int) *fakeTokenSource {
	toks := make([]Token, len(types))
	for i, ty := range types {
		ch := TokenDefaultChannel
		if channels != nil {
			ch = channels[i]
		}
		toks[i] = NewCommonToken(nil, nil, ty, ch, i, i)
	}
	toks = append(toks, NewCommonToken(nil, nil, TokenEOF, TokenDefaultChannel, len(types), len(types)))
	return &fakeTokenSource{toks: toks}
}

func (f *fakeTokenSource) NextToken() Token {
	t := f.toks[f.pos]
	if f.pos < len(f.toks)-1 {
		f.pos++
	}
	return t
}

func (f *fakeTokenSource) GetLine() int                  { return 0 }
func (f *fakeTokenSource) GetCharPositionInLine() int     { return 0 }
func (f *fakeTokenSource) GetInputStream() CharStream     { return nil }
func (f *fakeTokenSource) GetSourceName() string          { return "fake" }
func (f *fakeTokenSource) GetTokenFactory() TokenFactory   { return CommonTokenFactoryDefault }

func TestCommonTokenStreamLTSkipsHiddenChannel(t *testing.T) {
	src := newFakeTokenSource([]int{10, 11, 12}, []int{TokenDefaultChannel, TokenHiddenChannel, TokenDefaultChannel})
	s := NewCommonTokenStream(src, TokenDefaultChannel)

	if got := s.LT(1).GetTokenType(); got != 10 {
		t.Fatalf("LT(1) should be the first on-channel token, got %d", got)
	}
	if got := s.LT(2).GetTokenType(); got != 12 {
		t.Fatalf("LT(2) should skip the hidden token and land on type 12, got %d", got)
	}
}

func TestCommonTokenStreamConsumeAdvances(t *testing.T) {
	src := newFakeTokenSource([]int{10, 11, 12}, nil)
	s := NewCommonTokenStream(src, TokenDefaultChannel)

	if s.LA(1) != 10 {
		t.Fatalf("expected first token type 10, got %d", s.LA(1))
	}
	s.Consume()
	if s.LA(1) != 11 {
		t.Fatalf("expected second token type 11 after Consume, got %d", s.LA(1))
	}
}

func TestCommonTokenStreamConsumeAtEOFPanics(t *testing.T) {
	src := newFakeTokenSource([]int{10}, nil)
	s := NewCommonTokenStream(src, TokenDefaultChannel)
	s.Consume()
	if s.LA(1) != TokenEOF {
		t.Fatalf("expected to be sitting on EOF, got %d", s.LA(1))
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Consume at EOF to panic")
		}
	}()
	s.Consume()
}

func TestCommonTokenStreamGetHiddenTokensToRight(t *testing.T) {
	src := newFakeTokenSource([]int{10, 11, 12}, []int{TokenDefaultChannel, TokenHiddenChannel, TokenDefaultChannel})
	s := NewCommonTokenStream(src, TokenDefaultChannel)
	s.Fill()

	hidden := s.GetHiddenTokensToRight(0)
	if len(hidden) != 1 || hidden[0].GetTokenType() != 11 {
		t.Fatalf("expected one hidden token of type 11 to the right of index 0, got %v", hidden)
	}
}

func TestCommonTokenStreamGetHiddenTokensToLeft(t *testing.T) {
	src := newFakeTokenSource([]int{10, 11, 12}, []int{TokenDefaultChannel, TokenHiddenChannel, TokenDefaultChannel})
	s := NewCommonTokenStream(src, TokenDefaultChannel)
	s.Fill()

	hidden := s.GetHiddenTokensToLeft(2)
	if len(hidden) != 1 || hidden[0].GetTokenType() != 11 {
		t.Fatalf("expected one hidden token of type 11 to the left of index 2, got %v", hidden)
	}
}

func TestCommonTokenStreamSeekAndIndex(t *testing.T) {
	src := newFakeTokenSource([]int{10, 11, 12}, nil)
	s := NewCommonTokenStream(src, TokenDefaultChannel)
	s.Fill()
	s.Seek(2)
	if s.Index() != 2 {
		t.Fatalf("expected Index() to report 2 after Seek(2), got %d", s.Index())
	}
	if s.LA(1) != 12 {
		t.Fatalf("expected LA(1) to be 12 after seeking to index 2, got %d", s.LA(1))
	}
}

func TestCommonTokenStreamFillReachesEOF(t *testing.T) {
	src := newFakeTokenSource([]int{10, 11}, nil)
	s := NewCommonTokenStream(src, TokenDefaultChannel)
	s.Fill()
	if s.Size() != 3 {
		t.Fatalf("expected 2 tokens plus EOF buffered, got %d", s.Size())
	}
}
