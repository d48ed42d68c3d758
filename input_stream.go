// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// IntStream is the common contract shared by character and token streams:
// LA/Consume/Mark/Release/Index/Seek/Size
type IntStream interface {
	Consume()
	LA(i int) int

	// Mark pushes a speculation marker and returns its handle; Release
	// pops markers in LIFO order down to (and including) the given
	// handle. Positions/line/column are restored explicitly by the
	// caller before releasing, never by Release itself.
	Mark() int
	Release(marker int)

	Index() int
	Seek(index int)
	Size() int
	GetSourceName() string
}

// CharStream feeds the lexer simulator one code point at a time and
// supports substring extraction for token text.
type CharStream interface {
	IntStream
	GetText(start, stop int) string
	GetTextFromInterval(start, stop int) string
}

// InputStream is the default CharStream implementation, holding the
// entire input as an in-memory rune slice.
type InputStream struct {
	name    string
	data    []rune
	index   int
	size    int
	markers []int
}

// NewInputStream wraps the given text for lexing.
func NewInputStream(data string) *InputStream {
	runes := []rune(data)
	return &InputStream{
		name: "<empty>",
		data: runes,
		size: len(runes),
	}
}

func (is *InputStream) Index() int { return is.index }
func (is *InputStream) Size() int  { return is.size }

func (is *InputStream) Consume() {
	if is.index >= is.size {
		panic(&IllegalStateError{msg: "cannot consume EOF"})
	}
	is.index++
}

func (is *InputStream) LA(offset int) int {
	if offset == 0 {
		return 0
	}
	pos := is.index
	if offset < 0 {
		pos += offset
		if pos < 0 {
			return TokenEOF
		}
	} else {
		pos += offset - 1
	}
	if pos < 0 || pos >= is.size {
		return TokenEOF
	}
	return int(is.data[pos])
}

// Mark pushes the current index as a speculation marker. Markers stack
// and must be released in LIFO order.
func (is *InputStream) Mark() int {
	is.markers = append(is.markers, is.index)
	return len(is.markers) - 1
}

// Release pops markers down to and including marker. It does not restore
// position by itself - callers that rolled back must Seek first.
func (is *InputStream) Release(marker int) {
	if marker < len(is.markers) {
		is.markers = is.markers[:marker]
	}
}

func (is *InputStream) Seek(index int) {
	if index <= is.index {
		is.index = index
		return
	}
	is.index = min(index, is.size)
}

func (is *InputStream) GetSourceName() string {
	if is.name == "" {
		return "<empty>"
	}
	return is.name
}

func (is *InputStream) GetText(start, stop int) string {
	return is.GetTextFromInterval(start, stop)
}

func (is *InputStream) GetTextFromInterval(start, stop int) string {
	if stop >= is.size {
		stop = is.size - 1
	}
	if start >= is.size || stop < start {
		return ""
	}
	return string(is.data[start : stop+1])
}

func (is *InputStream) String() string { return string(is.data) }

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
