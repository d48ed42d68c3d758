// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Interval is an inclusive [Start,Stop] range of integer token/char
// values.
type Interval struct{ Start, Stop int }

func (i Interval) Length() int { return i.Stop - i.Start + 1 }

// IntervalSet is a sorted, disjoint collection of Intervals supporting
// union, complement and membership. Once
// installed read-only it must never be mutated again.
type IntervalSet struct {
	intervals []Interval
	readOnly  bool
}

func NewIntervalSet() *IntervalSet { return &IntervalSet{} }

// NewIntervalSetFromRange builds a single-interval set.
func NewIntervalSetFromRange(start, stop int) *IntervalSet {
	s := NewIntervalSet()
	s.AddRange(start, stop)
	return s
}

func (s *IntervalSet) AddOne(v int) { s.AddRange(v, v) }

func (s *IntervalSet) AddRange(start, stop int) {
	if s.readOnly {
		panic(&IllegalStateError{msg: "interval set is read-only"})
	}
	if stop < start {
		return
	}
	// Insertion-merge keeps intervals sorted and disjoint: find the
	// insertion point and coalesce with neighbours that touch/overlap.
	idx, _ := slices.BinarySearchFunc(s.intervals, Interval{Start: start}, func(a, b Interval) int {
		return a.Start - b.Start
	})
	// BinarySearchFunc finds by Start only; back up to the interval that
	// might already contain `start`.
	for idx > 0 && s.intervals[idx-1].Stop >= start-1 {
		idx--
	}
	newIval := Interval{Start: start, Stop: stop}
	merged := make([]Interval, 0, len(s.intervals)+1)
	merged = append(merged, s.intervals[:idx]...)
	j := idx
	for j < len(s.intervals) && s.intervals[j].Start <= newIval.Stop+1 {
		if s.intervals[j].Start < newIval.Start {
			newIval.Start = s.intervals[j].Start
		}
		if s.intervals[j].Stop > newIval.Stop {
			newIval.Stop = s.intervals[j].Stop
		}
		j++
	}
	merged = append(merged, newIval)
	merged = append(merged, s.intervals[j:]...)
	s.intervals = merged
}

// AddSet unions another set's intervals into this one.
func (s *IntervalSet) AddSet(other *IntervalSet) {
	if other == nil {
		return
	}
	for _, iv := range other.intervals {
		s.AddRange(iv.Start, iv.Stop)
	}
}

// RemoveOne removes a single value, splitting an interval if necessary.
func (s *IntervalSet) RemoveOne(v int) {
	if s.readOnly {
		panic(&IllegalStateError{msg: "interval set is read-only"})
	}
	for i, iv := range s.intervals {
		if v < iv.Start || v > iv.Stop {
			continue
		}
		out := make([]Interval, 0, len(s.intervals)+1)
		out = append(out, s.intervals[:i]...)
		if iv.Start == v && iv.Stop == v {
			// drop entirely
		} else if iv.Start == v {
			out = append(out, Interval{Start: v + 1, Stop: iv.Stop})
		} else if iv.Stop == v {
			out = append(out, Interval{Start: iv.Start, Stop: v - 1})
		} else {
			out = append(out, Interval{Start: iv.Start, Stop: v - 1}, Interval{Start: v + 1, Stop: iv.Stop})
		}
		out = append(out, s.intervals[i+1:]...)
		s.intervals = out
		return
	}
}

func (s *IntervalSet) Contains(v int) bool {
	for _, iv := range s.intervals {
		if v >= iv.Start && v <= iv.Stop {
			return true
		}
		if v < iv.Start {
			return false
		}
	}
	return false
}

func (s *IntervalSet) Length() int {
	n := 0
	for _, iv := range s.intervals {
		n += iv.Length()
	}
	return n
}

func (s *IntervalSet) IsNil() bool { return s == nil || len(s.intervals) == 0 }

func (s *IntervalSet) GetIntervals() []Interval { return s.intervals }

func (s *IntervalSet) SetReadOnly(ro bool) { s.readOnly = ro }

// Complement returns the set of values in [minValue,maxValue] not in s.
func (s *IntervalSet) Complement(minValue, maxValue int) *IntervalSet {
	result := NewIntervalSet()
	cursor := minValue
	for _, iv := range s.intervals {
		lo, hi := iv.Start, iv.Stop
		if hi < minValue || lo > maxValue {
			continue
		}
		if lo > cursor {
			result.AddRange(cursor, lo-1)
		}
		if hi+1 > cursor {
			cursor = hi + 1
		}
	}
	if cursor <= maxValue {
		result.AddRange(cursor, maxValue)
	}
	return result
}

func (s *IntervalSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, iv := range s.intervals {
		if i > 0 {
			b.WriteByte(',')
		}
		if iv.Start == iv.Stop {
			b.WriteString(strconv.Itoa(iv.Start))
		} else {
			b.WriteString(strconv.Itoa(iv.Start))
			b.WriteString("..")
			b.WriteString(strconv.Itoa(iv.Stop))
		}
	}
	b.WriteByte('}')
	return b.String()
}
