package antlr

import (
	"testing"

	"github.com/google/uuid"
)

// atnEncoder builds a serialized ATN string the same way a generated
// recognizer's code-gen templates would, one +2-offset code point at a
// time, so the round trip through ATNDeserializer can be tested without
// a real grammar.
type atnEncoder struct {
	vals []int
}

func (e *atnEncoder) put(v int) *atnEncoder {
	e.vals = append(e.vals, v)
	return e
}

func (e *atnEncoder) putUUID(u uuid.UUID) *atnEncoder {
	b := make([]byte, 16)
	copy(b, u[:])
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	for i := 0; i < 8; i++ {
		lo, hi := int(b[i*2]), int(b[i*2+1])
		e.put(lo | hi<<8)
	}
	return e
}

func (e *atnEncoder) String() string {
	runes := make([]rune, len(e.vals))
	for i, v := range e.vals {
		runes[i] = rune(v + 2)
	}
	return string(runes)
}

// buildMinimalParserATN encodes a single rule: RuleStart --atom(1)--> RuleStop.
func buildMinimalParserATN() string {
	e := &atnEncoder{}
	e.put(serializedATNVersion)
	e.putUUID(baseSerializedUUID)

	e.put(ATNTypeParser) // grammarType
	e.put(2)             // maxTokenType

	e.put(2) // nstates
	e.put(ATNStateRuleStart).put(0)
	e.put(ATNStateRuleStop).put(0)

	e.put(0) // numNonGreedy
	e.put(0) // numPrecedenceStates

	e.put(1) // nrules
	e.put(0) // rule 0 start state

	e.put(0) // nmodes

	e.put(0) // BMP (16-bit) sets
	e.put(0) // SMP (32-bit) sets

	e.put(1)              // nedges
	e.put(0).put(1).put(TransitionAtom).put(1).put(0).put(0)

	e.put(0) // ndecisions

	return e.String()
}

func TestATNDeserializerRoundTrip(t *testing.T) {
	serialized := buildMinimalParserATN()
	atn := NewATNDeserializer(nil).Deserialize(serialized)

	if atn.GetGrammarType() != ATNTypeParser {
		t.Fatalf("expected a parser ATN")
	}
	if len(atn.ruleToStartState) != 1 || len(atn.ruleToStopState) != 1 {
		t.Fatalf("expected exactly one rule's start/stop state recorded")
	}

	start := atn.ruleToStartState[0]
	stop := atn.ruleToStopState[0]
	if start == nil || stop == nil {
		t.Fatalf("rule 0 is missing its start or stop state")
	}

	transitions := start.GetTransitions()
	if len(transitions) != 1 {
		t.Fatalf("expected exactly one transition out of the rule start state, got %d", len(transitions))
	}
	atom, ok := transitions[0].(*AtomTransition)
	if !ok {
		t.Fatalf("expected an AtomTransition, got %T", transitions[0])
	}
	if atom.Label != 1 {
		t.Fatalf("expected the atom transition to match token type 1, got %d", atom.Label)
	}
	if atom.GetTarget() != stop {
		t.Fatalf("expected the atom transition to target the rule's stop state")
	}
}

func TestATNDeserializerRejectsBadVersion(t *testing.T) {
	e := &atnEncoder{}
	e.put(serializedATNVersion + 1)
	e.putUUID(baseSerializedUUID)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected Deserialize to panic on an unsupported version")
		}
	}()
	NewATNDeserializer(nil).Deserialize(e.String())
}

func TestATNDeserializerRejectsUnknownUUID(t *testing.T) {
	e := &atnEncoder{}
	e.put(serializedATNVersion)
	e.putUUID(uuid.New())

	defer func() {
		if recover() == nil {
			t.Fatalf("expected Deserialize to panic on an unrecognized format UUID")
		}
	}()
	NewATNDeserializer(nil).Deserialize(e.String())
}
