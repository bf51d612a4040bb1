package player

import (
	"reflect"
	"testing"

	"gitlab.com/gomidi/midi/v2"

	"github.com/rondolang/rondo/compiler"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		event    compiler.Event
		expected midi.Message
	}{
		{compiler.Event{Kind: compiler.NoteOn, Channel: 1, Data: 60, Velocity: 100}, midi.NoteOn(1, 60, 100)},
		{compiler.Event{Kind: compiler.NoteOff, Channel: 1, Data: 60, Velocity: 100}, midi.NoteOff(1, 60)},
		{compiler.Event{Kind: compiler.ProgramChange, Channel: 0, Data: 40}, midi.ProgramChange(0, 40)},
		{compiler.Event{Kind: compiler.NoteOn, Channel: 15, Data: 0, Velocity: 100}, midi.NoteOn(15, 0, 100)},
		{compiler.Event{Kind: compiler.NoteOn, Channel: 0, Data: 127, Velocity: 100}, midi.NoteOn(0, 127, 100)},
	}
	for _, test := range tests {
		msg, err := message(test.event)
		if err != nil {
			t.Fatalf("message(%+v) failed: %v", test.event, err)
		}
		if !reflect.DeepEqual(msg, test.expected) {
			t.Errorf("message(%+v) = %v, expected %v", test.event, msg, test.expected)
		}
	}
}

func TestMessageRejectsDataOutsideMIDIRange(t *testing.T) {
	// a pitch far enough below middle C compiles to a negative note number,
	// which has no seven-bit encoding
	for _, event := range []compiler.Event{
		{Kind: compiler.NoteOn, Channel: 0, Data: -1, Velocity: 100},
		{Kind: compiler.NoteOn, Channel: 0, Data: 128, Velocity: 100},
		{Kind: compiler.NoteOff, Channel: 0, Data: 200, Velocity: 100},
		{Kind: compiler.ProgramChange, Channel: 0, Data: -64},
	} {
		if msg, err := message(event); err == nil {
			t.Errorf("message(%+v) = %v, expected an error", event, msg)
		}
	}
}
