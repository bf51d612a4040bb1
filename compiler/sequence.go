package compiler

import (
	"time"

	"github.com/rondolang/rondo"
)

// EventKind enumerates the kinds of scheduled events.
type EventKind int

const (
	NoteOn EventKind = iota
	NoteOff
	ProgramChange
)

func (k EventKind) String() string {
	switch k {
	case NoteOn:
		return "NOTE_ON"
	case NoteOff:
		return "NOTE_OFF"
	case ProgramChange:
		return "PROGRAM_CHANGE"
	}
	return "UNKNOWN"
}

// Event is a single scheduled action on a channel of the playback device.
// Data is the MIDI note number for NoteOn/NoteOff and the program number for
// ProgramChange.
type Event struct {
	Kind     EventKind
	Channel  int
	Data     int
	Velocity int
	Tick     int
}

// DataLabel names what the Data field holds, for the listing.
func (e Event) DataLabel() string {
	if e.Kind == ProgramChange {
		return "Program"
	}
	return "Pitch"
}

// Sequence is a compiled schedule: the events of one piece in non-decreasing
// tick order, the channel each instrument was assigned, and the tempo and
// resolution the events were scheduled at. A Sequence is a finished artifact;
// the compiler hands it off whole and never touches it again.
type Sequence struct {
	TicksPerBeat   int
	BeatsPerMinute int
	Events         []Event
	Channels       map[rondo.Instrument]int

	// End is the tick at which the piece ends; at least the tick of the last
	// event, and later when the piece ends in a rest.
	End int
}

// TickDuration returns the wall-clock duration of one tick at the sequence's
// tempo and resolution.
func (s *Sequence) TickDuration() time.Duration {
	return time.Minute / time.Duration(s.BeatsPerMinute*s.TicksPerBeat)
}
