package compiler

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rondolang/rondo"
)

// Defaults of the playback configuration, from the original player: quarter
// note = one beat at 120 BPM, 64 ticks per quarter note, and the 16 channels
// of a standard MIDI synthesizer.
const (
	DefaultTicksPerBeat    = 64
	DefaultBeatsPerMinute  = 120
	DefaultChannelCapacity = 16
)

// maxPlaybackMinutes bounds how far a Forever loop is unrolled: a compiled
// schedule never runs longer than this many minutes of wall-clock time.
const maxPlaybackMinutes = 10

// defaultVelocity is the fixed velocity (volume) of every scheduled note.
const defaultVelocity = 100

// Config sets the tick resolution, the tempo and the channel capacity of the
// device the schedule is compiled for. Zero fields mean the defaults above.
type Config struct {
	TicksPerBeat    int
	BeatsPerMinute  int
	ChannelCapacity int
}

func (c Config) withDefaults() Config {
	if c.TicksPerBeat == 0 {
		c.TicksPerBeat = DefaultTicksPerBeat
	}
	if c.BeatsPerMinute == 0 {
		c.BeatsPerMinute = DefaultBeatsPerMinute
	}
	if c.ChannelCapacity == 0 {
		c.ChannelCapacity = DefaultChannelCapacity
	}
	return c
}

func (c Config) validate() error {
	if c.TicksPerBeat < 1 {
		return errors.New("ticks per beat should be > 0")
	}
	if c.BeatsPerMinute < 1 {
		return errors.New("beats per minute should be > 0")
	}
	if c.ChannelCapacity < 1 {
		return errors.New("channel capacity should be > 0")
	}
	return nil
}

// ChannelCapacityError is returned when a piece uses more instruments than
// the device has channels. The whole compilation is aborted; no partial
// schedule is usable.
type ChannelCapacityError struct {
	Instrument rondo.Instrument
	Capacity   int
}

func (e *ChannelCapacityError) Error() string {
	return fmt.Sprintf("cannot assign a channel to %v: tried to use too many instruments, limited to %v", e.Instrument, e.Capacity)
}

// Compile walks m once and returns its schedule: the note-on/note-off events
// of every note, the program-change event of every instrument the piece
// uses, and the channel assignments, with ticks non-decreasing in event
// order and same-tick events in compile order. Compile is a pure tree walk
// bounded by the Forever playback cap, so it terminates for every input; it
// fails only on an invalid config, a nil piece, or a piece that needs more
// channels than the config allows.
func Compile(m rondo.Music, config Config) (*Sequence, error) {
	if m == nil {
		return nil, errors.New("cannot compile nil Music")
	}
	config = config.withDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}
	c := &compilation{
		config: config,
		seq: &Sequence{
			TicksPerBeat:   config.TicksPerBeat,
			BeatsPerMinute: config.BeatsPerMinute,
			Channels:       map[rondo.Instrument]int{},
		},
	}
	end, err := c.compile(m, 0)
	if err != nil {
		return nil, err
	}
	c.seq.End = end
	// The walk appends each subtree's events together, so a Together's
	// bottom voice lands after its top voice. A stable sort by tick restores
	// chronological order and keeps compile order within one tick.
	sort.SliceStable(c.seq.Events, func(i, j int) bool {
		return c.seq.Events[i].Tick < c.seq.Events[j].Tick
	})
	return c.seq, nil
}

// compilation is the state owned by a single Compile call: the event list
// and the channel table being built. It never escapes the call.
type compilation struct {
	config      Config
	seq         *Sequence
	nextChannel int
}

// ticks converts a duration in beats to ticks, truncating to the tick grid.
func (c *compilation) ticks(beats float64) int {
	return int(beats * float64(c.config.TicksPerBeat))
}

// compile schedules m starting at tick at and returns the tick at which m
// ends.
func (c *compilation) compile(m rondo.Music, at int) (int, error) {
	switch m := m.(type) {
	case rondo.Note:
		channel, err := c.channel(m.Instrument)
		if err != nil {
			return 0, err
		}
		end := at + c.ticks(m.Duration)
		note := m.Pitch.MIDINote()
		c.add(Event{Kind: NoteOn, Channel: channel, Data: note, Velocity: defaultVelocity, Tick: at})
		c.add(Event{Kind: NoteOff, Channel: channel, Data: note, Velocity: defaultVelocity, Tick: end})
		return end, nil
	case rondo.Rest:
		return at + c.ticks(m.Duration), nil
	case rondo.Concat:
		end, err := c.compile(m.First, at)
		if err != nil {
			return 0, err
		}
		return c.compile(m.Second, end)
	case rondo.Together:
		endTop, err := c.compile(m.Top, at)
		if err != nil {
			return 0, err
		}
		endBottom, err := c.compile(m.Bottom, at)
		if err != nil {
			return 0, err
		}
		if endBottom > endTop {
			return endBottom, nil
		}
		return endTop, nil
	case rondo.Forever:
		return c.compileForever(m, at)
	}
	return 0, fmt.Errorf("cannot compile Music of type %T", m)
}

// compileForever unrolls the body of a Forever, each repetition starting
// where the previous one ended, until the elapsed ticks reach the playback
// cap. A body that cannot advance the tick cursor is not repeated at all:
// looping on it would never terminate, and semantically it schedules
// nothing.
func (c *compilation) compileForever(m rondo.Forever, at int) (int, error) {
	if rondo.Duration(m.Body) == 0 {
		return at, nil
	}
	maxPlaybackTicks := c.config.TicksPerBeat * c.config.BeatsPerMinute * maxPlaybackMinutes
	elapsed := 0
	for elapsed < maxPlaybackTicks {
		end, err := c.compile(m.Body, at+elapsed)
		if err != nil {
			return 0, err
		}
		if end == at+elapsed {
			// sub-tick body; repeating it would not advance
			break
		}
		elapsed = end - at
	}
	return at + elapsed, nil
}

// channel returns the channel assigned to the instrument, assigning the next
// unused one on first use. A first use also emits the program-change event
// that patches the instrument into the channel, at tick 0 so it precedes
// every note on that channel. Assignments last for the whole compilation;
// channels are never reclaimed.
func (c *compilation) channel(instr rondo.Instrument) (int, error) {
	if channel, ok := c.seq.Channels[instr]; ok {
		return channel, nil
	}
	if c.nextChannel >= c.config.ChannelCapacity {
		return 0, &ChannelCapacityError{Instrument: instr, Capacity: c.config.ChannelCapacity}
	}
	channel := c.nextChannel
	c.nextChannel++
	c.seq.Channels[instr] = channel
	c.add(Event{Kind: ProgramChange, Channel: channel, Data: instr.Program(), Tick: 0})
	return channel, nil
}

func (c *compilation) add(e Event) {
	c.seq.Events = append(c.seq.Events, e)
}
