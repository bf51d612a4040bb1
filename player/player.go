// Package player is the thin device shell around a compiled sequence: it
// opens a MIDI output port and paces the events of a Sequence in real time.
// All scheduling decisions were already made by the compiler; the player
// only converts events to MIDI messages and waits between ticks.
package player

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"github.com/rondolang/rondo/compiler"
)

// Player owns an open MIDI output port.
type Player struct {
	driver *rtmididrv.Driver
	out    drivers.Out
	send   func(midi.Message) error
}

// OutPorts returns the names of the available MIDI output ports, in the
// index order New accepts.
func OutPorts() ([]string, error) {
	driver, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("opening MIDI driver failed: %w", err)
	}
	defer driver.Close()
	outs, err := driver.Outs()
	if err != nil {
		return nil, fmt.Errorf("listing MIDI outputs failed: %w", err)
	}
	names := make([]string, len(outs))
	for i, out := range outs {
		names[i] = out.String()
	}
	return names, nil
}

// New opens the MIDI output port with the given index. Close the player when
// done with it.
func New(portIndex int) (*Player, error) {
	driver, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("opening MIDI driver failed: %w", err)
	}
	outs, err := driver.Outs()
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("listing MIDI outputs failed: %w", err)
	}
	if len(outs) == 0 {
		driver.Close()
		return nil, errors.New("no MIDI output ports available")
	}
	if portIndex < 0 || portIndex >= len(outs) {
		driver.Close()
		return nil, fmt.Errorf("no MIDI output port %v, have %v ports", portIndex, len(outs))
	}
	out := outs[portIndex]
	if err := out.Open(); err != nil {
		driver.Close()
		return nil, fmt.Errorf("opening MIDI output %v failed: %w", out.String(), err)
	}
	send, err := midi.SendTo(out)
	if err != nil {
		out.Close()
		driver.Close()
		return nil, fmt.Errorf("cannot send to MIDI output %v: %w", out.String(), err)
	}
	return &Player{driver: driver, out: out, send: send}, nil
}

// Play sends the events of seq to the output port, pacing them by the
// sequence's tick duration, and blocks until the end of the piece or until
// the context is cancelled. On cancellation it silences every channel the
// sequence uses before returning.
func (p *Player) Play(ctx context.Context, seq *compiler.Sequence) error {
	tick := seq.TickDuration()
	start := time.Now()
	timer := time.NewTimer(0)
	defer timer.Stop()
	for _, e := range seq.Events {
		due := start.Add(time.Duration(e.Tick) * tick)
		timer.Reset(time.Until(due))
		select {
		case <-ctx.Done():
			p.silence(seq)
			return ctx.Err()
		case <-timer.C:
		}
		msg, err := message(e)
		if err != nil {
			return err
		}
		if err := p.send(msg); err != nil {
			return fmt.Errorf("sending MIDI message failed: %w", err)
		}
	}
	// hold through a trailing rest so back-to-back pieces keep their timing
	timer.Reset(time.Until(start.Add(time.Duration(seq.End) * tick)))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}
	return nil
}

// Close closes the output port and the driver.
func (p *Player) Close() error {
	err := p.out.Close()
	p.driver.Close()
	return err
}

// message converts an event to a MIDI message. Note and program numbers are
// seven-bit on the wire; a pitch transposed outside 0-127 cannot be sent and
// is an error, not a wrapped data byte.
func message(e compiler.Event) (midi.Message, error) {
	if e.Data < 0 || e.Data > 127 {
		return nil, fmt.Errorf("%v %v %v is outside the MIDI range 0-127", e.Kind, e.DataLabel(), e.Data)
	}
	switch e.Kind {
	case compiler.NoteOn:
		return midi.NoteOn(uint8(e.Channel), uint8(e.Data), uint8(e.Velocity)), nil
	case compiler.NoteOff:
		return midi.NoteOff(uint8(e.Channel), uint8(e.Data)), nil
	case compiler.ProgramChange:
		return midi.ProgramChange(uint8(e.Channel), uint8(e.Data)), nil
	}
	return nil, fmt.Errorf("cannot convert event of kind %v", e.Kind)
}

func (p *Player) silence(seq *compiler.Sequence) {
	for _, channel := range seq.Channels {
		p.send(midi.ControlChange(uint8(channel), 123, 0)) // all notes off
	}
}
