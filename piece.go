package rondo

import (
	"errors"
	"fmt"
)

type (
	// Piece is the on-disk description of a composition, read from YAML by
	// the command line tools. A piece sets the tempo and tick resolution the
	// compiler should use and lists the voices that play together. The zero
	// values of BPM and TicksPerBeat mean the compiler defaults.
	Piece struct {
		Name         string  `yaml:",omitempty"`
		BPM          int     `yaml:",omitempty"`
		TicksPerBeat int     `yaml:",omitempty"`
		Voices       []Voice `yaml:",omitempty"`
	}

	// Voice is one line of a piece: a notation string played on a named
	// instrument, optionally shaped by the combinator library. Shaping is
	// applied in the order transpose, repeat, loop, delay, so a delayed
	// looping voice rests first and then loops, which is what the voices of
	// a round need.
	Voice struct {
		Instrument string
		Notes      string
		Transpose  int     `yaml:",omitempty"`
		Repeat     int     `yaml:",omitempty"`
		Loop       bool    `yaml:",omitempty"`
		Delay      float64 `yaml:",omitempty"`
	}
)

// Music assembles the piece into a single Music value: every voice is parsed
// and shaped, and all voices play together.
func (p *Piece) Music() (Music, error) {
	if len(p.Voices) == 0 {
		return nil, errors.New("rondo: piece has no voices")
	}
	var m Music
	for i, v := range p.Voices {
		vm, err := v.Music()
		if err != nil {
			return nil, fmt.Errorf("voice %v: %w", i, err)
		}
		if m == nil {
			m = vm
		} else {
			m = Together{m, vm}
		}
	}
	return m, nil
}

// Music parses the voice's notation and applies its shaping.
func (v *Voice) Music() (Music, error) {
	name := v.Instrument
	if name == "" {
		name = Piano.String()
	}
	instr, ok := InstrumentByName(name)
	if !ok {
		return nil, fmt.Errorf("rondo: unknown instrument %q", v.Instrument)
	}
	if v.Repeat < 0 {
		return nil, fmt.Errorf("rondo: negative repeat count %v", v.Repeat)
	}
	if v.Delay < 0 {
		return nil, fmt.Errorf("rondo: negative delay %v", v.Delay)
	}
	m, err := Notes(v.Notes, instr)
	if err != nil {
		return nil, err
	}
	if v.Transpose != 0 {
		m = Transpose(m, v.Transpose)
	}
	if v.Repeat > 1 {
		m = Repeat(m, v.Repeat)
	}
	if v.Loop {
		m = Loop(m)
	}
	if v.Delay > 0 {
		m = Delay(m, v.Delay)
	}
	return m, nil
}
