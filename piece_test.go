package rondo_test

import (
	"math"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/rondolang/rondo"
)

func TestPieceFromYAML(t *testing.T) {
	input := `
name: test piece
bpm: 100
ticksperbeat: 8
voices:
  - instrument: Violin
    notes: C2 E2
  - instrument: Cello
    notes: C,4
`
	var piece rondo.Piece
	if err := yaml.Unmarshal([]byte(input), &piece); err != nil {
		t.Fatalf("could not parse the piece: %v", err)
	}
	if piece.BPM != 100 || piece.TicksPerBeat != 8 {
		t.Fatalf("got bpm %v and ticksperbeat %v, expected 100 and 8", piece.BPM, piece.TicksPerBeat)
	}
	m, err := piece.Music()
	if err != nil {
		t.Fatalf("could not assemble the piece: %v", err)
	}
	if got := rondo.Duration(m); got != 4 {
		t.Fatalf("got duration %v, expected 4", got)
	}
	violin, err := rondo.Notes("C2 E2", rondo.Violin)
	if err != nil {
		t.Fatalf("could not parse the violin line: %v", err)
	}
	cello, err := rondo.Notes("C,4", rondo.Cello)
	if err != nil {
		t.Fatalf("could not parse the cello line: %v", err)
	}
	if expected := rondo.Music(rondo.Together{violin, cello}); m != expected {
		t.Fatalf("got %#v, expected %#v", m, expected)
	}
}

func TestVoiceShaping(t *testing.T) {
	voice := rondo.Voice{
		Instrument: "Flute",
		Notes:      "C D",
		Transpose:  rondo.Octave,
		Repeat:     2,
		Loop:       true,
		Delay:      3,
	}
	m, err := voice.Music()
	if err != nil {
		t.Fatalf("could not assemble the voice: %v", err)
	}
	line, err := rondo.Notes("C D", rondo.Flute)
	if err != nil {
		t.Fatalf("could not parse the line: %v", err)
	}
	shaped := rondo.Transpose(line, rondo.Octave)
	expected := rondo.Music(rondo.Concat{rondo.Rest{3}, rondo.Forever{rondo.Concat{shaped, shaped}}})
	if m != expected {
		t.Fatalf("got %#v, expected %#v", m, expected)
	}
	if !math.IsInf(rondo.Duration(m), 1) {
		t.Fatalf("a looping voice should be infinite")
	}
}

func TestVoiceDefaultsToPiano(t *testing.T) {
	voice := rondo.Voice{Notes: "C"}
	m, err := voice.Music()
	if err != nil {
		t.Fatalf("could not assemble the voice: %v", err)
	}
	expected, err := rondo.Notes("C", rondo.Piano)
	if err != nil {
		t.Fatalf("could not parse: %v", err)
	}
	if m != expected {
		t.Fatalf("got %#v, expected %#v", m, expected)
	}
}

func TestPieceErrors(t *testing.T) {
	tests := []struct {
		name    string
		piece   rondo.Piece
		message string
	}{
		{"no voices", rondo.Piece{}, "no voices"},
		{"unknown instrument", rondo.Piece{Voices: []rondo.Voice{{Instrument: "Kazoo", Notes: "C"}}}, "unknown instrument"},
		{"bad notation", rondo.Piece{Voices: []rondo.Voice{{Instrument: "Violin", Notes: "C H"}}}, "cannot understand"},
		{"negative repeat", rondo.Piece{Voices: []rondo.Voice{{Instrument: "Violin", Notes: "C", Repeat: -1}}}, "negative repeat"},
		{"negative delay", rondo.Piece{Voices: []rondo.Voice{{Instrument: "Violin", Notes: "C", Delay: -2}}}, "negative delay"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.piece.Music()
			if err == nil {
				t.Fatalf("expected an error")
			}
			if !strings.Contains(err.Error(), test.message) {
				t.Fatalf("got error %q, expected it to mention %q", err, test.message)
			}
		})
	}
}

func TestInstrumentByName(t *testing.T) {
	tests := []struct {
		name     string
		expected rondo.Instrument
	}{
		{"Violin", rondo.Violin},
		{"violin", rondo.Violin},
		{"Acoustic Grand Piano", rondo.AcousticGrandPiano},
		{"piano", rondo.Piano},
		{"FrenchHorn", rondo.FrenchHorn},
		{"french horn", rondo.FrenchHorn},
		{"Honky-tonk Piano", rondo.HonkyTonkPiano},
		{"Lead 8 (bass + lead)", rondo.LeadBass},
		{"Gunshot", rondo.Gunshot},
	}
	for _, test := range tests {
		got, ok := rondo.InstrumentByName(test.name)
		if !ok {
			t.Errorf("%q: expected a hit", test.name)
			continue
		}
		if got != test.expected {
			t.Errorf("%q: got %v, expected %v", test.name, got, test.expected)
		}
	}
	if _, ok := rondo.InstrumentByName("Kazoo"); ok {
		t.Errorf("Kazoo should not resolve to an instrument")
	}
}

func TestInstrumentProgramNumbers(t *testing.T) {
	if rondo.NumInstruments != 128 {
		t.Fatalf("the General MIDI bank has 128 programs, got %v", int(rondo.NumInstruments))
	}
	if got := rondo.AcousticGrandPiano.Program(); got != 0 {
		t.Fatalf("grand piano should be program 0, got %v", got)
	}
	if got := rondo.Gunshot.Program(); got != 127 {
		t.Fatalf("gunshot should be program 127, got %v", got)
	}
	if got := rondo.Violin.Program(); got != 40 {
		t.Fatalf("violin should be program 40, got %v", got)
	}
	if got := rondo.Cello.Program(); got != 42 {
		t.Fatalf("cello should be program 42, got %v", got)
	}
}
