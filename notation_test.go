package rondo_test

import (
	"errors"
	"testing"

	"github.com/rondolang/rondo"
)

// symbol parses a one-symbol string and strips the zero-duration rest the
// fold starts from.
func symbol(t *testing.T, s string) rondo.Music {
	t.Helper()
	m, err := rondo.Notes(s, rondo.Piano)
	if err != nil {
		t.Fatalf("could not parse %q: %v", s, err)
	}
	concat, ok := m.(rondo.Concat)
	if !ok || concat.First != rondo.Music(rondo.Rest{0}) {
		t.Fatalf("parsing %q: expected a single symbol after the empty rest, got %#v", s, m)
	}
	return concat.Second
}

func TestNotesSymbols(t *testing.T) {
	tests := []struct {
		symbol   string
		expected rondo.Music
	}{
		{"C", note(1, 0)},
		{"A", note(1, 9)},
		{"A'2", note(2, 21)},
		{"_D/2", note(0.5, 1)},
		{"^F", note(1, 6)},
		{"_E", note(1, 3)},
		{"C,", note(1, -12)},
		{"B,,3", note(3, -13)},
		{"G''", note(1, 31)},
		{"D3/2", note(1.5, 2)},
		{"E3", note(3, 4)},
		{"F/4", note(0.25, 5)},
		{"^^C", note(1, 2)},
		{"__B", note(1, 9)},
		{"^C'", note(1, 13)},
		{".", rondo.Rest{1}},
		{".2", rondo.Rest{2}},
		{"./2", rondo.Rest{0.5}},
		{".3/4", rondo.Rest{0.75}},
	}
	for _, test := range tests {
		t.Run(test.symbol, func(t *testing.T) {
			if got := symbol(t, test.symbol); got != test.expected {
				t.Fatalf("got %#v, expected %#v", got, test.expected)
			}
		})
	}
}

func TestNotesFoldsLeftToRight(t *testing.T) {
	m, err := rondo.Notes("C D", rondo.Piano)
	if err != nil {
		t.Fatalf("could not parse: %v", err)
	}
	expected := rondo.Concat{
		rondo.Concat{rondo.Rest{0}, note(1, 0)},
		note(1, 2),
	}
	if m != rondo.Music(expected) {
		t.Fatalf("got %#v, expected %#v", m, expected)
	}
}

func TestNotesEmptyString(t *testing.T) {
	m, err := rondo.Notes("", rondo.Piano)
	if err != nil {
		t.Fatalf("could not parse: %v", err)
	}
	if m != rondo.Music(rondo.Rest{0}) {
		t.Fatalf("empty notation should be the zero-duration rest, got %#v", m)
	}
	if got := rondo.Duration(m); got != 0 {
		t.Fatalf("empty notation should have zero duration, got %v", got)
	}
}

func TestNotesBarsAreWhitespace(t *testing.T) {
	withBars, err := rondo.Notes("C2 E2|G2 C'2", rondo.Piano)
	if err != nil {
		t.Fatalf("could not parse with bars: %v", err)
	}
	withSpaces, err := rondo.Notes("C2 E2 G2 C'2", rondo.Piano)
	if err != nil {
		t.Fatalf("could not parse with spaces: %v", err)
	}
	if withBars != withSpaces {
		t.Fatalf("bars should parse like whitespace: got %#v and %#v", withBars, withSpaces)
	}
}

func TestNotesDuration(t *testing.T) {
	m, err := rondo.Notes("C/2 D/2 E F2 | . G", rondo.Piano)
	if err != nil {
		t.Fatalf("could not parse: %v", err)
	}
	if got := rondo.Duration(m); got != 6 {
		t.Fatalf("got duration %v, expected 6", got)
	}
}

func TestNotesParseErrors(t *testing.T) {
	for _, bad := range []string{
		"H",     // not a pitch letter
		"c",     // lower case is not in the grammar
		"2",     // duration without a pitch
		"C/",    // missing divisor
		"C2/",   // missing divisor after multiplier
		"C'2'",  // octave mark after the duration
		"^",     // accidental without a letter
		"CD",    // two letters
		"C#",    // wrong accidental style
		".'",    // rest with an octave mark
		"C/0",   // zero divisor
		"C2.5",  // fractional multiplier
		"C 2 H", // error in a later symbol
	} {
		t.Run(bad, func(t *testing.T) {
			_, err := rondo.Notes(bad, rondo.Piano)
			if err == nil {
				t.Fatalf("expected a parse error")
			}
			var parseErr *rondo.ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected a *ParseError, got %T: %v", err, err)
			}
		})
	}
}
