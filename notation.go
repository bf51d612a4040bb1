package rondo

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// ParseError reports a notation symbol that does not match the grammar.
type ParseError struct {
	Symbol string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("rondo: cannot understand %q", e.Symbol)
}

// A symbol is a pitch or rest part followed by an optional duration: a bare
// integer multiplies the one-beat default and a trailing /m divides it.
var symbolRegexp = regexp.MustCompile(`^([^/0-9]*)([0-9]+)?(/([0-9]+))?$`)

// Notes parses a string of notes and rests in a variant of abc notation into
// Music played on the given instrument.
//
// The notation is a sequence of whitespace-delimited symbols. The vertical
// bar | may be used as a measure delimiter; it is treated exactly like
// whitespace. Each symbol is a note or a rest:
//
//	symbol   ::= . duration      a rest
//	             pitch duration  a note
//	pitch    ::= accidental letter octave*
//	accidental ::= empty for natural, _ for flat, ^ for sharp
//	letter   ::= one of A-G
//	octave   ::= ' to raise one octave, , to lower one octave
//	duration ::= empty for one beat, n for n beats, /m for 1/m beat,
//	             n/m for n/m beats
//
// For example, in 4/4 common time, "C" is a quarter note middle C, "A'2" a
// half note high A and "_D/2" an eighth note middle D flat. The symbols play
// in sequence, starting from a zero-duration rest. A symbol that does not
// match the grammar makes Notes return a *ParseError naming it.
func Notes(notes string, instr Instrument) (Music, error) {
	m := Music(Rest{0})
	for _, sym := range strings.FieldsFunc(notes, isDelimiter) {
		parsed, err := parseSymbol(sym, instr)
		if err != nil {
			return nil, err
		}
		m = Concat{m, parsed}
	}
	return m, nil
}

func isDelimiter(r rune) bool {
	return r == '|' || unicode.IsSpace(r)
}

// parseSymbol parses a single symbol into a Note or a Rest.
func parseSymbol(symbol string, instr Instrument) (Music, error) {
	groups := symbolRegexp.FindStringSubmatch(symbol)
	if groups == nil {
		return nil, &ParseError{symbol}
	}

	duration := 1.0
	if groups[2] != "" {
		n, err := strconv.Atoi(groups[2])
		if err != nil {
			return nil, &ParseError{symbol}
		}
		duration *= float64(n)
	}
	if groups[4] != "" {
		n, err := strconv.Atoi(groups[4])
		if err != nil || n == 0 {
			return nil, &ParseError{symbol}
		}
		duration /= float64(n)
	}

	if groups[1] == "." {
		return Rest{duration}, nil
	}
	pitch, ok := parsePitch(groups[1])
	if !ok {
		return nil, &ParseError{symbol}
	}
	return Note{duration, pitch, instr}, nil
}

// parsePitch strips octave and accidental markers recursively from the pitch
// letter; each marker transposes the inner pitch by an octave or a semitone.
func parsePitch(s string) (Pitch, bool) {
	switch {
	case strings.HasSuffix(s, "'"):
		p, ok := parsePitch(strings.TrimSuffix(s, "'"))
		return p.Transpose(Octave), ok
	case strings.HasSuffix(s, ","):
		p, ok := parsePitch(strings.TrimSuffix(s, ","))
		return p.Transpose(-Octave), ok
	case strings.HasPrefix(s, "^"):
		p, ok := parsePitch(strings.TrimPrefix(s, "^"))
		return p.Transpose(1), ok
	case strings.HasPrefix(s, "_"):
		p, ok := parsePitch(strings.TrimPrefix(s, "_"))
		return p.Transpose(-1), ok
	case len(s) != 1:
		return 0, false
	default:
		return NewPitch(s[0])
	}
}
