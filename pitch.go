package rondo

// Pitch is the number of semitones above middle C, or below it when negative.
// Middle C itself is 0, the D above it is 2 and the B below it is -1. Pitches
// are plain values; Transpose returns a new Pitch and never mutates.
type Pitch int

// MiddleC is the reference pitch that all other pitches are measured from.
const MiddleC Pitch = 0

// Octave is the number of semitones in one octave.
const Octave = 12

// letterOffsets maps the letters A-G to their semitone offsets from C, within
// the octave that starts at middle C.
var letterOffsets = map[byte]Pitch{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// NewPitch returns the pitch of the given letter (A-G) in the octave starting
// at middle C. The second return value is false if the letter is not a pitch
// letter.
func NewPitch(letter byte) (Pitch, bool) {
	p, ok := letterOffsets[letter]
	return p, ok
}

// Difference returns the number of semitones from o up to p; negative when p
// is below o.
func (p Pitch) Difference(o Pitch) int {
	return int(p) - int(o)
}

// Transpose returns the pitch the given number of semitones above p, or below
// p for a negative count.
func (p Pitch) Transpose(semitones int) Pitch {
	return p + Pitch(semitones)
}

// MIDINote returns the MIDI note number of p, defined as the number of
// semitones above the C five octaves below middle C; middle C is note 60.
func (p Pitch) MIDINote() int {
	return p.Difference(MiddleC) + 60
}

// names of the twelve semitones within an octave, sharps written the way the
// notation writes them.
var semitoneNames = [Octave]string{
	"C", "^C", "D", "^D", "E", "F", "^F", "G", "^G", "A", "^A", "B",
}

// String renders the pitch in the same form the notation parser reads: the
// note letter with an optional ^ accidental, followed by one ' per octave
// above middle C or one , per octave below it.
func (p Pitch) String() string {
	octaves, semitone := int(p)/Octave, int(p)%Octave
	if semitone < 0 {
		semitone += Octave
		octaves--
	}
	s := semitoneNames[semitone]
	for ; octaves > 0; octaves-- {
		s += "'"
	}
	for ; octaves < 0; octaves++ {
		s += ","
	}
	return s
}
