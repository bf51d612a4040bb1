package rondo

import "math"

type (
	// Music is a piece of music played by one or more instruments. It is a
	// closed sum type: the only variants are Note, Rest, Concat, Together and
	// Forever, and operations over Music are exhaustive switches over those
	// five. All variants are comparable plain values, so == on two Music
	// values is structural equality: two pieces are equal exactly when they
	// are built from equal variants applied to equal arguments. Music values
	// are never mutated after construction; every operation that changes a
	// piece builds a new tree.
	Music interface {
		music()
	}

	// Note is a single pitch sounding on an instrument for a number of beats.
	// Duration must be finite and non-negative.
	Note struct {
		Duration   float64
		Pitch      Pitch
		Instrument Instrument
	}

	// Rest is silence for a number of beats. Duration must be finite and
	// non-negative.
	Rest struct {
		Duration float64
	}

	// Concat plays First and then Second, one after the other.
	Concat struct {
		First  Music
		Second Music
	}

	// Together plays Top and Bottom simultaneously. Both start at the same
	// instant but may end at different times.
	Together struct {
		Top    Music
		Bottom Music
	}

	// Forever plays Body over and over in an endless loop. Its duration is
	// infinite no matter how short the body is; only the compiler bounds it.
	Forever struct {
		Body Music
	}
)

func (Note) music()     {}
func (Rest) music()     {}
func (Concat) music()   {}
func (Together) music() {}
func (Forever) music()  {}

// Duration returns the total duration of m in beats. A Concat lasts as long
// as its parts combined, a Together as long as its longer part, and a Forever
// is positive infinity regardless of its body. Duration is total; it never
// fails.
func Duration(m Music) float64 {
	switch m := m.(type) {
	case Note:
		return m.Duration
	case Rest:
		return m.Duration
	case Concat:
		return Duration(m.First) + Duration(m.Second)
	case Together:
		return math.Max(Duration(m.Top), Duration(m.Bottom))
	case Forever:
		return math.Inf(1)
	}
	panic("rondo: Duration of invalid Music")
}

// Transpose returns a new piece in which every note's pitch is shifted by the
// given number of semitones; everything else is identical to m. Transposing
// by zero returns a piece structurally equal to m, and transposing twice is
// the same as transposing once by the sum.
func Transpose(m Music, semitones int) Music {
	switch m := m.(type) {
	case Note:
		return Note{m.Duration, m.Pitch.Transpose(semitones), m.Instrument}
	case Rest:
		return m
	case Concat:
		return Concat{Transpose(m.First, semitones), Transpose(m.Second, semitones)}
	case Together:
		return Together{Transpose(m.Top, semitones), Transpose(m.Bottom, semitones)}
	case Forever:
		return Forever{Transpose(m.Body, semitones)}
	}
	panic("rondo: Transpose of invalid Music")
}
