package rondo

import "math"

type (
	// Filter transforms one piece of music into another. Filters are the
	// voice transforms the combinators below apply between repetitions.
	Filter func(Music) Music

	// Builder combines two pieces of music into one; InSequence and
	// InParallel are the two builders Series is used with.
	Builder func(Music, Music) Music
)

// Identity returns m unchanged.
func Identity(m Music) Music { return m }

// Transposer returns a filter that transposes by the given number of
// semitones.
func Transposer(semitones int) Filter {
	return func(m Music) Music { return Transpose(m, semitones) }
}

// Delayer returns a filter that delays by the given number of beats.
func Delayer(delay float64) Filter {
	return func(m Music) Music { return Delay(m, delay) }
}

// Compose returns the filter that applies f and then g.
func Compose(f, g Filter) Filter {
	return func(m Music) Music { return g(f(m)) }
}

// InSequence builds m1 followed by m2.
func InSequence(m1, m2 Music) Music { return Concat{m1, m2} }

// InParallel builds m1 played at the same time as m2.
func InParallel(m1, m2 Music) Music { return Together{m1, m2} }

// Delay plays m after delay beats of silence. It panics if m is nil or delay
// is negative.
func Delay(m Music, delay float64) Music {
	checkMusic(m)
	checkBeats(delay)
	return Concat{Rest{delay}, m}
}

// Series combines n voices with the builder b, where the first voice is m
// and each following voice is the previous one passed through the filter f.
// It panics if m is nil or n < 1.
func Series(m Music, b Builder, f Filter, n int) Music {
	checkMusic(m)
	checkVoices(n)
	if n == 1 {
		return m
	}
	return b(m, Series(f(m), b, f, n-1))
}

// Counterpoint stacks n simultaneous voices, each the previous voice passed
// through f.
func Counterpoint(m Music, f Filter, n int) Music {
	return Series(m, InParallel, f, n)
}

// Canon stacks n simultaneous voices where each voice is the previous one
// passed through f and additionally delayed by delay beats.
func Canon(m Music, delay float64, f Filter, n int) Music {
	checkBeats(delay)
	return Counterpoint(m, Compose(f, Delayer(delay)), n)
}

// Round makes a simple n-voice round: a canon in which each voice is
// identical except for its delay. A one-voice round is m itself.
func Round(m Music, delay float64, n int) Music {
	return Canon(m, delay, Identity, n)
}

// RepeatWith plays n repetitions of m one after the other using a single
// voice, where the ith repetition is m passed through f i-1 times.
func RepeatWith(m Music, f Filter, n int) Music {
	return Series(m, InSequence, f, n)
}

// Repeat plays n identical repetitions of m one after the other.
func Repeat(m Music, n int) Music {
	return RepeatWith(m, Identity, n)
}

// Loop plays m repeatedly in an endless loop.
func Loop(m Music) Music {
	checkMusic(m)
	return Forever{m}
}

// Accompany plays m1 and m2 simultaneously, both starting and ending at the
// same time, by repeating the shorter piece for as long as the longer one
// plays. It requires that one of the pieces runs forever, or that the longer
// piece's duration is an even multiple of the shorter one's; with an inexact
// ratio the repetition count is silently rounded to the nearest integer, so
// the result can end slightly before or after the longer piece. Accompany
// panics if either piece is nil, or if the shorter piece has zero duration
// while the longer one is finite, which leaves the repetition count
// undefined.
func Accompany(m1, m2 Music) Music {
	checkMusic(m1)
	checkMusic(m2)
	d1, d2 := Duration(m1), Duration(m2)
	if d1 < d2 {
		return Accompany(m2, m1)
	}

	// now m1 plays at least as long as m2
	switch {
	case math.IsInf(d2, 1):
		return Together{m1, m2}
	case math.IsInf(d1, 1):
		return Together{m1, Forever{m2}}
	case d2 == 0:
		panic("rondo: Accompany of a finite piece with a zero-duration piece")
	default:
		return Together{m1, Repeat(m2, int(math.Round(d1 / d2)))}
	}
}

func checkMusic(m Music) {
	if m == nil {
		panic("rondo: nil Music")
	}
}

func checkBeats(d float64) {
	if d < 0 || math.IsNaN(d) {
		panic("rondo: negative duration")
	}
}

func checkVoices(n int) {
	if n < 1 {
		panic("rondo: voice count below one")
	}
}
