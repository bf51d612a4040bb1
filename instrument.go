package rondo

import "strings"

// Instrument identifies one of the 128 General MIDI instruments. The value of
// an Instrument is its MIDI program number, so the enumeration is closed and
// instruments compare and hash by identity. Instruments carry no behaviour of
// their own; the compiler uses them as channel-assignment keys and as the
// program numbers of the program-change events it emits.
type Instrument int

const (
	AcousticGrandPiano Instrument = iota
	BrightAcousticPiano
	ElectricGrandPiano
	HonkyTonkPiano
	ElectricPiano1
	ElectricPiano2
	Harpsichord
	Clavinet
	Celesta
	Glockenspiel
	MusicBox
	Vibraphone
	Marimba
	Xylophone
	TubularBells
	Dulcimer
	DrawbarOrgan
	PercussiveOrgan
	RockOrgan
	ChurchOrgan
	ReedOrgan
	Accordion
	Harmonica
	TangoAccordion
	AcousticGuitarNylon
	AcousticGuitarSteel
	ElectricGuitarJazz
	ElectricGuitarClean
	ElectricGuitarMuted
	OverdrivenGuitar
	DistortionGuitar
	GuitarHarmonics
	AcousticBass
	ElectricBassFinger
	ElectricBassPick
	FretlessBass
	SlapBass1
	SlapBass2
	SynthBass1
	SynthBass2
	Violin
	Viola
	Cello
	Contrabass
	TremoloStrings
	PizzicatoStrings
	OrchestralHarp
	Timpani
	StringEnsemble1
	StringEnsemble2
	SynthStrings1
	SynthStrings2
	ChoirAahs
	VoiceOohs
	SynthVoice
	OrchestraHit
	Trumpet
	Trombone
	Tuba
	MutedTrumpet
	FrenchHorn
	BrassSection
	SynthBrass1
	SynthBrass2
	SopranoSax
	AltoSax
	TenorSax
	BaritoneSax
	Oboe
	EnglishHorn
	Bassoon
	Clarinet
	Piccolo
	Flute
	Recorder
	PanFlute
	BlownBottle
	Shakuhachi
	Whistle
	Ocarina
	LeadSquare
	LeadSawtooth
	LeadCalliope
	LeadChiff
	LeadCharang
	LeadVoice
	LeadFifths
	LeadBass
	PadNewAge
	PadWarm
	PadPolysynth
	PadChoir
	PadBowed
	PadMetallic
	PadHalo
	PadSweep
	FXRain
	FXSoundtrack
	FXCrystal
	FXAtmosphere
	FXBrightness
	FXGoblins
	FXEchoes
	FXSciFi
	Sitar
	Banjo
	Shamisen
	Koto
	Kalimba
	Bagpipe
	Fiddle
	Shanai
	TinkleBell
	Agogo
	SteelDrums
	Woodblock
	TaikoDrum
	MelodicTom
	SynthDrum
	ReverseCymbal
	GuitarFretNoise
	BreathNoise
	Seashore
	BirdTweet
	TelephoneRing
	Helicopter
	Applause
	Gunshot

	// NumInstruments is the size of the enumeration; valid instruments are in
	// [0, NumInstruments).
	NumInstruments
)

// Piano is the instrument pieces default to.
const Piano = AcousticGrandPiano

var instrumentNames = [NumInstruments]string{
	"Acoustic Grand Piano", "Bright Acoustic Piano", "Electric Grand Piano",
	"Honky-tonk Piano", "Electric Piano 1", "Electric Piano 2", "Harpsichord",
	"Clavinet", "Celesta", "Glockenspiel", "Music Box", "Vibraphone",
	"Marimba", "Xylophone", "Tubular Bells", "Dulcimer", "Drawbar Organ",
	"Percussive Organ", "Rock Organ", "Church Organ", "Reed Organ",
	"Accordion", "Harmonica", "Tango Accordion", "Acoustic Guitar (nylon)",
	"Acoustic Guitar (steel)", "Electric Guitar (jazz)",
	"Electric Guitar (clean)", "Electric Guitar (muted)", "Overdriven Guitar",
	"Distortion Guitar", "Guitar Harmonics", "Acoustic Bass",
	"Electric Bass (finger)", "Electric Bass (pick)", "Fretless Bass",
	"Slap Bass 1", "Slap Bass 2", "Synth Bass 1", "Synth Bass 2", "Violin",
	"Viola", "Cello", "Contrabass", "Tremolo Strings", "Pizzicato Strings",
	"Orchestral Harp", "Timpani", "String Ensemble 1", "String Ensemble 2",
	"Synth Strings 1", "Synth Strings 2", "Choir Aahs", "Voice Oohs",
	"Synth Voice", "Orchestra Hit", "Trumpet", "Trombone", "Tuba",
	"Muted Trumpet", "French Horn", "Brass Section", "Synth Brass 1",
	"Synth Brass 2", "Soprano Sax", "Alto Sax", "Tenor Sax", "Baritone Sax",
	"Oboe", "English Horn", "Bassoon", "Clarinet", "Piccolo", "Flute",
	"Recorder", "Pan Flute", "Blown Bottle", "Shakuhachi", "Whistle",
	"Ocarina", "Lead 1 (square)", "Lead 2 (sawtooth)", "Lead 3 (calliope)",
	"Lead 4 (chiff)", "Lead 5 (charang)", "Lead 6 (voice)", "Lead 7 (fifths)",
	"Lead 8 (bass + lead)", "Pad 1 (new age)", "Pad 2 (warm)",
	"Pad 3 (polysynth)", "Pad 4 (choir)", "Pad 5 (bowed)", "Pad 6 (metallic)",
	"Pad 7 (halo)", "Pad 8 (sweep)", "FX 1 (rain)", "FX 2 (soundtrack)",
	"FX 3 (crystal)", "FX 4 (atmosphere)", "FX 5 (brightness)",
	"FX 6 (goblins)", "FX 7 (echoes)", "FX 8 (sci-fi)", "Sitar", "Banjo",
	"Shamisen", "Koto", "Kalimba", "Bagpipe", "Fiddle", "Shanai",
	"Tinkle Bell", "Agogo", "Steel Drums", "Woodblock", "Taiko Drum",
	"Melodic Tom", "Synth Drum", "Reverse Cymbal", "Guitar Fret Noise",
	"Breath Noise", "Seashore", "Bird Tweet", "Telephone Ring", "Helicopter",
	"Applause", "Gunshot",
}

// Valid reports whether i is a member of the enumeration.
func (i Instrument) Valid() bool {
	return i >= 0 && i < NumInstruments
}

// Program returns the MIDI program number of the instrument.
func (i Instrument) Program() int {
	return int(i)
}

func (i Instrument) String() string {
	if !i.Valid() {
		return "Unknown"
	}
	return instrumentNames[i]
}

// normalizeInstrumentName folds case and drops the spaces, hyphens and
// parentheses of an instrument name, so that "french horn", "FrenchHorn" and
// "French Horn" all look up the same instrument.
func normalizeInstrumentName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch r {
		case ' ', '-', '(', ')', '+':
		default:
			b.WriteRune(r)
		}
	}
	return strings.ToLower(b.String())
}

var instrumentsByName = func() map[string]Instrument {
	m := make(map[string]Instrument, NumInstruments)
	for i := Instrument(0); i < NumInstruments; i++ {
		m[normalizeInstrumentName(instrumentNames[i])] = i
	}
	m["piano"] = Piano
	return m
}()

// InstrumentByName looks up an instrument by its General MIDI name. The
// lookup ignores case, spaces and punctuation. The second return value is
// false if no instrument has that name.
func InstrumentByName(name string) (Instrument, bool) {
	i, ok := instrumentsByName[normalizeInstrumentName(name)]
	return i, ok
}
