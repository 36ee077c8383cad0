package contracts

// Linux input subsystem constants for the PC speaker (linux/input-event-codes.h).
const (
	EventSound uint16 = 0x12 // EV_SND
	SoundTone  uint16 = 0x02 // SND_TONE
)

// ToneEvent is the record written to the tone device.
type ToneEvent struct {
	Type  uint16 // Event category, always EventSound.
	Code  uint16 // Event subtype, always SoundTone.
	Value int32  // Frequency in hertz, 0 for silence.
}

// NewToneEvent returns a sound/tone event carrying the given value.
func NewToneEvent(value int32) ToneEvent {
	return ToneEvent{Type: EventSound, Code: SoundTone, Value: value}
}

// PitchName is a pitch class name such as "C", "F#" or "Bb".
type PitchName string

// Pitch classes and their enharmonic aliases.
const (
	C      PitchName = "C"
	CSharp PitchName = "C#"
	D      PitchName = "D"
	DSharp PitchName = "D#"
	E      PitchName = "E"
	F      PitchName = "F"
	FSharp PitchName = "F#"
	G      PitchName = "G"
	GSharp PitchName = "G#"
	A      PitchName = "A"
	ASharp PitchName = "A#"
	B      PitchName = "B"

	DFlat PitchName = "Db"
	EFlat PitchName = "Eb"
	GFlat PitchName = "Gb"
	AFlat PitchName = "Ab"
	BFlat PitchName = "Bb"
)

// Device is an open tone device handle.
type Device interface {
	Write(ev ToneEvent) error // Writes one event in full or fails with ErrWriteFailure.
	Close() error             // Releases the handle without writing anything.
}

// Player defines the caller-facing operations of an open session.
type Player interface {
	// PlayNote sounds frequencyHz for durationMs, then silences the device.
	PlayNote(frequencyHz, durationMs float64) error
	// PlayNamedNote resolves name and octave to a frequency and plays it.
	PlayNamedNote(name PitchName, octave int, durationMs float64) error
	// Rest keeps the device silent for durationMs.
	Rest(durationMs float64) error
	// Close silences and releases the device.
	Close() error
}
