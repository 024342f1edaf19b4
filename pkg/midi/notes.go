package midi

import (
	"fmt"
	"math"
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteToFrequency converts a MIDI note number to its frequency in Hz.
// A tuningA4 of zero means standard 440 Hz tuning.
func NoteToFrequency(note uint8, tuningA4 float64) float64 {
	if tuningA4 == 0 {
		tuningA4 = 440
	}
	return tuningA4 * math.Exp2((float64(note)-69)/12)
}

// FrequencyToNote converts a frequency in Hz to the nearest MIDI note
// number, clamped to the valid range.
func FrequencyToNote(freq, tuningA4 float64) uint8 {
	if tuningA4 == 0 {
		tuningA4 = 440
	}
	if freq <= 0 {
		return 0
	}
	note := 69 + 12*math.Log2(freq/tuningA4)
	if note < 0 {
		return 0
	}
	if note > 127 {
		return 127
	}
	return uint8(note + 0.5)
}

// NoteNumberToName renders a note number as pitch and octave, middle C
// (note 60) being "C4".
func NoteNumberToName(note uint8) string {
	octave := int(note)/12 - 1
	return fmt.Sprintf("%s%d", noteNames[note%12], octave)
}
