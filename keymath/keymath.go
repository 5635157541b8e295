package keymath

import "fmt"

// noteNames cycles from A because key 1 on a standard 88-key piano is A0.
var noteNames = [12]string{"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}

// blackOffsets are the five accidentals within an octave starting at A.
var blackOffsets = map[int]bool{1: true, 4: true, 6: true, 9: true, 11: true}

// NoteName maps a 1-based key number to its scientific pitch name:
// 1 -> "A0", 40 -> "C4", 88 -> "C8". The octave number increments at each
// C. Key numbers come from a validated document; behavior for
// non-positive input is undefined. Instruments that don't start at A0
// add the document's starting note index before calling.
func NoteName(keyNumber int) string {
	noteIndex := (keyNumber - 1) % 12
	octave := (keyNumber - 1 + 9) / 12
	return fmt.Sprintf("%v%v", noteNames[noteIndex], octave)
}

// IsBlackKey reports whether the key is one of the five accidentals in
// its octave.
func IsBlackKey(keyNumber int) bool {
	return blackOffsets[(keyNumber-1)%12]
}

// MidiNote converts a key number to a MIDI note number (A0 is MIDI 21).
func MidiNote(keyNumber int) uint8 {
	return uint8(keyNumber + 20)
}
