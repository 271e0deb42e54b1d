package pitchlab

import "errors"

var (
	// ErrIncorrectLetter reports a character outside a–g/A–G.
	ErrIncorrectLetter = errors.New("incorrect letter")
	// ErrIncorrectAccidental reports a flat on C/F or a sharp on E/B.
	ErrIncorrectAccidental = errors.New("incorrect accidental")
	// ErrOctaveNotInRange reports an octave outside the supported range.
	ErrOctaveNotInRange = errors.New("octave not in range")
	// ErrPitchOutOfRange reports a pitch index outside the frequency table.
	ErrPitchOutOfRange = errors.New("pitch out of range")
	// ErrInvalidFrequency reports a zero, negative or non-finite frequency.
	ErrInvalidFrequency = errors.New("invalid frequency")
)
