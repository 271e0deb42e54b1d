package pitchlab

import (
	"fmt"
	"math"

	"github.com/heucuva/comparison"
)

// Pitch is a validated index into the Frequencies table. The zero value
// is the lowest supported pitch, C₀.
type Pitch struct {
	index uint8
}

// PitchAt returns the pitch at the given Frequencies index.
func PitchAt(index int) (Pitch, error) {
	if index < 0 || index >= len(Frequencies) {
		return Pitch{}, fmt.Errorf("index %d: %w", index, ErrPitchOutOfRange)
	}
	return Pitch{index: uint8(index)}, nil
}

// Frequency returns the pitch frequency in Hz.
func (p Pitch) Frequency() float64 {
	return Frequencies[p.index]
}

// Index returns the position of the pitch in the Frequencies table.
func (p Pitch) Index() int {
	return int(p.index)
}

// Number returns the chromatic number of the pitch within its octave:
// 0 for C, 1 for C♯/D♭, up to 11 for B.
func (p Pitch) Number() int {
	return int(p.index % 12)
}

// Octave returns the octave of the pitch. The error is defensive: it can
// only occur if the frequency table grows beyond the supported octaves.
func (p Pitch) Octave() (Octave, error) {
	return OctaveAt(int(p.index / 12))
}

// MIDI returns the standard MIDI note number of the pitch (A₄ = 69).
// No MIDI transport is involved, this is plain arithmetic.
func (p Pitch) MIDI() int {
	return int(p.index) + 12
}

// Transpose shifts the pitch by a signed number of semitones.
func (p Pitch) Transpose(semitones int) (Pitch, error) {
	return PitchAt(int(p.index) + semitones)
}

// Compare orders pitches by index, which is also ascending frequency.
func (p Pitch) Compare(rhs Pitch) comparison.Spaceship {
	switch {
	case p.index < rhs.index:
		return comparison.SpaceshipRightGreater
	case p.index > rhs.index:
		return comparison.SpaceshipLeftGreater
	default:
		return comparison.SpaceshipEqual
	}
}

func (p Pitch) String() string {
	return fmt.Sprintf("%v", Frequencies[p.index])
}

// NearestPitch returns the supported pitch closest to freq along with the
// interval from that pitch to freq (positive when freq is sharp of the
// pitch). Frequencies beyond either end of the table resolve to the
// boundary pitch with the true signed deviation.
func NearestPitch(freq float64) (Pitch, Interval, error) {
	if freq <= 0 || math.IsInf(freq, 0) || math.IsNaN(freq) {
		return Pitch{}, Interval{}, fmt.Errorf("frequency %v: %w", freq, ErrInvalidFrequency)
	}
	// A₄ sits at index 57; rounding in log space picks the nearest
	// pitch in cents.
	index := 57 + int(math.Round(12*math.Log2(freq/440)))
	if index < 0 {
		index = 0
	} else if index >= len(Frequencies) {
		index = len(Frequencies) - 1
	}
	p := Pitch{index: uint8(index)}
	iv, err := NewInterval(p.Frequency(), freq)
	if err != nil {
		return Pitch{}, Interval{}, err
	}
	return p, iv, nil
}
