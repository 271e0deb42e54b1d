package pitchlab

import (
	"fmt"

	"github.com/heucuva/comparison"
)

// Letter is one of the seven note letters C through B.
type Letter int

const (
	LetterC Letter = iota
	LetterD
	LetterE
	LetterF
	LetterG
	LetterA
	LetterB
	letterCount
)

// Semitone offset of each natural letter from C within an octave.
var letterOffsets = [letterCount]int{0, 2, 4, 5, 7, 9, 11}

// Next returns the following letter, wrapping from B to C.
func (l Letter) Next() Letter {
	return (l + 1) % letterCount
}

// Previous returns the preceding letter, wrapping from C to B.
func (l Letter) Previous() Letter {
	return (l + letterCount - 1) % letterCount
}

func (l Letter) String() string {
	return string("CDEFGAB"[l])
}

// ParseLetter converts a single ASCII character, case-insensitively,
// into a note letter.
func ParseLetter(c rune) (Letter, error) {
	switch c {
	case 'c', 'C':
		return LetterC, nil
	case 'd', 'D':
		return LetterD, nil
	case 'e', 'E':
		return LetterE, nil
	case 'f', 'F':
		return LetterF, nil
	case 'g', 'G':
		return LetterG, nil
	case 'a', 'A':
		return LetterA, nil
	case 'b', 'B':
		return LetterB, nil
	default:
		return 0, fmt.Errorf("letter %q: %w", c, ErrIncorrectLetter)
	}
}

// Octave is one of the ten supported octave levels, zero-indexed from
// OctaveFirst.
type Octave int

const (
	OctaveFirst Octave = iota
	OctaveSecond
	OctaveThird
	OctaveFourth
	OctaveFifth
	OctaveSixth
	OctaveSeventh
	OctaveEighth
	OctaveNinth
	OctaveTenth
	octaveCount
)

// OctaveAt converts a numeric octave level in [0,9] into an Octave.
func OctaveAt(n int) (Octave, error) {
	if n < 0 || n >= int(octaveCount) {
		return 0, fmt.Errorf("octave %d: %w", n, ErrOctaveNotInRange)
	}
	return Octave(n), nil
}

// Int returns the numeric octave level, 0 through 9.
func (o Octave) Int() int {
	return int(o)
}

// String renders the octave as its subscript digit glyph, ₀ through ₉.
func (o Octave) String() string {
	return string(rune(0x2080 + o)) // U+2080 is subscript zero
}

// Accidental modifies a letter's pitch by one semitone.
type Accidental int

const (
	AccidentalNone Accidental = iota
	AccidentalFlat
	AccidentalSharp
)

func (a Accidental) String() string {
	switch a {
	case AccidentalFlat:
		return "♭"
	case AccidentalSharp:
		return "♯"
	default:
		return ""
	}
}

// Note is a musical note: letter, octave and accidental.
type Note struct {
	letter     Letter
	octave     Octave
	accidental Accidental
}

// NewNote builds a note, rejecting letter/accidental pairs that do not
// exist on the keyboard: C and F have no flat, E and B have no sharp.
func NewNote(letter Letter, octave Octave, accidental Accidental) (Note, error) {
	switch accidental {
	case AccidentalFlat:
		if letter == LetterC || letter == LetterF {
			return Note{}, fmt.Errorf("%v flat: %w", letter, ErrIncorrectAccidental)
		}
	case AccidentalSharp:
		if letter == LetterE || letter == LetterB {
			return Note{}, fmt.Errorf("%v sharp: %w", letter, ErrIncorrectAccidental)
		}
	}
	return Note{letter: letter, octave: octave, accidental: accidental}, nil
}

// Letter returns the note letter.
func (n Note) Letter() Letter {
	return n.letter
}

// Octave returns the note octave.
func (n Note) Octave() Octave {
	return n.octave
}

// Accidental returns the note accidental.
func (n Note) Accidental() Accidental {
	return n.accidental
}

// Enharmonic returns the alternate spelling of the same pitch: C♯
// becomes D♭, E♭ becomes D♯. Naturals are returned unchanged. The
// octave never changes; the accidental legality rules keep every
// respelling inside its octave.
func (n Note) Enharmonic() Note {
	switch n.accidental {
	case AccidentalFlat:
		return Note{letter: n.letter.Previous(), octave: n.octave, accidental: AccidentalSharp}
	case AccidentalSharp:
		return Note{letter: n.letter.Next(), octave: n.octave, accidental: AccidentalFlat}
	default:
		return n
	}
}

// Pitch resolves the note to its pitch. Notes whose index falls outside
// the frequency table (the top supported octave, or an accidental at
// either extreme) return ErrPitchOutOfRange.
func (n Note) Pitch() (Pitch, error) {
	index := n.octave.Int()*12 + letterOffsets[n.letter]
	switch n.accidental {
	case AccidentalFlat:
		index--
	case AccidentalSharp:
		index++
	}
	p, err := PitchAt(index)
	if err != nil {
		return Pitch{}, fmt.Errorf("note %v: %w", n, err)
	}
	return p, nil
}

// NoteFromPitch returns the canonical spelling of a pitch: naturals for
// the white keys, sharps for the black keys.
func NoteFromPitch(p Pitch) Note {
	s := canonicalSpellings[p.Number()]
	return Note{letter: s.letter, octave: Octave(p.Index() / 12), accidental: s.accidental}
}

var canonicalSpellings = [12]struct {
	letter     Letter
	accidental Accidental
}{
	{LetterC, AccidentalNone},
	{LetterC, AccidentalSharp},
	{LetterD, AccidentalNone},
	{LetterD, AccidentalSharp},
	{LetterE, AccidentalNone},
	{LetterF, AccidentalNone},
	{LetterF, AccidentalSharp},
	{LetterG, AccidentalNone},
	{LetterG, AccidentalSharp},
	{LetterA, AccidentalNone},
	{LetterA, AccidentalSharp},
	{LetterB, AccidentalNone},
}

// Compare orders notes by their resolved pitch, so enharmonic spellings
// of one pitch compare equal. The error mirrors Pitch: a note outside
// the frequency table has no position in the order.
func (n Note) Compare(rhs Note) (comparison.Spaceship, error) {
	a, err := n.Pitch()
	if err != nil {
		return comparison.SpaceshipEqual, err
	}
	b, err := rhs.Pitch()
	if err != nil {
		return comparison.SpaceshipEqual, err
	}
	return a.Compare(b), nil
}

// String renders the note as letter, accidental glyph and subscript
// octave, e.g. "C♯₄".
func (n Note) String() string {
	return n.letter.String() + n.accidental.String() + n.octave.String()
}

// ParseNote reads a compact note spelling: a letter, an optional
// accidental ('#', '+' or '♯' for sharp; 'b', '-' or '♭' for flat) and
// an octave digit, plain or subscript. Both "C#4" and "C♯₄" parse to
// the same note.
func ParseNote(s string) (Note, error) {
	runes := []rune(s)
	if len(runes) < 2 {
		return Note{}, fmt.Errorf("note %q: %w", s, ErrIncorrectLetter)
	}
	letter, err := ParseLetter(runes[0])
	if err != nil {
		return Note{}, fmt.Errorf("note %q: %w", s, err)
	}
	i := 1
	accidental := AccidentalNone
	switch runes[i] {
	case '#', '+', '♯':
		accidental = AccidentalSharp
		i++
	case 'b', '-', '♭':
		accidental = AccidentalFlat
		i++
	}
	if i >= len(runes) || i+1 < len(runes) {
		return Note{}, fmt.Errorf("note %q: %w", s, ErrOctaveNotInRange)
	}
	level, ok := octaveDigit(runes[i])
	if !ok {
		return Note{}, fmt.Errorf("note %q: %w", s, ErrOctaveNotInRange)
	}
	octave, err := OctaveAt(level)
	if err != nil {
		return Note{}, fmt.Errorf("note %q: %w", s, err)
	}
	n, err := NewNote(letter, octave, accidental)
	if err != nil {
		return Note{}, fmt.Errorf("note %q: %w", s, err)
	}
	return n, nil
}

func octaveDigit(c rune) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= '₀' && c <= '₉':
		return int(c - '₀'), true
	default:
		return 0, false
	}
}
