package pitchlab

import (
	"errors"
	"math"
	"testing"

	"github.com/heucuva/comparison"
)

func TestAccidentalLegality(t *testing.T) {
	illegal := []struct {
		letter     Letter
		accidental Accidental
	}{
		{LetterC, AccidentalFlat},
		{LetterF, AccidentalFlat},
		{LetterE, AccidentalSharp},
		{LetterB, AccidentalSharp},
	}
	for _, tc := range illegal {
		if _, err := NewNote(tc.letter, OctaveFifth, tc.accidental); !errors.Is(err, ErrIncorrectAccidental) {
			t.Fatalf("%v%v: expected ErrIncorrectAccidental, got %v", tc.letter, tc.accidental, err)
		}
	}
	for letter := LetterC; letter < letterCount; letter++ {
		for _, accidental := range []Accidental{AccidentalNone, AccidentalFlat, AccidentalSharp} {
			if accidental == AccidentalFlat && (letter == LetterC || letter == LetterF) {
				continue
			}
			if accidental == AccidentalSharp && (letter == LetterE || letter == LetterB) {
				continue
			}
			if _, err := NewNote(letter, OctaveFifth, accidental); err != nil {
				t.Fatalf("%v%v: unexpected error %v", letter, accidental, err)
			}
		}
	}
}

func TestCanonicalSpelling(t *testing.T) {
	want := []string{"C", "C♯", "D", "D♯", "E", "F", "F♯", "G", "G♯", "A", "A♯", "B"}
	for _, p := range Pitches() {
		n := NoteFromPitch(p)
		got := n.Letter().String() + n.Accidental().String()
		if got != want[p.Number()] {
			t.Fatalf("pitch %d: spelled %q, want %q", p.Index(), got, want[p.Number()])
		}
		back, err := n.Pitch()
		if err != nil {
			t.Fatalf("pitch %d: round trip failed: %v", p.Index(), err)
		}
		if back != p {
			t.Fatalf("pitch %d: round trip gave %d", p.Index(), back.Index())
		}
	}
}

func TestEnharmonic(t *testing.T) {
	cs, err := NewNote(LetterC, OctaveFifth, AccidentalSharp)
	if err != nil {
		t.Fatalf("C sharp failed: %v", err)
	}
	db := cs.Enharmonic()
	if db.Letter() != LetterD || db.Accidental() != AccidentalFlat || db.Octave() != OctaveFifth {
		t.Fatalf("expected D flat in the same octave, got %v", db)
	}
	if back := db.Enharmonic(); back != cs {
		t.Fatalf("enharmonic not an involution: got %v", back)
	}

	natural, _ := NewNote(LetterG, OctaveThird, AccidentalNone)
	if natural.Enharmonic() != natural {
		t.Fatalf("natural note respelled")
	}

	// Every legal altered note keeps its pitch across respelling, in
	// every octave low enough to resolve.
	for octave := OctaveFirst; octave < octaveCount-1; octave++ {
		for letter := LetterC; letter < letterCount; letter++ {
			for _, accidental := range []Accidental{AccidentalFlat, AccidentalSharp} {
				n, err := NewNote(letter, octave, accidental)
				if err != nil {
					continue
				}
				want, err := n.Pitch()
				if err != nil {
					t.Fatalf("%v: pitch failed: %v", n, err)
				}
				alt := n.Enharmonic()
				if alt.Octave() != octave {
					t.Fatalf("%v: enharmonic crossed octaves to %v", n, alt)
				}
				got, err := alt.Pitch()
				if err != nil {
					t.Fatalf("%v: enharmonic pitch failed: %v", alt, err)
				}
				if got != want {
					t.Fatalf("%v and %v resolve to different pitches", n, alt)
				}
			}
		}
	}
}

func TestNotePitchScenario(t *testing.T) {
	// C♯ in scientific octave 4 is 277.18 Hz.
	cs, err := NewNote(LetterC, OctaveFifth, AccidentalSharp)
	if err != nil {
		t.Fatalf("C sharp failed: %v", err)
	}
	p, err := cs.Pitch()
	if err != nil {
		t.Fatalf("pitch failed: %v", err)
	}
	if math.Abs(p.Frequency()-277.18) > 1e-9 {
		t.Fatalf("C♯₄ frequency %v, want 277.18", p.Frequency())
	}
	alt, err := cs.Enharmonic().Pitch()
	if err != nil {
		t.Fatalf("enharmonic pitch failed: %v", err)
	}
	if alt != p {
		t.Fatalf("D♭₄ resolves to index %d, want %d", alt.Index(), p.Index())
	}
}

func TestNotePitchOutOfRange(t *testing.T) {
	top, err := NewNote(LetterC, OctaveTenth, AccidentalNone)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	if _, err := top.Pitch(); !errors.Is(err, ErrPitchOutOfRange) {
		t.Fatalf("expected ErrPitchOutOfRange, got %v", err)
	}
}

func TestNoteCompare(t *testing.T) {
	c4, _ := NewNote(LetterC, OctaveFifth, AccidentalNone)
	d4, _ := NewNote(LetterD, OctaveFifth, AccidentalNone)
	cmp, err := c4.Compare(d4)
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	if cmp != comparison.SpaceshipRightGreater {
		t.Fatalf("expected C4 < D4")
	}

	cs, _ := NewNote(LetterC, OctaveFifth, AccidentalSharp)
	db, _ := NewNote(LetterD, OctaveFifth, AccidentalFlat)
	cmp, err = cs.Compare(db)
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	if cmp != comparison.SpaceshipEqual {
		t.Fatalf("enharmonic spellings should compare equal")
	}

	unresolvable, _ := NewNote(LetterC, OctaveTenth, AccidentalNone)
	if _, err := c4.Compare(unresolvable); !errors.Is(err, ErrPitchOutOfRange) {
		t.Fatalf("expected ErrPitchOutOfRange, got %v", err)
	}
}

func TestLetterCycle(t *testing.T) {
	if LetterB.Next() != LetterC {
		t.Fatalf("Next(B) should wrap to C")
	}
	if LetterC.Previous() != LetterB {
		t.Fatalf("Previous(C) should wrap to B")
	}
	if LetterF.Previous() != LetterE {
		t.Fatalf("Previous(F) should be E")
	}
	for letter := LetterC; letter < letterCount; letter++ {
		if letter.Next().Previous() != letter {
			t.Fatalf("%v: next/previous not inverse", letter)
		}
	}
}

func TestParseLetter(t *testing.T) {
	got, err := ParseLetter('g')
	if err != nil {
		t.Fatalf("ParseLetter('g') failed: %v", err)
	}
	if got != LetterG {
		t.Fatalf("ParseLetter('g') = %v, want G", got)
	}
	if _, err := ParseLetter('H'); !errors.Is(err, ErrIncorrectLetter) {
		t.Fatalf("expected ErrIncorrectLetter, got %v", err)
	}
}

func TestOctaveRange(t *testing.T) {
	for n := 0; n <= 9; n++ {
		oct, err := OctaveAt(n)
		if err != nil {
			t.Fatalf("OctaveAt(%d) failed: %v", n, err)
		}
		if oct.Int() != n {
			t.Fatalf("OctaveAt(%d).Int() = %d", n, oct.Int())
		}
	}
	for _, n := range []int{-1, 10} {
		if _, err := OctaveAt(n); !errors.Is(err, ErrOctaveNotInRange) {
			t.Fatalf("OctaveAt(%d): expected ErrOctaveNotInRange, got %v", n, err)
		}
	}
}

func TestNoteString(t *testing.T) {
	fs, err := NewNote(LetterF, OctaveFifth, AccidentalSharp)
	if err != nil {
		t.Fatalf("F sharp failed: %v", err)
	}
	if got := fs.String(); got != "F♯₄" {
		t.Fatalf("rendered %q, want F♯₄", got)
	}
	bb, _ := NewNote(LetterB, OctaveFirst, AccidentalFlat)
	if got := bb.String(); got != "B♭₀" {
		t.Fatalf("rendered %q, want B♭₀", got)
	}
	natural, _ := NewNote(LetterA, OctaveTenth, AccidentalNone)
	if got := natural.String(); got != "A₉" {
		t.Fatalf("rendered %q, want A₉", got)
	}
}

func TestParseNote(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"C#4", "C♯₄"},
		{"c+4", "C♯₄"},
		{"C♯₄", "C♯₄"},
		{"Db4", "D♭₄"},
		{"d-4", "D♭₄"},
		{"B♭₃", "B♭₃"},
		{"bb3", "B♭₃"},
		{"a4", "A₄"},
		{"G9", "G₉"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			n, err := ParseNote(tc.in)
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if got := n.String(); got != tc.want {
				t.Fatalf("parsed to %q, want %q", got, tc.want)
			}
		})
	}

	bad := []struct {
		in  string
		err error
	}{
		{"", ErrIncorrectLetter},
		{"H4", ErrIncorrectLetter},
		{"Cb4", ErrIncorrectAccidental},
		{"E#2", ErrIncorrectAccidental},
		{"C#", ErrOctaveNotInRange},
		{"C#44", ErrOctaveNotInRange},
		{"Cx", ErrOctaveNotInRange},
	}
	for _, tc := range bad {
		t.Run("bad_"+tc.in, func(t *testing.T) {
			if _, err := ParseNote(tc.in); !errors.Is(err, tc.err) {
				t.Fatalf("ParseNote(%q): expected %v, got %v", tc.in, tc.err, err)
			}
		})
	}
}

func TestParseNoteRoundTrip(t *testing.T) {
	for _, p := range Pitches() {
		n := NoteFromPitch(p)
		back, err := ParseNote(n.String())
		if err != nil {
			t.Fatalf("%v: reparse failed: %v", n, err)
		}
		if back != n {
			t.Fatalf("%v: reparsed to %v", n, back)
		}
	}
}
