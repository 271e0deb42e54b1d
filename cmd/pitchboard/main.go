package main

import (
	"fmt"
	"image/color"
	"log"

	pitchlab "github.com/cbegin/pitchlab-go"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	windowW = 1100
	windowH = 420

	textScale = 2
	lineH     = 14 * textScale

	keyboardX = 22
	keyboardY = 210
	whiteKeyW = 16
	whiteKeyH = 150
	blackKeyW = 10
	blackKeyH = 90

	whiteKeysPerOctave = 7
	octaves            = 9
)

var (
	bgColor        = color.RGBA{192, 192, 192, 255}
	borderColor    = color.RGBA{128, 128, 128, 255}
	whiteKeyColor  = color.RGBA{245, 245, 240, 255}
	blackKeyColor  = color.RGBA{24, 24, 32, 255}
	highlightColor = color.RGBA{0, 0, 128, 255}
	sunkenBgColor  = color.RGBA{24, 24, 32, 255}

	// 3D bevel colors for old-school embossed look.
	bevelLight  = color.RGBA{255, 255, 255, 255}
	bevelDarker = color.RGBA{64, 64, 64, 255}
)

// Semitone offset of each white key within its octave, C through B.
var whiteOffsets = [whiteKeysPerOctave]int{0, 2, 4, 5, 7, 9, 11}

// White key positions that have a black key to their upper right.
var blackAfter = map[int]bool{0: true, 1: true, 3: true, 4: true, 5: true}

type game struct {
	selected  int // index into the pitch table
	textCache map[string]*ebiten.Image
}

func newGame() *game {
	return &game{
		selected:  57, // A4
		textCache: make(map[string]*ebiten.Image, 256),
	}
}

func (g *game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.move(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.move(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.move(12)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.move(-12)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.selected = 0
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.selected = len(pitchlab.Frequencies) - 1
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if index, ok := keyAt(ebiten.CursorPosition()); ok {
			g.selected = index
		}
	}
	return nil
}

func (g *game) move(semitones int) {
	pitch := pitchlab.Pitches()[g.selected]
	moved, err := pitch.Transpose(semitones)
	if err != nil {
		return // already at the edge of the table
	}
	g.selected = moved.Index()
}

// keyAt maps a cursor position to a pitch index. Black keys sit on top
// of the white keys, so they win ties.
func keyAt(x, y int) (int, bool) {
	if y >= keyboardY && y < keyboardY+blackKeyH {
		for w := 0; w < octaves*whiteKeysPerOctave; w++ {
			if !blackAfter[w%whiteKeysPerOctave] {
				continue
			}
			bx := keyboardX + (w+1)*whiteKeyW - blackKeyW/2
			if x >= bx && x < bx+blackKeyW {
				return (w/whiteKeysPerOctave)*12 + whiteOffsets[w%whiteKeysPerOctave] + 1, true
			}
		}
	}
	if y >= keyboardY && y < keyboardY+whiteKeyH {
		w := (x - keyboardX) / whiteKeyW
		if x >= keyboardX && w < octaves*whiteKeysPerOctave {
			return (w/whiteKeysPerOctave)*12 + whiteOffsets[w%whiteKeysPerOctave], true
		}
	}
	return 0, false
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	g.drawReadout(screen)
	g.drawKeyboard(screen)
	g.drawText(screen, "arrows: semitone/octave  home/end: range  click: select", keyboardX, windowH-lineH-8)
}

func (g *game) drawReadout(screen *ebiten.Image) {
	x, y, w, h := keyboardX, 20, windowW-2*keyboardX, 150
	ebitenutil.DrawRect(screen, float64(x-2), float64(y-2), float64(w+4), float64(h+4), bevelDarker)
	ebitenutil.DrawRect(screen, float64(x-1), float64(y-1), float64(w+2), float64(h+2), bevelLight)
	ebitenutil.DrawRect(screen, float64(x), float64(y), float64(w), float64(h), sunkenBgColor)

	pitch := pitchlab.Pitches()[g.selected]
	note := pitchlab.NoteFromPitch(pitch)

	label := asciiNote(note)
	if alt := note.Enharmonic(); alt != note {
		label += "  (" + asciiNote(alt) + ")"
	}
	g.drawText(screen, label, x+12, y+10)
	g.drawText(screen, fmt.Sprintf("frequency: %v Hz", pitch.Frequency()), x+12, y+10+lineH)
	g.drawText(screen, fmt.Sprintf("midi: %d   index: %d   chromatic: %d", pitch.MIDI(), pitch.Index(), pitch.Number()), x+12, y+10+2*lineH)

	a4 := pitchlab.Pitches()[57]
	if iv, err := pitchlab.NewInterval(a4.Frequency(), pitch.Frequency()); err == nil {
		g.drawText(screen, fmt.Sprintf("from A4: %v cents", iv.Cents()), x+12, y+10+3*lineH)
	}
}

func (g *game) drawKeyboard(screen *ebiten.Image) {
	// White keys first, black keys on top.
	for w := 0; w < octaves*whiteKeysPerOctave; w++ {
		index := (w/whiteKeysPerOctave)*12 + whiteOffsets[w%whiteKeysPerOctave]
		col := whiteKeyColor
		if index == g.selected {
			col = highlightColor
		}
		x := keyboardX + w*whiteKeyW
		ebitenutil.DrawRect(screen, float64(x), keyboardY, whiteKeyW-1, whiteKeyH, col)
		ebitenutil.DrawRect(screen, float64(x+whiteKeyW-1), keyboardY, 1, whiteKeyH, borderColor)

		if w%whiteKeysPerOctave == 0 {
			g.drawText(screen, fmt.Sprintf("%d", w/whiteKeysPerOctave), x+2, keyboardY+whiteKeyH+6)
		}
	}
	for w := 0; w < octaves*whiteKeysPerOctave; w++ {
		if !blackAfter[w%whiteKeysPerOctave] {
			continue
		}
		index := (w/whiteKeysPerOctave)*12 + whiteOffsets[w%whiteKeysPerOctave] + 1
		col := blackKeyColor
		if index == g.selected {
			col = highlightColor
		}
		x := keyboardX + (w+1)*whiteKeyW - blackKeyW/2
		ebitenutil.DrawRect(screen, float64(x), keyboardY, blackKeyW, blackKeyH, col)
	}
}

// asciiNote renders a note with ASCII accidentals; the debug font has
// no glyphs for the pretty ones.
func asciiNote(n pitchlab.Note) string {
	s := n.Letter().String()
	switch n.Accidental() {
	case pitchlab.AccidentalSharp:
		s += "#"
	case pitchlab.AccidentalFlat:
		s += "b"
	}
	return fmt.Sprintf("%s%d", s, n.Octave().Int())
}

func (g *game) drawText(screen *ebiten.Image, msg string, x, y int) {
	if msg == "" {
		return
	}
	img := g.textCache[msg]
	if img == nil {
		w := max(1, len([]rune(msg))*7)
		img = ebiten.NewImage(w, 14)
		ebitenutil.DebugPrintAt(img, msg, 0, 0)
		if len(g.textCache) > 1000 {
			g.textCache = make(map[string]*ebiten.Image, 256)
		}
		g.textCache[msg] = img
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}

func (g *game) Layout(outsideW, outsideH int) (int, int) {
	return windowW, windowH
}

func main() {
	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowTitle("pitchboard")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
