package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	pitchlab "github.com/cbegin/pitchlab-go"
	"github.com/denizsincar29/goerror"
)

func main() {
	var (
		noteArg   = flag.String("note", "", "note to inspect, e.g. C#4 or B♭3")
		freqArg   = flag.Float64("freq", 0, "frequency in Hz to match to the nearest pitch")
		transpose = flag.Int("transpose", 0, "semitone shift applied before printing")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	logger := newLogger(os.Stderr, *verbose)
	e := goerror.NewError(logger)

	pitch, err := resolvePitch(*noteArg, *freqArg)
	e.Must(err, "Failed to resolve input")

	if *transpose != 0 {
		pitch, err = pitch.Transpose(*transpose)
		e.Must(err, "Failed to transpose")
	}

	printPitch(pitch)
}

func newLogger(w *os.File, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// resolvePitch picks the input source the way the flags were given:
// exactly one of -note or -freq.
func resolvePitch(noteArg string, freqArg float64) (pitchlab.Pitch, error) {
	switch {
	case noteArg != "" && freqArg != 0:
		return pitchlab.Pitch{}, errors.New("pass either -note or -freq, not both")
	case noteArg != "":
		note, err := pitchlab.ParseNote(noteArg)
		if err != nil {
			return pitchlab.Pitch{}, err
		}
		return note.Pitch()
	case freqArg != 0:
		pitch, deviation, err := pitchlab.NearestPitch(freqArg)
		if err != nil {
			return pitchlab.Pitch{}, err
		}
		fmt.Printf("nearest pitch to %v Hz (off by %v cents):\n", freqArg, deviation.Cents())
		return pitch, nil
	default:
		return pitchlab.Pitch{}, errors.New("pass -note or -freq")
	}
}

func printPitch(pitch pitchlab.Pitch) {
	note := pitchlab.NoteFromPitch(pitch)
	fmt.Printf("note:       %v\n", note)
	if alt := note.Enharmonic(); alt != note {
		fmt.Printf("enharmonic: %v\n", alt)
	}
	fmt.Printf("frequency:  %v Hz\n", pitch.Frequency())
	fmt.Printf("midi:       %d\n", pitch.MIDI())
	fmt.Printf("index:      %d\n", pitch.Index())

	a4 := pitchlab.Pitches()[57]
	fromA4, err := pitchlab.NewInterval(a4.Frequency(), pitch.Frequency())
	if err == nil {
		fmt.Printf("from A₄:    %v cents\n", fromA4.Cents())
	}
}
