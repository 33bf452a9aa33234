package score

import (
	"fmt"
	"strings"

	"github.com/jsphweid/choralex/model"
	"github.com/jsphweid/choralex/pitch"
)

// Clef describes a staff clef the way notation documents expect it:
// sign letter, staff line and an optional octave displacement.
type Clef struct {
	Sign         string
	Line         int
	OctaveChange int
}

// Clefs are fixed per voice to match four-part convention; they are never
// derived from pitch height.
var clefs = map[model.Voice]Clef{
	model.Soprano: {Sign: "G", Line: 2},
	model.Alto:    {Sign: "G", Line: 2},
	model.Tenor:   {Sign: "G", Line: 2, OctaveChange: -1},
	model.Bass:    {Sign: "F", Line: 4},
}

func ClefFor(v model.Voice) Clef {
	return clefs[v]
}

// NoteEvent is one renderable note on a staff.
type NoteEvent struct {
	Pitch    model.Pitch
	Duration model.Duration
}

type Staff struct {
	Voice model.Voice
	Clef  Clef

	// key and time signature live on the top staff only, per standard
	// four-stave layout
	Fifths   int
	Beats    int
	BeatType int

	Notes []NoteEvent
}

// Score holds the four parallel staff descriptors, soprano on top.
type Score struct {
	Staves [4]Staff
}

// Project lays the harmonization out as four staves. Key and time
// signature values are resolved once here; missing rhythm entries fall
// back to quarters.
func Project(h model.Harmonization, r model.Rhythm, fifths int, timeSignature string) Score {
	beats, beatType := model.ParseTimeSignature(timeSignature)

	var sc Score
	for i, v := range model.AllVoices {
		staff := Staff{Voice: v, Clef: ClefFor(v)}
		if i == 0 {
			staff.Fifths = fifths
			staff.Beats = beats
			staff.BeatType = beatType
		}
		part := h.Part(v)
		for j, p := range part {
			staff.Notes = append(staff.Notes, NoteEvent{
				Pitch:    p,
				Duration: model.DurationAt(r, j),
			})
		}
		sc.Staves[i] = staff
	}
	return sc
}

// Text is the always-available fallback rendering: one line per voice,
// pitches in order.
func Text(sc Score) string {
	var lines []string
	for _, staff := range sc.Staves {
		var names []string
		for _, n := range staff.Notes {
			names = append(names, pitch.Format(n.Pitch))
		}
		lines = append(lines, fmt.Sprintf("%v: %v", staff.Voice, strings.Join(names, " ")))
	}
	return strings.Join(lines, "\n")
}
