package score

import (
	"bytes"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/jsphweid/choralex/model"
	"github.com/jsphweid/choralex/util"
)

const (
	staffLeft    = 70
	staffTop     = 60
	staffSpacing = 100
	lineGap      = 8
	noteSpacing  = 44
)

// Projector owns the drawing surface. A zero Projector has none and can
// only degrade to the text rendering; the export pipeline never fails
// because of that.
type Projector struct {
	newCanvas func(w io.Writer) *svg.SVG
}

func NewProjector() *Projector {
	return &Projector{newCanvas: svg.New}
}

func (p *Projector) HasSurface() bool {
	return p != nil && p.newCanvas != nil
}

// diatonic position on the C-based seven-note scale, used for vertical
// note placement
func diatonic(pt model.Pitch) int {
	steps := map[byte]int{'C': 0, 'D': 1, 'E': 2, 'F': 3, 'G': 4, 'A': 5, 'B': 6}
	return pt.Octave*7 + steps[pt.Letter]
}

// written reference of the bottom staff line per clef: E4 for treble,
// G2 for bass. The treble-8 tenor clef writes an octave above sounding.
func bottomLineRef(c Clef) int {
	if c.Sign == "F" {
		return diatonic(model.Pitch{Letter: 'G', Octave: 2})
	}
	return diatonic(model.Pitch{Letter: 'E', Octave: 4}) + 7*c.OctaveChange
}

// RenderSVG draws the four staves onto the projector's surface and
// returns the vector-graphics string. ok is false when there is no
// surface; callers fall back to Text.
func (p *Projector) RenderSVG(sc Score, title string) (string, bool) {
	if !p.HasSurface() {
		return "", false
	}

	numNotes := 0
	for _, staff := range sc.Staves {
		numNotes = util.Max(numNotes, len(staff.Notes))
	}
	width := util.Max(staffLeft+numNotes*noteSpacing+40, 240)
	height := staffTop + len(sc.Staves)*staffSpacing

	var buf bytes.Buffer
	canvas := p.newCanvas(&buf)
	canvas.Start(width, height)
	if title != "" {
		canvas.Text(width/2, 30, title, "text-anchor:middle;font-size:16px")
	}

	for i, staff := range sc.Staves {
		top := staffTop + i*staffSpacing
		bottom := top + 4*lineGap
		for line := 0; line < 5; line++ {
			y := top + line*lineGap
			canvas.Line(10, y, width-10, y, "stroke:black;stroke-width:1")
		}

		// clef sign sits on its line
		clefY := bottom - (staff.Clef.Line-1)*lineGap
		label := staff.Clef.Sign
		if staff.Clef.OctaveChange == -1 {
			label += "8"
		}
		canvas.Text(16, clefY+4, label, "font-size:18px")

		if i == 0 {
			canvas.Text(40, top-6, fmt.Sprintf("fifths:%v", staff.Fifths), "font-size:10px")
			canvas.Text(40, top+4, fmt.Sprintf("%v/%v", staff.Beats, staff.BeatType), "font-size:10px")
		}

		ref := bottomLineRef(staff.Clef)
		for j, n := range staff.Notes {
			x := staffLeft + j*noteSpacing
			y := bottom - (diatonic(n.Pitch)-ref)*lineGap/2
			style := "fill:black"
			if n.Duration == model.Whole || n.Duration == model.Half {
				style = "fill:none;stroke:black"
			}
			canvas.Ellipse(x, y, 6, 5, style)
			switch n.Pitch.Accidental {
			case model.Sharp:
				canvas.Text(x-14, y+4, "#", "font-size:12px")
			case model.Flat:
				canvas.Text(x-14, y+4, "b", "font-size:12px")
			}
		}
	}

	canvas.End()
	return buf.String(), true
}
