package score

import (
	"strings"
	"testing"

	"github.com/jsphweid/choralex/model"
	"github.com/jsphweid/choralex/pitch"
	"github.com/stretchr/testify/assert"
)

func testHarmonization() model.Harmonization {
	return model.Harmonization{
		Soprano: pitch.ParseAll([]string{"C5", "D5"}),
		Alto:    pitch.ParseAll([]string{"E4", "F4"}),
		Tenor:   pitch.ParseAll([]string{"G3", "A3"}),
		Bass:    pitch.ParseAll([]string{"C3", "D3"}),
	}
}

func TestClefsAreFixedPerVoice(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Clef{Sign: "G", Line: 2}, ClefFor(model.Soprano))
	assert.Equal(Clef{Sign: "G", Line: 2}, ClefFor(model.Alto))
	assert.Equal(Clef{Sign: "G", Line: 2, OctaveChange: -1}, ClefFor(model.Tenor))
	assert.Equal(Clef{Sign: "F", Line: 4}, ClefFor(model.Bass))
}

func TestProjectPutsSignaturesOnTopStaffOnly(t *testing.T) {
	sc := Project(testHarmonization(), model.Rhythm{model.Quarter, model.Half}, 6, "3/4")

	assert := assert.New(t)
	assert.Equal(6, sc.Staves[0].Fifths)
	assert.Equal(3, sc.Staves[0].Beats)
	assert.Equal(4, sc.Staves[0].BeatType)
	for _, staff := range sc.Staves[1:] {
		assert.Equal(0, staff.Fifths)
		assert.Equal(0, staff.Beats)
	}

	for _, staff := range sc.Staves {
		assert.Len(staff.Notes, 2)
		assert.Equal(model.Half, staff.Notes[1].Duration)
	}
}

func TestProjectDefaultsMissingRhythm(t *testing.T) {
	sc := Project(testHarmonization(), model.Rhythm{model.Whole}, 0, "4/4")
	assert.Equal(t, model.Quarter, sc.Staves[0].Notes[1].Duration)
}

func TestTextFallbackListsOneLinePerVoice(t *testing.T) {
	sc := Project(testHarmonization(), model.Rhythm{model.Quarter, model.Quarter}, 0, "4/4")
	text := Text(sc)

	assert := assert.New(t)
	lines := strings.Split(text, "\n")
	assert.Len(lines, 4)
	assert.Equal("soprano: C5 D5", lines[0])
	assert.Equal("alto: E4 F4", lines[1])
	assert.Equal("tenor: G3 A3", lines[2])
	assert.Equal("bass: C3 D3", lines[3])
}

func TestRenderSVGProducesADrawing(t *testing.T) {
	sc := Project(testHarmonization(), model.Rhythm{model.Quarter, model.Quarter}, -3, "4/4")
	out, ok := NewProjector().RenderSVG(sc, "Test Chorale")

	assert := assert.New(t)
	assert.True(ok)
	assert.Contains(out, "<svg")
	assert.Contains(out, "Test Chorale")
	assert.Contains(out, "fifths:-3")
	assert.Contains(out, "</svg>")
}

func TestRenderSVGWithoutSurfaceDegrades(t *testing.T) {
	var p Projector
	sc := Project(testHarmonization(), model.Rhythm{model.Quarter}, 0, "4/4")

	out, ok := p.RenderSVG(sc, "")
	assert := assert.New(t)
	assert.False(ok)
	assert.Equal("", out)

	// the pipeline's fallback is still available
	assert.NotEmpty(Text(sc))
}
