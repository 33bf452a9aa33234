package export

import (
	"testing"

	"github.com/jsphweid/choralex/model"
	"github.com/jsphweid/choralex/musicxml"
	"github.com/jsphweid/choralex/pitch"
	"github.com/jsphweid/choralex/score"
	"github.com/stretchr/testify/assert"
)

func testBundle() (model.Harmonization, model.Rhythm, model.Metadata) {
	h := model.Harmonization{
		Soprano: pitch.ParseAll([]string{"C5", "D5"}),
		Alto:    pitch.ParseAll([]string{"E4", "F4"}),
		Tenor:   pitch.ParseAll([]string{"G3", "A3"}),
		Bass:    pitch.ParseAll([]string{"C3", "D3"}),
	}
	r := model.Rhythm{model.Quarter, model.Quarter}
	meta := model.Metadata{Title: "Cadence", Key: "C", Tempo: 120}
	return h, r, meta
}

func TestExportAllProducesEveryArtifact(t *testing.T) {
	h, r, meta := testBundle()
	arts := NewExporter().ExportAll(h, r, meta)

	assert := assert.New(t)
	assert.Contains(arts.MusicXML, "score-partwise")
	assert.Len(arts.Sequence.Tracks, 5)
	assert.Len(arts.Timeline, 8)
	assert.Contains(arts.SVG, "<svg")
	assert.Contains(arts.Text, "soprano: C5 D5")
}

func TestHeadlessExportStillProducesTheRest(t *testing.T) {
	h, r, meta := testBundle()
	e := &Exporter{
		Projector: &score.Projector{},
		Encoder:   musicxml.NewEncoder(),
	}
	arts := e.ExportAll(h, r, meta)

	assert := assert.New(t)
	assert.Equal("", arts.SVG)
	assert.NotEmpty(arts.Text)
	assert.Contains(arts.MusicXML, "score-partwise")
	assert.Len(arts.Sequence.Tracks, 5)
}

func TestDefaultsAppliedOnce(t *testing.T) {
	h, r, _ := testBundle()
	arts := NewExporter().ExportAll(h, r, model.Metadata{})

	assert := assert.New(t)
	assert.Contains(arts.MusicXML, "<fifths>0</fifths>")
	assert.Contains(arts.MusicXML, "<beats>4</beats>")
	// default tempo is 120: a quarter is half a second
	assert.InDelta(0.5, arts.Timeline[1].Start, 1e-9)
}
