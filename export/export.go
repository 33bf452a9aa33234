package export

import (
	"fmt"

	"github.com/jsphweid/choralex/keysig"
	"github.com/jsphweid/choralex/model"
	"github.com/jsphweid/choralex/musicxml"
	"github.com/jsphweid/choralex/schedule"
	"github.com/jsphweid/choralex/score"
	"github.com/jsphweid/choralex/sequence"
)

// Artifacts holds everything one export cycle produces. SVG is empty when
// the projector has no drawing surface; Text is always present.
type Artifacts struct {
	MusicXML string
	Sequence sequence.Sequence
	Timeline []schedule.NoteSpan
	SVG      string
	Text     string
}

// Exporter fans one harmonization bundle out to the projector, scheduler
// and both encoders. Construct one per use; it holds no state between
// calls, so concurrent exports of distinct bundles are independent.
type Exporter struct {
	Projector *score.Projector
	Encoder   *musicxml.Encoder
}

// NewExporter wires a live drawing surface. Pass a zero score.Projector
// instead to run headless.
func NewExporter() *Exporter {
	return &Exporter{
		Projector: score.NewProjector(),
		Encoder:   musicxml.NewEncoder(),
	}
}

// ExportAll produces every artifact from one shared copy of the inputs.
// A failure in any single artifact never blocks the others.
func (e *Exporter) ExportAll(h model.Harmonization, r model.Rhythm, meta model.Metadata) Artifacts {
	meta = meta.WithDefaults()

	var res Artifacts

	doc, err := e.Encoder.Encode(h, r, meta)
	if err != nil {
		fmt.Printf("Skipping notation document because: %v\n", err)
	} else {
		res.MusicXML = doc
	}

	res.Sequence = sequence.EncodeMeter(h, r, meta.Tempo, meta.TimeSignature)
	res.Timeline = schedule.Timeline(h, r, meta.Tempo)

	sc := score.Project(h, r, keysig.Fifths(meta.Key), meta.TimeSignature)
	res.Text = score.Text(sc)
	if out, ok := e.Projector.RenderSVG(sc, meta.Title); ok {
		res.SVG = out
	}

	return res
}
