package cmd

import (
	"github.com/jsphweid/choralex/model"
	"github.com/jsphweid/choralex/pitch"
)

// toBundle normalizes the wire bundle once; everything downstream works
// on the parsed form.
func toBundle(body model.ExportRequestBody) (model.Harmonization, model.Rhythm, model.Metadata) {
	h := model.Harmonization{
		Soprano: pitch.ParseAll(body.Soprano),
		Alto:    pitch.ParseAll(body.Alto),
		Tenor:   pitch.ParseAll(body.Tenor),
		Bass:    pitch.ParseAll(body.Bass),
	}

	r := make(model.Rhythm, 0, len(body.Rhythm))
	for _, s := range body.Rhythm {
		r = append(r, model.ParseDuration(s))
	}

	meta := model.Metadata{
		Title:         body.Title,
		Composer:      body.Composer,
		Key:           body.Key,
		TimeSignature: body.TimeSignature,
		Tempo:         body.Tempo,
	}.WithDefaults()

	return h, r, meta
}
