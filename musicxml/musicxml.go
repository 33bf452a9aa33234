package musicxml

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/jsphweid/choralex/constants"
	"github.com/jsphweid/choralex/keysig"
	"github.com/jsphweid/choralex/model"
	"github.com/jsphweid/choralex/score"
)

// document shapes follow the score-partwise layout notation software
// imports

type scorePartwise struct {
	XMLName        xml.Name       `xml:"score-partwise"`
	Version        string         `xml:"version,attr"`
	Work           work           `xml:"work"`
	Identification identification `xml:"identification"`
	PartList       partList       `xml:"part-list"`
	Parts          []part         `xml:"part"`
}

type work struct {
	Title string `xml:"work-title"`
}

type identification struct {
	Creator  creator  `xml:"creator"`
	Encoding encoding `xml:"encoding"`
}

type creator struct {
	Type string `xml:"type,attr"`
	Name string `xml:",chardata"`
}

type encoding struct {
	Software string `xml:"software"`
	Date     string `xml:"encoding-date"`
}

type partList struct {
	ScoreParts []scorePart `xml:"score-part"`
}

type scorePart struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"part-name"`
}

type part struct {
	ID       string    `xml:"id,attr"`
	Measures []measure `xml:"measure"`
}

type measure struct {
	Number int         `xml:"number,attr"`
	Attrs  *attributes `xml:"attributes,omitempty"`
	Notes  []note      `xml:"note"`
}

type attributes struct {
	Divisions int     `xml:"divisions"`
	Key       keyElem `xml:"key"`
	Time      timeSig `xml:"time"`
	Clef      clef    `xml:"clef"`
}

type keyElem struct {
	Fifths int `xml:"fifths"`
}

type timeSig struct {
	Beats    int `xml:"beats"`
	BeatType int `xml:"beat-type"`
}

type clef struct {
	Sign         string `xml:"sign"`
	Line         int    `xml:"line"`
	OctaveChange int    `xml:"clef-octave-change,omitempty"`
}

type note struct {
	Pitch    notePitch `xml:"pitch"`
	Duration string    `xml:"duration"`
	Type     string    `xml:"type"`
}

type notePitch struct {
	Step   string `xml:"step"`
	Alter  *int   `xml:"alter,omitempty"`
	Octave int    `xml:"octave"`
}

// Encoder serializes harmonizations as structured notation documents.
// Output is byte-identical for identical inputs except the encoding-date,
// which comes from Now.
type Encoder struct {
	Now func() time.Time
}

func NewEncoder() *Encoder {
	return &Encoder{Now: time.Now}
}

func makeNote(p model.Pitch, d model.Duration) note {
	n := note{
		Duration: strconv.FormatFloat(d.Quarters()*constants.DivisionsPerQuarter, 'f', -1, 64),
		Type:     d.Name(),
	}
	n.Pitch.Step = string(p.Letter)
	n.Pitch.Octave = p.Octave
	if p.Accidental != model.Natural {
		alter := int(p.Accidental)
		n.Pitch.Alter = &alter
	}
	return n
}

func makePart(id string, pitches []model.Pitch, r model.Rhythm, attrs attributes, beats, beatType int) part {
	res := part{ID: id}

	// measure capacity in quarter-note units
	capacity := float64(beats) * 4 / float64(beatType)

	curr := measure{Number: 1}
	first := attrs
	curr.Attrs = &first
	var filled float64
	for i, p := range pitches {
		d := model.DurationAt(r, i)
		if filled >= capacity {
			res.Measures = append(res.Measures, curr)
			curr = measure{Number: len(res.Measures) + 1}
			filled = 0
		}
		curr.Notes = append(curr.Notes, makeNote(p, d))
		filled += d.Quarters()
	}
	res.Measures = append(res.Measures, curr)
	return res
}

// Encode builds the document: one part per voice in fixed order, each
// carrying divisions, key, time signature and its voice's clef. It does
// no validation of voice leading; that is the analysis engine's concern.
func (e *Encoder) Encode(h model.Harmonization, r model.Rhythm, meta model.Metadata) (string, error) {
	meta = meta.WithDefaults()
	fifths := keysig.Fifths(meta.Key)
	beats, beatType := model.ParseTimeSignature(meta.TimeSignature)

	doc := scorePartwise{
		Version: "3.1",
		Work:    work{Title: meta.Title},
		Identification: identification{
			Creator:  creator{Type: "composer", Name: meta.Composer},
			Encoding: encoding{Software: "choralex", Date: e.Now().Format("2006-01-02")},
		},
	}

	for i, v := range model.AllVoices {
		id := fmt.Sprintf("P%v", i+1)
		doc.PartList.ScoreParts = append(doc.PartList.ScoreParts, scorePart{ID: id, Name: v.String()})

		c := score.ClefFor(v)
		attrs := attributes{
			Divisions: constants.DivisionsPerQuarter,
			Key:       keyElem{Fifths: fifths},
			Time:      timeSig{Beats: beats, BeatType: beatType},
			Clef:      clef{Sign: c.Sign, Line: c.Line, OctaveChange: c.OctaveChange},
		}
		doc.Parts = append(doc.Parts, makePart(id, h.Part(v), r, attrs, beats, beatType))
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return xml.Header + string(out) + "\n", nil
}
