package schedule

import (
	"github.com/jsphweid/choralex/model"
)

// Gate is the fraction of a note's nominal length that actually sounds.
// The remaining 5% leaves audible separation between consecutive notes.
const Gate = 0.95

// NoteSpan is one sounding note on the playback timeline.
type NoteSpan struct {
	Voice    model.Voice
	Pitch    model.Pitch
	Start    float64 // seconds from timeline start
	Duration float64 // sounding seconds, already gated
}

// ForVoice computes one voice's timeline independently of the others, so
// unequal-length malformed input degrades per voice. Start times
// accumulate from 0 as the running sum of prior nominal durations.
func ForVoice(v model.Voice, pitches []model.Pitch, r model.Rhythm, bpm float64) []NoteSpan {
	if bpm <= 0 {
		bpm = 120
	}
	quarterSecs := 60 / bpm

	res := make([]NoteSpan, 0, len(pitches))
	var start float64
	for i, p := range pitches {
		nominal := model.DurationAt(r, i).Quarters() * quarterSecs
		res = append(res, NoteSpan{
			Voice:    v,
			Pitch:    p,
			Start:    start,
			Duration: nominal * Gate,
		})
		start += nominal
	}
	return res
}

// Timeline schedules all four voices, soprano first. The voices line up
// in real time because they share the same rhythm, but each one is
// accumulated on its own.
func Timeline(h model.Harmonization, r model.Rhythm, bpm float64) []NoteSpan {
	var res []NoteSpan
	for _, v := range model.AllVoices {
		res = append(res, ForVoice(v, h.Part(v), r, bpm)...)
	}
	return res
}
