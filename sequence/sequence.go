package sequence

import (
	"math"

	"github.com/jsphweid/choralex/constants"
	"github.com/jsphweid/choralex/model"
	"github.com/jsphweid/choralex/pitch"
	"github.com/jsphweid/choralex/schedule"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Event is one timed message: absolute tick for a downstream track
// serializer, absolute seconds for anything driving playback directly.
// The payload is a real wire message, not a byte-level file chunk.
type Event struct {
	Tick    uint32
	Seconds float64
	Message smf.Message
}

type Track struct {
	Channel uint8 // MetaChannel on the meta track
	Name    string
	Events  []Event
}

// MetaChannel marks the tempo/time-signature track, which carries no
// channel voice messages.
const MetaChannel = 0xFF

// Sequence is the structured stand-in for a binary track file; the
// byte-level serialization lives in an external encoder.
type Sequence struct {
	Resolution smf.MetricTicks
	Tracks     []Track
}

// Bytes is the declared-but-deferred binary emission.
func (s Sequence) Bytes() ([]byte, error) {
	return nil, model.ErrUnsupported
}

func ticksAt(quarters float64) uint32 {
	return uint32(math.Round(quarters * constants.TicksPerQuarter))
}

func makeVoiceTrack(v model.Voice, pitches []model.Pitch, r model.Rhythm, bpm float64) Track {
	tr := Track{Channel: uint8(v), Name: v.String()}

	// walk paired with the scheduler's per-voice timeline so seconds and
	// ticks can never drift apart
	spans := schedule.ForVoice(v, pitches, r, bpm)
	var startQ float64
	for i, span := range spans {
		num := pitch.MIDINumber(span.Pitch)
		weight := model.DurationAt(r, i).Quarters()

		tr.Events = append(tr.Events, Event{
			Tick:    ticksAt(startQ),
			Seconds: span.Start,
			Message: smf.Message(midi.NoteOn(uint8(v), num, constants.NoteVelocity)),
		})
		tr.Events = append(tr.Events, Event{
			Tick:    ticksAt(startQ + weight*schedule.Gate),
			Seconds: span.Start + span.Duration,
			Message: smf.Message(midi.NoteOff(uint8(v), num)),
		})
		startQ += weight
	}
	return tr
}

// Encode builds the tempo/time-signature meta track followed by one track
// per voice on channels 0 through 3. Every note-on is paired with exactly
// one later note-off at the same number on the same channel.
func Encode(h model.Harmonization, r model.Rhythm, bpm float64) Sequence {
	return EncodeMeter(h, r, bpm, "4/4")
}

// EncodeMeter is Encode with an explicit time signature for the meta
// track.
func EncodeMeter(h model.Harmonization, r model.Rhythm, bpm float64, timeSignature string) Sequence {
	if bpm <= 0 {
		bpm = 120
	}
	beats, beatType := model.ParseTimeSignature(timeSignature)

	meta := Track{Channel: MetaChannel, Name: "meta"}
	meta.Events = append(meta.Events, Event{Message: smf.MetaTempo(bpm)})
	meta.Events = append(meta.Events, Event{Message: smf.MetaMeter(uint8(beats), uint8(beatType))})

	res := Sequence{
		Resolution: smf.MetricTicks(constants.TicksPerQuarter),
		Tracks:     []Track{meta},
	}
	for _, v := range model.AllVoices {
		res.Tracks = append(res.Tracks, makeVoiceTrack(v, h.Part(v), r, bpm))
	}
	return res
}

// Wire reduces a sequence to its JSON projection for HTTP consumers.
func Wire(s Sequence) []model.WireTrack {
	var res []model.WireTrack
	for _, tr := range s.Tracks {
		if tr.Channel == MetaChannel {
			continue
		}
		wt := model.WireTrack{Channel: tr.Channel, Name: tr.Name}
		wt.Events = make([]model.WireEvent, 0, len(tr.Events))
		for _, evt := range tr.Events {
			var ch, key, vel uint8
			we := model.WireEvent{Tick: evt.Tick, Seconds: evt.Seconds}
			switch {
			case evt.Message.GetNoteOn(&ch, &key, &vel):
				we.Number = key
				we.Velocity = vel
			case evt.Message.GetNoteOff(&ch, &key, &vel):
				we.NoteOff = true
				we.Number = key
			default:
				continue
			}
			wt.Events = append(wt.Events, we)
		}
		res = append(res, wt)
	}
	return res
}
