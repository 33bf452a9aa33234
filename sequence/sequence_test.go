package sequence

import (
	"fmt"
	"testing"

	"github.com/jsphweid/choralex/constants"
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

func TestTrackLayout(t *testing.T) {
	s := Encode(testHarmonization(), model.Rhythm{model.Quarter, model.Quarter}, 120)

	assert := assert.New(t)
	assert.Len(s.Tracks, 5)
	assert.Equal(uint8(MetaChannel), s.Tracks[0].Channel)
	for i, v := range model.AllVoices {
		tr := s.Tracks[i+1]
		assert.Equal(uint8(v), tr.Channel)
		assert.Equal(v.String(), tr.Name)
		// a note-on and note-off per scheduled note
		assert.Len(tr.Events, 4)
	}
}

func TestMetaTrackCarriesTempoAndMeter(t *testing.T) {
	s := EncodeMeter(testHarmonization(), model.Rhythm{model.Quarter}, 90, "3/4")

	assert := assert.New(t)
	meta := s.Tracks[0]
	assert.Len(meta.Events, 2)

	// tempo is stored as integer microseconds per quarter, so the
	// round-tripped bpm is quantized slightly off the input
	var bpm float64
	assert.True(meta.Events[0].Message.GetMetaTempo(&bpm))
	assert.InDelta(90.0, bpm, 1e-3)

	var num, denom uint8
	assert.True(meta.Events[1].Message.GetMetaMeter(&num, &denom))
	assert.Equal(uint8(3), num)
	assert.Equal(uint8(4), denom)
}

func TestEveryNoteOnHasALaterMatchingNoteOff(t *testing.T) {
	h := testHarmonization()
	s := Encode(h, model.Rhythm{model.Half, model.Eighth}, 100)

	assert := assert.New(t)
	for _, tr := range s.Tracks[1:] {
		pending := make(map[uint8]uint32) // number -> on tick
		for _, evt := range tr.Events {
			var ch, key, vel uint8
			switch {
			case evt.Message.GetNoteOn(&ch, &key, &vel):
				assert.Equal(tr.Channel, ch)
				assert.Equal(uint8(constants.NoteVelocity), vel)
				_, open := pending[key]
				assert.False(open, "overlapping note-on for number %v", key)
				pending[key] = evt.Tick
			case evt.Message.GetNoteOff(&ch, &key, &vel):
				assert.Equal(tr.Channel, ch)
				on, open := pending[key]
				assert.True(open, "note-off without note-on for number %v", key)
				assert.Greater(evt.Tick, on)
				delete(pending, key)
			}
		}
		assert.Empty(pending)
	}
}

func TestTickArithmetic(t *testing.T) {
	s := Encode(testHarmonization(), model.Rhythm{model.Quarter, model.Quarter}, 120)

	soprano := s.Tracks[1]
	assert := assert.New(t)
	assert.Equal(uint32(0), soprano.Events[0].Tick)
	assert.Equal(uint32(456), soprano.Events[1].Tick) // 480 gated by 5%
	assert.Equal(uint32(480), soprano.Events[2].Tick)
	assert.Equal(uint32(936), soprano.Events[3].Tick)
	assert.InDelta(0.5, soprano.Events[2].Seconds, 1e-9)
	assert.InDelta(0.975, soprano.Events[3].Seconds, 1e-9)
}

func TestNoteNumbers(t *testing.T) {
	tests := []struct {
		voice    model.Voice
		expected []uint8
	}{
		{model.Soprano, []uint8{72, 74}},
		{model.Alto, []uint8{64, 65}},
		{model.Tenor, []uint8{55, 57}},
		{model.Bass, []uint8{48, 50}},
	}

	s := Encode(testHarmonization(), model.Rhythm{model.Quarter, model.Quarter}, 120)
	for _, tt := range tests {
		name := fmt.Sprintf("%v numbers", tt.voice)
		t.Run(name, func(t *testing.T) {
			tr := s.Tracks[int(tt.voice)+1]
			var got []uint8
			for _, evt := range tr.Events {
				var ch, key, vel uint8
				if evt.Message.GetNoteOn(&ch, &key, &vel) {
					got = append(got, key)
				}
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBytesIsUnsupported(t *testing.T) {
	s := Encode(testHarmonization(), model.Rhythm{model.Quarter}, 120)
	_, err := s.Bytes()
	assert.ErrorIs(t, err, model.ErrUnsupported)
}

func TestWireDropsMetaTrack(t *testing.T) {
	s := Encode(testHarmonization(), model.Rhythm{model.Quarter, model.Quarter}, 120)
	wire := Wire(s)

	assert := assert.New(t)
	assert.Len(wire, 4)
	assert.Equal(uint8(0), wire[0].Channel)
	assert.Len(wire[0].Events, 4)
	assert.False(wire[0].Events[0].NoteOff)
	assert.True(wire[0].Events[1].NoteOff)
	assert.Equal(uint8(72), wire[0].Events[0].Number)
}
