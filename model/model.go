package model

import (
	"errors"
	"strconv"
	"strings"
)

// ErrUnsupported is returned for export formats that have a declared
// contract but no serializer in this core (binary SMF bytes, PDF).
var ErrUnsupported = errors.New("unsupported export format")

type Accidental int8

// Accidental values double as semitone offsets.
const (
	Flat    Accidental = -1
	Natural Accidental = 0
	Sharp   Accidental = 1
)

// Pitch is the canonical in-memory note: letter A-G, accidental and a
// scientific-pitch-notation octave (octave increments at C).
type Pitch struct {
	Letter     byte
	Accidental Accidental
	Octave     int
}

type Duration uint8

const (
	Whole Duration = iota
	Half
	Quarter
	Eighth
)

// Quarters is the relative length in quarter-note units.
func (d Duration) Quarters() float64 {
	switch d {
	case Whole:
		return 4
	case Half:
		return 2
	case Eighth:
		return 0.5
	default:
		return 1
	}
}

// Name is the textual type name used by document encoding.
func (d Duration) Name() string {
	switch d {
	case Whole:
		return "whole"
	case Half:
		return "half"
	case Eighth:
		return "eighth"
	default:
		return "quarter"
	}
}

// ParseDuration maps a duration name to its symbol, defaulting to quarter
// for anything unrecognized so malformed rhythms never stop an export.
func ParseDuration(s string) Duration {
	switch s {
	case "whole":
		return Whole
	case "half":
		return Half
	case "eighth":
		return Eighth
	default:
		return Quarter
	}
}

type Voice uint8

// Voice order is significant: top-to-bottom in notation, channel index in
// event sequences, track and part order in documents.
const (
	Soprano Voice = iota
	Alto
	Tenor
	Bass
)

var AllVoices = [4]Voice{Soprano, Alto, Tenor, Bass}

func (v Voice) String() string {
	switch v {
	case Soprano:
		return "soprano"
	case Alto:
		return "alto"
	case Tenor:
		return "tenor"
	default:
		return "bass"
	}
}

// Harmonization is a fixed-arity record so a missing voice is impossible
// by construction rather than a runtime check.
type Harmonization struct {
	Soprano []Pitch
	Alto    []Pitch
	Tenor   []Pitch
	Bass    []Pitch
}

func (h Harmonization) Part(v Voice) []Pitch {
	switch v {
	case Soprano:
		return h.Soprano
	case Alto:
		return h.Alto
	case Tenor:
		return h.Tenor
	default:
		return h.Bass
	}
}

// Rhythm is the duration sequence shared by all four voices.
type Rhythm = []Duration

// DurationAt substitutes a quarter for any missing index so that rhythm
// sequences shorter than the voice sequences degrade instead of failing.
func DurationAt(r Rhythm, i int) Duration {
	if i < 0 || i >= len(r) {
		return Quarter
	}
	return r[i]
}

// ParseTimeSignature splits a "beats/beatType" string, falling back to
// 4/4 when either side is missing or not a positive number.
func ParseTimeSignature(s string) (beats, beatType int) {
	beats, beatType = 4, 4
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return
	}
	if n, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil && n > 0 {
		beats = n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil && n > 0 {
		beatType = n
	}
	return
}

type Metadata struct {
	Title         string
	Composer      string
	Key           string
	TimeSignature string
	Tempo         float64
}

// WithDefaults fills the documented defaults for any unset field.
func (m Metadata) WithDefaults() Metadata {
	if m.Title == "" {
		m.Title = "Four-Part Harmonization"
	}
	if m.Composer == "" {
		m.Composer = "choralex"
	}
	if m.Key == "" {
		m.Key = "C"
	}
	if m.TimeSignature == "" {
		m.TimeSignature = "4/4"
	}
	if m.Tempo <= 0 {
		m.Tempo = 120
	}
	return m
}
