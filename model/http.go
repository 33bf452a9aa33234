package model

// ExportRequestBody is the bundle the analysis frontend posts: four voice
// pitch-string sequences, the shared rhythm and optional metadata.
type ExportRequestBody struct {
	Soprano       []string `json:"soprano"`
	Alto          []string `json:"alto"`
	Tenor         []string `json:"tenor"`
	Bass          []string `json:"bass"`
	Rhythm        []string `json:"rhythm"`
	Title         string   `json:"title"`
	Composer      string   `json:"composer"`
	Key           string   `json:"key"`
	TimeSignature string   `json:"time_signature"`
	Tempo         float64  `json:"tempo"`
}

type ExportResponse struct {
	MusicXML      string         `json:"musicxml"`
	EventSequence []WireTrack    `json:"event_sequence"`
	SVG           string         `json:"svg,omitempty"`
	Text          string         `json:"text"`
	Schedule      []WireNoteSpan `json:"schedule"`
}

// WireTrack is the JSON projection of a sequence track; events are reduced
// to their note fields, raw payload bytes stay server-side.
type WireTrack struct {
	Channel uint8       `json:"channel"`
	Name    string      `json:"name"`
	Events  []WireEvent `json:"events"`
}

type WireEvent struct {
	Tick     uint32  `json:"tick"`
	Seconds  float64 `json:"seconds"`
	NoteOff  bool    `json:"note_off"`
	Number   uint8   `json:"number"`
	Velocity uint8   `json:"velocity"`
}

// WireNoteSpan is one scheduled sounding note for the frontend's playback
// engine.
type WireNoteSpan struct {
	Voice    string  `json:"voice"`
	Pitch    string  `json:"pitch"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
