package pitch

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/choralex/model"
)

// Default is substituted for any pitch string without a recognizable
// letter so one bad token never aborts an export.
var Default = model.Pitch{Letter: 'C', Accidental: model.Natural, Octave: 4}

// semitone offset of each letter within the C-based chromatic scale
var letterSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// Parse reads scientific pitch notation like "C4", "F#3" or "Bb5".
// A string with no letter, or with more than one accidental marker
// (the "#b" case has no defined meaning), yields Default.
func Parse(s string) model.Pitch {
	if len(s) == 0 {
		return Default
	}

	letter := s[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'G' {
		return Default
	}

	rest := s[1:]
	acc := model.Natural
	var markers int
	for len(rest) > 0 && (rest[0] == '#' || rest[0] == 'b') {
		if rest[0] == '#' {
			acc = model.Sharp
		} else {
			acc = model.Flat
		}
		markers++
		rest = rest[1:]
	}
	if markers > 1 {
		return Default
	}

	octave := 4
	if n, err := strconv.Atoi(rest); err == nil {
		octave = n
	}

	return model.Pitch{Letter: letter, Accidental: acc, Octave: octave}
}

// Format renders a pitch back to the notation Parse reads, so
// Parse(Format(p)) == p for every valid p.
func Format(p model.Pitch) string {
	var acc string
	switch p.Accidental {
	case model.Sharp:
		acc = "#"
	case model.Flat:
		acc = "b"
	}
	return fmt.Sprintf("%c%v%v", p.Letter, acc, p.Octave)
}

// MIDINumber maps a pitch to its absolute note number: octave -1 starts
// at 0, so C4 is 60.
func MIDINumber(p model.Pitch) uint8 {
	n := letterSemitones[p.Letter] + int(p.Accidental) + (p.Octave+1)*12
	if n < 0 {
		n = 0
	}
	if n > 127 {
		n = 127
	}
	return uint8(n)
}

// ParseAll converts a whole voice line, defaulting element-wise.
func ParseAll(strs []string) []model.Pitch {
	res := make([]model.Pitch, 0, len(strs))
	for _, s := range strs {
		res = append(res, Parse(s))
	}
	return res
}
