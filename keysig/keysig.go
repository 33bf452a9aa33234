package keysig

import "strings"

// fifths per major tonic, sharps positive and flats negative
var major = map[string]int{
	"C": 0, "G": 1, "D": 2, "A": 3, "E": 4, "B": 5, "F#": 6,
	"F": -1, "Bb": -2, "Eb": -3, "Ab": -4, "Db": -5, "Gb": -6,
}

var minor = map[string]int{
	"A": 0, "E": 1, "B": 2, "F#": 3, "C#": 4, "G#": 5, "D#": 6,
	"D": -1, "G": -2, "C": -3, "F": -4, "Bb": -5, "Eb": -6,
}

// Fifths resolves a key name to its signed accidental count. Accepts a
// bare tonic ("F#", "Bb") or the analysis engine's "<tonic> <mode>" form
// ("c minor"). Unrecognized names are treated as C major.
func Fifths(name string) int {
	tonic := strings.TrimSpace(name)
	mode := "major"
	if parts := strings.Fields(tonic); len(parts) == 2 {
		tonic = parts[0]
		mode = strings.ToLower(parts[1])
	}
	if tonic == "" {
		return 0
	}

	// normalize tonic casing: letter upper, flat marker lower
	tonic = strings.ToUpper(tonic[:1]) + strings.ToLower(tonic[1:])

	if mode == "minor" {
		return minor[tonic]
	}
	return major[tonic]
}
