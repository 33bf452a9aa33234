package keysig

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFifths(t *testing.T) {
	tests := []struct {
		key      string
		expected int
	}{
		{"C", 0},
		{"G", 1},
		{"F#", 6},
		{"F", -1},
		{"Bb", -2},
		{"Eb", -3},
		{"Gb", -6},
		{"C major", 0},
		{"A minor", 0},
		{"c minor", -3},
		{"F# minor", 3},
		{"bb major", -2},
		{"", 0},
		{"H", 0},
		{"whatever", 0},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("%q has %v", tt.key, tt.expected)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Fifths(tt.key))
		})
	}
}
