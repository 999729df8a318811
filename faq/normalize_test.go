package faq

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		want      string
	}{
		{
			name:      "trims and joins",
			fragments: []string{"Ecitizen ", "is ", "a platform."},
			want:      "Ecitizen is a platform.",
		},
		{
			name:      "drops empty fragments",
			fragments: []string{"  ", "hello", "", "\n\t", "world"},
			want:      "hello world",
		},
		{
			name:      "collapses internal whitespace runs",
			fragments: []string{"multiple   spaces\nand\nnewlines"},
			want:      "multiple spaces and newlines",
		},
		{
			name:      "empty input",
			fragments: nil,
			want:      "",
		},
		{
			name:      "all blank",
			fragments: []string{" ", "\n", "\t\t"},
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.fragments))
		})
	}
}

func TestNormalizeProperties(t *testing.T) {
	inputs := [][]string{
		{"Ecitizen ", "is ", "a platform."},
		{"  a  ", " b\nc ", "", "d"},
		{"\t", "x     y"},
	}

	for _, fragments := range inputs {
		out := Normalize(fragments)

		assert.NotContains(t, out, "  ", "no double spaces")
		assert.Equal(t, strings.TrimSpace(out), out, "no leading/trailing whitespace")

		// Idempotence: normalizing the output is a fixed point.
		assert.Equal(t, out, Normalize([]string{out}))
	}
}
