package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"only whitespace", " \t\r\n\v\f", []string{}},
		{"single spaces", "Paris is here", []string{"Paris", "is", "here"}},
		{"runs of whitespace", "  a \t\n b  ", []string{"a", "b"}},
		{"file separator", "a\x1cb", []string{"a", "b"}},
		{"all ascii separators", "a\x1cb\x1dc\x1ed\x1fe", []string{"a", "b", "c", "d", "e"}},
		{"unicode spaces", "a\u00a0b\u2003c\u3000d\u0085e", []string{"a", "b", "c", "d", "e"}},
		{"zero width space is not whitespace", "a\u200bb", []string{"a\u200bb"}},
		{"punctuation kept", "Hello, world!", []string{"Hello,", "world!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input)
			assert.Len(t, got, len(tt.want))
			if len(tt.want) > 0 {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
