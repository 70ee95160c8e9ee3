package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLSanitizer_Clean(t *testing.T) {
	sanitizer := New()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text untouched",
			input:    "Team offsite 2026",
			expected: "Team offsite 2026",
		},
		{
			name:     "script tag removed with its contents",
			input:    "<script>alert(1)</script>x",
			expected: "x",
		},
		{
			name:     "markup stripped but text kept",
			input:    "<b>Launch</b> party at <i>HQ</i>",
			expected: "Launch party at HQ",
		},
		{
			name:     "whitespace trimmed",
			input:    "   spaced out \n",
			expected: "spaced out",
		},
		{
			name:     "entities come back as plain text",
			input:    "Drinks &amp; snacks",
			expected: "Drinks & snacks",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.Clean(tt.input))
		})
	}
}
