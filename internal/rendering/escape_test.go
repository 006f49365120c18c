package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLaTeX(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "plain text", input: "Led migration to Go", expected: "Led migration to Go"},
		{name: "ampersand", input: "R&D", expected: `R\&D`},
		{name: "percent", input: "Cut latency 40%", expected: `Cut latency 40\%`},
		{name: "dollar", input: "$2M budget", expected: `\$2M budget`},
		{name: "hash and underscore", input: "C# and snake_case", expected: `C\# and snake\_case`},
		{name: "braces", input: "{x}", expected: `\{x\}`},
		{name: "backslash", input: `a\b`, expected: `a\textbackslash{}b`},
		{name: "caret and tilde", input: "^~", expected: `\textasciicircum{}\textasciitilde{}`},
		{name: "angle brackets", input: "<10ms", expected: `\textless{}10ms`},
		{name: "pipe", input: "Acme | Remote", expected: `Acme \textbar{} Remote`},
		{name: "typographic dashes", input: "2019 – 2021 — now", expected: "2019 -- 2021 --- now"},
		{name: "bullet", input: "• item", expected: `\textbullet{} item`},
		{name: "unicode passes through", input: "José Müller", expected: "José Müller"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeLaTeX(tt.input))
		})
	}
}

func TestEscapeLaTeX_BackslashNotDoubleEscaped(t *testing.T) {
	// The braces introduced for a backslash must survive untouched.
	assert.Equal(t, `\textbackslash{}\{`, EscapeLaTeX(`\{`))
}
