package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"clean input untouched", "Taste the magic", "Taste the magic"},
		{"bracketed annotations removed", "Taste [upbeat] the [jingle] magic", "Taste  the  magic"},
		{"angle tags removed", "<think>hmm</think>Fresh brews daily", "hmmFresh brews daily"},
		{"quotes stripped", `"Fresh brews, daily"`, "Fresh brews, daily"},
		{"single quotes stripped", "It's brew o'clock", "Its brew oclock"},
		{"whitespace trimmed", "  Fresh brews daily \n", "Fresh brews daily"},
		{"slogan prefix", "Slogan: Fresh brews daily", "Fresh brews daily"},
		{"verbose prefix", "Sure! Here is a slogan: Taste the magic", "Taste the magic"},
		{"answer prefix", "Answer: Taste the magic", "Taste the magic"},
		{"last occurrence wins", "Slogan: draft Slogan: Fresh brews daily", "Fresh brews daily"},
		{"combined artefacts", `[intro] Here is a slogan: "Taste the magic"`, "Taste the magic"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Sanitize(tc.in))
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"Taste the magic",
		"Slogan: [up] \"Fresh\" <b>brews</b> daily",
		"Answer: Here is a slogan: brew different",
		"",
		"   ",
		"[only brackets]",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "input %q", in)
	}
}

func TestSanitizeRemovesAllBracketedContent(t *testing.T) {
	out := Sanitize("hello [foo] world <bar> again")
	assert.NotContains(t, out, "[foo]")
	assert.NotContains(t, out, "<bar>")
	assert.NotContains(t, out, "foo")
	assert.NotContains(t, out, "bar")
}
