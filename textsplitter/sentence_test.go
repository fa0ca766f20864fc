package textsplitter

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple sentences",
			text: "One. Two! Three? Four",
			want: []string{"One. ", "Two! ", "Three? ", "Four"},
		},
		{
			name: "newline boundary",
			text: "alpha\nbeta\n\ngamma",
			want: []string{"alpha\n", "beta\n\n", "gamma"},
		},
		{
			name: "terminator at end of text",
			text: "abc.",
			want: []string{"abc."},
		},
		{
			name: "terminator run",
			text: "What?! Really.",
			want: []string{"What?! ", "Really."},
		},
		{
			name: "no boundaries",
			text: "just words here",
			want: []string{"just words here"},
		},
		{
			name: "dotted abbreviation keeps following space rule",
			text: "v1.2 is out. Done",
			want: []string{"v1.2 is out. ", "Done"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			units := scanSentences(tt.text)
			got := make([]string, len(units))
			for i, u := range units {
				got[i] = u.Text
				assert.Equal(t, tt.text[u.Start:u.End], u.Text)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanSentencesEmpty(t *testing.T) {
	assert.Empty(t, scanSentences(""))
}

func TestSentenceSplitPacksUnderBudget(t *testing.T) {
	text := "One. Two! Three? Four"
	splitter := NewSentence(WithChunkSize(10))

	spans, err := splitter.Split(context.Background(), text)
	require.NoError(t, err)

	// "One. " + "Two! " fill the budget exactly; the rest pack one by one.
	require.Len(t, spans, 3)
	assert.Equal(t, "One. Two! ", spans[0].Text)
	assert.Equal(t, "Three? ", spans[1].Text)
	assert.Equal(t, "Four", spans[2].Text)
}

func TestSentenceSplitNeverSplitsASentence(t *testing.T) {
	text := "This single sentence is far longer than the budget allows. Short one."
	splitter := NewSentence(WithChunkSize(10))

	spans, err := splitter.Split(context.Background(), text)
	require.NoError(t, err)
	require.Len(t, spans, 2)

	// The oversized sentence comes through whole.
	assert.True(t, strings.HasSuffix(spans[0].Text, "allows. "), "got %q", spans[0].Text)
	assert.Equal(t, "Short one.", spans[1].Text)
}

func TestSentenceSplitRoundTrip(t *testing.T) {
	text := "A first thought. A second thought!\nA third?\n\nAnd the rest without any terminator at all"
	splitter := NewSentence(WithChunkSize(25))

	spans, err := splitter.Split(context.Background(), text)
	require.NoError(t, err)

	var rebuilt strings.Builder
	for _, span := range spans {
		rebuilt.WriteString(span.Text)
	}
	assert.Equal(t, text, rebuilt.String())
}
