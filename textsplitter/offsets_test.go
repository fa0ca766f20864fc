package textsplitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codechunk/schema"
)

func TestRecoverSpans(t *testing.T) {
	doc := "alpha\nbeta\ngamma\n"
	spans, err := RecoverSpans(doc, []string{"alpha\n", "beta\n", "gamma\n"})
	require.NoError(t, err)

	assert.Equal(t, []schema.Span{
		{Text: "alpha\n", Start: 0, End: 6},
		{Text: "beta\n", Start: 6, End: 11},
		{Text: "gamma\n", Start: 11, End: 17},
	}, spans)
}

// Repeated content must resolve to the occurrence at or after the end of
// the previous chunk, not an earlier duplicate.
func TestRecoverSpansRepeatedContent(t *testing.T) {
	doc := "abc\nabc\nabc\n"
	spans, err := RecoverSpans(doc, []string{"abc\n", "abc\n", "abc\n"})
	require.NoError(t, err)

	require.Len(t, spans, 3)
	assert.Equal(t, 0, spans[0].Start)
	assert.Equal(t, 4, spans[1].Start)
	assert.Equal(t, 8, spans[2].Start)
}

func TestRecoverSpansSkipsGaps(t *testing.T) {
	doc := "keep1 -- keep2"
	spans, err := RecoverSpans(doc, []string{"keep1", "keep2"})
	require.NoError(t, err)

	require.Len(t, spans, 2)
	assert.Equal(t, schema.Span{Text: "keep2", Start: 9, End: 14}, spans[1])
}

func TestRecoverSpansTrimmedPiece(t *testing.T) {
	doc := "ab"
	spans, err := RecoverSpans(doc, []string{"a", " b"})
	require.NoError(t, err)

	require.Len(t, spans, 2)
	assert.Equal(t, schema.Span{Text: "b", Start: 1, End: 2}, spans[1])
}

func TestRecoverSpansZeroWidthPiece(t *testing.T) {
	doc := "xy"
	spans, err := RecoverSpans(doc, []string{"x", "", "y"})
	require.NoError(t, err)

	require.Len(t, spans, 3)
	assert.Equal(t, spans[1].Start, spans[1].End)
	assert.Equal(t, 1, spans[1].Start)
}

func TestRecoverSpansNotFound(t *testing.T) {
	_, err := RecoverSpans("abc", []string{"zzz"})
	assert.ErrorIs(t, err, ErrOffsetRecovery)

	// A piece occurring only before the previous chunk's end also fails.
	_, err = RecoverSpans("abc def", []string{"def", "abc"})
	assert.ErrorIs(t, err, ErrOffsetRecovery)
}
