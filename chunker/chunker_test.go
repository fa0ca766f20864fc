package chunker_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codechunk/chunker"
	"codechunk/schema"
	"codechunk/textsplitter"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newChunker(t *testing.T, opts ...chunker.Option) *chunker.Chunker {
	t.Helper()
	c, err := chunker.New(testLogger(), opts...)
	require.NoError(t, err)
	return c
}

// stubSplitter counts invocations and returns canned spans.
type stubSplitter struct {
	calls *int
	spans []schema.Span
	panic bool
}

func (s *stubSplitter) Name() string { return "stub" }

func (s *stubSplitter) Split(_ context.Context, _ string) ([]schema.Span, error) {
	*s.calls++
	if s.panic {
		panic("boom")
	}
	return s.spans, nil
}

func stubFactory(stub *stubSplitter) chunker.Factory {
	return func(_ schema.Request, _ string, _ *slog.Logger) (textsplitter.Splitter, error) {
		return stub, nil
	}
}

func TestRunCountBoundedScenario(t *testing.T) {
	c := newChunker(t)

	chunks, err := c.Run(context.Background(), schema.Request{
		Strategy:  schema.StrategyCountBounded,
		Source:    "scenario.txt",
		ChunkSize: 6,
		Content:   "line1\nline2\nline3\n",
	})
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	assert.Equal(t, "scenario.txt:1-1", chunks[0].ID)
	assert.Equal(t, "scenario.txt:2-2", chunks[1].ID)
	assert.Equal(t, "scenario.txt:3-3", chunks[2].ID)
	for i, chunk := range chunks {
		assert.Equal(t, chunk.StartLine, chunk.EndLine, "chunk %d", i)
	}
	assert.Equal(t, "line1\n", chunks[0].Text)
}

func TestRunUnknownStrategy(t *testing.T) {
	calls := 0
	c := newChunker(t, chunker.WithStrategy("stub-strategy", stubFactory(&stubSplitter{calls: &calls})))

	chunks, err := c.Run(context.Background(), schema.Request{
		Strategy:  "not-a-real-strategy",
		Source:    "x.txt",
		ChunkSize: 100,
		Content:   "some text",
	})
	require.Error(t, err)
	assert.Nil(t, chunks)
	assert.ErrorIs(t, err, schema.ErrUnknownStrategy)
	assert.Contains(t, err.Error(), "not-a-real-strategy")
	assert.Zero(t, calls, "no adapter may be invoked for an unknown strategy")
}

func TestRunInvalidRequest(t *testing.T) {
	c := newChunker(t)

	_, err := c.Run(context.Background(), schema.Request{
		Strategy:  schema.StrategyCountBounded,
		Source:    "x.txt",
		ChunkSize: 0,
		Content:   "text",
	})
	assert.ErrorIs(t, err, schema.ErrInvalidChunkSize)

	_, err = c.Run(context.Background(), schema.Request{
		Strategy:  schema.StrategyCountBounded,
		Source:    "x.txt",
		ChunkSize: 10,
		Overlap:   -1,
		Content:   "text",
	})
	assert.ErrorIs(t, err, schema.ErrNegativeOverlap)
}

func TestRunEmptyDocument(t *testing.T) {
	c := newChunker(t)

	for _, strategy := range schema.Strategies() {
		t.Run(string(strategy), func(t *testing.T) {
			chunks, err := c.Run(context.Background(), schema.Request{
				Strategy:  strategy,
				Source:    "empty.py",
				ChunkSize: 100,
				Content:   "",
			})
			require.NoError(t, err)
			require.NotNil(t, chunks)
			assert.Empty(t, chunks)
		})
	}
}

func TestRunRoundTrip(t *testing.T) {
	goSource := "package demo\n\nfunc Add(a, b int) int {\n\treturn a + b\n}\n\nfunc Sub(a, b int) int {\n\treturn a - b\n}\n"
	prose := "First sentence here. Second sentence follows! A third one?\nAnd a final line without terminator"

	tests := []struct {
		strategy schema.Strategy
		source   string
		content  string
	}{
		{schema.StrategyStructureAware, "demo.go", goSource},
		{schema.StrategyRecursiveCharacter, "demo.py", prose},
		{schema.StrategySimilarityBoundary, "notes.txt", prose},
		{schema.StrategyCountBounded, "notes.txt", prose},
		{schema.StrategySentenceBoundary, "notes.txt", prose},
	}

	c := newChunker(t)
	for _, tt := range tests {
		t.Run(string(tt.strategy), func(t *testing.T) {
			chunks, err := c.Run(context.Background(), schema.Request{
				Strategy:  tt.strategy,
				Source:    tt.source,
				ChunkSize: 30,
				Content:   tt.content,
			})
			require.NoError(t, err)
			require.NotEmpty(t, chunks)

			var rebuilt strings.Builder
			prevStart := 0
			for i, chunk := range chunks {
				rebuilt.WriteString(chunk.Text)
				assert.LessOrEqual(t, chunk.StartLine, chunk.EndLine, "chunk %d", i)
				assert.GreaterOrEqual(t, chunk.StartLine, prevStart, "chunk %d out of order", i)
				prevStart = chunk.StartLine
			}
			assert.Equal(t, tt.content, rebuilt.String())
		})
	}
}

func TestRunIdempotent(t *testing.T) {
	c := newChunker(t)
	req := schema.Request{
		Strategy:  schema.StrategySimilarityBoundary,
		Source:    "doc.txt",
		ChunkSize: 40,
		Content:   "cats purr softly. cats nap often. dogs bark loudly. dogs run fast.",
	}

	first, err := c.Run(context.Background(), req)
	require.NoError(t, err)
	second, err := c.Run(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunRecoversPanic(t *testing.T) {
	calls := 0
	c := newChunker(t, chunker.WithStrategy("panicky", stubFactory(&stubSplitter{calls: &calls, panic: true})))

	chunks, err := c.Run(context.Background(), schema.Request{
		Strategy:  "panicky",
		Source:    "x.txt",
		ChunkSize: 10,
		Content:   "text",
	})
	require.Error(t, err)
	assert.Nil(t, chunks)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, 1, calls)
}

func TestRunRejectsBadSpans(t *testing.T) {
	calls := 0
	bad := &stubSplitter{calls: &calls, spans: []schema.Span{{Text: "zzz", Start: 0, End: 3}}}
	c := newChunker(t, chunker.WithStrategy("bad-spans", stubFactory(bad)))

	_, err := c.Run(context.Background(), schema.Request{
		Strategy:  "bad-spans",
		Source:    "x.txt",
		ChunkSize: 10,
		Content:   "abcdef",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "span")
}

func TestRunDropsZeroWidthSpans(t *testing.T) {
	calls := 0
	stub := &stubSplitter{calls: &calls, spans: []schema.Span{
		{Text: "", Start: 0, End: 0},
		{Text: "abc", Start: 0, End: 3},
		{Text: "", Start: 3, End: 3},
	}}
	c := newChunker(t, chunker.WithStrategy("zero-width", stubFactory(stub)))

	chunks, err := c.Run(context.Background(), schema.Request{
		Strategy:  "zero-width",
		Source:    "x.txt",
		ChunkSize: 10,
		Content:   "abcdef",
	})
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "abc", chunks[0].Text)
}

// Overlapping strategies must still reconstruct the document once each
// chunk's shared prefix with its predecessor is removed.
func TestRunOverlapReconstruction(t *testing.T) {
	content := "abcdefghijklmnopqrstuvwxyz0123456789"
	c := newChunker(t)

	chunks, err := c.Run(context.Background(), schema.Request{
		Strategy:  schema.StrategyCountBounded,
		Source:    "alpha.txt",
		ChunkSize: 10,
		Overlap:   4,
		Content:   content,
	})
	require.NoError(t, err)
	require.Greater(t, len(chunks), 1)

	rebuilt := chunks[0].Text
	for _, chunk := range chunks[1:] {
		overlapLen := overlapWithSuffix(rebuilt, chunk.Text)
		rebuilt += chunk.Text[overlapLen:]
	}
	assert.Equal(t, content, rebuilt)
}

// overlapWithSuffix returns the length of the longest prefix of next that
// is also a suffix of built.
func overlapWithSuffix(built, next string) int {
	max := len(next)
	if len(built) < max {
		max = len(built)
	}
	for n := max; n > 0; n-- {
		if strings.HasSuffix(built, next[:n]) {
			return n
		}
	}
	return 0
}
