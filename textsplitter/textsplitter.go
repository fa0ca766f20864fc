package textsplitter

import (
	"context"

	"codechunk/schema"
)

// Splitter is the single capability contract shared by all chunking
// strategies: given a document, produce character-offset spans over the
// unmodified input, in document order. Every span's Text is the exact
// substring of the input named by its offsets.
type Splitter interface {
	Name() string
	Split(ctx context.Context, text string) ([]schema.Span, error)
}
