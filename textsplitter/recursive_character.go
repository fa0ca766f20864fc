package textsplitter

import (
	"context"
	"fmt"
	"strings"

	"codechunk/schema"
)

// RecursiveCharacter splits text by recursively trying a list of
// separators, keeping semantically related parts together as long as they
// fit the chunk size. With a language tag configured, the separator list
// prefers that language's construct boundaries.
type RecursiveCharacter struct {
	opts options
}

var _ Splitter = (*RecursiveCharacter)(nil)

// NewRecursiveCharacter creates a new RecursiveCharacter text splitter.
func NewRecursiveCharacter(opts ...Option) *RecursiveCharacter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &RecursiveCharacter{opts: o}
}

func (s *RecursiveCharacter) Name() string {
	return string(schema.StrategyRecursiveCharacter)
}

// Split produces spans over the original text. The recursive pass yields
// text pieces that tile the document; offsets are then recovered by
// locating each piece starting at the end of its predecessor, and the
// configured overlap extends each span's start into the previous one.
func (s *RecursiveCharacter) Split(_ context.Context, text string) ([]schema.Span, error) {
	if s.opts.chunkOverlap > 0 && s.opts.chunkOverlap >= s.opts.chunkSize {
		return nil, fmt.Errorf("%w: overlap %d, chunk size %d",
			ErrOverlapTooLarge, s.opts.chunkOverlap, s.opts.chunkSize)
	}
	if text == "" {
		return nil, nil
	}

	pieces := splitRecursive(text, SeparatorsFor(s.opts.language), s.opts.chunkSize)

	spans, err := RecoverSpans(text, pieces)
	if err != nil {
		return nil, err
	}

	if s.opts.chunkOverlap > 0 {
		spans = extendWithOverlap(text, spans, s.opts.chunkOverlap)
	}
	return spans, nil
}

// splitRecursive splits text into pieces no longer than limit where
// possible. The returned pieces tile the input exactly: separators stay
// attached to the piece they introduce, nothing is trimmed or dropped.
func splitRecursive(text string, separators []string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	for len(separators) > 0 && separators[0] != "" {
		sep := separators[0]
		separators = separators[1:]

		parts := splitBefore(text, sep)
		if len(parts) < 2 {
			continue
		}
		return mergeParts(parts, separators, limit)
	}

	return hardCut(text, limit)
}

// splitBefore cuts text at every occurrence of sep, leaving the separator
// at the start of the following part. An occurrence at offset zero creates
// no boundary.
func splitBefore(text, sep string) []string {
	var parts []string
	prev := 0
	from := 1
	for from < len(text) {
		i := strings.Index(text[from:], sep)
		if i < 0 {
			break
		}
		cut := from + i
		parts = append(parts, text[prev:cut])
		prev = cut
		from = cut + len(sep)
	}
	return append(parts, text[prev:])
}

// mergeParts greedily packs adjacent parts while the merged piece fits the
// limit and recurses with finer separators into parts that do not fit on
// their own.
func mergeParts(parts, separators []string, limit int) []string {
	var pieces []string
	current := ""
	flush := func() {
		if current != "" {
			pieces = append(pieces, current)
			current = ""
		}
	}

	for _, part := range parts {
		if len(part) > limit {
			flush()
			pieces = append(pieces, splitRecursive(part, separators, limit)...)
			continue
		}
		if len(current)+len(part) > limit {
			flush()
		}
		current += part
	}
	flush()
	return pieces
}

// hardCut is the base case once every separator is exhausted: fixed-size
// slices of the text.
func hardCut(text string, limit int) []string {
	pieces := make([]string, 0, (len(text)+limit-1)/limit)
	for start := 0; start < len(text); start += limit {
		end := start + limit
		if end > len(text) {
			end = len(text)
		}
		pieces = append(pieces, text[start:end])
	}
	return pieces
}

// extendWithOverlap grows each span's start backwards by up to overlap
// characters, never past the start of the previous span.
func extendWithOverlap(text string, spans []schema.Span, overlap int) []schema.Span {
	for i := 1; i < len(spans); i++ {
		start := spans[i].Start - overlap
		if start < spans[i-1].Start {
			start = spans[i-1].Start
		}
		if start < 0 {
			start = 0
		}
		spans[i].Start = start
		spans[i].Text = text[start:spans[i].End]
	}
	return spans
}
