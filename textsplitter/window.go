package textsplitter

import (
	"context"
	"fmt"

	"codechunk/schema"
)

// FixedWindow splits text into fixed-size character windows with an
// explicit overlap between consecutive windows. Character count is the
// sizing unit so its size semantics match the other splitters.
type FixedWindow struct {
	opts options
}

var _ Splitter = (*FixedWindow)(nil)

// NewFixedWindow creates a new fixed-window text splitter.
func NewFixedWindow(opts ...Option) *FixedWindow {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &FixedWindow{opts: o}
}

func (s *FixedWindow) Name() string {
	return string(schema.StrategyCountBounded)
}

func (s *FixedWindow) Split(_ context.Context, text string) ([]schema.Span, error) {
	size := s.opts.chunkSize
	step := size - s.opts.chunkOverlap
	if step < 1 {
		return nil, fmt.Errorf("%w: overlap %d, chunk size %d",
			ErrOverlapTooLarge, s.opts.chunkOverlap, size)
	}
	if text == "" {
		return nil, nil
	}

	spans := make([]schema.Span, 0, len(text)/step+1)
	for start := 0; start < len(text); start += step {
		end := start + size
		if end > len(text) {
			end = len(text)
		}
		spans = append(spans, schema.Span{Text: text[start:end], Start: start, End: end})
		if end == len(text) {
			break
		}
	}
	return spans, nil
}
