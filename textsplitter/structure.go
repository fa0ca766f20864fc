package textsplitter

import (
	"context"
	"sort"

	"codechunk/parsers"
	"codechunk/schema"
)

// Structure splits code along the top-level construct boundaries reported
// by a language's structure parser, then sizes the resulting segments:
// small neighbors merge up to the chunk size and oversized segments are
// re-split with the recursive character splitter. When no parser exists
// for the language, or parsing fails, the whole document takes the
// recursive path instead — structure parsing can degrade the split, never
// fail it.
type Structure struct {
	registry *parsers.Registry
	fallback *RecursiveCharacter
	opts     options
}

var _ Splitter = (*Structure)(nil)

// NewStructure creates a structure-aware splitter backed by the given
// parser registry.
func NewStructure(registry *parsers.Registry, opts ...Option) (*Structure, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fallback := NewRecursiveCharacter(
		WithChunkSize(o.chunkSize),
		WithLanguage(o.language),
		WithLogger(o.logger),
	)
	return &Structure{registry: registry, fallback: fallback, opts: o}, nil
}

func (s *Structure) Name() string {
	return string(schema.StrategyStructureAware)
}

func (s *Structure) Split(ctx context.Context, text string) ([]schema.Span, error) {
	if text == "" {
		return nil, nil
	}

	plugin, err := s.registry.ForLanguage(s.opts.language)
	if err != nil {
		s.opts.logger.Debug("No structure parser for language, using recursive fallback",
			"language", s.opts.language)
		return s.fallback.Split(ctx, text)
	}

	cuts, err := plugin.Boundaries(text)
	if err != nil {
		s.opts.logger.Warn("Structure parsing failed, using recursive fallback",
			"language", s.opts.language, "error", err)
		return s.fallback.Split(ctx, text)
	}

	segments := segmentsFromCuts(text, cuts)
	return s.sizeSegments(text, segments), nil
}

// sizeSegments packs adjacent segments under the chunk size and re-splits
// segments that exceed it on their own.
func (s *Structure) sizeSegments(text string, segments []schema.Span) []schema.Span {
	sized := make([]schema.Span, 0, len(segments))
	var cur *schema.Span

	flush := func() {
		if cur != nil {
			sized = append(sized, *cur)
			cur = nil
		}
	}

	for _, seg := range segments {
		if seg.End-seg.Start > s.opts.chunkSize {
			flush()
			sized = append(sized, s.resplit(text, seg)...)
			continue
		}
		if cur != nil && seg.End-cur.Start > s.opts.chunkSize {
			flush()
		}
		if cur == nil {
			seg := seg
			cur = &seg
			continue
		}
		cur.End = seg.End
		cur.Text = text[cur.Start:cur.End]
	}
	flush()
	return sized
}

// resplit breaks one oversized segment with the recursive pass, shifting
// the resulting offsets back into document coordinates.
func (s *Structure) resplit(text string, seg schema.Span) []schema.Span {
	pieces := splitRecursive(seg.Text, SeparatorsFor(s.opts.language), s.opts.chunkSize)

	spans := make([]schema.Span, 0, len(pieces))
	offset := seg.Start
	for _, piece := range pieces {
		end := offset + len(piece)
		spans = append(spans, schema.Span{Text: text[offset:end], Start: offset, End: end})
		offset = end
	}
	return spans
}

// segmentsFromCuts turns cut offsets into spans that tile the text:
// boundaries are the cuts plus both document ends, sorted, deduplicated
// and clamped to the interior.
func segmentsFromCuts(text string, cuts []int) []schema.Span {
	boundaries := make([]int, 0, len(cuts)+2)
	boundaries = append(boundaries, 0)
	for _, cut := range cuts {
		if cut > 0 && cut < len(text) {
			boundaries = append(boundaries, cut)
		}
	}
	boundaries = append(boundaries, len(text))
	sort.Ints(boundaries)

	var segments []schema.Span
	for i := 1; i < len(boundaries); i++ {
		start, end := boundaries[i-1], boundaries[i]
		if start == end {
			continue
		}
		segments = append(segments, schema.Span{Text: text[start:end], Start: start, End: end})
	}
	return segments
}
