package textsplitter

import (
	"context"

	"codechunk/schema"
)

// Sentence splits text at sentence boundaries, packing whole sentences
// into each chunk up to the chunk size. A chunk always holds at least one
// sentence, so a single sentence longer than the chunk size is emitted
// unsplit.
type Sentence struct {
	opts options
}

var _ Splitter = (*Sentence)(nil)

// NewSentence creates a new sentence-boundary text splitter.
func NewSentence(opts ...Option) *Sentence {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Sentence{opts: o}
}

func (s *Sentence) Name() string {
	return string(schema.StrategySentenceBoundary)
}

func (s *Sentence) Split(_ context.Context, text string) ([]schema.Span, error) {
	units := scanSentences(text)
	if len(units) == 0 {
		return nil, nil
	}
	return packUnits(text, units, s.opts.chunkSize), nil
}

// scanSentences cuts text into sentence units that tile the input exactly.
// A unit ends after a run of sentence terminators followed by whitespace,
// or after a newline run; the trailing whitespace belongs to the unit so
// concatenating units reproduces the text.
func scanSentences(text string) []schema.Span {
	var units []schema.Span
	start := 0
	i := 0

	emit := func(end int) {
		units = append(units, schema.Span{Text: text[start:end], Start: start, End: end})
		start = end
	}

	for i < len(text) {
		switch {
		case isTerminator(text[i]):
			j := i + 1
			for j < len(text) && isTerminator(text[j]) {
				j++
			}
			if j < len(text) && isSpace(text[j]) {
				for j < len(text) && isSpace(text[j]) {
					j++
				}
				emit(j)
			}
			i = j
		case text[i] == '\n':
			j := i + 1
			for j < len(text) && text[j] == '\n' {
				j++
			}
			emit(j)
			i = j
		default:
			i++
		}
	}
	if start < len(text) {
		emit(len(text))
	}
	return units
}

// packUnits merges consecutive units greedily under the size limit,
// keeping at least one unit per span.
func packUnits(text string, units []schema.Span, limit int) []schema.Span {
	var spans []schema.Span
	cur := units[0]

	for _, u := range units[1:] {
		if u.End-cur.Start > limit {
			spans = append(spans, cur)
			cur = u
			continue
		}
		cur.End = u.End
		cur.Text = text[cur.Start:cur.End]
	}
	return append(spans, cur)
}

func isTerminator(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
