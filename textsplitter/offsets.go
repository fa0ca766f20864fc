package textsplitter

import (
	"fmt"
	"strings"

	"codechunk/schema"
)

// RecoverSpans maps backend-produced chunk texts onto character offsets in
// the original document. Each piece is searched for starting at the end of
// the previous match, so content repeated earlier in the document cannot
// capture a later piece.
//
// A zero-length piece pins to the current search position (callers drop
// zero-width spans before normalization). A piece whose leading whitespace
// was eaten by the backend is matched by its trimmed form; the span then
// covers the trimmed occurrence.
func RecoverSpans(doc string, pieces []string) ([]schema.Span, error) {
	spans := make([]schema.Span, 0, len(pieces))
	from := 0

	for n, piece := range pieces {
		if piece == "" {
			spans = append(spans, schema.Span{Start: from, End: from})
			continue
		}

		i := strings.Index(doc[from:], piece)
		if i < 0 {
			trimmed := strings.TrimLeft(piece, " \t\r\n")
			if trimmed != "" && trimmed != piece {
				i = strings.Index(doc[from:], trimmed)
				piece = trimmed
			}
			if i < 0 {
				return nil, fmt.Errorf("%w: chunk %d", ErrOffsetRecovery, n)
			}
		}

		start := from + i
		end := start + len(piece)
		spans = append(spans, schema.Span{Text: doc[start:end], Start: start, End: end})
		from = end
	}
	return spans, nil
}
