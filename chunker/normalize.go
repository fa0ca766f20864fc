package chunker

import (
	"fmt"

	"codechunk/schema"
)

// normalize assembles the uniform chunk record from a raw span. The end
// line is the line of the span's last character, so a span that ends just
// past its own trailing newline still reports the line it occupies rather
// than the next one.
func normalize(source string, span schema.Span, index *LineIndex) schema.Chunk {
	startLine := index.LineAt(span.Start)

	last := span.End - 1
	if last < span.Start {
		last = span.Start
	}
	endLine := index.LineAt(last)

	return schema.Chunk{
		ID:        fmt.Sprintf("%s:%d-%d", source, startLine, endLine),
		Text:      span.Text,
		StartLine: startLine,
		EndLine:   endLine,
	}
}
