package chunker

import (
	"sort"
	"strings"
)

// LineIndex precomputes the newline positions of a document so that
// per-span line lookups cost a binary search instead of a prefix rescan.
type LineIndex struct {
	newlines []int
}

// NewLineIndex builds the index for one document.
func NewLineIndex(text string) *LineIndex {
	var newlines []int
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			newlines = append(newlines, i)
		}
	}
	return &LineIndex{newlines: newlines}
}

// LineAt returns the 1-indexed line number at a character offset: the
// number of newlines strictly before the offset, plus one.
func (ix *LineIndex) LineAt(offset int) int {
	return sort.SearchInts(ix.newlines, offset) + 1
}

// LineOf is the direct form of the same computation, for callers without
// an index. Offsets are clamped to the document.
func LineOf(text string, offset int) int {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	return strings.Count(text[:offset], "\n") + 1
}
