package schema

import (
	"errors"
	"fmt"
)

// Strategy names one of the chunking backends the dispatcher can drive.
type Strategy string

const (
	StrategyStructureAware     Strategy = "structure-aware"
	StrategyRecursiveCharacter Strategy = "recursive-character"
	StrategySimilarityBoundary Strategy = "similarity-boundary"
	StrategyCountBounded       Strategy = "count-bounded"
	StrategySentenceBoundary   Strategy = "sentence-boundary"
)

// Strategies returns every built-in strategy name in a stable order.
func Strategies() []Strategy {
	return []Strategy{
		StrategyStructureAware,
		StrategyRecursiveCharacter,
		StrategySimilarityBoundary,
		StrategyCountBounded,
		StrategySentenceBoundary,
	}
}

var (
	ErrUnknownStrategy  = errors.New("unknown chunking strategy")
	ErrInvalidChunkSize = errors.New("chunk size must be positive")
	ErrNegativeOverlap  = errors.New("overlap must not be negative")
)

// Span is a backend-produced character range over the original document.
// Text is always the exact substring Content[Start:End]. Spans never leave
// the chunking pipeline; they exist only between a splitter and the
// dispatcher that converts them to line-addressed chunks.
type Span struct {
	Text  string
	Start int
	End   int
}

// Chunk is one unit of pipeline output. The JSON field names are part of
// the wire contract.
type Chunk struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	StartLine int    `json:"startLine"`
	EndLine   int    `json:"endLine"`
}

// Failure is the wire shape of the error channel. A request produces either
// a chunk list or exactly one Failure, never both.
type Failure struct {
	Error string `json:"error"`
}

// Request carries everything needed to chunk one document. Source is used
// for language classification and chunk IDs only; it need not name a real
// file.
type Request struct {
	Strategy  Strategy
	Source    string
	ChunkSize int
	Overlap   int
	Content   string
}

// Validate rejects requests that must fail before any backend is invoked.
// Strategy names are validated by the dispatcher against its registered
// backends, not here, so callers can add strategies without touching this
// package.
func (r Request) Validate() error {
	if r.ChunkSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidChunkSize, r.ChunkSize)
	}
	if r.Overlap < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeOverlap, r.Overlap)
	}
	return nil
}
