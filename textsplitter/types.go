package textsplitter

import "errors"

// Constants for chunking parameters
const (
	defaultChunkSize = 1500
	defaultOverlap   = 0

	// Boundary cutoff for the similarity splitter. Adjacent sentence units
	// whose embedding cosine drops below this start a new chunk. Fixed, not
	// user-configurable, so identical requests stay byte-identical.
	similarityThreshold = 0.5

	// Dimension of the hashed bag-of-words vectors used by the default
	// embedder.
	hashedEmbedderDim = 256

	// Character-to-token estimation ratio used when no real tokenizer is
	// configured.
	defaultEstimationRatio = 4
)

var (
	ErrOverlapTooLarge = errors.New("overlap must be smaller than chunk size")
	ErrOffsetRecovery  = errors.New("could not locate chunk text in document")
	ErrNilRegistry     = errors.New("parser registry cannot be nil")
)
