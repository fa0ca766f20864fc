package textsplitter

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"unicode"

	"codechunk/schema"
)

// Embedder turns texts into vectors for similarity comparison. The
// similarity splitter only ever compares adjacent vectors, so any model
// with a consistent vector space works.
type Embedder interface {
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
}

// Similarity splits text where the embedding similarity between adjacent
// sentence units drops below a fixed threshold, or where adding a unit
// would exceed the chunk size. The threshold is a constant so identical
// inputs always produce identical chunks.
type Similarity struct {
	opts options
}

var _ Splitter = (*Similarity)(nil)

// NewSimilarity creates a new similarity-boundary text splitter. Without
// WithEmbedder it uses a deterministic hashed bag-of-words embedder.
func NewSimilarity(opts ...Option) *Similarity {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.embedder == nil {
		o.embedder = NewHashedEmbedder()
	}
	return &Similarity{opts: o}
}

func (s *Similarity) Name() string {
	return string(schema.StrategySimilarityBoundary)
}

func (s *Similarity) Split(ctx context.Context, text string) ([]schema.Span, error) {
	units := scanSentences(text)
	if len(units) == 0 {
		return nil, nil
	}

	texts := make([]string, len(units))
	for i, u := range units {
		texts[i] = u.Text
	}

	vecs, err := s.opts.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embedding sentence units: %w", err)
	}
	if len(vecs) != len(units) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d units", len(vecs), len(units))
	}

	var spans []schema.Span
	cur := units[0]
	for i := 1; i < len(units); i++ {
		u := units[i]
		if u.End-cur.Start > s.opts.chunkSize || cosine(vecs[i-1], vecs[i]) < similarityThreshold {
			spans = append(spans, cur)
			cur = u
			continue
		}
		cur.End = u.End
		cur.Text = text[cur.Start:cur.End]
	}
	return append(spans, cur), nil
}

// hashedEmbedder is a deterministic local embedder: lower-cased word tokens
// hashed into a fixed-size frequency vector, L2-normalized. It has no
// notion of meaning beyond vocabulary overlap, which is enough for the
// adjacent-unit comparisons the splitter makes, and it keeps reruns
// byte-identical where a model-served embedder would not.
type hashedEmbedder struct {
	dim int
}

// NewHashedEmbedder creates the default deterministic embedder.
func NewHashedEmbedder() Embedder {
	return &hashedEmbedder{dim: hashedEmbedderDim}
}

func (e *hashedEmbedder) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	vecs := make([][]float32, len(texts))
	for i, text := range texts {
		vecs[i] = e.embed(text)
	}
	return vecs, nil
}

func (e *hashedEmbedder) embed(text string) []float32 {
	vec := make([]float32, e.dim)
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, word := range words {
		h := fnv.New32a()
		h.Write([]byte(word))
		vec[h.Sum32()%uint32(e.dim)]++
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		inv := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= inv
		}
	}
	return vec
}

// cosine returns the cosine similarity of two vectors, 0 when either is
// zero or the dimensions disagree.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
