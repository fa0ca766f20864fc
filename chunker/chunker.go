// Package chunker drives the chunking pipeline: strategy dispatch,
// language classification, span validation and line-addressed chunk
// assembly. Every request either yields a full chunk sequence or exactly
// one error — never partial output, never an escaping panic.
package chunker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"codechunk/langid"
	"codechunk/parsers"
	"codechunk/schema"
	"codechunk/textsplitter"
)

var errBadSpans = errors.New("backend produced out-of-order or out-of-bounds spans")

// Factory builds the splitter for one request once the language tag has
// been resolved for that strategy's classification policy.
type Factory func(req schema.Request, language string, logger *slog.Logger) (textsplitter.Splitter, error)

// Chunker dispatches requests to the registered chunking strategies. It is
// stateless per request; one Chunker may serve many requests concurrently.
type Chunker struct {
	logger    *slog.Logger
	registry  *parsers.Registry
	tokenizer textsplitter.Tokenizer
	factories map[schema.Strategy]Factory
}

// Option configures a Chunker.
type Option func(*Chunker)

// WithRegistry replaces the default structure parser registry.
func WithRegistry(registry *parsers.Registry) Option {
	return func(c *Chunker) {
		if registry != nil {
			c.registry = registry
		}
	}
}

// WithTokenizer sets the tokenizer used for chunk statistics logging.
func WithTokenizer(tokenizer textsplitter.Tokenizer) Option {
	return func(c *Chunker) {
		if tokenizer != nil {
			c.tokenizer = tokenizer
		}
	}
}

// WithStrategy registers a strategy under the given name, replacing any
// existing registration. Adding a strategy touches no dispatch control
// flow; it only grows the lookup table.
func WithStrategy(name schema.Strategy, factory Factory) Option {
	return func(c *Chunker) {
		if factory != nil {
			c.factories[name] = factory
		}
	}
}

// New creates a Chunker with the five built-in strategies registered.
func New(logger *slog.Logger, opts ...Option) (*Chunker, error) {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Chunker{
		logger:    logger.With("component", "chunker"),
		tokenizer: textsplitter.NewEstimatorTokenizer(),
	}
	c.factories = c.builtinFactories()

	for _, opt := range opts {
		opt(c)
	}

	if c.registry == nil {
		registry, err := parsers.DefaultRegistry(logger)
		if err != nil {
			return nil, fmt.Errorf("build parser registry: %w", err)
		}
		c.registry = registry
	}
	return c, nil
}

func (c *Chunker) builtinFactories() map[schema.Strategy]Factory {
	return map[schema.Strategy]Factory{
		schema.StrategyStructureAware: func(req schema.Request, language string, logger *slog.Logger) (textsplitter.Splitter, error) {
			return textsplitter.NewStructure(c.registry,
				textsplitter.WithChunkSize(req.ChunkSize),
				textsplitter.WithLanguage(language),
				textsplitter.WithLogger(logger),
			)
		},
		schema.StrategyRecursiveCharacter: func(req schema.Request, language string, logger *slog.Logger) (textsplitter.Splitter, error) {
			return textsplitter.NewRecursiveCharacter(
				textsplitter.WithChunkSize(req.ChunkSize),
				textsplitter.WithChunkOverlap(req.Overlap),
				textsplitter.WithLanguage(language),
				textsplitter.WithLogger(logger),
			), nil
		},
		schema.StrategySimilarityBoundary: func(req schema.Request, _ string, logger *slog.Logger) (textsplitter.Splitter, error) {
			return textsplitter.NewSimilarity(
				textsplitter.WithChunkSize(req.ChunkSize),
				textsplitter.WithLogger(logger),
			), nil
		},
		schema.StrategyCountBounded: func(req schema.Request, _ string, logger *slog.Logger) (textsplitter.Splitter, error) {
			return textsplitter.NewFixedWindow(
				textsplitter.WithChunkSize(req.ChunkSize),
				textsplitter.WithChunkOverlap(req.Overlap),
				textsplitter.WithLogger(logger),
			), nil
		},
		schema.StrategySentenceBoundary: func(req schema.Request, _ string, logger *slog.Logger) (textsplitter.Splitter, error) {
			return textsplitter.NewSentence(
				textsplitter.WithChunkSize(req.ChunkSize),
				textsplitter.WithLogger(logger),
			), nil
		},
	}
}

// Run chunks one document. On success the returned slice is non-nil even
// when empty, so callers can serialize it directly.
func (c *Chunker) Run(ctx context.Context, req schema.Request) (chunks []schema.Chunk, err error) {
	factory, ok := c.factories[req.Strategy]
	if !ok {
		return nil, fmt.Errorf("%w: %q", schema.ErrUnknownStrategy, string(req.Strategy))
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	logger := c.logger.With(
		"request_id", uuid.NewString(),
		"strategy", string(req.Strategy),
		"source", req.Source,
	)

	if req.Content == "" {
		logger.Debug("Empty document, nothing to chunk")
		return []schema.Chunk{}, nil
	}

	language := c.resolveLanguage(req)
	splitter, err := factory(req, language, logger)
	if err != nil {
		return nil, fmt.Errorf("build %s splitter: %w", req.Strategy, err)
	}

	// Backends wrap external parsing machinery; a panic there must surface
	// as an ordinary failure on the one error channel callers watch.
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Splitter panicked", "panic", r)
			chunks = nil
			err = fmt.Errorf("%s splitter panicked: %v", req.Strategy, r)
		}
	}()

	spans, err := splitter.Split(ctx, req.Content)
	if err != nil {
		return nil, fmt.Errorf("%s splitting failed: %w", req.Strategy, err)
	}

	spans = dropZeroWidth(spans)
	if err := checkSpans(req.Content, spans); err != nil {
		return nil, err
	}

	index := NewLineIndex(req.Content)
	chunks = make([]schema.Chunk, 0, len(spans))
	tokens := 0
	for _, span := range spans {
		chunks = append(chunks, normalize(req.Source, span, index))
		tokens += c.tokenizer.CountTokens(span.Text)
	}

	logger.Debug("Chunking complete",
		"language", language,
		"chunks", len(chunks),
		"tokens", tokens,
	)
	return chunks, nil
}

// resolveLanguage applies each strategy's classification policy: the
// structure-aware backend always gets a tag (falling back to the default
// language), the recursive backend gets an empty tag for unknown
// extensions so it uses generic separators, and the remaining strategies
// are language-agnostic.
func (c *Chunker) resolveLanguage(req schema.Request) string {
	switch req.Strategy {
	case schema.StrategyStructureAware:
		return langid.ClassifyDefault(req.Source)
	case schema.StrategyRecursiveCharacter:
		tag, _ := langid.Classify(req.Source)
		return tag
	default:
		return ""
	}
}

func dropZeroWidth(spans []schema.Span) []schema.Span {
	kept := spans[:0]
	for _, span := range spans {
		if span.End > span.Start {
			kept = append(kept, span)
		}
	}
	return kept
}

// checkSpans enforces the adapter contract before line conversion: spans
// in document order, inside the document, with text matching their
// offsets.
func checkSpans(content string, spans []schema.Span) error {
	prevStart := 0
	for i, span := range spans {
		if span.Start < 0 || span.End > len(content) || span.Start > span.End {
			return fmt.Errorf("%w: span %d [%d:%d]", errBadSpans, i, span.Start, span.End)
		}
		if span.Start < prevStart {
			return fmt.Errorf("%w: span %d starts before span %d", errBadSpans, i, i-1)
		}
		if span.Text != content[span.Start:span.End] {
			return fmt.Errorf("%w: span %d text does not match its offsets", errBadSpans, i)
		}
		prevStart = span.Start
	}
	return nil
}
