package textsplitter

import "log/slog"

// options holds configuration settings shared by the splitters.
type options struct {
	chunkSize    int
	chunkOverlap int
	language     string
	embedder     Embedder
	logger       *slog.Logger
}

// Option is a function type for configuring a splitter.
type Option func(*options)

func defaultOptions() options {
	return options{
		chunkSize:    defaultChunkSize,
		chunkOverlap: defaultOverlap,
		logger:       slog.Default(),
	}
}

// WithChunkSize sets the maximum chunk size in characters.
func WithChunkSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.chunkSize = size
		}
	}
}

// WithChunkOverlap sets the character overlap between consecutive chunks.
// Splitters that do not support overlap ignore it.
func WithChunkOverlap(overlap int) Option {
	return func(o *options) {
		if overlap >= 0 {
			o.chunkOverlap = overlap
		}
	}
}

// WithLanguage sets the language tag used to pick language-specific
// splitting heuristics. An empty tag selects the generic behavior.
func WithLanguage(tag string) Option {
	return func(o *options) {
		o.language = tag
	}
}

// WithEmbedder replaces the similarity splitter's default embedder.
func WithEmbedder(e Embedder) Option {
	return func(o *options) {
		if e != nil {
			o.embedder = e
		}
	}
}

// WithLogger sets the logger used for per-document diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
