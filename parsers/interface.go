// Package parsers hosts the structure parser plugins the structure-aware
// splitter dispatches to. A plugin understands one language well enough to
// name the character offsets where its top-level constructs begin; all
// sizing and line arithmetic stays outside.
package parsers

import (
	"log/slog"

	"codechunk/parsers/golang"
	"codechunk/parsers/javascript"
	"codechunk/parsers/markdown"
	"codechunk/parsers/protobuf"
	"codechunk/parsers/terraform"
	"codechunk/parsers/yamldoc"
)

// Plugin is one language's structure parser.
type Plugin interface {
	Name() string
	Extensions() []string

	// Boundaries returns candidate cut offsets at top-level construct
	// starts. Offsets may be unsorted or duplicated; the caller
	// normalizes them. A parse failure returns an error and the caller
	// falls back to language-agnostic splitting.
	Boundaries(content string) ([]int, error)
}

// DefaultRegistry builds a registry with every built-in plugin registered.
func DefaultRegistry(logger *slog.Logger) (*Registry, error) {
	registry := NewRegistry(logger)

	plugins := []Plugin{
		golang.New(logger.With("plugin", "go")),
		markdown.New(logger.With("plugin", "markdown")),
		yamldoc.New(logger.With("plugin", "yaml")),
		protobuf.New(logger.With("plugin", "protobuf")),
		terraform.New(logger.With("plugin", "terraform")),
		javascript.New(logger.With("plugin", "javascript")),
	}

	for _, plugin := range plugins {
		if err := registry.Register(plugin); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
