// Package yamldoc finds top-level key boundaries in YAML documents.
package yamldoc

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"
)

type Plugin struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Plugin {
	return &Plugin{logger: logger}
}

func (p *Plugin) Name() string {
	return "yaml"
}

func (p *Plugin) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Boundaries returns the line-start offset of every top-level mapping key,
// across all documents in the stream. The yaml AST reports 1-indexed
// line/column positions, converted here through a line-start table.
func (p *Plugin) Boundaries(content string) ([]int, error) {
	lineStarts := lineStartOffsets(content)
	decoder := yaml.NewDecoder(strings.NewReader(content))

	var cuts []int
	docs := 0
	for {
		var doc yaml.Node
		err := decoder.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		docs++

		if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
			continue
		}
		root := doc.Content[0]
		if root.Kind != yaml.MappingNode {
			cuts = appendLineCut(cuts, lineStarts, root.Line)
			continue
		}
		for i := 0; i+1 < len(root.Content); i += 2 {
			key := root.Content[i]
			if key.Column == 1 {
				cuts = appendLineCut(cuts, lineStarts, key.Line)
			}
		}
	}

	p.logger.Debug("Parsed yaml", "documents", docs, "keys", len(cuts))
	return cuts, nil
}

func appendLineCut(cuts, lineStarts []int, line int) []int {
	if line >= 1 && line <= len(lineStarts) {
		cuts = append(cuts, lineStarts[line-1])
	}
	return cuts
}

func lineStartOffsets(content string) []int {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}
