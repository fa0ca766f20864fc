// Package markdown finds heading boundaries in Markdown using goldmark.
package markdown

import (
	"log/slog"
	"strings"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gtext "github.com/yuin/goldmark/text"
)

type Plugin struct {
	logger   *slog.Logger
	markdown goldmark.Markdown
}

func New(logger *slog.Logger) *Plugin {
	return &Plugin{
		logger: logger,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

func (p *Plugin) Name() string {
	return "markdown"
}

func (p *Plugin) Extensions() []string {
	return []string{".md", ".markdown"}
}

// Boundaries returns the offset of the first character of every heading
// line, at any level. Goldmark reports the heading text segment, which
// starts after the ATX marker, so the cut backs up to the line start.
func (p *Plugin) Boundaries(content string) ([]int, error) {
	source := []byte(content)
	doc := p.markdown.Parser().Parse(gtext.NewReader(source))

	var cuts []int
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		heading, ok := node.(*gast.Heading)
		if !ok {
			continue
		}
		lines := heading.Lines()
		if lines.Len() == 0 {
			continue
		}
		cuts = append(cuts, lineStart(content, lines.At(0).Start))
	}

	p.logger.Debug("Parsed markdown", "headings", len(cuts))
	return cuts, nil
}

func lineStart(content string, offset int) int {
	if offset > len(content) {
		offset = len(content)
	}
	return strings.LastIndexByte(content[:offset], '\n') + 1
}
