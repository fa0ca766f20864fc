// Package javascript finds top-level function and class boundaries in
// JavaScript source using goja's parser. Only the parser is used, no
// runtime.
package javascript

import (
	"fmt"
	"log/slog"

	"github.com/dop251/goja/ast"
	"github.com/dop251/goja/parser"
)

type Plugin struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Plugin {
	return &Plugin{logger: logger}
}

func (p *Plugin) Name() string {
	return "javascript"
}

func (p *Plugin) Extensions() []string {
	return []string{".js", ".jsx", ".mjs", ".cjs"}
}

// Boundaries returns the offset of every top-level function and class
// declaration. goja indexes are 1-based.
func (p *Plugin) Boundaries(content string) ([]int, error) {
	program, err := parser.ParseFile(nil, "src.js", content, 0)
	if err != nil {
		return nil, fmt.Errorf("parse javascript: %w", err)
	}

	var cuts []int
	for _, statement := range program.Body {
		switch statement.(type) {
		case *ast.FunctionDeclaration, *ast.ClassDeclaration:
			cuts = append(cuts, int(statement.Idx0())-1)
		}
	}

	p.logger.Debug("Parsed javascript", "declarations", len(cuts))
	return cuts, nil
}
