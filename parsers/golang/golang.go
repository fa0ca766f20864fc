// Package golang finds top-level declaration boundaries in Go source.
package golang

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"log/slog"
)

type Plugin struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Plugin {
	return &Plugin{logger: logger}
}

func (p *Plugin) Name() string {
	return "go"
}

func (p *Plugin) Extensions() []string {
	return []string{".go"}
}

// Boundaries returns the offset of each top-level declaration. A doc
// comment belongs to its declaration, so the cut moves up to include it.
func (p *Plugin) Boundaries(content string) ([]int, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "src.go", content, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse go source: %w", err)
	}

	cuts := make([]int, 0, len(file.Decls))
	for _, decl := range file.Decls {
		pos := decl.Pos()
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Doc != nil {
				pos = d.Doc.Pos()
			}
		case *ast.GenDecl:
			if d.Doc != nil {
				pos = d.Doc.Pos()
			}
		}
		cuts = append(cuts, fset.Position(pos).Offset)
	}

	p.logger.Debug("Parsed go source", "declarations", len(cuts))
	return cuts, nil
}
