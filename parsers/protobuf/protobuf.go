// Package protobuf finds top-level element boundaries in .proto files.
package protobuf

import (
	"fmt"
	"log/slog"
	"strings"

	protoparser "github.com/yoheimuta/go-protoparser/v4"
	"github.com/yoheimuta/go-protoparser/v4/parser"
)

type Plugin struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Plugin {
	return &Plugin{logger: logger}
}

func (p *Plugin) Name() string {
	return "protobuf"
}

func (p *Plugin) Extensions() []string {
	return []string{".proto"}
}

// Boundaries returns the byte offset of every top-level element (messages,
// enums, services, imports, package and option statements). Leading
// comments belong to the element they document.
func (p *Plugin) Boundaries(content string) ([]int, error) {
	proto, err := protoparser.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse proto: %w", err)
	}

	cuts := make([]int, 0, len(proto.ProtoBody))
	for _, visitee := range proto.ProtoBody {
		switch el := visitee.(type) {
		case *parser.Message:
			cuts = append(cuts, elementOffset(el.Meta.Pos.Offset, el.Comments))
		case *parser.Enum:
			cuts = append(cuts, elementOffset(el.Meta.Pos.Offset, el.Comments))
		case *parser.Service:
			cuts = append(cuts, elementOffset(el.Meta.Pos.Offset, el.Comments))
		case *parser.Import:
			cuts = append(cuts, elementOffset(el.Meta.Pos.Offset, el.Comments))
		case *parser.Package:
			cuts = append(cuts, elementOffset(el.Meta.Pos.Offset, el.Comments))
		case *parser.Option:
			cuts = append(cuts, elementOffset(el.Meta.Pos.Offset, el.Comments))
		}
	}

	p.logger.Debug("Parsed proto", "elements", len(cuts))
	return cuts, nil
}

func elementOffset(offset int, comments []*parser.Comment) int {
	if len(comments) > 0 {
		return comments[0].Meta.Pos.Offset
	}
	return offset
}
