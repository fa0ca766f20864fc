// Package terraform finds top-level block boundaries in HCL/Terraform
// configuration.
package terraform

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

type Plugin struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Plugin {
	return &Plugin{logger: logger}
}

func (p *Plugin) Name() string {
	return "terraform"
}

func (p *Plugin) Extensions() []string {
	return []string{".tf", ".hcl"}
}

// Boundaries returns the byte offset of every top-level block and
// attribute. Only syntax is read; expressions are never evaluated.
func (p *Plugin) Boundaries(content string) ([]int, error) {
	file, diags := hclsyntax.ParseConfig([]byte(content), "config.tf", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse hcl: %w", diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, nil
	}

	var cuts []int
	for _, block := range body.Blocks {
		cuts = append(cuts, block.TypeRange.Start.Byte)
	}
	for _, attr := range body.Attributes {
		cuts = append(cuts, attr.SrcRange.Start.Byte)
	}

	p.logger.Debug("Parsed hcl", "blocks", len(body.Blocks), "attributes", len(body.Attributes))
	return cuts, nil
}
