package markdown

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlugin() *Plugin {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBoundariesHeadings(t *testing.T) {
	doc := "# Title\n\nintro paragraph\n\n## Usage\n\nrun it\n\n## Options\n\n- one\n- two\n"

	cuts, err := newTestPlugin().Boundaries(doc)
	require.NoError(t, err)

	require.Len(t, cuts, 3)
	assert.Equal(t, 0, cuts[0])
	assert.Equal(t, strings.Index(doc, "## Usage"), cuts[1])
	assert.Equal(t, strings.Index(doc, "## Options"), cuts[2])
}

// The cut covers the whole heading line including the ATX marker, not just
// the heading text.
func TestBoundariesStartAtLineStart(t *testing.T) {
	doc := "preamble\n\n### Deep Heading\n\nbody\n"

	cuts, err := newTestPlugin().Boundaries(doc)
	require.NoError(t, err)

	require.Len(t, cuts, 1)
	assert.Equal(t, strings.Index(doc, "### Deep Heading"), cuts[0])
}

func TestBoundariesNoHeadings(t *testing.T) {
	cuts, err := newTestPlugin().Boundaries("just a paragraph\nand another line\n")
	require.NoError(t, err)
	assert.Empty(t, cuts)
}

func TestPluginMetadata(t *testing.T) {
	p := newTestPlugin()
	assert.Equal(t, "markdown", p.Name())
	assert.Equal(t, []string{".md", ".markdown"}, p.Extensions())
}
