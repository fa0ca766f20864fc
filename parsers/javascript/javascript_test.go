package javascript

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

func TestBoundariesFunctionsAndClasses(t *testing.T) {
	doc := "const version = 1;\n\n" +
		"function greet(name) {\n  return `hi ${name}`;\n}\n\n" +
		"class Greeter {\n  constructor() {}\n}\n"

	cuts, err := newTestPlugin().Boundaries(doc)
	require.NoError(t, err)

	require.Len(t, cuts, 2)
	assert.Equal(t, strings.Index(doc, "function greet"), cuts[0])
	assert.Equal(t, strings.Index(doc, "class Greeter"), cuts[1])
}

func TestBoundariesNoDeclarations(t *testing.T) {
	cuts, err := newTestPlugin().Boundaries("const a = 1;\nconsole.log(a);\n")
	require.NoError(t, err)
	assert.Empty(t, cuts)
}

func TestBoundariesParseError(t *testing.T) {
	_, err := newTestPlugin().Boundaries("function ( {{{")
	assert.Error(t, err)
}

func TestPluginMetadata(t *testing.T) {
	p := newTestPlugin()
	assert.Equal(t, "javascript", p.Name())
	assert.Equal(t, []string{".js", ".jsx", ".mjs", ".cjs"}, p.Extensions())
}
