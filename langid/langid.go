// Package langid maps file paths to coarse language tags by extension.
//
// Two lookup policies coexist because the splitting backends disagree on
// what an unknown extension means: the structure-aware backend wants a
// usable default so chunking never fails on classification alone, while
// the recursive-character backend wants to know there is no tag and switch
// to its generic separator set.
package langid

import "strings"

// DefaultLanguage is the tag returned by ClassifyDefault for unknown
// extensions.
const DefaultLanguage = "python"

// extensionTags is loaded once and never mutated, so concurrent lookups
// need no locking.
var extensionTags = map[string]string{
	"py":    "python",
	"js":    "javascript",
	"jsx":   "javascript",
	"ts":    "typescript",
	"tsx":   "tsx",
	"rs":    "rust",
	"go":    "go",
	"java":  "java",
	"c":     "c",
	"h":     "c",
	"cpp":   "cpp",
	"hpp":   "cpp",
	"rb":    "ruby",
	"php":   "php",
	"cs":    "c_sharp",
	"swift": "swift",
	"kt":    "kotlin",
	"scala": "scala",
	"lua":   "lua",
	"pl":    "perl",
	"r":     "r",
	"sh":    "bash",
	"bash":  "bash",
	"zsh":   "bash",
	"ps1":   "powershell",
	"sql":   "sql",
	"md":    "markdown",
	"html":  "html",
	"css":   "css",
	"json":  "json",
	"yaml":  "yaml",
	"yml":   "yaml",
	"toml":  "toml",
	"xml":   "xml",
	"rst":   "rst",
	"tex":   "latex",
	"latex": "latex",
	"proto": "protobuf",
	"tf":    "terraform",
}

// Classify resolves a language tag from the path's extension. The second
// return value is false when the extension is unknown or the path has no
// extension at all.
func Classify(path string) (string, bool) {
	tag, ok := extensionTags[extensionOf(path)]
	return tag, ok
}

// ClassifyDefault resolves a language tag from the path's extension,
// returning DefaultLanguage for anything it does not recognize.
func ClassifyDefault(path string) string {
	if tag, ok := Classify(path); ok {
		return tag
	}
	return DefaultLanguage
}

func extensionOf(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(path[i+1:])
}
