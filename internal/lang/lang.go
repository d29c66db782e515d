package lang

import (
	"path/filepath"
	"strings"
)

type Format string

const (
	Unknown  Format = ""
	JSON     Format = "json"
	TOML     Format = "toml"
	YAML     Format = "yaml"
	Markdown Format = "markdown"
	Log      Format = "log"
	Shell    Format = "shell"
	HTML     Format = "html"
	Text     Format = "text"
)

var extMap = map[string]Format{
	".json":     JSON,
	".jsonc":    JSON,
	".json5":    JSON,
	".toml":     TOML,
	".yaml":     YAML,
	".yml":      YAML,
	".md":       Markdown,
	".markdown": Markdown,
	".mdown":    Markdown,
	".log":      Log,
	".sh":       Shell,
	".bash":     Shell,
	".zsh":      Shell,
	".fish":     Shell,
	".ksh":      Shell,
	".html":     HTML,
	".htm":      HTML,
	".xhtml":    HTML,
	".txt":      Text,
	".text":     Text,
}

var fileMap = map[string]Format{
	".bashrc":           Shell,
	".bash_profile":     Shell,
	".zshrc":            Shell,
	".profile":          Shell,
	"Cargo.toml":        TOML,
	"Pipfile":           TOML,
	"package-lock.json": JSON,
	".prettierrc":       JSON,
	"LICENSE":           Text,
}

// FromPath maps a filename to a format by basename or extension. A miss
// returns Unknown so callers can fall back to content sniffing.
func FromPath(path string) Format {
	base := filepath.Base(path)
	if f, ok := fileMap[base]; ok {
		return f
	}
	ext := strings.ToLower(filepath.Ext(base))
	if f, ok := extMap[ext]; ok {
		return f
	}
	return Unknown
}

// Formats returns the closed detection vocabulary in display order.
func Formats() []Format {
	return []Format{JSON, TOML, YAML, Markdown, Log, Shell, HTML, Text}
}

// Parse resolves a user-supplied format name, accepting the common aliases
// the extension table already knows about.
func Parse(name string) (Format, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "":
		return Unknown, false
	case "sh", "bash", "zsh":
		return Shell, true
	case "yml":
		return YAML, true
	case "md":
		return Markdown, true
	case "htm":
		return HTML, true
	case "plain", "txt":
		return Text, true
	}
	for _, f := range Formats() {
		if n == string(f) {
			return f, true
		}
	}
	return Unknown, false
}
