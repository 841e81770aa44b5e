package handler

import (
	"path/filepath"
	"strings"
	"unicode"
)

// secureFilename reduces a client-supplied name to a safe base name made of
// ASCII letters, digits, '.', '_' and '-'. Whitespace and path separators
// become underscores; leading and trailing dots and underscores are dropped.
func secureFilename(name string) string {
	name = strings.NewReplacer("/", " ", "\\", " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")

	var b strings.Builder
	for _, r := range name {
		switch {
		case r > unicode.MaxASCII:
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "._")
}

// extension returns the lowercase extension of name without its dot.
func extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
