package shell

import (
	"fmt"
	"strings"

	"routerswitch/internal/envcmd"
)

// Renderer serializes statements for one shell dialect
type Renderer interface {
	Name() string
	Render(stmt envcmd.Statement) string
}

// RenderAll renders every statement, one line each, in order
func RenderAll(r Renderer, stmts []envcmd.Statement) []string {
	lines := make([]string, 0, len(stmts))
	for _, s := range stmts {
		lines = append(lines, r.Render(s))
	}
	return lines
}

// ForName returns the renderer for a --shell value
func ForName(name string) (Renderer, error) {
	switch strings.ToLower(name) {
	case "", "posix", "sh", "bash", "zsh":
		return POSIX{}, nil
	case "fish":
		return Fish{}, nil
	default:
		return nil, fmt.Errorf("unsupported shell %q (expected posix or fish)", name)
	}
}

// POSIX renders `export KEY="value"` and `unset KEY`
type POSIX struct{}

func (POSIX) Name() string { return "posix" }

func (POSIX) Render(stmt envcmd.Statement) string {
	if stmt.Kind == envcmd.Unset {
		return "unset " + stmt.Key
	}
	return fmt.Sprintf("export %s=\"%s\"", stmt.Key, QuoteDouble(stmt.Value))
}

// Fish renders `set -gx KEY "value"` and `set -e KEY`
type Fish struct{}

func (Fish) Name() string { return "fish" }

func (Fish) Render(stmt envcmd.Statement) string {
	if stmt.Kind == envcmd.Unset {
		return "set -e " + stmt.Key
	}
	return fmt.Sprintf("set -gx %s \"%s\"", stmt.Key, QuoteFishDouble(stmt.Value))
}

var doubleQuoteEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
	"`", "\\`",
)

// QuoteDouble escapes the characters that stay special inside POSIX double
// quotes. Values without them are returned unchanged.
func QuoteDouble(s string) string {
	return doubleQuoteEscaper.Replace(s)
}

var fishEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
)

// QuoteFishDouble escapes the characters that stay special inside fish double quotes
func QuoteFishDouble(s string) string {
	return fishEscaper.Replace(s)
}
