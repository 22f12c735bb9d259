package shell

import (
	"reflect"
	"testing"

	"routerswitch/internal/envcmd"
)

func TestPOSIXRender(t *testing.T) {
	tests := []struct {
		name string
		stmt envcmd.Statement
		want string
	}{
		{"unset", envcmd.UnsetVar("ANTHROPIC_MODEL"), "unset ANTHROPIC_MODEL"},
		{"plain value", envcmd.SetVar("ANTHROPIC_BASE_URL", "https://x"), `export ANTHROPIC_BASE_URL="https://x"`},
		{"empty value", envcmd.SetVar("EMPTY", ""), `export EMPTY=""`},
		{"spaces need no escaping", envcmd.SetVar("A", "two words"), `export A="two words"`},
		{"double quote", envcmd.SetVar("A", `say "hi"`), `export A="say \"hi\""`},
		{"dollar", envcmd.SetVar("A", "$HOME"), `export A="\$HOME"`},
		{"backtick", envcmd.SetVar("A", "`id`"), "export A=\"\\`id\\`\""},
		{"backslash", envcmd.SetVar("A", `C:\path`), `export A="C:\\path"`},
		{"single quote untouched", envcmd.SetVar("A", "it's"), `export A="it's"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (POSIX{}).Render(tt.stmt); got != tt.want {
				t.Errorf("Render() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFishRender(t *testing.T) {
	tests := []struct {
		name string
		stmt envcmd.Statement
		want string
	}{
		{"unset", envcmd.UnsetVar("ANTHROPIC_MODEL"), "set -e ANTHROPIC_MODEL"},
		{"plain value", envcmd.SetVar("ANTHROPIC_BASE_URL", "https://x"), `set -gx ANTHROPIC_BASE_URL "https://x"`},
		{"dollar and quote", envcmd.SetVar("A", `$x"`), `set -gx A "\$x\""`},
		{"backtick is literal in fish", envcmd.SetVar("A", "`id`"), "set -gx A \"`id`\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Fish{}).Render(tt.stmt); got != tt.want {
				t.Errorf("Render() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRenderAll(t *testing.T) {
	stmts := []envcmd.Statement{
		envcmd.UnsetVar("A"),
		envcmd.SetVar("B", "1"),
	}
	want := []string{"unset A", `export B="1"`}
	if got := RenderAll(POSIX{}, stmts); !reflect.DeepEqual(got, want) {
		t.Errorf("RenderAll() = %v, want %v", got, want)
	}
	if got := RenderAll(POSIX{}, nil); len(got) != 0 {
		t.Errorf("RenderAll(nil) = %v, want empty", got)
	}
}

func TestForName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantErr  bool
	}{
		{"default", "", "posix", false},
		{"bash", "bash", "posix", false},
		{"zsh upper", "ZSH", "posix", false},
		{"fish", "fish", "fish", false},
		{"powershell", "pwsh", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ForName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ForName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && r.Name() != tt.wantName {
				t.Errorf("ForName(%q).Name() = %q, want %q", tt.input, r.Name(), tt.wantName)
			}
		})
	}
}

func TestQuoteDoubleUnchangedForSafeValues(t *testing.T) {
	for _, v := range []string{"https://open.bigmodel.cn/api/anthropic", "sk-abc_123", "glm-4.6", "600000", "a b c"} {
		if got := QuoteDouble(v); got != v {
			t.Errorf("QuoteDouble(%q) = %q, want unchanged", v, got)
		}
	}
}
