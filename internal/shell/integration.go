package shell

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"routerswitch/config/models"
	"routerswitch/config/validation"
)

const shellWrapperTemplate = `# Shell wrapper function for router-switch
# Add this to your ~/.zshrc, ~/.bashrc, or ~/.bash_profile:
#   router-switch --install >> ~/.zshrc && source ~/.zshrc

router-switch() {
    local __rs_cmd="${ROUTER_SWITCH_BIN:-{{.Binary}}}"

    if [ $# -eq 0 ]; then
        echo "Usage: router-switch <provider> [model] [options]"
        echo "  provider: AI provider name ({{join .Providers ", "}})"
        echo "  model: Optional model name"
        echo "  options: Additional options passed to router-switch"
        echo ""
        echo "Examples:"
        echo "  router-switch deepseek"
        echo "  router-switch deepseek deepseek-chat"
        echo "  router-switch --select"
        return 1
    fi

    # Informational flags print text, not statements
    case "$1" in
        -h|--help|-v|--version|-i|--install)
            command "$__rs_cmd" "$@"
            return $?
            ;;
    esac

    local args=()
    local has_provider_flag=false
    local has_model_flag=false
    local arg
    for arg in "$@"; do
        case "$arg" in
            -p|--provider|--provider=*|-s|--select)
                has_provider_flag=true
                ;;
            -m|--model|--model=*)
                has_model_flag=true
                ;;
        esac
    done

    # First positional is the provider
    if [ "$has_provider_flag" = false ]; then
        args+=(-p "$1")
        shift
    fi

    # Next positional is the model, unless it looks like a flag
    if [ "$has_model_flag" = false ] && [ $# -gt 0 ]; then
        case "$1" in
            -*) ;;
            *)
                args+=(-m "$1")
                shift
                ;;
        esac
    fi

    args+=("$@")

    local __rs_output
    __rs_output="$(command "$__rs_cmd" "${args[@]}")" || return $?
    eval "$__rs_output"
}

# Tab completion for zsh
if command -v compdef >/dev/null 2>&1; then
    _router-switch() {
        local -a providers
        providers=({{join .Providers " "}})

        if [[ $CURRENT -eq 2 ]]; then
            _describe 'providers' providers
        fi
    }
    compdef _router-switch router-switch
fi

# Tab completion for bash
if command -v complete >/dev/null 2>&1; then
    _router_switch_bash() {
        local providers="{{join .Providers " "}}"
        local cur=${COMP_WORDS[COMP_CWORD]}

        if [ $COMP_CWORD -eq 1 ]; then
            COMPREPLY=($(compgen -W "$providers" -- "$cur"))
        fi
    }
    complete -F _router_switch_bash router-switch
fi

# To enable the wrapper, reload your shell or run:
# source ~/.zshrc  # or ~/.bashrc
`

// DefaultBinary is the command the wrapper calls when $ROUTER_SWITCH_BIN is unset
const DefaultBinary = "router-switch"

// Generator renders the shell wrapper function with provider completion
type Generator struct {
	Binary    string
	Providers []string
}

// NewGenerator collects completion words from cfg. Provider names that cannot
// appear unquoted in a word list are left out and reported in skipped.
func NewGenerator(cfg *models.Config) (g *Generator, skipped []error) {
	iv := validation.NewInputValidator()
	g = &Generator{Binary: DefaultBinary, Providers: []string{}}
	for _, name := range cfg.Names() {
		if err := iv.ValidateProviderName(name); err != nil {
			skipped = append(skipped, err)
			continue
		}
		g.Providers = append(g.Providers, name)
	}
	return g, skipped
}

// Generate renders the wrapper script
func (g *Generator) Generate() (string, error) {
	tmpl, err := template.New("wrapper").
		Funcs(template.FuncMap{"join": strings.Join}).
		Parse(shellWrapperTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse wrapper template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, g); err != nil {
		return "", fmt.Errorf("failed to render wrapper: %w", err)
	}

	return buf.String(), nil
}
