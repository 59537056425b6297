package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/staranto/jbctlgo/internal/meta"
	"github.com/urfave/cli/v3"
)

const bashCompletionScript = `# bash completion for jbctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_jbctl()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "version build download download_url checksum checksum_url generate_whatsnew releases action completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
  local selectors="--code --version --build --tldr"
  local common="--attrs -a --color -c --filter -f --output -o --sort -s --titles -t --tldr"

    case "$cmd" in
    version|build)
      local opts="$selectors"
            ;;
        download)
      local opts="$selectors --dest -d --skip-validation --platform -p"
            ;;
        checksum)
      local opts="$selectors --platform -p --dest -d"
            ;;
        download_url|checksum_url)
      local opts="$selectors --platform -p"
            ;;
        generate_whatsnew)
      local opts="--code --name -n --since --tldr"
            ;;
        releases)
      local opts="$common --code --since --schema"
            ;;
        action)
            local opts="--bin"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--dest" || "$prev" == "-d" ]]; then
        COMPREPLY=( $(compgen -o dirnames -- "$cur") )
        return 0
    fi

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _jbctl jbctl
`

const zshCompletionScript = `#compdef jbctl

_jbctl() {
  local -a cmds
  cmds=(
    'version:print release version'
    'build:print release build number'
    'download:download and validate artifact'
    'download_url:print artifact URL'
    'checksum:print artifact sha256 digest'
    'checksum_url:print sha256 sidecar URL'
    'generate_whatsnew:generate what'\''s-new HTML'
    'releases:release history query'
    'action:run as composite action'
    'completion:generate shell completion script'
  )

  local -a selectors
  selectors=(
  '--code[product code]:code'
  '--version[release version]:version'
  '--build[release build]:build'
  '--tldr[show tldr page]'
  )

  local -a common
  common=(
  '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--tldr[show tldr page]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'jbctl commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    version|build)
      _arguments -C $selectors
      ;;
    download)
      _arguments -C \
        $selectors \
        '(-d --dest)'{-d,--dest}'[destination]:directory:_directories' \
        '--skip-validation[skip checksum validation]' \
        '(-p --platform)'{-p,--platform}'[platform key]:platform:(linux mac windows)'
      ;;
    checksum)
      _arguments -C \
        $selectors \
        '(-d --dest)'{-d,--dest}'[sidecar destination]:directory:_directories' \
        '(-p --platform)'{-p,--platform}'[platform key]:platform:(linux mac windows)'
      ;;
    download_url|checksum_url)
      _arguments -C \
        $selectors \
        '(-p --platform)'{-p,--platform}'[platform key]:platform:(linux mac windows)'
      ;;
    generate_whatsnew)
      _arguments -C \
        '--code[product code]:code' \
        '(-n --name)'{-n,--name}'[product display name]:name' \
        '--since[version floor]:version' \
        '--tldr[show tldr page]'
      ;;
    releases)
      _arguments -C \
        $common \
        '--code[product code]:code' \
        '--since[version floor]:version' \
        '--schema[dump schema]'
      ;;
    action)
      _arguments -C '--bin[downstream binary]:file:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _jbctl jbctl jbctlgo
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			fmt.Fprint(os.Stdout, zshCompletionScript)
		} else if strings.HasSuffix(sh, "bash") {
			fmt.Fprint(os.Stdout, bashCompletionScript)
		} else {
			fmt.Fprintln(os.Stderr, "usage: jbctl completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "jbctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
