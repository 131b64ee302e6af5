// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/vshell/vshell/internal/meta"
)

const bashCompletionScript = `# bash completion for vshell
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_vshell()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "run vendors show items get diff schema validate replay completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local listing="--attrs -a --color -c --filter -f --output -o --padding --schema --sort -s --titles -t"
    local vendors="%s"

    case "$cmd" in
        run)
            local opts="--vendor -V"
            ;;
        vendors)
            local opts="$listing"
            ;;
        items)
            local opts="$listing $vendors"
            ;;
        show)
            local opts="--output -o $vendors vendor theme tabs home updates details info drawer"
            ;;
        get)
            local opts="--output -o $vendors"
            ;;
        diff)
            local opts="--color -c --exclude -x --index $vendors"
            ;;
        schema)
            local opts="--output -o"
            ;;
        validate)
            local opts="$vendors"
            ;;
        replay)
            local opts="--full --output -o --strict $vendors"
            ;;
        completion)
            local opts="bash zsh"
            ;;
        *)
            local opts=""
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi
    if [[ "$prev" == "--vendor" || "$prev" == "-V" ]]; then
        COMPREPLY=( $(compgen -W "$vendors" -- "$cur") )
        return 0
    fi

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _vshell vshell
`

const zshCompletionScript = `#compdef vshell

_vshell() {
  local -a cmds
  cmds=(
    'run:start the terminal front end'
    'vendors:list the vendor catalog'
    'show:print a vendor configuration'
    'items:list the items of a vendor'
    'get:query a vendor document by path'
    'diff:difference of two vendor documents'
    'schema:print the document JSON Schema'
    'validate:validate vendor documents'
    'replay:drive the state store from a script'
    'completion:generate shell completion script'
  )

  local -a vendors
  vendors=(%s)

  local -a listing
  listing=(
  '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '--padding[cell padding]:padding'
  '--schema[list attributes]'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'vshell commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    run)
      _arguments -C '(-V --vendor)'{-V,--vendor}'[vendor to start with]:vendor:($vendors)'
      ;;
    vendors)
      _arguments -C $listing
      ;;
    items)
      _arguments -C $listing '1:vendor:($vendors)'
      ;;
    show)
      _arguments -C \
        '(-o --output)'{-o,--output}'[output format]:format:(yaml json)' \
        '1:vendor:($vendors)' \
        '2:section:(vendor theme tabs home updates details info drawer)'
      ;;
    get)
      _arguments -C \
        '(-o --output)'{-o,--output}'[output format]:format:(text json yaml raw)' \
        '1:vendor:($vendors)' \
        '2:path'
      ;;
    diff)
      _arguments -C \
        '(-c --color)'{-c,--color}'[color changes]' \
        '(-x --exclude)'{-x,--exclude}'[keys to leave out]:keys' \
        '--index[show list indexes]' \
        '1:vendor:($vendors)' \
        '2:vendor:($vendors)'
      ;;
    schema)
      _arguments -C '(-o --output)'{-o,--output}'[output format]:format:(json yaml)'
      ;;
    validate)
      _arguments -C '*:vendor:($vendors)'
      ;;
    replay)
      _arguments -C \
        '--full[print complete states]' \
        '--strict[stop at the first failure]' \
        '(-o --output)'{-o,--output}'[output format]:format:(yaml json)' \
        '1:vendor:($vendors)' \
        '2:script:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _vshell vshell
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	ids := strings.Join(catalog(cmd).IDs(), " ")
	w := writer(cmd)

	shell := cmd.Args().First()
	if shell == "" {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprintf(w, bashCompletionScript, ids)
	case "zsh":
		fmt.Fprintf(w, zshCompletionScript, ids)
	default:
		fmt.Fprintln(cmd.Root().ErrWriter, "usage: vshell completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "vshell completion [bash|zsh]",
		Action:    completionCommandAction,
		Meta:      meta,
		MaxArgs:   1,
	}).Build()
}
