package cmd

import (
	"fmt"
	"os"
)

type CompletionCmd struct {
	Bash CompletionBashCmd `cmd:"" help:"Generate bash completions"`
	Zsh  CompletionZshCmd  `cmd:"" help:"Generate zsh completions"`
	Fish CompletionFishCmd `cmd:"" help:"Generate fish completions"`
}

const completionCommands = "version list create create-batch update delete complete projects auth config completion"

type CompletionBashCmd struct{}

func (c *CompletionBashCmd) Run() error {
	script := `_todoist_completions() {
    local cur="${COMP_WORDS[COMP_CWORD]}"
    local commands="` + completionCommands + `"

    if [ $COMP_CWORD -eq 1 ]; then
        COMPREPLY=($(compgen -W "$commands" -- "$cur"))
    fi
}

complete -F _todoist_completions todoist
`
	fmt.Fprint(os.Stdout, script)

	return nil
}

type CompletionZshCmd struct{}

func (c *CompletionZshCmd) Run() error {
	script := `#compdef todoist

_todoist() {
    local -a commands
    commands=(` + completionCommands + `)

    if (( CURRENT == 2 )); then
        _describe 'command' commands
    fi
}

_todoist
`
	fmt.Fprint(os.Stdout, script)

	return nil
}

type CompletionFishCmd struct{}

func (c *CompletionFishCmd) Run() error {
	script := `complete -c todoist -f
complete -c todoist -n "__fish_use_subcommand" -a "` + completionCommands + `"
`
	fmt.Fprint(os.Stdout, script)

	return nil
}
