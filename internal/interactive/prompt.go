package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/c-bata/go-prompt"
)

// proteinArgCommands take a protein id as argument and get id completion.
var proteinArgCommands = map[string]bool{
	"neighbors": true, "degree": true, "path": true, "subnet": true, "attr": true, "profile": true,
}

// Completer suggests command names for the first word and protein ids for
// the arguments of commands that take them.
func (s *Session) Completer(d prompt.Document) []prompt.Suggest {
	words := strings.Fields(d.TextBeforeCursor())
	if len(words) == 0 {
		return []prompt.Suggest{}
	}

	current := d.GetWordBeforeCursor()

	if len(words) == 1 && current != "" {
		suggestions := make([]prompt.Suggest, 0, len(commands))
		for _, c := range commands {
			suggestions = append(suggestions, prompt.Suggest{Text: c.name, Description: c.usage + " - " + c.description})
		}

		return prompt.FilterHasPrefix(suggestions, current, true)
	}

	if !proteinArgCommands[strings.ToLower(words[0])] {
		return []prompt.Suggest{}
	}

	nodes := s.Nodes()
	suggestions := make([]prompt.Suggest, 0, len(nodes))
	for _, id := range nodes {
		suggestions = append(suggestions, prompt.Suggest{Text: id})
	}

	return prompt.FilterHasPrefix(suggestions, current, false)
}

// Run starts the prompt loop and returns when the user exits.
func (s *Session) Run(ctx context.Context, out io.Writer) {
	fmt.Fprintln(out, "Interactive protein network analysis. Type help for commands.")
	fmt.Fprintln(out, "Please use `exit` or `Ctrl-D` to leave.")

	p := prompt.New(
		func(line string) {
			output, _ := s.Execute(ctx, line)
			if output != "" {
				fmt.Fprintln(out, output)
			}
		},
		s.Completer,
		prompt.OptionPrefix("mcl1> "),
		prompt.OptionTitle("interactome"),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			return breakline && isQuit(in)
		}),
		prompt.OptionPrefixTextColor(prompt.Yellow),
		prompt.OptionSuggestionTextColor(prompt.Yellow),
		prompt.OptionSuggestionBGColor(prompt.Black),
		prompt.OptionDescriptionBGColor(prompt.Black),
		prompt.OptionDescriptionTextColor(prompt.Yellow),
		prompt.OptionScrollbarBGColor(prompt.Black),
	)
	p.Run()

	fmt.Fprintln(out, "Bye!")
}

func isQuit(line string) bool {
	c, ok := lookup(strings.ToLower(strings.TrimSpace(line)))

	return ok && c.quit
}
