package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cardwell/bankbook/renderer"
	"github.com/google/subcommands"
)

type listCardsCmd struct {
	institution string
}

func (*listCardsCmd) Name() string     { return "list-cards" }
func (*listCardsCmd) Synopsis() string { return "list stored cards" }
func (*listCardsCmd) Usage() string {
	return `bank list-cards [-institution <name>]

  Lists all stored cards in storage order, optionally filtered to one
  institution (matched ignoring case).
`
}

func (c *listCardsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.institution, "institution", "", "Only show cards from the given institution")
}

func (c *listCardsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	manager, err := openManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	cards, err := manager.ListCards(c.institution)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing cards: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Cards(cards, *displayCurrency))
	return subcommands.ExitSuccess
}
