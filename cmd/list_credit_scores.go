package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cardwell/bankbook/renderer"
	"github.com/google/subcommands"
)

type listCreditScoresCmd struct{}

func (*listCreditScoresCmd) Name() string     { return "list-credit-scores" }
func (*listCreditScoresCmd) Synopsis() string { return "list stored credit scores" }
func (*listCreditScoresCmd) Usage() string {
	return `bank list-credit-scores

  Lists the stored credit score readings, one per provider, in storage order.
`
}

func (c *listCreditScoresCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCreditScoresCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	manager, err := openManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	scores, err := manager.ListCreditScores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing credit scores: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.CreditScores(scores))
	return subcommands.ExitSuccess
}
