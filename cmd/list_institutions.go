package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cardwell/bankbook/renderer"
	"github.com/google/subcommands"
)

type listInstitutionsCmd struct{}

func (*listInstitutionsCmd) Name() string     { return "list-institutions" }
func (*listInstitutionsCmd) Synopsis() string { return "list all institutions" }
func (*listInstitutionsCmd) Usage() string {
	return `bank list-institutions

  Lists all stored institutions in storage order.
`
}

func (c *listInstitutionsCmd) SetFlags(f *flag.FlagSet) {}

func (c *listInstitutionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	manager, err := openManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	institutions, err := manager.ListInstitutions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing institutions: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Institutions(institutions))
	return subcommands.ExitSuccess
}
