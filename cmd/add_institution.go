package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cardwell/bankbook"
	"github.com/google/subcommands"
)

type addInstitutionCmd struct {
	website string
	phone   string
	notes   string
}

func (*addInstitutionCmd) Name() string     { return "add-institution" }
func (*addInstitutionCmd) Synopsis() string { return "add a new banking institution" }
func (*addInstitutionCmd) Usage() string {
	return `bank add-institution <name> [-website <url>] [-phone <number>] [-notes <text>]

  Adds a new banking institution:
  - name: the institution's name (e.g. "Chase"). Must be unique, ignoring case.

  Cards always reference an institution, so add the institution before its cards.
`
}

func (c *addInstitutionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.website, "website", "", "Website for the institution")
	f.StringVar(&c.phone, "phone", "", "Support phone number for the institution")
	f.StringVar(&c.notes, "notes", "", "Free form notes")
}

func (c *addInstitutionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: the institution name is required.")
		return subcommands.ExitUsageError
	}

	manager, err := openManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	inst, err := manager.AddInstitution(bankbook.Institution{
		Name:         f.Arg(0),
		Website:      c.website,
		SupportPhone: c.phone,
		Notes:        c.notes,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding institution: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added institution %q\n", inst.Name)
	return subcommands.ExitSuccess
}
