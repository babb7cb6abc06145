package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cardwell/bankbook"
	"github.com/google/subcommands"
)

// stringList is a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

type addCardCmd struct {
	institution string
	cardType    string
	limit       string
	balance     string
	apr         float64
	fee         string
	rewards     string
	notes       string
	tags        stringList
}

func (*addCardCmd) Name() string     { return "add-card" }
func (*addCardCmd) Synopsis() string { return "add a payment card" }
func (*addCardCmd) Usage() string {
	return `bank add-card <name> -institution <name> -type <kind> [-limit <amount>] [-balance <amount>]
              [-apr <percent>] [-fee <amount>] [-rewards <text>] [-notes <text>] [-tag <tag>]...

  Adds a payment card:
  - name: a friendly name for the card (e.g. "Freedom Unlimited").
  - institution: the issuing institution. It must already be stored.
  - type: free form card kind (e.g. credit, debit, charge).

  -tag can be passed multiple times; tag order is preserved.
`
}

func (c *addCardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.institution, "institution", "", "Institution issuing the card (required, must exist)")
	f.StringVar(&c.cardType, "type", "", "Card type, e.g. credit, debit, charge (required)")
	f.StringVar(&c.limit, "limit", "0", "Credit limit for the card")
	f.StringVar(&c.balance, "balance", "0", "Current balance on the card")
	f.Float64Var(&c.apr, "apr", -1, "Interest rate percentage (APR)")
	f.StringVar(&c.fee, "fee", "", "Annual fee charged for the card")
	f.StringVar(&c.rewards, "rewards", "", "Rewards description")
	f.StringVar(&c.notes, "notes", "", "Free form notes")
	f.Var(&c.tags, "tag", "Tag to associate with the card (can be passed multiple times)")
}

func (c *addCardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: the card name is required.")
		return subcommands.ExitUsageError
	}
	if c.institution == "" || c.cardType == "" {
		fmt.Fprintln(os.Stderr, "Error: -institution and -type flags are required.")
		return subcommands.ExitUsageError
	}

	limit, err := bankbook.ParseAmount(c.limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -limit %q: %v\n", c.limit, err)
		return subcommands.ExitUsageError
	}
	balance, err := bankbook.ParseAmount(c.balance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -balance %q: %v\n", c.balance, err)
		return subcommands.ExitUsageError
	}

	nc := bankbook.NewCard{
		Institution: c.institution,
		Name:        f.Arg(0),
		CardType:    c.cardType,
		CreditLimit: limit,
		Balance:     balance,
		Rewards:     c.rewards,
		Notes:       c.notes,
		Tags:        c.tags,
	}
	if c.apr >= 0 {
		apr := bankbook.Percent(c.apr)
		nc.InterestRate = &apr
	}
	if c.fee != "" {
		fee, err := bankbook.ParseAmount(c.fee)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -fee %q: %v\n", c.fee, err)
			return subcommands.ExitUsageError
		}
		nc.AnnualFee = &fee
	}

	manager, err := openManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	card, err := manager.AddCard(nc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding card: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added card %q for %s with id %s\n", card.Name, card.Institution, card.ID)
	return subcommands.ExitSuccess
}
