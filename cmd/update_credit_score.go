package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/subcommands"
)

type updateCreditScoreCmd struct {
	date  string
	notes string
}

func (*updateCreditScoreCmd) Name() string     { return "update-credit-score" }
func (*updateCreditScoreCmd) Synopsis() string { return "add or update a credit score" }
func (*updateCreditScoreCmd) Usage() string {
	return `bank update-credit-score <provider> <score> [-date <when>] [-notes <text>]

  Stores a credit score reading:
  - provider: the credit bureau (e.g. "Experian"). One record is kept per
    provider, matched ignoring case; a new reading replaces the old one.
  - score: the integer score value.

  -date accepts an RFC3339 timestamp or a plain date and defaults to now.
`
}

func (c *updateCreditScoreCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "When the score was last updated (RFC3339 or YYYY-MM-DD)")
	f.StringVar(&c.notes, "notes", "", "Optional notes about the credit score")
}

func (c *updateCreditScoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: a provider and a score are required.")
		return subcommands.ExitUsageError
	}
	score, err := strconv.Atoi(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing score %q: %v\n", f.Arg(1), err)
		return subcommands.ExitUsageError
	}

	var when time.Time
	if c.date != "" {
		when, err = parseWhen(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -date %q: %v\n", c.date, err)
			return subcommands.ExitUsageError
		}
	}

	manager, err := openManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	record, err := manager.UpdateCreditScore(f.Arg(0), score, when, c.notes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating credit score: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Stored credit score for %s: %d\n", record.Provider, record.Score)
	return subcommands.ExitSuccess
}

// parseWhen accepts a full RFC3339 timestamp or a plain date, read as
// midnight UTC.
func parseWhen(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
