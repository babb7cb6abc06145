package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type initCmd struct{}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "initialise or reset the data store" }
func (*initCmd) Usage() string {
	return `bank init

  Creates the data store, or resets an existing one back to empty.
  All stored institutions, cards and credit scores are discarded
  irreversibly.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path, err := storePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving store path: %v\n", err)
		return subcommands.ExitFailure
	}
	manager, err := openManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := manager.Reset(); err != nil {
		fmt.Fprintf(os.Stderr, "Error resetting store: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Initialised data store at %s\n", path)
	return subcommands.ExitSuccess
}
