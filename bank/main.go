package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/cardwell/bankbook/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: when invoked by the shell's completion hook this
	// prints candidates and exits, otherwise it is a no-op.
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	completion := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"store":    predict.Files("*.json"),
			"currency": predict.Nothing,
		},
	}
	completion.Complete("bank")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
