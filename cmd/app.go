// Package cmd implements the CLI application to manage a banking book.
package cmd

import (
	"flag"

	"github.com/cardwell/bankbook"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok
// to use global variables for the app-wide flags.

var storeFile = flag.String("store", "", "Path to the data file. Defaults to the per-user config location.")
var displayCurrency = flag.String("currency", "USD", "3-letter currency code used to display amounts")

// Commands lists the subcommands of the bank tool. A main package
// registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&initCmd{},
	&addInstitutionCmd{},
	&listInstitutionsCmd{},
	&addCardCmd{},
	&listCardsCmd{},
	&updateCreditScoreCmd{},
	&listCreditScoresCmd{},
	&summaryCmd{},
	&topicCmd{},
}

// storePath resolves the data file path: the -store flag when given, the
// conventional per-user location otherwise.
func storePath() (string, error) {
	if *storeFile != "" {
		return *storeFile, nil
	}
	return bankbook.DefaultPath()
}

// openManager is the central function to open the banking manager over
// the configured data file.
func openManager() (*bankbook.Manager, error) {
	path, err := storePath()
	if err != nil {
		return nil, err
	}
	return bankbook.NewManager(bankbook.NewDatasetStore(path)), nil
}
