// Package bankbook provides a set of functions and types for keeping a
// personal record of banking institutions, the payment cards they issue,
// and periodic credit-score readings. It is designed to be local-first:
// the whole dataset lives in a single human-readable JSON document that
// users fully own and can inspect or version at will.
//
// The core functionalities include:
//   - Institution Registry: recording the banks and card issuers a user
//     deals with, with case-insensitive unique names.
//   - Card Inventory: recording payment cards with their credit limits,
//     balances, rates, fees and free-form tags, each referencing an
//     existing institution.
//   - Credit Scores: keeping the latest reading per provider, replaced
//     wholesale on every update.
//   - Summaries: computing aggregate credit utilisation and score
//     statistics over the whole dataset.
//   - Data Persistence: loading and saving the dataset as one document,
//     with no partial writes and no merge semantics.
//
// This package serves as the foundational logic for the `bank`
// command-line tool, ensuring that all operations are consistent and
// based on a single source of truth.
package bankbook
