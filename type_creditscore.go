package bankbook

import (
	"strings"
	"time"
)

// TimestampFormat is the round-trippable textual form used for timestamps
// in the persisted document. Whole-second values render without a
// fractional part; finer readings keep their full precision.
const TimestampFormat = time.RFC3339Nano

// CreditScore represents the latest score reading from one bureau.
//
// The provider acts as a case-insensitive key: storing a new reading for
// an existing provider replaces the previous record entirely, notes
// included.
type CreditScore struct {
	Provider    string
	Score       int
	LastUpdated time.Time
	Notes       string
}

// IsFrom reports whether the score was issued by the given provider,
// compared case-insensitively.
func (s CreditScore) IsFrom(provider string) bool {
	return strings.EqualFold(s.Provider, provider)
}

func (s CreditScore) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("provider", s.Provider)
	w.Append("score", s.Score)
	w.Append("last_updated", s.LastUpdated.Format(TimestampFormat))
	w.Optional("notes", s.Notes)
	return w.MarshalJSON()
}
