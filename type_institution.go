package bankbook

import "strings"

// Institution represents a banking entity that issues payment cards.
//
// An institution is identified by its name, compared case-insensitively.
// Institutions are append-only: they are never updated or deleted, so a
// card's reference to its issuer stays valid for the lifetime of the
// dataset.
type Institution struct {
	Name         string
	Website      string
	SupportPhone string
	Notes        string
}

// Is reports whether the institution carries the given name,
// case-insensitively.
func (i Institution) Is(name string) bool { return strings.EqualFold(i.Name, name) }

func (i Institution) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", i.Name)
	w.Optional("website", i.Website)
	w.Optional("support_phone", i.SupportPhone)
	w.Optional("notes", i.Notes)
	return w.MarshalJSON()
}
