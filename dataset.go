package bankbook

// Dataset is the aggregate root: everything the tool knows, and the unit
// of load and save. Mutating operations load a full dataset, change it in
// memory, and write the whole thing back.
type Dataset struct {
	Institutions []Institution
	Cards        []Card
	CreditScores []CreditScore
}

// NewDataset returns the empty default dataset.
func NewDataset() *Dataset {
	return &Dataset{
		Institutions: []Institution{},
		Cards:        []Card{},
		CreditScores: []CreditScore{},
	}
}

// Institution returns the institution with the given name
// (case-insensitive), or nil if unknown.
//
// Lookups are linear scans: datasets are small and the contract is the
// matching semantics, not the complexity.
func (d *Dataset) Institution(name string) *Institution {
	for i := range d.Institutions {
		if d.Institutions[i].Is(name) {
			return &d.Institutions[i]
		}
	}
	return nil
}

// HasInstitution reports whether an institution with that name exists,
// case-insensitively.
func (d *Dataset) HasInstitution(name string) bool {
	return d.Institution(name) != nil
}

// scoreIndex returns the position of the score stored for the given
// provider (case-insensitive), or -1 when absent.
func (d *Dataset) scoreIndex(provider string) int {
	for i := range d.CreditScores {
		if d.CreditScores[i].IsFrom(provider) {
			return i
		}
	}
	return -1
}

func (d *Dataset) MarshalJSON() ([]byte, error) {
	institutions := d.Institutions
	if institutions == nil {
		institutions = []Institution{}
	}
	cards := d.Cards
	if cards == nil {
		cards = []Card{}
	}
	scores := d.CreditScores
	if scores == nil {
		scores = []CreditScore{}
	}
	var w jsonObjectWriter
	w.Append("institutions", institutions)
	w.Append("cards", cards)
	w.Append("credit_scores", scores)
	return w.MarshalJSON()
}
