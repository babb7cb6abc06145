package bankbook

import "strings"

// Card represents a payment card issued by an institution.
//
// Cards are immutable once created. The Institution field names an
// institution that existed at creation time; institutions cannot be
// deleted so the reference is not re-validated afterwards.
type Card struct {
	ID           string
	Institution  string
	Name         string
	CardType     string
	CreditLimit  Amount
	Balance      Amount
	InterestRate *Percent // APR, nil when unknown
	AnnualFee    *Amount  // nil when unknown, zero is a real fee
	Rewards      string
	Notes        string
	Tags         []string
}

// IssuedBy reports whether the card was issued by the given institution,
// compared case-insensitively.
func (c Card) IssuedBy(institution string) bool {
	return strings.EqualFold(c.Institution, institution)
}

// Utilisation returns the card's balance-to-limit ratio clamped to [0,1].
// A card with no credit limit has a utilisation of 0 by convention.
func (c Card) Utilisation() float64 {
	if c.CreditLimit.IsZero() {
		return 0
	}
	return clampRatio(c.Balance.Div(c.CreditLimit).AsFloat())
}

func clampRatio(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

func (c Card) MarshalJSON() ([]byte, error) {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	var w jsonObjectWriter
	w.Append("id", c.ID)
	w.Append("institution", c.Institution)
	w.Append("name", c.Name)
	w.Append("card_type", c.CardType)
	w.Append("credit_limit", c.CreditLimit)
	w.Append("balance", c.Balance)
	w.Optional("interest_rate", c.InterestRate)
	w.Optional("annual_fee", c.AnnualFee)
	w.Optional("rewards", c.Rewards)
	w.Optional("notes", c.Notes)
	w.Append("tags", tags)
	return w.MarshalJSON()
}
