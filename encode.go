package bankbook

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// This file contains the codec between the in-memory Dataset and its
// persisted document form: a single JSON object with three named
// collections. Field names are stable across reads and writes so the file
// remains usable by other tools.
//
// To parse the document we use dedicated local structs with tag
// annotations, then convert them into the domain types with validation.
// Writing goes through the types' own MarshalJSON so fields keep a stable
// order and empty optionals are omitted.

// jinstitution is the object read from the file using the json parser.
type jinstitution struct {
	Name         string `json:"name"`
	Website      string `json:"website"`
	SupportPhone string `json:"support_phone"`
	Notes        string `json:"notes"`
}

type jcard struct {
	ID           string           `json:"id"`
	Institution  string           `json:"institution"`
	Name         string           `json:"name"`
	CardType     string           `json:"card_type"`
	CreditLimit  decimal.Decimal  `json:"credit_limit"`
	Balance      decimal.Decimal  `json:"balance"`
	InterestRate *float64         `json:"interest_rate"`
	AnnualFee    *decimal.Decimal `json:"annual_fee"`
	Rewards      string           `json:"rewards"`
	Notes        string           `json:"notes"`
	Tags         []string         `json:"tags"`
}

type jscore struct {
	Provider    string `json:"provider"`
	Score       int    `json:"score"`
	LastUpdated string `json:"last_updated"`
	Notes       string `json:"notes"`
}

type jdataset struct {
	Institutions []jinstitution `json:"institutions"`
	Cards        []jcard        `json:"cards"`
	CreditScores []jscore       `json:"credit_scores"`
}

// EncodeDataset writes the dataset as an indented JSON document.
func EncodeDataset(w io.Writer, d *Dataset) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode dataset: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("could not write dataset: %w", err)
	}
	return nil
}

// DecodeDataset reads a persisted JSON document and returns the dataset it
// describes. Collections absent from the document are treated as empty, so
// documents written by earlier versions keep loading.
func DecodeDataset(r io.Reader) (*Dataset, error) {
	var jd jdataset
	dec := json.NewDecoder(r)
	if err := dec.Decode(&jd); err != nil {
		return nil, fmt.Errorf("not a valid dataset document: %w", err)
	}

	d := NewDataset()
	for _, ji := range jd.Institutions {
		if ji.Name == "" {
			return nil, fmt.Errorf("format error: institution without a name")
		}
		d.Institutions = append(d.Institutions, Institution{
			Name:         ji.Name,
			Website:      ji.Website,
			SupportPhone: ji.SupportPhone,
			Notes:        ji.Notes,
		})
	}
	for _, jc := range jd.Cards {
		if jc.ID == "" {
			return nil, fmt.Errorf("format error: card %q has no id", jc.Name)
		}
		if jc.Institution == "" {
			return nil, fmt.Errorf("format error: card %q has no institution", jc.Name)
		}
		card := Card{
			ID:          jc.ID,
			Institution: jc.Institution,
			Name:        jc.Name,
			CardType:    jc.CardType,
			CreditLimit: Amount{value: jc.CreditLimit},
			Balance:     Amount{value: jc.Balance},
			Rewards:     jc.Rewards,
			Notes:       jc.Notes,
			Tags:        jc.Tags,
		}
		if card.Tags == nil {
			card.Tags = []string{}
		}
		if jc.InterestRate != nil {
			rate := Percent(*jc.InterestRate)
			card.InterestRate = &rate
		}
		if jc.AnnualFee != nil {
			fee := Amount{value: *jc.AnnualFee}
			card.AnnualFee = &fee
		}
		d.Cards = append(d.Cards, card)
	}
	for _, js := range jd.CreditScores {
		if js.Provider == "" {
			return nil, fmt.Errorf("format error: credit score without a provider")
		}
		score := CreditScore{
			Provider: js.Provider,
			Score:    js.Score,
			Notes:    js.Notes,
		}
		if js.LastUpdated == "" {
			// Legacy records without a timestamp get one now rather than
			// carrying a zero time around.
			score.LastUpdated = time.Now().UTC()
		} else {
			t, err := time.Parse(TimestampFormat, js.LastUpdated)
			if err != nil {
				return nil, fmt.Errorf("format error: credit score %q has invalid timestamp %q: %w", js.Provider, js.LastUpdated, err)
			}
			score.LastUpdated = t
		}
		d.CreditScores = append(d.CreditScores, score)
	}
	return d, nil
}
