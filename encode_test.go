package bankbook

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeDataset_FieldOrder(t *testing.T) {
	d := NewDataset()
	d.Institutions = append(d.Institutions, Institution{Name: "Chase", Notes: "main"})
	d.Cards = append(d.Cards, Card{
		ID:          "id-1",
		Institution: "Chase",
		Name:        "Freedom",
		CardType:    "credit",
		CreditLimit: A(5000),
		Balance:     A(1250),
		Tags:        []string{"personal"},
	})
	d.CreditScores = append(d.CreditScores, CreditScore{
		Provider:    "Experian",
		Score:       720,
		LastUpdated: ts(t, "2023-05-01T12:00:00Z"),
	})

	var buf bytes.Buffer
	if err := EncodeDataset(&buf, d); err != nil {
		t.Fatalf("EncodeDataset() returned an unexpected error: %v", err)
	}
	doc := buf.String()

	// Field names are a stable contract of the persisted document.
	for _, want := range []string{
		`"institutions"`, `"cards"`, `"credit_scores"`,
		`"name": "Chase"`, `"card_type": "credit"`, `"credit_limit": 5000`,
		`"balance": 1250`, `"provider": "Experian"`,
		`"last_updated": "2023-05-01T12:00:00Z"`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document does not contain %s:\n%s", want, doc)
		}
	}

	// Top-level collections keep their order.
	if !(strings.Index(doc, `"institutions"`) < strings.Index(doc, `"cards"`) &&
		strings.Index(doc, `"cards"`) < strings.Index(doc, `"credit_scores"`)) {
		t.Errorf("top-level collections out of order:\n%s", doc)
	}
}

func TestEncodeDataset_OmitsEmptyOptionals(t *testing.T) {
	d := NewDataset()
	d.Institutions = append(d.Institutions, Institution{Name: "Chase"})
	d.Cards = append(d.Cards, Card{
		ID:          "id-1",
		Institution: "Chase",
		Name:        "Freedom",
		CardType:    "credit",
		CreditLimit: A(5000),
		Balance:     A(0),
	})

	var buf bytes.Buffer
	if err := EncodeDataset(&buf, d); err != nil {
		t.Fatal(err)
	}
	doc := buf.String()

	for _, absent := range []string{`"website"`, `"support_phone"`, `"interest_rate"`, `"annual_fee"`, `"rewards"`, `"notes"`} {
		if strings.Contains(doc, absent) {
			t.Errorf("empty optional %s must be omitted:\n%s", absent, doc)
		}
	}
	// balance is required even when zero, tags always persist as a list
	if !strings.Contains(doc, `"balance": 0`) {
		t.Errorf("zero balance must still be written:\n%s", doc)
	}
	if !strings.Contains(doc, `"tags": []`) {
		t.Errorf("tags must be written as an empty list:\n%s", doc)
	}
}

func TestEncodeDataset_ZeroAnnualFeeIsKept(t *testing.T) {
	fee := A(0)
	d := NewDataset()
	d.Institutions = append(d.Institutions, Institution{Name: "Chase"})
	d.Cards = append(d.Cards, Card{
		ID: "id-1", Institution: "Chase", Name: "Freedom", CardType: "credit",
		CreditLimit: A(5000), Balance: A(0), AnnualFee: &fee,
	})

	var buf bytes.Buffer
	if err := EncodeDataset(&buf, d); err != nil {
		t.Fatal(err)
	}
	// A known zero fee is information; only an unknown fee is omitted.
	if !strings.Contains(buf.String(), `"annual_fee": 0`) {
		t.Errorf("known zero annual fee must be written:\n%s", buf.String())
	}
}

func TestDecodeDataset_Empty(t *testing.T) {
	d, err := DecodeDataset(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("DecodeDataset() returned an unexpected error: %v", err)
	}
	if len(d.Institutions) != 0 || len(d.Cards) != 0 || len(d.CreditScores) != 0 {
		t.Errorf("empty document must decode to the empty default, got %+v", d)
	}
}

func TestDecodeDataset_DecimalStaysExact(t *testing.T) {
	doc := `{"cards": [{"id": "x", "institution": "Chase", "name": "C", "card_type": "credit",
		"credit_limit": 0.1, "balance": 0.3, "tags": []}]}`
	d, err := DecodeDataset(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	c := d.Cards[0]
	// 0.3/0.1 has no exact float form but decimal division yields exactly 3,
	// clamped to 1.
	if got := c.Utilisation(); got != 1 {
		t.Errorf("Utilisation() = %v, want 1", got)
	}
	if c.Balance.String() != "0.3" {
		t.Errorf("balance must stay exact, got %s", c.Balance)
	}
}
