// Package renderer turns bankbook records and reports into markdown for
// terminal display.
package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cardwell/bankbook"
	md "github.com/nao1215/markdown"
)

// Institutions renders the institution registry as a markdown table.
func Institutions(institutions []bankbook.Institution) string {
	if len(institutions) == 0 {
		return "No institutions stored.\n"
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Institutions")

	rows := make([][]string, 0, len(institutions))
	for _, inst := range institutions {
		rows = append(rows, []string{inst.Name, inst.Website, inst.SupportPhone, inst.Notes})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Website", "Support Phone", "Notes"},
		Rows:   rows,
	})

	return doc.String()
}

// Cards renders the card inventory as a markdown table. Amounts are
// formatted in the given display currency.
func Cards(cards []bankbook.Card, currency string) string {
	if len(cards) == 0 {
		return "No cards stored.\n"
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cards")

	rows := make([][]string, 0, len(cards))
	for _, c := range cards {
		apr := "-"
		if c.InterestRate != nil {
			apr = c.InterestRate.String()
		}
		fee := "-"
		if c.AnnualFee != nil {
			fee = c.AnnualFee.Display(currency)
		}
		rows = append(rows, []string{
			c.Name,
			c.CardType,
			c.Institution,
			c.CreditLimit.Display(currency),
			c.Balance.Display(currency),
			formatRatio(c.Utilisation()),
			apr,
			fee,
			strings.Join(c.Tags, ", "),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Type", "Institution", "Limit", "Balance", "Utilisation", "APR", "Annual Fee", "Tags"},
		Rows:   rows,
	})

	return doc.String()
}

// CreditScores renders the stored score readings as a markdown table.
func CreditScores(scores []bankbook.CreditScore) string {
	if len(scores) == 0 {
		return "No credit scores stored.\n"
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Credit Scores")

	rows := make([][]string, 0, len(scores))
	for _, s := range scores {
		rows = append(rows, []string{
			s.Provider,
			fmt.Sprintf("%d", s.Score),
			s.LastUpdated.Format("2006-01-02"),
			s.Notes,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Provider", "Score", "Updated", "Notes"},
		Rows:   rows,
	})

	return doc.String()
}

// formatRatio renders a [0,1] ratio as a percentage.
func formatRatio(r float64) string {
	return bankbook.Percent(r * 100).String()
}
