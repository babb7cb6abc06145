package renderer

import (
	"bytes"
	"fmt"

	"github.com/cardwell/bankbook"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the overview report as markdown.
func SummaryMarkdown(s *bankbook.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Bankbook Summary")
	doc.PlainText(fmt.Sprintf("%d institutions, %d cards, credit utilisation %s",
		s.TotalInstitutions, s.TotalCards, formatRatio(s.CreditUtilisation)))

	doc.H2("Credit Scores")
	if len(s.CreditScores) == 0 {
		doc.PlainText("No credit scores stored.")
		return doc.String()
	}

	rows := make([][]string, 0, len(s.CreditScores))
	for _, score := range s.CreditScores {
		rows = append(rows, []string{
			score.Provider,
			fmt.Sprintf("%d", score.Score),
			score.LastUpdated.Format("2006-01-02"),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Provider", "Score", "Updated"},
		Rows:   rows,
	})

	doc.PlainText(fmt.Sprintf("Highest %d, lowest %d, average %.6g.",
		*s.HighestCreditScore, *s.LowestCreditScore, *s.AverageCreditScore))

	return doc.String()
}
