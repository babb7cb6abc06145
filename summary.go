package bankbook

import "github.com/shopspring/decimal"

// Summary is the overview report across the whole dataset.
//
// The three score aggregates are nil when no credit score is stored; they
// serialize as null so consumers can tell "no data" from a real zero.
type Summary struct {
	TotalInstitutions  int
	TotalCards         int
	CreditUtilisation  float64
	CreditScores       []CreditScore
	HighestCreditScore *int
	LowestCreditScore  *int
	AverageCreditScore *float64
}

// Summary computes the overview report: totals, aggregate utilisation and
// the min/max/mean of all stored credit scores.
func (m *Manager) Summary() (*Summary, error) {
	d, err := m.store.Load()
	if err != nil {
		return nil, err
	}

	s := &Summary{
		TotalInstitutions: len(d.Institutions),
		TotalCards:        len(d.Cards),
		CreditUtilisation: creditUtilisation(d.Cards),
		CreditScores:      d.CreditScores,
	}
	if len(d.CreditScores) == 0 {
		return s, nil
	}

	highest, lowest := d.CreditScores[0].Score, d.CreditScores[0].Score
	sum := decimal.Zero
	for _, score := range d.CreditScores {
		if score.Score > highest {
			highest = score.Score
		}
		if score.Score < lowest {
			lowest = score.Score
		}
		sum = sum.Add(decimal.NewFromInt(int64(score.Score)))
	}
	// the mean is exact, not rounded
	average := sum.Div(decimal.NewFromInt(int64(len(d.CreditScores)))).InexactFloat64()

	s.HighestCreditScore = &highest
	s.LowestCreditScore = &lowest
	s.AverageCreditScore = &average
	return s, nil
}

func (s *Summary) MarshalJSON() ([]byte, error) {
	scores := s.CreditScores
	if scores == nil {
		scores = []CreditScore{}
	}
	var w jsonObjectWriter
	w.Append("total_institutions", s.TotalInstitutions)
	w.Append("total_cards", s.TotalCards)
	w.Append("credit_utilisation", s.CreditUtilisation)
	w.Append("credit_scores", scores)
	w.Append("highest_credit_score", s.HighestCreditScore)
	w.Append("lowest_credit_score", s.LowestCreditScore)
	w.Append("average_credit_score", s.AverageCreditScore)
	return w.MarshalJSON()
}
