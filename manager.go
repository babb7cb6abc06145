package bankbook

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DuplicateInstitutionError is returned when adding an institution whose
// name (case-insensitive) is already taken.
type DuplicateInstitutionError struct {
	Name string
}

func (e *DuplicateInstitutionError) Error() string {
	return fmt.Sprintf("institution %q already exists", e.Name)
}

// UnknownInstitutionError is returned when adding a card that references
// an institution that does not exist.
type UnknownInstitutionError struct {
	Name string
}

func (e *UnknownInstitutionError) Error() string {
	return fmt.Sprintf("institution %q does not exist, create it before adding cards", e.Name)
}

// Manager is the high level API over the data store. Every call is a
// stateless request/response: it loads the whole dataset, transforms it in
// memory, and (for writes) saves the whole dataset back. The only state is
// the persisted document.
type Manager struct {
	store Store
}

// NewManager returns a manager operating against the given store.
func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// ListInstitutions returns all institutions in storage order.
func (m *Manager) ListInstitutions() ([]Institution, error) {
	d, err := m.store.Load()
	if err != nil {
		return nil, err
	}
	return d.Institutions, nil
}

// AddInstitution records a new institution and returns it unchanged. It
// fails with a *DuplicateInstitutionError when an institution with the
// same name (any case) is already stored.
func (m *Manager) AddInstitution(inst Institution) (Institution, error) {
	if strings.TrimSpace(inst.Name) == "" {
		return Institution{}, fmt.Errorf("institution name is required")
	}
	d, err := m.store.Load()
	if err != nil {
		return Institution{}, err
	}
	if d.HasInstitution(inst.Name) {
		return Institution{}, &DuplicateInstitutionError{Name: inst.Name}
	}
	d.Institutions = append(d.Institutions, inst)
	if err := m.store.Save(d); err != nil {
		return Institution{}, err
	}
	return inst, nil
}

// ListCards returns all cards in storage order. A non-empty institution
// filter keeps only cards issued by that institution, matched
// case-insensitively.
func (m *Manager) ListCards(institution string) ([]Card, error) {
	d, err := m.store.Load()
	if err != nil {
		return nil, err
	}
	if institution == "" {
		return d.Cards, nil
	}
	cards := make([]Card, 0, len(d.Cards))
	for _, c := range d.Cards {
		if c.IssuedBy(institution) {
			cards = append(cards, c)
		}
	}
	return cards, nil
}

// NewCard describes a card to create. Institution, Name and CardType are
// required; the rest defaults to absent.
type NewCard struct {
	Institution  string
	Name         string
	CardType     string
	CreditLimit  Amount
	Balance      Amount
	InterestRate *Percent
	AnnualFee    *Amount
	Rewards      string
	Notes        string
	Tags         []string
}

// AddCard records a new card and returns it with its freshly generated
// unique id. It fails with an *UnknownInstitutionError when the named
// institution does not exist (case-insensitive).
func (m *Manager) AddCard(nc NewCard) (Card, error) {
	if nc.CreditLimit.IsNegative() {
		return Card{}, fmt.Errorf("credit limit cannot be negative: %s", nc.CreditLimit)
	}
	d, err := m.store.Load()
	if err != nil {
		return Card{}, err
	}
	if !d.HasInstitution(nc.Institution) {
		return Card{}, &UnknownInstitutionError{Name: nc.Institution}
	}

	tags := make([]string, 0, len(nc.Tags))
	tags = append(tags, nc.Tags...)
	card := Card{
		ID:           uuid.NewString(),
		Institution:  nc.Institution,
		Name:         nc.Name,
		CardType:     nc.CardType,
		CreditLimit:  nc.CreditLimit,
		Balance:      nc.Balance,
		InterestRate: nc.InterestRate,
		AnnualFee:    nc.AnnualFee,
		Rewards:      nc.Rewards,
		Notes:        nc.Notes,
		Tags:         tags,
	}
	d.Cards = append(d.Cards, card)
	if err := m.store.Save(d); err != nil {
		return Card{}, err
	}
	return card, nil
}

// ListCreditScores returns all stored scores in storage order.
func (m *Manager) ListCreditScores() ([]CreditScore, error) {
	d, err := m.store.Load()
	if err != nil {
		return nil, err
	}
	return d.CreditScores, nil
}

// UpdateCreditScore stores a score reading for a provider. When a record
// for that provider (case-insensitive) already exists it is replaced in
// place, keeping its storage position; the old record is discarded
// entirely, notes included. A zero lastUpdated defaults to the current
// time in UTC.
func (m *Manager) UpdateCreditScore(provider string, score int, lastUpdated time.Time, notes string) (CreditScore, error) {
	if strings.TrimSpace(provider) == "" {
		return CreditScore{}, fmt.Errorf("credit score provider is required")
	}
	if lastUpdated.IsZero() {
		lastUpdated = time.Now().UTC()
	}
	d, err := m.store.Load()
	if err != nil {
		return CreditScore{}, err
	}
	record := CreditScore{
		Provider:    provider,
		Score:       score,
		LastUpdated: lastUpdated,
		Notes:       notes,
	}
	if i := d.scoreIndex(provider); i >= 0 {
		d.CreditScores[i] = record
	} else {
		d.CreditScores = append(d.CreditScores, record)
	}
	if err := m.store.Save(d); err != nil {
		return CreditScore{}, err
	}
	return record, nil
}

// CreditUtilisation returns the aggregate balance-to-limit ratio over the
// whole card inventory, clamped to [0,1].
//
// The balance sum runs over all cards while the limit sum only counts
// cards with a positive limit: a zero-limit card still contributes its
// balance to the numerator. That asymmetry is the historical behaviour of
// the data files and is kept as is.
func (m *Manager) CreditUtilisation() (float64, error) {
	d, err := m.store.Load()
	if err != nil {
		return 0, err
	}
	return creditUtilisation(d.Cards), nil
}

func creditUtilisation(cards []Card) float64 {
	totalBalance := A(0)
	totalLimit := A(0)
	for _, c := range cards {
		totalBalance = totalBalance.Add(c.Balance)
		if c.CreditLimit.IsPositive() {
			totalLimit = totalLimit.Add(c.CreditLimit)
		}
	}
	if !totalLimit.IsPositive() {
		return 0
	}
	return clampRatio(totalBalance.Div(totalLimit).AsFloat())
}

// Reset sets the store back to the empty default, discarding all data
// irreversibly.
func (m *Manager) Reset() error {
	return m.store.Reset()
}
