// Package memory implements repository.AccountStore in process memory.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/amirasaad/bankcore/pkg/domain/account"
	"github.com/amirasaad/bankcore/pkg/repository"
)

// Store implements AccountStore using in-memory storage.
// A single mutex serializes every read and write.
type Store struct {
	mu      sync.Mutex
	ledgers map[account.Number]*ledger
	policy  repository.CreditPolicy
	now     func() time.Time
}

type ledger struct {
	balance float64
	history []account.HistoryEntry
	credit  *account.Credit
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to stamp history entries and credit origination.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty in-memory store.
func New(policy repository.CreditPolicy, opts ...Option) *Store {
	s := &Store{
		ledgers: make(map[account.Number]*ledger),
		policy:  policy,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ledger returns the ledger for n, creating it on first use. Callers hold s.mu.
func (s *Store) ledger(n account.Number) *ledger {
	l, ok := s.ledgers[n]
	if !ok {
		l = &ledger{}
		s.ledgers[n] = l
	}
	return l
}

// SetBalance overwrites the balance of n without recording history.
// It exists for seeding fixtures.
func (s *Store) SetBalance(n account.Number, balance float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger(n).balance = balance
}

// Balance returns the balance for n.
func (s *Store) Balance(_ context.Context, n account.Number) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.ledgers[n]; ok {
		return l.balance, nil
	}
	return 0, nil
}

// UpdateBalance applies a signed ATM delta.
func (s *Store) UpdateBalance(_ context.Context, n account.Number, amount int64) error {
	if err := account.CheckAmount(amount); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(n, float64(amount), account.NewHistoryEntry(n, amount, s.now().UTC()))
}

// OutcomeTransfer debits n and records a TransferOut entry.
func (s *Store) OutcomeTransfer(_ context.Context, n, counterparty account.Number, amount int64) error {
	if err := account.CheckMagnitude(amount); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := account.NewTransferEntry(counterparty, account.KindTransferOut, amount, s.now().UTC())
	return s.apply(n, -float64(entry.Amount), entry)
}

// IncomeTransfer credits n and records a TransferIn entry.
func (s *Store) IncomeTransfer(_ context.Context, n, counterparty account.Number, amount int64) error {
	if err := account.CheckMagnitude(amount); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := account.NewTransferEntry(counterparty, account.KindTransferIn, amount, s.now().UTC())
	return s.apply(n, float64(entry.Amount), entry)
}

// IsAllowedToGetCredit applies the store's minimal credit balance ratio.
func (s *Store) IsAllowedToGetCredit(_ context.Context, n account.Number, value int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var balance float64
	if l, ok := s.ledgers[n]; ok {
		balance = l.balance
	}
	return s.policy.Allows(balance, value), nil
}

// GrantCredit replaces the credit agreement and credits the balance.
func (s *Store) GrantCredit(_ context.Context, n account.Number, value int64, months int) error {
	if err := account.CheckMagnitude(value); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	l := s.ledger(n)
	c := account.NewCredit(value, s.policy.LoanInterestRate, months, s.now().UTC())
	l.credit = &c
	l.balance += float64(value)
	return nil
}

// CreditAgreement returns the live agreement for n.
func (s *Store) CreditAgreement(_ context.Context, n account.Number) (account.Credit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.ledgers[n]
	if !ok || l.credit == nil {
		return account.Credit{}, account.ErrNoCredit
	}
	return *l.credit, nil
}

// History returns a copy of the entries for n, oldest first.
func (s *Store) History(_ context.Context, n account.Number) ([]account.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.ledgers[n]
	if !ok {
		return []account.HistoryEntry{}, nil
	}
	return slices.Clone(l.history), nil
}

func (s *Store) apply(n account.Number, delta float64, entry account.HistoryEntry) error {
	l := s.ledger(n)
	if l.balance+delta < 0 {
		return account.ErrInsufficientFunds
	}
	l.balance += delta
	l.history = append(l.history, entry)
	return nil
}

var _ repository.AccountStore = (*Store)(nil)
