// Package account provides the business logic for a single bank account: ATM deposits and
// withdrawals, transfers, installment credit and the operation history.
//
// A Service is bound to one account number for its lifetime. It is the only component that
// decides whether a requested mutation is legal; every precondition is checked before the
// AccountStore is asked to change anything, and store errors are returned unchanged.
package account

import (
	"context"
	"iter"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/amirasaad/bankcore/pkg/domain/account"
	"github.com/amirasaad/bankcore/pkg/repository"
)

// Service provides business logic for ATM, transfer, credit and history operations on one account.
// Operations on a Service are serialized; at most one is in flight at a time.
type Service struct {
	mu     sync.Mutex
	store  repository.AccountStore
	number account.Number
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the clock used to derive elapsed credit months.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService binds a Service to the account identified by number.
// It returns account.ErrInvalidAccountNumber if number fails the checksum.
func NewService(
	store repository.AccountStore,
	number string,
	logger *slog.Logger,
	opts ...Option,
) (*Service, error) {
	n, err := account.ParseNumber(number)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		store:  store,
		number: n,
		logger: logger.With("account", n.String()),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Number returns the account number the service is bound to.
func (s *Service) Number() account.Number {
	return s.number
}

// Balance returns the current balance of the bound account.
func (s *Service) Balance(ctx context.Context) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Balance(ctx, s.number)
}

// UpdateATM deposits (amount > 0) or withdraws (amount < 0) cash.
//
// Errors:
//   - account.ErrInvalidAmount when amount is zero or its magnitude exceeds account.MaxAmount
//   - account.ErrInsufficientFunds when a withdrawal exceeds the balance
//
// On success the balance changed by exactly amount and one Deposit or Withdrawal entry was
// appended to the history.
func (s *Service) UpdateATM(ctx context.Context, amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := s.logger.With("amount", amount)
	logger.Info("UpdateATM started")
	if err := account.CheckAmount(amount); err != nil {
		logger.Error("UpdateATM failed: amount out of range")
		return err
	}
	if amount < 0 {
		if err := s.ensureFunds(ctx, -amount); err != nil {
			logger.Error("UpdateATM failed: balance check", "error", err)
			return err
		}
	}
	if err := s.store.UpdateBalance(ctx, s.number, amount); err != nil {
		logger.Error("UpdateATM failed: store error", "error", err)
		return err
	}
	logger.Info("UpdateATM successful")
	return nil
}

// UpdateTransfer records a transfer with counterparty. A negative amount sends money from the
// bound account, a positive amount receives it. Only the bound account's state is changed;
// posting the matching entry on the counterparty side is the counterparty's own concern.
//
// The counterparty number is validated first, for both directions and for self-transfers.
//
// Errors:
//   - account.ErrInvalidAccountNumber when counterparty is malformed
//   - account.ErrInvalidAmount when amount is zero or its magnitude exceeds account.MaxAmount
//   - account.ErrInsufficientFunds when an outgoing amount exceeds the balance
func (s *Service) UpdateTransfer(ctx context.Context, counterparty string, amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := s.logger.With("counterparty", counterparty, "amount", amount)
	logger.Info("UpdateTransfer started")
	cp, err := account.ParseNumber(counterparty)
	if err != nil {
		logger.Error("UpdateTransfer failed: counterparty", "error", err)
		return err
	}
	if err := account.CheckAmount(amount); err != nil {
		logger.Error("UpdateTransfer failed: amount out of range")
		return err
	}
	if amount < 0 {
		if err = s.ensureFunds(ctx, -amount); err != nil {
			logger.Error("UpdateTransfer failed: balance check", "error", err)
			return err
		}
		err = s.store.OutcomeTransfer(ctx, s.number, cp, -amount)
	} else {
		err = s.store.IncomeTransfer(ctx, s.number, cp, amount)
	}
	if err != nil {
		logger.Error("UpdateTransfer failed: store error", "error", err)
		return err
	}
	logger.Info("UpdateTransfer successful")
	return nil
}

// Credit grants an installment credit of value over months and credits the balance by value.
// Any previous credit agreement is replaced.
//
// Errors:
//   - account.ErrInvalidAmount when months is not positive or value is outside (0, account.MaxAmount]
//   - account.ErrInsufficientFunds when the balance is below the store's minimal credit ratio
func (s *Service) Credit(ctx context.Context, value int64, months int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := s.logger.With("value", value, "months", months)
	logger.Info("Credit started")
	if account.CheckMagnitude(value) != nil || months <= 0 {
		logger.Error("Credit failed: value or term out of range")
		return account.ErrInvalidAmount
	}
	allowed, err := s.store.IsAllowedToGetCredit(ctx, s.number, value)
	if err != nil {
		logger.Error("Credit failed: eligibility check", "error", err)
		return err
	}
	if !allowed {
		logger.Error("Credit failed: balance below minimal credit ratio")
		return account.ErrInsufficientFunds
	}
	if err = s.store.GrantCredit(ctx, s.number, value, months); err != nil {
		logger.Error("Credit failed: store error", "error", err)
		return err
	}
	logger.Info("Credit successful")
	return nil
}

// CreditAmountLeft returns the part of the interest charge still to be repaid:
// principal*rate - (principal*rate/term)*monthsElapsed.
func (s *Service) CreditAmountLeft(ctx context.Context) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.store.CreditAgreement(ctx, s.number)
	if err != nil {
		return 0, err
	}
	return c.AmountLeft(c.MonthsElapsed(s.now())), nil
}

// CreditMonthsLeft returns term - monthsElapsed. The result is negative once the term is exceeded.
func (s *Service) CreditMonthsLeft(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.store.CreditAgreement(ctx, s.number)
	if err != nil {
		return 0, err
	}
	return c.MonthsLeft(c.MonthsElapsed(s.now())), nil
}

// GetHistory returns the account history in store order, oldest first.
// The returned sequence is finite and may be ranged over any number of times.
func (s *Service) GetHistory(ctx context.Context) (iter.Seq[account.HistoryEntry], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.store.History(ctx, s.number)
	if err != nil {
		s.logger.Error("GetHistory failed: store error", "error", err)
		return nil, err
	}
	return slices.Values(entries), nil
}

// ensureFunds checks the bound account holds at least amount. Only the bound account's balance
// is consulted; the service has no authority over counterparty accounts.
func (s *Service) ensureFunds(ctx context.Context, amount int64) error {
	balance, err := s.store.Balance(ctx, s.number)
	if err != nil {
		return err
	}
	if balance < float64(amount) {
		return account.ErrInsufficientFunds
	}
	return nil
}
