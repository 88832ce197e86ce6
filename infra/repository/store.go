// Package repository implements repository.AccountStore on top of GORM.
//
// Every mutation runs in one database transaction. Debits are guarded by a conditional
// UPDATE so two processes sharing the database can never drive a balance below zero.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/amirasaad/bankcore/pkg/domain/account"
	"github.com/amirasaad/bankcore/pkg/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the GORM backed account store.
type Store struct {
	db     *gorm.DB
	policy repository.CreditPolicy
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to stamp history entries and credit origination.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a new GORM backed store.
func NewStore(db *gorm.DB, policy repository.CreditPolicy, opts ...Option) *Store {
	s := &Store{db: db, policy: policy, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Migrate creates or updates the tables used by the store.
func (s *Store) Migrate(ctx context.Context) error {
	return WrapError(func() error {
		return s.db.WithContext(ctx).AutoMigrate(&Account{}, &HistoryEntry{}, &CreditAgreement{})
	})
}

// Balance returns the balance for n. Unknown accounts have a zero balance.
func (s *Store) Balance(ctx context.Context, n account.Number) (float64, error) {
	var balance float64
	err := WrapError(func() error {
		var err error
		balance, err = balanceOf(s.db.WithContext(ctx), n)
		return err
	})
	return balance, err
}

// UpdateBalance applies a signed ATM delta and records it.
func (s *Store) UpdateBalance(ctx context.Context, n account.Number, amount int64) error {
	if err := account.CheckAmount(amount); err != nil {
		return err
	}
	entry := account.NewHistoryEntry(n, amount, s.now().UTC())
	return s.apply(ctx, n, amount, &entry)
}

// OutcomeTransfer debits n and records a TransferOut entry.
func (s *Store) OutcomeTransfer(ctx context.Context, n, counterparty account.Number, amount int64) error {
	if err := account.CheckMagnitude(amount); err != nil {
		return err
	}
	entry := account.NewTransferEntry(counterparty, account.KindTransferOut, amount, s.now().UTC())
	return s.apply(ctx, n, -entry.Amount, &entry)
}

// IncomeTransfer credits n and records a TransferIn entry.
func (s *Store) IncomeTransfer(ctx context.Context, n, counterparty account.Number, amount int64) error {
	if err := account.CheckMagnitude(amount); err != nil {
		return err
	}
	entry := account.NewTransferEntry(counterparty, account.KindTransferIn, amount, s.now().UTC())
	return s.apply(ctx, n, entry.Amount, &entry)
}

// IsAllowedToGetCredit applies the store's minimal credit balance ratio.
func (s *Store) IsAllowedToGetCredit(ctx context.Context, n account.Number, value int64) (bool, error) {
	balance, err := s.Balance(ctx, n)
	if err != nil {
		return false, err
	}
	return s.policy.Allows(balance, value), nil
}

// GrantCredit replaces the credit agreement of n and credits the balance in one transaction.
func (s *Store) GrantCredit(ctx context.Context, n account.Number, value int64, months int) error {
	if err := account.CheckMagnitude(value); err != nil {
		return err
	}
	c := account.NewCredit(value, s.policy.LoanInterestRate, months, s.now().UTC())
	return WrapError(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "account_number"}},
				UpdateAll: true,
			}).Create(mapCreditToModel(n, c)).Error
			if err != nil {
				return err
			}
			return addToBalance(tx, n, value)
		})
	})
}

// CreditAgreement returns the live agreement for n or account.ErrNoCredit.
func (s *Store) CreditAgreement(ctx context.Context, n account.Number) (account.Credit, error) {
	var m CreditAgreement
	err := s.db.WithContext(ctx).Where("account_number = ?", n.String()).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return account.Credit{}, account.ErrNoCredit
	}
	if err != nil {
		return account.Credit{}, WrapError(func() error { return err })
	}
	return mapCreditToDomain(m), nil
}

// History returns the entries for n, oldest first.
func (s *Store) History(ctx context.Context, n account.Number) ([]account.HistoryEntry, error) {
	var rows []HistoryEntry
	err := WrapError(func() error {
		return s.db.WithContext(ctx).
			Where("account_number = ?", n.String()).
			Order("id").
			Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	entries := make([]account.HistoryEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, mapHistoryToDomain(r))
	}
	return entries, nil
}

func (s *Store) apply(ctx context.Context, n account.Number, delta int64, entry *account.HistoryEntry) error {
	return WrapError(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := addToBalance(tx, n, delta); err != nil {
				return err
			}
			return tx.Create(mapHistoryToModel(n, *entry)).Error
		})
	})
}

// addToBalance makes sure the account row exists and adds delta to it.
// The update only matches when the result stays non-negative.
func addToBalance(tx *gorm.DB, n account.Number, delta int64) error {
	err := tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Account{Number: n.String(), Balance: decimal.Zero}).Error
	if err != nil {
		return err
	}
	d := decimal.NewFromInt(delta)
	result := tx.Model(&Account{}).
		Where("number = ? AND balance + ? >= 0", n.String(), d).
		Update("balance", gorm.Expr("balance + ?", d))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return account.ErrInsufficientFunds
	}
	return nil
}

func balanceOf(db *gorm.DB, n account.Number) (float64, error) {
	var acct Account
	err := db.Where("number = ?", n.String()).Take(&acct).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return acct.Balance.InexactFloat64(), nil
}

var _ repository.AccountStore = (*Store)(nil)
