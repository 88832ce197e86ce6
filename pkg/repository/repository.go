package repository

import (
	"context"

	"github.com/amirasaad/bankcore/pkg/domain/account"
)

// AccountStore holds balance, credit state and history per account number.
//
// Implementations must serialize reads and writes for a single account so that a debit never
// drives the balance negative, even when several callers act on the same account. A debit that
// would overdraw returns account.ErrInsufficientFunds. Infrastructure failures are returned
// wrapped with domain.ErrStoreUnavailable.
//
// Amounts are bounded by account.MaxAmount so that float64 balances change by exactly the
// requested amount. Signed deltas outside account.CheckAmount and magnitudes outside
// account.CheckMagnitude are rejected with account.ErrInvalidAmount before any state changes.
type AccountStore interface {
	// Balance returns the current balance. Unknown accounts have a zero balance.
	Balance(ctx context.Context, n account.Number) (float64, error)

	// UpdateBalance applies a signed ATM delta and appends a Deposit or Withdrawal entry.
	UpdateBalance(ctx context.Context, n account.Number, amount int64) error

	// OutcomeTransfer debits n by amount (a positive magnitude) and appends a TransferOut
	// entry tagged with counterparty.
	OutcomeTransfer(ctx context.Context, n, counterparty account.Number, amount int64) error

	// IncomeTransfer credits n by amount and appends a TransferIn entry tagged with counterparty.
	IncomeTransfer(ctx context.Context, n, counterparty account.Number, amount int64) error

	// IsAllowedToGetCredit reports whether balance >= value * minimal credit balance ratio.
	IsAllowedToGetCredit(ctx context.Context, n account.Number, value int64) (bool, error)

	// GrantCredit records a new agreement at the store's loan interest rate, replacing any
	// previous one, and credits the balance by value.
	GrantCredit(ctx context.Context, n account.Number, value int64, months int) error

	// CreditAgreement returns the live agreement or account.ErrNoCredit.
	CreditAgreement(ctx context.Context, n account.Number) (account.Credit, error)

	// History returns every entry recorded for n, oldest first.
	History(ctx context.Context, n account.Number) ([]account.HistoryEntry, error)
}

// CreditPolicy carries the store-wide credit parameters.
type CreditPolicy struct {
	MinimalCreditBalanceRatio float64
	LoanInterestRate          float64
}

// Allows reports whether a balance qualifies for a credit of the given value.
func (p CreditPolicy) Allows(balance float64, value int64) bool {
	return balance >= float64(value)*p.MinimalCreditBalanceRatio
}
