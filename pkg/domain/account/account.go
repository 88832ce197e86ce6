// Package account holds the bank account domain: account numbers, the operation history and the
// installment credit agreement, together with the errors the account service reports.
package account

import (
	"errors"
)

var (
	// ErrInvalidAccountNumber is returned when an account number fails the checksum.
	ErrInvalidAccountNumber = errors.New("invalid account number")

	// ErrInvalidAmount is returned for a zero amount, a magnitude above MaxAmount or a
	// non-positive credit value or term.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds is returned when the balance is below what a withdrawal, outgoing
	// transfer or credit application requires.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNoCredit is returned when credit state is requested for an account without a credit.
	ErrNoCredit = errors.New("no credit agreement")
)

// MaxAmount bounds the magnitude of any single operation. Balances are float64, which holds
// every integer up to 2^53 exactly.
const MaxAmount int64 = 1 << 53

// CheckAmount validates a signed ATM or transfer amount.
func CheckAmount(amount int64) error {
	if amount == 0 || amount > MaxAmount || amount < -MaxAmount {
		return ErrInvalidAmount
	}
	return nil
}

// CheckMagnitude validates an unsigned amount: a transfer magnitude or a credit value.
func CheckMagnitude(amount int64) error {
	if amount <= 0 || amount > MaxAmount {
		return ErrInvalidAmount
	}
	return nil
}

// Number identifies a bank account.
//
// Invariants:
//   - A number is well formed only if its last character is an even decimal digit.
type Number string

// ParseNumber returns s as a Number, or ErrInvalidAccountNumber when it is malformed.
func ParseNumber(s string) (Number, error) {
	n := Number(s)
	if !n.Valid() {
		return "", ErrInvalidAccountNumber
	}
	return n, nil
}

// Valid reports whether the last digit of n is even.
func (n Number) Valid() bool {
	if n == "" {
		return false
	}
	last := n[len(n)-1]
	if last < '0' || last > '9' {
		return false
	}
	return (last-'0')%2 == 0
}

func (n Number) String() string {
	return string(n)
}
