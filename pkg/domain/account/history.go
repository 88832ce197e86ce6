package account

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind is the type of operation a history entry records.
type Kind string

// History entry kinds.
const (
	KindDeposit     Kind = "Deposit"
	KindWithdrawal  Kind = "Withdrawal"
	KindTransferOut Kind = "TransferOut"
	KindTransferIn  Kind = "TransferIn"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindDeposit, KindWithdrawal, KindTransferOut, KindTransferIn:
		return true
	}
	return false
}

// HistoryEntry is an immutable record of one completed balance-affecting operation.
// Amount is always the positive magnitude; Kind carries the direction.
type HistoryEntry struct {
	ID           uuid.UUID
	Amount       int64
	Kind         Kind
	Counterparty Number // the account itself for ATM operations
	CreatedAt    time.Time
}

// NewHistoryEntry creates an entry for a signed ATM delta against n.
func NewHistoryEntry(n Number, delta int64, created time.Time) HistoryEntry {
	kind := KindDeposit
	if delta < 0 {
		kind = KindWithdrawal
	}
	return NewHistoryEntryFromData(uuid.New(), abs(delta), kind, n, created)
}

// NewTransferEntry creates a TransferOut or TransferIn entry tagged with the counterparty.
func NewTransferEntry(counterparty Number, kind Kind, amount int64, created time.Time) HistoryEntry {
	return NewHistoryEntryFromData(uuid.New(), abs(amount), kind, counterparty, created)
}

// NewHistoryEntryFromData creates a HistoryEntry from raw data (used for store hydration or tests).
func NewHistoryEntryFromData(
	id uuid.UUID,
	amount int64,
	kind Kind,
	counterparty Number,
	created time.Time,
) HistoryEntry {
	return HistoryEntry{
		ID:           id,
		Amount:       amount,
		Kind:         kind,
		Counterparty: counterparty,
		CreatedAt:    created,
	}
}

// Signed returns the balance delta the entry stands for.
func (e HistoryEntry) Signed() int64 {
	switch e.Kind {
	case KindWithdrawal, KindTransferOut:
		return -e.Amount
	default:
		return e.Amount
	}
}

func (e HistoryEntry) String() string {
	switch e.Kind {
	case KindTransferOut:
		return fmt.Sprintf("Sent %d to %s", e.Amount, e.Counterparty)
	case KindTransferIn:
		return fmt.Sprintf("Received %d from %s", e.Amount, e.Counterparty)
	case KindWithdrawal:
		return fmt.Sprintf("Withdrew %d", e.Amount)
	case KindDeposit:
		return fmt.Sprintf("Deposited %d", e.Amount)
	}
	return "Invalid operation"
}

// abs expects v within [-MaxAmount, MaxAmount]; see CheckAmount.
func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
