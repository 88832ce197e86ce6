package repository

import (
	"time"

	"github.com/amirasaad/bankcore/pkg/domain/account"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents an account balance record in the database.
type Account struct {
	Number    string          `gorm:"primaryKey;type:varchar(34)"`
	Balance   decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HistoryEntry represents one persisted balance-affecting operation.
// ID is a serial so entries read back in insertion order.
type HistoryEntry struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	EntryID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	AccountNumber string    `gorm:"type:varchar(34);index;not null"`
	Amount        int64     `gorm:"not null"`
	Kind          string    `gorm:"type:varchar(16);not null"`
	Counterparty  string    `gorm:"type:varchar(34);not null"`
	CreatedAt     time.Time
}

// CreditAgreement represents the single live credit of an account.
type CreditAgreement struct {
	AccountNumber string    `gorm:"primaryKey;type:varchar(34)"`
	ID            uuid.UUID `gorm:"type:uuid;not null"`
	Principal     int64     `gorm:"not null"`
	Rate          float64   `gorm:"not null"`
	TermMonths    int       `gorm:"not null"`
	OriginatedAt  time.Time `gorm:"not null"`
	UpdatedAt     time.Time
}

func mapHistoryToModel(n account.Number, e account.HistoryEntry) *HistoryEntry {
	return &HistoryEntry{
		EntryID:       e.ID,
		AccountNumber: n.String(),
		Amount:        e.Amount,
		Kind:          string(e.Kind),
		Counterparty:  e.Counterparty.String(),
		CreatedAt:     e.CreatedAt,
	}
}

func mapHistoryToDomain(m HistoryEntry) account.HistoryEntry {
	return account.NewHistoryEntryFromData(
		m.EntryID,
		m.Amount,
		account.Kind(m.Kind),
		account.Number(m.Counterparty),
		m.CreatedAt.UTC(),
	)
}

func mapCreditToModel(n account.Number, c account.Credit) *CreditAgreement {
	return &CreditAgreement{
		AccountNumber: n.String(),
		ID:            c.ID,
		Principal:     c.Principal,
		Rate:          c.Rate,
		TermMonths:    c.TermMonths,
		OriginatedAt:  c.OriginatedAt,
	}
}

func mapCreditToDomain(m CreditAgreement) account.Credit {
	return account.Credit{
		ID:           m.ID,
		Principal:    m.Principal,
		Rate:         m.Rate,
		TermMonths:   m.TermMonths,
		OriginatedAt: m.OriginatedAt.UTC(),
	}
}
