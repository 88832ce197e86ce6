package account

import (
	"time"

	"github.com/google/uuid"
)

// Credit is an installment credit agreement.
//
// The interest charge is simple: Principal*Rate is computed once at origination and repaid in
// equal monthly parts over TermMonths. Granting a new credit replaces the previous agreement.
type Credit struct {
	ID           uuid.UUID
	Principal    int64
	Rate         float64
	TermMonths   int
	OriginatedAt time.Time
}

// NewCredit creates an agreement originated at the given time.
func NewCredit(principal int64, rate float64, months int, originated time.Time) Credit {
	return Credit{
		ID:           uuid.New(),
		Principal:    principal,
		Rate:         rate,
		TermMonths:   months,
		OriginatedAt: originated,
	}
}

// MonthsElapsed returns the number of whole calendar months between origination and now.
// A month counts once its day-of-month has been reached.
func (c Credit) MonthsElapsed(now time.Time) int {
	start := c.OriginatedAt.UTC()
	now = now.UTC()
	if now.Before(start) {
		return 0
	}
	y1, m1, d1 := start.Date()
	y2, m2, d2 := now.Date()
	months := (y2-y1)*12 + int(m2-m1)
	if d2 < d1 {
		months--
	}
	return months
}

// AmountLeft is the straight-line remainder of the interest charge after elapsed months:
// p*r - (p*r/term)*elapsed.
func (c Credit) AmountLeft(elapsed int) float64 {
	total := float64(c.Principal) * c.Rate
	return total - (total/float64(c.TermMonths))*float64(elapsed)
}

// MonthsLeft returns TermMonths - elapsed. It goes negative once the term is exceeded.
func (c Credit) MonthsLeft(elapsed int) int {
	return c.TermMonths - elapsed
}
