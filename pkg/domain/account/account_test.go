package account_test

import (
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"testing"
	"time"

	"github.com/amirasaad/bankcore/pkg/domain/account"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)

	exitVal := m.Run()
	os.Exit(exitVal)
}

func TestNumberValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		number string
		valid  bool
	}{
		{name: "even last digit", number: "12344", valid: true},
		{name: "zero last digit", number: "10", valid: true},
		{name: "single even digit", number: "8", valid: true},
		{name: "odd last digit", number: "12345", valid: false},
		{name: "odd single digit", number: "1", valid: false},
		{name: "empty", number: "", valid: false},
		{name: "non-digit suffix", number: "1234a", valid: false},
		{name: "letters then even digit", number: "PL61-0002", valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.valid, account.Number(tt.number).Valid())

			n, err := account.ParseNumber(tt.number)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.number, n.String())
			} else {
				assert.ErrorIs(t, err, account.ErrInvalidAccountNumber)
				assert.Empty(t, n)
			}
		})
	}
}

func TestNumberValid_EveryLastDigit(t *testing.T) {
	t.Parallel()
	for d := '0'; d <= '9'; d++ {
		n := account.Number("4711" + string(d))
		assert.Equal(t, (d-'0')%2 == 0, n.Valid(), "last digit %c", d)
	}
}

func TestCheckAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		amount    int64
		signed    bool
		magnitude bool
	}{
		{"zero", 0, false, false},
		{"one", 1, true, true},
		{"minus one", -1, true, false},
		{"max amount", account.MaxAmount, true, true},
		{"minus max amount", -account.MaxAmount, true, false},
		{"above max amount", account.MaxAmount + 1, false, false},
		{"below minus max amount", -account.MaxAmount - 1, false, false},
		{"max int64", math.MaxInt64, false, false},
		{"min int64", math.MinInt64, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.signed {
				assert.NoError(t, account.CheckAmount(tt.amount))
			} else {
				assert.ErrorIs(t, account.CheckAmount(tt.amount), account.ErrInvalidAmount)
			}
			if tt.magnitude {
				assert.NoError(t, account.CheckMagnitude(tt.amount))
			} else {
				assert.ErrorIs(t, account.CheckMagnitude(tt.amount), account.ErrInvalidAmount)
			}
		})
	}
}

func TestNewHistoryEntry(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()

	t.Run("positive delta is a deposit", func(t *testing.T) {
		e := account.NewHistoryEntry("12344", 50, now)
		assert.Equal(t, account.KindDeposit, e.Kind)
		assert.Equal(t, int64(50), e.Amount)
		assert.Equal(t, account.Number("12344"), e.Counterparty)
		assert.NotEqual(t, uuid.Nil, e.ID)
		assert.Equal(t, int64(50), e.Signed())
	})

	t.Run("negative delta is a withdrawal", func(t *testing.T) {
		e := account.NewHistoryEntry("12344", -30, now)
		assert.Equal(t, account.KindWithdrawal, e.Kind)
		assert.Equal(t, int64(30), e.Amount)
		assert.Equal(t, int64(-30), e.Signed())
	})

	t.Run("transfer out keeps magnitude", func(t *testing.T) {
		e := account.NewTransferEntry("22", account.KindTransferOut, -50, now)
		assert.Equal(t, int64(50), e.Amount)
		assert.Equal(t, int64(-50), e.Signed())
		assert.Equal(t, account.Number("22"), e.Counterparty)
	})
}

func TestHistoryEntryString(t *testing.T) {
	t.Parallel()
	now := time.Now()
	id := uuid.New()

	tests := []struct {
		kind account.Kind
		want string
	}{
		{account.KindDeposit, "Deposited 50"},
		{account.KindWithdrawal, "Withdrew 50"},
		{account.KindTransferOut, "Sent 50 to 12344"},
		{account.KindTransferIn, "Received 50 from 12344"},
		{account.Kind("Bogus"), "Invalid operation"},
	}
	for _, tt := range tests {
		e := account.NewHistoryEntryFromData(id, 50, tt.kind, "12344", now)
		assert.Equal(t, tt.want, e.String())
		assert.Equal(t, tt.kind != "Bogus", tt.kind.Valid())
	}
}

func TestCreditAmortization(t *testing.T) {
	t.Parallel()
	c := account.NewCredit(20000, 3.7, 36, time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC))

	principal, rate, term := 20000.0, 3.7, 36.0
	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, principal*rate-(principal*rate/term)*5, c.AmountLeft(5))
	assert.Equal(t, principal*rate, c.AmountLeft(0))
	assert.InDelta(t, 0.0, c.AmountLeft(36), 1e-9)
	assert.Equal(t, 31, c.MonthsLeft(5))
	assert.Equal(t, -4, c.MonthsLeft(40), "months left is not clamped")
}

func TestCreditMonthsElapsed(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC)
	c := account.NewCredit(1000, 1, 12, start)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"same instant", start, 0},
		{"before origination", start.AddDate(0, -1, 0), 0},
		{"one day short of a month", time.Date(2026, time.February, 14, 9, 0, 0, 0, time.UTC), 0},
		{"exactly one month", time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC), 1},
		{"five months", time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC), 5},
		{"across a year", time.Date(2027, time.March, 1, 0, 0, 0, 0, time.UTC), 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.MonthsElapsed(tt.now))
		})
	}
}
