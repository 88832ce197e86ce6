package repository

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/bankcore/pkg/domain"
	"github.com/amirasaad/bankcore/pkg/domain/account"
	"github.com/amirasaad/bankcore/pkg/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const own = account.Number("12344")

var (
	policy = repository.CreditPolicy{MinimalCreditBalanceRatio: 0.15, LoanInterestRate: 3.7}
	fixed  = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return NewStore(db, policy, WithClock(func() time.Time { return fixed })), mock
}

func TestStore_Balance(t *testing.T) {
	t.Parallel()

	t.Run("existing account", func(t *testing.T) {
		t.Parallel()
		require := require.New(t)
		s, mock := newMockStore(t)
		mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE number = \$1 LIMIT \$2`).
			WithArgs(own.String(), 1).
			WillReturnRows(sqlmock.NewRows([]string{"number", "balance", "created_at", "updated_at"}).
				AddRow(own.String(), "512.0000", fixed, fixed))

		bal, err := s.Balance(context.Background(), own)
		require.NoError(err)
		require.InDelta(512.0, bal, 1e-9)
		require.NoError(mock.ExpectationsWereMet())
	})

	t.Run("unknown account is zero", func(t *testing.T) {
		t.Parallel()
		require := require.New(t)
		s, mock := newMockStore(t)
		mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE number = \$1 LIMIT \$2`).
			WithArgs(own.String(), 1).
			WillReturnRows(sqlmock.NewRows([]string{"number", "balance", "created_at", "updated_at"}))

		bal, err := s.Balance(context.Background(), own)
		require.NoError(err)
		require.Zero(bal)
	})

	t.Run("driver failure is store unavailable", func(t *testing.T) {
		t.Parallel()
		s, mock := newMockStore(t)
		mock.ExpectQuery(`SELECT \* FROM "accounts"`).
			WillReturnError(errors.New("connection refused"))

		_, err := s.Balance(context.Background(), own)
		require.ErrorIs(t, err, domain.ErrStoreUnavailable)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestStore_UpdateBalance(t *testing.T) {
	t.Parallel()

	t.Run("deposit records history", func(t *testing.T) {
		t.Parallel()
		require := require.New(t)
		s, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "accounts" (.+) VALUES (.+) ON CONFLICT DO NOTHING`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "accounts" SET "balance"=balance \+ \$1`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "history_entries" (.+) VALUES (.+) RETURNING "id"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		require.NoError(s.UpdateBalance(context.Background(), own, 50))
		require.NoError(mock.ExpectationsWereMet())
	})

	t.Run("overdraw rolls back", func(t *testing.T) {
		t.Parallel()
		require := require.New(t)
		s, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "accounts"`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`UPDATE "accounts"`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := s.UpdateBalance(context.Background(), own, -100)
		require.ErrorIs(err, account.ErrInsufficientFunds)
		require.NotErrorIs(err, domain.ErrStoreUnavailable)
		require.NoError(mock.ExpectationsWereMet())
	})

	t.Run("history insert failure rolls back", func(t *testing.T) {
		t.Parallel()
		require := require.New(t)
		s, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "accounts"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "accounts"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "history_entries"`).
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := s.UpdateBalance(context.Background(), own, 50)
		require.ErrorIs(err, domain.ErrStoreUnavailable)
		require.NoError(mock.ExpectationsWereMet())
	})
}

func TestStore_Transfers(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	s, mock := newMockStore(t)

	for range 2 {
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "accounts"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "accounts"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "history_entries"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()
	}

	require.NoError(s.OutcomeTransfer(context.Background(), own, "22", 50))
	require.NoError(s.IncomeTransfer(context.Background(), own, "40", 8))
	require.NoError(mock.ExpectationsWereMet())
}

func TestStore_RejectsOutOfRangeAmounts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, mock := newMockStore(t)

	// No expectations: nothing may reach the database.
	assert.ErrorIs(t, s.UpdateBalance(ctx, own, math.MinInt64), account.ErrInvalidAmount)
	assert.ErrorIs(t, s.UpdateBalance(ctx, own, 0), account.ErrInvalidAmount)
	assert.ErrorIs(t, s.OutcomeTransfer(ctx, own, "22", math.MinInt64), account.ErrInvalidAmount)
	assert.ErrorIs(t, s.OutcomeTransfer(ctx, own, "22", -5), account.ErrInvalidAmount)
	assert.ErrorIs(t, s.IncomeTransfer(ctx, own, "22", math.MaxInt64), account.ErrInvalidAmount)
	assert.ErrorIs(t, s.GrantCredit(ctx, own, -1, 12), account.ErrInvalidAmount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Credit(t *testing.T) {
	t.Parallel()

	t.Run("eligibility uses the balance", func(t *testing.T) {
		t.Parallel()
		require := require.New(t)
		s, mock := newMockStore(t)
		mock.ExpectQuery(`SELECT \* FROM "accounts"`).
			WillReturnRows(sqlmock.NewRows([]string{"number", "balance", "created_at", "updated_at"}).
				AddRow(own.String(), "3000", fixed, fixed))
		mock.ExpectQuery(`SELECT \* FROM "accounts"`).
			WillReturnRows(sqlmock.NewRows([]string{"number", "balance", "created_at", "updated_at"}).
				AddRow(own.String(), "2999", fixed, fixed))

		ok, err := s.IsAllowedToGetCredit(context.Background(), own, 20000)
		require.NoError(err)
		require.True(ok)
		ok, err = s.IsAllowedToGetCredit(context.Background(), own, 20000)
		require.NoError(err)
		require.False(ok)
	})

	t.Run("grant upserts the agreement and credits the balance", func(t *testing.T) {
		t.Parallel()
		require := require.New(t)
		s, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "credit_agreements" (.+) ON CONFLICT \("account_number"\) DO UPDATE`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "accounts"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "accounts"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(s.GrantCredit(context.Background(), own, 20000, 36))
		require.NoError(mock.ExpectationsWereMet())
	})

	t.Run("agreement is read back", func(t *testing.T) {
		t.Parallel()
		require := require.New(t)
		s, mock := newMockStore(t)
		id := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "credit_agreements" WHERE account_number = \$1 LIMIT \$2`).
			WithArgs(own.String(), 1).
			WillReturnRows(sqlmock.NewRows([]string{
				"account_number", "id", "principal", "rate", "term_months", "originated_at", "updated_at",
			}).AddRow(own.String(), id.String(), 20000, 3.7, 36, fixed, fixed))

		c, err := s.CreditAgreement(context.Background(), own)
		require.NoError(err)
		require.Equal(id, c.ID)
		require.Equal(int64(20000), c.Principal)
		require.InDelta(3.7, c.Rate, 1e-9)
		require.Equal(36, c.TermMonths)
		require.True(fixed.Equal(c.OriginatedAt))
	})

	t.Run("missing agreement", func(t *testing.T) {
		t.Parallel()
		s, mock := newMockStore(t)
		mock.ExpectQuery(`SELECT \* FROM "credit_agreements"`).
			WillReturnRows(sqlmock.NewRows([]string{"account_number"}))

		_, err := s.CreditAgreement(context.Background(), own)
		require.ErrorIs(t, err, account.ErrNoCredit)
	})
}

func TestStore_History(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	s, mock := newMockStore(t)
	first, second := uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "history_entries" WHERE account_number = \$1 ORDER BY id`).
		WithArgs(own.String()).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "entry_id", "account_number", "amount", "kind", "counterparty", "created_at",
		}).
			AddRow(1, first.String(), own.String(), 50, "Deposit", own.String(), fixed).
			AddRow(2, second.String(), own.String(), 20, "TransferOut", "22", fixed))

	history, err := s.History(context.Background(), own)
	require.NoError(err)
	require.Len(history, 2)
	require.Equal(first, history[0].ID)
	require.Equal(account.KindDeposit, history[0].Kind)
	require.Equal("Deposited 50", history[0].String())
	require.Equal(account.KindTransferOut, history[1].Kind)
	require.Equal("Sent 20 to 22", history[1].String())
	require.Equal(int64(-20), history[1].Signed())
}
