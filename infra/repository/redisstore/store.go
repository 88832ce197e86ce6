// Package redisstore implements repository.AccountStore on Redis.
//
// Each account owns three keys under the configured prefix: the balance as a decimal string,
// the history as a list of JSON records and the live credit agreement as JSON. Mutations run
// as optimistic WATCH/MULTI transactions on the balance key and are retried on conflict.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/bankcore/pkg/domain"
	"github.com/amirasaad/bankcore/pkg/domain/account"
	"github.com/amirasaad/bankcore/pkg/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// DefaultPrefix is prepended to every key written by the store.
const DefaultPrefix = "bankcore:"

// ErrContention is returned when a transaction lost the WATCH race too many times.
var ErrContention = errors.New("redis store: too many concurrent writers")

// Store is the Redis backed account store.
type Store struct {
	client     redis.UniversalClient
	policy     repository.CreditPolicy
	prefix     string
	maxRetries int
	now        func() time.Time
	logger     *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithMaxRetries bounds the optimistic transaction retries.
func WithMaxRetries(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxRetries = n
		}
	}
}

// WithClock sets the clock used to stamp history entries and credit origination.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a store on top of an existing client.
func New(client redis.UniversalClient, policy repository.CreditPolicy, opts ...Option) *Store {
	s := &Store{
		client:     client,
		policy:     policy,
		prefix:     DefaultPrefix,
		maxRetries: 10,
		now:        time.Now,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "redis-store")
	return s
}

// NewFromURL parses a redis:// URL, checks the connection and creates a store.
func NewFromURL(ctx context.Context, url string, policy repository.CreditPolicy, opts ...Option) (*Store, error) {
	if url == "" {
		return nil, fmt.Errorf("redis store: url is required")
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis store: invalid URL: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: redis store: connection failed: %w", domain.ErrStoreUnavailable, err)
	}
	return New(client, policy, opts...), nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

type historyRecord struct {
	ID           uuid.UUID `json:"id"`
	Amount       int64     `json:"amount"`
	Kind         string    `json:"kind"`
	Counterparty string    `json:"counterparty"`
	CreatedAt    time.Time `json:"created_at"`
}

type creditRecord struct {
	ID           uuid.UUID `json:"id"`
	Principal    int64     `json:"principal"`
	Rate         float64   `json:"rate"`
	TermMonths   int       `json:"term_months"`
	OriginatedAt time.Time `json:"originated_at"`
}

func (s *Store) key(n account.Number, field string) string {
	return s.prefix + "account:" + n.String() + ":" + field
}

// Balance returns the balance for n. Unknown accounts have a zero balance.
func (s *Store) Balance(ctx context.Context, n account.Number) (float64, error) {
	bal, err := readBalance(ctx, s.client, s.key(n, "balance"))
	if err != nil {
		return 0, s.wrap("balance", err)
	}
	return bal.InexactFloat64(), nil
}

// UpdateBalance applies a signed ATM delta and records it.
func (s *Store) UpdateBalance(ctx context.Context, n account.Number, amount int64) error {
	if err := account.CheckAmount(amount); err != nil {
		return err
	}
	entry := account.NewHistoryEntry(n, amount, s.now().UTC())
	return s.apply(ctx, n, amount, &entry, nil)
}

// OutcomeTransfer debits n and records a TransferOut entry.
func (s *Store) OutcomeTransfer(ctx context.Context, n, counterparty account.Number, amount int64) error {
	if err := account.CheckMagnitude(amount); err != nil {
		return err
	}
	entry := account.NewTransferEntry(counterparty, account.KindTransferOut, amount, s.now().UTC())
	return s.apply(ctx, n, -entry.Amount, &entry, nil)
}

// IncomeTransfer credits n and records a TransferIn entry.
func (s *Store) IncomeTransfer(ctx context.Context, n, counterparty account.Number, amount int64) error {
	if err := account.CheckMagnitude(amount); err != nil {
		return err
	}
	entry := account.NewTransferEntry(counterparty, account.KindTransferIn, amount, s.now().UTC())
	return s.apply(ctx, n, entry.Amount, &entry, nil)
}

// IsAllowedToGetCredit applies the store's minimal credit balance ratio.
func (s *Store) IsAllowedToGetCredit(ctx context.Context, n account.Number, value int64) (bool, error) {
	balance, err := s.Balance(ctx, n)
	if err != nil {
		return false, err
	}
	return s.policy.Allows(balance, value), nil
}

// GrantCredit replaces the credit agreement of n and credits the balance atomically.
func (s *Store) GrantCredit(ctx context.Context, n account.Number, value int64, months int) error {
	if err := account.CheckMagnitude(value); err != nil {
		return err
	}
	c := account.NewCredit(value, s.policy.LoanInterestRate, months, s.now().UTC())
	return s.apply(ctx, n, value, nil, &c)
}

// CreditAgreement returns the live agreement for n or account.ErrNoCredit.
func (s *Store) CreditAgreement(ctx context.Context, n account.Number) (account.Credit, error) {
	val, err := s.client.Get(ctx, s.key(n, "credit")).Bytes()
	if errors.Is(err, redis.Nil) {
		return account.Credit{}, account.ErrNoCredit
	}
	if err != nil {
		return account.Credit{}, s.wrap("credit_agreement", err)
	}
	var rec creditRecord
	if err := json.Unmarshal(val, &rec); err != nil {
		return account.Credit{}, s.wrap("credit_agreement", err)
	}
	return account.Credit{
		ID:           rec.ID,
		Principal:    rec.Principal,
		Rate:         rec.Rate,
		TermMonths:   rec.TermMonths,
		OriginatedAt: rec.OriginatedAt.UTC(),
	}, nil
}

// History returns the entries for n, oldest first.
func (s *Store) History(ctx context.Context, n account.Number) ([]account.HistoryEntry, error) {
	vals, err := s.client.LRange(ctx, s.key(n, "history"), 0, -1).Result()
	if err != nil {
		return nil, s.wrap("history", err)
	}
	entries := make([]account.HistoryEntry, 0, len(vals))
	for _, v := range vals {
		var rec historyRecord
		if err := json.Unmarshal([]byte(v), &rec); err != nil {
			return nil, s.wrap("history", err)
		}
		entries = append(entries, account.NewHistoryEntryFromData(
			rec.ID,
			rec.Amount,
			account.Kind(rec.Kind),
			account.Number(rec.Counterparty),
			rec.CreatedAt.UTC(),
		))
	}
	return entries, nil
}

// apply adds delta to the balance of n and, in the same MULTI, appends entry to its history
// or replaces its credit agreement with c.
func (s *Store) apply(
	ctx context.Context,
	n account.Number,
	delta int64,
	entry *account.HistoryEntry,
	c *account.Credit,
) error {
	balKey := s.key(n, "balance")
	var historyPayload, creditPayload []byte
	var err error
	if entry != nil {
		historyPayload, err = json.Marshal(historyRecord{
			ID:           entry.ID,
			Amount:       entry.Amount,
			Kind:         string(entry.Kind),
			Counterparty: entry.Counterparty.String(),
			CreatedAt:    entry.CreatedAt,
		})
		if err != nil {
			return s.wrap("marshal", err)
		}
	}
	if c != nil {
		creditPayload, err = json.Marshal(creditRecord{
			ID:           c.ID,
			Principal:    c.Principal,
			Rate:         c.Rate,
			TermMonths:   c.TermMonths,
			OriginatedAt: c.OriginatedAt,
		})
		if err != nil {
			return s.wrap("marshal", err)
		}
	}

	txf := func(tx *redis.Tx) error {
		current, err := readBalance(ctx, tx, balKey)
		if err != nil {
			return err
		}
		next := current.Add(decimal.NewFromInt(delta))
		if next.IsNegative() {
			return account.ErrInsufficientFunds
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, balKey, next.String(), 0)
			if historyPayload != nil {
				pipe.RPush(ctx, s.key(n, "history"), historyPayload)
			}
			if creditPayload != nil {
				pipe.Set(ctx, s.key(n, "credit"), creditPayload, 0)
			}
			return nil
		})
		return err
	}

	for attempt := 0; attempt < s.maxRetries; attempt++ {
		err = s.client.Watch(ctx, txf, balKey)
		if errors.Is(err, redis.TxFailedErr) {
			s.logger.Debug("watch conflict, retrying", "account", n.String(), "attempt", attempt+1)
			continue
		}
		if errors.Is(err, account.ErrInsufficientFunds) {
			return err
		}
		return s.wrap("apply", err)
	}
	return s.wrap("apply", ErrContention)
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readBalance(ctx context.Context, c getter, key string) (decimal.Decimal, error) {
	val, err := c.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(val)
}

func (s *Store) wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	s.logger.Error("redis store error", "operation", op, "error", err)
	return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
}

var _ repository.AccountStore = (*Store)(nil)
