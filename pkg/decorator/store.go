// Package decorator provides decorators for cross-cutting concerns around the account store.
// InstrumentedStore wraps any repository.AccountStore with Prometheus metrics and structured
// debug logging without changing its behaviour or its errors.
package decorator

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/bankcore/pkg/domain"
	"github.com/amirasaad/bankcore/pkg/domain/account"
	"github.com/amirasaad/bankcore/pkg/repository"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeOK          = "ok"
	OutcomeRejected    = "rejected"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

// Metrics holds the collectors recorded by InstrumentedStore.
type Metrics struct {
	Operations *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
}

// NewMetrics creates the store collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bankcore",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Account store calls by operation and outcome.",
		}, []string{"operation", "outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bankcore",
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Account store call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	if reg == nil {
		return m, nil
	}
	var are prometheus.AlreadyRegisteredError
	if err := reg.Register(m.Operations); err != nil {
		if !errors.As(err, &are) {
			return nil, err
		}
		if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
			m.Operations = existing
		}
	}
	if err := reg.Register(m.Duration); err != nil {
		if !errors.As(err, &are) {
			return nil, err
		}
		if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
			m.Duration = existing
		}
	}
	return m, nil
}

// InstrumentedStore decorates an AccountStore.
type InstrumentedStore struct {
	next    repository.AccountStore
	metrics *Metrics
	logger  *slog.Logger
}

// NewInstrumentedStore wraps next.
func NewInstrumentedStore(next repository.AccountStore, metrics *Metrics, logger *slog.Logger) *InstrumentedStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &InstrumentedStore{next: next, metrics: metrics, logger: logger}
}

func (s *InstrumentedStore) observe(op string, n account.Number, start time.Time, err error) {
	outcome := classify(err)
	s.metrics.Operations.WithLabelValues(op, outcome).Inc()
	s.metrics.Duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		s.logger.Debug("store call failed", "operation", op, "account", n.String(), "outcome", outcome, "error", err)
		return
	}
	s.logger.Debug("store call", "operation", op, "account", n.String(), "duration", time.Since(start))
}

func classify(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrStoreUnavailable):
		return OutcomeUnavailable
	case errors.Is(err, account.ErrInsufficientFunds), errors.Is(err, account.ErrNoCredit):
		return OutcomeRejected
	default:
		return OutcomeError
	}
}

func (s *InstrumentedStore) Balance(ctx context.Context, n account.Number) (bal float64, err error) {
	defer func(start time.Time) { s.observe("balance", n, start, err) }(time.Now())
	return s.next.Balance(ctx, n)
}

func (s *InstrumentedStore) UpdateBalance(ctx context.Context, n account.Number, amount int64) (err error) {
	defer func(start time.Time) { s.observe("update_balance", n, start, err) }(time.Now())
	return s.next.UpdateBalance(ctx, n, amount)
}

func (s *InstrumentedStore) OutcomeTransfer(ctx context.Context, n, counterparty account.Number, amount int64) (err error) {
	defer func(start time.Time) { s.observe("outcome_transfer", n, start, err) }(time.Now())
	return s.next.OutcomeTransfer(ctx, n, counterparty, amount)
}

func (s *InstrumentedStore) IncomeTransfer(ctx context.Context, n, counterparty account.Number, amount int64) (err error) {
	defer func(start time.Time) { s.observe("income_transfer", n, start, err) }(time.Now())
	return s.next.IncomeTransfer(ctx, n, counterparty, amount)
}

func (s *InstrumentedStore) IsAllowedToGetCredit(ctx context.Context, n account.Number, value int64) (ok bool, err error) {
	defer func(start time.Time) { s.observe("is_allowed_to_get_credit", n, start, err) }(time.Now())
	return s.next.IsAllowedToGetCredit(ctx, n, value)
}

func (s *InstrumentedStore) GrantCredit(ctx context.Context, n account.Number, value int64, months int) (err error) {
	defer func(start time.Time) { s.observe("grant_credit", n, start, err) }(time.Now())
	return s.next.GrantCredit(ctx, n, value, months)
}

func (s *InstrumentedStore) CreditAgreement(ctx context.Context, n account.Number) (c account.Credit, err error) {
	defer func(start time.Time) { s.observe("credit_agreement", n, start, err) }(time.Now())
	return s.next.CreditAgreement(ctx, n)
}

func (s *InstrumentedStore) History(ctx context.Context, n account.Number) (h []account.HistoryEntry, err error) {
	defer func(start time.Time) { s.observe("history", n, start, err) }(time.Now())
	return s.next.History(ctx, n)
}

var _ repository.AccountStore = (*InstrumentedStore)(nil)
