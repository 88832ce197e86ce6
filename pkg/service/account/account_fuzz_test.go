package account_test

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"testing"

	"github.com/amirasaad/bankcore/infra/repository/memory"
	accountdomain "github.com/amirasaad/bankcore/pkg/domain/account"
	accountsvc "github.com/amirasaad/bankcore/pkg/service/account"
)

func fuzzService(t *testing.T, start uint32) *accountsvc.Service {
	t.Helper()
	store := memory.New(policy)
	store.SetBalance(validAccount, float64(start))
	svc, err := accountsvc.NewService(store, validAccount, slog.Default())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

// FuzzUpdateATM checks that an ATM operation never overdraws and moves the balance by exactly
// the requested amount when it succeeds.
func FuzzUpdateATM(f *testing.F) {
	f.Add(uint32(0), int64(50))
	f.Add(uint32(50), int64(-50))
	f.Add(uint32(49), int64(-50))
	f.Add(uint32(0), int64(0))
	f.Add(uint32(0), int64(math.MinInt64))
	f.Add(uint32(100), int64(math.MaxInt64))
	f.Add(uint32(0), accountdomain.MaxAmount)
	f.Add(uint32(0), -accountdomain.MaxAmount-1)
	f.Fuzz(func(t *testing.T, start uint32, amount int64) {
		ctx := context.Background()
		svc := fuzzService(t, start)
		before := float64(start)

		err := svc.UpdateATM(ctx, amount)
		after := balanceOf(t, svc)
		if after < 0 {
			t.Fatalf("balance went negative: %v (start=%d, amount=%d)", after, start, amount)
		}
		seq, herr := svc.GetHistory(ctx)
		if herr != nil {
			t.Fatalf("GetHistory: %v", herr)
		}
		history := slices.Collect(seq)
		if err != nil {
			if after != before || len(history) != 0 {
				t.Fatalf("rejected operation changed state: balance %v, %d entries (amount=%d, err=%v)",
					after, len(history), amount, err)
			}
			return
		}
		if after != before+float64(amount) {
			t.Fatalf("balance %v, want %v (start=%d, amount=%d)", after, before+float64(amount), start, amount)
		}
		if len(history) != 1 || history[0].Amount <= 0 || history[0].Signed() != amount {
			t.Fatalf("unexpected history %v for amount %d", history, amount)
		}
	})
}

// FuzzUpdateTransfer checks that transfers never overdraw and always record a positive magnitude.
func FuzzUpdateTransfer(f *testing.F) {
	f.Add(uint32(512), int64(-50))
	f.Add(uint32(0), int64(50))
	f.Add(uint32(0), int64(-1))
	f.Add(uint32(0), int64(math.MinInt64))
	f.Add(uint32(math.MaxUint32), int64(math.MinInt64))
	f.Add(uint32(0), int64(math.MaxInt64))
	f.Fuzz(func(t *testing.T, start uint32, amount int64) {
		ctx := context.Background()
		svc := fuzzService(t, start)
		before := float64(start)

		err := svc.UpdateTransfer(ctx, otherAccount, amount)
		after := balanceOf(t, svc)
		if after < 0 {
			t.Fatalf("balance went negative: %v (start=%d, amount=%d)", after, start, amount)
		}
		seq, herr := svc.GetHistory(ctx)
		if herr != nil {
			t.Fatalf("GetHistory: %v", herr)
		}
		history := slices.Collect(seq)
		if err != nil {
			if after != before || len(history) != 0 {
				t.Fatalf("rejected transfer changed state: balance %v, %d entries (amount=%d, err=%v)",
					after, len(history), amount, err)
			}
			return
		}
		if after != before+float64(amount) {
			t.Fatalf("balance %v, want %v (start=%d, amount=%d)", after, before+float64(amount), start, amount)
		}
		if len(history) != 1 || history[0].Amount <= 0 || history[0].Signed() != amount {
			t.Fatalf("unexpected history %v for amount %d", history, amount)
		}
		wantKind := accountdomain.KindTransferIn
		if amount < 0 {
			wantKind = accountdomain.KindTransferOut
		}
		if history[0].Kind != wantKind {
			t.Fatalf("kind %s, want %s", history[0].Kind, wantKind)
		}
	})
}
