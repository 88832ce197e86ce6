package app

import (
	"errors"
	"log/slog"

	"github.com/amirasaad/bankcore/pkg/config"
	"github.com/amirasaad/bankcore/pkg/decorator"
	"github.com/amirasaad/bankcore/pkg/repository"
	"github.com/amirasaad/bankcore/pkg/service/account"
	"github.com/prometheus/client_golang/prometheus"
)

// Deps contains the dependencies shared by every account service
type Deps struct {
	Store    repository.AccountStore
	Metrics  *decorator.Metrics
	Registry *prometheus.Registry
	Logger   *slog.Logger

	closers []func() error
}

// OnClose registers a release function run by Close in reverse order.
func (d *Deps) OnClose(fn func() error) {
	d.closers = append(d.closers, fn)
}

// Close releases store connections.
func (d *Deps) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	d.closers = nil
	return errors.Join(errs...)
}

type App struct {
	Deps   *Deps
	Config *config.App
}

func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:   deps,
		Config: cfg,
	}
}

// AccountService binds a service to the given account number.
func (a *App) AccountService(number string, opts ...account.Option) (*account.Service, error) {
	return account.NewService(a.Deps.Store, number, a.Deps.Logger, opts...)
}
