package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/amirasaad/bankcore/infra/initializer"
	"github.com/amirasaad/bankcore/pkg/app"
	"github.com/amirasaad/bankcore/pkg/config"
	"github.com/amirasaad/bankcore/pkg/service/account"
	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type cli struct {
	out     io.Writer
	errOut  io.Writer
	envFile string
	number  string

	// app is built on first use unless injected.
	app      *app.App
	ownsDeps bool
}

var (
	okColor   = color.New(color.FgGreen)
	infoColor = color.New(color.FgCyan)
	warnColor = color.New(color.FgYellow)
)

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "bankcli",
		Short:         "Operate a single bank account",
		Long:          "bankcli runs ATM, transfer, credit and history operations against one account.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd.Context())
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return c.teardown()
		},
	}
	root.SetOut(c.out)
	root.SetErr(c.errOut)
	root.PersistentFlags().StringVarP(&c.number, "account", "a", "", "account number the operations apply to")
	root.PersistentFlags().StringVar(&c.envFile, "env-file", "", "environment file to load before the process environment")
	_ = root.MarkPersistentFlagRequired("account")

	root.AddCommand(
		newATMCmd(c),
		newTransferCmd(c),
		newCreditCmd(c),
		newCreditStatusCmd(c),
		newHistoryCmd(c),
		newBalanceCmd(c),
	)
	return root
}

func (c *cli) setup(ctx context.Context) error {
	if c.app != nil {
		return nil
	}
	var (
		cfg *config.App
		err error
	)
	if c.envFile != "" {
		cfg, err = config.Load(c.envFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	deps, err := initializer.InitializeDependencies(ctx, cfg, c.errOut)
	if err != nil {
		return err
	}
	c.app = app.New(deps, cfg)
	c.ownsDeps = true
	return nil
}

func (c *cli) teardown() error {
	if c.app == nil || !c.ownsDeps {
		return nil
	}
	c.ownsDeps = false
	if c.app.Deps.Registry != nil {
		printMetrics(c.errOut, c.app.Deps.Registry)
	}
	return c.app.Deps.Close()
}

func (c *cli) service() (*account.Service, error) {
	return c.app.AccountService(c.number)
}

// printMetrics writes every counter and histogram count gathered from g.
func printMetrics(w io.Writer, g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		_, _ = warnColor.Fprintf(w, "metrics unavailable: %v\n", err)
		return
	}
	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			value := m.GetCounter().GetValue()
			if h := m.GetHistogram(); h != nil {
				value = float64(h.GetSampleCount())
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), value))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		_, _ = infoColor.Fprintln(w, l)
	}
}
