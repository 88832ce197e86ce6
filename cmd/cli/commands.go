package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newATMCmd(c *cli) *cobra.Command {
	var amount int64
	cmd := &cobra.Command{
		Use:     "atm --amount <signed amount>",
		Short:   "Deposit (positive) or withdraw (negative) cash",
		Example: "  bankcli atm -a 12344 --amount 50\n  bankcli atm -a 12344 --amount -20",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := c.service()
			if err != nil {
				return err
			}
			if err := svc.UpdateATM(cmd.Context(), amount); err != nil {
				return err
			}
			return c.printBalance(cmd, "ATM operation successful")
		},
	}
	cmd.Flags().Int64Var(&amount, "amount", 0, "signed amount; negative withdraws")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newTransferCmd(c *cli) *cobra.Command {
	var amount int64
	cmd := &cobra.Command{
		Use:     "transfer <counterparty> --amount <signed amount>",
		Short:   "Send (negative) or receive (positive) a transfer",
		Example: "  bankcli transfer -a 12344 99998 --amount -50",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.service()
			if err != nil {
				return err
			}
			if err := svc.UpdateTransfer(cmd.Context(), args[0], amount); err != nil {
				return err
			}
			return c.printBalance(cmd, "Transfer successful")
		},
	}
	cmd.Flags().Int64Var(&amount, "amount", 0, "signed amount; negative sends")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newCreditCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "credit <value> <months>",
		Short:   "Take an installment credit",
		Example: "  bankcli credit -a 12344 20000 36",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			months, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid months %q: %w", args[1], err)
			}
			svc, err := c.service()
			if err != nil {
				return err
			}
			if err := svc.Credit(cmd.Context(), value, months); err != nil {
				return err
			}
			return c.printBalance(cmd, "Credit granted")
		},
	}
}

func newCreditStatusCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "credit-status",
		Short: "Show the amount and months left on the current credit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := c.service()
			if err != nil {
				return err
			}
			left, err := svc.CreditAmountLeft(cmd.Context())
			if err != nil {
				return err
			}
			months, err := svc.CreditMonthsLeft(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = infoColor.Fprintf(c.out, "Credit amount left: %.2f\n", left)
			_, _ = infoColor.Fprintf(c.out, "Credit months left: %d\n", months)
			return nil
		},
	}
}

func newHistoryCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List completed operations, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := c.service()
			if err != nil {
				return err
			}
			history, err := svc.GetHistory(cmd.Context())
			if err != nil {
				return err
			}
			empty := true
			for entry := range history {
				empty = false
				_, _ = fmt.Fprintf(c.out, "%s  %s\n", entry.CreatedAt.Format("2006-01-02 15:04:05"), entry)
			}
			if empty {
				_, _ = warnColor.Fprintln(c.out, "No operations yet")
			}
			return nil
		},
	}
}

func newBalanceCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the account balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.printBalance(cmd, "")
		},
	}
}

func (c *cli) printBalance(cmd *cobra.Command, headline string) error {
	svc, err := c.service()
	if err != nil {
		return err
	}
	balance, err := svc.Balance(cmd.Context())
	if err != nil {
		return err
	}
	if headline != "" {
		_, _ = okColor.Fprintln(c.out, headline)
	}
	_, _ = fmt.Fprintf(c.out, "Account %s balance: %.2f\n", svc.Number(), balance)
	return nil
}
