package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/karnotteam/finrep/internal/config"
	"github.com/karnotteam/finrep/internal/currency"
	"github.com/karnotteam/finrep/internal/report"
	"github.com/karnotteam/finrep/internal/store"
)

func newVarianceCommand() *cobra.Command {
	var dataDir, code, monthStr string

	cmd := &cobra.Command{
		Use:   "variance",
		Short: "Compare actuals against the monthly budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dataDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			asOf := time.Now()
			if monthStr != "" {
				asOf, err = time.Parse(monthFlagFormat, monthStr)
				if err != nil {
					return fmt.Errorf("parsing month %q: %w", monthStr, err)
				}
			}

			return runVariance(cmd.OutOrStdout(), absDir, code, asOf)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&code, "currency", "", "display currency (default: base currency)")
	cmd.Flags().StringVar(&monthStr, "month", "", "reporting month as YYYY-MM (default: current)")

	return cmd
}

func runVariance(w io.Writer, dataDir, code string, asOf time.Time) error {
	cfg, err := config.Load(filepath.Join(dataDir, "finrep.yaml"))
	if err != nil {
		return err
	}
	if code == "" {
		code = cfg.Rates.BaseCurrency
	}

	presenter := currency.NewPresenter(cfg.Rates)
	if !presenter.Supports(code) {
		return fmt.Errorf("unsupported display currency %q (have %v)", code, presenter.Codes())
	}

	snap, err := store.Load(dataDir)
	if err != nil {
		return err
	}

	pnl := report.BuildProfitAndLoss(snap, cfg.Rates, cfg.Budget, asOf.Month())

	r := renderer{w: w, p: presenter, code: code}
	fmt.Fprintf(w, "Budget variance (%s, month of %s)\n", code, asOf.Month())
	fmt.Fprintf(w, "  %-24s %18s %18s %12s\n", "", "actual", "budget", "variance")
	r.varianceLine("Revenue", report.Compare(pnl.Revenue, pnl.BudgetRevenue, false))
	r.varianceLine("COGS", report.Compare(pnl.COGS, pnl.BudgetCOGS, true))
	r.varianceLine("Opex", report.Compare(pnl.OpEx, pnl.BudgetOpEx, true))
	r.varianceLine("Net income", report.Compare(pnl.NetIncome, pnl.BudgetNetIncome, false))

	return nil
}
