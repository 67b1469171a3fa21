package commands

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/karnotteam/finrep/internal/currency"
	"github.com/karnotteam/finrep/internal/report"
)

// renderer writes statements as aligned text in one display currency.
type renderer struct {
	w    io.Writer
	p    *currency.Presenter
	code string
}

// money renders an amount with the display symbol, negatives in
// parentheses. The presenter only ever returns the magnitude.
func (r renderer) money(d decimal.Decimal) string {
	s, err := r.p.Format(d, r.code)
	if err != nil {
		// The currency code is validated before rendering starts.
		panic(err)
	}
	if d.IsNegative() {
		return "(" + s + ")"
	}
	return s
}

func (r renderer) line(label string, d decimal.Decimal) {
	fmt.Fprintf(r.w, "  %-24s %18s\n", label, r.money(d))
}

func (r renderer) varianceLine(label string, v report.Variance) {
	fmt.Fprintf(r.w, "  %-24s %18s %18s %12s  %s\n",
		label, r.money(v.Actual), r.money(v.Budget), v.Percent.StringFixed(1)+"%", v.Direction)
}

func (r renderer) pnl(pnl report.ProfitAndLoss) {
	fmt.Fprintf(r.w, "Profit & Loss (%s, month of %s)\n", r.code, pnl.Month)
	r.line("BOI revenue", pnl.BOIRevenue)
	r.line("Non-BOI revenue", pnl.NonBOIRevenue)
	r.line("Revenue", pnl.Revenue)
	r.line("Direct labor", pnl.DirectLabor)
	r.line("Direct materials", pnl.DirectMaterials)
	r.line("COGS", pnl.COGS)
	r.line("Gross profit", pnl.GrossProfit)
	r.line("Admin salaries", pnl.AdminSalaries)
	r.line("Other opex", pnl.OtherOpex)
	r.line("Total opex", pnl.OpEx)
	r.line("Net income", pnl.NetIncome)
	fmt.Fprintf(r.w, "  %-24s %17s%%\n", "Net margin", pnl.Margin.StringFixed(1))

	if !pnl.UnclassifiedPayroll.IsZero() {
		fmt.Fprintf(r.w, "  ! unclassified payroll excluded from totals: %s\n",
			r.money(pnl.UnclassifiedPayroll))
	}

	fmt.Fprintln(r.w, "Budget vs actual")
	r.varianceLine("Revenue", report.Compare(pnl.Revenue, pnl.BudgetRevenue, false))
	r.varianceLine("COGS", report.Compare(pnl.COGS, pnl.BudgetCOGS, true))
	r.varianceLine("Opex", report.Compare(pnl.OpEx, pnl.BudgetOpEx, true))
	r.varianceLine("Net income", report.Compare(pnl.NetIncome, pnl.BudgetNetIncome, false))
}

func (r renderer) balance(bs report.BalanceSheet) {
	fmt.Fprintf(r.w, "Statement of Financial Position (%s)\n", r.code)
	r.line("Cash", bs.Cash)
	r.line("Accounts receivable", bs.AR)
	r.line("Fixed assets", bs.FixedAssets)
	r.line("Total assets", bs.TotalAssets)
	r.line("Liabilities", bs.Liabilities)
	r.line("Equity", bs.Equity)
	r.line("Retained earnings", bs.RetainedEarnings)
}

func (r renderer) forecast(f report.Forecast) {
	fmt.Fprintf(r.w, "Cash Forecast (%s)\n", r.code)
	r.line("Current cash", f.CurrentCash)
	r.line("Weighted pipeline", f.PipelineInflow)
	r.line("Monthly burn", f.MonthlyBurn)
	r.line("Budgeted burn", f.BudgetedBurn)
	fmt.Fprintf(r.w, "  %-24s %18s\n", "Runway", f.Runway)
}
