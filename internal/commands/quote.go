package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/karnotteam/finrep/internal/config"
	"github.com/karnotteam/finrep/internal/gitops"
	"github.com/karnotteam/finrep/internal/id"
	"github.com/karnotteam/finrep/internal/model"
	"github.com/karnotteam/finrep/internal/store"
)

func newQuoteCommand() *cobra.Command {
	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Quote records",
	}
	quoteCmd.AddCommand(newQuoteAddCommand())
	return quoteCmd
}

func newQuoteAddCommand() *cobra.Command {
	var dataDir, status, price, forexRate, saleType, customer string
	var nonBOI bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dataDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			priceDec, err := decimal.NewFromString(price)
			if err != nil {
				return fmt.Errorf("parsing price %q: %w", price, err)
			}

			var forexDec decimal.Decimal
			if forexRate != "" {
				forexDec, err = decimal.NewFromString(forexRate)
				if err != nil {
					return fmt.Errorf("parsing forex rate %q: %w", forexRate, err)
				}
			}

			q := model.Quote{
				Status:          model.QuoteStatus(status),
				FinalSalesPrice: priceDec,
				ForexRate:       forexDec,
				BOIActivity:     !nonBOI,
				SaleType:        model.SaleType(saleType),
				Customer:        customer,
			}
			return runQuoteAdd(cmd.OutOrStdout(), absDir, q, time.Now())
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&status, "status", string(model.QuoteDraft), "quote status")
	cmd.Flags().StringVar(&price, "price", "", "final sales price in the quote currency (required)")
	_ = cmd.MarkFlagRequired("price")
	cmd.Flags().StringVar(&forexRate, "forex-rate", "", "base units per quote currency unit captured at quote time")
	cmd.Flags().StringVar(&saleType, "sale-type", string(model.SaleExport), "sale type (Export or Domestic)")
	cmd.Flags().StringVar(&customer, "customer", "", "customer name")
	cmd.Flags().BoolVar(&nonBOI, "non-boi", false, "mark the revenue as outside the BOI program")

	return cmd
}

// runQuoteAdd assigns the next quote reference for the year, appends the
// quote, and commits the data directory when auto-commit is on.
func runQuoteAdd(w io.Writer, dataDir string, q model.Quote, now time.Time) error {
	cfg, err := config.Load(filepath.Join(dataDir, "finrep.yaml"))
	if err != nil {
		return err
	}

	snap, err := store.Load(dataDir)
	if err != nil {
		return err
	}
	quotes := snap.Quotes

	refs := make([]string, len(quotes))
	for i, existing := range quotes {
		refs[i] = existing.Ref
	}
	year := now.Year()
	q.Ref = id.FormatQuoteRef(year, id.NextSeq(refs, year))

	quotes = append(quotes, q)
	if err := store.SaveQuotes(dataDir, quotes); err != nil {
		return err
	}

	if cfg.Git.AutoCommit && gitops.IsRepo(dataDir) {
		if _, err := gitops.Commit(dataDir, "quote: add "+q.Ref, gitops.Author{
			Name:  cfg.Git.AuthorName,
			Email: cfg.Git.AuthorEmail,
		}); err != nil {
			return fmt.Errorf("committing quote: %w", err)
		}
	}

	fmt.Fprintf(w, "Recorded quote %s\n", q.Ref)
	return nil
}
