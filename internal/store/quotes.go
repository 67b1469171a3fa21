package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/karnotteam/finrep/internal/model"
)

// QuotesHeader is the CSV header for quotes.csv.
const QuotesHeader = "ref,status,final_sales_price,forex_rate,boi_activity,sale_type,customer"

const (
	quoteNumFields = 7
	colQuoteRef    = 0
	colQuoteStatus = 1
	colQuotePrice  = 2
	colQuoteForex  = 3
	colQuoteBOI    = 4
	colQuoteSale   = 5
	colQuoteCust   = 6
)

// SaveQuotes rewrites <dataDir>/quotes.csv with the given quotes.
func SaveQuotes(dataDir string, quotes []model.Quote) error {
	f, err := os.Create(filepath.Join(dataDir, QuotesFile))
	if err != nil {
		return fmt.Errorf("creating quotes file: %w", err)
	}
	defer f.Close()

	if err := WriteQuotes(f, quotes); err != nil {
		return fmt.Errorf("writing quotes: %w", err)
	}
	return nil
}

// ReadQuotes reads all quotes from a quotes.csv reader.
func ReadQuotes(r io.Reader) ([]model.Quote, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = quoteNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading quotes CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var quotes []model.Quote
	for _, rec := range records[1:] {
		quotes = append(quotes, unmarshalQuote(rec))
	}
	return quotes, nil
}

// WriteQuotes writes quotes to a quotes.csv writer, including the header.
func WriteQuotes(w io.Writer, quotes []model.Quote) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(QuotesHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, q := range quotes {
		if err := cw.Write(marshalQuote(q)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func marshalQuote(q model.Quote) []string {
	row := make([]string, quoteNumFields)
	row[colQuoteRef] = q.Ref
	row[colQuoteStatus] = string(q.Status)
	row[colQuotePrice] = q.FinalSalesPrice.String()
	if !q.ForexRate.IsZero() {
		row[colQuoteForex] = q.ForexRate.String()
	}
	if !q.BOIActivity {
		row[colQuoteBOI] = "false"
	}
	row[colQuoteSale] = string(q.SaleType)
	row[colQuoteCust] = q.Customer
	return row
}

func unmarshalQuote(rec []string) model.Quote {
	var forex decimal.Decimal
	if strings.TrimSpace(rec[colQuoteForex]) != "" {
		forex = parseAmount(rec[colQuoteForex])
	}
	return model.Quote{
		Ref:             rec[colQuoteRef],
		Status:          model.QuoteStatus(rec[colQuoteStatus]),
		FinalSalesPrice: parseAmount(rec[colQuotePrice]),
		ForexRate:       forex,
		BOIActivity:     parseFlag(rec[colQuoteBOI], true),
		SaleType:        model.SaleType(rec[colQuoteSale]),
		Customer:        rec[colQuoteCust],
	}
}
