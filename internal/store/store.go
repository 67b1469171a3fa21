// Package store materializes record snapshots from the CSV files kept in
// a finrep data directory. It plays the persistence collaborator role:
// the engine itself never touches disk, it consumes the Snapshot this
// package loads. Record files are owned and edited by the upstream
// subsystems (sales, bookkeeping, payroll); the store only reads them.
package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/karnotteam/finrep/internal/model"
)

const (
	QuotesFile   = "quotes.csv"
	LedgerFile   = "ledger.csv"
	PayrollFile  = "payroll.csv"
	EquityFile   = "equity.csv"
	AssetsFile   = "assets.csv"
	PipelineFile = "pipeline.csv"
)

const dateFormat = "2006-01-02"

// Load reads every record stream from dataDir into a Snapshot. A missing
// stream file yields an empty stream, not an error.
func Load(dataDir string) (model.Snapshot, error) {
	var snap model.Snapshot
	var err error

	if snap.Quotes, err = loadStream(dataDir, QuotesFile, ReadQuotes); err != nil {
		return model.Snapshot{}, err
	}
	if snap.LedgerEntries, err = loadStream(dataDir, LedgerFile, ReadLedger); err != nil {
		return model.Snapshot{}, err
	}
	if snap.Payroll, err = loadStream(dataDir, PayrollFile, ReadPayroll); err != nil {
		return model.Snapshot{}, err
	}
	if snap.Equity, err = loadStream(dataDir, EquityFile, ReadEquity); err != nil {
		return model.Snapshot{}, err
	}
	if snap.Assets, err = loadStream(dataDir, AssetsFile, ReadAssets); err != nil {
		return model.Snapshot{}, err
	}
	if snap.Opportunities, err = loadStream(dataDir, PipelineFile, ReadPipeline); err != nil {
		return model.Snapshot{}, err
	}

	return snap, nil
}

func loadStream[T any](dataDir, name string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(filepath.Join(dataDir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	records, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return records, nil
}

// parseAmount parses a monetary cell. Malformed amounts coerce to zero so
// one bad cell never aborts a full aggregation run.
func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseFlag parses a boolean cell, defaulting when the cell is blank or
// unparseable.
func parseFlag(s string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}
