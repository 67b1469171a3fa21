package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/karnotteam/finrep/internal/model"
)

// LedgerHeader is the CSV header for ledger.csv.
const LedgerHeader = "category,sub_category,amount_php,project_id"

const (
	ledgerNumFields = 4
	colLedgerCat    = 0
	colLedgerSub    = 1
	colLedgerAmount = 2
	colLedgerProj   = 3
)

// ReadLedger reads all ledger entries from a ledger.csv reader.
func ReadLedger(r io.Reader) ([]model.LedgerEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = ledgerNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []model.LedgerEntry
	for _, rec := range records[1:] {
		entries = append(entries, model.LedgerEntry{
			Category:    rec[colLedgerCat],
			SubCategory: rec[colLedgerSub],
			AmountPHP:   parseAmount(rec[colLedgerAmount]),
			ProjectID:   rec[colLedgerProj],
		})
	}
	return entries, nil
}

// WriteLedger writes ledger entries to a ledger.csv writer, including the
// header.
func WriteLedger(w io.Writer, entries []model.LedgerEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(LedgerHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		row := []string{e.Category, e.SubCategory, e.AmountPHP.String(), e.ProjectID}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
