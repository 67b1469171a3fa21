// Package runlog keeps a CSV audit trail of engine runs. Each computed
// set of statements appends one row recording what was derived and, most
// importantly, whether the balance-sheet identity held. A failed check
// must stay visible in the log even after the terminal output scrolls
// away.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one row in the run log.
type Entry struct {
	Timestamp time.Time
	Command   string
	Currency  string // display currency the run was rendered in
	NetIncome decimal.Decimal
	Balanced  bool
	Details   string
}

// Header is the CSV header for run-log.csv.
const Header = "timestamp,command,currency,net_income,balanced,details"

const (
	numFields    = 6
	logDir       = "logs"
	logFile      = "logs/run-log.csv"
	colTimestamp = 0
	colCommand   = 1
	colCurrency  = 2
	colNetIncome = 3
	colBalanced  = 4
	colDetails   = 5
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colCommand] = e.Command
	row[colCurrency] = e.Currency
	row[colNetIncome] = e.NetIncome.StringFixed(2)
	row[colBalanced] = strconv.FormatBool(e.Balanced)
	row[colDetails] = e.Details
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	netIncome, err := decimal.NewFromString(record[colNetIncome])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing net_income %q: %w", record[colNetIncome], err)
	}

	balanced, err := strconv.ParseBool(record[colBalanced])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing balanced %q: %w", record[colBalanced], err)
	}

	return Entry{
		Timestamp: ts,
		Command:   record[colCommand],
		Currency:  record[colCurrency],
		NetIncome: netIncome,
		Balanced:  balanced,
		Details:   record[colDetails],
	}, nil
}

// Append writes entries to <dataDir>/logs/run-log.csv, creating the file
// and header if needed.
func Append(dataDir string, entries []Entry) error {
	dir := filepath.Join(dataDir, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(dataDir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <dataDir>/logs/run-log.csv, or an empty
// slice when no log exists yet.
func Read(dataDir string) ([]Entry, error) {
	path := filepath.Join(dataDir, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
