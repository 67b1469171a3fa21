package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/karnotteam/finrep/internal/model"
)

// EquityHeader is the CSV header for equity.csv.
const EquityHeader = "partner,type,amount,created_at"

// AssetsHeader is the CSV header for assets.csv.
const AssetsHeader = "name,type,value,created_at"

const capitalNumFields = 4

// ReadEquity reads all equity contributions from an equity.csv reader.
func ReadEquity(r io.Reader) ([]model.EquityEntry, error) {
	records, err := readCapitalRows(r, "equity")
	if err != nil {
		return nil, err
	}

	var entries []model.EquityEntry
	for i, rec := range records {
		created, err := parseCreatedAt(rec[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, model.EquityEntry{
			Partner:   rec[0],
			Type:      rec[1],
			Amount:    parseAmount(rec[2]),
			CreatedAt: created,
		})
	}
	return entries, nil
}

// ReadAssets reads all fixed-asset bookings from an assets.csv reader.
func ReadAssets(r io.Reader) ([]model.AssetEntry, error) {
	records, err := readCapitalRows(r, "assets")
	if err != nil {
		return nil, err
	}

	var entries []model.AssetEntry
	for i, rec := range records {
		created, err := parseCreatedAt(rec[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, model.AssetEntry{
			Name:      rec[0],
			Type:      rec[1],
			Value:     parseAmount(rec[2]),
			CreatedAt: created,
		})
	}
	return entries, nil
}

// WriteEquity writes equity contributions to an equity.csv writer,
// including the header.
func WriteEquity(w io.Writer, entries []model.EquityEntry) error {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Partner, e.Type, e.Amount.String(), e.CreatedAt.Format(dateFormat)}
	}
	return writeCapitalRows(w, EquityHeader, rows)
}

// WriteAssets writes asset bookings to an assets.csv writer, including
// the header.
func WriteAssets(w io.Writer, entries []model.AssetEntry) error {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Name, e.Type, e.Value.String(), e.CreatedAt.Format(dateFormat)}
	}
	return writeCapitalRows(w, AssetsHeader, rows)
}

func readCapitalRows(r io.Reader, what string) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = capitalNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s CSV: %w", what, err)
	}
	if len(records) <= 1 {
		return nil, nil
	}
	return records[1:], nil
}

func writeCapitalRows(w io.Writer, header string, rows [][]string) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// parseCreatedAt parses a created_at cell, defaulting a blank cell to the
// zero time.
func parseCreatedAt(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing created_at %q: %w", s, err)
	}
	return t, nil
}
