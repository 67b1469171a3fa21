package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/karnotteam/finrep/internal/model"
)

// PayrollHeader is the CSV header for payroll.csv.
const PayrollHeader = "date,staff_name,role,type,amount"

const (
	payrollNumFields = 5
	colPayrollDate   = 0
	colPayrollStaff  = 1
	colPayrollRole   = 2
	colPayrollType   = 3
	colPayrollAmount = 4
)

// ReadPayroll reads all payroll entries from a payroll.csv reader.
func ReadPayroll(r io.Reader) ([]model.PayrollEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = payrollNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading payroll CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []model.PayrollEntry
	for i, rec := range records[1:] {
		e, err := unmarshalPayroll(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// WritePayroll writes payroll entries to a payroll.csv writer, including
// the header.
func WritePayroll(w io.Writer, entries []model.PayrollEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(PayrollHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		row := []string{
			e.Date.Format(dateFormat),
			e.StaffName,
			e.Role,
			string(e.Type),
			e.Amount.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func unmarshalPayroll(rec []string) (model.PayrollEntry, error) {
	date, err := time.Parse(dateFormat, rec[colPayrollDate])
	if err != nil {
		return model.PayrollEntry{}, fmt.Errorf("parsing date %q: %w", rec[colPayrollDate], err)
	}

	return model.PayrollEntry{
		Date:      date,
		StaffName: rec[colPayrollStaff],
		Role:      rec[colPayrollRole],
		Type:      model.PayrollType(rec[colPayrollType]),
		Amount:    parseAmount(rec[colPayrollAmount]),
	}, nil
}
