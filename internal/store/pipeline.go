package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/karnotteam/finrep/internal/model"
)

// PipelineHeader is the CSV header for pipeline.csv.
const PipelineHeader = "name,estimated_value,probability"

const (
	pipelineNumFields = 3
	colPipeName       = 0
	colPipeValue      = 1
	colPipeProb       = 2
)

// ReadPipeline reads all opportunities from a pipeline.csv reader.
func ReadPipeline(r io.Reader) ([]model.Opportunity, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = pipelineNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading pipeline CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var opps []model.Opportunity
	for _, rec := range records[1:] {
		opps = append(opps, model.Opportunity{
			Name:           rec[colPipeName],
			EstimatedValue: parseAmount(rec[colPipeValue]),
			Probability:    parseAmount(rec[colPipeProb]),
		})
	}
	return opps, nil
}

// WritePipeline writes opportunities to a pipeline.csv writer, including
// the header.
func WritePipeline(w io.Writer, opps []model.Opportunity) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(PipelineHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, o := range opps {
		row := []string{o.Name, o.EstimatedValue.String(), o.Probability.String()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
