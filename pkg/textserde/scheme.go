// Package textserde reads and writes Hive-style delimited text rows for a
// fixed field projection.
package textserde

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/datazip-inc/hivetap/utils"
	"github.com/datazip-inc/hivetap/utils/logger"
)

// RecordCallback is invoked for every decoded row.
type RecordCallback func(ctx context.Context, record map[string]string) error

// Scheme describes how rows of a delimited text table are encoded: the
// field delimiter and the sink fields, i.e. the names and order of the
// columns that actually appear in the data files (partition columns are
// encoded in the directory layout, never inline).
type Scheme struct {
	delimiter  string
	sinkFields []string
}

// NewScheme builds a scheme for the given single-character delimiter and
// sink field projection.
func NewScheme(delimiter string, sinkFields []string) (*Scheme, error) {
	if len(delimiter) != 1 {
		return nil, fmt.Errorf("delimiter must be a single character, got %q", delimiter)
	}
	if len(sinkFields) == 0 {
		return nil, fmt.Errorf("scheme requires at least one sink field")
	}
	return &Scheme{
		delimiter:  delimiter,
		sinkFields: utils.CopySlice(sinkFields),
	}, nil
}

func (s *Scheme) Delimiter() string {
	return s.delimiter
}

func (s *Scheme) SinkFields() []string {
	return utils.CopySlice(s.sinkFields)
}

// WriteRecord projects the record onto the sink fields, in order, and
// writes one delimited row. Fields missing from the record are written
// empty; extra keys are ignored.
func (s *Scheme) WriteRecord(w io.Writer, record map[string]string) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = rune(s.delimiter[0])

	row := make([]string, len(s.sinkFields))
	for i, field := range s.sinkFields {
		row[i] = record[field]
	}
	if err := csvWriter.Write(row); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// StreamRecords reads delimited rows and hands each to the callback as a
// map keyed by the sink fields. Values are passed through as strings; any
// type interpretation belongs to the caller.
func (s *Scheme) StreamRecords(ctx context.Context, reader io.Reader, callback RecordCallback) error {
	csvReader := csv.NewReader(reader)
	csvReader.Comma = rune(s.delimiter[0])
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	recordCount := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read row %d: %w", recordCount, err)
		}

		if len(row) != len(s.sinkFields) {
			logger.Warnf("row %d has %d fields, scheme expects %d", recordCount, len(row), len(s.sinkFields))
		}

		record := make(map[string]string)
		for i, value := range row {
			if i < len(s.sinkFields) {
				record[s.sinkFields[i]] = value
			}
		}

		if err := callback(ctx, record); err != nil {
			return fmt.Errorf("failed to process row %d: %w", recordCount, err)
		}
		recordCount++
	}

	logger.Debugf("processed %d rows", recordCount)
	return nil
}
