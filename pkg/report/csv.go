package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/gnomegl/pwncheck/pkg/batch"
)

// CSVWriter exports result records as line_number,pwned_count[,password].
// An export failure never touches the records themselves; the in-memory
// report stays valid.
type CSVWriter struct {
	writer *csv.Writer
	file   *os.File
	opts   ExportOptions
}

func NewCSVWriter(filename string, opts ExportOptions) (*CSVWriter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV file: %w", err)
	}

	writer := csv.NewWriter(file)

	header := []string{"line_number", "pwned_count"}
	if opts.IncludePasswords {
		header = append(header, "password")
	}
	if err := writer.Write(header); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	return &CSVWriter{
		writer: writer,
		file:   file,
		opts:   opts,
	}, nil
}

func (w *CSVWriter) WriteRecords(records []batch.ResultRecord) error {
	for _, record := range records {
		if err := w.writer.Write(w.createRecord(record)); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	w.writer.Flush()
	return w.writer.Error()
}

func (w *CSVWriter) createRecord(record batch.ResultRecord) []string {
	count := ""
	if !record.Failed() {
		count = strconv.Itoa(record.Count)
	}

	row := []string{strconv.Itoa(record.LineNumber), count}

	if w.opts.IncludePasswords {
		password := ""
		if record.Breached() {
			// Only already-confirmed-breached values are ever written out.
			password = record.Password
		}
		row = append(row, password)
	}

	return row
}

func (w *CSVWriter) Close() error {
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		return err
	}
	return w.file.Close()
}

// ExportCSV writes all records to filename in one shot.
func ExportCSV(filename string, records []batch.ResultRecord, opts ExportOptions) error {
	writer, err := NewCSVWriter(filename, opts)
	if err != nil {
		return err
	}

	if err := writer.WriteRecords(records); err != nil {
		writer.Close()
		return err
	}

	return writer.Close()
}
