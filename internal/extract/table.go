package extract

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tsawler/tabula/xlsx"
)

// Sentinel errors for table extraction.
var (
	ErrEmptyTable       = errors.New("table has no rows")
	ErrUnknownTableType = errors.New("unknown table file type")
)

// ColumnStats holds the derived statistics for one numeric column.
type ColumnStats struct {
	Name string
	Mean float64
	Max  float64
}

// TableSummary describes a parsed table: its shape and the statistics of
// its numeric columns, in column order.
type TableSummary struct {
	Rows    int // data rows, excluding a detected header
	Cols    int
	Columns []ColumnStats
}

// SummarizeTable parses a CSV, TSV, or XLSX file into row/column counts and
// per-column numeric statistics.
func SummarizeTable(path string) (*TableSummary, error) {
	var (
		records [][]string
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		records, err = readDelimited(path, ',')
	case ".tsv":
		records, err = readDelimited(path, '\t')
	case ".xlsx":
		records, err = readWorkbook(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTableType, filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	return summarizeRecords(records)
}

// readDelimited loads a delimited text file with ragged rows allowed.
func readDelimited(path string, delimiter rune) ([][]string, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided input path
	if err != nil {
		return nil, fmt.Errorf("opening table: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing table: %w", err)
	}
	return records, nil
}

// readWorkbook loads the first sheet of an XLSX workbook as string records.
func readWorkbook(path string) ([][]string, error) {
	reader, err := xlsx.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer reader.Close()

	sheet, err := reader.Sheet(0)
	if err != nil {
		return nil, fmt.Errorf("reading worksheet: %w", err)
	}

	records := make([][]string, 0, sheet.RowCount())
	for _, row := range sheet.Rows {
		cells := make([]string, len(row))
		for i := range row {
			cells[i] = row[i].Value
		}
		records = append(records, cells)
	}
	return records, nil
}

// summarizeRecords computes the table shape and numeric column statistics.
// The first row is treated as a header when any of its non-empty cells is
// not a number.
func summarizeRecords(records [][]string) (*TableSummary, error) {
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	cols := 0
	for _, row := range records {
		if len(row) > cols {
			cols = len(row)
		}
	}

	header, data := splitHeader(records)
	if len(data) == 0 {
		return nil, ErrEmptyTable
	}

	summary := &TableSummary{Rows: len(data), Cols: cols}
	for col := 0; col < cols; col++ {
		stats, ok := columnStats(data, col)
		if !ok {
			continue
		}
		stats.Name = columnName(header, col)
		summary.Columns = append(summary.Columns, stats)
	}
	return summary, nil
}

// splitHeader separates a detected header row from the data rows.
func splitHeader(records [][]string) (header []string, data [][]string) {
	first := records[0]
	for _, cell := range first {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			return first, records[1:]
		}
	}
	return nil, records
}

// columnStats computes mean and max for one column. A column counts as
// numeric when it has at least one value and every non-empty cell parses
// as a number.
func columnStats(data [][]string, col int) (ColumnStats, bool) {
	var (
		sum   float64
		max   float64
		count int
	)
	for _, row := range data {
		if col >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[col])
		if cell == "" {
			continue
		}
		value, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return ColumnStats{}, false
		}
		if count == 0 || value > max {
			max = value
		}
		sum += value
		count++
	}
	if count == 0 {
		return ColumnStats{}, false
	}
	return ColumnStats{Mean: sum / float64(count), Max: max}, true
}

// columnName resolves a display name for column col from the header row,
// falling back to a positional name.
func columnName(header []string, col int) string {
	if col < len(header) {
		if name := strings.TrimSpace(header[col]); name != "" {
			return name
		}
	}
	return fmt.Sprintf("column %d", col+1)
}
