package extract

import (
	"errors"
	"math"
	"testing"
)

func TestSummarizeTable_CSV(t *testing.T) {
	path := writeFile(t, "metrics.csv", "region,revenue,units\nNorth,100,10\nSouth,300,30\n")

	summary, err := SummarizeTable(path)
	if err != nil {
		t.Fatalf("SummarizeTable() error = %v", err)
	}

	if summary.Rows != 2 || summary.Cols != 3 {
		t.Errorf("shape = %dx%d, want 2x3", summary.Rows, summary.Cols)
	}
	// region is non-numeric and must be skipped.
	if len(summary.Columns) != 2 {
		t.Fatalf("numeric columns = %v, want revenue and units", summary.Columns)
	}
	revenue := summary.Columns[0]
	if revenue.Name != "revenue" || revenue.Mean != 200 || revenue.Max != 300 {
		t.Errorf("revenue stats = %+v", revenue)
	}
	units := summary.Columns[1]
	if units.Name != "units" || units.Mean != 20 || units.Max != 30 {
		t.Errorf("units stats = %+v", units)
	}
}

func TestSummarizeTable_TSV(t *testing.T) {
	path := writeFile(t, "metrics.tsv", "score\n1.5\n2.5\n")

	summary, err := SummarizeTable(path)
	if err != nil {
		t.Fatalf("SummarizeTable() error = %v", err)
	}
	if len(summary.Columns) != 1 {
		t.Fatalf("columns = %v", summary.Columns)
	}
	if math.Abs(summary.Columns[0].Mean-2.0) > 1e-9 {
		t.Errorf("mean = %v, want 2.0", summary.Columns[0].Mean)
	}
}

func TestSummarizeTable_UnknownExtension(t *testing.T) {
	path := writeFile(t, "data.parquet", "ignored")

	_, err := SummarizeTable(path)
	if !errors.Is(err, ErrUnknownTableType) {
		t.Errorf("error = %v, want ErrUnknownTableType", err)
	}
}

func TestSummarizeTable_CorruptXLSX(t *testing.T) {
	path := writeFile(t, "metrics.xlsx", "not a zip archive")

	if _, err := SummarizeTable(path); err == nil {
		t.Error("SummarizeTable() = nil, want error for a corrupt workbook")
	}
}

func TestSummarizeTable_Empty(t *testing.T) {
	path := writeFile(t, "empty.csv", "")

	_, err := SummarizeTable(path)
	if !errors.Is(err, ErrEmptyTable) {
		t.Errorf("error = %v, want ErrEmptyTable", err)
	}
}

func TestSummarizeTable_HeaderOnly(t *testing.T) {
	path := writeFile(t, "header.csv", "a,b,c\n")

	_, err := SummarizeTable(path)
	if !errors.Is(err, ErrEmptyTable) {
		t.Errorf("error = %v, want ErrEmptyTable", err)
	}
}

func TestSplitHeader(t *testing.T) {
	tests := []struct {
		name       string
		records    [][]string
		wantHeader bool
		wantData   int
	}{
		{
			name:       "textual first row is header",
			records:    [][]string{{"name", "value"}, {"a", "1"}},
			wantHeader: true,
			wantData:   1,
		},
		{
			name:       "all-numeric first row is data",
			records:    [][]string{{"1", "2"}, {"3", "4"}},
			wantHeader: false,
			wantData:   2,
		},
		{
			name:       "mixed first row is header",
			records:    [][]string{{"1", "total"}, {"3", "4"}},
			wantHeader: true,
			wantData:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, data := splitHeader(tt.records)
			if (header != nil) != tt.wantHeader {
				t.Errorf("header = %v, wantHeader %v", header, tt.wantHeader)
			}
			if len(data) != tt.wantData {
				t.Errorf("data rows = %d, want %d", len(data), tt.wantData)
			}
		})
	}
}

func TestColumnStats(t *testing.T) {
	data := [][]string{{"10", "x"}, {"20", "y"}, {"", "z"}}

	stats, ok := columnStats(data, 0)
	if !ok {
		t.Fatal("column 0 should be numeric")
	}
	if stats.Mean != 15 || stats.Max != 20 {
		t.Errorf("stats = %+v, want mean 15 max 20", stats)
	}

	if _, ok := columnStats(data, 1); ok {
		t.Error("column 1 should not be numeric")
	}
	if _, ok := columnStats(data, 5); ok {
		t.Error("out-of-range column should not be numeric")
	}
}

func TestColumnStats_NegativeValues(t *testing.T) {
	data := [][]string{{"-5"}, {"-10"}}

	stats, ok := columnStats(data, 0)
	if !ok {
		t.Fatal("column should be numeric")
	}
	// Max must track the first value correctly even when all values are negative.
	if stats.Max != -5 {
		t.Errorf("max = %v, want -5", stats.Max)
	}
}

func TestColumnName(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		col    int
		want   string
	}{
		{name: "from header", header: []string{"alpha", "beta"}, col: 1, want: "beta"},
		{name: "blank header cell", header: []string{"alpha", "  "}, col: 1, want: "column 2"},
		{name: "no header", header: nil, col: 0, want: "column 1"},
		{name: "past header end", header: []string{"alpha"}, col: 2, want: "column 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := columnName(tt.header, tt.col); got != tt.want {
				t.Errorf("columnName() = %q, want %q", got, tt.want)
			}
		})
	}
}
