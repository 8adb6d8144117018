package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// SchemaError reports required columns missing from the CSV header. It is
// returned before any data row is processed.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("catalog header missing required column(s): %s", strings.Join(e.Missing, ", "))
}

// Load reads a catalog CSV from disk. A missing file surfaces the
// underlying os error, so callers can test it with errors.Is(err,
// fs.ErrNotExist).
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return records, nil
}

// Read parses catalog rows from r. The header must contain every column in
// RequiredColumns; order does not matter and extra columns are ignored.
// Rows with missing or non-numeric values are retained with the affected
// fields flagged absent, so the aggregation step can count them as skipped
// rather than aborting the run.
func Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &SchemaError{Missing: RequiredColumns}
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		rec := Record{ObjectType: field(row, index[ColObjectType])}
		rec.SemimajorAxisKm, rec.HasSemimajorAxis = parseField(row, index[ColSemimajorAxis])
		rec.ApoapsisKm, rec.HasApoapsis = parseField(row, index[ColApoapsis])
		rec.PeriapsisKm, rec.HasPeriapsis = parseField(row, index[ColPeriapsis])
		records = append(records, rec)
	}
	return records, nil
}

// field returns the trimmed cell at i, or "" when the row is too short.
func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseField parses the cell at i as a float. Empty cells, short rows, and
// unparseable values all report ok=false.
func parseField(row []string, i int) (float64, bool) {
	s := field(row, i)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
