// Package csvstore persists the waste catalog as a CSV file, the dataset
// format the advisor ships with (waste_data.csv).
package csvstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Balasairam26/farm-waste-fertilizer/internal/catalog"
	enc "github.com/Balasairam26/farm-waste-fertilizer/internal/encoding"
)

// Column names are a stable, case-sensitive contract with the dataset file.
const (
	colName        = "Waste Type"
	colBestUse     = "Best Use"
	colCompostTime = "Compost Time"
	colNutrient    = "Nutrient"
	colTips        = "Tips"
	colYieldPct    = "Yield_pct"
)

var header = []string{colName, colBestUse, colCompostTime, colNutrient, colTips, colYieldPct}

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// LoadAll reads every record from the dataset file in file order. A missing
// file is reported as catalog.ErrNotFound.
func (s *Store) LoadAll(_ context.Context) ([]catalog.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("dataset %s: %w", s.path, catalog.ErrNotFound)
		}

		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	utf8r, err := enc.UTF8Reader(f)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx := findHeader(rows)
	if cols == nil {
		return nil, fmt.Errorf("dataset %s: no %q header row found", s.path, colName)
	}

	var records []catalog.Record

	for _, row := range rows[headerIdx+1:] {
		name := cellValue(row, cols[colName])
		if name == "" {
			continue
		}

		records = append(records, catalog.Record{
			Name:        name,
			BestUse:     cellValue(row, cols[colBestUse]),
			CompostTime: cellValue(row, cols[colCompostTime]),
			Nutrient:    cellValue(row, cols[colNutrient]),
			Tips:        cellValue(row, cols[colTips]),
			YieldPct:    parseYield(cellValue(row, cols[colYieldPct])),
		})
	}

	return records, nil
}

// Append adds a record and rewrites the whole file, the same strategy the
// dataset has always used. Rewriting keeps the optional Yield_pct column
// consistent across all rows even when the original file predates it. There
// is no protection against concurrent writers.
func (s *Store) Append(ctx context.Context, rec catalog.Record) error {
	// A missing file is fine: the append creates it.
	existing, err := s.LoadAll(ctx)
	if err != nil && !errors.Is(err, catalog.ErrNotFound) {
		return err
	}

	return s.writeAll(append(existing, rec))
}

func (s *Store) writeAll(records []catalog.Record) error {
	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, "waste_data_*.csv")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)

	if err := w.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("writing header: %w", err)
	}

	for _, rec := range records {
		yield := ""
		if rec.YieldPct != nil {
			yield = strconv.FormatFloat(*rec.YieldPct, 'f', -1, 64)
		}

		row := []string{rec.Name, rec.BestUse, rec.CompostTime, rec.Nutrient, rec.Tips, yield}
		if err := w.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("writing record %q: %w", rec.Name, err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flushing csv: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing dataset: %w", err)
	}

	return nil
}

// findHeader scans for the row carrying the Waste Type column and maps column
// names to indices. Missing optional columns map to -1.
func findHeader(rows [][]string) (map[string]int, int) {
	for rowIdx, row := range rows {
		cols := map[string]int{
			colName:        -1,
			colBestUse:     -1,
			colCompostTime: -1,
			colNutrient:    -1,
			colTips:        -1,
			colYieldPct:    -1,
		}

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if _, ok := cols[name]; ok {
				cols[name] = i
			}
		}

		if cols[colName] != -1 {
			return cols, rowIdx
		}
	}

	return nil, 0
}

// parseYield converts the optional Yield_pct cell. Empty or unparseable
// values mean "not set", never an error.
func parseYield(s string) *float64 {
	if s == "" {
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}

	return &v
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
