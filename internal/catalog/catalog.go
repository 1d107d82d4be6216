package catalog

import "errors"

var (
	// ErrNotFound is returned when the backing dataset is missing, or when a
	// record is looked up by a name the catalog does not contain.
	ErrNotFound = errors.New("catalog: not found")

	// ErrEmptyName is returned when a record is added without a waste type name.
	ErrEmptyName = errors.New("catalog: waste type name is required")

	// ErrDuplicateName is returned when a record with the same waste type name
	// already exists in the catalog.
	ErrDuplicateName = errors.New("catalog: waste type already exists")

	// ErrEmptyCatalog is returned when the backing dataset loads zero records.
	ErrEmptyCatalog = errors.New("catalog: dataset is empty")
)

// Record describes one known waste type and its composting advice.
type Record struct {
	Name        string
	BestUse     string
	CompostTime string
	Nutrient    string
	Tips        string

	// YieldPct is the expected compost yield as a percentage of input mass.
	// Nil means the dataset does not specify one and callers should fall back
	// to a default.
	YieldPct *float64
}

// HasYield reports whether the record carries an explicit yield percentage.
func (r *Record) HasYield() bool {
	return r.YieldPct != nil
}
