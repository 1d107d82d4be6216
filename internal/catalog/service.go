package catalog

import (
	"context"
	"fmt"
	"strings"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=catalog
type Repository interface {
	LoadAll(ctx context.Context) ([]Record, error)
	Append(ctx context.Context, rec Record) error
}

// Service holds the in-memory catalog for a session. Records are loaded once
// from the repository and cached; Add writes through to both the repository
// and the cache so the running session sees its own appends.
type Service struct {
	repo    Repository
	records []Record
	index   map[string]int
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Load reads all records from the repository and caches them, replacing any
// previously cached state. An empty dataset is an error: the advisor cannot
// operate without candidates to match against.
func (s *Service) Load(ctx context.Context) error {
	records, err := s.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	if len(records) == 0 {
		return ErrEmptyCatalog
	}

	index := make(map[string]int, len(records))
	for i, rec := range records {
		// First occurrence wins when the dataset carries duplicates.
		if _, ok := index[rec.Name]; !ok {
			index[rec.Name] = i
		}
	}

	s.records = records
	s.index = index

	return nil
}

// Names returns the waste type names in dataset order.
func (s *Service) Names() []string {
	names := make([]string, len(s.records))
	for i, rec := range s.records {
		names[i] = rec.Name
	}

	return names
}

// Records returns all cached records in dataset order.
func (s *Service) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)

	return out
}

// Len returns the number of cached records.
func (s *Service) Len() int {
	return len(s.records)
}

// Get looks up a record by its exact waste type name.
func (s *Service) Get(name string) (*Record, error) {
	i, ok := s.index[name]
	if !ok {
		return nil, ErrNotFound
	}

	rec := s.records[i]

	return &rec, nil
}

type AddParams struct {
	Name        string
	BestUse     string
	CompostTime string
	Nutrient    string
	Tips        string

	// YieldPct is the raw user-entered yield percentage. Values that do not
	// parse as a number are dropped silently rather than rejected.
	YieldPct *float64
}

// Add validates and persists a new waste type, then caches it. The name must
// be non-empty after trimming and unique within the catalog.
func (s *Service) Add(ctx context.Context, params AddParams) (*Record, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	if _, ok := s.index[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	rec := Record{
		Name:        name,
		BestUse:     strings.TrimSpace(params.BestUse),
		CompostTime: strings.TrimSpace(params.CompostTime),
		Nutrient:    strings.TrimSpace(params.Nutrient),
		Tips:        strings.TrimSpace(params.Tips),
		YieldPct:    params.YieldPct,
	}

	if err := s.repo.Append(ctx, rec); err != nil {
		return nil, fmt.Errorf("appending record: %w", err)
	}

	s.records = append(s.records, rec)
	if s.index == nil {
		s.index = make(map[string]int)
	}
	s.index[rec.Name] = len(s.records) - 1

	return &rec, nil
}
