// Package store loads the static scheme catalog from its versioned data file.
// The catalog is immutable after load; lifecycle is owned by startup, not
// ambient global state.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"saarthi/internal/scheme"
)

// Catalog is the in-memory read-only scheme collection.
type Catalog struct {
	schemes []scheme.SchemeDefinition
	byID    map[string]int
}

// New builds a catalog from already-parsed definitions. Exposed for tests and
// for alternative loaders.
func New(schemes []scheme.SchemeDefinition) (*Catalog, error) {
	if err := validate(schemes); err != nil {
		return nil, err
	}
	byID := make(map[string]int, len(schemes))
	for i, s := range schemes {
		byID[s.ID] = i
	}
	return &Catalog{schemes: schemes, byID: byID}, nil
}

// LoadFile reads and validates the catalog data file. Startup fails on any
// invalid record rather than serving a partial catalog.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schemes file: %w", err)
	}
	var schemes []scheme.SchemeDefinition
	if err := json.Unmarshal(raw, &schemes); err != nil {
		return nil, fmt.Errorf("parse schemes file: %w", err)
	}
	return New(schemes)
}

// All returns every scheme in catalog order. Callers get a copy of the slice
// header only; the records themselves are shared and must not be mutated.
func (c *Catalog) All() []scheme.SchemeDefinition {
	out := make([]scheme.SchemeDefinition, len(c.schemes))
	copy(out, c.schemes)
	return out
}

// Get returns the scheme with the given id.
func (c *Catalog) Get(id string) (scheme.SchemeDefinition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return scheme.SchemeDefinition{}, false
	}
	return c.schemes[i], true
}

// Len reports the number of schemes.
func (c *Catalog) Len() int {
	return len(c.schemes)
}

func validate(schemes []scheme.SchemeDefinition) error {
	seen := make(map[string]struct{}, len(schemes))
	for i, s := range schemes {
		if s.ID == "" {
			return fmt.Errorf("scheme %d: missing id", i)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("scheme %q: duplicate id", s.ID)
		}
		seen[s.ID] = struct{}{}

		if s.Name == "" {
			return fmt.Errorf("scheme %q: missing name", s.ID)
		}

		e := s.Eligibility
		if e.MinAge != nil && *e.MinAge < 0 {
			return fmt.Errorf("scheme %q: negative min_age", s.ID)
		}
		if e.MaxAge != nil && *e.MaxAge < 0 {
			return fmt.Errorf("scheme %q: negative max_age", s.ID)
		}
		if e.MinAge != nil && e.MaxAge != nil && *e.MinAge > *e.MaxAge {
			return fmt.Errorf("scheme %q: min_age exceeds max_age", s.ID)
		}
		if e.MaxAnnualIncome != nil && *e.MaxAnnualIncome < 0 {
			return fmt.Errorf("scheme %q: negative max_annual_income", s.ID)
		}
	}
	return nil
}
