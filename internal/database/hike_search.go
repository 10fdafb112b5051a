package database

import (
	"context"
	"strings"

	sqldb "github.com/mhike/mhike/internal/database/sqlc"
	"github.com/mhike/mhike/internal/hike"
)

// SearchCriteria narrows a hike listing. The zero value matches everything.
// Blank text filters are ignored; bounds are inclusive.
type SearchCriteria struct {
	Name      string
	Location  string
	MinLength *float64
	MaxLength *float64
	StartDate string
	EndDate   string
}

// IsEmpty reports whether no filter is set.
func (c SearchCriteria) IsEmpty() bool {
	return len(c.filters()) == 0
}

func (c SearchCriteria) filters() []sqldb.HikeFilter {
	var filters []sqldb.HikeFilter
	if name := strings.TrimSpace(c.Name); name != "" {
		filters = append(filters, sqldb.HikeFilter{Clause: `name LIKE ? ESCAPE '\'`, Arg: containsPattern(name)})
	}
	if location := strings.TrimSpace(c.Location); location != "" {
		filters = append(filters, sqldb.HikeFilter{Clause: `location LIKE ? ESCAPE '\'`, Arg: containsPattern(location)})
	}
	if c.MinLength != nil {
		filters = append(filters, sqldb.HikeFilter{Clause: "length >= ?", Arg: *c.MinLength})
	}
	if c.MaxLength != nil {
		filters = append(filters, sqldb.HikeFilter{Clause: "length <= ?", Arg: *c.MaxLength})
	}
	if start := strings.TrimSpace(c.StartDate); start != "" {
		filters = append(filters, sqldb.HikeFilter{Clause: "date >= ?", Arg: start})
	}
	if end := strings.TrimSpace(c.EndDate); end != "" {
		filters = append(filters, sqldb.HikeFilter{Clause: "date <= ?", Arg: end})
	}
	return filters
}

// Search returns the hikes matching every filter set in criteria, newest date
// first. With no filters it returns the same rows as GetAll.
func (r *HikeRepository) Search(ctx context.Context, criteria SearchCriteria) ([]hike.Hike, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, ErrMissingContext
	}

	rows, err := queries.FilterHikes(ctx, criteria.filters())
	if err != nil {
		return nil, r.fail("search hikes", err)
	}
	return hikesFromRows(rows), nil
}

// AdvancedSearch is Search with each filter passed positionally.
func (r *HikeRepository) AdvancedSearch(ctx context.Context, name, location string, minLength, maxLength *float64, startDate, endDate string) ([]hike.Hike, error) {
	return r.Search(ctx, SearchCriteria{
		Name:      name,
		Location:  location,
		MinLength: minLength,
		MaxLength: maxLength,
		StartDate: startDate,
		EndDate:   endDate,
	})
}
