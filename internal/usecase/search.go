package usecase

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/mhike/mhike/internal/database"
	"github.com/mhike/mhike/internal/hike"
)

// SearchOptions are search filters as typed on the command line or sent by
// an MCP client. Empty fields are ignored.
type SearchOptions struct {
	Name      string
	Location  string
	MinLength string
	MaxLength string
	StartDate string
	EndDate   string
}

// ResolveSearch converts search options into repository criteria, reporting
// every malformed filter at once.
func ResolveSearch(opts SearchOptions) (database.SearchCriteria, error) {
	var errs hike.ValidationErrors
	criteria := database.SearchCriteria{
		Name:      strings.TrimSpace(opts.Name),
		Location:  strings.TrimSpace(opts.Location),
		StartDate: strings.TrimSpace(opts.StartDate),
		EndDate:   strings.TrimSpace(opts.EndDate),
	}

	var err error
	if criteria.MinLength, err = parseBound(opts.MinLength); err != nil {
		errs = errs.Set("minLength", "minimum length must be a number")
	}
	if criteria.MaxLength, err = parseBound(opts.MaxLength); err != nil {
		errs = errs.Set("maxLength", "maximum length must be a number")
	}
	if criteria.MinLength != nil && criteria.MaxLength != nil && *criteria.MinLength > *criteria.MaxLength {
		errs = errs.Set("maxLength", "maximum length must not be below the minimum")
	}
	if criteria.StartDate != "" && !hike.IsCanonicalDate(criteria.StartDate) {
		errs = errs.Set("startDate", "start date must use the YYYY-MM-DD format")
	}
	if criteria.EndDate != "" && !hike.IsCanonicalDate(criteria.EndDate) {
		errs = errs.Set("endDate", "end date must use the YYYY-MM-DD format")
	}

	if err := errs.Err(); err != nil {
		return database.SearchCriteria{}, err
	}
	return criteria, nil
}

var errNonFiniteBound = errors.New("bound must be a finite number")

func parseBound(text string) (*float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, errNonFiniteBound
	}
	return &value, nil
}
