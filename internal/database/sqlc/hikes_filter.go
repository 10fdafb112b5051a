package sqldb

import (
	"context"
	"strings"
)

const filterHikesBase = `SELECT id, name, location, date, parking_available, length, difficulty, description, weather_condition, estimated_duration, created_at
FROM hikes
WHERE 1=1`

// HikeFilter is one conjunct of a FilterHikes query. Clause is a SQL fragment
// with a single placeholder bound to Arg.
type HikeFilter struct {
	Clause string
	Arg    any
}

// FilterHikes runs the hikes listing with every filter ANDed on, newest date
// first.
func (q *Queries) FilterHikes(ctx context.Context, filters []HikeFilter) ([]Hike, error) {
	var sb strings.Builder
	sb.WriteString(filterHikesBase)
	args := make([]any, 0, len(filters))
	for _, f := range filters {
		sb.WriteString("\n  AND ")
		sb.WriteString(f.Clause)
		args = append(args, f.Arg)
	}
	sb.WriteString("\nORDER BY date DESC, id DESC")

	rows, err := q.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Hike
	for rows.Next() {
		var i Hike
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Location,
			&i.Date,
			&i.ParkingAvailable,
			&i.Length,
			&i.Difficulty,
			&i.Description,
			&i.WeatherCondition,
			&i.EstimatedDuration,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
