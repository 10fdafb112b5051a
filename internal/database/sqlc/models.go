package sqldb

import "database/sql"

type Hike struct {
	ID                int64
	Name              string
	Location          string
	Date              string
	ParkingAvailable  string
	Length            float64
	Difficulty        string
	Description       sql.NullString
	WeatherCondition  sql.NullString
	EstimatedDuration sql.NullString
	CreatedAt         sql.NullString
}

type Observation struct {
	ID          int64
	HikeID      int64
	Observation string
	Time        string
	Comments    sql.NullString
}
