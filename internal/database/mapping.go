package database

import (
	sqldb "github.com/mhike/mhike/internal/database/sqlc"
	"github.com/mhike/mhike/internal/hike"
)

func hikeFromRow(row sqldb.Hike) hike.Hike {
	return hike.Hike{
		ID:                row.ID,
		Name:              row.Name,
		Location:          row.Location,
		Date:              row.Date,
		ParkingAvailable:  row.ParkingAvailable,
		Length:            row.Length,
		Difficulty:        row.Difficulty,
		Description:       optionalString(row.Description),
		WeatherCondition:  optionalString(row.WeatherCondition),
		EstimatedDuration: optionalString(row.EstimatedDuration),
		CreatedAt:         optionalString(row.CreatedAt),
	}
}

func hikesFromRows(rows []sqldb.Hike) []hike.Hike {
	result := make([]hike.Hike, 0, len(rows))
	for _, row := range rows {
		result = append(result, hikeFromRow(row))
	}
	return result
}

func hikeInsertParams(h hike.Hike) sqldb.InsertHikeParams {
	return sqldb.InsertHikeParams{
		Name:              h.Name,
		Location:          h.Location,
		Date:              h.Date,
		ParkingAvailable:  h.ParkingAvailable,
		Length:            h.Length,
		Difficulty:        h.Difficulty,
		Description:       nullString(h.Description),
		WeatherCondition:  nullString(h.WeatherCondition),
		EstimatedDuration: nullString(h.EstimatedDuration),
	}
}

func hikeUpdateParams(h hike.Hike) sqldb.UpdateHikeParams {
	params := hikeInsertParams(h)
	return sqldb.UpdateHikeParams{
		Name:              params.Name,
		Location:          params.Location,
		Date:              params.Date,
		ParkingAvailable:  params.ParkingAvailable,
		Length:            params.Length,
		Difficulty:        params.Difficulty,
		Description:       params.Description,
		WeatherCondition:  params.WeatherCondition,
		EstimatedDuration: params.EstimatedDuration,
		ID:                h.ID,
	}
}

func observationFromRow(row sqldb.Observation) hike.Observation {
	return hike.Observation{
		ID:          row.ID,
		HikeID:      row.HikeID,
		Observation: row.Observation,
		Time:        row.Time,
		Comments:    optionalString(row.Comments),
	}
}

func observationsFromRows(rows []sqldb.Observation) []hike.Observation {
	result := make([]hike.Observation, 0, len(rows))
	for _, row := range rows {
		result = append(result, observationFromRow(row))
	}
	return result
}
