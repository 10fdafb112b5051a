package sqldb

import (
	"context"
	"database/sql"
)

const countHikes = `-- name: CountHikes :one
SELECT COUNT(*) FROM hikes`

func (q *Queries) CountHikes(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countHikes)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const deleteHike = `-- name: DeleteHike :execrows
DELETE FROM hikes WHERE id = ?`

func (q *Queries) DeleteHike(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteHike, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const getHike = `-- name: GetHike :one
SELECT id, name, location, date, parking_available, length, difficulty, description, weather_condition, estimated_duration, created_at
FROM hikes
WHERE id = ?`

func (q *Queries) GetHike(ctx context.Context, id int64) (Hike, error) {
	row := q.db.QueryRowContext(ctx, getHike, id)
	var i Hike
	err := row.Scan(
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
	)
	return i, err
}

const insertHike = `-- name: InsertHike :execresult
INSERT INTO hikes (name, location, date, parking_available, length, difficulty, description, weather_condition, estimated_duration, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`

type InsertHikeParams struct {
	Name              string
	Location          string
	Date              string
	ParkingAvailable  string
	Length            float64
	Difficulty        string
	Description       sql.NullString
	WeatherCondition  sql.NullString
	EstimatedDuration sql.NullString
}

func (q *Queries) InsertHike(ctx context.Context, arg InsertHikeParams) (sql.Result, error) {
	return q.db.ExecContext(ctx, insertHike,
		arg.Name,
		arg.Location,
		arg.Date,
		arg.ParkingAvailable,
		arg.Length,
		arg.Difficulty,
		arg.Description,
		arg.WeatherCondition,
		arg.EstimatedDuration,
	)
}

const listHikes = `-- name: ListHikes :many
SELECT id, name, location, date, parking_available, length, difficulty, description, weather_condition, estimated_duration, created_at
FROM hikes
ORDER BY date DESC, id DESC`

func (q *Queries) ListHikes(ctx context.Context) ([]Hike, error) {
	rows, err := q.db.QueryContext(ctx, listHikes)
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

const searchHikesByName = `-- name: SearchHikesByName :many
SELECT id, name, location, date, parking_available, length, difficulty, description, weather_condition, estimated_duration, created_at
FROM hikes
WHERE name LIKE ? ESCAPE '\'
ORDER BY date DESC, id DESC`

func (q *Queries) SearchHikesByName(ctx context.Context, pattern string) ([]Hike, error) {
	rows, err := q.db.QueryContext(ctx, searchHikesByName, pattern)
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

const updateHike = `-- name: UpdateHike :execrows
UPDATE hikes
SET name = ?,
    location = ?,
    date = ?,
    parking_available = ?,
    length = ?,
    difficulty = ?,
    description = ?,
    weather_condition = ?,
    estimated_duration = ?
WHERE id = ?`

type UpdateHikeParams struct {
	Name              string
	Location          string
	Date              string
	ParkingAvailable  string
	Length            float64
	Difficulty        string
	Description       sql.NullString
	WeatherCondition  sql.NullString
	EstimatedDuration sql.NullString
	ID                int64
}

func (q *Queries) UpdateHike(ctx context.Context, arg UpdateHikeParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateHike,
		arg.Name,
		arg.Location,
		arg.Date,
		arg.ParkingAvailable,
		arg.Length,
		arg.Difficulty,
		arg.Description,
		arg.WeatherCondition,
		arg.EstimatedDuration,
		arg.ID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
