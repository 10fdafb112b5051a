package sqldb

import (
	"context"
	"database/sql"
)

const countObservationsByHike = `-- name: CountObservationsByHike :one
SELECT COUNT(*) FROM observations WHERE hike_id = ?`

func (q *Queries) CountObservationsByHike(ctx context.Context, hikeID int64) (int64, error) {
	row := q.db.QueryRowContext(ctx, countObservationsByHike, hikeID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const deleteObservation = `-- name: DeleteObservation :execrows
DELETE FROM observations WHERE id = ?`

func (q *Queries) DeleteObservation(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteObservation, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteObservationsByHike = `-- name: DeleteObservationsByHike :execrows
DELETE FROM observations WHERE hike_id = ?`

func (q *Queries) DeleteObservationsByHike(ctx context.Context, hikeID int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteObservationsByHike, hikeID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const getObservation = `-- name: GetObservation :one
SELECT id, hike_id, observation, time, comments
FROM observations
WHERE id = ?`

func (q *Queries) GetObservation(ctx context.Context, id int64) (Observation, error) {
	row := q.db.QueryRowContext(ctx, getObservation, id)
	var i Observation
	err := row.Scan(
		&i.ID,
		&i.HikeID,
		&i.Observation,
		&i.Time,
		&i.Comments,
	)
	return i, err
}

const insertObservation = `-- name: InsertObservation :execresult
INSERT INTO observations (hike_id, observation, time, comments)
VALUES (?, ?, ?, ?)`

type InsertObservationParams struct {
	HikeID      int64
	Observation string
	Time        string
	Comments    sql.NullString
}

func (q *Queries) InsertObservation(ctx context.Context, arg InsertObservationParams) (sql.Result, error) {
	return q.db.ExecContext(ctx, insertObservation,
		arg.HikeID,
		arg.Observation,
		arg.Time,
		arg.Comments,
	)
}

const listObservationsByHike = `-- name: ListObservationsByHike :many
SELECT id, hike_id, observation, time, comments
FROM observations
WHERE hike_id = ?
ORDER BY time DESC, id DESC`

func (q *Queries) ListObservationsByHike(ctx context.Context, hikeID int64) ([]Observation, error) {
	rows, err := q.db.QueryContext(ctx, listObservationsByHike, hikeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Observation
	for rows.Next() {
		var i Observation
		if err := rows.Scan(
			&i.ID,
			&i.HikeID,
			&i.Observation,
			&i.Time,
			&i.Comments,
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

const updateObservation = `-- name: UpdateObservation :execrows
UPDATE observations
SET observation = ?,
    time = ?,
    comments = ?
WHERE id = ?`

type UpdateObservationParams struct {
	Observation string
	Time        string
	Comments    sql.NullString
	ID          int64
}

func (q *Queries) UpdateObservation(ctx context.Context, arg UpdateObservationParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateObservation,
		arg.Observation,
		arg.Time,
		arg.Comments,
		arg.ID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
