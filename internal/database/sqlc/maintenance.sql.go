package sqldb

import "context"

const deleteAllObservations = `-- name: DeleteAllObservations :execrows
DELETE FROM observations`

func (q *Queries) DeleteAllObservations(ctx context.Context) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteAllObservations)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteAllHikes = `-- name: DeleteAllHikes :execrows
DELETE FROM hikes`

func (q *Queries) DeleteAllHikes(ctx context.Context) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteAllHikes)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const foreignKeysEnabled = `-- name: ForeignKeysEnabled :one
PRAGMA foreign_keys`

func (q *Queries) ForeignKeysEnabled(ctx context.Context) (bool, error) {
	row := q.db.QueryRowContext(ctx, foreignKeysEnabled)
	var enabled int64
	err := row.Scan(&enabled)
	return enabled == 1, err
}
