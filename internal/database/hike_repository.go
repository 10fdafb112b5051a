package database

import (
	"context"
	"database/sql"
	"errors"

	sqldb "github.com/mhike/mhike/internal/database/sqlc"
	"github.com/mhike/mhike/internal/hike"
)

// HikeRepository reads and writes the hikes table. Store failures are logged
// here and returned wrapped in ErrStore; list results are never partial.
type HikeRepository struct {
	ctx *Context
}

func NewHikeRepository(dbCtx *Context) *HikeRepository {
	return &HikeRepository{ctx: dbCtx}
}

// Insert validates h, writes it as a new row and returns the id the store
// assigned. created_at is stamped by the store at write time.
func (r *HikeRepository) Insert(ctx context.Context, h hike.Hike) (int64, error) {
	if err := hike.ValidateHike(h); err != nil {
		return 0, err
	}

	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return 0, ErrMissingContext
	}

	res, err := queries.InsertHike(ctx, hikeInsertParams(h))
	if err != nil {
		return 0, r.fail("insert hike", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, r.fail("insert hike", err)
	}
	return id, nil
}

// GetByID returns nil without an error when no hike has that id.
func (r *HikeRepository) GetByID(ctx context.Context, id int64) (*hike.Hike, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, ErrMissingContext
	}

	row, err := queries.GetHike(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, r.fail("get hike", err, "id", id)
	}

	record := hikeFromRow(row)
	return &record, nil
}

// GetAll returns every hike, newest date first.
func (r *HikeRepository) GetAll(ctx context.Context) ([]hike.Hike, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, ErrMissingContext
	}

	rows, err := queries.ListHikes(ctx)
	if err != nil {
		return nil, r.fail("list hikes", err)
	}
	return hikesFromRows(rows), nil
}

// Update rewrites every mutable column of the row with h.ID after checking
// h. Zero rows affected means there is no such hike.
func (r *HikeRepository) Update(ctx context.Context, h hike.Hike) (int64, error) {
	if err := hike.ValidateHike(h); err != nil {
		return 0, err
	}

	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return 0, ErrMissingContext
	}

	affected, err := queries.UpdateHike(ctx, hikeUpdateParams(h))
	if err != nil {
		return 0, r.fail("update hike", err, "id", h.ID)
	}
	return affected, nil
}

// Delete removes the hike and its observations atomically. SQLite's cascade
// handles the observations; when foreign keys are off on the connection the
// observations are deleted first inside the same transaction.
func (r *HikeRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var affected int64
	err := withTx(ctx, r.ctx, func(q *sqldb.Queries) error {
		enabled, err := q.ForeignKeysEnabled(ctx)
		if err != nil {
			return err
		}
		if !enabled {
			if _, err := q.DeleteObservationsByHike(ctx, id); err != nil {
				return err
			}
		}

		affected, err = q.DeleteHike(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrMissingContext) {
			return 0, err
		}
		return 0, r.fail("delete hike", err, "id", id)
	}
	return affected, nil
}

// DeleteAll removes every hike, and through the cascade every observation.
func (r *HikeRepository) DeleteAll(ctx context.Context) (int64, error) {
	var affected int64
	err := withTx(ctx, r.ctx, func(q *sqldb.Queries) error {
		enabled, err := q.ForeignKeysEnabled(ctx)
		if err != nil {
			return err
		}
		if !enabled {
			if _, err := q.DeleteAllObservations(ctx); err != nil {
				return err
			}
		}

		affected, err = q.DeleteAllHikes(ctx)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrMissingContext) {
			return 0, err
		}
		return 0, r.fail("delete all hikes", err)
	}
	return affected, nil
}

// SearchByName matches fragment anywhere in the name, ignoring case.
func (r *HikeRepository) SearchByName(ctx context.Context, fragment string) ([]hike.Hike, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, ErrMissingContext
	}

	rows, err := queries.SearchHikesByName(ctx, containsPattern(fragment))
	if err != nil {
		return nil, r.fail("search hikes by name", err)
	}
	return hikesFromRows(rows), nil
}

// Count returns the number of stored hikes.
func (r *HikeRepository) Count(ctx context.Context) (int64, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return 0, ErrMissingContext
	}

	count, err := queries.CountHikes(ctx)
	if err != nil {
		return 0, r.fail("count hikes", err)
	}
	return count, nil
}

func (r *HikeRepository) fail(op string, err error, attrs ...any) error {
	args := append([]any{"op", op, "error", err}, attrs...)
	loggerFromContext(r.ctx).Error("hike repository failure", args...)
	return storeError(op, err)
}
