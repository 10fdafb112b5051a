package database

import (
	"context"
	"database/sql"
	"errors"

	sqldb "github.com/mhike/mhike/internal/database/sqlc"
	"github.com/mhike/mhike/internal/hike"
)

// ObservationRepository reads and writes the observations table.
type ObservationRepository struct {
	ctx *Context
}

func NewObservationRepository(dbCtx *Context) *ObservationRepository {
	return &ObservationRepository{ctx: dbCtx}
}

// Insert validates o and writes it, returning the new id. A hikeId with no
// matching hike is rejected by the foreign key.
func (r *ObservationRepository) Insert(ctx context.Context, o hike.Observation) (int64, error) {
	if err := hike.ValidateObservation(o); err != nil {
		return 0, err
	}

	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return 0, ErrMissingContext
	}

	res, err := queries.InsertObservation(ctx, sqldb.InsertObservationParams{
		HikeID:      o.HikeID,
		Observation: o.Observation,
		Time:        o.Time,
		Comments:    nullString(o.Comments),
	})
	if err != nil {
		return 0, r.fail("insert observation", err, "hike_id", o.HikeID)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, r.fail("insert observation", err, "hike_id", o.HikeID)
	}
	return id, nil
}

// GetByID returns nil without an error when no observation has that id.
func (r *ObservationRepository) GetByID(ctx context.Context, id int64) (*hike.Observation, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, ErrMissingContext
	}

	row, err := queries.GetObservation(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, r.fail("get observation", err, "id", id)
	}

	record := observationFromRow(row)
	return &record, nil
}

// GetForHike lists a hike's observations, most recent first.
func (r *ObservationRepository) GetForHike(ctx context.Context, hikeID int64) ([]hike.Observation, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, ErrMissingContext
	}

	rows, err := queries.ListObservationsByHike(ctx, hikeID)
	if err != nil {
		return nil, r.fail("list observations", err, "hike_id", hikeID)
	}
	return observationsFromRows(rows), nil
}

// Update validates o and rewrites the text, time and comments of o.ID. The
// owning hike never changes.
func (r *ObservationRepository) Update(ctx context.Context, o hike.Observation) (int64, error) {
	if err := hike.ValidateObservation(o); err != nil {
		return 0, err
	}

	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return 0, ErrMissingContext
	}

	affected, err := queries.UpdateObservation(ctx, sqldb.UpdateObservationParams{
		Observation: o.Observation,
		Time:        o.Time,
		Comments:    nullString(o.Comments),
		ID:          o.ID,
	})
	if err != nil {
		return 0, r.fail("update observation", err, "id", o.ID)
	}
	return affected, nil
}

func (r *ObservationRepository) Delete(ctx context.Context, id int64) (int64, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return 0, ErrMissingContext
	}

	affected, err := queries.DeleteObservation(ctx, id)
	if err != nil {
		return 0, r.fail("delete observation", err, "id", id)
	}
	return affected, nil
}

// DeleteForHike removes every observation of a hike.
func (r *ObservationRepository) DeleteForHike(ctx context.Context, hikeID int64) (int64, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return 0, ErrMissingContext
	}

	affected, err := queries.DeleteObservationsByHike(ctx, hikeID)
	if err != nil {
		return 0, r.fail("delete observations for hike", err, "hike_id", hikeID)
	}
	return affected, nil
}

// CountForHike never fails: a store error is logged and reported as 0.
func (r *ObservationRepository) CountForHike(ctx context.Context, hikeID int64) int64 {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return 0
	}

	count, err := queries.CountObservationsByHike(ctx, hikeID)
	if err != nil {
		_ = r.fail("count observations", err, "hike_id", hikeID)
		return 0
	}
	return count
}

func (r *ObservationRepository) fail(op string, err error, attrs ...any) error {
	args := append([]any{"op", op, "error", err}, attrs...)
	loggerFromContext(r.ctx).Error("observation repository failure", args...)
	return storeError(op, err)
}
