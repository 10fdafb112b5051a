package usecase

import (
	"context"
	"strings"

	"github.com/mhike/mhike/internal/database"
	"github.com/mhike/mhike/internal/hike"
)

type Observations struct {
	hikes        *database.HikeRepository
	observations *database.ObservationRepository
}

func NewObservations(dbCtx *database.Context) *Observations {
	return &Observations{
		hikes:        database.NewHikeRepository(dbCtx),
		observations: database.NewObservationRepository(dbCtx),
	}
}

type AddObservationInput struct {
	HikeID      int64
	Observation string
	Time        string
	Comments    string
}

// Add records an observation against an existing hike. An empty time means
// now.
func (u *Observations) Add(ctx context.Context, input AddObservationInput) (*hike.Observation, error) {
	owner, err := u.hikes.GetByID(ctx, input.HikeID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, notFound("hike", input.HikeID)
	}

	o := hike.NewObservation(input.HikeID, strings.TrimSpace(input.Observation), strings.TrimSpace(input.Comments))
	if at := strings.TrimSpace(input.Time); at != "" {
		o.Time = at
	}

	id, err := u.observations.Insert(ctx, o)
	if err != nil {
		return nil, err
	}
	o.ID = id
	return &o, nil
}

// List returns the hike's observations, newest first.
func (u *Observations) List(ctx context.Context, hikeID int64) ([]hike.Observation, error) {
	return u.observations.GetForHike(ctx, hikeID)
}

// EditObservationInput changes only the fields that are set.
type EditObservationInput struct {
	ID          int64
	Observation *string
	Time        *string
	Comments    *string
}

func (u *Observations) Edit(ctx context.Context, input EditObservationInput) (*hike.Observation, error) {
	current, err := u.observations.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, notFound("observation", input.ID)
	}

	updated := *current
	if input.Observation != nil {
		updated.Observation = strings.TrimSpace(*input.Observation)
	}
	if input.Time != nil {
		updated.Time = strings.TrimSpace(*input.Time)
	}
	if input.Comments != nil {
		updated.Comments = strings.TrimSpace(*input.Comments)
	}
	if err := hike.ValidateObservation(updated); err != nil {
		return nil, err
	}

	rows, err := u.observations.Update(ctx, updated)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, notFound("observation", input.ID)
	}
	return &updated, nil
}

// Delete reports false when there was no such observation.
func (u *Observations) Delete(ctx context.Context, id int64) (bool, error) {
	rows, err := u.observations.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// Clear removes every observation of an existing hike and returns how many
// went. The hike itself is kept.
func (u *Observations) Clear(ctx context.Context, hikeID int64) (int64, error) {
	owner, err := u.hikes.GetByID(ctx, hikeID)
	if err != nil {
		return 0, err
	}
	if owner == nil {
		return 0, notFound("hike", hikeID)
	}
	return u.observations.DeleteForHike(ctx, hikeID)
}
