package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mhike/mhike/internal/database"
	"github.com/mhike/mhike/internal/hike"
	"github.com/mhike/mhike/internal/lifecycle"
)

type Hikes struct {
	hikes        *database.HikeRepository
	observations *database.ObservationRepository
	lifecycle    *lifecycle.Controller
}

func NewHikes(dbCtx *database.Context) *Hikes {
	hikeRepo := database.NewHikeRepository(dbCtx)
	var logger *slog.Logger
	if dbCtx != nil {
		logger = dbCtx.Logger
	}
	return &Hikes{
		hikes:        hikeRepo,
		observations: database.NewObservationRepository(dbCtx),
		lifecycle:    lifecycle.NewController(hikeRepo, logger),
	}
}

// HikeDetail is a hike together with how many observations it has.
type HikeDetail struct {
	hike.Hike
	ObservationCount int64 `json:"observationCount"`
}

// Prepare opens a session for the draft and takes it as far as Confirming.
// A draft with an id edits that hike, which must exist. When the draft does
// not validate the session is returned in Drafting together with the
// hike.ValidationErrors.
func (u *Hikes) Prepare(ctx context.Context, draft lifecycle.Draft) (lifecycle.Session, error) {
	session := u.lifecycle.Start()
	if draft.ID > 0 {
		existing, err := u.hikes.GetByID(ctx, draft.ID)
		if err != nil {
			return session, err
		}
		if existing == nil {
			return session, notFound("hike", draft.ID)
		}
		session = u.lifecycle.Edit(*existing)
	}

	session, err := u.lifecycle.Change(session, draft)
	if err != nil {
		return session, err
	}
	return u.lifecycle.Confirm(session)
}

// Revise returns a confirming session to the form so the draft can change.
func (u *Hikes) Revise(session lifecycle.Session, draft lifecycle.Draft) (lifecycle.Session, error) {
	session, err := u.lifecycle.Revise(session)
	if err != nil {
		return session, err
	}
	session, err = u.lifecycle.Change(session, draft)
	if err != nil {
		return session, err
	}
	return u.lifecycle.Confirm(session)
}

// Commit stores a confirmed session.
func (u *Hikes) Commit(ctx context.Context, session lifecycle.Session) (lifecycle.Session, error) {
	return u.lifecycle.Commit(ctx, session)
}

// Save runs the whole lifecycle without stopping for review.
func (u *Hikes) Save(ctx context.Context, draft lifecycle.Draft) (lifecycle.Session, error) {
	session, err := u.Prepare(ctx, draft)
	if err != nil {
		return session, err
	}
	return u.Commit(ctx, session)
}

// Get returns nil when the hike does not exist.
func (u *Hikes) Get(ctx context.Context, id int64) (*HikeDetail, error) {
	h, err := u.hikes.GetByID(ctx, id)
	if err != nil || h == nil {
		return nil, err
	}
	return &HikeDetail{
		Hike:             *h,
		ObservationCount: u.observations.CountForHike(ctx, id),
	}, nil
}

func (u *Hikes) List(ctx context.Context) ([]hike.Hike, error) {
	return u.hikes.GetAll(ctx)
}

// Search runs a name-only search when only a name is given and the
// combined filter search otherwise.
func (u *Hikes) Search(ctx context.Context, opts SearchOptions) ([]hike.Hike, error) {
	criteria, err := ResolveSearch(opts)
	if err != nil {
		return nil, err
	}
	if criteria.Name != "" && criteria == (database.SearchCriteria{Name: criteria.Name}) {
		return u.hikes.SearchByName(ctx, criteria.Name)
	}
	return u.hikes.Search(ctx, criteria)
}

// Delete removes the hike and its observations. It reports false when there
// was no such hike.
func (u *Hikes) Delete(ctx context.Context, id int64) (bool, error) {
	rows, err := u.hikes.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// Reset removes every hike and observation and returns how many hikes went.
func (u *Hikes) Reset(ctx context.Context) (int64, error) {
	return u.hikes.DeleteAll(ctx)
}

func (u *Hikes) Count(ctx context.Context) (int64, error) {
	return u.hikes.Count(ctx)
}

func notFound(kind string, id int64) error {
	return fmt.Errorf("%s %d: %w", kind, id, database.ErrNotFound)
}
