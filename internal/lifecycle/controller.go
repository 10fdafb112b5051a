// Package lifecycle walks a hike from an unchecked form to a stored record:
// Drafting, then Confirming once every field checks out, then Committed once
// the store accepts it. Confirming can fall back to Drafting for more edits.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mhike/mhike/internal/hike"
)

// State is a step of the hike lifecycle.
type State string

const (
	Drafting   State = "drafting"
	Confirming State = "confirming"
	Committed  State = "committed"
)

var (
	// ErrInvalidTransition is returned when an action does not apply to the
	// session's current state.
	ErrInvalidTransition = errors.New("lifecycle: invalid transition")
	// ErrCommitFailed is returned when the store did not persist the hike.
	ErrCommitFailed = errors.New("lifecycle: commit failed")
)

// Store persists confirmed hikes. Insert returns the new id and Update the
// number of rows it changed.
type Store interface {
	Insert(ctx context.Context, h hike.Hike) (int64, error)
	Update(ctx context.Context, h hike.Hike) (int64, error)
}

// Session is the caller-held state of one create or edit flow. Every
// transition takes a session and returns the next one.
type Session struct {
	State  State                 `json:"state"`
	Draft  Draft                 `json:"draft"`
	Hike   hike.Hike             `json:"hike"`
	Errors hike.ValidationErrors `json:"errors,omitempty"`
}

// Editing reports whether the session updates an existing hike.
func (s Session) Editing() bool {
	return s.Draft.ID > 0
}

// Controller runs the transitions. Only Commit touches the store.
type Controller struct {
	store  Store
	logger *slog.Logger
}

func NewController(store Store, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{store: store, logger: logger}
}

// Start opens a session for a new hike dated today.
func (c *Controller) Start() Session {
	return Session{
		State: Drafting,
		Draft: Draft{Date: hike.Today()},
	}
}

// Edit opens a session for changing h. The hike's id puts the session in
// edit mode for the rest of its life.
func (c *Controller) Edit(h hike.Hike) Session {
	return Session{
		State: Drafting,
		Draft: DraftFromHike(h),
	}
}

// Change replaces the draft fields. The id chosen when the session was opened
// is kept.
func (c *Controller) Change(s Session, d Draft) (Session, error) {
	if err := CanChange(s.State).Error(); err != nil {
		return s, err
	}
	d.ID = s.Draft.ID
	s.Draft = d
	s.Errors = nil
	return s, nil
}

// Confirm checks the draft. On success the session moves to Confirming with
// the parsed hike; otherwise it stays in Drafting and the returned error is
// the full hike.ValidationErrors.
func (c *Controller) Confirm(s Session) (Session, error) {
	if err := CanConfirm(s.State).Error(); err != nil {
		return s, err
	}

	h, errs := s.Draft.Build()
	if len(errs) > 0 {
		s.Errors = errs
		return s, errs
	}

	s.State = Confirming
	s.Hike = h
	s.Errors = nil
	return s, nil
}

// Revise sends a session under review back to the form.
func (c *Controller) Revise(s Session) (Session, error) {
	if err := CanRevise(s.State).Error(); err != nil {
		return s, err
	}
	s.State = Drafting
	return s, nil
}

// Commit stores the confirmed hike, inserting or updating depending on
// whether the session is editing. Any store error, a non-positive id or zero
// rows changed leave the session in Confirming.
func (c *Controller) Commit(ctx context.Context, s Session) (Session, error) {
	if err := CanCommit(s.State).Error(); err != nil {
		return s, err
	}
	if c.store == nil {
		return s, fmt.Errorf("%w: no store configured", ErrCommitFailed)
	}

	if s.Editing() {
		s.Hike.ID = s.Draft.ID
		rows, err := c.store.Update(ctx, s.Hike)
		if err != nil {
			c.logger.Error("hike update failed", "id", s.Hike.ID, "error", err)
			return s, fmt.Errorf("%w: %w", ErrCommitFailed, err)
		}
		if rows <= 0 {
			c.logger.Warn("hike update changed nothing", "id", s.Hike.ID)
			return s, fmt.Errorf("%w: hike %d not found", ErrCommitFailed, s.Hike.ID)
		}
	} else {
		id, err := c.store.Insert(ctx, s.Hike)
		if err != nil {
			c.logger.Error("hike insert failed", "error", err)
			return s, fmt.Errorf("%w: %w", ErrCommitFailed, err)
		}
		if id <= 0 {
			c.logger.Warn("hike insert returned no id", "id", id)
			return s, fmt.Errorf("%w: store returned id %d", ErrCommitFailed, id)
		}
		s.Hike.ID = id
	}

	s.State = Committed
	return s, nil
}
