package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhike/mhike/internal/database"
	"github.com/mhike/mhike/internal/hike"
	"github.com/mhike/mhike/internal/lifecycle"
)

func setupTestDB(t *testing.T) *database.Context {
	t.Helper()
	ctx, err := database.CreateDatabase(filepath.Join(t.TempDir(), "mhike.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, database.CloseDatabase(ctx))
	})
	return ctx
}

func draft(name, date, length string) lifecycle.Draft {
	return lifecycle.Draft{
		Name:             name,
		Location:         "Peak District",
		Date:             date,
		ParkingAvailable: "Yes",
		Length:           length,
		Difficulty:       "Easy",
	}
}

func mustSave(t *testing.T, u *Hikes, d lifecycle.Draft) int64 {
	t.Helper()
	s, err := u.Save(context.Background(), d)
	require.NoError(t, err)
	require.Equal(t, lifecycle.Committed, s.State)
	return s.Hike.ID
}

func TestHikesSaveAndGet(t *testing.T) {
	u := NewHikes(setupTestDB(t))
	ctx := context.Background()

	id := mustSave(t, u, draft("Kinder Scout", "2024-05-12", "13.2"))

	detail, err := u.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, "Kinder Scout", detail.Name)
	assert.Equal(t, 13.2, detail.Length)
	assert.Equal(t, int64(0), detail.ObservationCount)
}

func TestHikesPrepareInvalidDraft(t *testing.T) {
	u := NewHikes(setupTestDB(t))

	s, err := u.Prepare(context.Background(), draft("", "2024-05-12", "-3"))

	var verrs hike.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.True(t, verrs.Has(hike.FieldName))
	assert.True(t, verrs.Has(hike.FieldLength))
	assert.Equal(t, lifecycle.Drafting, s.State)
}

func TestHikesReviseThenCommitEdits(t *testing.T) {
	u := NewHikes(setupTestDB(t))
	ctx := context.Background()
	id := mustSave(t, u, draft("Mam Tor", "2024-03-01", "5"))

	edit := draft("Mam Tor Ridge", "2024-03-01", "8")
	edit.ID = id
	s, err := u.Prepare(ctx, edit)
	require.NoError(t, err)

	edit.Length = "9"
	s, err = u.Revise(s, edit)
	require.NoError(t, err)
	require.Equal(t, lifecycle.Confirming, s.State)

	s, err = u.Commit(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, id, s.Hike.ID)

	detail, err := u.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Mam Tor Ridge", detail.Name)
	assert.Equal(t, 9.0, detail.Length)

	count, err := u.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestHikesPrepareMissingHike(t *testing.T) {
	u := NewHikes(setupTestDB(t))

	d := draft("Ghost", "2024-01-01", "1")
	d.ID = 404
	_, err := u.Prepare(context.Background(), d)

	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestHikesSearch(t *testing.T) {
	u := NewHikes(setupTestDB(t))
	ctx := context.Background()

	mustSave(t, u, draft("Stanage Edge", "2024-02-10", "6"))
	mustSave(t, u, draft("Bamford Edge", "2024-04-10", "4"))
	mustSave(t, u, draft("Win Hill", "2024-06-10", "10"))

	byName, err := u.Search(ctx, SearchOptions{Name: "edge"})
	require.NoError(t, err)
	require.Len(t, byName, 2)
	assert.Equal(t, "Bamford Edge", byName[0].Name)

	ranged, err := u.Search(ctx, SearchOptions{Name: "edge", MinLength: "5", MaxLength: "10"})
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, "Stanage Edge", ranged[0].Name)

	dated, err := u.Search(ctx, SearchOptions{StartDate: "2024-04-10", EndDate: "2024-06-10"})
	require.NoError(t, err)
	assert.Len(t, dated, 2)

	all, err := u.Search(ctx, SearchOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestResolveSearchReportsBadFilters(t *testing.T) {
	_, err := ResolveSearch(SearchOptions{MinLength: "far", MaxLength: "x", StartDate: "10/02/2024"})

	var verrs hike.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.True(t, verrs.Has("minLength"))
	assert.True(t, verrs.Has("maxLength"))
	assert.True(t, verrs.Has("startDate"))

	_, err = ResolveSearch(SearchOptions{MinLength: "10", MaxLength: "5"})
	assert.Error(t, err)
}

func TestResolveSearchRejectsNonFiniteBounds(t *testing.T) {
	criteria, err := ResolveSearch(SearchOptions{MinLength: "NaN", MaxLength: "Inf"})

	var verrs hike.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.True(t, verrs.Has("minLength"))
	assert.True(t, verrs.Has("maxLength"))
	assert.Nil(t, criteria.MinLength)
	assert.Nil(t, criteria.MaxLength)

	_, err = ResolveSearch(SearchOptions{MinLength: "-inf"})
	assert.Error(t, err)
}

func TestHikesDeleteAndReset(t *testing.T) {
	dbCtx := setupTestDB(t)
	u := NewHikes(dbCtx)
	obs := NewObservations(dbCtx)
	ctx := context.Background()

	id := mustSave(t, u, draft("Chrome Hill", "2024-08-08", "7"))
	mustSave(t, u, draft("Parkhouse Hill", "2024-08-09", "3"))
	_, err := obs.Add(ctx, AddObservationInput{HikeID: id, Observation: "Cloud inversion"})
	require.NoError(t, err)

	deleted, err := u.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = u.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, deleted)

	list, err := obs.List(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, list)

	removed, err := u.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}

func TestObservationsLifecycle(t *testing.T) {
	dbCtx := setupTestDB(t)
	hikes := NewHikes(dbCtx)
	u := NewObservations(dbCtx)
	ctx := context.Background()

	hikeID := mustSave(t, hikes, draft("Lose Hill", "2024-09-09", "5"))

	first, err := u.Add(ctx, AddObservationInput{HikeID: hikeID, Observation: "Skylark", Time: "2024-09-09 09:00:00"})
	require.NoError(t, err)
	second, err := u.Add(ctx, AddObservationInput{HikeID: hikeID, Observation: " Kestrel ", Comments: "hovering"})
	require.NoError(t, err)
	assert.Equal(t, "Kestrel", second.Observation)
	assert.True(t, hike.IsCanonicalTime(second.Time))

	detail, err := hikes.Get(ctx, hikeID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), detail.ObservationCount)

	text := "Skylarks singing"
	edited, err := u.Edit(ctx, EditObservationInput{ID: first.ID, Observation: &text})
	require.NoError(t, err)
	assert.Equal(t, text, edited.Observation)
	assert.Equal(t, "2024-09-09 09:00:00", edited.Time)

	bad := "noon"
	_, err = u.Edit(ctx, EditObservationInput{ID: first.ID, Time: &bad})
	var verrs hike.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.True(t, verrs.Has(hike.FieldTime))

	deleted, err := u.Delete(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = u.Edit(ctx, EditObservationInput{ID: first.ID, Observation: &text})
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestObservationsAddRequiresHike(t *testing.T) {
	u := NewObservations(setupTestDB(t))

	_, err := u.Add(context.Background(), AddObservationInput{HikeID: 5, Observation: "Lost"})

	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestObservationsClearKeepsHike(t *testing.T) {
	dbCtx := setupTestDB(t)
	hikes := NewHikes(dbCtx)
	u := NewObservations(dbCtx)
	ctx := context.Background()

	hikeID := mustSave(t, hikes, draft("Mam Tor", "2024-10-01", "6"))
	for _, text := range []string{"Paragliders", "Ravens"} {
		_, err := u.Add(ctx, AddObservationInput{HikeID: hikeID, Observation: text})
		require.NoError(t, err)
	}

	removed, err := u.Clear(ctx, hikeID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	detail, err := hikes.Get(ctx, hikeID)
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, int64(0), detail.ObservationCount)

	_, err = u.Clear(ctx, hikeID+100)
	assert.ErrorIs(t, err, database.ErrNotFound)
}
