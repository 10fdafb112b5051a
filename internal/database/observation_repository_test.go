package database

import (
	"context"
	"errors"
	"testing"

	"github.com/mhike/mhike/internal/hike"
)

func TestObservationInsertAndGetByID(t *testing.T) {
	ctx := setupTestDB(t)
	hikeID := mustInsertHike(t, NewHikeRepository(ctx), sampleHike("Fairfield", "2024-09-01", 17))
	repo := NewObservationRepository(ctx)
	bg := context.Background()

	want := hike.Observation{
		HikeID:      hikeID,
		Observation: "Ravens over the horseshoe",
		Time:        "2024-09-01 11:15:00",
		Comments:    "Pair circling",
	}
	id, err := repo.Insert(bg, want)
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive id, got %d", id)
	}

	got, err := repo.GetByID(bg, id)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got == nil {
		t.Fatal("expected observation, got nil")
	}
	want.ID = id
	if *got != want {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", *got, want)
	}
}

func TestObservationInsertValidates(t *testing.T) {
	ctx := setupTestDB(t)
	repo := NewObservationRepository(ctx)

	_, err := repo.Insert(context.Background(), hike.Observation{Time: "yesterday"})

	var verrs hike.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	for _, field := range []string{hike.FieldHikeID, hike.FieldObservation, hike.FieldTime} {
		if !verrs.Has(field) {
			t.Fatalf("expected error for %s, got %v", field, verrs)
		}
	}
	assertCount(t, ctx.DB, "observations", 0)
}

func TestObservationInsertUnknownHikeFails(t *testing.T) {
	ctx := setupTestDB(t)
	repo := NewObservationRepository(ctx)

	id, err := repo.Insert(context.Background(), hike.Observation{
		HikeID:      999,
		Observation: "Nobody here",
		Time:        "2024-01-01 10:00:00",
	})
	if !errors.Is(err, ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
	if id != 0 {
		t.Fatalf("expected id 0 on failure, got %d", id)
	}
}

func TestObservationGetForHikeOrdersByTimeDescending(t *testing.T) {
	ctx := setupTestDB(t)
	hikes := NewHikeRepository(ctx)
	hikeID := mustInsertHike(t, hikes, sampleHike("High Street", "2024-10-10", 15))
	otherID := mustInsertHike(t, hikes, sampleHike("Harter Fell", "2024-10-11", 6))
	repo := NewObservationRepository(ctx)

	insertObservationRow(t, ctx.DB, hikeID, "Start", "2024-10-10 08:00:00")
	insertObservationRow(t, ctx.DB, hikeID, "Summit", "2024-10-10 12:30:00")
	insertObservationRow(t, ctx.DB, hikeID, "Lunch", "2024-10-10 10:45:00")
	insertObservationRow(t, ctx.DB, otherID, "Elsewhere", "2024-10-11 09:00:00")

	got, err := repo.GetForHike(context.Background(), hikeID)
	if err != nil {
		t.Fatalf("GetForHike returned error: %v", err)
	}

	want := []string{"Summit", "Lunch", "Start"}
	if len(got) != len(want) {
		t.Fatalf("expected %d observations, got %d", len(want), len(got))
	}
	for i, text := range want {
		if got[i].Observation != text {
			t.Fatalf("position %d: expected %s, got %s", i, text, got[i].Observation)
		}
	}
}

func TestObservationUpdateAndDelete(t *testing.T) {
	ctx := setupTestDB(t)
	hikeID := mustInsertHike(t, NewHikeRepository(ctx), sampleHike("Loughrigg", "2024-02-20", 5))
	repo := NewObservationRepository(ctx)
	bg := context.Background()

	id := insertObservationRow(t, ctx.DB, hikeID, "Frost", "2024-02-20 09:00:00")

	rows, err := repo.Update(bg, hike.Observation{
		ID:          id,
		HikeID:      hikeID,
		Observation: "Hard frost",
		Time:        "2024-02-20 09:05:00",
		Comments:    "Icy steps",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row affected, got %d", rows)
	}

	got, err := repo.GetByID(bg, id)
	if err != nil || got == nil {
		t.Fatalf("GetByID returned %v, %v", got, err)
	}
	if got.Observation != "Hard frost" || got.Comments != "Icy steps" || got.Time != "2024-02-20 09:05:00" {
		t.Fatalf("update not applied: %+v", *got)
	}

	rows, err = repo.Update(bg, hike.Observation{ID: 9999, HikeID: hikeID, Observation: "x", Time: "2024-02-20 09:05:00"})
	if err != nil || rows != 0 {
		t.Fatalf("expected 0 rows for missing observation, got %d, %v", rows, err)
	}

	rows, err = repo.Delete(bg, id)
	if err != nil || rows != 1 {
		t.Fatalf("Delete returned %d, %v", rows, err)
	}
	missing, err := repo.GetByID(bg, id)
	if err != nil || missing != nil {
		t.Fatalf("expected deleted observation to be gone, got %v, %v", missing, err)
	}
}

func TestObservationUpdateValidates(t *testing.T) {
	ctx := setupTestDB(t)
	hikeID := mustInsertHike(t, NewHikeRepository(ctx), sampleHike("Catbells", "2024-03-03", 6))
	repo := NewObservationRepository(ctx)
	bg := context.Background()

	id := insertObservationRow(t, ctx.DB, hikeID, "Mist on the lake", "2024-03-03 08:30:00")

	rows, err := repo.Update(bg, hike.Observation{ID: id, HikeID: hikeID})
	var verrs hike.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if !verrs.Has(hike.FieldObservation) || !verrs.Has(hike.FieldTime) {
		t.Fatalf("expected observation and time errors, got %v", verrs)
	}
	if rows != 0 {
		t.Fatalf("expected 0 rows affected, got %d", rows)
	}

	got, err := repo.GetByID(bg, id)
	if err != nil || got == nil {
		t.Fatalf("GetByID returned %v, %v", got, err)
	}
	if got.Observation != "Mist on the lake" || got.Time != "2024-03-03 08:30:00" {
		t.Fatalf("blank update changed the row: %+v", *got)
	}
}

func TestObservationDeleteForHike(t *testing.T) {
	ctx := setupTestDB(t)
	hikeID := mustInsertHike(t, NewHikeRepository(ctx), sampleHike("Grisedale", "2024-06-06", 11))
	repo := NewObservationRepository(ctx)
	bg := context.Background()

	insertObservationRow(t, ctx.DB, hikeID, "One", "2024-06-06 09:00:00")
	insertObservationRow(t, ctx.DB, hikeID, "Two", "2024-06-06 10:00:00")

	rows, err := repo.DeleteForHike(bg, hikeID)
	if err != nil {
		t.Fatalf("DeleteForHike returned error: %v", err)
	}
	if rows != 2 {
		t.Fatalf("expected 2 rows affected, got %d", rows)
	}
	if got := repo.CountForHike(bg, hikeID); got != 0 {
		t.Fatalf("expected 0 observations, got %d", got)
	}
}

func TestObservationCountForHikeReturnsZeroOnFailure(t *testing.T) {
	ctx := setupTestDB(t)
	hikeID := mustInsertHike(t, NewHikeRepository(ctx), sampleHike("Pillar", "2024-07-01", 14))
	repo := NewObservationRepository(ctx)
	bg := context.Background()

	insertObservationRow(t, ctx.DB, hikeID, "Rock climbers", "2024-07-01 13:00:00")
	if got := repo.CountForHike(bg, hikeID); got != 1 {
		t.Fatalf("expected 1 observation, got %d", got)
	}

	if err := CloseDatabase(ctx); err != nil {
		t.Fatalf("CloseDatabase error: %v", err)
	}

	if got := repo.CountForHike(bg, hikeID); got != 0 {
		t.Fatalf("expected 0 after store failure, got %d", got)
	}
	list, err := repo.GetForHike(bg, hikeID)
	if !errors.Is(err, ErrStore) || list != nil {
		t.Fatalf("expected nil list and ErrStore, got %v, %v", list, err)
	}
	if got := NewObservationRepository(nil).CountForHike(bg, hikeID); got != 0 {
		t.Fatalf("expected 0 without a context, got %d", got)
	}
}
