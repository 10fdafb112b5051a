package hike

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validHike() Hike {
	return Hike{
		Name:             "Snowdon",
		Location:         "Wales",
		Date:             "2024-06-15",
		ParkingAvailable: "Yes",
		Length:           14.5,
		Difficulty:       "Hard",
	}
}

func TestCheckAcceptsValidHike(t *testing.T) {
	assert.Empty(t, Check(validHike()))
	assert.NoError(t, ValidateHike(validHike()))
}

func TestCheckReportsEveryFailingField(t *testing.T) {
	errs := Check(Hike{Length: -3})

	for _, field := range []string{FieldName, FieldLocation, FieldDate, FieldParkingAvailable, FieldLength, FieldDifficulty} {
		assert.True(t, errs.Has(field), "expected error for %s", field)
	}
	assert.Len(t, errs, 6)
}

func TestCheckRejectsUnknownOptions(t *testing.T) {
	h := validHike()
	h.Difficulty = "impossible"
	h.ParkingAvailable = "maybe"
	h.Date = "15/06/2024"

	errs := Check(h)
	assert.True(t, errs.Has(FieldDifficulty))
	assert.True(t, errs.Has(FieldParkingAvailable))
	assert.True(t, errs.Has(FieldDate))
}

func TestCheckDifficultyIsCaseInsensitive(t *testing.T) {
	h := validHike()
	h.Difficulty = "eXpErT"
	h.ParkingAvailable = "limited"

	assert.Empty(t, Check(h))
}

func TestParseLength(t *testing.T) {
	cases := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"5", 5, false},
		{" 12.25 ", 12.25, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"", 0, true},
		{"abc", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseLength(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidationErrorsSetReplaces(t *testing.T) {
	var errs ValidationErrors
	errs = errs.Set(FieldLength, "first")
	errs = errs.Set(FieldLength, "second")

	assert.Len(t, errs, 1)
	assert.Equal(t, "second", errs.Message(FieldLength))
	assert.NoError(t, ValidationErrors(nil).Err())
}

func TestValidateObservation(t *testing.T) {
	ok := Observation{HikeID: 1, Observation: "Saw a buzzard", Time: "2024-06-15 10:30:00"}
	assert.NoError(t, ValidateObservation(ok))

	var errs ValidationErrors
	require.ErrorAs(t, ValidateObservation(Observation{Time: "yesterday"}), &errs)
	for _, field := range []string{FieldHikeID, FieldObservation, FieldTime} {
		assert.True(t, errs.Has(field), "expected error for %s", field)
	}
}
