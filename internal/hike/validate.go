package hike

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field names used in FieldError.
const (
	FieldName             = "name"
	FieldLocation         = "location"
	FieldDate             = "date"
	FieldParkingAvailable = "parkingAvailable"
	FieldLength           = "length"
	FieldDifficulty       = "difficulty"
	FieldHikeID           = "hikeId"
	FieldObservation      = "observation"
	FieldTime             = "time"
)

// FieldError is a caller-correctable problem with one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every failing field of a record.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field failed.
func (v ValidationErrors) Has(field string) bool {
	return v.Message(field) != ""
}

// Message returns the message recorded for field, or "".
func (v ValidationErrors) Message(field string) string {
	for _, fe := range v {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// Set records message for field, replacing an earlier message for the same field.
func (v ValidationErrors) Set(field, message string) ValidationErrors {
	for i := range v {
		if v[i].Field == field {
			v[i].Message = message
			return v
		}
	}
	return append(v, FieldError{Field: field, Message: message})
}

// Err returns nil when nothing failed so callers can use the usual err != nil check.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// ParseLength reads a length in kilometres typed by a person.
func ParseLength(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("length is required")
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("length must be a number")
	}
	if value <= 0 {
		return 0, fmt.Errorf("length must be greater than 0")
	}
	return value, nil
}

// Check validates every required hike field and reports all failures at once.
func Check(h Hike) ValidationErrors {
	var errs ValidationErrors

	if blank(h.Name) {
		errs = errs.Set(FieldName, "name is required")
	}
	if blank(h.Location) {
		errs = errs.Set(FieldLocation, "location is required")
	}
	switch {
	case blank(h.Date):
		errs = errs.Set(FieldDate, "date is required")
	case !IsCanonicalDate(h.Date):
		errs = errs.Set(FieldDate, "date must use the YYYY-MM-DD format")
	}
	switch {
	case blank(h.ParkingAvailable):
		errs = errs.Set(FieldParkingAvailable, "parking availability is required")
	default:
		if _, ok := ParseParking(h.ParkingAvailable); !ok {
			errs = errs.Set(FieldParkingAvailable, fmt.Sprintf("parking availability must be one of %s", strings.Join(ParkingOptions, ", ")))
		}
	}
	if math.IsNaN(h.Length) || math.IsInf(h.Length, 0) || h.Length <= 0 {
		errs = errs.Set(FieldLength, "length must be greater than 0")
	}
	switch {
	case blank(h.Difficulty):
		errs = errs.Set(FieldDifficulty, "difficulty is required")
	default:
		if _, ok := ParseDifficulty(h.Difficulty); !ok {
			errs = errs.Set(FieldDifficulty, "difficulty must be one of "+difficultyList())
		}
	}

	return errs
}

// ValidateHike is Check in error form.
func ValidateHike(h Hike) error {
	return Check(h).Err()
}

// ValidateObservation reports every failing observation field.
func ValidateObservation(o Observation) error {
	var errs ValidationErrors

	if o.HikeID <= 0 {
		errs = errs.Set(FieldHikeID, "observation must belong to a saved hike")
	}
	if blank(o.Observation) {
		errs = errs.Set(FieldObservation, "observation is required")
	}
	switch {
	case blank(o.Time):
		errs = errs.Set(FieldTime, "time is required")
	case !IsCanonicalTime(o.Time):
		errs = errs.Set(FieldTime, "time must use the YYYY-MM-DD HH:mm:ss format")
	}

	return errs.Err()
}

func blank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func difficultyList() string {
	names := make([]string, 0, len(Difficulties))
	for _, d := range Difficulties {
		names = append(names, string(d))
	}
	return strings.Join(names, ", ")
}
