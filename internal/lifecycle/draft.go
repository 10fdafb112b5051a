package lifecycle

import (
	"strconv"
	"strings"

	"github.com/mhike/mhike/internal/hike"
)

// Draft is the hike form as typed, before anything is parsed or checked.
// A non-zero ID means an existing hike is being edited.
type Draft struct {
	ID                int64  `json:"id,omitempty"`
	Name              string `json:"name"`
	Location          string `json:"location"`
	Date              string `json:"date"`
	ParkingAvailable  string `json:"parkingAvailable"`
	Length            string `json:"length"`
	Difficulty        string `json:"difficulty"`
	Description       string `json:"description,omitempty"`
	WeatherCondition  string `json:"weatherCondition,omitempty"`
	EstimatedDuration string `json:"estimatedDuration,omitempty"`
}

// DraftFromHike fills a draft with a stored hike so it can be edited.
func DraftFromHike(h hike.Hike) Draft {
	return Draft{
		ID:                h.ID,
		Name:              h.Name,
		Location:          h.Location,
		Date:              h.Date,
		ParkingAvailable:  h.ParkingAvailable,
		Length:            strconv.FormatFloat(h.Length, 'f', -1, 64),
		Difficulty:        h.Difficulty,
		Description:       h.Description,
		WeatherCondition:  h.WeatherCondition,
		EstimatedDuration: h.EstimatedDuration,
	}
}

// Build trims and parses the draft into a hike and reports every field that
// fails, not just the first.
func (d Draft) Build() (hike.Hike, hike.ValidationErrors) {
	h := hike.Hike{
		ID:                d.ID,
		Name:              strings.TrimSpace(d.Name),
		Location:          strings.TrimSpace(d.Location),
		Date:              strings.TrimSpace(d.Date),
		ParkingAvailable:  strings.TrimSpace(d.ParkingAvailable),
		Difficulty:        strings.TrimSpace(d.Difficulty),
		Description:       strings.TrimSpace(d.Description),
		WeatherCondition:  strings.TrimSpace(d.WeatherCondition),
		EstimatedDuration: strings.TrimSpace(d.EstimatedDuration),
	}
	if opt, ok := hike.ParseParking(h.ParkingAvailable); ok {
		h.ParkingAvailable = opt
	}
	if level, ok := hike.ParseDifficulty(h.Difficulty); ok {
		h.Difficulty = string(level)
	}

	length, lengthErr := hike.ParseLength(d.Length)
	h.Length = length

	errs := hike.Check(h)
	if lengthErr != nil {
		errs = errs.Set(hike.FieldLength, lengthErr.Error())
	}
	return h, errs
}
