// Package hike holds the hike log's domain values: hikes, the observations
// recorded against them, and the rules their fields must satisfy.
package hike

// Hike is a single recorded excursion. ID is zero until the store assigns one.
type Hike struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Location          string  `json:"location"`
	Date              string  `json:"date"`
	ParkingAvailable  string  `json:"parkingAvailable"`
	Length            float64 `json:"length"`
	Difficulty        string  `json:"difficulty"`
	Description       string  `json:"description,omitempty"`
	WeatherCondition  string  `json:"weatherCondition,omitempty"`
	EstimatedDuration string  `json:"estimatedDuration,omitempty"`
	CreatedAt         string  `json:"createdAt,omitempty"`
}

// IsNew reports whether the hike has not been persisted yet.
func (h Hike) IsNew() bool {
	return h.ID <= 0
}

// Observation is a timestamped note owned by exactly one hike.
type Observation struct {
	ID          int64  `json:"id"`
	HikeID      int64  `json:"hikeId"`
	Observation string `json:"observation"`
	Time        string `json:"time"`
	Comments    string `json:"comments,omitempty"`
}

// NewObservation returns an observation for hikeID stamped with the current time.
func NewObservation(hikeID int64, text, comments string) Observation {
	return Observation{
		HikeID:      hikeID,
		Observation: text,
		Time:        Now(),
		Comments:    comments,
	}
}
