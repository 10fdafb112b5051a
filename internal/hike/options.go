package hike

import "strings"

// Difficulty is one of the fixed difficulty levels a hike can be rated with.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "Easy"
	DifficultyModerate Difficulty = "Moderate"
	DifficultyHard     Difficulty = "Hard"
	DifficultyExpert   Difficulty = "Expert"
)

// Difficulties lists the levels in ascending order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyModerate, DifficultyHard, DifficultyExpert}

// ParkingOptions lists the accepted parking availability answers.
var ParkingOptions = []string{"Yes", "No", "Limited"}

// WeatherConditions are suggestions only; the weather field is free text.
var WeatherConditions = []string{"Sunny", "Cloudy", "Rainy", "Windy", "Snowy", "Foggy"}

// ParseDifficulty matches value against the known levels ignoring case and
// surrounding whitespace.
func ParseDifficulty(value string) (Difficulty, bool) {
	trimmed := strings.TrimSpace(value)
	for _, d := range Difficulties {
		if strings.EqualFold(trimmed, string(d)) {
			return d, true
		}
	}
	return "", false
}

// Rank returns 1-4 for known levels and 0 otherwise.
func (d Difficulty) Rank() int {
	for i, known := range Difficulties {
		if strings.EqualFold(string(d), string(known)) {
			return i + 1
		}
	}
	return 0
}

// ParseParking returns the canonical spelling of a parking option.
func ParseParking(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	for _, opt := range ParkingOptions {
		if strings.EqualFold(trimmed, opt) {
			return opt, true
		}
	}
	return "", false
}
