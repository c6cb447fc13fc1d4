package domain

import (
	"fmt"
	"strings"
)

// Transport method between two stops.
// The zero value means the mode is selected from the travel distance.
type Mode string

const (
	ModeAuto    Mode = ""
	ModeWalk    Mode = "walk"
	ModeTransit Mode = "transit"
	ModeDrive   Mode = "drive"
	ModeBike    Mode = "bike"
)

// Modes lists every known transport mode.
var Modes = []Mode{ModeWalk, ModeTransit, ModeDrive, ModeBike}

// ParseMode accepts a mode name case-insensitively. An empty string yields ModeAuto.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ModeAuto, ModeWalk, ModeTransit, ModeDrive, ModeBike:
		return m, nil
	}
	return ModeAuto, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Estimated travel between two coordinates.
// DistanceKm is the road-inflated distance rounded to 2 decimals.
type TravelInfo struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes int     `json:"duration_minutes"`
	Mode            Mode    `json:"mode"`
}
