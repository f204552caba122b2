package solar

import (
	"fmt"
	"time"
)

/**************************************************************************************************
** Phase is the light phase an instant falls into. Golden hour takes precedence over blue hour
** where the two windows overlap (the first 30 minutes after sunset).
**************************************************************************************************/
type Phase int

const (
	PhaseOther Phase = iota
	PhaseGoldenHour
	PhaseBlueHour
)

// String returns the display name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseGoldenHour:
		return "golden hour"
	case PhaseBlueHour:
		return "blue hour"
	default:
		return "other"
	}
}

/**************************************************************************************************
** Classification is the badge-level result of classifying an instant against a snapshot.
** IsGoldenHour and IsBlueHour are never both true. Description is always populated: the phase
** name inside a window, a relative phrase ("22 minutes before sunrise") otherwise.
**************************************************************************************************/
type Classification struct {
	Phase        Phase
	IsGoldenHour bool
	IsBlueHour   bool
	Description  string
}

/**************************************************************************************************
** Classify places instant against the snapshot's windows. Both window bounds are inclusive.
** Outside the windows the description is built from the event closest to instant, which is the
** snapshot's own closest event whenever instant is the snapshot's capture instant.
**
** @param instant - Instant to classify
** @param snapshot - Snapshot of the same day and latitude
** @return Classification - Phase flags and a human-readable description
**************************************************************************************************/
func Classify(instant time.Time, snapshot Snapshot) Classification {
	if within(instant, snapshot.GoldenHourStart, snapshot.GoldenHourEnd) {
		return Classification{Phase: PhaseGoldenHour, IsGoldenHour: true, Description: "Golden hour"}
	}
	if within(instant, snapshot.BlueHourStart, snapshot.BlueHourEnd) {
		return Classification{Phase: PhaseBlueHour, IsBlueHour: true, Description: "Blue hour"}
	}

	relative := snapshot
	if !instant.Equal(snapshot.CaptureInstant) {
		relative = snapshot.Boundaries.Snapshot(instant)
	}
	return Classification{
		Phase:       PhaseOther,
		Description: Describe(relative.RelativeMinutes, relative.ClosestEvent),
	}
}

/**************************************************************************************************
** Describe renders a signed minute distance to an event as text, e.g. "1 hour 5 minutes after
** sunset" or "22 minutes before sunrise". Units are pluralized and a zero distance reads
** "at sunset".
**
** @param minutes - Signed minutes, positive when the instant is after the event
** @param event - Event the distance refers to
** @return string - Human-readable description
**************************************************************************************************/
func Describe(minutes int, event Event) string {
	if minutes == 0 {
		return "at " + event.String()
	}

	direction := "after"
	if minutes < 0 {
		direction = "before"
		minutes = -minutes
	}

	return fmt.Sprintf("%s %s %s", formatDuration(minutes), direction, event.String())
}

func formatDuration(minutes int) string {
	hours := minutes / minutesPerHour
	rest := minutes % minutesPerHour
	switch {
	case hours == 0:
		return pluralize(rest, "minute")
	case rest == 0:
		return pluralize(hours, "hour")
	default:
		return pluralize(hours, "hour") + " " + pluralize(rest, "minute")
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
