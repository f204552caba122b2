// Package solar approximates the sunrise, sunset, golden hour and blue hour boundaries of a day
// from its date and latitude, and classifies a capture instant against them.
//
// The model is a latitude/season approximation, not a solar-position algorithm: golden and blue
// hour are anchored to sunset only.
package solar

import (
	"errors"
	"math"
	"time"

	"cloudeng.io/datetime"
)

/**************************************************************************************************
** ErrTimingUnavailable is returned when the inputs produce non-finite intermediate hours, for
** instance a NaN latitude. Callers render a neutral "timing unavailable" state; retrying with
** the same inputs is useless.
**************************************************************************************************/
var ErrTimingUnavailable = errors.New("solar timing unavailable")

const (
	baseSunriseHour     = 6.0
	baseSunsetHour      = 18.0
	equinoxDayOfYear    = 80
	halfYearDays        = 182.5
	seasonalAmplitude   = 1.5
	referenceLatitude   = 40.0
	latitudeHoursPerDeg = 0.03
	goldenHourLead      = 60 * time.Minute
	goldenHourTrail     = 30 * time.Minute
	blueHourTrail       = 45 * time.Minute
	maxHourOfDay        = 23
	maxMinuteOfHour     = 59
	minutesPerHour      = 60
)

/**************************************************************************************************
** Event names one of the six boundaries of a snapshot. The declaration order is also the
** tie-break order when two events are equally close to an instant.
**************************************************************************************************/
type Event int

const (
	Sunrise Event = iota
	Sunset
	GoldenHourStart
	GoldenHourEnd
	BlueHourStart
	BlueHourEnd
)

var eventNames = [...]string{
	Sunrise:         "sunrise",
	Sunset:          "sunset",
	GoldenHourStart: "golden hour start",
	GoldenHourEnd:   "golden hour end",
	BlueHourStart:   "blue hour start",
	BlueHourEnd:     "blue hour end",
}

// String returns the lower-case display name of the event.
func (e Event) String() string {
	if e < Sunrise || e > BlueHourEnd {
		return "unknown event"
	}
	return eventNames[e]
}

/**************************************************************************************************
** Boundaries holds the six event times of one calendar day at one latitude. It depends only on
** the day, the timezone and the latitude, which makes it the cacheable part of a snapshot.
**************************************************************************************************/
type Boundaries struct {
	Sunrise         time.Time
	Sunset          time.Time
	GoldenHourStart time.Time
	GoldenHourEnd   time.Time
	BlueHourStart   time.Time
	BlueHourEnd     time.Time
}

// At returns the time of the given event.
func (b Boundaries) At(e Event) time.Time {
	switch e {
	case Sunrise:
		return b.Sunrise
	case Sunset:
		return b.Sunset
	case GoldenHourStart:
		return b.GoldenHourStart
	case GoldenHourEnd:
		return b.GoldenHourEnd
	case BlueHourStart:
		return b.BlueHourStart
	default:
		return b.BlueHourEnd
	}
}

/**************************************************************************************************
** Snapshot is the timing of one capture instant: the day's boundaries plus the event closest to
** the capture and the signed distance to it in minutes (positive = after the event).
**************************************************************************************************/
type Snapshot struct {
	Boundaries
	CaptureInstant  time.Time
	ClosestEvent    Event
	RelativeMinutes int
}

/**************************************************************************************************
** DayOfYear returns the 1-based ordinal day (1-366) of t's calendar date in t's own location.
**
** @param t - Instant, already converted to the timezone the date is displayed in
** @return int - Day of year
**************************************************************************************************/
func DayOfYear(t time.Time) int {
	return datetime.NewDate(datetime.Month(t.Month()), t.Day()).DayOfYear(t.Year())
}

/**************************************************************************************************
** ComputeBoundaries derives the six event times for the calendar day of date at latitude.
**
** Steps:
** 1. seasonal offset = sin((dayOfYear - 80) * π / 182.5) * 1.5 hours
** 2. latitude offset = (latitude - 40) * 0.03 hours
** 3. sunrise = 6 - seasonal + latitude offset, sunset = 18 + seasonal - latitude offset
** 4. non-finite hours abort with ErrTimingUnavailable
** 5. hours are clamped to [0,23], minutes taken from the fraction and clamped to [0,59]
** 6. golden hour = [sunset-60m, sunset+30m], blue hour = [sunset, sunset+45m]
**
** @param date - Any instant on the calendar day, in the display timezone
** @param latitude - Latitude in decimal degrees
** @return Boundaries - The day's event times, in date's location
** @return error - ErrTimingUnavailable when the intermediate hours are not finite
**************************************************************************************************/
func ComputeBoundaries(date time.Time, latitude float64) (Boundaries, error) {
	dayOfYear := DayOfYear(date)
	seasonalOffset := math.Sin(float64(dayOfYear-equinoxDayOfYear)*math.Pi/halfYearDays) * seasonalAmplitude
	latitudeOffset := (latitude - referenceLatitude) * latitudeHoursPerDeg

	sunriseHour := baseSunriseHour - seasonalOffset + latitudeOffset
	sunsetHour := baseSunsetHour + seasonalOffset - latitudeOffset
	if !isFinite(sunriseHour) || !isFinite(sunsetHour) {
		return Boundaries{}, ErrTimingUnavailable
	}

	sunrise := clockTime(date, sunriseHour)
	sunset := clockTime(date, sunsetHour)

	return Boundaries{
		Sunrise:         sunrise,
		Sunset:          sunset,
		GoldenHourStart: sunset.Add(-goldenHourLead),
		GoldenHourEnd:   sunset.Add(goldenHourTrail),
		BlueHourStart:   sunset,
		BlueHourEnd:     sunset.Add(blueHourTrail),
	}, nil
}

/**************************************************************************************************
** ComputeSnapshot computes the timing snapshot of captureInstant at latitude. The result is a
** pure function of its inputs: the calendar day and timezone are taken from captureInstant and
** no clock is read.
**
** @param captureInstant - Capture time, in the timezone the date is displayed in
** @param latitude - Latitude of the spot in decimal degrees
** @return Snapshot - Boundaries plus closest event
** @return error - ErrTimingUnavailable for non-finite intermediate values
**************************************************************************************************/
func ComputeSnapshot(captureInstant time.Time, latitude float64) (Snapshot, error) {
	boundaries, err := ComputeBoundaries(captureInstant, latitude)
	if err != nil {
		return Snapshot{}, err
	}
	return boundaries.Snapshot(captureInstant), nil
}

/**************************************************************************************************
** Snapshot positions instant against the boundaries: it finds the closest of the six events
** and the rounded signed minutes between them.
**
** @param instant - Capture time
** @return Snapshot - Snapshot for instant
**************************************************************************************************/
func (b Boundaries) Snapshot(instant time.Time) Snapshot {
	closest, delta := b.closestTo(instant)
	return Snapshot{
		Boundaries:      b,
		CaptureInstant:  instant,
		ClosestEvent:    closest,
		RelativeMinutes: roundMinutes(delta),
	}
}

// closestTo returns the event minimizing |instant - event| and instant - event. Ties keep the
// event declared first.
func (b Boundaries) closestTo(instant time.Time) (Event, time.Duration) {
	closest := Sunrise
	delta := instant.Sub(b.Sunrise)
	for e := Sunset; e <= BlueHourEnd; e++ {
		d := instant.Sub(b.At(e))
		if absDuration(d) < absDuration(delta) {
			closest, delta = e, d
		}
	}
	return closest, delta
}

// clockTime places a fractional hour on the calendar day of date. The hour is floored, not
// rounded, so the minute remainder stays non-negative. Clamping happens on the float values so
// that huge but finite hours never overflow the int conversion.
func clockTime(date time.Time, hours float64) time.Time {
	hour := clampFloat(math.Floor(hours), 0, maxHourOfDay)
	minute := clampFloat(math.Floor((hours-hour)*minutesPerHour), 0, maxMinuteOfHour)
	year, month, day := date.Date()
	return time.Date(year, month, day, int(hour), int(minute), 0, 0, date.Location())
}

func roundMinutes(d time.Duration) int {
	return int(math.Round(d.Minutes()))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
