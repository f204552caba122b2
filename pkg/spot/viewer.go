// Package spot shows a spot's photo gallery together with the timing badge of the selected photo.
package spot

import (
	"errors"
	"time"

	"github.com/majorfi/spotframe/pkg/gallery"
	"github.com/majorfi/spotframe/pkg/solar"
	"github.com/majorfi/spotframe/pkg/utils"
	"github.com/sirupsen/logrus"
)

/**************************************************************************************************
** Badge is what the host renders next to a photo. When Available is false the host shows a
** neutral "timing unavailable" state and Snapshot/Classification are zero values.
**************************************************************************************************/
type Badge struct {
	Available      bool
	Kind           utils.BadgeKind
	Label          string
	Snapshot       solar.Snapshot
	Classification solar.Classification
}

// unavailableBadge is the neutral badge rendered when timing cannot be computed.
var unavailableBadge = Badge{Kind: utils.BadgeUnavailable, Label: utils.LABEL_TIMING_UNAVAILABLE}

/**************************************************************************************************
** Snapshotter computes solar snapshots. Both solar.Cache and ComputeFunc implement it.
**************************************************************************************************/
type Snapshotter interface {
	Snapshot(captureInstant time.Time, latitude float64) (solar.Snapshot, error)
}

// ComputeFunc adapts a plain function such as solar.ComputeSnapshot to Snapshotter.
type ComputeFunc func(captureInstant time.Time, latitude float64) (solar.Snapshot, error)

// Snapshot calls f.
func (f ComputeFunc) Snapshot(captureInstant time.Time, latitude float64) (solar.Snapshot, error) {
	return f(captureInstant, latitude)
}

/**************************************************************************************************
** Viewer binds an open gallery to the spot it was taken at. Capture instants are converted to
** the spot's timezone before the calendar day is derived.
**************************************************************************************************/
type Viewer struct {
	gallery  *gallery.Gallery
	spot     utils.TGeoCoordinate
	location *time.Location
	solar    Snapshotter
	logger   *logrus.Logger
}

/**************************************************************************************************
** NewViewer opens a gallery over photos for the spot at coordinate.
**
** @param photos - Photo collection in any order
** @param coordinate - Spot coordinate; an invalid one yields unavailable badges
** @param location - Timezone the spot's dates are displayed in, UTC when nil
** @param snapshotter - Snapshot source, solar.ComputeSnapshot when nil
** @param logger - Logger instance
** @return *Viewer - Viewer positioned on the initial photo
**************************************************************************************************/
func NewViewer(photos []utils.TPhotoRecord, coordinate utils.TGeoCoordinate, location *time.Location, snapshotter Snapshotter, logger *logrus.Logger) *Viewer {
	if location == nil {
		location = time.UTC
	}
	if snapshotter == nil {
		snapshotter = ComputeFunc(solar.ComputeSnapshot)
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Viewer{
		gallery:  gallery.Open(photos),
		spot:     coordinate,
		location: location,
		solar:    snapshotter,
		logger:   logger,
	}
}

// Gallery returns the underlying gallery.
func (v *Viewer) Gallery() *gallery.Gallery {
	return v.gallery
}

/**************************************************************************************************
** Current returns the committed photo and its badge. ok is false for an empty gallery.
**
** @return utils.TPhotoRecord - Selected photo
** @return Badge - Timing badge of the selected photo
** @return bool - False when there is no selection
**************************************************************************************************/
func (v *Viewer) Current() (utils.TPhotoRecord, Badge, bool) {
	photo, ok := v.gallery.Current()
	if !ok {
		return utils.TPhotoRecord{}, unavailableBadge, false
	}
	return photo, v.BadgeFor(photo), true
}

/**************************************************************************************************
** BadgeFor computes the timing badge of photo at the viewer's spot. Missing capture times,
** invalid coordinates and ErrTimingUnavailable all degrade to the neutral badge.
**
** @param photo - Photo to badge
** @return Badge - Timing badge
**************************************************************************************************/
func (v *Viewer) BadgeFor(photo utils.TPhotoRecord) Badge {
	if photo.CaptureInstant == nil {
		v.logger.Debugf("Photo %s has no capture time", photo.ID)
		return unavailableBadge
	}
	if !v.spot.IsValid() {
		v.logger.Debugf("Spot coordinate %v is not valid", v.spot)
		return unavailableBadge
	}

	captured := photo.CaptureInstant.In(v.location)
	snapshot, err := v.solar.Snapshot(captured, v.spot.Latitude)
	if err != nil {
		if !errors.Is(err, solar.ErrTimingUnavailable) {
			v.logger.Warnf("Unexpected timing error for photo %s: %v", photo.ID, err)
		}
		return unavailableBadge
	}

	classification := solar.Classify(captured, snapshot)
	badge := Badge{
		Available:      true,
		Kind:           utils.BadgeNeutral,
		Label:          classification.Description,
		Snapshot:       snapshot,
		Classification: classification,
	}
	switch {
	case classification.IsGoldenHour:
		badge.Kind = utils.BadgeGolden
		badge.Label = utils.LABEL_GOLDEN_HOUR
	case classification.IsBlueHour:
		badge.Kind = utils.BadgeBlue
		badge.Label = utils.LABEL_BLUE_HOUR
	}
	return badge
}
